// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryJournal_AppendAndList(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournalRepository(0)

	require.NoError(t, j.Append(ctx,
		models.JournalEntry{Operation: models.OperationLoad, Name: "a"},
		models.JournalEntry{Operation: models.OperationReject, Name: "b"},
		models.JournalEntry{Operation: models.OperationLoad, Name: "c"},
	))

	all, err := j.List(ctx, models.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Name)
	assert.Equal(t, int64(3), all[0].ID)
	assert.False(t, all[0].CreatedAt.IsZero())

	loads, err := j.List(ctx, models.JournalFilter{Operation: models.OperationLoad, Limit: 1})
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, "c", loads[0].Name)
}

func TestMemoryJournal_Capacity(t *testing.T) {
	ctx := context.Background()
	j := NewMemoryJournalRepository(2)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, j.Append(ctx, models.JournalEntry{Operation: models.OperationLoad, Name: name}))
	}

	all, err := j.List(ctx, models.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
}

func TestMemoryJournal_Prune(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	j := NewMemoryJournalRepository(10)

	require.NoError(t, j.Append(ctx,
		models.JournalEntry{Operation: models.OperationLoad, Name: "old", CreatedAt: now.Add(-2 * time.Hour)},
		models.JournalEntry{Operation: models.OperationLoad, Name: "new", CreatedAt: now},
	))

	n, err := j.Prune(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := j.List(ctx, models.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Name)
}
