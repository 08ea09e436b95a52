// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/registry"
	"github.com/MKhiriev/go-users-registry/internal/roconuri"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/internal/validators"
	"github.com/MKhiriev/go-users-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Stub: store.JournalRepository
// ─────────────────────────────────────────────

type stubJournal struct {
	appended  []models.JournalEntry
	appendErr error
}

func (s *stubJournal) Append(_ context.Context, entries ...models.JournalEntry) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, entries...)
	return nil
}

func (s *stubJournal) List(context.Context, models.JournalFilter) ([]models.JournalEntry, error) {
	return s.appended, nil
}

func (s *stubJournal) Prune(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func newTestUsersService(journal *stubJournal) UsersService {
	table := registry.NewUsersTable(
		registry.NewUserBuilder(validators.NewUserSpecValidator()),
		roconuri.NewMatcher(),
		logger.Nop(),
	)
	return NewUsersService(table, journal, logger.Nop())
}

func spec(name, role, namespace, compatibility string) models.UserSpec {
	return models.UserSpec{Name: name, Role: role, Namespace: namespace, Compatibility: compatibility}
}

// ─────────────────────────────────────────────
// Load
// ─────────────────────────────────────────────

func TestUsersService_Load_AddsAndRejects(t *testing.T) {
	journal := &stubJournal{}
	svc := newTestUsersService(journal)
	ctx := utils.WithTraceID(context.Background(), "trace-1")

	resp, err := svc.Load(ctx, models.LoadRequest{Users: []models.UserSpec{
		spec("alice", "admin", "/", ""),
		spec("", "admin", "/", ""),
		spec("bob", "operator", "/", "rocon:/turtlebot"),
	}})

	require.NoError(t, err)
	require.Len(t, resp.Added, 2)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, models.DefaultCompatibility, resp.Added[0].Compatibility)
	assert.NotEmpty(t, resp.Rejected[0].Reason)
	assert.Equal(t, 2, svc.Len(ctx))

	require.Len(t, journal.appended, 3)
	assert.Equal(t, models.OperationLoad, journal.appended[0].Operation)
	assert.Equal(t, resp.Added[0].Key, journal.appended[0].Key)
	assert.Equal(t, models.OperationLoad, journal.appended[1].Operation)
	assert.Equal(t, models.OperationReject, journal.appended[2].Operation)
	assert.Empty(t, journal.appended[2].Key)
	assert.Equal(t, resp.Rejected[0].Reason, journal.appended[2].Reason)
	for _, e := range journal.appended {
		assert.Equal(t, "trace-1", e.TraceID)
	}
}

func TestUsersService_Load_JournalFailureDoesNotFail(t *testing.T) {
	journal := &stubJournal{appendErr: errors.New("disk full")}
	svc := newTestUsersService(journal)
	ctx := context.Background()

	resp, err := svc.Load(ctx, models.LoadRequest{Users: []models.UserSpec{spec("alice", "admin", "/", "")}})

	require.NoError(t, err)
	assert.Len(t, resp.Added, 1)
	assert.Equal(t, 1, svc.Len(ctx))
}

func TestUsersService_Load_NilJournal(t *testing.T) {
	table := registry.NewUsersTable(
		registry.NewUserBuilder(validators.NewUserSpecValidator()),
		roconuri.NewMatcher(),
		logger.Nop(),
	)
	svc := NewUsersService(table, nil, logger.Nop())

	resp, err := svc.Load(context.Background(), models.LoadRequest{Users: []models.UserSpec{spec("alice", "admin", "/", "")}})

	require.NoError(t, err)
	assert.Len(t, resp.Added, 1)
}

// ─────────────────────────────────────────────
// Unload
// ─────────────────────────────────────────────

func TestUsersService_Unload_JournalsRemovals(t *testing.T) {
	journal := &stubJournal{}
	svc := newTestUsersService(journal)
	ctx := context.Background()

	_, err := svc.Load(ctx, models.LoadRequest{Users: []models.UserSpec{
		spec("alice", "admin", "/", ""),
		spec("bob", "admin", "/", ""),
	}})
	require.NoError(t, err)
	journal.appended = nil

	resp, err := svc.Unload(ctx, models.UnloadRequest{Users: []models.UserSpec{
		spec("alice", "admin", "/", ""),
		spec("carol", "admin", "/", ""),
	}})

	require.NoError(t, err)
	require.Len(t, resp.Removed, 1)
	assert.Equal(t, 1, resp.Length)
	assert.Equal(t, "alice", resp.Removed[0].Name)
	assert.Equal(t, []string{"bob"}, svc.Names(ctx))

	require.Len(t, journal.appended, 1)
	assert.Equal(t, models.OperationUnload, journal.appended[0].Operation)
	assert.Equal(t, utils.IdentityKey("alice", "admin", "/"), journal.appended[0].Key)
}

func TestUsersService_Unload_NothingMatched_NoJournal(t *testing.T) {
	journal := &stubJournal{}
	svc := newTestUsersService(journal)

	resp, err := svc.Unload(context.Background(), models.UnloadRequest{Users: []models.UserSpec{spec("ghost", "admin", "/", "")}})

	require.NoError(t, err)
	assert.Empty(t, resp.Removed)
	assert.Empty(t, journal.appended)
}

// ─────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────

func TestUsersService_Queries(t *testing.T) {
	svc := newTestUsersService(&stubJournal{})
	ctx := context.Background()

	_, err := svc.Load(ctx, models.LoadRequest{Users: []models.UserSpec{
		spec("alice", "admin", "/", ""),
		spec("alice", "operator", "/", "rocon:/turtlebot"),
		spec("bob", "operator", "/", "rocon:/pc"),
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, svc.Names(ctx))
	assert.Equal(t, []string{"admin", "operator"}, svc.Roles(ctx, "alice"))
	assert.Empty(t, svc.Roles(ctx, "nobody"))

	view := svc.RoleView(ctx)
	assert.Len(t, view["operator"], 2)
	assert.Len(t, view["admin"], 1)

	users, err := svc.Filter(ctx, models.FilterRequest{Roles: []string{"operator"}, CompatibilityURI: "rocon:/turtlebot"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Name)
}

func TestUsersService_Filter_InvalidURI(t *testing.T) {
	svc := newTestUsersService(&stubJournal{})

	users, err := svc.Filter(context.Background(), models.FilterRequest{CompatibilityURI: "http://nope"})

	assert.Nil(t, users)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.ErrorIs(t, err, roconuri.ErrInvalidURI)
}
