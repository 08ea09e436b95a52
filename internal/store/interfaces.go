// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-registry/models"
)

// JournalRepository is the append-only audit trail of users table mutations.
type JournalRepository interface {
	// Append stores entries. Entries with a zero CreatedAt are stamped with
	// the current time.
	Append(ctx context.Context, entries ...models.JournalEntry) error

	// List returns the most recent entries first, narrowed by filter.
	List(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error)

	// Prune deletes entries created before olderThan and returns how many
	// were removed.
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
