// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-registry/models"
)

const (
	journalTable = "journal"

	// DefaultJournalLimit is applied when a listing does not set a limit.
	DefaultJournalLimit uint64 = 100

	// MaxJournalLimit caps a single listing.
	MaxJournalLimit uint64 = 1000
)

var journalColumns = []string{
	"id",
	"trace_id",
	"operation",
	"user_key",
	"name",
	"role",
	"namespace",
	"compatibility",
	"reason",
	"created_at",
}

// buildAppendJournalQuery builds one multi-row INSERT for entries.
func buildAppendJournalQuery(builder sq.StatementBuilderType, entries []models.JournalEntry) (string, []any, error) {
	insert := builder.
		Insert(journalTable).
		Columns(journalColumns[1:]...)

	for _, e := range entries {
		insert = insert.Values(
			e.TraceID,
			string(e.Operation),
			e.Key,
			e.Name,
			e.Role,
			e.Namespace,
			e.Compatibility,
			e.Reason,
			e.CreatedAt,
		)
	}

	return insert.ToSql()
}

// buildListJournalQuery selects the newest entries first.
func buildListJournalQuery(builder sq.StatementBuilderType, filter models.JournalFilter) (string, []any, error) {
	query := builder.
		Select(journalColumns...).
		From(journalTable).
		OrderBy("id DESC").
		Limit(journalLimit(filter.Limit))

	if filter.Operation != "" {
		query = query.Where(sq.Eq{"operation": string(filter.Operation)})
	}

	return query.ToSql()
}

func buildPruneJournalQuery(builder sq.StatementBuilderType, olderThan time.Time) (string, []any, error) {
	return builder.
		Delete(journalTable).
		Where(sq.Lt{"created_at": olderThan}).
		ToSql()
}

func journalLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return DefaultJournalLimit
	case limit > MaxJournalLimit:
		return MaxJournalLimit
	default:
		return limit
	}
}
