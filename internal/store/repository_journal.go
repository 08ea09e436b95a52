// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/models"
	"github.com/jackc/pgerrcode"
)

const (
	appendAttempts = 3
	retryBackoff   = 50 * time.Millisecond
)

// journalRepository is the SQL-backed implementation of [JournalRepository].
// The same code serves PostgreSQL and SQLite; the dialect differences live
// in the [DB]'s statement builder and error classifier.
type journalRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewJournalRepository constructs a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating journal repository")
	return &journalRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Append inserts entries with a single statement. Transient failures, as
// decided by the database's error classifier, are retried a few times.
func (r *journalRepository) Append(ctx context.Context, entries ...models.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	stamped := make([]models.JournalEntry, len(entries))
	now := r.now().UTC()
	for i, e := range entries {
		if e.CreatedAt.IsZero() {
			e.CreatedAt = now
		}
		stamped[i] = e
	}

	query, args, err := buildAppendJournalQuery(r.db.builder, stamped)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Append").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		class := r.classify(err)
		log.Err(err).
			Str("func", "*journalRepository.Append").
			Int("attempt", attempt).
			Stringer("classification", class).
			Msg("error appending journal entries")

		if postgresError(err) == pgerrcode.CheckViolation {
			return fmt.Errorf("%w: invalid journal operation: %w", ErrExecutingStatement, err)
		}
		if class != Retryable || attempt == appendAttempts {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
}

// List returns the newest entries first.
func (r *journalRepository) List(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListJournalQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.List").Msg("error querying journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var (
			e         models.JournalEntry
			operation string
		)
		if err = rows.Scan(&e.ID, &e.TraceID, &operation, &e.Key, &e.Name, &e.Role, &e.Namespace, &e.Compatibility, &e.Reason, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*journalRepository.List").Msg("error scanning journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Operation = models.JournalOperation(operation)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*journalRepository.List").Msg("error iterating journal rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// Prune deletes entries created before olderThan.
func (r *journalRepository) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneJournalQuery(r.db.builder, olderThan.UTC())
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Prune").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.Prune").Msg("error pruning journal")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}

func (r *journalRepository) classify(err error) ErrorClassification {
	if r.db.errorClassificator == nil {
		return NonRetryable
	}
	return r.db.errorClassificator.Classify(err)
}
