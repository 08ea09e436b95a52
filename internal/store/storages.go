// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the users registry operation journal in PostgreSQL
// or SQLite, or keeps it in memory when no database is configured.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	JournalRepository JournalRepository

	db *DB
}

// NewStorages opens the configured journal backend and applies migrations.
// An empty DSN selects the in-memory journal.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("no database configured, journal is kept in memory")
		return &Storages{JournalRepository: NewMemoryJournalRepository(DefaultMemoryJournalCapacity)}, nil
	}

	db, err := NewDB(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error opening journal database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating journal database")
		db.Close()
		return nil, err
	}

	return &Storages{
		JournalRepository: NewJournalRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
