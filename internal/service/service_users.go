// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/registry"
	"github.com/MKhiriev/go-users-registry/internal/store"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/models"
)

// usersService is the concrete implementation of UsersService.
// The table is the source of truth; the journal is best-effort.
type usersService struct {
	table   *registry.UsersTable
	journal store.JournalRepository
	logger  *logger.Logger
}

// NewUsersService constructs a UsersService over table that records every
// mutation in journal.
func NewUsersService(table *registry.UsersTable, journal store.JournalRepository, logger *logger.Logger) UsersService {
	return &usersService{
		table:   table,
		journal: journal,
		logger:  logger,
	}
}

// Load adds every spec of the request to the table. Malformed specs are
// reported in the response and never fail the request.
func (s *usersService) Load(ctx context.Context, request models.LoadRequest) (models.LoadResponse, error) {
	log := logger.FromContext(ctx)

	added, rejected := s.table.Load(ctx, request.Users...)
	log.Info().
		Str("func", "*usersService.Load").
		Int("added", len(added)).
		Int("rejected", len(rejected)).
		Int("size", s.table.Len()).
		Msg("users loaded")

	traceID := utils.GetTraceIDFromContext(ctx)
	entries := make([]models.JournalEntry, 0, len(added)+len(rejected))
	for _, u := range added {
		entries = append(entries, journalEntry(traceID, models.OperationLoad, u.Key, u.Spec(), ""))
	}
	for _, r := range rejected {
		entries = append(entries, journalEntry(traceID, models.OperationReject, "", r.UserSpec, r.Reason))
	}
	s.record(ctx, entries)

	return models.LoadResponse{Added: added, Rejected: rejected}, nil
}

// Unload removes the users identified by the request's specs.
func (s *usersService) Unload(ctx context.Context, request models.UnloadRequest) (models.UnloadResponse, error) {
	log := logger.FromContext(ctx)

	removed := s.table.Unload(ctx, request.Users...)
	log.Info().
		Str("func", "*usersService.Unload").
		Int("removed", len(removed)).
		Int("size", s.table.Len()).
		Msg("users unloaded")

	traceID := utils.GetTraceIDFromContext(ctx)
	entries := make([]models.JournalEntry, 0, len(removed))
	for _, spec := range removed {
		key := utils.IdentityKey(spec.Name, spec.Role, spec.Namespace)
		entries = append(entries, journalEntry(traceID, models.OperationUnload, key, spec, ""))
	}
	s.record(ctx, entries)

	return models.UnloadResponse{Removed: removed, Length: len(removed)}, nil
}

// Filter selects users by role and compatibility.
func (s *usersService) Filter(ctx context.Context, request models.FilterRequest) ([]models.User, error) {
	users, err := s.table.Filter(ctx, request.Roles, request.CompatibilityURI)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*usersService.Filter").Msg("filter rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	return users, nil
}

func (s *usersService) Names(_ context.Context) []string {
	return s.table.Users()
}

func (s *usersService) Roles(_ context.Context, user string) []string {
	return s.table.Roles(user)
}

func (s *usersService) RoleView(_ context.Context) map[string][]models.User {
	return s.table.GenerateRoleView()
}

func (s *usersService) Len(_ context.Context) int {
	return s.table.Len()
}

// record appends entries to the journal. Failures are logged only.
func (s *usersService) record(ctx context.Context, entries []models.JournalEntry) {
	if len(entries) == 0 || s.journal == nil {
		return
	}

	if err := s.journal.Append(ctx, entries...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*usersService.record").
			Int("entries", len(entries)).
			Msg("error writing journal")
	}
}

func journalEntry(traceID string, op models.JournalOperation, key string, spec models.UserSpec, reason string) models.JournalEntry {
	return models.JournalEntry{
		TraceID:       traceID,
		Operation:     op,
		Key:           key,
		Name:          spec.Name,
		Role:          spec.Role,
		Namespace:     spec.Namespace,
		Compatibility: spec.Compatibility,
		Reason:        reason,
	}
}
