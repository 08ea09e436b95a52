// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-registry/models"
)

// UsersService exposes the users table to transports. Every mutation is
// recorded in the journal.
type UsersService interface {
	Load(ctx context.Context, request models.LoadRequest) (models.LoadResponse, error)
	Unload(ctx context.Context, request models.UnloadRequest) (models.UnloadResponse, error)
	Filter(ctx context.Context, request models.FilterRequest) ([]models.User, error)

	Names(ctx context.Context) []string
	Roles(ctx context.Context, user string) []string
	RoleView(ctx context.Context) map[string][]models.User
	Len(ctx context.Context) int
}

// UsersServiceWrapper defines middleware composition for UsersService.
// Implementations wrap an existing UsersService to add behavior such as
// validation.
type UsersServiceWrapper interface {
	Wrap(UsersService) UsersService // returns a decorated UsersService applying additional behavior
}

// AuthService issues and verifies operator tokens.
type AuthService interface {
	// Enabled reports whether a sign key is configured. When it is not,
	// mutating endpoints are open.
	Enabled() bool
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// JournalService reads and trims the operation journal.
type JournalService interface {
	List(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}
