// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the users registry
// server.
//
// [RegistryAdapter] decouples the client from the protocol; the package ships
// an HTTP/REST implementation ([NewHTTPRegistryAdapter]). HTTP status codes
// are mapped to the sentinel errors in errors.go so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_adapter_mock.go -package=mock

// RegistryAdapter is the transport-agnostic view of the registry server.
type RegistryAdapter interface {
	// Load sends a batch of specs. Length is filled in by the adapter.
	Load(ctx context.Context, request models.LoadRequest) (models.LoadResponse, error)

	// Unload removes a batch of specs. Length is filled in by the adapter.
	Unload(ctx context.Context, request models.UnloadRequest) (models.UnloadResponse, error)

	Filter(ctx context.Context, request models.FilterRequest) ([]models.User, error)
	Names(ctx context.Context) ([]string, error)
	Roles(ctx context.Context, user string) ([]string, error)
	RoleView(ctx context.Context) (models.RoleViewResponse, error)
	Version(ctx context.Context) (string, error)
}
