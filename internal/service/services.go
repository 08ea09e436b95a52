// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business layer of the users registry: the
// journaled users service with its validating wrapper, token handling,
// application info and journal access.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/registry"
	"github.com/MKhiriev/go-users-registry/internal/roconuri"
	"github.com/MKhiriev/go-users-registry/internal/store"
	"github.com/MKhiriev/go-users-registry/internal/validators"
)

type Services struct {
	UsersService   UsersService
	AuthService    AuthService
	AppInfoService AppInfoService
	JournalService JournalService
}

// NewServices builds an empty users table and the services around it.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	table := registry.NewUsersTable(
		registry.NewUserBuilder(validators.NewUserSpecValidator()),
		roconuri.NewMatcher(),
		logger,
	)

	usersService := NewUsersValidationService().Wrap(
		NewUsersService(table, storages.JournalRepository, logger),
	)

	return &Services{
		UsersService:   usersService,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
		JournalService: NewJournalService(storages.JournalRepository, logger),
	}, nil
}
