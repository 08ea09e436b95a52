// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Client operations.
const (
	OperationLoad   = "load"
	OperationUnload = "unload"
	OperationFilter = "filter"
	OperationView   = "view"
	OperationNames  = "names"
	OperationRoles  = "roles"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is the minimum level of the client's stderr logger.
	LogLevel string
	// TokenSignKey, when set, is used to self-sign bearer tokens.
	TokenSignKey string
	// TokenIssuer is the issuer claim of self-signed tokens.
	TokenIssuer string
	// TokenDuration is the lifetime of self-signed tokens.
	TokenDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the server base URL, e.g. "http://localhost:8080".
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCommand is the operation the client runs and its arguments.
type ClientCommand struct {
	Operation        string
	File             string
	User             string
	Roles            []string
	CompatibilityURI string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server base URL and timeout.
	Adapter ClientAdapter
	// Command is the single operation to perform.
	Command ClientCommand
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel:      cfg.App.LogLevel,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			BaseURL:        baseURL(cfg.Adapter.HTTPAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Command: ClientCommand{
			Operation:        cfg.Client.Operation,
			File:             cfg.Client.File,
			User:             cfg.Client.User,
			Roles:            cfg.Client.Roles,
			CompatibilityURI: cfg.Client.CompatibilityURI,
		},
	}

	return clientCfg, clientCfg.validate()
}

// baseURL turns a bare host:port into an http URL.
func baseURL(address string) string {
	if address == "" || strings.Contains(address, "://") {
		return address
	}
	return "http://" + address
}
