// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A zero config is
// valid.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenSignKey != "" && (cfg.App.TokenDuration == 0 || cfg.App.TokenIssuer == "") {
		return fmt.Errorf("%w: sign key requires token issuer and duration", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Workers.PruneInterval < 0 || cfg.Workers.JournalRetention < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Command.Operation {
	case OperationLoad, OperationUnload:
		if cfg.Command.File == "" {
			return fmt.Errorf("%w: -file is required for %s", ErrInvalidClientConfigs, cfg.Command.Operation)
		}
	case OperationFilter, OperationView, OperationNames, OperationRoles:
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidClientConfigs, cfg.Command.Operation)
	}

	return nil
}
