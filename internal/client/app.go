package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-users-registry/internal/adapter"
	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/models"
)

type App struct {
	adapter adapter.RegistryAdapter
	command config.ClientCommand
	out     io.Writer

	logger *logger.Logger
}

// NewApp returns a client that runs command against registry and writes the
// rendered result to out.
func NewApp(registry adapter.RegistryAdapter, command config.ClientCommand, out io.Writer, logger *logger.Logger) (*App, error) {
	if registry == nil {
		return nil, fmt.Errorf("nil registry adapter")
	}

	return &App{
		adapter: registry,
		command: command,
		out:     out,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Debug().Str("operation", a.command.Operation).Msg("running client operation")

	output, err := a.run(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", a.command.Operation, err)
	}

	_, err = io.WriteString(a.out, output)
	return err
}

func (a *App) run(ctx context.Context) (string, error) {
	switch a.command.Operation {
	case config.OperationLoad:
		specs, err := readSpecs(a.command.File)
		if err != nil {
			return "", err
		}
		resp, err := a.adapter.Load(ctx, models.LoadRequest{Users: specs})
		if err != nil {
			return "", err
		}
		return renderLoad(resp), nil

	case config.OperationUnload:
		specs, err := readSpecs(a.command.File)
		if err != nil {
			return "", err
		}
		resp, err := a.adapter.Unload(ctx, models.UnloadRequest{Users: specs})
		if err != nil {
			return "", err
		}
		return renderUnload(resp), nil

	case config.OperationFilter:
		users, err := a.adapter.Filter(ctx, models.FilterRequest{
			Roles:            a.command.Roles,
			CompatibilityURI: a.command.CompatibilityURI,
		})
		if err != nil {
			return "", err
		}
		return renderUsers(users), nil

	case config.OperationView:
		view, err := a.adapter.RoleView(ctx)
		if err != nil {
			return "", err
		}
		return renderRoleView(view), nil

	case config.OperationNames:
		names, err := a.adapter.Names(ctx)
		if err != nil {
			return "", err
		}
		return renderList("users", names), nil

	case config.OperationRoles:
		if a.command.User == "" {
			return "", ErrUserRequired
		}
		roles, err := a.adapter.Roles(ctx, a.command.User)
		if err != nil {
			return "", err
		}
		return renderList("roles of "+a.command.User, roles), nil

	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOperation, a.command.Operation)
	}
}
