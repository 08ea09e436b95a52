package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/mock"
	"github.com/MKhiriev/go-users-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, command config.ClientCommand) (*App, *mock.MockRegistryAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistryAdapter(ctrl)
	out := &bytes.Buffer{}

	app, err := NewApp(registry, command, out, logger.Nop())
	require.NoError(t, err)

	return app, registry, out
}

func writeSpecs(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewApp_NilAdapter(t *testing.T) {
	_, err := NewApp(nil, config.ClientCommand{}, &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Load(t *testing.T) {
	path := writeSpecs(t, `[
		{"name":"alice","role":"admin","namespace":"/","compatibility":"rocon:/"},
		{"name":"bob","role":"admin","namespace":"/","compatibility":"http://nope"}
	]`)
	app, registry, out := newTestApp(t, config.ClientCommand{Operation: config.OperationLoad, File: path})

	registry.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.LoadRequest) (models.LoadResponse, error) {
			require.Len(t, req.Users, 2)
			return models.LoadResponse{
				Added: []models.User{{Name: "alice", Role: "admin", Namespace: "/"}},
				Rejected: []models.RejectedSpec{{
					UserSpec: req.Users[1],
					Reason:   "invalid compatibility",
				}},
			}, nil
		})

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "added:")
	assert.Contains(t, out.String(), "admin/alice")
	assert.Contains(t, out.String(), "rejected:")
	assert.Contains(t, out.String(), "admin/bob: invalid compatibility")
}

func TestApp_UnloadAcceptsObjectFile(t *testing.T) {
	path := writeSpecs(t, `{"users":[{"name":"alice","role":"admin","namespace":"/"}]}`)
	app, registry, out := newTestApp(t, config.ClientCommand{Operation: config.OperationUnload, File: path})

	registry.EXPECT().
		Unload(gomock.Any(), models.UnloadRequest{Users: []models.UserSpec{{Name: "alice", Role: "admin", Namespace: "/"}}}).
		Return(models.UnloadResponse{
			Removed: []models.UserSpec{{Name: "alice", Role: "admin", Namespace: "/"}},
			Length:  1,
		}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "removed:")
	assert.Contains(t, out.String(), "admin/alice")
}

func TestApp_LoadEmptySpecsFile(t *testing.T) {
	path := writeSpecs(t, `[]`)
	app, _, _ := newTestApp(t, config.ClientCommand{Operation: config.OperationLoad, File: path})

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoSpecs)
}

func TestApp_LoadMissingFile(t *testing.T) {
	app, _, _ := newTestApp(t, config.ClientCommand{
		Operation: config.OperationLoad,
		File:      filepath.Join(t.TempDir(), "missing.json"),
	})

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApp_Filter(t *testing.T) {
	app, registry, out := newTestApp(t, config.ClientCommand{
		Operation:        config.OperationFilter,
		Roles:            []string{"admin"},
		CompatibilityURI: "rocon:/pc",
	})

	registry.EXPECT().
		Filter(gomock.Any(), models.FilterRequest{Roles: []string{"admin"}, CompatibilityURI: "rocon:/pc"}).
		Return([]models.User{{Name: "alice", Role: "admin", Namespace: "/", Compatibility: "rocon:/pc"}}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "admin")
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "rocon:/pc")
}

func TestApp_FilterNoMatches(t *testing.T) {
	app, registry, out := newTestApp(t, config.ClientCommand{Operation: config.OperationFilter})

	registry.EXPECT().Filter(gomock.Any(), models.FilterRequest{}).Return(nil, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "no matching users")
}

func TestApp_View(t *testing.T) {
	app, registry, out := newTestApp(t, config.ClientCommand{Operation: config.OperationView})

	registry.EXPECT().RoleView(gomock.Any()).Return(models.RoleViewResponse{
		View: map[string][]models.User{
			"operator": {{Name: "carol", Role: "operator", Namespace: "/"}},
			"admin":    {{Name: "alice", Role: "admin", Namespace: "/"}},
		},
		Size: 2,
	}, nil)

	require.NoError(t, app.Run(context.Background()))

	text := out.String()
	assert.Less(t, bytes.Index(out.Bytes(), []byte("admin")), bytes.Index(out.Bytes(), []byte("operator")))
	assert.Contains(t, text, "alice")
	assert.Contains(t, text, "carol")
	assert.Contains(t, text, "2 users")
}

func TestApp_ViewEmpty(t *testing.T) {
	app, registry, out := newTestApp(t, config.ClientCommand{Operation: config.OperationView})

	registry.EXPECT().RoleView(gomock.Any()).Return(models.RoleViewResponse{}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "no users")
}

func TestApp_Names(t *testing.T) {
	app, registry, out := newTestApp(t, config.ClientCommand{Operation: config.OperationNames})

	registry.EXPECT().Names(gomock.Any()).Return([]string{"alice", "bob"}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "  alice\n")
	assert.Contains(t, out.String(), "  bob\n")
}

func TestApp_Roles(t *testing.T) {
	app, registry, out := newTestApp(t, config.ClientCommand{Operation: config.OperationRoles, User: "alice"})

	registry.EXPECT().Roles(gomock.Any(), "alice").Return([]string{"admin", "operator"}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "roles of alice")
	assert.Contains(t, out.String(), "  operator\n")
}

func TestApp_RolesRequiresUser(t *testing.T) {
	app, _, _ := newTestApp(t, config.ClientCommand{Operation: config.OperationRoles})

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, ErrUserRequired)
}

func TestApp_UnknownOperation(t *testing.T) {
	app, _, out := newTestApp(t, config.ClientCommand{Operation: "dance"})

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Empty(t, out.String())
}

func TestApp_AdapterErrorIsWrapped(t *testing.T) {
	app, registry, _ := newTestApp(t, config.ClientCommand{Operation: config.OperationNames})

	boom := errors.New("boom")
	registry.EXPECT().Names(gomock.Any()).Return(nil, boom)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "names")
}
