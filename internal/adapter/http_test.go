package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc, app config.ClientApp) RegistryAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPRegistryAdapter(config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}, app, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://registry.example.com/", want: "https://registry.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPRegistryAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPRegistryAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())

	assert.ErrorIs(t, err, errEmptyAddress)
}

func TestLoad_SetsLengthAndSignsToken(t *testing.T) {
	app := config.ClientApp{TokenSignKey: "secret", TokenIssuer: "users-registry", TokenDuration: time.Minute}

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/load", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(traceIDHeader))

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		require.NoError(t, err)
		parsed, err := utils.ValidateAndParseJWTToken(token, "secret", "users-registry")
		require.NoError(t, err)
		assert.Equal(t, DefaultOperator, parsed.Operator)

		var req models.LoadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Length)

		writeJSON(t, w, http.StatusOK, models.LoadResponse{
			Added:    []models.User{{Name: "alice", Role: "admin"}},
			Rejected: []models.RejectedSpec{{UserSpec: models.UserSpec{Role: "admin"}, Reason: "empty name"}},
		})
	}, app)

	resp, err := a.Load(context.Background(), models.LoadRequest{Users: []models.UserSpec{
		{Name: "alice", Role: "admin"},
		{Role: "admin"},
	}})

	require.NoError(t, err)
	assert.Len(t, resp.Added, 1)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, "empty name", resp.Rejected[0].Reason)
}

func TestLoad_NoSignKey_NoAuthorization(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.LoadResponse{})
	}, config.ClientApp{})

	_, err := a.Load(context.Background(), models.LoadRequest{Users: []models.UserSpec{{Name: "a", Role: "r"}}})

	require.NoError(t, err)
}

func TestUnload(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/unload", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.UnloadResponse{Removed: []models.UserSpec{{Name: "a", Role: "r"}}, Length: 1})
	}, config.ClientApp{})

	resp, err := a.Unload(context.Background(), models.UnloadRequest{Users: []models.UserSpec{{Name: "a", Role: "r"}}})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Length)
}

func TestQueries(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/names":
			writeJSON(t, w, http.StatusOK, models.NamesResponse{Names: []string{"alice"}, Length: 1})
		case "/api/users/roles":
			assert.Equal(t, "alice", r.URL.Query().Get("user"))
			writeJSON(t, w, http.StatusOK, models.RolesResponse{Roles: []string{"admin"}, Length: 1})
		case "/api/users/view":
			writeJSON(t, w, http.StatusOK, models.RoleViewResponse{View: map[string][]models.User{"admin": {{Name: "alice"}}}, Size: 1})
		case "/api/users/filter":
			var req models.FilterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"admin"}, req.Roles)
			writeJSON(t, w, http.StatusOK, models.UsersResponse{Users: []models.User{{Name: "alice"}}, Length: 1})
		case "/api/version":
			writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "9.9.9"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, config.ClientApp{})
	ctx := context.Background()

	names, err := a.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names)

	roles, err := a.Roles(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, roles)

	view, err := a.RoleView(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Size)

	users, err := a.Filter(ctx, models.FilterRequest{Roles: []string{"admin"}})
	require.NoError(t, err)
	assert.Len(t, users, 1)

	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)
}

func TestTraceIDPropagated(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-9", r.Header.Get(traceIDHeader))
		writeJSON(t, w, http.StatusOK, models.NamesResponse{})
	}, config.ClientApp{})

	_, err := a.Names(utils.WithTraceID(context.Background(), "trace-9"))

	require.NoError(t, err)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, utils.ErrorBody{Error: "server says no", TraceID: "t"})
			}, config.ClientApp{})

			_, err := a.Filter(context.Background(), models.FilterRequest{CompatibilityURI: "bad"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "server says no")
		})
	}
}

func TestErrorMapping_UnknownStatusPlainBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}, config.ClientApp{})

	_, err := a.Names(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418: short and stout")
}
