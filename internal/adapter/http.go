package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/models"
	"github.com/go-resty/resty/v2"
)

// DefaultOperator is the subject of self-signed tokens.
const DefaultOperator = "users-registry-client"

// selfSignedTokenDuration is used when no token duration is configured.
const selfSignedTokenDuration = time.Minute

const traceIDHeader = "X-Trace-ID"

type httpRegistryAdapter struct {
	client *utils.HTTPClient

	signKey       string
	issuer        string
	tokenDuration time.Duration
	operator      string

	logger *logger.Logger
}

// NewHTTPRegistryAdapter constructs the HTTP/REST implementation of
// [RegistryAdapter]. When appCfg carries a sign key every request is
// authorized with a freshly self-signed JWT.
//
// Returns an error if adapterCfg.BaseURL is empty or not a valid URL.
func NewHTTPRegistryAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RegistryAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	duration := appCfg.TokenDuration
	if duration <= 0 {
		duration = selfSignedTokenDuration
	}

	return &httpRegistryAdapter{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signKey:       appCfg.TokenSignKey,
		issuer:        appCfg.TokenIssuer,
		tokenDuration: duration,
		operator:      DefaultOperator,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRegistryAdapter) Load(ctx context.Context, request models.LoadRequest) (models.LoadResponse, error) {
	request.Length = len(request.Users)

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.LoadResponse{}, err
	}

	var response models.LoadResponse
	resp, err := req.SetBody(request).SetResult(&response).Post("/api/users/load")
	if err != nil {
		return models.LoadResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadResponse{}, err
	}

	return response, nil
}

func (h *httpRegistryAdapter) Unload(ctx context.Context, request models.UnloadRequest) (models.UnloadResponse, error) {
	request.Length = len(request.Users)

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UnloadResponse{}, err
	}

	var response models.UnloadResponse
	resp, err := req.SetBody(request).SetResult(&response).Post("/api/users/unload")
	if err != nil {
		return models.UnloadResponse{}, fmt.Errorf("unload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UnloadResponse{}, err
	}

	return response, nil
}

func (h *httpRegistryAdapter) Filter(ctx context.Context, request models.FilterRequest) ([]models.User, error) {
	var response models.UsersResponse
	resp, err := h.request(ctx).SetBody(request).SetResult(&response).Post("/api/users/filter")
	if err != nil {
		return nil, fmt.Errorf("filter request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return response.Users, nil
}

func (h *httpRegistryAdapter) Names(ctx context.Context) ([]string, error) {
	var response models.NamesResponse
	resp, err := h.request(ctx).SetResult(&response).Get("/api/users/names")
	if err != nil {
		return nil, fmt.Errorf("names request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return response.Names, nil
}

func (h *httpRegistryAdapter) Roles(ctx context.Context, user string) ([]string, error) {
	var response models.RolesResponse
	resp, err := h.request(ctx).
		SetQueryParam("user", user).
		SetResult(&response).
		Get("/api/users/roles")
	if err != nil {
		return nil, fmt.Errorf("roles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return response.Roles, nil
}

func (h *httpRegistryAdapter) RoleView(ctx context.Context) (models.RoleViewResponse, error) {
	var response models.RoleViewResponse
	resp, err := h.request(ctx).SetResult(&response).Get("/api/users/view")
	if err != nil {
		return models.RoleViewResponse{}, fmt.Errorf("role view request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RoleViewResponse{}, err
	}

	return response, nil
}

func (h *httpRegistryAdapter) Version(ctx context.Context) (string, error) {
	var response models.VersionResponse
	resp, err := h.request(ctx).SetResult(&response).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return response.Version, nil
}

// request prepares a JSON request that propagates the context's trace id.
func (h *httpRegistryAdapter) request(ctx context.Context) *resty.Request {
	traceID := utils.GetTraceIDFromContext(ctx)
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(traceIDHeader, traceID)
}

// authedRequest is request plus a self-signed bearer token when a sign key
// is configured.
func (h *httpRegistryAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.request(ctx)
	if h.signKey == "" {
		return req, nil
	}

	token, err := utils.GenerateJWTToken(h.issuer, h.operator, h.tokenDuration, h.signKey)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpRegistryAdapter.authedRequest").Msg("error signing token")
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return req.SetAuthToken(token.SignedString), nil
}
