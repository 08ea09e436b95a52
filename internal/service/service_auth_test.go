// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(key string) AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  key,
		TokenIssuer:   "users-registry",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_Enabled(t *testing.T) {
	assert.True(t, newTestAuthService("secret").Enabled())
	assert.False(t, newTestAuthService("").Enabled())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService("secret")
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "operator-1")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", parsed.Operator)
	assert.Equal(t, "users-registry", parsed.Issuer)
}

func TestAuthService_CreateToken_EmptyOperator(t *testing.T) {
	svc := newTestAuthService("secret")

	_, err := svc.CreateToken(context.Background(), "")

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	token, err := newTestAuthService("secret").CreateToken(context.Background(), "op")
	require.NoError(t, err)

	_, err = newTestAuthService("other").ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	_, err := newTestAuthService("secret").ParseToken(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
