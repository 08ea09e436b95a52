// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")

	assert.Equal(t, "trace-1", GetTraceIDFromContext(ctx))
	assert.Empty(t, GetTraceIDFromContext(context.Background()))
}

func TestGetOperatorFromContext(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), OperatorCtxKey, "ops")
		operator, ok := GetOperatorFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "ops", operator)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := GetOperatorFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), OperatorCtxKey, 42)
		_, ok := GetOperatorFromContext(ctx)
		assert.False(t, ok)
	})
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
