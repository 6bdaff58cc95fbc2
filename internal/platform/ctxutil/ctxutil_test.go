// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haminhduc/linkmark/internal/platform/ctxutil"
)

/*
TestRequestID_RoundTrip verifies storing and retrieving the correlation ID.
*/
func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger_FallsBackToDefault verifies that a context without a logger
yields the process-wide default rather than nil.
*/
func TestLogger_FallsBackToDefault(t *testing.T) {
	ctx := context.Background()

	assert.NotNil(t, ctxutil.GetLogger(ctx))
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))
}

/*
TestLogger_RoundTrip verifies storing and retrieving a request-scoped logger.
*/
func TestLogger_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx := ctxutil.WithLogger(context.Background(), logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}
