// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/langgate/internal/platform/redis"
)

func TestNewClient_ConnectsAndPings(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := redisstore.NewClient(context.Background(), "redis://"+mr.Addr(), logger)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, redisstore.Ping(context.Background(), client))
}

func TestNewClient_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	_, err := redisstore.NewClient(context.Background(), "not a url", logger)
	assert.ErrorContains(t, err, "invalid URL")
}

func TestPing_FailsWhenServerGone(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := redisstore.NewClient(context.Background(), "redis://"+mr.Addr(), logger)
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	assert.Error(t, redisstore.Ping(context.Background(), client))
}
