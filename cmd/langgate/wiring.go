// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/langgate/internal/core/flow"
	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/otp"
	"github.com/taibuivan/langgate/internal/platform/config"
	"github.com/taibuivan/langgate/internal/platform/constants"
	redisstore "github.com/taibuivan/langgate/internal/platform/redis"
)

// settingsFrom maps configuration onto flow settings.
func settingsFrom(cfg *config.Config) flow.Settings {
	return flow.Settings{
		Delays: flow.Delays{
			Send:       cfg.SendDelay,
			AutoFill:   cfg.AutoFillDelay,
			AutoSubmit: cfg.AutoSubmitDelay,
			Banner:     cfg.BannerTTL,
		},
		Autopilot:       cfg.Autopilot,
		InitialLanguage: constants.DefaultLanguage,
	}
}

func loadCatalog(cfg *config.Config) (*language.Catalog, error) {
	return language.LoadFile(cfg.CatalogPath)
}

func generatorFrom(cfg *config.Config) otp.Generator {
	if cfg.RandomOTP() {
		return otp.RandomDigits(constants.RandomOTPDigits)
	}
	return otp.FixedCode(cfg.OTPCode)
}

// newAuthority issues challenges into Redis when REDIS_URL is set and into
// process memory otherwise. The returned client is nil in the memory case.
func newAuthority(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*otp.Service, *goredis.Client, error) {
	if cfg.RedisURL == "" {
		logger.Info("otp_store_selected", slog.String("store", "memory"))
		return otp.NewService(generatorFrom(cfg), otp.NewMemoryStore(nil), cfg.OTPTTL), nil, nil
	}

	client, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("otp_store_selected", slog.String("store", "redis"))
	return otp.NewService(generatorFrom(cfg), otp.NewRedisStore(client), cfg.OTPTTL), client, nil
}
