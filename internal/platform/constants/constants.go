// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Flow Timing: default delays of the language switch flow.
  - HTTP Headers and JSON field names.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "langgate"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Flow Timing

const (
	// SendDelay is the simulated latency between SubmitContact and the OTP step.
	SendDelay = 2000 * time.Millisecond

	// AutoFillDelay is the wait after reaching the OTP step before the code is typed in.
	AutoFillDelay = 1500 * time.Millisecond

	// AutoSubmitDelay is the wait after auto-fill before the code is submitted.
	AutoSubmitDelay = 1000 * time.Millisecond

	// BannerTTL is how long the success banner stays visible.
	BannerTTL = 3000 * time.Millisecond

	// DefaultOTPCode is the code every challenge is issued with.
	DefaultOTPCode = "1234"

	// OTPCodeRandom as OTP_CODE switches to a fresh random code per challenge.
	OTPCodeRandom = "random"

	// RandomOTPDigits is the length of a random code.
	RandomOTPDigits = 4

	// DefaultLanguage is the active language before any switch.
	DefaultLanguage = "en"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixOTPChallenge = "langgate:otp:"
)
