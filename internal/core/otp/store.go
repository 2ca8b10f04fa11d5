// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package otp

import (
	"context"
	"errors"
	"time"
)

// ErrChallengeNotFound is returned when no live challenge exists for a session.
var ErrChallengeNotFound = errors.New("otp challenge not found")

// ChallengeStore holds the issued code per auth session until it expires.
type ChallengeStore interface {
	// Put stores code for sessionID for ttl, replacing any previous code.
	Put(ctx context.Context, sessionID, code string, ttl time.Duration) error
	// Get returns the live code for sessionID, or ErrChallengeNotFound.
	Get(ctx context.Context, sessionID string) (string, error)
	// Delete removes the challenge. Deleting a missing challenge is not an error.
	Delete(ctx context.Context, sessionID string) error
}
