// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package otp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"
)

// Authority issues and checks the code for an auth session.
type Authority interface {
	// Issue creates the challenge for sessionID and returns its code.
	Issue(ctx context.Context, sessionID string) (string, error)
	// Verify reports whether code matches the live challenge for sessionID.
	Verify(ctx context.Context, sessionID, code string) (bool, error)
	// Revoke drops the challenge, e.g. when the session is superseded.
	Revoke(ctx context.Context, sessionID string) error
}

// equal compares codes in constant time.
func equal(provided, expected string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// # Fixed

// Fixed is a stateless Authority that accepts one literal for every session.
type Fixed struct {
	Expected string
}

// Issue returns the expected literal.
func (f Fixed) Issue(ctx context.Context, sessionID string) (string, error) {
	return f.Expected, nil
}

// Verify compares code against the expected literal.
func (f Fixed) Verify(ctx context.Context, sessionID, code string) (bool, error) {
	return equal(code, f.Expected), nil
}

// Revoke is a no-op.
func (f Fixed) Revoke(ctx context.Context, sessionID string) error { return nil }

// # Store-backed

// Service issues generated codes into a ChallengeStore.
// A code verifies once; a successful Verify consumes it.
type Service struct {
	generator Generator
	store     ChallengeStore
	ttl       time.Duration
}

// NewService wires a generator and a store. A positive ttl bounds each
// challenge; zero keeps it until it is verified or revoked.
func NewService(generator Generator, store ChallengeStore, ttl time.Duration) *Service {
	return &Service{generator: generator, store: store, ttl: ttl}
}

// Issue generates a code and stores it for sessionID.
func (s *Service) Issue(ctx context.Context, sessionID string) (string, error) {
	code, err := s.generator.Generate()
	if err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, sessionID, code, s.ttl); err != nil {
		return "", fmt.Errorf("otp: storing challenge: %w", err)
	}
	return code, nil
}

// Verify checks code against the stored challenge. A missing or expired
// challenge is a mismatch, not an error.
func (s *Service) Verify(ctx context.Context, sessionID, code string) (bool, error) {
	expected, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, ErrChallengeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("otp: loading challenge: %w", err)
	}
	if !equal(code, expected) {
		return false, nil
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return false, fmt.Errorf("otp: consuming challenge: %w", err)
	}
	return true, nil
}

// Revoke deletes the challenge for sessionID.
func (s *Service) Revoke(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
