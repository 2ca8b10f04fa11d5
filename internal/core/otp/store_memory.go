// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	code string
	// expiresAt is zero for a challenge that never expires.
	expiresAt time.Time
}

// MemoryStore is an in-process [ChallengeStore].
type MemoryStore struct {
	mu   sync.RWMutex
	m    map[string]memoryEntry
	nowF func() time.Time
}

// NewMemoryStore returns an empty store using now for expiry checks.
// A nil now uses time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		m:    make(map[string]memoryEntry),
		nowF: now,
	}
}

// Put stores code for sessionID until ttl elapses. A ttl <= 0 never expires.
func (s *MemoryStore) Put(ctx context.Context, sessionID, code string, ttl time.Duration) error {
	entry := memoryEntry{code: code}
	if ttl > 0 {
		entry.expiresAt = s.nowF().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sessionID] = entry
	return nil
}

// Get returns the code if present and not expired. Expired entries are dropped.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	e, ok := s.m[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", ErrChallengeNotFound
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.nowF()) {
		s.mu.Lock()
		delete(s.m, sessionID)
		s.mu.Unlock()
		return "", ErrChallengeNotFound
	}
	return e.code, nil
}

// Delete removes the challenge for sessionID.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sessionID)
	return nil
}
