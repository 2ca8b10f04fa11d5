// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package otp

import (
	"crypto/rand"
	"fmt"
)

// Generator produces the code for a new challenge.
type Generator interface {
	Generate() (string, error)
}

// FixedCode always yields the same code.
type FixedCode string

// Generate returns the fixed code.
func (c FixedCode) Generate() (string, error) { return string(c), nil }

// RandomDigits yields an n-digit numeric code from crypto/rand.
type RandomDigits int

// Generate returns a fresh numeric code.
func (n RandomDigits) Generate() (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("otp: digit count must be positive, got %d", int(n))
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("otp: reading random bytes: %w", err)
	}
	for i := range b {
		b[i] = '0' + b[i]%10
	}
	return string(b), nil
}
