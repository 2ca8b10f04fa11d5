// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flow

import (
	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/otp"
)

// Snapshot is the read-only state handed to renderers.
type Snapshot struct {
	ActiveLanguage string           `json:"active_language"`
	Session        *SessionSnapshot `json:"session"`
	BannerVisible  bool             `json:"banner_visible"`

	catalog *language.Catalog
}

// SessionSnapshot is the renderable part of an open session.
type SessionSnapshot struct {
	ID           string     `json:"id"`
	LanguageCode string     `json:"language_code"`
	Medium       otp.Medium `json:"medium"`
	Step         Step       `json:"step"`
	ContactInput string     `json:"contact_input"`
	OTPInput     string     `json:"otp_input"`
	Submitting   bool       `json:"submitting"`
}

// Step reports the current step, StepIdle when no session is open.
func (s Snapshot) Step() Step {
	if s.Session == nil {
		return StepIdle
	}
	return s.Session.Step
}

// Catalog returns the catalog the snapshot was taken against.
func (s Snapshot) Catalog() *language.Catalog { return s.catalog }

func snapshotOf(s State, catalog *language.Catalog) Snapshot {
	snap := Snapshot{
		ActiveLanguage: s.Active,
		BannerVisible:  s.Banner,
		catalog:        catalog,
	}
	if s.Session != nil {
		snap.Session = &SessionSnapshot{
			ID:           s.Session.ID,
			LanguageCode: s.Session.LanguageCode,
			Medium:       otp.MediumFor(s.Session.LanguageCode),
			Step:         s.Session.Step,
			ContactInput: s.Session.ContactInput,
			OTPInput:     s.Session.OTPInput,
			Submitting:   s.Session.Submitting,
		}
	}
	return snap
}
