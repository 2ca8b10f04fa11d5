// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flow

import (
	"time"

	"github.com/taibuivan/langgate/internal/core/otp"
)

// Event is an input to [Reducer.Reduce]. User actions and timer expiries are both events.
type Event interface{ event() }

// # User Events

// LanguageSelected opens a new session for Code. SessionID names it.
type LanguageSelected struct {
	Code      string
	SessionID string
}

// ContactChanged replaces the contact input.
type ContactChanged struct{ Value string }

// ContactSubmitted asks for a code to be sent to the current contact.
type ContactSubmitted struct{}

// OTPChanged replaces the code input.
type OTPChanged struct{ Value string }

// OTPSubmitted submits Code for verification. With UseInput set, the
// session's current OTPInput is submitted instead and Code is ignored.
type OTPSubmitted struct {
	Code     string
	UseInput bool
}

// Dismissed closes the modal without switching.
type Dismissed struct{}

// # Runtime Events

// OTPIssued records the code issued for a session.
type OTPIssued struct {
	Generation uint64
	Code       string
}

// SendFailed reverts a submit whose delivery failed.
type SendFailed struct{ Generation uint64 }

// OTPVerified carries the verifier's verdict.
type OTPVerified struct {
	Generation uint64
	OK         bool
}

// # Timer Events

// OTPStepReached fires when the simulated send completes.
type OTPStepReached struct{ Generation uint64 }

// AutoFilled fires when autopilot types the issued code.
type AutoFilled struct{ Generation uint64 }

// AutoSubmitted fires when autopilot submits the code it typed.
type AutoSubmitted struct {
	Generation uint64
	Code       string
}

// BannerExpired hides the banner shown for BannerGeneration.
type BannerExpired struct{ BannerGeneration uint64 }

func (LanguageSelected) event() {}
func (ContactChanged) event()   {}
func (ContactSubmitted) event() {}
func (OTPChanged) event()       {}
func (OTPSubmitted) event()     {}
func (Dismissed) event()        {}
func (OTPIssued) event()        {}
func (SendFailed) event()       {}
func (OTPVerified) event()      {}
func (OTPStepReached) event()   {}
func (AutoFilled) event()       {}
func (AutoSubmitted) event()    {}
func (BannerExpired) event()    {}

// # Effects

// Effect is work the reducer asks the runtime to perform.
type Effect interface{ effect() }

// TimerScope groups timers so they can be cancelled together.
type TimerScope int

const (
	// ScopeSession timers belong to the open session.
	ScopeSession TimerScope = iota
	// ScopeBanner is the single banner expiry timer.
	ScopeBanner
)

// Schedule delivers Event after After.
type Schedule struct {
	Scope TimerScope
	After time.Duration
	Event Event
}

// CancelTimers stops every pending timer in Scope.
type CancelTimers struct{ Scope TimerScope }

// SendOTP issues a code for the session and hands it to the sender.
type SendOTP struct {
	Generation uint64
	Message    otp.Message
}

// VerifyOTP checks Code against the session's challenge.
type VerifyOTP struct {
	Generation uint64
	SessionID  string
	Code       string
	Auto       bool
}

// RevokeOTP drops a superseded session's challenge.
type RevokeOTP struct{ SessionID string }

func (Schedule) effect()     {}
func (CancelTimers) effect() {}
func (SendOTP) effect()      {}
func (VerifyOTP) effect()    {}
func (RevokeOTP) effect()    {}
