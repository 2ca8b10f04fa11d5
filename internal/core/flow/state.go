// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flow

import (
	"fmt"
	"time"

	"github.com/taibuivan/langgate/internal/platform/constants"
)

// Step is the position of an auth session in the verification flow.
type Step int

const (
	// StepIdle means no session is open.
	StepIdle Step = iota
	// StepAwaitingContact waits for a phone number or email address.
	StepAwaitingContact
	// StepAwaitingOTP waits for the one-time code.
	StepAwaitingOTP
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepAwaitingContact:
		return "awaiting_contact"
	case StepAwaitingOTP:
		return "awaiting_otp"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// MarshalText renders the step name in JSON.
func (s Step) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Session is one in-progress language switch attempt.
type Session struct {
	ID           string
	Generation   uint64
	LanguageCode string
	Step         Step
	ContactInput string
	OTPInput     string
	Submitting   bool

	// issuedCode is what autopilot types in. Never rendered.
	issuedCode string
}

// State is everything the flow knows. The zero value is not valid; use [NewState].
type State struct {
	// Active is the applied language code.
	Active string
	// Session is nil while the modal is closed.
	Session *Session
	// Banner is true while the success banner is shown.
	Banner bool
	// BannerGeneration increments on every successful switch.
	BannerGeneration uint64
	// Generation is the last generation handed to a session.
	Generation uint64
}

// NewState returns the idle state with active as the applied language.
func NewState(active string) State {
	return State{Active: active}
}

// Step reports the current step, StepIdle when no session is open.
func (s State) Step() Step {
	if s.Session == nil {
		return StepIdle
	}
	return s.Session.Step
}

// clone copies s so the reducer never mutates its input.
func (s State) clone() State {
	if s.Session != nil {
		session := *s.Session
		s.Session = &session
	}
	return s
}

// # Timing

// Delays are the timer lengths used by the flow.
type Delays struct {
	// Send is the simulated network latency of SubmitContact.
	Send time.Duration
	// AutoFill is the wait before autopilot types the code.
	AutoFill time.Duration
	// AutoSubmit is the wait after auto-fill before autopilot submits.
	AutoSubmit time.Duration
	// Banner is how long the success banner stays up.
	Banner time.Duration
}

// DefaultDelays returns 2000 ms, 1500 ms, 1000 ms and 3000 ms.
func DefaultDelays() Delays {
	return Delays{
		Send:       constants.SendDelay,
		AutoFill:   constants.AutoFillDelay,
		AutoSubmit: constants.AutoSubmitDelay,
		Banner:     constants.BannerTTL,
	}
}
