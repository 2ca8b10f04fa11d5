// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flow

import (
	"fmt"

	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/otp"
	"github.com/taibuivan/langgate/internal/platform/validate"
)

// maxContactLen caps the free-text contact field.
const maxContactLen = 254

// Reducer holds the static inputs of the transition function.
type Reducer struct {
	Catalog   *language.Catalog
	Delays    Delays
	Autopilot bool
}

// Reduce applies ev to s. It never mutates s and performs no I/O; side effects
// are returned for the runtime to carry out. On error the returned state is s.
func (r Reducer) Reduce(s State, ev Event) (State, []Effect, error) {
	next := s.clone()

	var (
		effects []Effect
		err     error
	)

	switch e := ev.(type) {
	case LanguageSelected:
		effects, err = r.selectLanguage(&next, e)
	case ContactChanged:
		err = r.changeContact(&next, e)
	case ContactSubmitted:
		effects, err = r.submitContact(&next)
	case OTPChanged:
		err = r.changeOTP(&next, e)
	case OTPSubmitted:
		effects, err = r.submitOTP(&next, e)
	case Dismissed:
		effects, err = r.dismiss(&next)
	case OTPIssued:
		err = r.recordIssued(&next, e)
	case SendFailed:
		err = r.sendFailed(&next, e)
	case OTPVerified:
		effects, err = r.verified(&next, e)
	case OTPStepReached:
		effects, err = r.otpStepReached(&next, e)
	case AutoFilled:
		effects, err = r.autoFilled(&next, e)
	case AutoSubmitted:
		effects, err = r.autoSubmitted(&next, e)
	case BannerExpired:
		err = r.bannerExpired(&next, e)
	default:
		err = fmt.Errorf("flow: unknown event %T", ev)
	}

	if err != nil {
		return s, nil, err
	}
	return next, effects, nil
}

// # User Events

func (r Reducer) selectLanguage(s *State, e LanguageSelected) ([]Effect, error) {
	if _, ok := r.Catalog.Lookup(e.Code); !ok {
		return nil, ErrUnknownLanguage
	}

	effects := []Effect{CancelTimers{Scope: ScopeSession}}
	if s.Session != nil {
		effects = append(effects, RevokeOTP{SessionID: s.Session.ID})
	}

	s.Generation++
	s.Session = &Session{
		ID:           e.SessionID,
		Generation:   s.Generation,
		LanguageCode: e.Code,
		Step:         StepAwaitingContact,
	}
	return effects, nil
}

func (r Reducer) changeContact(s *State, e ContactChanged) error {
	if err := requireStep(s, StepAwaitingContact); err != nil {
		return err
	}
	if s.Session.Submitting {
		return ErrSubmitting
	}
	s.Session.ContactInput = e.Value
	return nil
}

func (r Reducer) submitContact(s *State) ([]Effect, error) {
	if err := requireStep(s, StepAwaitingContact); err != nil {
		return nil, err
	}
	session := s.Session
	if session.Submitting {
		return nil, ErrSubmitting
	}

	err := (&validate.Validator{}).
		Required("contact", session.ContactInput).
		MaxLen("contact", session.ContactInput, maxContactLen).
		Err()
	if err != nil {
		return nil, err
	}

	session.Submitting = true
	return []Effect{
		SendOTP{
			Generation: session.Generation,
			Message: otp.Message{
				SessionID:    session.ID,
				LanguageCode: session.LanguageCode,
				Medium:       otp.MediumFor(session.LanguageCode),
				Contact:      session.ContactInput,
			},
		},
		Schedule{Scope: ScopeSession, After: r.Delays.Send, Event: OTPStepReached{Generation: session.Generation}},
	}, nil
}

func (r Reducer) changeOTP(s *State, e OTPChanged) error {
	if err := requireStep(s, StepAwaitingOTP); err != nil {
		return err
	}
	s.Session.OTPInput = e.Value
	return nil
}

func (r Reducer) submitOTP(s *State, e OTPSubmitted) ([]Effect, error) {
	if err := requireStep(s, StepAwaitingOTP); err != nil {
		return nil, err
	}
	code := e.Code
	if e.UseInput {
		code = s.Session.OTPInput
	}
	s.Session.OTPInput = code
	return []Effect{VerifyOTP{Generation: s.Session.Generation, SessionID: s.Session.ID, Code: code}}, nil
}

func (r Reducer) dismiss(s *State) ([]Effect, error) {
	if s.Session == nil {
		return nil, ErrNoSession
	}
	id := s.Session.ID
	s.Session = nil
	return []Effect{CancelTimers{Scope: ScopeSession}, RevokeOTP{SessionID: id}}, nil
}

// # Runtime Events

func (r Reducer) recordIssued(s *State, e OTPIssued) error {
	if !current(s, e.Generation) {
		return errStale
	}
	s.Session.issuedCode = e.Code
	return nil
}

func (r Reducer) sendFailed(s *State, e SendFailed) error {
	if !current(s, e.Generation) {
		return errStale
	}
	s.Session.Submitting = false
	return nil
}

func (r Reducer) verified(s *State, e OTPVerified) ([]Effect, error) {
	if !current(s, e.Generation) || s.Session.Step != StepAwaitingOTP {
		return nil, errStale
	}
	if !e.OK {
		return nil, ErrInvalidOTP
	}

	s.Active = s.Session.LanguageCode
	s.Session = nil
	s.Banner = true
	s.BannerGeneration++

	return []Effect{
		CancelTimers{Scope: ScopeSession},
		CancelTimers{Scope: ScopeBanner},
		Schedule{Scope: ScopeBanner, After: r.Delays.Banner, Event: BannerExpired{BannerGeneration: s.BannerGeneration}},
	}, nil
}

// # Timer Events

func (r Reducer) otpStepReached(s *State, e OTPStepReached) ([]Effect, error) {
	if !current(s, e.Generation) || s.Session.Step != StepAwaitingContact || !s.Session.Submitting {
		return nil, errStale
	}
	s.Session.Step = StepAwaitingOTP
	s.Session.Submitting = false

	if !r.Autopilot {
		return nil, nil
	}
	return []Effect{
		Schedule{Scope: ScopeSession, After: r.Delays.AutoFill, Event: AutoFilled{Generation: e.Generation}},
	}, nil
}

func (r Reducer) autoFilled(s *State, e AutoFilled) ([]Effect, error) {
	if !current(s, e.Generation) || s.Session.Step != StepAwaitingOTP {
		return nil, errStale
	}
	code := s.Session.issuedCode
	s.Session.OTPInput = code
	return []Effect{
		Schedule{Scope: ScopeSession, After: r.Delays.AutoSubmit, Event: AutoSubmitted{Generation: e.Generation, Code: code}},
	}, nil
}

func (r Reducer) autoSubmitted(s *State, e AutoSubmitted) ([]Effect, error) {
	if !current(s, e.Generation) || s.Session.Step != StepAwaitingOTP {
		return nil, errStale
	}
	return []Effect{VerifyOTP{Generation: e.Generation, SessionID: s.Session.ID, Code: e.Code, Auto: true}}, nil
}

func (r Reducer) bannerExpired(s *State, e BannerExpired) error {
	if !s.Banner || s.BannerGeneration != e.BannerGeneration {
		return errStale
	}
	s.Banner = false
	return nil
}

// # Guards

func requireStep(s *State, step Step) error {
	if s.Session == nil {
		return ErrNoSession
	}
	if s.Session.Step != step {
		return ErrWrongStep
	}
	return nil
}

func current(s *State, generation uint64) bool {
	return s.Session != nil && s.Session.Generation == generation
}
