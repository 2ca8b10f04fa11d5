// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flow

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/otp"
	"github.com/taibuivan/langgate/internal/platform/apperr"
	"github.com/taibuivan/langgate/internal/platform/clock"
	"github.com/taibuivan/langgate/internal/platform/constants"
	"github.com/taibuivan/langgate/pkg/uuidv7"
)

// Dependencies are the collaborators a Flow drives.
type Dependencies struct {
	// Catalog lists the selectable languages. Required.
	Catalog *language.Catalog
	// Authority issues and verifies codes. Defaults to otp.Fixed{"1234"}.
	Authority otp.Authority
	// Sender delivers codes. Defaults to a LogSender on Logger.
	Sender otp.Sender
	// Clock schedules timers. Defaults to clock.Real.
	Clock clock.Clock
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// NewSessionID names sessions. Defaults to UUIDv7.
	NewSessionID func() string
	// Observer, if set, receives a snapshot after every applied change.
	// It runs with the flow locked and must not call back into the Flow.
	Observer func(Snapshot)
}

// Settings tune the flow's behavior.
type Settings struct {
	Delays Delays
	// Autopilot types in and submits the issued code on its own.
	Autopilot bool
	// InitialLanguage is the active language at start. Defaults to "en".
	InitialLanguage string
}

// DefaultSettings use the standard delays with autopilot on.
func DefaultSettings() Settings {
	return Settings{
		Delays:          DefaultDelays(),
		Autopilot:       true,
		InitialLanguage: constants.DefaultLanguage,
	}
}

// Flow is the language switch state machine runtime.
//
// # Concurrency
//
// Every event, whether from a caller or a timer, is applied under one mutex,
// so transitions never interleave. Timers of a superseded session are
// stopped, and any that already fired are discarded by generation.
type Flow struct {
	mu      sync.Mutex
	reducer Reducer
	state   State

	authority otp.Authority
	sender    otp.Sender
	clock     clock.Clock
	logger    *slog.Logger
	newID     func() string
	observer  func(Snapshot)

	timers map[TimerScope][]clock.Timer
}

// New builds a Flow in the idle state.
func New(deps Dependencies, settings Settings) (*Flow, error) {
	if deps.Catalog == nil {
		return nil, errors.New("flow: catalog is required")
	}
	if settings.InitialLanguage == "" {
		settings.InitialLanguage = constants.DefaultLanguage
	}
	if _, ok := deps.Catalog.Lookup(settings.InitialLanguage); !ok {
		return nil, errors.New("flow: initial language " + settings.InitialLanguage + " is not in the catalog")
	}

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Authority == nil {
		deps.Authority = otp.Fixed{Expected: constants.DefaultOTPCode}
	}
	if deps.Sender == nil {
		deps.Sender = otp.NewLogSender(deps.Logger)
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.NewSessionID == nil {
		deps.NewSessionID = uuidv7.New
	}

	return &Flow{
		reducer: Reducer{
			Catalog:   deps.Catalog,
			Delays:    settings.Delays,
			Autopilot: settings.Autopilot,
		},
		state:     NewState(settings.InitialLanguage),
		authority: deps.Authority,
		sender:    deps.Sender,
		clock:     deps.Clock,
		logger:    deps.Logger.With(slog.String("component", "flow")),
		newID:     deps.NewSessionID,
		observer:  deps.Observer,
		timers:    make(map[TimerScope][]clock.Timer),
	}, nil
}

// # Operations

// SelectLanguage opens a fresh session for code, discarding any open one.
func (f *Flow) SelectLanguage(ctx context.Context, code string) error {
	return f.dispatch(ctx, LanguageSelected{Code: code, SessionID: f.newID()})
}

// SetContact replaces the phone/email input.
func (f *Flow) SetContact(ctx context.Context, value string) error {
	return f.dispatch(ctx, ContactChanged{Value: value})
}

// SubmitContact sends a code to the current contact input.
// The OTP step is reached once the send delay elapses.
func (f *Flow) SubmitContact(ctx context.Context) error {
	return f.dispatch(ctx, ContactSubmitted{})
}

// SetOTP replaces the code input.
func (f *Flow) SetOTP(ctx context.Context, value string) error {
	return f.dispatch(ctx, OTPChanged{Value: value})
}

// SubmitOTP verifies code. A mismatch returns [ErrInvalidOTP] and leaves the session as is.
func (f *Flow) SubmitOTP(ctx context.Context, code string) error {
	return f.dispatch(ctx, OTPSubmitted{Code: code})
}

// SubmitCurrentOTP verifies whatever the code input holds when the event is applied.
func (f *Flow) SubmitCurrentOTP(ctx context.Context) error {
	return f.dispatch(ctx, OTPSubmitted{UseInput: true})
}

// Dismiss closes the modal and cancels the session's pending timers.
func (f *Flow) Dismiss(ctx context.Context) error {
	return f.dispatch(ctx, Dismissed{})
}

// Snapshot returns a copy of the current state.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return snapshotOf(f.state, f.reducer.Catalog)
}

// Catalog returns the language catalog the flow selects from.
func (f *Flow) Catalog() *language.Catalog {
	return f.reducer.Catalog
}

// # Event Loop

func (f *Flow) dispatch(ctx context.Context, ev Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.apply(ctx, ev)
	if errors.Is(err, errStale) {
		return nil
	}
	return err
}

// fire is the entry point for timer callbacks.
func (f *Flow) fire(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.apply(context.Background(), ev)
	switch {
	case err == nil:
	case errors.Is(err, errStale):
		f.logger.Debug("stale_timer_ignored", slog.String("event", eventName(ev)))
	default:
		f.logger.Warn("timer_event_failed",
			slog.String("event", eventName(ev)),
			slog.Any("error", err),
		)
	}
}

// apply reduces ev, commits the new state and runs its effects. Caller holds f.mu.
func (f *Flow) apply(ctx context.Context, ev Event) error {
	next, effects, err := f.reducer.Reduce(f.state, ev)
	if err != nil {
		return err
	}
	prev := f.state
	f.state = next
	f.logTransition(ctx, prev, next, ev)
	f.notify()

	for _, effect := range effects {
		if err := f.run(ctx, effect); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) run(ctx context.Context, effect Effect) error {
	switch e := effect.(type) {
	case Schedule:
		ev := e.Event
		timer := f.clock.AfterFunc(e.After, func() { f.fire(ev) })
		f.timers[e.Scope] = append(f.timers[e.Scope], timer)
		return nil

	case CancelTimers:
		for _, timer := range f.timers[e.Scope] {
			timer.Stop()
		}
		delete(f.timers, e.Scope)
		return nil

	case RevokeOTP:
		if err := f.authority.Revoke(ctx, e.SessionID); err != nil {
			f.logger.WarnContext(ctx, "otp_revoke_failed",
				slog.String("session_id", e.SessionID),
				slog.Any("error", err),
			)
		}
		return nil

	case SendOTP:
		return f.sendOTP(ctx, e)

	case VerifyOTP:
		ok, err := f.authority.Verify(ctx, e.SessionID, e.Code)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			f.logger.InfoContext(ctx, "otp_rejected",
				slog.String("session_id", e.SessionID),
				slog.Bool("auto", e.Auto),
			)
		}
		return f.apply(ctx, OTPVerified{Generation: e.Generation, OK: ok})
	}
	return nil
}

func (f *Flow) sendOTP(ctx context.Context, e SendOTP) error {
	msg := e.Message

	code, err := f.authority.Issue(ctx, msg.SessionID)
	if err != nil {
		_ = f.apply(ctx, SendFailed{Generation: e.Generation})
		return apperr.Internal(err)
	}
	msg.Code = code

	if err := f.sender.Send(ctx, msg); err != nil {
		_ = f.authority.Revoke(ctx, msg.SessionID)
		_ = f.apply(ctx, SendFailed{Generation: e.Generation})
		return apperr.Internal(err)
	}

	return f.apply(ctx, OTPIssued{Generation: e.Generation, Code: code})
}

func (f *Flow) notify() {
	if f.observer != nil {
		f.observer(snapshotOf(f.state, f.reducer.Catalog))
	}
}

func (f *Flow) logTransition(ctx context.Context, prev, next State, ev Event) {
	switch ev.(type) {
	case LanguageSelected:
		f.logger.InfoContext(ctx, "language_selected",
			slog.String("session_id", next.Session.ID),
			slog.String("language", next.Session.LanguageCode),
		)
	case OTPStepReached:
		f.logger.DebugContext(ctx, "otp_step_reached", slog.String("session_id", next.Session.ID))
	case OTPVerified:
		f.logger.InfoContext(ctx, "language_switched",
			slog.String("from", prev.Active),
			slog.String("to", next.Active),
		)
	case BannerExpired:
		f.logger.DebugContext(ctx, "banner_cleared")
	case Dismissed:
		f.logger.InfoContext(ctx, "session_dismissed", slog.String("session_id", prev.Session.ID))
	}
}

func eventName(ev Event) string {
	switch ev.(type) {
	case OTPStepReached:
		return "otp_step_reached"
	case AutoFilled:
		return "auto_filled"
	case AutoSubmitted:
		return "auto_submitted"
	case BannerExpired:
		return "banner_expired"
	default:
		return "event"
	}
}
