// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flow

import (
	"errors"

	"github.com/taibuivan/langgate/internal/platform/apperr"
)

var (
	// ErrInvalidOTP is returned when a submitted code does not verify.
	ErrInvalidOTP = apperr.Unprocessable("INVALID_OTP", "Invalid OTP. Please try again.")
	// ErrUnknownLanguage is returned when selecting a code outside the catalog.
	ErrUnknownLanguage = apperr.NotFound("Language")
	// ErrNoSession is returned for session operations while the modal is closed.
	ErrNoSession = apperr.Conflict("No language switch is in progress")
	// ErrWrongStep is returned for an operation that does not belong to the current step.
	ErrWrongStep = apperr.Conflict("Operation not allowed at this step")
	// ErrSubmitting is returned while a code is being sent.
	ErrSubmitting = apperr.Conflict("A code is already being sent")
)

// errStale marks a timer or runtime event for a session or banner that no longer exists.
var errStale = errors.New("stale event")
