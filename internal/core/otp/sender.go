// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package otp

import (
	"context"
	"log/slog"
)

// Message is one code delivery request.
type Message struct {
	SessionID    string
	LanguageCode string
	Medium       Medium
	Contact      string
	Code         string
}

// Sender delivers a code to a contact.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender "delivers" by writing a log line. The code itself is not logged.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender returns a Sender that only logs.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the destination medium and contact.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "otp_dispatched",
		slog.String("session_id", msg.SessionID),
		slog.String("language", msg.LanguageCode),
		slog.String("medium", string(msg.Medium)),
		slog.String("contact", msg.Contact),
	)
	return nil
}
