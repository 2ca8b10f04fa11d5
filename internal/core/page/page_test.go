// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package page_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/langgate/internal/core/flow"
	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/page"
	"github.com/taibuivan/langgate/internal/platform/clock"
)

func newFlow(t *testing.T, autopilot bool) (*flow.Flow, *clock.Virtual) {
	t.Helper()

	clk := clock.NewVirtual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	settings := flow.DefaultSettings()
	settings.Autopilot = autopilot

	f, err := flow.New(flow.Dependencies{
		Catalog: language.Default(),
		Clock:   clk,
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}, settings)
	require.NoError(t, err)
	return f, clk
}

func TestRender_Idle(t *testing.T) {
	f, _ := newFlow(t, false)

	view := page.Render(f.Snapshot())

	assert.Equal(t, "Multi-language Experience", view.Title)
	assert.Equal(t, "Select Your Language", view.LanguageList.Heading)
	require.Len(t, view.LanguageList.Languages, 6)
	assert.True(t, view.LanguageList.Languages[0].Active)
	for _, item := range view.LanguageList.Languages[1:] {
		assert.False(t, item.Active, item.Code)
	}

	assert.Equal(t, "en", view.Content.LanguageCode)
	assert.Equal(t, "Welcome to our multi-language website!", view.Content.Text)
	assert.Nil(t, view.Modal)
	assert.Nil(t, view.Banner)
}

func TestRenderModal_ContactStep(t *testing.T) {
	tests := []struct {
		code        string
		label       string
		inputType   string
		placeholder string
	}{
		{"fr", "Email Address", "email", "Enter your email"},
		{"es", "Phone Number", "tel", "Enter your phone number"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			f, _ := newFlow(t, false)
			ctx := context.Background()
			require.NoError(t, f.SelectLanguage(ctx, tt.code))
			require.NoError(t, f.SetContact(ctx, "x"))

			modal := page.RenderModal(f.Snapshot())
			require.NotNil(t, modal)
			assert.Equal(t, "Verify Your Identity", modal.Title)
			assert.Equal(t, flow.StepAwaitingContact, modal.Step)
			assert.Equal(t, tt.code, modal.LanguageCode)
			assert.Equal(t, tt.label, modal.Label)
			assert.Equal(t, tt.inputType, modal.InputType)
			assert.Equal(t, tt.placeholder, modal.Placeholder)
			assert.Equal(t, "x", modal.Value)
			assert.Equal(t, "Send OTP", modal.ButtonLabel)
			assert.False(t, modal.Disabled)
		})
	}
}

func TestRenderModal_SendingAndOTPStep(t *testing.T) {
	f, clk := newFlow(t, false)
	ctx := context.Background()

	require.NoError(t, f.SelectLanguage(ctx, "pt"))
	require.NoError(t, f.SetContact(ctx, "5551234"))
	require.NoError(t, f.SubmitContact(ctx))

	modal := page.RenderModal(f.Snapshot())
	require.NotNil(t, modal)
	assert.Equal(t, "Sending OTP...", modal.ButtonLabel)
	assert.True(t, modal.Disabled)

	clk.Advance(2000 * time.Millisecond)
	require.NoError(t, f.SetOTP(ctx, "12"))

	modal = page.RenderModal(f.Snapshot())
	require.NotNil(t, modal)
	assert.Equal(t, "Enter OTP", modal.Title)
	assert.Equal(t, "One-Time Password", modal.Label)
	assert.Equal(t, "text", modal.InputType)
	assert.Equal(t, "Enter the OTP", modal.Placeholder)
	assert.Equal(t, "12", modal.Value)
	assert.Equal(t, "Verify OTP", modal.ButtonLabel)
	assert.False(t, modal.Disabled)
}

func TestRenderBanner(t *testing.T) {
	f, clk := newFlow(t, false)
	ctx := context.Background()

	require.NoError(t, f.SelectLanguage(ctx, "zh"))
	require.NoError(t, f.SetContact(ctx, "5551234"))
	require.NoError(t, f.SubmitContact(ctx))
	clk.Advance(2000 * time.Millisecond)
	require.NoError(t, f.SubmitOTP(ctx, "1234"))

	view := page.Render(f.Snapshot())
	require.NotNil(t, view.Banner)
	assert.Equal(t, "Language successfully changed to 中文!", view.Banner.Message)
	assert.Nil(t, view.Modal)
	assert.Equal(t, "zh", view.Content.LanguageCode)
	assert.True(t, view.LanguageList.Languages[4].Active)

	clk.Advance(3000 * time.Millisecond)
	assert.Nil(t, page.RenderBanner(f.Snapshot()))
}

func TestWriteText(t *testing.T) {
	f, _ := newFlow(t, false)
	ctx := context.Background()
	require.NoError(t, f.SelectLanguage(ctx, "fr"))
	require.NoError(t, f.SetContact(ctx, "a@b.com"))

	var out strings.Builder
	require.NoError(t, page.WriteText(&out, page.Render(f.Snapshot())))

	text := out.String()
	assert.Contains(t, text, "== Multi-language Experience ==")
	assert.Contains(t, text, "[*🇬🇧 English]")
	assert.Contains(t, text, "[ 🇫🇷 Français]")
	assert.Contains(t, text, "Translated Content (en): Welcome to our multi-language website!")
	assert.Contains(t, text, "-- Verify Your Identity --")
	assert.Contains(t, text, `Email Address: "a@b.com"`)
	assert.Contains(t, text, "<Send OTP>")
	assert.NotContains(t, text, ">>")
}
