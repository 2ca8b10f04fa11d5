// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/langgate/internal/core/flow"
	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/platform/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func discardLogger() *slog.Logger { return slog.New(slog.NewJSONHandler(io.Discard, nil)) }

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "langgate version")
}

func TestLanguagesCmd(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"languages"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[1], "en "))
	assert.True(t, strings.HasPrefix(lines[6], "fr "))
	assert.Contains(t, lines[6], "email")
	assert.Contains(t, lines[1], "phone")
}

func TestRunDemo_Autopilot(t *testing.T) {
	var out bytes.Buffer
	opts := demoOptions{Language: "fr", Contact: "a@b.com", Virtual: true, Autopilot: true}

	require.NoError(t, runDemo(context.Background(), &out, discardLogger(), testConfig(t), opts))

	text := out.String()
	assert.Contains(t, text, "-- Verify Your Identity --")
	assert.Contains(t, text, "<Sending OTP...> (disabled)")
	assert.Contains(t, text, "[+ 2000ms]")
	assert.Contains(t, text, `One-Time Password: "1234"`)
	assert.Contains(t, text, "[+ 4500ms]")
	assert.Contains(t, text, ">> Language successfully changed to Français!")
	assert.Contains(t, text, "[+ 7500ms]")
	assert.Contains(t, text, "Translated Content (fr): Bienvenue sur notre site web multilingue !")
}

func TestRunDemo_ManualWrongCode(t *testing.T) {
	var out bytes.Buffer
	opts := demoOptions{Language: "es", Virtual: true, Autopilot: false, Code: "0000"}

	err := runDemo(context.Background(), &out, discardLogger(), testConfig(t), opts)
	require.ErrorIs(t, err, flow.ErrInvalidOTP)
	assert.Contains(t, out.String(), `Phone Number: "5551234"`)
}

func TestRunDemo_ManualRightCode(t *testing.T) {
	var out bytes.Buffer
	opts := demoOptions{Language: "pt", Virtual: true, Autopilot: false, Code: "1234"}

	require.NoError(t, runDemo(context.Background(), &out, discardLogger(), testConfig(t), opts))
	assert.Contains(t, out.String(), ">> Language successfully changed to Português!")
}

func TestRunDemo_UnknownLanguage(t *testing.T) {
	err := runDemo(context.Background(), io.Discard, discardLogger(), testConfig(t), demoOptions{Language: "de", Virtual: true})
	assert.ErrorContains(t, err, "unknown language")
}

func TestSettingsFrom(t *testing.T) {
	cfg := testConfig(t)
	settings := settingsFrom(cfg)

	assert.Equal(t, flow.DefaultDelays(), settings.Delays)
	assert.True(t, settings.Autopilot)
	assert.Equal(t, "en", settings.InitialLanguage)
}

func TestGeneratorFrom(t *testing.T) {
	code, err := generatorFrom(&config.Config{OTPCode: "4242"}).Generate()
	require.NoError(t, err)
	assert.Equal(t, "4242", code)

	code, err = generatorFrom(&config.Config{OTPCode: "random"}).Generate()
	require.NoError(t, err)
	assert.Len(t, code, 4)
}

func TestWriteLanguages(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeLanguages(&out, language.Default()))
	assert.Contains(t, out.String(), "Bem-vindo ao nosso site multilíngue!")
}
