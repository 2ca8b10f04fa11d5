// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command langgate serves and demonstrates the OTP gated language switcher.
//
// # Commands
//
//   - serve:     HTTP API with health probes and graceful shutdown.
//   - demo:      plays one switch in the terminal and prints every page state.
//   - languages: lists the catalog.
//   - version:   prints the build version.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/langgate/internal/platform/constants"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Language picker gated by a mock phone/email OTP check",
		Long: `langgate switches the display language only after a simulated
phone or email verification. The OTP is never really sent; it is logged.

Configuration is read from the environment (SERVER_PORT, REDIS_URL, OTP_CODE,
LANGGATE_AUTOPILOT, DELAY_*, BANNER_TTL, CATALOG_PATH, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newDemoCmd(),
		newLanguagesCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.AppName, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", constants.AppName, constants.AppVersion)
		},
	}
}

// newLogger builds the JSON logger every command shares.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}
