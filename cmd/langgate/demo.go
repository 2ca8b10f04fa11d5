// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/langgate/internal/core/flow"
	"github.com/taibuivan/langgate/internal/core/otp"
	"github.com/taibuivan/langgate/internal/core/page"
	"github.com/taibuivan/langgate/internal/platform/clock"
	"github.com/taibuivan/langgate/internal/platform/config"
)

// demoOptions are the demo command's flags.
type demoOptions struct {
	Language  string
	Contact   string
	Code      string
	Virtual   bool
	Autopilot bool
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Play one language switch and print every page state",
		Long: `Play one language switch in the terminal.

The demo selects --lang, enters --contact and submits it. With autopilot the
issued code is typed in and submitted on its own; without it --code is
submitted once the OTP step is reached. Every state change is printed.

--virtual runs on a simulated clock and finishes instantly.`,
		Example: `  langgate demo --lang fr --contact a@b.com
  langgate demo --lang es --contact 5551234 --autopilot=false --code 0000 --virtual`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("autopilot") {
				opts.Autopilot = cfg.Autopilot
			}
			if opts.Code == "" {
				opts.Code = cfg.OTPCode
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Debug)
			return runDemo(cmd.Context(), cmd.OutOrStdout(), log, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Language, "lang", "fr", "Language to switch to")
	cmd.Flags().StringVar(&opts.Contact, "contact", "", "Phone number or email (default depends on the language)")
	cmd.Flags().StringVar(&opts.Code, "code", "", "Code to submit when autopilot is off (default OTP_CODE)")
	cmd.Flags().BoolVar(&opts.Virtual, "virtual", false, "Run on a simulated clock")
	cmd.Flags().BoolVar(&opts.Autopilot, "autopilot", true, "Type in and submit the issued code automatically")

	return cmd
}

// demoClock is either the wall clock or a virtual one the demo advances itself.
type demoClock struct {
	clock.Clock
	virtual *clock.Virtual
	start   time.Time
}

// wait blocks until done closes, at most d. A virtual clock is advanced by d instead.
func (c demoClock) wait(ctx context.Context, done <-chan struct{}, d time.Duration) error {
	if c.virtual != nil {
		c.virtual.Advance(d)
	} else {
		timer := time.NewTimer(d + time.Second)
		defer timer.Stop()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	select {
	case <-done:
		return nil
	default:
		return errors.New("demo: timed out waiting for the flow")
	}
}

// demoProgress closes its channels when the observer sees each milestone.
type demoProgress struct {
	otpStep, switched, cleared chan struct{}
	once                       [3]sync.Once
}

func newDemoProgress() *demoProgress {
	return &demoProgress{
		otpStep:  make(chan struct{}),
		switched: make(chan struct{}),
		cleared:  make(chan struct{}),
	}
}

func (p *demoProgress) observe(snap flow.Snapshot, target string) {
	if snap.Step() == flow.StepAwaitingOTP {
		p.once[0].Do(func() { close(p.otpStep) })
	}
	if snap.ActiveLanguage == target && snap.BannerVisible {
		p.once[1].Do(func() { close(p.switched) })
	}
	if snap.ActiveLanguage == target && !snap.BannerVisible && snap.Session == nil {
		p.once[2].Do(func() { close(p.cleared) })
	}
}

func runDemo(ctx context.Context, out io.Writer, log *slog.Logger, cfg *config.Config, opts demoOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if _, ok := catalog.Lookup(opts.Language); !ok {
		return fmt.Errorf("demo: unknown language %q", opts.Language)
	}
	if opts.Contact == "" {
		opts.Contact = defaultContact(opts.Language)
	}

	clk := demoClock{Clock: clock.Real{}}
	if opts.Virtual {
		clk.virtual = clock.NewVirtual(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		clk.Clock = clk.virtual
	}
	clk.start = clk.Now()

	authority, rdb, err := newAuthority(ctx, cfg, log)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	progress := newDemoProgress()
	settings := settingsFrom(cfg)
	settings.Autopilot = opts.Autopilot

	var printErr error
	switcher, err := flow.New(flow.Dependencies{
		Catalog:   catalog,
		Authority: authority,
		Sender:    otp.NewLogSender(log),
		Clock:     clk,
		Logger:    log,
		Observer: func(snap flow.Snapshot) {
			fmt.Fprintf(out, "\n[+%5dms]\n", clk.Now().Sub(clk.start).Milliseconds())
			if err := page.WriteText(out, page.Render(snap)); err != nil && printErr == nil {
				printErr = err
			}
			progress.observe(snap, opts.Language)
		},
	}, settings)
	if err != nil {
		return err
	}

	if err := page.WriteText(out, page.Render(switcher.Snapshot())); err != nil {
		return err
	}

	if err := switcher.SelectLanguage(ctx, opts.Language); err != nil {
		return err
	}
	if err := switcher.SetContact(ctx, opts.Contact); err != nil {
		return err
	}
	if err := switcher.SubmitContact(ctx); err != nil {
		return err
	}

	delays := settings.Delays
	if opts.Autopilot {
		if err := clk.wait(ctx, progress.switched, delays.Send+delays.AutoFill+delays.AutoSubmit); err != nil {
			return err
		}
	} else {
		if err := clk.wait(ctx, progress.otpStep, delays.Send); err != nil {
			return err
		}
		if err := switcher.SetOTP(ctx, opts.Code); err != nil {
			return err
		}
		if err := switcher.SubmitOTP(ctx, opts.Code); err != nil {
			return err
		}
	}

	if err := clk.wait(ctx, progress.cleared, delays.Banner); err != nil {
		return err
	}
	return printErr
}

// defaultContact picks a sample input for the language's medium.
func defaultContact(code string) string {
	if otp.MediumFor(code) == otp.MediumEmail {
		return "user@example.com"
	}
	return "5551234"
}
