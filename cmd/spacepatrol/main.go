package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spacepatrol/space_patrol/internal/config"
	"github.com/spacepatrol/space_patrol/internal/console"
	"github.com/spacepatrol/space_patrol/internal/frontend"
	"github.com/spacepatrol/space_patrol/internal/game"
	"github.com/spacepatrol/space_patrol/internal/log"
	"github.com/spacepatrol/space_patrol/internal/sfx"
	"github.com/spacepatrol/space_patrol/internal/tui"
	"github.com/spacepatrol/space_patrol/internal/window"
)

// commsHistory is how many lines the framed front ends keep.
const commsHistory = 100

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic", "error", r, "stack", string(debug.Stack()))
			log.Close()
			fmt.Fprintln(os.Stderr, "Space Patrol crashed:", r)
			os.Exit(1)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run plays one session. Quitting and being destroyed both return nil.
func run(cfg config.Config) error {
	if cfg.LogFile != "" {
		if err := log.SetFileOutput(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		}
	}
	defer log.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := log.With("session", uuid.NewString())
	logger.Info("starting", "seed", seed, "frontend", cfg.Frontend, "sound", cfg.Sound)

	dice := game.NewDice(seed)
	g := game.NewGame(cfg.PlayerName, dice)
	g.RearmPirates = cfg.Rearm

	decorate := func(p game.Presenter) game.Presenter { return p }
	if cfg.Sound {
		sp := sfx.NewSpeaker()
		if err := sp.Initialize(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer sp.Close()
			decorate = func(p game.Presenter) game.Presenter { return sfx.Wrap(p, sp) }
		}
	}

	mode := cfg.Frontend
	if mode == config.FrontendTUI && !isatty.IsTerminal(os.Stdout.Fd()) {
		logger.Warn("stdout is not a terminal, using the console")
		mode = config.FrontendConsole
	}

	switch mode {
	case config.FrontendTUI:
		return runFramed(g, dice, logger, decorate, func(m *frontend.Mailbox, k *frontend.Keypad) error {
			t, err := tui.New(m, k)
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			t.Run()
			return nil
		})
	case config.FrontendWindow:
		return runFramed(g, dice, logger, decorate, func(m *frontend.Mailbox, k *frontend.Keypad) error {
			return window.New(m, k).Run()
		})
	default:
		color := cfg.Color != config.ColorNever && isatty.IsTerminal(os.Stdout.Fd())
		c := console.New(os.Stdin, os.Stdout, color)
		c.Banner()
		state, err := game.NewSession(g, c, decorate(c), dice, logger).Run()
		logger.Info("finished", "state", state)
		return err
	}
}

// runFramed runs the session on its own goroutine while ui owns the calling
// one, which Ebitengine requires to be the main goroutine. Leaving the ui
// ends the session.
func runFramed(g *game.Game, dice game.Dice, logger *slog.Logger, decorate func(game.Presenter) game.Presenter,
	ui func(*frontend.Mailbox, *frontend.Keypad) error) error {
	m := frontend.NewMailbox(commsHistory)
	k := frontend.NewKeypad()
	s := game.NewSession(g, k, decorate(m), dice, logger)

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("session panic", "error", r, "stack", string(debug.Stack()))
				m.Finish()
				done <- fmt.Errorf("session panic: %v", r)
			}
		}()
		state, err := s.Run()
		logger.Info("finished", "state", state)
		m.Finish()
		done <- err
	}()

	uiErr := ui(m, k)
	k.Close()
	return errors.Join(uiErr, <-done)
}
