// ecsim runs a small entity-component-system simulation in the terminal.
// The player drifts through a field of rocks and markers; WASD or the arrow
// keys steer it and Escape or q quits. Build:
//
//	go build -o ecsim ./cmd/ecsim
//
// Usage:
//
//	./ecsim [--fps 60] [--drifters 3] [--ticks 0] [--log ecsim.log] [--seed 0]
//
// Every flag defaults to its ECSIM_* environment variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"ecsim/internal/app"
	"ecsim/internal/config"
	"ecsim/internal/ecs"
	"ecsim/internal/factory"
	"ecsim/internal/input"
	"ecsim/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, seed, err := loadConfig(args)
	if eris.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := simulate(cfg, seed, logger); err != nil {
		logger.Error().Str("trace", eris.ToString(err, true)).Msg("simulation failed")
		return err
	}
	return nil
}

// loadConfig reads the environment, applies args over it and validates the
// result once.
func loadConfig(args []string) (config.Config, int64, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, 0, err
	}
	seed, err := parseFlags(&cfg, args)
	if err != nil {
		return config.Config{}, 0, err
	}
	return cfg, seed, nil
}

// parseFlags overrides cfg with command-line flags and returns the world seed.
func parseFlags(cfg *config.Config, args []string) (int64, error) {
	fs := flag.NewFlagSet("ecsim", flag.ContinueOnError)
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second (minimum 24)")
	fs.IntVar(&cfg.Drifters, "drifters", cfg.Drifters, "Number of drifting rocks and markers to scatter")
	fs.Uint64Var(&cfg.MaxTicks, "ticks", cfg.MaxTicks, "Stop after this many ticks (0 runs until quit)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append JSON logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	seed := fs.Int64("seed", 0, "World seed (0 picks one from the clock)")
	if err := fs.Parse(args); err != nil {
		return 0, eris.Wrap(err, "parse flags")
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	return *seed, nil
}

// newLogger opens cfg.LogFile for appending. Without a log file every event
// is discarded, since the terminal belongs to the renderer.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	lvl, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "open log file %s", cfg.LogFile)
	}
	return newFileLogger(f, lvl), func() { f.Close() }, nil
}

func newFileLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "ecsim").Logger()
}

// buildWorld creates the player at (10, 10) moving at (5, 1) and scatters
// drifters around it.
func buildWorld(cfg config.Config, seed int64) (*ecs.World, error) {
	w := ecs.NewWorld()
	if _, err := factory.NewPlayer(w, 10, 10, 5, 1); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	if err := factory.Populate(w, rng, cfg.Drifters, 10, 10, 20, 3); err != nil {
		return nil, err
	}
	return w, nil
}

func simulate(cfg config.Config, seed int64, logger zerolog.Logger) error {
	world, err := buildWorld(cfg, seed)
	if err != nil {
		return err
	}
	ecs.LogWorld(&logger, world, zerolog.InfoLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "init screen")
	}
	defer screen.Fini()

	poller := input.NewPoller(screen)
	a := app.New(world, poller,
		app.WithRenderer(render.NewRenderer(screen, render.DefaultTheme)),
		app.WithLogger(logger),
		app.WithMaxTicks(cfg.MaxTicks),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	go func() {
		select {
		case <-poller.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	err = a.Run(ctx, app.NewExecutionLoop(cfg.FPS))
	ecs.LogWorld(&logger, a.World(), zerolog.InfoLevel)
	if eris.Is(err, context.Canceled) {
		return nil
	}
	return err
}
