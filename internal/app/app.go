// Package app drives a World: it feeds input to the player, runs every
// system once per tick and stops when the player issues Quit.
package app

import (
	"context"
	"time"

	"ecsim/internal/bitvec"
	"ecsim/internal/command"
	"ecsim/internal/component"
	"ecsim/internal/ecs"
	"ecsim/internal/system"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// InputSource supplies the keys pressed since the previous tick.
type InputSource interface {
	Snapshot() bitvec.BitVector
}

// Renderer draws the world after each tick.
type Renderer interface {
	Draw(w *ecs.World, tick uint64)
}

// pass runs one system over the storages of two component types.
type pass struct {
	name        string
	system      ecs.System
	dependent   component.Type
	independent component.Type
}

// App owns a World and the systems that update it.
type App struct {
	world    *ecs.World
	input    InputSource
	renderer Renderer
	logger   zerolog.Logger
	passes   []pass
	ticks    uint64
	maxTicks uint64
}

// Option configures an App.
type Option func(*App)

// WithRenderer draws the world after every tick.
func WithRenderer(r Renderer) Option {
	return func(a *App) { a.renderer = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithMaxTicks stops the app after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) Option {
	return func(a *App) { a.maxTicks = n }
}

// New creates an App over world. input may be nil.
func New(world *ecs.World, input InputSource, opts ...Option) *App {
	a := &App{
		world:  world,
		input:  input,
		logger: zerolog.Nop(),
		passes: []pass{
			{"keys", system.Keys{}, component.CVelocity, component.CKeysPressed},
			{"command", system.Command{}, component.CCommands, component.CKeysPressed},
			{"movement", system.Movement{}, component.CPosition, component.CVelocity},
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// World returns the world the app updates.
func (a *App) World() *ecs.World { return a.world }

// Ticks returns the number of completed ticks.
func (a *App) Ticks() uint64 { return a.ticks }

// Run ticks the app on loop until it quits, fails or ctx is done.
func (a *App) Run(ctx context.Context, loop *ExecutionLoop) error {
	a.logSystems()
	a.logger.Info().Dur("interval", loop.Interval()).Msg("simulation started")

	var tickErr error
	err := loop.Run(ctx, func(delta time.Duration) Flow {
		flow, err := a.Tick(delta)
		if err != nil {
			tickErr = err
			return Quit
		}
		return flow
	})
	if tickErr != nil {
		return tickErr
	}
	a.logger.Info().Uint64("ticks", a.ticks).Msg("simulation stopped")
	return err
}

// Tick performs one frame: input, then every system in order, then drawing.
// It returns Quit once the player has issued the Quit command or the tick
// limit is reached.
func (a *App) Tick(delta time.Duration) (Flow, error) {
	if err := a.feedInput(); err != nil {
		return Quit, err
	}
	for _, p := range a.passes {
		n, err := ecs.Run(p.system, a.world.Storage(p.dependent), a.world.Storage(p.independent), delta)
		if err != nil {
			return Quit, eris.Wrapf(err, "run %s system", p.name)
		}
		a.logger.Trace().Str("system", p.name).Int("updates", n).Msg("system pass")
	}
	a.ticks++

	if a.renderer != nil {
		a.renderer.Draw(a.world, a.ticks)
	}
	if a.playerQuit() {
		a.logger.Info().Uint64("tick", a.ticks).Msg("player quit")
		return Quit, nil
	}
	if a.maxTicks > 0 && a.ticks >= a.maxTicks {
		a.logger.Info().Uint64("tick", a.ticks).Msg("tick limit reached")
		return Quit, nil
	}
	return Continue, nil
}

// feedInput replaces the player's KeysPressed with the latest snapshot.
// Players without a KeysPressed component are left alone.
func (a *App) feedInput() error {
	if a.input == nil {
		return nil
	}
	keys := a.input.Snapshot()
	id, ok := a.world.PlayerID()
	if !ok {
		return nil
	}
	if _, ok := a.world.Keys().Get(id); !ok {
		return nil
	}
	if err := a.world.Keys().Add(id, component.KeysPressed(keys)); err != nil {
		return eris.Wrap(err, "feed input")
	}
	return nil
}

func (a *App) playerQuit() bool {
	id, ok := a.world.PlayerID()
	if !ok {
		return false
	}
	cmds, ok := a.world.Commands().Get(id)
	return ok && cmds.Type() == component.CCommands && cmds.Flags.IsSet(command.Quit)
}

func (a *App) logSystems() {
	names := zerolog.Arr()
	for _, p := range a.passes {
		names = names.Str(p.name)
	}
	a.logger.Debug().Int("total_systems", len(a.passes)).Array("systems", names).Msg("registered systems")
}
