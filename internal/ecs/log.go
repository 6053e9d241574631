package ecs

import (
	"ecsim/internal/component"

	"github.com/rs/zerolog"
)

// LogWorld logs the size of every storage and the player index.
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	sizes := zerolog.Dict()
	for _, t := range component.Types() {
		sizes = sizes.Int(t.String(), w.Storage(t).Size())
	}
	ev := logger.WithLevel(level).Dict("storages", sizes)
	if id, ok := w.PlayerID(); ok {
		ev = ev.Uint64("player_id", uint64(id))
	}
	ev.Msg("world")
}
