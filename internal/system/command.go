package system

import (
	"time"

	"ecsim/internal/command"
	"ecsim/internal/component"
	"ecsim/internal/input"
)

// Command issues commands from held keys. Escape issues Quit.
type Command struct{}

func (Command) Update(dependent *component.Component, independent component.Component, _ time.Duration) {
	if dependent.Type() != component.CCommands || independent.Type() != component.CKeysPressed {
		return
	}
	if independent.Flags.IsSet(input.KeyEscape) {
		_ = dependent.Flags.Set(command.Quit) // Quit is bit 0
	}
}
