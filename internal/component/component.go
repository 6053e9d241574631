package component

import (
	"fmt"

	"ecsim/internal/bitvec"
)

// Type tags the variant held by a Component.
type Type uint8

const (
	CEmpty Type = iota
	CPosition
	CVelocity
	CKeysPressed
	CCommands
)

// Types lists every non-empty variant.
func Types() []Type {
	return []Type{CPosition, CVelocity, CKeysPressed, CCommands}
}

func (t Type) String() string {
	switch t {
	case CEmpty:
		return "empty"
	case CPosition:
		return "position"
	case CVelocity:
		return "velocity"
	case CKeysPressed:
		return "keys_pressed"
	case CCommands:
		return "commands"
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Component is a tagged union over the payloads an entity can carry.
// Position and Velocity use X and Y; KeysPressed and Commands use Flags.
// The zero value is Empty.
type Component struct {
	kind  Type
	X, Y  float64
	Flags bitvec.BitVector
}

// Empty means the entity lacks the component. It is a value, not an absence.
var Empty = Component{}

// Type returns the variant tag.
func (c Component) Type() Type { return c.kind }

// IsEmpty reports whether c is the Empty variant.
func (c Component) IsEmpty() bool { return c.kind == CEmpty }

func (c Component) String() string {
	switch c.kind {
	case CPosition, CVelocity:
		return fmt.Sprintf("%s(%g, %g)", c.kind, c.X, c.Y)
	case CKeysPressed, CCommands:
		return fmt.Sprintf("%s(%s)", c.kind, c.Flags)
	}
	return c.kind.String()
}
