// Package input turns terminal key events into per-tick KeysPressed
// snapshots.
package input

import (
	"fmt"
	"strings"

	"ecsim/internal/bitvec"
)

// Key is a tracked keyboard key. Each value addresses one bit of a
// KeysPressed component.
type Key uint8

const (
	KeyEscape Key = iota
	KeyW
	KeyS
	KeyA
	KeyD
)

// Keys lists every tracked key in bit order.
var Keys = []Key{KeyEscape, KeyW, KeyS, KeyA, KeyD}

// Bit returns the KeysPressed bit addressed by k.
func (k Key) Bit() uint { return uint(k) }

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Esc"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyA:
		return "A"
	case KeyD:
		return "D"
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// Describe lists the keys set in v, e.g. "W D".
func Describe(v bitvec.BitVector) string {
	var names []string
	for _, k := range Keys {
		if v.IsSet(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, " ")
}
