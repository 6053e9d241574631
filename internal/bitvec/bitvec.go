// Package bitvec implements a fixed-width flag set used by flag-style
// components such as held keys and issued commands.
package bitvec

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Width is the number of addressable bits in a BitVector.
const Width = 64

// ErrOutOfRange is returned when a flag addresses a bit the vector cannot hold.
var ErrOutOfRange = eris.New("bit out of range")

// Flag is implemented by enumerations whose ordinals address bits.
type Flag interface {
	Bit() uint
}

// Bit is a raw bit position.
type Bit uint

// Bit returns b.
func (b Bit) Bit() uint { return uint(b) }

// BitVector is a 64-bit flag set. The zero value has every bit clear.
type BitVector uint64

// New returns a vector with all bits clear.
func New() BitVector { return 0 }

// From wraps a raw value.
func From(v uint64) BitVector { return BitVector(v) }

// Of returns a vector with every given flag set.
func Of(flags ...Flag) (BitVector, error) {
	var v BitVector
	for _, f := range flags {
		if err := v.Set(f); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// Uint64 returns the raw value.
func (v BitVector) Uint64() uint64 { return uint64(v) }

// IsSet reports whether f's bit is set. Bits beyond Width are never set.
func (v BitVector) IsSet(f Flag) bool {
	b := f.Bit()
	if b >= Width {
		return false
	}
	return v&(1<<b) != 0
}

// Set sets f's bit.
func (v *BitVector) Set(f Flag) error {
	b, err := position(f)
	if err != nil {
		return err
	}
	*v |= 1 << b
	return nil
}

// Unset clears f's bit.
func (v *BitVector) Unset(f Flag) error {
	b, err := position(f)
	if err != nil {
		return err
	}
	*v &^= 1 << b
	return nil
}

func (v BitVector) String() string {
	return fmt.Sprintf("%#b", uint64(v))
}

func position(f Flag) (uint, error) {
	b := f.Bit()
	if b >= Width {
		return 0, eris.Wrapf(ErrOutOfRange, "bit %d exceeds width %d", b, Width)
	}
	return b, nil
}
