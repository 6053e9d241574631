// Package command enumerates the commands an entity can issue. Each value
// addresses one bit of a Commands component.
package command

import "fmt"

// Command is an instruction an entity can issue.
type Command uint8

const (
	Quit Command = iota
)

// Bit returns the Commands bit addressed by c.
func (c Command) Bit() uint { return uint(c) }

func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}
