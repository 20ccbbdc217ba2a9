package tetris

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognized names.
var ErrUnknownCommand = errors.New("tetris: unknown command")

// Command is an engine command as a value, for hosts and replay scripts.
type Command int

const (
	CmdNone     Command = iota
	CmdLeft             // Move one column left
	CmdRight            // Move one column right
	CmdSoftDrop         // Gravity step
	CmdHardDrop         // Slide to the lowest valid row
	CmdRotate           // Rotate clockwise
	CmdPause            // Toggle pause
	CmdReset            // Start a new game
)

var commandNames = map[Command]string{
	CmdNone:     "none",
	CmdLeft:     "left",
	CmdRight:    "right",
	CmdSoftDrop: "down",
	CmdHardDrop: "drop",
	CmdRotate:   "rotate",
	CmdPause:    "pause",
	CmdReset:    "reset",
}

// String returns the command's script name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand converts a script name into a Command.
// "tick" is accepted as an alias for "down".
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "tick" {
		return CmdSoftDrop, nil
	}
	for c, n := range commandNames {
		if c != CmdNone && n == name {
			return c, nil
		}
	}
	return CmdNone, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Command) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Command) UnmarshalText(text []byte) error {
	parsed, err := ParseCommand(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
