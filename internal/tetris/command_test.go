package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"left", CmdLeft},
		{"right", CmdRight},
		{"down", CmdSoftDrop},
		{"tick", CmdSoftDrop},
		{"drop", CmdHardDrop},
		{"rotate", CmdRotate},
		{"pause", CmdPause},
		{"reset", CmdReset},
		{"  Rotate ", CmdRotate},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCommand(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCommandUnknown(t *testing.T) {
	for _, in := range []string{"", "none", "jump", "hold"} {
		_, err := ParseCommand(in)
		assert.ErrorIs(t, err, ErrUnknownCommand, in)
	}
}

func TestCommandTextRoundTrip(t *testing.T) {
	for c := CmdLeft; c <= CmdReset; c++ {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back Command
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}
	assert.Equal(t, "unknown", Command(99).String())
}
