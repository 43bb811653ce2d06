package onlyargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorPeek(t *testing.T) {
	tests := []struct {
		name     string
		args     []RawArg
		wantText string
		wantOK   bool
	}{
		{
			name:   "empty list",
			args:   nil,
			wantOK: false,
		},
		{
			name:     "text argument",
			args:     []RawArg{"--verbose", "extra"},
			wantText: "--verbose",
			wantOK:   true,
		},
		{
			name:   "invalid utf-8 argument",
			args:   []RawArg{RawArg([]byte{0xff, 0xfe}), "extra"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := NewCursor(tt.args)
			text, ok := cur.Peek()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, text)
			// Peek never advances.
			assert.Equal(t, len(tt.args), cur.Len())
		})
	}
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	cur := NewCursor([]RawArg{"-u"})
	for i := 0; i < 3; i++ {
		text, ok := cur.Peek()
		require.True(t, ok)
		assert.Equal(t, "-u", text)
	}
	assert.Equal(t, 1, cur.Len())
}

func TestCursorNextValue(t *testing.T) {
	cur := NewCursor([]RawArg{"parasyte", RawArg([]byte{0xff})})

	raw, err := cur.NextValue("--username")
	require.NoError(t, err)
	assert.Equal(t, RawArg("parasyte"), raw)

	// Raw values are returned without requiring valid text.
	raw, err = cur.NextValue("--output")
	require.NoError(t, err)
	assert.Equal(t, RawArg([]byte{0xff}), raw)

	// Exhaustion fails and does not move the index past the end.
	for i := 0; i < 2; i++ {
		_, err = cur.NextValue("--username")
		var missing *MissingArgumentError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "--username", missing.Name)
		assert.True(t, missing.Value)
		assert.Equal(t, 0, cur.Len())
	}
}

func TestCursorAdvanceFlag(t *testing.T) {
	cur := NewCursor([]RawArg{"--verbose", "tail"})

	cur.AdvanceFlag()
	assert.Equal(t, 1, cur.Len())

	text, ok := cur.Peek()
	require.True(t, ok)
	assert.Equal(t, "tail", text)

	// Advancing past the end is a no-op.
	cur.AdvanceFlag()
	cur.AdvanceFlag()
	assert.Equal(t, 0, cur.Len())
}

func TestCapture(t *testing.T) {
	restore := setArgs("executable_name", "-u", "parasyte")
	defer restore()

	assert.Equal(t, []RawArg{"-u", "parasyte"}, Capture())
}
