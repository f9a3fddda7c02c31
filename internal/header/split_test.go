package header

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/scrub/pkg/scrub"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"\n\n", 2},
		{"a\r\nb\r\n", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountLines(tt.input), "CountLines(%q)", tt.input)
	}
}

func TestSplit(t *testing.T) {
	src := "// x\n// y\nz // w\nlast"

	tests := []struct {
		n        int
		wantHead string
		wantBody string
	}{
		{0, "", src},
		{1, "// x\n", "// y\nz // w\nlast"},
		{2, "// x\n// y\n", "z // w\nlast"},
		{4, src, ""},
	}

	for _, tt := range tests {
		head, body, err := Split(src, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.wantHead, head, "n=%d", tt.n)
		assert.Equal(t, tt.wantBody, body, "n=%d", tt.n)
	}
}

func TestSplit_InvalidCount(t *testing.T) {
	tests := []struct {
		name string
		src  string
		n    int
	}{
		{"negative", "a\nb\n", -1},
		{"exceeds line count", "// Line 1\n// Line 2", 5},
		{"non-zero on empty input", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Split(tt.src, tt.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, scrub.ErrInvalidHeaderLineCount))
		})
	}
}

func TestSplit_ZeroOnEmptyInput(t *testing.T) {
	head, body, err := Split("", 0)
	require.NoError(t, err)
	assert.Empty(t, head)
	assert.Empty(t, body)
}
