package lexer

import (
	"testing"

	"github.com/vvka-141/scrub/pkg/scrub"
)

func TestLocate(t *testing.T) {
	src := "ab\nçd\n\nx"

	tests := []struct {
		offset int
		want   scrub.Position
	}{
		{0, scrub.Position{Offset: 0, Line: 1, Column: 1}},
		{2, scrub.Position{Offset: 2, Line: 1, Column: 3}},
		{3, scrub.Position{Offset: 3, Line: 2, Column: 1}},
		{5, scrub.Position{Offset: 5, Line: 2, Column: 2}},
		{7, scrub.Position{Offset: 7, Line: 3, Column: 1}},
		{8, scrub.Position{Offset: 8, Line: 4, Column: 1}},
		{-1, scrub.Position{Offset: 0, Line: 1, Column: 1}},
		{100, scrub.Position{Offset: 9, Line: 4, Column: 2}},
	}

	for _, tt := range tests {
		if got := Locate(src, tt.offset); got != tt.want {
			t.Errorf("Locate(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}
