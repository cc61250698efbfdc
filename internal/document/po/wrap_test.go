package po

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "Empty", in: "   ", width: 10, want: nil},
		{name: "FitsOnOneLine", in: "Rough-in", width: 10, want: []string{"Rough-in"}},
		{name: "BreaksOnSpaces", in: "the quick brown fox", width: 10, want: []string{"the quick", "brown fox"}},
		{name: "CollapsesWhitespace", in: "a \n\t b", width: 10, want: []string{"a b"}},
		{name: "ExactWidth", in: "abcde fghij", width: 5, want: []string{"abcde", "fghij"}},
		{name: "SplitsLongWord", in: "ab abcdefghijkl", width: 5, want: []string{"ab", "abcde", "fghij", "kl"}},
		{name: "Unicode", in: "café café", width: 4, want: []string{"café", "café"}},
		{name: "NoWidth", in: "a  b", width: 0, want: []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.width))
		})
	}
}
