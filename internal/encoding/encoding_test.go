package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/encoding"
)

func readAll(t *testing.T, in []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader(t *testing.T) {
	type testCase struct {
		name  string
		input []byte
		want  string
	}

	tests := []testCase{
		{
			name:  "UTF8Passthrough",
			input: []byte("category,cost_line,budget\nCafé fit-out,Tiling,1200.00\n"),
			want:  "category,cost_line,budget\nCafé fit-out,Tiling,1200.00\n",
		},
		{
			name:  "UTF8BOMStripped",
			input: append([]byte{0xEF, 0xBB, 0xBF}, "name\nSite works\n"...),
			want:  "name\nSite works\n",
		},
		{
			// "Façade" in Windows-1252.
			name:  "Windows1252",
			input: []byte{'n', 'a', 'm', 'e', '\n', 'F', 'a', 0xE7, 'a', 'd', 'e', '\n'},
			want:  "name\nFaçade\n",
		},
		{
			name:  "UTF16LEWithBOM",
			input: []byte{0xFF, 0xFE, 'a', 0, ',', 0, 'b', 0, '\n', 0},
			want:  "a,b\n",
		},
		{
			name:  "Empty",
			input: nil,
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, readAll(t, tc.input))
		})
	}
}

func TestNewUTF8Reader_LongInput(t *testing.T) {
	// Longer than the detection sample so the tail is read past the peek.
	in := bytes.Repeat([]byte("Électrical,Rough-in,10.00\n"), 400)

	assert.Equal(t, string(in), readAll(t, in))
}

func TestSniffDelimiter(t *testing.T) {
	tests := map[string]rune{
		"category,cost_line,budget\n":         ',',
		"category;cost_line;budget\r\n":       ';',
		`"Fit-out, stage 1";cost_line;budget`: ';',
		"name\n":                              ',',
		"":                                    ',',
		"a;b\nc,d,e,f,g\n":                    ';',
	}

	for in, want := range tests {
		assert.Equal(t, want, encoding.SniffDelimiter([]byte(in)), "input %q", in)
	}
}
