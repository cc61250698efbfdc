package po

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks s into lines of at most width characters. Runs of whitespace
// collapse to one space and words longer than width are split. Empty input
// yields no lines.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if width <= 0 {
		if len(words) == 0 {
			return nil
		}

		return []string{strings.Join(words, " ")}
	}

	var (
		lines []string
		cur   strings.Builder
		n     int // runes in cur
	)

	flush := func() {
		if n > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			n = 0
		}
	}

	for _, w := range words {
		for utf8.RuneCountInString(w) > width {
			flush()

			head, tail := splitRunes(w, width)
			lines = append(lines, head)
			w = tail
		}

		wl := utf8.RuneCountInString(w)

		switch {
		case n == 0:
		case n+1+wl <= width:
			cur.WriteByte(' ')
			n++
		default:
			flush()
		}

		cur.WriteString(w)
		n += wl
	}

	flush()

	return lines
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}

	return s, ""
}
