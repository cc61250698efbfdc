package encoding

import "bytes"

// SniffDelimiter picks ',' or ';' by counting them in the first line of
// sample outside double quotes. Ties go to ','.
func SniffDelimiter(sample []byte) rune {
	if i := bytes.IndexAny(sample, "\r\n"); i >= 0 {
		sample = sample[:i]
	}

	var commas, semis int

	inQuotes := false

	for _, c := range sample {
		switch c {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				commas++
			}
		case ';':
			if !inQuotes {
				semis++
			}
		}
	}

	if semis > commas {
		return ';'
	}

	return ','
}
