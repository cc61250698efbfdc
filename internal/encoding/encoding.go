// Package encoding normalises uploaded spreadsheet exports to UTF-8 and
// works out which delimiter they use.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sampleSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Charsets chardet reports that we decode explicitly. Anything else that is
// not valid UTF-8 falls back to Windows-1252, which is what Excel on Windows
// writes for "CSV (Comma delimited)".
var decoders = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
	"windows-1250": charmap.Windows1250,
	"ISO-8859-9":   charmap.ISO8859_9,
}

// NewUTF8Reader returns a reader yielding r's content as UTF-8. A BOM wins;
// then valid UTF-8 is passed through; then chardet's best single-byte guess;
// then Windows-1252.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sampleSize)

	buf, err := br.Peek(sampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peeking input: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return decode(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return decode(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)), nil
	case validUTF8Prefix(buf):
		return br, nil
	}

	if res, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if enc, ok := decoders[res.Charset]; ok {
			return decode(br, enc), nil
		}
	}

	return decode(br, charmap.Windows1252), nil
}

func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}

// validUTF8Prefix is utf8.Valid tolerant of a multi-byte rune cut off by the
// end of the sample.
func validUTF8Prefix(b []byte) bool {
	if utf8.Valid(b) {
		return true
	}

	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.Valid(b[:len(b)-i]) && !utf8.FullRune(b[len(b)-i:]) {
			return true
		}
	}

	return false
}
