package po

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawText_EncodesForCoreFonts(t *testing.T) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	drawText(pdf, tr, Op{Kind: OpText, X: 40, Y: 100, W: 200, Text: "Electrical — rough-in café", Size: 10, Align: AlignRight})

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	out := buf.Bytes()
	assert.True(t, bytes.Contains(out, []byte("Electrical \x97 rough-in caf\xe9")), "text is written in cp1252")
	assert.False(t, bytes.Contains(out, []byte("café")), "no raw UTF-8 reaches the content stream")
}
