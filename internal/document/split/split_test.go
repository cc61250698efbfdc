package split_test

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/document/split"
)

func samplePDF(t *testing.T, pages int) []byte {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)

	for range pages {
		doc.AddPage()
		doc.Text(50, 50, "invoice page")
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	return buf.Bytes()
}

func TestSplitter(t *testing.T) {
	s := split.New()
	src := samplePDF(t, 3)

	n, err := s.PageCount(src)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	page, err := s.Page(src, 2)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(page, []byte("%PDF")))

	_, err = s.Page(src, 4)
	assert.Error(t, err)
}

func TestSplitter_Garbage(t *testing.T) {
	_, err := split.New().PageCount([]byte("definitely not a pdf"))
	assert.Error(t, err)
}
