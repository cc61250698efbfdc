package po

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

const fontFamily = "Helvetica"

// Render draws each page on top of the first page of letterhead and returns
// the PDF. Every call owns its document and importer, so concurrent calls
// share nothing.
func Render(ctx context.Context, letterhead []byte, pages []Page) ([]byte, error) {
	if len(letterhead) == 0 {
		return nil, ErrNoLetterhead
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	// Core fonts are cp1252, so text is translated before it is measured or drawn.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	imp := gofpdi.NewImporter()
	tpl := -1

	for _, page := range pages {
		pdf.AddPage()

		if tpl < 0 {
			var err error
			if tpl, err = importFirstPage(imp, pdf, letterhead); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrNoLetterhead, err)
			}
		}

		imp.UseImportedTemplate(pdf, tpl, 0, 0, page.Width, page.Height)

		for _, op := range page.Ops {
			switch op.Kind {
			case OpText:
				drawText(pdf, tr, op)
			case OpRule:
				pdf.SetDrawColor(op.Gray, op.Gray, op.Gray)
				pdf.SetLineWidth(0.5)
				pdf.Line(op.X, op.Y, op.X+op.W, op.Y)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func drawText(pdf *fpdf.Fpdf, tr func(string) string, op Op) {
	pdf.SetFont(fontFamily, op.Style, op.Size)

	text := tr(op.Text)

	x := op.X
	switch op.Align {
	case AlignCenter:
		x += (op.W - pdf.GetStringWidth(text)) / 2
	case AlignRight:
		x += op.W - pdf.GetStringWidth(text)
	}

	pdf.Text(x, op.Y, text)
}

// importFirstPage converts the importer's panics on unreadable input into errors.
func importFirstPage(imp *gofpdi.Importer, pdf *fpdf.Fpdf, data []byte) (tpl int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading template: %v", r)
		}
	}()

	rs := io.ReadSeeker(bytes.NewReader(data))

	return imp.ImportPageFromStream(pdf, &rs, 1, "/MediaBox"), nil
}
