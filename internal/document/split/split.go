// Package split extracts individual pages of a PDF as standalone documents.
package split

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

const box = "/MediaBox"

type Splitter struct{}

func New() *Splitter {
	return &Splitter{}
}

// PageCount returns the number of pages in pdf.
func (s *Splitter) PageCount(pdf []byte) (n int, err error) {
	defer recoverErr(&err)

	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()

	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(pdf))
	imp.ImportPageFromStream(doc, &rs, 1, box)

	return len(imp.GetPageSizes()), nil
}

// Page returns page n (1-based) of pdf as its own single-page document, keeping its size.
func (s *Splitter) Page(pdf []byte, n int) (out []byte, err error) {
	defer recoverErr(&err)

	probe := gofpdi.NewImporter()
	scratch := fpdf.New("P", "pt", "A4", "")
	scratch.AddPage()

	rs := io.ReadSeeker(bytes.NewReader(pdf))
	probe.ImportPageFromStream(scratch, &rs, 1, box)

	size, ok := probe.GetPageSizes()[n][box]
	if !ok {
		return nil, fmt.Errorf("page %d out of range", n)
	}

	w, h := size["w"], size["h"]

	doc := fpdf.NewCustom(&fpdf.InitType{UnitStr: "pt", Size: fpdf.SizeType{Wd: w, Ht: h}})
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	imp := gofpdi.NewImporter()
	src := io.ReadSeeker(bytes.NewReader(pdf))
	tpl := imp.ImportPageFromStream(doc, &src, n, box)
	imp.UseImportedTemplate(doc, tpl, 0, 0, w, h)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing page %d: %w", n, err)
	}

	return buf.Bytes(), nil
}

// recoverErr turns a panic from the PDF importer into an error.
func recoverErr(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("reading pdf: %v", r)
	}
}
