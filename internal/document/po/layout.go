package po

import (
	"github.com/MrJamesThe3rd/costbook/internal/money"
)

// A4 portrait in points.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
)

const (
	marginX      = 37.64 // centres the 520pt table
	headerTop    = 150.0
	bottomLimit  = 800.0
	valueX       = marginX + 70
	headerWrap   = 40
	titleWrap    = 80
	noteWrap     = 110
	bodySize     = 10
	titleSize    = 14
	footerSize   = 8
	bodyLeading  = 13
	titleLeading = 18
	footLeading  = 10
	cellPadding  = 4
	ruleGray     = 200

	// Average Helvetica glyph width at bodySize, used to turn column widths into wrap widths.
	charWidth = 5.5
)

var columns = [3]struct {
	title string
	width float64
	align Align
}{
	{"Claim Category", 220, AlignLeft},
	{"Quote # or Variation", 200, AlignLeft},
	{"Amount", 100, AlignRight},
}

type OpKind int

const (
	OpText OpKind = iota
	OpRule
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Op is one draw instruction. Text ops are anchored at the baseline Y; W is
// the box that Align is resolved against. Rule ops draw from (X, Y) to (X+W, Y).
type Op struct {
	Kind  OpKind
	X, Y  float64
	W     float64
	Text  string
	Style string // fpdf font style: "", "B", "U", "BU"
	Size  float64
	Align Align
	Gray  int
}

type Page struct {
	Width, Height float64
	Ops           []Op
}

type builder struct {
	pages []Page
	ops   []Op
	y     float64
}

func (b *builder) text(x, w float64, s, style string, size float64, align Align) {
	b.ops = append(b.ops, Op{Kind: OpText, X: x, Y: b.y, W: w, Text: s, Style: style, Size: size, Align: align})
}

func (b *builder) rule(x, w float64, gray int) {
	b.ops = append(b.ops, Op{Kind: OpRule, X: x, Y: b.y, W: w, Gray: gray})
}

func (b *builder) fits(height float64) bool {
	return b.y+height <= bottomLimit
}

func (b *builder) flush() {
	b.pages = append(b.pages, Page{Width: PageWidth, Height: PageHeight, Ops: b.ops})
	b.ops = nil
	b.y = headerTop
}

// continuation starts a new page that carries the reference and the table header.
func (b *builder) continuation(p PurchaseOrder) {
	b.flush()
	b.text(marginX, 0, p.Reference+" (continued)", "B", bodySize, AlignLeft)
	b.y += 2 * bodyLeading
	b.tableHeader()
}

// Layout positions every element of the purchase order. The header and title
// open the first page; table rows that do not fit continue on further pages,
// and the totals row and footer always close the last page. It has no side
// effects; the same order always yields the same pages.
func Layout(p PurchaseOrder) []Page {
	b := &builder{y: headerTop}

	b.header(p)
	b.title(p)
	b.table(p)
	b.footer(p)
	b.flush()

	return b.pages
}

func (b *builder) header(p PurchaseOrder) {
	fields := []struct{ label, value string }{
		{"Reference:", p.Reference},
		{"Invoicee:", p.Invoicee},
		{"ABN:", p.ABN},
		{"Email:", p.Email},
		{"Address:", p.Address},
	}

	for _, f := range fields {
		b.text(marginX, 0, f.label, "B", bodySize, AlignLeft)

		lines := Wrap(f.value, headerWrap)
		if len(lines) == 0 {
			b.y += bodyLeading
			continue
		}

		for _, l := range lines {
			b.text(valueX, 0, l, "", bodySize, AlignLeft)
			b.y += bodyLeading
		}
	}

	b.y += bodyLeading
}

func (b *builder) title(p PurchaseOrder) {
	title := p.ProjectAddress + " Purchase Order - " + p.CounterpartyName

	for _, l := range Wrap(title, titleWrap) {
		b.text(0, PageWidth, l, "BU", titleSize, AlignCenter)
		b.y += titleLeading
	}

	b.y += bodyLeading
}

var tableWidth = columns[0].width + columns[1].width + columns[2].width

func (b *builder) tableHeader() {
	x := marginX
	for _, c := range columns {
		b.text(x+cellPadding, c.width-2*cellPadding, c.title, "B", bodySize, c.align)
		x += c.width
	}

	b.y += cellPadding
	b.rule(marginX, tableWidth, 0)
	b.y += bodyLeading
}

func (b *builder) table(p PurchaseOrder) {
	b.tableHeader()

	for _, r := range p.Rows {
		cells := [3][]string{
			Wrap(r.Category, wrapWidth(columns[0].width)),
			Wrap(r.QuoteCell(), wrapWidth(columns[1].width)),
			{money.Format(r.Amount)},
		}

		height := 1
		for _, c := range cells {
			height = max(height, len(c))
		}

		if !b.fits(float64((height-1)*bodyLeading) + cellPadding) {
			b.continuation(p)
		}

		x := marginX
		for i, c := range cells {
			for j, l := range c {
				b.ops = append(b.ops, Op{
					Kind:  OpText,
					X:     x + cellPadding,
					Y:     b.y + float64(j*bodyLeading),
					W:     columns[i].width - 2*cellPadding,
					Text:  l,
					Size:  bodySize,
					Align: columns[i].align,
				})
			}

			x += columns[i].width
		}

		b.y += float64((height-1)*bodyLeading) + cellPadding
		b.rule(marginX, tableWidth, ruleGray)
		b.y += bodyLeading
	}

	if !b.fits(2*bodyLeading + footerHeight(p)) {
		b.continuation(p)
	}

	amountX := marginX + columns[0].width + columns[1].width
	b.text(marginX+columns[0].width+cellPadding, columns[1].width-2*cellPadding, "Total", "B", bodySize, AlignRight)
	b.text(amountX+cellPadding, columns[2].width-2*cellPadding, money.Format(p.Total()), "BU", bodySize, AlignRight)

	b.y += 2 * bodyLeading
}

// printedNotes returns the wrapped lines of the notes that are printed.
func printedNotes(p PurchaseOrder) [][]string {
	notes := p.Notes
	if len(notes) > 3 {
		notes = notes[:3]
	}

	var out [][]string

	for _, n := range notes {
		if lines := Wrap(n, noteWrap); len(lines) > 0 {
			out = append(out, lines)
		}
	}

	return out
}

func footerHeight(p PurchaseOrder) float64 {
	lines := len(Wrap(Disclaimer, noteWrap))
	for _, n := range printedNotes(p) {
		lines += 1 + len(n)
	}

	return float64(lines * footLeading)
}

func (b *builder) footer(p PurchaseOrder) {
	for _, l := range Wrap(Disclaimer, noteWrap) {
		b.text(marginX, 0, l, "", footerSize, AlignLeft)
		b.y += footLeading
	}

	for _, lines := range printedNotes(p) {
		b.y += footLeading

		for _, l := range lines {
			b.text(marginX, 0, l, "", footerSize, AlignLeft)
			b.y += footLeading
		}
	}
}

func wrapWidth(columnWidth float64) int {
	return int((columnWidth - 2*cellPadding) / charWidth)
}
