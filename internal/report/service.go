// Package report produces the downloadable views of the books: the committed
// cost summary, the grouped allocation reports and bill document bundles.
package report

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
	"github.com/MrJamesThe3rd/costbook/internal/bill"
	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/money"
)

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=report
type Allocations interface {
	Summary(ctx context.Context) ([]allocation.SummaryLine, error)
	QuoteAllocations(ctx context.Context) ([]allocation.QuoteGroup, error)
	BillAllocations(ctx context.Context) ([]allocation.BillGroup, error)
}

type Bills interface {
	List(ctx context.Context, filter bill.ListFilter) ([]*bill.Bill, error)
}

type Contacts interface {
	Get(ctx context.Context, id uuid.UUID) (*contact.Counterparty, error)
}

type Files interface {
	Open(ctx context.Context, name string) ([]byte, error)
}

type Service struct {
	allocations Allocations
	bills       Bills
	contacts    Contacts
	files       Files
}

func NewService(allocations Allocations, bills Bills, contacts Contacts, files Files) *Service {
	return &Service{
		allocations: allocations,
		bills:       bills,
		contacts:    contacts,
		files:       files,
	}
}

func (s *Service) Committed(ctx context.Context) ([]allocation.SummaryLine, error) {
	return s.allocations.Summary(ctx)
}

func (s *Service) QuoteAllocations(ctx context.Context) ([]allocation.QuoteGroup, error) {
	return s.allocations.QuoteAllocations(ctx)
}

func (s *Service) BillAllocations(ctx context.Context) ([]allocation.BillGroup, error) {
	return s.allocations.BillAllocations(ctx)
}

// Item is one bill in a document bundle.
type Item struct {
	Bill         *bill.Bill
	Counterparty string
	FileName     string // name inside the archive; empty when the bill has no document
}

// BillDocuments zips the documents of every bill dated within [from, to],
// plus a summary.txt listing each bill, including those without a document.
func (s *Service) BillDocuments(ctx context.Context, from, to time.Time) ([]byte, []Item, error) {
	bills, err := s.bills.List(ctx, bill.ListFilter{From: &from, To: &to})
	if err != nil {
		return nil, nil, fmt.Errorf("listing bills: %w", err)
	}

	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	items := make([]Item, 0, len(bills))
	names := make(map[uuid.UUID]string)
	used := make(map[string]int)

	for _, b := range bills {
		item := Item{Bill: b}

		if b.CounterpartyID != nil {
			item.Counterparty, err = s.counterpartyName(ctx, names, *b.CounterpartyID)
			if err != nil {
				return nil, nil, err
			}
		}

		if b.DocumentPath != "" {
			data, err := s.files.Open(ctx, b.DocumentPath)
			if err != nil {
				return nil, nil, fmt.Errorf("opening document for bill %s: %w", b.ID, err)
			}

			item.FileName = uniqueName(used, fileName(b, item.Counterparty))

			w, err := zw.Create(item.FileName)
			if err != nil {
				return nil, nil, fmt.Errorf("adding %s: %w", item.FileName, err)
			}

			if _, err := w.Write(data); err != nil {
				return nil, nil, fmt.Errorf("writing %s: %w", item.FileName, err)
			}
		}

		items = append(items, item)
	}

	w, err := zw.Create("summary.txt")
	if err != nil {
		return nil, nil, fmt.Errorf("adding summary: %w", err)
	}

	if _, err := w.Write([]byte(Summary(items))); err != nil {
		return nil, nil, fmt.Errorf("writing summary: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, nil, fmt.Errorf("closing archive: %w", err)
	}

	return buf.Bytes(), items, nil
}

func (s *Service) counterpartyName(ctx context.Context, cache map[uuid.UUID]string, id uuid.UUID) (string, error) {
	if n, ok := cache[id]; ok {
		return n, nil
	}

	c, err := s.contacts.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("loading counterparty %s: %w", id, err)
	}

	cache[id] = c.Name

	return c.Name, nil
}

// Summary renders one line per bundled bill:
// date | counterparty | invoice | total | file.
func Summary(items []Item) string {
	var sb strings.Builder

	for _, it := range items {
		date := "no date"
		if it.Bill.Date != nil {
			date = it.Bill.Date.Format("2006-01-02")
		}

		file := "no document"
		if it.FileName != "" {
			file = it.FileName
		}

		fmt.Fprintf(&sb, "* %s | %s | %s | %s %s | %s\n",
			date, orDash(it.Counterparty), orDash(it.Bill.InvoiceNumber),
			money.Format(it.Bill.Total()), bill.BaseCurrency, file)
	}

	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// fileName is YYYYMMDD_Counterparty_Invoice.ext with unsafe characters replaced.
func fileName(b *bill.Bill, counterparty string) string {
	date := "undated"
	if b.Date != nil {
		date = b.Date.Format("20060102")
	}

	ext := path.Ext(b.DocumentPath)
	if ext == "" {
		ext = ".pdf"
	}

	parts := []string{date}
	for _, p := range []string{counterparty, b.InvoiceNumber} {
		if p != "" {
			parts = append(parts, safe(p))
		}
	}

	return strings.Join(parts, "_") + ext
}

func safe(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, s)
}

func uniqueName(used map[string]int, name string) string {
	n := used[name]
	used[name] = n + 1

	if n == 0 {
		return name
	}

	ext := path.Ext(name)

	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n+1, ext)
}
