package purchaseorder_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/document/po"
	"github.com/MrJamesThe3rd/costbook/internal/mail"
	"github.com/MrJamesThe3rd/costbook/internal/purchaseorder"
	"github.com/MrJamesThe3rd/costbook/internal/storage"
)

var project = purchaseorder.Project{
	Company:        "Harbour Build Pty Ltd",
	CompanyAddress: "PO Box 88, Pyrmont NSW 2009",
	ABN:            "51824753556",
	Email:          "accounts@harbour.test",
	Address:        "12 Wharf St",
	Letterhead:     "letterhead/letterhead.pdf",
	MailFrom:       "po@harbour.test",
}

func letterhead(t *testing.T) []byte {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 18)
	doc.Text(40, 60, "Harbour Build")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	return buf.Bytes()
}

type mocks struct {
	repo  *purchaseorder.MockRepository
	cps   *purchaseorder.MockCounterparties
	files *purchaseorder.MockFileStore
	mail  *mail.MockSender
}

func newService(t *testing.T) (*purchaseorder.Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:  purchaseorder.NewMockRepository(ctrl),
		cps:   purchaseorder.NewMockCounterparties(ctrl),
		files: purchaseorder.NewMockFileStore(ctrl),
		mail:  mail.NewMockSender(ctrl),
	}

	return purchaseorder.NewService(m.repo, m.cps, m.files, m.mail, project), m
}

func expectOrder(m mocks, id, cpID uuid.UUID) {
	m.repo.EXPECT().Get(gomock.Any(), id).Return(&purchaseorder.PurchaseOrder{ID: id, CounterpartyID: cpID}, nil)
	m.cps.EXPECT().Get(gomock.Any(), cpID).Return(&contact.Counterparty{ID: cpID, Name: "Sparks Electrical", Email: "sparks@example.test"}, nil)
	m.repo.EXPECT().PrintLines(gomock.Any(), id).Return([]purchaseorder.PrintLine{
		{Category: "Electrical", CostLine: "Rough-in", QuoteRef: "Q-1", HasQuote: true, Amount: decimal.RequireFromString("1500")},
		{Category: "Electrical", CostLine: "Fit-off", VariationNote: "extra circuits", Amount: decimal.RequireFromString("250")},
	}, nil)
}

func TestService_PDF(t *testing.T) {
	id, cpID := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t)
		expectOrder(m, id, cpID)
		m.files.EXPECT().Open(gomock.Any(), project.Letterhead).Return(letterhead(t), nil)

		data, order, _, err := svc.PDF(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		assert.Equal(t, id, order.ID)
	})

	t.Run("MissingLetterhead", func(t *testing.T) {
		svc, m := newService(t)
		expectOrder(m, id, cpID)
		m.files.EXPECT().Open(gomock.Any(), project.Letterhead).Return(nil, storage.ErrNotFound)

		_, _, _, err := svc.PDF(context.Background(), id)
		assert.ErrorIs(t, err, po.ErrNoLetterhead)
		assert.ErrorIs(t, err, apperr.ErrUpstream)
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().Get(gomock.Any(), id).Return(nil, purchaseorder.ErrNotFound)

		_, _, _, err := svc.PDF(context.Background(), id)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestService_Email(t *testing.T) {
	id, cpID := uuid.New(), uuid.New()

	svc, m := newService(t)
	expectOrder(m, id, cpID)
	m.files.EXPECT().Open(gomock.Any(), project.Letterhead).Return(letterhead(t), nil)
	m.mail.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mail.Message) error {
			ref := (&purchaseorder.PurchaseOrder{ID: id}).Reference()

			assert.Equal(t, []string{"sparks@example.test"}, msg.To)
			assert.Equal(t, []string{"pm@harbour.test"}, msg.Cc)
			assert.Equal(t, project.MailFrom, msg.From)
			assert.Contains(t, msg.Subject, ref)
			require.Len(t, msg.Attachments, 1)
			assert.Equal(t, ref+".pdf", msg.Attachments[0].Name)

			return nil
		})

	require.NoError(t, svc.Email(context.Background(), id, nil, []string{"pm@harbour.test"}))
}

func TestService_Create(t *testing.T) {
	cpID, line, quoteID := uuid.New(), uuid.New(), uuid.New()

	t.Run("VariationNeedsNote", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(context.Background(), purchaseorder.Params{
			CounterpartyID: cpID,
			Lines:          []purchaseorder.LineParams{{CostLineID: line, Amount: decimal.RequireFromString("10")}},
		})

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "lines[0].variation_note")
	})

	t.Run("AtMostThreeNotes", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(context.Background(), purchaseorder.Params{
			CounterpartyID: cpID,
			Notes:          []string{"a", "b", "c", "d"},
		})

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "notes")
	})

	t.Run("QuotedLine", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Create(context.Background(), purchaseorder.Params{
			CounterpartyID: cpID,
			Lines: []purchaseorder.LineParams{
				{CostLineID: line, QuoteID: &quoteID, Amount: decimal.RequireFromString("99.999")},
			},
		})
		require.NoError(t, err)
		assert.True(t, got.Total().Equal(decimal.RequireFromString("100")))
	})
}
