package xerosync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/bill"
	"github.com/MrJamesThe3rd/costbook/internal/category"
	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/xero"
	"github.com/MrJamesThe3rd/costbook/internal/xerosync"
)

type mocks struct {
	xero      *xerosync.MockAccounting
	contacts  *xerosync.MockContacts
	bills     *xerosync.MockBills
	costLines *xerosync.MockCostLines
	codes     *xerosync.MockAccountCodes
	files     *xerosync.MockFiles
}

func newService(t *testing.T) (*xerosync.Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		xero:      xerosync.NewMockAccounting(ctrl),
		contacts:  xerosync.NewMockContacts(ctrl),
		bills:     xerosync.NewMockBills(ctrl),
		costLines: xerosync.NewMockCostLines(ctrl),
		codes:     xerosync.NewMockAccountCodes(ctrl),
		files:     xerosync.NewMockFiles(ctrl),
	}

	return xerosync.NewService(m.xero, m.contacts, m.bills, m.costLines, m.codes, m.files), m
}

func TestService_SyncContacts(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.xero.EXPECT().Contacts(ctx).Return([]xero.Contact{
		{ContactID: "c1", Name: "Sparky Co", EmailAddress: "a@sparky.test", TaxNumber: "51824753556", BankAccountDetails: "062-000 1234 5678", ContactStatus: "ACTIVE"},
		{ContactID: "c2", Name: "Old Mate", ContactStatus: "ARCHIVED"},
		{ContactID: "c3", Name: "", ContactStatus: "ACTIVE"},
	}, nil)

	m.contacts.EXPECT().UpsertFromXero(ctx, "c1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p contact.Params) (*contact.Counterparty, error) {
			assert.Equal(t, "Sparky Co", p.Name)
			assert.Equal(t, "51824753556", p.ABN)
			assert.Equal(t, "062000", p.BSB)
			assert.Equal(t, "12345678", p.AccountNumber)

			return &contact.Counterparty{ID: uuid.New()}, nil
		})

	verr := apperr.NewValidation()
	verr.Add("name", "is required")
	m.contacts.EXPECT().UpsertFromXero(ctx, "c3", gomock.Any()).Return(nil, verr)

	res, err := svc.SyncContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, xerosync.ContactsResult{Synced: 1, Skipped: 1}, res)
}

func TestService_SyncContacts_StoreErrorAborts(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.xero.EXPECT().Contacts(ctx).Return([]xero.Contact{{ContactID: "c1", Name: "A"}}, nil)
	m.contacts.EXPECT().UpsertFromXero(ctx, "c1", gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.SyncContacts(ctx)
	require.Error(t, err)
}

func approvedBill(cp, line uuid.UUID) *bill.Bill {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return &bill.Bill{
		ID:             uuid.New(),
		CounterpartyID: &cp,
		Status:         bill.StatusApproved,
		Type:           bill.TypeProgressClaim,
		InvoiceNumber:  "INV-7",
		Date:           &date,
		Currency:       "AUD",
		Net:            decimal.RequireFromString("100"),
		GST:            decimal.RequireFromString("10"),
		DocumentPath:   "bills/x/inv-7.pdf",
		Allocations: []bill.Allocation{
			{CostLineID: line, Amount: decimal.NewNullDecimal(decimal.RequireFromString("100")), GST: decimal.RequireFromString("10"), Type: 0},
		},
	}
}

func TestService_PushBill(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	cp, line := uuid.New(), uuid.New()
	b := approvedBill(cp, line)

	m.bills.EXPECT().Get(ctx, b.ID).Return(b, nil)
	m.contacts.EXPECT().Get(ctx, cp).Return(&contact.Counterparty{ID: cp, Name: "Sparky", XeroContactID: "xc-1"}, nil)
	m.costLines.EXPECT().GetLine(ctx, line).Return(&category.CostLine{ID: line, Name: "Rough-in"}, nil)
	m.codes.EXPECT().Suggest(ctx, "Rough-in").Return("310", nil)
	m.files.EXPECT().Open(ctx, "bills/x/inv-7.pdf").Return([]byte("%PDF"), nil)
	m.xero.EXPECT().PushBill(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv xero.Invoice, att *xero.Attachment) (string, error) {
			assert.Equal(t, xero.InvoiceTypeBill, inv.Type)
			assert.Equal(t, "xc-1", inv.Contact.ContactID)
			require.Len(t, inv.LineItems, 1)
			assert.Equal(t, "Rough-in (progress claim)", inv.LineItems[0].Description)
			assert.Equal(t, "310", inv.LineItems[0].AccountCode)
			assert.Nil(t, inv.CurrencyRate)
			require.NotNil(t, att)
			assert.Equal(t, "inv-7.pdf", att.FileName)

			return "inv-xero-1", nil
		})
	m.bills.EXPECT().MarkSent(ctx, b.ID, "inv-xero-1").Return(nil)

	id, err := svc.PushBill(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "inv-xero-1", id)
}

func TestService_PushBill_Rejects(t *testing.T) {
	cp := uuid.New()

	type testCase struct {
		name      string
		bill      func() *bill.Bill
		contact   *contact.Counterparty
		wantField string
	}

	tests := []testCase{
		{
			name: "NotApproved",
			bill: func() *bill.Bill {
				b := approvedBill(cp, uuid.New())
				b.Status = bill.StatusAllocated

				return b
			},
			wantField: "status",
		},
		{
			name: "AlreadySent",
			bill: func() *bill.Bill {
				b := approvedBill(cp, uuid.New())
				b.Status = bill.StatusSent
				b.XeroInvoiceID = "old"

				return b
			},
			wantField: "status",
		},
		{
			name: "NoCounterparty",
			bill: func() *bill.Bill {
				b := approvedBill(cp, uuid.New())
				b.CounterpartyID = nil

				return b
			},
			wantField: "counterparty_id",
		},
		{
			name:      "CounterpartyNotLinked",
			bill:      func() *bill.Bill { return approvedBill(cp, uuid.New()) },
			contact:   &contact.Counterparty{ID: cp, Name: "Sparky"},
			wantField: "counterparty_id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newService(t)

			b := tc.bill()
			m.bills.EXPECT().Get(ctx, b.ID).Return(b, nil)

			if tc.contact != nil {
				m.contacts.EXPECT().Get(ctx, cp).Return(tc.contact, nil)
			}

			_, err := svc.PushBill(ctx, b.ID)

			var verr *apperr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.wantField)
		})
	}
}

func TestService_PushBill_AttachmentFailureStillMarksSent(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	cp, line := uuid.New(), uuid.New()
	b := approvedBill(cp, line)
	b.Currency = "USD"
	b.ExchangeRate = decimal.NewNullDecimal(decimal.RequireFromString("1.5"))

	m.bills.EXPECT().Get(ctx, b.ID).Return(b, nil)
	m.contacts.EXPECT().Get(ctx, cp).Return(&contact.Counterparty{ID: cp, XeroContactID: "xc-1"}, nil)
	m.costLines.EXPECT().GetLine(ctx, line).Return(&category.CostLine{ID: line, Name: "Rough-in"}, nil)
	m.codes.EXPECT().Suggest(ctx, "Rough-in").Return("300", nil)
	m.files.EXPECT().Open(ctx, b.DocumentPath).Return([]byte("%PDF"), nil)
	m.xero.EXPECT().PushBill(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv xero.Invoice, _ *xero.Attachment) (string, error) {
			require.NotNil(t, inv.CurrencyRate)
			assert.True(t, decimal.Decimal(*inv.CurrencyRate).Equal(decimal.RequireFromString("0.666667")))

			return "inv-2", &xero.UpstreamError{Op: "attach", Status: 500, Message: "boom"}
		})
	m.bills.EXPECT().MarkSent(ctx, b.ID, "inv-2").Return(nil)

	id, err := svc.PushBill(ctx, b.ID)
	require.ErrorIs(t, err, apperr.ErrUpstream)
	assert.Equal(t, "inv-2", id)
}
