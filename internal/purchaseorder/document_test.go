package purchaseorder

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/contact"
)

func TestService_Document(t *testing.T) {
	svc := &Service{project: Project{
		Company:        "Harbour Build Pty Ltd",
		CompanyAddress: "PO Box 88, Pyrmont NSW 2009",
		ABN:            "51824753556",
		Email:          "accounts@harbour.test",
		Address:        "12 Wharf St",
	}}

	order := &PurchaseOrder{ID: uuid.New(), Notes: []string{"Site access from 7am."}}
	cp := &contact.Counterparty{Name: "Sparks Electrical"}

	doc := svc.document(order, cp, []PrintLine{
		{Category: "Electrical", CostLine: "Rough-in", QuoteRef: "Q-1", HasQuote: true, Amount: decimal.RequireFromString("1500")},
	})

	assert.Equal(t, "PO Box 88, Pyrmont NSW 2009", doc.Address, "header carries the company address")
	assert.Equal(t, "12 Wharf St", doc.ProjectAddress, "title carries the site address")
	assert.Equal(t, "Harbour Build Pty Ltd", doc.Invoicee)
	assert.Equal(t, "Sparks Electrical", doc.CounterpartyName)
	assert.Equal(t, order.Reference(), doc.Reference)

	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Electrical - Rough-in", doc.Rows[0].Category)
	assert.Equal(t, []string{"Site access from 7am."}, doc.Notes)
}
