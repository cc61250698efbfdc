package bill

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
	"github.com/MrJamesThe3rd/costbook/internal/bill"
)

type allocationResponse struct {
	ID             uuid.UUID           `json:"id"`
	CostLineID     uuid.UUID           `json:"cost_line_id"`
	Amount         decimal.NullDecimal `json:"amount"`
	GST            decimal.Decimal     `json:"gst"`
	Note           string              `json:"note,omitempty"`
	AllocationType int                 `json:"allocation_type"`
	Category       allocation.Category `json:"category"`
}

type billResponse struct {
	ID             uuid.UUID            `json:"id"`
	CounterpartyID *uuid.UUID           `json:"counterparty_id"`
	Status         bill.Status          `json:"status"`
	StatusName     string               `json:"status_name"`
	Type           bill.Type            `json:"bill_type"`
	InvoiceNumber  string               `json:"invoice_number"`
	Date           *time.Time           `json:"bill_date"`
	DueDate        *time.Time           `json:"due_date"`
	Net            decimal.Decimal      `json:"net"`
	GST            decimal.Decimal      `json:"gst"`
	Total          decimal.Decimal      `json:"total"`
	Currency       string               `json:"currency"`
	ForeignAmount  decimal.NullDecimal  `json:"foreign_amount"`
	ExchangeRate   decimal.NullDecimal  `json:"exchange_rate"`
	FXFixed        bool                 `json:"fx_fixed"`
	FXFixedAt      *time.Time           `json:"fx_fixed_at,omitempty"`
	XeroInvoiceID  string               `json:"xero_invoice_id,omitempty"`
	DocumentPath   string               `json:"document_path,omitempty"`
	Allocations    []allocationResponse `json:"allocations"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func toResponse(b *bill.Bill) billResponse {
	resp := billResponse{
		ID:             b.ID,
		CounterpartyID: b.CounterpartyID,
		Status:         b.Status,
		StatusName:     b.Status.String(),
		Type:           b.Type,
		InvoiceNumber:  b.InvoiceNumber,
		Date:           b.Date,
		DueDate:        b.DueDate,
		Net:            b.Net,
		GST:            b.GST,
		Total:          b.Total(),
		Currency:       b.Currency,
		ForeignAmount:  b.ForeignAmount,
		ExchangeRate:   b.ExchangeRate,
		FXFixed:        b.FXFixed,
		FXFixedAt:      b.FXFixedAt,
		XeroInvoiceID:  b.XeroInvoiceID,
		DocumentPath:   b.DocumentPath,
		Allocations:    make([]allocationResponse, len(b.Allocations)),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	for i, a := range b.Allocations {
		resp.Allocations[i] = allocationResponse{
			ID:             a.ID,
			CostLineID:     a.CostLineID,
			Amount:         a.Amount,
			GST:            a.GST,
			Note:           a.Note,
			AllocationType: a.Type,
			Category:       a.Category(b.Type),
		}
	}

	return resp
}

func toResponseList(bills []*bill.Bill) []billResponse {
	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b)
	}

	return resp
}
