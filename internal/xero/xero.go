// Package xero is a small client for the Xero accounting API: contact pulls
// and bill (ACCPAY invoice) pushes, all behind a blocking call budget.
package xero

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

const (
	InvoiceTypeBill   = "ACCPAY"
	LineAmountsExcl   = "Exclusive"
	StatusDraft       = "DRAFT"
	StatusAuthorised  = "AUTHORISED"
	ContactStatusLive = "ACTIVE"

	dateLayout = "2006-01-02"
)

// UpstreamError is a non-success answer from Xero, or a failure to reach it.
type UpstreamError struct {
	Op      string
	Status  int // 0 when no response was received
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("xero %s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("xero %s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return apperr.ErrUpstream
}

type Contact struct {
	ContactID          string `json:"ContactID"`
	Name               string `json:"Name"`
	EmailAddress       string `json:"EmailAddress"`
	TaxNumber          string `json:"TaxNumber"`
	BankAccountDetails string `json:"BankAccountDetails"`
	ContactStatus      string `json:"ContactStatus"`
}

// Amount marshals as a bare JSON number with two decimals.
type Amount decimal.Decimal

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(2)), nil
}

// Date marshals as YYYY-MM-DD.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

type ContactRef struct {
	ContactID string `json:"ContactID"`
}

type LineItem struct {
	Description string `json:"Description"`
	Quantity    Amount `json:"Quantity"`
	UnitAmount  Amount `json:"UnitAmount"`
	AccountCode string `json:"AccountCode,omitempty"`
	TaxAmount   Amount `json:"TaxAmount"`
}

type Invoice struct {
	Type            string     `json:"Type"`
	Contact         ContactRef `json:"Contact"`
	InvoiceNumber   string     `json:"InvoiceNumber,omitempty"`
	Reference       string     `json:"Reference,omitempty"`
	Date            *Date      `json:"Date,omitempty"`
	DueDate         *Date      `json:"DueDate,omitempty"`
	CurrencyCode    string     `json:"CurrencyCode,omitempty"`
	CurrencyRate    *Amount    `json:"CurrencyRate,omitempty"`
	LineAmountTypes string     `json:"LineAmountTypes"`
	Status          string     `json:"Status"`
	LineItems       []LineItem `json:"LineItems"`
}

// Attachment is the document uploaded onto a pushed invoice.
type Attachment struct {
	FileName string
	Data     []byte
}
