package xero_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/xero"
)

func unlimited() *rate.Limiter {
	return rate.NewLimiter(rate.Inf, 1)
}

func TestClient_Contacts_Pages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		n := 100
		if page == 2 {
			n = 3
		}

		var body struct {
			Contacts []xero.Contact `json:"Contacts"`
		}

		for i := range n {
			body.Contacts = append(body.Contacts, xero.Contact{ContactID: fmt.Sprintf("%d-%d", page, i), Name: "C"})
		}

		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	got, err := xero.NewWithHTTPClient(srv.Client(), srv.URL, unlimited()).Contacts(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 103)
	assert.Equal(t, "2-2", got[102].ContactID)
}

func TestClient_PushBill(t *testing.T) {
	var attached []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/Invoices":
			var body struct {
				Invoices []struct {
					Type      string
					Date      string
					LineItems []struct {
						UnitAmount float64
						Quantity   float64
					}
				}
			}

			if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) && assert.Len(t, body.Invoices, 1) {
				inv := body.Invoices[0]
				assert.Equal(t, "ACCPAY", inv.Type)
				assert.Equal(t, "2024-03-01", inv.Date)

				if assert.Len(t, inv.LineItems, 1) {
					assert.Equal(t, 1234.5, inv.LineItems[0].UnitAmount)
					assert.Equal(t, 1.0, inv.LineItems[0].Quantity)
				}
			}

			_, _ = io.WriteString(w, `{"Invoices":[{"InvoiceID":"inv-1"}]}`)
		case r.Method == http.MethodPut && r.URL.Path == "/Invoices/inv-1/Attachments/bill.pdf":
			assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
			attached, _ = io.ReadAll(r.Body)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	date := xero.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	inv := xero.Invoice{
		Type:            xero.InvoiceTypeBill,
		Contact:         xero.ContactRef{ContactID: "c-1"},
		Date:            &date,
		LineAmountTypes: xero.LineAmountsExcl,
		Status:          xero.StatusDraft,
		LineItems: []xero.LineItem{{
			Description: "Rough-in (direct cost)",
			Quantity:    xero.Amount(decimal.NewFromInt(1)),
			UnitAmount:  xero.Amount(decimal.RequireFromString("1234.50")),
		}},
	}

	id, err := xero.NewWithHTTPClient(srv.Client(), srv.URL, unlimited()).
		PushBill(context.Background(), inv, &xero.Attachment{FileName: "bill.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", id)
	assert.Equal(t, []byte("%PDF"), attached)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"Message":"A validation exception occurred","Elements":[{"ValidationErrors":[{"Message":"Account code '999' is not a valid code"}]}]}`)
	}))
	defer srv.Close()

	_, err := xero.NewWithHTTPClient(srv.Client(), srv.URL, unlimited()).PushBill(context.Background(), xero.Invoice{}, nil)

	var ue *xero.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadRequest, ue.Status)
	assert.Equal(t, "Account code '999' is not a valid code", ue.Message)
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestClient_BlocksOnCallBudget(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, `{"Contacts":[]}`)
	}))
	defer srv.Close()

	client := xero.NewWithHTTPClient(srv.Client(), srv.URL, rate.NewLimiter(rate.Every(time.Hour), 1))

	_, err := client.Contacts(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Contacts(ctx)
	assert.Error(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second call must not reach the server")
}

func TestClient_ClientCredentials(t *testing.T) {
	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"tok","token_type":"Bearer","expires_in":1800}`)
	})
	mux.HandleFunc("/api/Contacts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"Contacts":[{"ContactID":"c-1","Name":"Sparks"}]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := xero.New(context.Background(), xero.Config{
		ClientID:       "id",
		ClientSecret:   "secret",
		TokenURL:       srv.URL + "/token",
		BaseURL:        srv.URL + "/api",
		CallsPerWindow: 0,
	})

	for range 2 {
		got, err := client.Contacts(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
	}

	assert.Equal(t, int32(1), tokenCalls.Load(), "token is cached between calls")
}

func TestLimiter(t *testing.T) {
	l := xero.Limiter(60, time.Minute)
	assert.Equal(t, rate.Limit(1), l.Limit())
	assert.Equal(t, 1, l.Burst())

	assert.Equal(t, rate.Inf, xero.Limiter(0, time.Minute).Limit())
}
