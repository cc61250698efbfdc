package xero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/MrJamesThe3rd/costbook/internal/metrics"
)

const pageSize = 100

type Config struct {
	ClientID       string
	ClientSecret   string
	TokenURL       string
	BaseURL        string
	Scopes         []string
	CallsPerWindow int
	Window         time.Duration
}

// Limiter spaces calls evenly so no window ever exceeds calls requests.
// Callers block in Wait until a slot frees or ctx ends.
func Limiter(calls int, window time.Duration) *rate.Limiter {
	if calls <= 0 || window <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	return rate.NewLimiter(rate.Every(window/time.Duration(calls)), 1)
}

type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
}

// New returns a client that authenticates with the client-credentials grant.
// Tokens are fetched lazily and refreshed by the oauth2 transport.
func New(ctx context.Context, cfg Config) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}

	hc := cc.Client(ctx)
	hc.Timeout = 30 * time.Second

	return NewWithHTTPClient(hc, cfg.BaseURL, Limiter(cfg.CallsPerWindow, cfg.Window))
}

func NewWithHTTPClient(hc *http.Client, baseURL string, limiter *rate.Limiter) *Client {
	return &Client{
		http:    hc,
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: limiter,
	}
}

// Contacts pulls every contact, page by page.
func (c *Client) Contacts(ctx context.Context) ([]Contact, error) {
	var all []Contact

	for page := 1; ; page++ {
		var resp struct {
			Contacts []Contact `json:"Contacts"`
		}

		q := url.Values{"page": {strconv.Itoa(page)}}
		if err := c.do(ctx, "contacts", http.MethodGet, "/Contacts?"+q.Encode(), nil, "", &resp); err != nil {
			return nil, err
		}

		all = append(all, resp.Contacts...)

		if len(resp.Contacts) < pageSize {
			return all, nil
		}
	}
}

// PushBill creates inv and, when att carries data, uploads it onto the new invoice.
// It returns Xero's invoice id.
func (c *Client) PushBill(ctx context.Context, inv Invoice, att *Attachment) (string, error) {
	body, err := json.Marshal(struct {
		Invoices []Invoice `json:"Invoices"`
	}{Invoices: []Invoice{inv}})
	if err != nil {
		return "", fmt.Errorf("encoding invoice: %w", err)
	}

	var resp struct {
		Invoices []struct {
			InvoiceID string `json:"InvoiceID"`
		} `json:"Invoices"`
	}

	if err := c.do(ctx, "push_bill", http.MethodPost, "/Invoices", bytes.NewReader(body), "application/json", &resp); err != nil {
		return "", err
	}

	if len(resp.Invoices) == 0 || resp.Invoices[0].InvoiceID == "" {
		return "", &UpstreamError{Op: "push_bill", Status: http.StatusOK, Message: "response carried no invoice id"}
	}

	id := resp.Invoices[0].InvoiceID

	if att != nil && len(att.Data) > 0 {
		p := "/Invoices/" + url.PathEscape(id) + "/Attachments/" + url.PathEscape(att.FileName)
		if err := c.do(ctx, "attach", http.MethodPut, p, bytes.NewReader(att.Data), "application/pdf", nil); err != nil {
			return id, err
		}
	}

	return id, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) (err error) {
	defer func() { metrics.Upstream("xero", op, err) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for xero call budget: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return &UpstreamError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Op: op, Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Op: op, Status: resp.StatusCode, Message: "decoding response: " + err.Error()}
	}

	return nil
}

// errorMessage extracts Xero's message, preferring the first validation error.
func errorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 8<<10))

	var body struct {
		Message  string `json:"Message"`
		Detail   string `json:"Detail"`
		Elements []struct {
			ValidationErrors []struct {
				Message string `json:"Message"`
			} `json:"ValidationErrors"`
		} `json:"Elements"`
	}

	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}

	for _, el := range body.Elements {
		for _, ve := range el.ValidationErrors {
			if ve.Message != "" {
				return ve.Message
			}
		}
	}

	switch {
	case body.Detail != "":
		return body.Detail
	case body.Message != "":
		return body.Message
	}

	return strings.TrimSpace(string(raw))
}
