package respond_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
)

func TestError(t *testing.T) {
	verr := apperr.NewValidation()
	verr.Add("bsb", "must be 6 digits")

	type testCase struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantFields map[string]string
	}

	tests := []testCase{
		{
			name:       "Validation",
			err:        fmt.Errorf("creating contact: %w", verr),
			wantStatus: http.StatusBadRequest,
			wantError:  "validation failed",
			wantFields: map[string]string{"bsb": "must be 6 digits"},
		},
		{
			name:       "NotFound",
			err:        fmt.Errorf("quote %w", apperr.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "quote not found",
		},
		{
			name:       "Upstream",
			err:        fmt.Errorf("%w: sending mail: 550 mailbox unavailable", apperr.ErrUpstream),
			wantStatus: http.StatusBadGateway,
			wantError:  "upstream failure: sending mail: 550 mailbox unavailable",
		},
		{
			name:       "Internal",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respond.Error(w, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tc.wantError, body.Error)
			assert.Equal(t, tc.wantFields, body.Fields)
		})
	}
}

func TestDecode(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	w := httptest.NewRecorder()
	ok := respond.Decode(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`)), &v)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartRequest(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile(field, "plan.pdf")
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	return r
}

func TestUpload(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		size     int
		limit    int64
		wantOK   bool
		wantCode int
	}{
		{name: "WithinLimit", field: "file", size: 512, limit: 4096, wantOK: true, wantCode: http.StatusOK},
		{name: "OverLimit", field: "file", size: 8192, limit: 4096, wantCode: http.StatusRequestEntityTooLarge},
		{name: "MissingField", field: "other", size: 16, limit: 4096, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bytes.Repeat([]byte("x"), tt.size)
			w := httptest.NewRecorder()

			data, name, ok := respond.UploadLimited(w, multipartRequest(t, tt.field, payload), tt.limit)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantOK {
				assert.Equal(t, payload, data)
				assert.Equal(t, "plan.pdf", name)
			}
		})
	}
}
