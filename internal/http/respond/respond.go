// Package respond writes JSON responses and maps domain errors onto status codes.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// Error writes err with the status its kind maps to. Unclassified errors are
// logged and reported as a bare 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var verr *apperr.ValidationError

	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, apperr.ErrNotFound):
		JSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, apperr.ErrUpstream):
		slog.Warn("upstream failure", "error", err, "request_id", middleware.GetReqID(r.Context()))
		JSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()))
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// Decode reads a JSON body into v. Unknown fields are rejected.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		BadRequest(w, "invalid body: "+err.Error())
		return false
	}

	return true
}

// File sends data as a download named filename.
func File(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write file response", "error", err, "file", filename)
	}
}

// MaxUpload bounds multipart uploads.
const MaxUpload = 32 << 20

// Upload reads the multipart file field "file". Bodies over MaxUpload are
// rejected with 413 before they are buffered.
func Upload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	return upload(w, r, MaxUpload)
}

func upload(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			JSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: fmt.Sprintf("upload exceeds %d bytes", limit)})
			return nil, "", false
		}

		BadRequest(w, "failed to parse form: "+err.Error())

		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		BadRequest(w, "file field is required")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		BadRequest(w, "failed to read file: "+err.Error())
		return nil, "", false
	}

	return data, header.Filename, true
}
