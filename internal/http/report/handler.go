package report

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
	"github.com/MrJamesThe3rd/costbook/internal/report"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/committed", h.committed)
	r.Get("/committed.csv", h.committedCSV)
	r.Get("/committed.xlsx", h.committedXLSX)
	r.Get("/quote-allocations", h.quoteAllocations)
	r.Get("/bill-allocations", h.billAllocations)
	r.Get("/bills/download", h.downloadBills)
}

func (h *Handler) committed(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.Committed(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, lines)
}

func (h *Handler) committedCSV(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.Committed(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteCommittedCSV(&buf, lines); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.File(w, "text/csv; charset=utf-8", stamped("committed", "csv"), buf.Bytes())
}

func (h *Handler) committedXLSX(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.Committed(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	data, err := report.CommittedXLSX(lines)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.File(w, xlsxType, stamped("committed", "xlsx"), data)
}

func (h *Handler) quoteAllocations(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.QuoteAllocations(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, groups)
}

func (h *Handler) billAllocations(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.BillAllocations(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, groups)
}

// downloadBills zips the documents of bills dated between from and to (inclusive, YYYY-MM-DD).
func (h *Handler) downloadBills(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
	if err != nil {
		respond.BadRequest(w, "from must be YYYY-MM-DD")
		return
	}

	to, err := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
	if err != nil {
		respond.BadRequest(w, "to must be YYYY-MM-DD")
		return
	}

	if to.Before(from) {
		respond.BadRequest(w, "to is before from")
		return
	}

	data, _, err := h.svc.BillDocuments(r.Context(), from, to)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	name := fmt.Sprintf("bills_%s_%s.zip", from.Format("20060102"), to.Format("20060102"))
	respond.File(w, "application/zip", name, data)
}

func stamped(base, ext string) string {
	return fmt.Sprintf("%s_%s.%s", base, time.Now().Format("20060102"), ext)
}
