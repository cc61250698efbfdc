package quote

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
	"github.com/MrJamesThe3rd/costbook/internal/quote"
)

type Handler struct {
	svc *quote.Service
}

func NewHandler(svc *quote.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/document", h.attachDocument)
}

type allocationResponse struct {
	ID         uuid.UUID           `json:"id"`
	CostLineID uuid.UUID           `json:"cost_line_id"`
	Amount     decimal.NullDecimal `json:"amount"`
	Note       string              `json:"note,omitempty"`
}

type quoteResponse struct {
	ID             uuid.UUID            `json:"id"`
	CounterpartyID uuid.UUID            `json:"counterparty_id"`
	SupplierRef    string               `json:"supplier_ref"`
	Total          decimal.Decimal      `json:"total"`
	DocumentPath   string               `json:"document_path,omitempty"`
	Allocations    []allocationResponse `json:"allocations"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func toResponse(q *quote.Quote) quoteResponse {
	resp := quoteResponse{
		ID:             q.ID,
		CounterpartyID: q.CounterpartyID,
		SupplierRef:    q.SupplierRef,
		Total:          q.Total,
		DocumentPath:   q.DocumentPath,
		Allocations:    make([]allocationResponse, len(q.Allocations)),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}

	for i, a := range q.Allocations {
		resp.Allocations[i] = allocationResponse{ID: a.ID, CostLineID: a.CostLineID, Amount: a.Amount, Note: a.Note}
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter quote.ListFilter

	if s := r.URL.Query().Get("counterparty_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.BadRequest(w, "invalid counterparty_id")
			return
		}

		filter.CounterpartyID = &id
	}

	quotes, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]quoteResponse, len(quotes))
	for i, q := range quotes {
		resp[i] = toResponse(q)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(q))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var p quote.Params
	if !respond.Decode(w, r, &p) {
		return
	}

	q, err := h.svc.Create(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(q))
}

// update replaces the quote's fields and its whole allocation set.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var p quote.Params
	if !respond.Decode(w, r, &p) {
		return
	}

	q, err := h.svc.Update(r.Context(), id, p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(q))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) attachDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	data, name, ok := respond.Upload(w, r)
	if !ok {
		return
	}

	url, err := h.svc.AttachDocument(r.Context(), id, name, data)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"url": url})
}
