package purchaseorder

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
	"github.com/MrJamesThe3rd/costbook/internal/purchaseorder"
)

type Handler struct {
	svc *purchaseorder.Service
}

func NewHandler(svc *purchaseorder.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/pdf", h.pdf)
	r.Post("/{id}/email", h.email)
}

type lineResponse struct {
	ID            uuid.UUID       `json:"id"`
	CostLineID    uuid.UUID       `json:"cost_line_id"`
	QuoteID       *uuid.UUID      `json:"quote_id"`
	Amount        decimal.Decimal `json:"amount"`
	VariationNote string          `json:"variation_note,omitempty"`
	Date          *time.Time      `json:"date,omitempty"`
}

type orderResponse struct {
	ID             uuid.UUID       `json:"id"`
	Reference      string          `json:"reference"`
	CounterpartyID uuid.UUID       `json:"counterparty_id"`
	Notes          []string        `json:"notes"`
	Lines          []lineResponse  `json:"lines"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
}

func toResponse(o *purchaseorder.PurchaseOrder) orderResponse {
	resp := orderResponse{
		ID:             o.ID,
		Reference:      o.Reference(),
		CounterpartyID: o.CounterpartyID,
		Notes:          o.Notes,
		Lines:          make([]lineResponse, len(o.Lines)),
		Total:          o.Total(),
		CreatedAt:      o.CreatedAt,
	}

	if resp.Notes == nil {
		resp.Notes = []string{}
	}

	for i, l := range o.Lines {
		resp.Lines[i] = lineResponse{
			ID:            l.ID,
			CostLineID:    l.CostLineID,
			QuoteID:       l.QuoteID,
			Amount:        l.Amount,
			VariationNote: l.VariationNote,
			Date:          l.Date,
		}
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter purchaseorder.ListFilter

	if s := r.URL.Query().Get("counterparty_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.BadRequest(w, "invalid counterparty_id")
			return
		}

		filter.CounterpartyID = &id
	}

	orders, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(o))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var p purchaseorder.Params
	if !respond.Decode(w, r, &p) {
		return
	}

	o, err := h.svc.Create(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(o))
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

// pdf serves the order inline so browsers open it in a viewer.
func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	data, order, _, err := h.svc.PDF(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+order.Reference()+`.pdf"`)
	_, _ = w.Write(data)
}

type emailRequest struct {
	To []string `json:"to"`
	Cc []string `json:"cc"`
}

func (h *Handler) email(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req emailRequest
	if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
		return
	}

	if err := h.svc.Email(r.Context(), id, req.To, req.Cc); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
