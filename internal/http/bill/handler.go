package bill

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/bill"
	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
	"github.com/MrJamesThe3rd/costbook/internal/xerosync"
)

type Handler struct {
	svc  *bill.Service
	sync *xerosync.Service
}

func NewHandler(svc *bill.Service, sync *xerosync.Service) *Handler {
	return &Handler{svc: svc, sync: sync}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/split", h.split)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/allocations", h.replaceAllocations)
	r.Patch("/{id}/status", h.updateStatus)
	r.Post("/{id}/fix-rate", h.fixRate)
	r.Post("/{id}/document", h.attachDocument)
	r.Post("/{id}/push", h.push)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := bill.ListFilter{WithDocument: q.Get("with_document") == "true"}

	if s := q.Get("status"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			respond.BadRequest(w, "invalid status")
			return
		}

		filter.Status = new(bill.Status(n))
	}

	if s := q.Get("counterparty_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respond.BadRequest(w, "invalid counterparty_id")
			return
		}

		filter.CounterpartyID = &id
	}

	if s := q.Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.From = new(t)
		}
	}

	if s := q.Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.To = new(t)
		}
	}

	bills, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(bills))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(b))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var p bill.Params
	if !respond.Decode(w, r, &p) {
		return
	}

	b, err := h.svc.Create(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(b))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var p bill.Params
	if !respond.Decode(w, r, &p) {
		return
	}

	b, err := h.svc.Update(r.Context(), id, p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(b))
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

type allocationsRequest struct {
	Allocations []bill.AllocationParams `json:"allocations"`
}

func (h *Handler) replaceAllocations(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req allocationsRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	b, err := h.svc.ReplaceAllocations(r.Context(), id, req.Allocations)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(b))
}

type statusRequest struct {
	Status bill.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req statusRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := h.svc.SetStatus(r.Context(), id, req.Status); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type fixRateRequest struct {
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

func (h *Handler) fixRate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req fixRateRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	b, err := h.svc.FixRate(r.Context(), id, req.ExchangeRate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(b))
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

// split turns every page of an uploaded PDF into its own draft bill.
func (h *Handler) split(w http.ResponseWriter, r *http.Request) {
	data, name, ok := respond.Upload(w, r)
	if !ok {
		return
	}

	bills, err := h.svc.SplitUpload(r.Context(), name, data)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponseList(bills))
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	invoiceID, err := h.sync.PushBill(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"xero_invoice_id": invoiceID})
}
