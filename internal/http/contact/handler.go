package contact

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/contact"
	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
	"github.com/MrJamesThe3rd/costbook/internal/xerosync"
)

type Handler struct {
	svc  *contact.Service
	sync *xerosync.Service
}

func NewHandler(svc *contact.Service, sync *xerosync.Service) *Handler {
	return &Handler{svc: svc, sync: sync}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/sync", h.syncXero)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type counterpartyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Division      string    `json:"division,omitempty"`
	ABN           string    `json:"abn,omitempty"`
	BSB           string    `json:"bsb,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	XeroContactID string    `json:"xero_contact_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toResponse(c *contact.Counterparty) counterpartyResponse {
	return counterpartyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Division:      c.Division,
		ABN:           c.ABN,
		BSB:           c.BSB,
		AccountNumber: c.AccountNumber,
		XeroContactID: c.XeroContactID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cps, err := h.svc.List(r.Context(), contact.ListFilter{Search: r.URL.Query().Get("q")})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]counterpartyResponse, len(cps))
	for i, c := range cps {
		resp[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var p contact.Params
	if !respond.Decode(w, r, &p) {
		return
	}

	c, err := h.svc.Create(r.Context(), p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var p contact.Params
	if !respond.Decode(w, r, &p) {
		return
	}

	c, err := h.svc.Update(r.Context(), id, p)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
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

func (h *Handler) syncXero(w http.ResponseWriter, r *http.Request) {
	res, err := h.sync.SyncContacts(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
}
