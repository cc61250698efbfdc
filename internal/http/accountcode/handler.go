package accountcode

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/accountcode"
	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
)

type Handler struct {
	svc *accountcode.Service
}

func NewHandler(svc *accountcode.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.learn)
	r.Get("/suggest", h.suggest)
	r.Delete("/{id}", h.delete)
}

type mappingResponse struct {
	ID          uuid.UUID `json:"id"`
	Pattern     string    `json:"pattern"`
	AccountCode string    `json:"account_code"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(m *accountcode.Mapping) mappingResponse {
	return mappingResponse{ID: m.ID, Pattern: m.Pattern, AccountCode: m.AccountCode, CreatedAt: m.CreatedAt}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]mappingResponse, len(mappings))
	for i, m := range mappings {
		resp[i] = toResponse(m)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type suggestResponse struct {
	CostLine    string `json:"cost_line"`
	AccountCode string `json:"account_code"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("cost_line")
	if name == "" {
		respond.BadRequest(w, "cost_line query parameter is required")
		return
	}

	code, err := h.svc.Suggest(r.Context(), name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, suggestResponse{CostLine: name, AccountCode: code})
}

type learnRequest struct {
	Pattern     string `json:"pattern"`
	AccountCode string `json:"account_code"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	m, err := h.svc.Learn(r.Context(), req.Pattern, req.AccountCode)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(m))
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
