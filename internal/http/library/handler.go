package library

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
	"github.com/MrJamesThe3rd/costbook/internal/library"
)

type Handler struct {
	svc *library.Service
}

func NewHandler(svc *library.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upload)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type documentResponse struct {
	ID         uuid.UUID    `json:"id"`
	Kind       library.Kind `json:"kind"`
	Title      string       `json:"title"`
	URL        string       `json:"url"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

func toResponse(d *library.Document) documentResponse {
	return documentResponse{ID: d.ID, Kind: d.Kind, Title: d.Title, URL: d.URL, UploadedAt: d.UploadedAt}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.List(r.Context(), library.Kind(r.URL.Query().Get("kind")))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]documentResponse, len(docs))
	for i, d := range docs {
		resp[i] = toResponse(d)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(d))
}

// upload expects multipart fields kind, title (optional) and file.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	data, name, ok := respond.Upload(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Upload(r.Context(), library.Kind(r.FormValue("kind")), r.FormValue("title"), name, data)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(d))
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
