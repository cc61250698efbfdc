package category

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/category"
	"github.com/MrJamesThe3rd/costbook/internal/http/respond"
	"github.com/MrJamesThe3rd/costbook/internal/importer"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts /categories.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/upload", h.upload)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// LineRoutes mounts /cost-lines.
func (h *Handler) LineRoutes(r chi.Router) {
	r.Post("/", h.createLine)
	r.Post("/upload", h.uploadLines)
	r.Get("/{id}", h.getLine)
	r.Put("/{id}", h.updateLine)
	r.Delete("/{id}", h.deleteLine)
}

type categoryRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(cats))
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
	var req categoryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), category.CategoryParams{Name: req.Name, Order: req.Order})
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

	var req categoryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c.Name = req.Name
	c.Order = req.Order

	if err := h.svc.Update(r.Context(), c); err != nil {
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

// upload replaces every category with the rows of the uploaded CSV.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	data, _, ok := respond.Upload(w, r)
	if !ok {
		return
	}

	names, err := importer.Categories(bytes.NewReader(data))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	cats, err := h.svc.ReplaceCategories(r.Context(), names)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, uploadResponse{Imported: len(cats), Categories: toResponseList(cats)})
}

type costLineRequest struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Name       string          `json:"name"`
	Budget     decimal.Decimal `json:"budget"`
}

func (h *Handler) createLine(w http.ResponseWriter, r *http.Request) {
	var req costLineRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	l, err := h.svc.CreateLine(r.Context(), category.CostLineParams{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Budget:     req.Budget,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toLineResponse(l))
}

func (h *Handler) getLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	l, err := h.svc.GetLine(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLineResponse(l))
}

func (h *Handler) updateLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	var req costLineRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	l, err := h.svc.GetLine(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if req.CategoryID != uuid.Nil {
		l.CategoryID = req.CategoryID
	}

	l.Name = req.Name
	l.Budget = req.Budget

	if err := h.svc.UpdateLine(r.Context(), l); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLineResponse(l))
}

func (h *Handler) deleteLine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.DeleteLine(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadLines replaces every cost line with the rows of the uploaded CSV.
func (h *Handler) uploadLines(w http.ResponseWriter, r *http.Request) {
	data, _, ok := respond.Upload(w, r)
	if !ok {
		return
	}

	rows, err := importer.CostLines(bytes.NewReader(data))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	lines, err := h.svc.ReplaceCostLines(r.Context(), rows)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]costLineResponse, len(lines))
	for i, l := range lines {
		resp[i] = toLineResponse(l)
	}

	respond.JSON(w, http.StatusOK, map[string]any{"imported": len(lines), "cost_lines": resp})
}
