package category

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/costbook/internal/category"
)

type categoryResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Order     int                `json:"order"`
	Lines     []costLineResponse `json:"cost_lines"`
	CreatedAt time.Time          `json:"created_at"`
}

type costLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	Uncommitted decimal.Decimal `json:"uncommitted"`
}

type uploadResponse struct {
	Imported   int                `json:"imported"`
	Categories []categoryResponse `json:"categories"`
}

func toResponse(c *category.Category) categoryResponse {
	resp := categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Order:     c.Order,
		Lines:     make([]costLineResponse, len(c.Lines)),
		CreatedAt: c.CreatedAt,
	}

	for i, l := range c.Lines {
		resp.Lines[i] = toLineResponse(l)
	}

	return resp
}

func toResponseList(cats []*category.Category) []categoryResponse {
	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = toResponse(c)
	}

	return resp
}

func toLineResponse(l *category.CostLine) costLineResponse {
	return costLineResponse{
		ID:          l.ID,
		CategoryID:  l.CategoryID,
		Name:        l.Name,
		Budget:      l.Budget,
		Uncommitted: l.Uncommitted,
	}
}
