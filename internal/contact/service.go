package contact

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/costbook/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contact
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Counterparty, error)
	Get(ctx context.Context, id uuid.UUID) (*Counterparty, error)
	Create(ctx context.Context, c *Counterparty) error
	Update(ctx context.Context, c *Counterparty) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpsertByXeroID(ctx context.Context, c *Counterparty) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Params are the user-editable fields of a counterparty.
type Params struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Division      string `json:"division"`
	ABN           string `json:"abn" validate:"omitempty,number,len=11"`
	BSB           string `json:"bsb" validate:"omitempty,number,len=6"`
	AccountNumber string `json:"account_number" validate:"omitempty,number,min=6"`
}

// normalize trims text fields and strips whitespace (and the BSB hyphen) from number fields.
func (p Params) normalize() Params {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Division = strings.TrimSpace(p.Division)
	p.ABN = stripSpace(p.ABN)
	p.BSB = strings.ReplaceAll(stripSpace(p.BSB), "-", "")
	p.AccountNumber = stripSpace(p.AccountNumber)

	return p
}

func (p Params) apply(c *Counterparty) {
	c.Name = p.Name
	c.Email = p.Email
	c.Division = p.Division
	c.ABN = p.ABN
	c.BSB = p.BSB
	c.AccountNumber = p.AccountNumber
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Counterparty, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Counterparty, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Params) (*Counterparty, error) {
	p = p.normalize()
	if err := validate.Struct(p); err != nil {
		return nil, err
	}

	c := &Counterparty{}
	p.apply(c)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, p Params) (*Counterparty, error) {
	p = p.normalize()
	if err := validate.Struct(p); err != nil {
		return nil, err
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.apply(c)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UpsertFromXero creates or refreshes the counterparty linked to xeroID.
// Bank and tax details pass the same validation as manual edits.
func (s *Service) UpsertFromXero(ctx context.Context, xeroID string, p Params) (*Counterparty, error) {
	p = p.normalize()
	if err := validate.Struct(p); err != nil {
		return nil, err
	}

	c := &Counterparty{XeroContactID: xeroID}
	p.apply(c)

	if err := s.repo.UpsertByXeroID(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
