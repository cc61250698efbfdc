package quote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
	"github.com/MrJamesThe3rd/costbook/internal/quote"
)

func amt(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestService_Create(t *testing.T) {
	supplier := uuid.New()
	line := uuid.New()

	type testCase struct {
		name      string
		params    quote.Params
		setupMock func(m *quote.MockRepository, r *quote.MockRefresher)
		wantField string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: quote.Params{
				CounterpartyID: supplier,
				SupplierRef:    " Q-1001 ",
				Total:          decimal.RequireFromString("150.00"),
				Allocations: []quote.AllocationParams{
					{CostLineID: line, Amount: amt("100.00")},
					{CostLineID: line, Amount: amt("50.00")},
					{CostLineID: line},
				},
			},
			setupMock: func(m *quote.MockRepository, r *quote.MockRefresher) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q *quote.Quote) error {
						assert.Equal(t, "Q-1001", q.SupplierRef)
						assert.Len(t, q.Allocations, 3)
						assert.False(t, q.Allocations[2].Amount.Valid)
						q.ID = uuid.New()

						return nil
					})
				r.EXPECT().Refresh(gomock.Any()).Return(nil)
			},
		},
		{
			name: "AllocationsExceedTotal",
			params: quote.Params{
				CounterpartyID: supplier,
				Total:          decimal.RequireFromString("100.00"),
				Allocations: []quote.AllocationParams{
					{CostLineID: line, Amount: amt("100.01")},
				},
			},
			wantField: "allocations",
		},
		{
			name: "AllocationWithoutCostLine",
			params: quote.Params{
				CounterpartyID: supplier,
				Total:          decimal.RequireFromString("100.00"),
				Allocations:    []quote.AllocationParams{{Amount: amt("10.00")}},
			},
			wantField: "allocations[0].cost_line_id",
		},
		{
			name:      "MissingCounterparty",
			params:    quote.Params{Total: decimal.RequireFromString("1")},
			wantField: "counterparty_id",
		},
		{
			name: "UnknownCostLine",
			params: quote.Params{
				CounterpartyID: supplier,
				Total:          decimal.RequireFromString("10.00"),
				Allocations:    []quote.AllocationParams{{CostLineID: line, Amount: amt("10.00")}},
			},
			setupMock: func(m *quote.MockRepository, r *quote.MockRefresher) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(quote.ErrUnknownReference)
			},
			wantErr: true,
		},
		{
			name: "RefreshFailureDoesNotFailCreate",
			params: quote.Params{
				CounterpartyID: supplier,
				Total:          decimal.RequireFromString("10.00"),
			},
			setupMock: func(m *quote.MockRepository, r *quote.MockRefresher) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().Refresh(gomock.Any()).Return(errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := quote.NewMockRepository(ctrl)
			refresher := quote.NewMockRefresher(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, refresher)
			}

			got, err := quote.NewService(repo, refresher, nil).Create(context.Background(), tt.params)

			if tt.wantField != "" {
				var verr *apperr.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tt.wantField)

				return
			}

			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrNotFound)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := quote.NewMockRepository(ctrl)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(quote.ErrNotFound)

		_, err := quote.NewService(repo, quote.NewMockRefresher(ctrl), nil).Update(context.Background(), id, quote.Params{
			CounterpartyID: uuid.New(),
		})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("ReplacesAllocations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := quote.NewMockRepository(ctrl)
		refresher := quote.NewMockRefresher(ctrl)
		line := uuid.New()

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *quote.Quote) error {
				assert.Equal(t, id, q.ID)
				require.Len(t, q.Allocations, 1)
				assert.Equal(t, line, q.Allocations[0].CostLineID)

				return nil
			})
		refresher.EXPECT().Refresh(gomock.Any()).Return(nil)

		_, err := quote.NewService(repo, refresher, nil).Update(context.Background(), id, quote.Params{
			CounterpartyID: uuid.New(),
			Total:          decimal.RequireFromString("25"),
			Allocations:    []quote.AllocationParams{{CostLineID: line, Amount: amt("25")}},
		})
		require.NoError(t, err)
	})
}

func TestService_AttachDocument(t *testing.T) {
	id := uuid.New()

	ctrl := gomock.NewController(t)
	repo := quote.NewMockRepository(ctrl)
	files := quote.NewMockFileStore(ctrl)

	repo.EXPECT().Get(gomock.Any(), id).Return(&quote.Quote{ID: id}, nil)
	files.EXPECT().Save(gomock.Any(), "quotes/"+id.String()+"/q.pdf", []byte("%PDF")).Return("/media/quotes/q.pdf", nil)
	repo.EXPECT().SetDocument(gomock.Any(), id, "quotes/"+id.String()+"/q.pdf").Return(nil)

	url, err := quote.NewService(repo, nil, files).AttachDocument(context.Background(), id, "../../q.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "/media/quotes/q.pdf", url)
}
