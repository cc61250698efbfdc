package category_test

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
	"github.com/MrJamesThe3rd/costbook/internal/category"
)

func TestService_ReplaceCategories(t *testing.T) {
	type testCase struct {
		name      string
		names     []string
		setupMock func(m *category.MockRepository, rtx *category.MockReplaceTx)
		wantLen   int
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "ThreeRowsYieldThreeCategories",
			names: []string{"Electrical", "Plumbing", "Joinery"},
			setupMock: func(m *category.MockRepository, rtx *category.MockReplaceTx) {
				m.EXPECT().BeginReplace(gomock.Any()).Return(rtx, nil)
				rtx.EXPECT().DeleteAllCategories(gomock.Any()).Return(nil)
				rtx.EXPECT().CreateCategories(gomock.Any(), gomock.Len(3)).Return(nil)
				rtx.EXPECT().Commit().Return(nil)
				rtx.EXPECT().Rollback().Return(nil)
			},
			wantLen: 3,
		},
		{
			name:  "EmptyUploadClearsCategories",
			names: nil,
			setupMock: func(m *category.MockRepository, rtx *category.MockReplaceTx) {
				m.EXPECT().BeginReplace(gomock.Any()).Return(rtx, nil)
				rtx.EXPECT().DeleteAllCategories(gomock.Any()).Return(nil)
				rtx.EXPECT().CreateCategories(gomock.Any(), gomock.Len(0)).Return(nil)
				rtx.EXPECT().Commit().Return(nil)
				rtx.EXPECT().Rollback().Return(nil)
			},
			wantLen: 0,
		},
		{
			name:      "BlankNameRejectedBeforeTouchingDatabase",
			names:     []string{"Electrical", "  "},
			setupMock: func(m *category.MockRepository, rtx *category.MockReplaceTx) {},
			wantErr:   &apperr.ValidationError{},
		},
		{
			name:  "InsertFailureRollsBack",
			names: []string{"Electrical"},
			setupMock: func(m *category.MockRepository, rtx *category.MockReplaceTx) {
				m.EXPECT().BeginReplace(gomock.Any()).Return(rtx, nil)
				rtx.EXPECT().DeleteAllCategories(gomock.Any()).Return(nil)
				rtx.EXPECT().CreateCategories(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				rtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			rtx := category.NewMockReplaceTx(ctrl)
			tt.setupMock(repo, rtx)

			got, err := category.NewService(repo, nil).ReplaceCategories(context.Background(), tt.names)
			if tt.wantErr != nil {
				require.Error(t, err)

				var verr *apperr.ValidationError
				if errors.As(tt.wantErr, &verr) {
					assert.ErrorAs(t, err, &verr)
				}

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)

			for i, c := range got {
				assert.Equal(t, i, c.Order)
			}
		})
	}
}

func TestService_ReplaceCostLines(t *testing.T) {
	elec := uuid.New()

	t.Run("ResolvesCategoryByName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		rtx := category.NewMockReplaceTx(ctrl)

		repo.EXPECT().BeginReplace(gomock.Any()).Return(rtx, nil)
		rtx.EXPECT().CategoryIDsByName(gomock.Any()).Return(map[string]uuid.UUID{"Electrical": elec}, nil)
		rtx.EXPECT().DeleteAllCostLines(gomock.Any()).Return(nil)
		rtx.EXPECT().CreateCostLines(gomock.Any(), gomock.Len(2)).Return(nil)
		rtx.EXPECT().Commit().Return(nil)
		rtx.EXPECT().Rollback().Return(nil)

		got, err := category.NewService(repo, nil).ReplaceCostLines(context.Background(), []category.CostLineRow{
			{Category: "Electrical", Name: "Rough-in", Budget: decimal.RequireFromString("1200.004")},
			{Category: " Electrical ", Name: "Fit-off", Budget: decimal.RequireFromString("800")},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, elec, got[0].CategoryID)
		assert.True(t, got[0].Budget.Equal(decimal.RequireFromString("1200")), "budget %s", got[0].Budget)
		assert.True(t, got[0].Uncommitted.Equal(got[0].Budget))
	})

	t.Run("UnknownCategoryFailsWholeUpload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		rtx := category.NewMockReplaceTx(ctrl)

		repo.EXPECT().BeginReplace(gomock.Any()).Return(rtx, nil)
		rtx.EXPECT().CategoryIDsByName(gomock.Any()).Return(map[string]uuid.UUID{"Electrical": elec}, nil)
		rtx.EXPECT().Rollback().Return(nil)

		_, err := category.NewService(repo, nil).ReplaceCostLines(context.Background(), []category.CostLineRow{
			{Category: "Electrical", Name: "Rough-in"},
			{Category: "Roofing", Name: "Sheet"},
		})

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "row 2")
	})
}

func TestService_Refresh(t *testing.T) {
	line := uuid.New()
	committed := map[uuid.UUID]decimal.Decimal{line: decimal.RequireFromString("180.00")}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		src := category.NewMockCommittedSource(ctrl)

		src.EXPECT().Committed(gomock.Any()).Return(committed, nil)
		repo.EXPECT().SetUncommitted(gomock.Any(), committed).Return(nil)

		assert.NoError(t, category.NewService(repo, src).Refresh(context.Background()))
	})

	t.Run("SourceError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		src := category.NewMockCommittedSource(ctrl)

		src.EXPECT().Committed(gomock.Any()).Return(nil, errors.New("db error"))

		assert.Error(t, category.NewService(repo, src).Refresh(context.Background()))
	})
}

func TestService_CreateLine(t *testing.T) {
	catID := uuid.New()

	t.Run("UnknownCategory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().GetCategory(gomock.Any(), catID).Return(nil, category.ErrNotFound)

		_, err := category.NewService(repo, nil).CreateLine(context.Background(), category.CostLineParams{
			CategoryID: catID,
			Name:       "Rough-in",
		})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("UncommittedStartsAtBudget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().GetCategory(gomock.Any(), catID).Return(&category.Category{ID: catID}, nil)
		repo.EXPECT().CreateCostLine(gomock.Any(), gomock.Any()).Return(nil)

		got, err := category.NewService(repo, nil).CreateLine(context.Background(), category.CostLineParams{
			CategoryID: catID,
			Name:       "Rough-in",
			Budget:     decimal.RequireFromString("500"),
		})
		require.NoError(t, err)
		assert.True(t, got.Uncommitted.Equal(decimal.RequireFromString("500")))
	})

	t.Run("BlankName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)

		_, err := category.NewService(repo, nil).CreateLine(context.Background(), category.CostLineParams{CategoryID: catID})

		var verr *apperr.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
