package allocation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/costbook/internal/allocation"
)

func TestService_Summary(t *testing.T) {
	x, y := uuid.New(), uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *allocation.MockRepository)
		want      []allocation.SummaryLine
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *allocation.MockRepository) {
				m.EXPECT().CostLines(gomock.Any()).Return([]allocation.CostLine{
					{ID: x, Category: "Electrical", Name: "Rough-in", Budget: dec("200.00")},
					{ID: y, Category: "Plumbing", Name: "Fit-off", Budget: dec("80.00")},
				}, nil)
				m.EXPECT().QuoteRows(gomock.Any()).Return([]allocation.QuoteRow{
					{QuoteID: uuid.New(), CostLineID: x, Amount: amt("150.00")},
				}, nil)
				m.EXPECT().BillRows(gomock.Any()).Return([]allocation.BillRow{
					{BillID: uuid.New(), BillType: 2, AllocationType: 0, CostLineID: x, Amount: amt("30.00")},
				}, nil)
			},
			want: []allocation.SummaryLine{
				{CostLineID: x, Category: "Electrical", Name: "Rough-in", Budget: dec("200.00"), Committed: dec("180.00"), Uncommitted: dec("20.00")},
				{CostLineID: y, Category: "Plumbing", Name: "Fit-off", Budget: dec("80.00"), Committed: decimal.Zero, Uncommitted: dec("80.00")},
			},
		},
		{
			name: "RepoError",
			setupMock: func(m *allocation.MockRepository) {
				m.EXPECT().CostLines(gomock.Any()).Return([]allocation.CostLine{{ID: x}}, nil)
				m.EXPECT().QuoteRows(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := allocation.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := allocation.NewService(repo).Summary(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.want))

			for i := range tt.want {
				assert.Equal(t, tt.want[i].CostLineID, got[i].CostLineID)
				assert.True(t, tt.want[i].Committed.Equal(got[i].Committed), "committed %s", got[i].Committed)
				assert.True(t, tt.want[i].Uncommitted.Equal(got[i].Uncommitted), "uncommitted %s", got[i].Uncommitted)
			}
		})
	}
}

func TestService_BillAllocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := allocation.NewMockRepository(ctrl)
	repo.EXPECT().BillRows(gomock.Any()).Return([]allocation.BillRow{
		{BillID: uuid.New(), CounterpartyID: uuid.New(), BillStatus: 0, CostLineID: uuid.New(), Amount: amt("1")},
	}, nil)

	groups, err := allocation.NewService(repo).BillAllocations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}
