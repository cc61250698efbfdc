package accountcode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/costbook/internal/accountcode"
	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

func TestService_Suggest(t *testing.T) {
	tests := []struct {
		name    string
		match   string
		repoErr error
		want    string
		wantErr bool
	}{
		{name: "Match", match: "310", want: "310"},
		{name: "FallsBackToDefault", match: "", want: "300"},
		{name: "RepoError", repoErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := accountcode.NewMockRepository(ctrl)
			repo.EXPECT().FindMatch(gomock.Any(), "Electrical rough-in").Return(tt.match, tt.repoErr)

			got, err := accountcode.NewService(repo, "300").Suggest(context.Background(), "Electrical rough-in")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	t.Run("TrimsInput", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := accountcode.NewMockRepository(ctrl)
		repo.EXPECT().CreateMapping(gomock.Any(), &accountcode.Mapping{Pattern: "electrical", AccountCode: "310"}).Return(nil)

		_, err := accountcode.NewService(repo, "300").Learn(context.Background(), " electrical ", "310 ")
		require.NoError(t, err)
	})

	t.Run("ReturnsStoredMapping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := accountcode.NewMockRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().CreateMapping(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *accountcode.Mapping) error {
			m.ID = id
			return nil
		})

		got, err := accountcode.NewService(repo, "300").Learn(context.Background(), "plumbing", "320")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "320", got.AccountCode)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := accountcode.NewMockRepository(ctrl)
		repo.EXPECT().CreateMapping(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := accountcode.NewService(repo, "300").Learn(context.Background(), "plumbing", "320")
		assert.Error(t, err)
	})

	t.Run("BothFieldsRequired", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := accountcode.NewService(accountcode.NewMockRepository(ctrl), "300").Learn(context.Background(), "", " ")

		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
	})
}
