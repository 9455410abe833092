package matching_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmcardenas/centavo/internal/matching"
)

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)
	ownerID := uuid.New()

	repo.EXPECT().
		FindCategory(gomock.Any(), ownerID, "COMPRA SUPERMERCADO LIDER").
		Return("Alimentación", nil)

	got, err := svc.Suggest(context.Background(), ownerID, "  COMPRA SUPERMERCADO LIDER  ")
	require.NoError(t, err)
	assert.Equal(t, "Alimentación", got)
}

func TestService_Suggest_EmptyDescriptionSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)

	got, err := svc.Suggest(context.Background(), uuid.New(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Learn(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name      string
		pattern   string
		category  string
		setupMock func(repo *matching.MockRepository)
		wantErr   error
	}{
		{
			name:     "Stores",
			pattern:  "SUPERMERCADO",
			category: "Alimentación",
			setupMock: func(repo *matching.MockRepository) {
				repo.EXPECT().
					CreateMapping(gomock.Any(), ownerID, "SUPERMERCADO", "Alimentación").
					Return(nil)
			},
		},
		{
			name:      "EmptyPattern",
			pattern:   "  ",
			category:  "Alimentación",
			setupMock: func(repo *matching.MockRepository) {},
			wantErr:   matching.ErrValidation,
		},
		{
			name:      "EmptyCategory",
			pattern:   "SUPERMERCADO",
			category:  "",
			setupMock: func(repo *matching.MockRepository) {},
			wantErr:   matching.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := matching.NewMockRepository(ctrl)
			tt.setupMock(repo)

			err := matching.NewService(repo).Learn(context.Background(), ownerID, tt.pattern, tt.category)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
