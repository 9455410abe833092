package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmcardenas/centavo/internal/ledger"
)

func TestService_Append(t *testing.T) {
	ownerID := uuid.New()

	type args struct {
		params ledger.AppendParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	validParams := ledger.AppendParams{
		Type:        ledger.TypeIncome,
		Amount:      350000,
		Category:    "Salario",
		Description: "Salario mensual",
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: validParams},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			args: args{params: ledger.AppendParams{
				Type:        ledger.TypeExpense,
				Amount:      0,
				Category:    "Vivienda",
				Description: "Renta",
				Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
			wantErr: ledger.ErrValidation,
		},
		{
			name: "NegativeAmount",
			args: args{params: ledger.AppendParams{
				Type:        ledger.TypeExpense,
				Amount:      -100,
				Category:    "Vivienda",
				Description: "Renta",
				Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
			wantErr: ledger.ErrValidation,
		},
		{
			name: "UnknownType",
			args: args{params: ledger.AppendParams{
				Type:        "TRANSFER",
				Amount:      100,
				Category:    "Otros",
				Description: "x",
				Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
			wantErr: ledger.ErrValidation,
		},
		{
			name: "MissingCategory",
			args: args{params: ledger.AppendParams{
				Type:        ledger.TypeSaving,
				Amount:      100,
				Description: "x",
				Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
			wantErr: ledger.ErrValidation,
		},
		{
			name: "MissingDate",
			args: args{params: ledger.AppendParams{
				Type:        ledger.TypeSaving,
				Amount:      100,
				Category:    "Ahorro",
				Description: "x",
			}},
			wantErr: ledger.ErrValidation,
		},
		{
			name: "RepoError",
			args: args{params: validParams},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Validation failures must not reach the repository; no
			// expectation is registered for those cases.
			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.Append(context.Background(), ownerID, tt.args.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, ledger.ErrValidation) {
					assert.ErrorIs(t, err, ledger.ErrValidation)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, ownerID, got.OwnerID)
			assert.Equal(t, tt.args.params.Amount, got.Amount)
		})
	}
}

func TestService_Remove(t *testing.T) {
	ownerID := uuid.New()
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().DeleteTransaction(gomock.Any(), ownerID, id).Return(nil)

		svc := ledger.NewService(repo)
		require.NoError(t, svc.Remove(context.Background(), ownerID, id))
	})

	t.Run("SecondDeleteFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().DeleteTransaction(gomock.Any(), ownerID, id).Return(nil),
			repo.EXPECT().DeleteTransaction(gomock.Any(), ownerID, id).Return(ledger.ErrNotFound),
		)

		svc := ledger.NewService(repo)
		require.NoError(t, svc.Remove(context.Background(), ownerID, id))
		assert.ErrorIs(t, svc.Remove(context.Background(), ownerID, id), ledger.ErrNotFound)
	})
}

func TestService_SumByType(t *testing.T) {
	ownerID := uuid.New()
	cutoff := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter ledger.Filter) ([]*ledger.Transaction, error) {
			require.NotNil(t, filter.Type)
			assert.Equal(t, ledger.TypeIncome, *filter.Type)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, cutoff, *filter.EndDate)

			return []*ledger.Transaction{
				{Type: ledger.TypeIncome, Amount: 350000},
				{Type: ledger.TypeIncome, Amount: 80000},
			}, nil
		})

	svc := ledger.NewService(repo)

	sum, err := svc.SumByType(context.Background(), ownerID, ledger.TypeIncome, &cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(430000), sum)
}

func TestService_SumByType_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ledger.NewService(ledger.NewMockRepository(ctrl))

	_, err := svc.SumByType(context.Background(), uuid.New(), "BOGUS", nil)
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestService_ListForPeriod(t *testing.T) {
	ownerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter ledger.Filter) ([]*ledger.Transaction, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
			assert.True(t, filter.EndDate.Before(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
			assert.True(t, filter.EndDate.After(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)))

			return nil, nil
		})

	svc := ledger.NewService(repo)

	_, err := svc.ListForPeriod(context.Background(), ownerID, time.January, 2025)
	require.NoError(t, err)
}

func TestService_ListForPeriod_BadMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ledger.NewService(ledger.NewMockRepository(ctrl))

	_, err := svc.ListForPeriod(context.Background(), uuid.New(), time.Month(13), 2025)
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestPeriodBounds(t *testing.T) {
	start, end := ledger.PeriodBounds(time.February, 2024)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	// 2024 is a leap year; the window must cover the 29th.
	assert.True(t, end.After(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSumEntries(t *testing.T) {
	txs := []*ledger.Transaction{
		{Type: ledger.TypeIncome, Amount: 350000},
		{Type: ledger.TypeExpense, Amount: 120000},
		{Type: ledger.TypeSaving, Amount: 50000},
		{Type: ledger.TypeExpense, Amount: 30000},
	}

	assert.Equal(t, int64(350000), ledger.SumEntries(txs, ledger.TypeIncome))
	assert.Equal(t, int64(150000), ledger.SumEntries(txs, ledger.TypeExpense))
	assert.Equal(t, int64(50000), ledger.SumEntries(txs, ledger.TypeSaving))
}

func TestCategories(t *testing.T) {
	assert.Contains(t, ledger.Categories(ledger.TypeIncome), "Salario")
	assert.Contains(t, ledger.Categories(ledger.TypeExpense), "Vivienda")
	assert.Contains(t, ledger.Categories(ledger.TypeSaving), "Fondo de Emergencia")
	assert.Nil(t, ledger.Categories("BOGUS"))

	assert.True(t, ledger.ValidCategory(ledger.TypeIncome, "Freelance"))
	assert.False(t, ledger.ValidCategory(ledger.TypeIncome, "Vivienda"))
}
