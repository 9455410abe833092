package bill_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmcardenas/centavo/internal/bill"
)

func TestService_Create(t *testing.T) {
	ownerID := uuid.New()
	dueDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name           string
		params         bill.CreateParams
		setupMock      func(m *bill.MockRepository)
		wantErr        error
		wantPerPayment int64
	}

	tests := []testCase{
		{
			name: "DividesTotalAcrossInstallments",
			params: bill.CreateParams{
				Name:         "Refrigerador",
				TotalAmount:  120000,
				Installments: 12,
				DueDate:      dueDate,
				Category:     "Hogar",
			},
			setupMock: func(m *bill.MockRepository) {
				m.EXPECT().
					CreateBill(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *bill.Bill) error {
						b.ID = uuid.New()
						b.CreatedAt = time.Now()
						return nil
					})
			},
			wantPerPayment: 10000,
		},
		{
			name: "SingleInstallment",
			params: bill.CreateParams{
				Name:         "Seguro",
				TotalAmount:  80000,
				Installments: 1,
				DueDate:      dueDate,
				Category:     "Servicios",
			},
			setupMock: func(m *bill.MockRepository) {
				m.EXPECT().
					CreateBill(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *bill.Bill) error {
						b.ID = uuid.New()
						return nil
					})
			},
			wantPerPayment: 80000,
		},
		{
			name: "ZeroInstallments",
			params: bill.CreateParams{
				Name:        "Refrigerador",
				TotalAmount: 120000,
				DueDate:     dueDate,
			},
			wantErr: bill.ErrValidation,
		},
		{
			name: "ZeroTotal",
			params: bill.CreateParams{
				Name:         "Refrigerador",
				Installments: 12,
				DueDate:      dueDate,
			},
			wantErr: bill.ErrValidation,
		},
		{
			name: "MissingName",
			params: bill.CreateParams{
				TotalAmount:  120000,
				Installments: 12,
				DueDate:      dueDate,
			},
			wantErr: bill.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bill.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := bill.NewService(repo)
			got, err := svc.Create(context.Background(), ownerID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPerPayment, got.InstallmentAmount)
			assert.Equal(t, 0, got.PaidInstallments)
			assert.False(t, got.Paid)
		})
	}
}

func TestService_QuickPayment(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()

	t.Run("ReturnsReceipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := bill.NewMockRepository(ctrl)
		repo.EXPECT().
			RegisterPayment(gomock.Any(), ownerID, billID).
			Return(&bill.Bill{
				ID:                billID,
				Name:              "Refrigerador",
				TotalAmount:       120000,
				Installments:      12,
				PaidInstallments:  5,
				InstallmentAmount: 10000,
			}, nil)

		svc := bill.NewService(repo)

		receipt, err := svc.QuickPayment(context.Background(), ownerID, billID)
		require.NoError(t, err)
		assert.Equal(t, billID, receipt.BillID)
		assert.Equal(t, "Refrigerador", receipt.Name)
		assert.Equal(t, int64(10000), receipt.Amount)
		assert.Equal(t, 5, receipt.PaidInstallments)
		assert.Equal(t, 12, receipt.Installments)
	})

	t.Run("FullyPaidAlwaysFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		settled := &bill.Bill{
			ID:                billID,
			Installments:      12,
			PaidInstallments:  12,
			InstallmentAmount: 10000,
			Paid:              true,
		}

		repo := bill.NewMockRepository(ctrl)
		repo.EXPECT().RegisterPayment(gomock.Any(), ownerID, billID).Return(nil, bill.ErrNotFound).Times(2)
		repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(settled, nil).Times(2)

		svc := bill.NewService(repo)

		// The failure mode is stable: every further call reports the same
		// error and never advances state.
		for i := 0; i < 2; i++ {
			_, err := svc.QuickPayment(context.Background(), ownerID, billID)
			assert.ErrorIs(t, err, bill.ErrAlreadyPaid)
		}
	})

	t.Run("MissingBill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := bill.NewMockRepository(ctrl)
		repo.EXPECT().RegisterPayment(gomock.Any(), ownerID, billID).Return(nil, bill.ErrNotFound)
		repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).Return(nil, bill.ErrNotFound)

		svc := bill.NewService(repo)

		_, err := svc.QuickPayment(context.Background(), ownerID, billID)
		assert.ErrorIs(t, err, bill.ErrNotFound)
	})
}

// Paying a 12-installment bill twelve times settles it exactly.
func TestService_QuickPayment_RoundTrip(t *testing.T) {
	ownerID := uuid.New()
	billID := uuid.New()

	state := &bill.Bill{
		ID:                billID,
		OwnerID:           ownerID,
		Name:              "Notebook",
		TotalAmount:       120000,
		Installments:      12,
		InstallmentAmount: 10000,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := bill.NewMockRepository(ctrl)
	repo.EXPECT().
		RegisterPayment(gomock.Any(), ownerID, billID).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*bill.Bill, error) {
			if state.PaidInstallments >= state.Installments {
				return nil, bill.ErrNotFound
			}

			state.PaidInstallments++
			state.Paid = state.PaidInstallments >= state.Installments
			snapshot := *state

			return &snapshot, nil
		}).
		Times(13)
	repo.EXPECT().GetBill(gomock.Any(), ownerID, billID).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*bill.Bill, error) {
			snapshot := *state
			return &snapshot, nil
		})

	svc := bill.NewService(repo)

	for i := 1; i <= 12; i++ {
		receipt, err := svc.QuickPayment(context.Background(), ownerID, billID)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), receipt.Amount)
		assert.Equal(t, i, receipt.PaidInstallments)
	}

	assert.Equal(t, int64(0), state.RemainingDebt())
	assert.Equal(t, state.Installments, state.PaidInstallments)

	_, err := svc.QuickPayment(context.Background(), ownerID, billID)
	assert.ErrorIs(t, err, bill.ErrAlreadyPaid)
}

func TestBill_RemainingDebt(t *testing.T) {
	b := &bill.Bill{Installments: 12, PaidInstallments: 5, InstallmentAmount: 10000}
	assert.Equal(t, int64(70000), b.RemainingDebt())

	settled := &bill.Bill{Installments: 12, PaidInstallments: 12, InstallmentAmount: 10000}
	assert.Equal(t, int64(0), settled.RemainingDebt())

	// Never negative, even for inconsistent rows.
	over := &bill.Bill{Installments: 12, PaidInstallments: 13, InstallmentAmount: 10000}
	assert.Equal(t, int64(0), over.RemainingDebt())
}

func TestTotalPendingDebt(t *testing.T) {
	bills := []*bill.Bill{
		{Installments: 12, PaidInstallments: 5, InstallmentAmount: 10000},
		{Installments: 3, PaidInstallments: 0, InstallmentAmount: 25000},
		{Installments: 6, PaidInstallments: 6, InstallmentAmount: 5000},
	}

	assert.Equal(t, int64(145000), bill.TotalPendingDebt(bills))
}
