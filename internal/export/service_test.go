package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmcardenas/centavo/internal/importer/cartola"
	"github.com/jmcardenas/centavo/internal/ledger"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 123456, want: "1.234,56"},
		{cents: -58874, want: "-588,74"},
		{cents: 1000, want: "10,00"},
		{cents: 0, want: "0,00"},
		{cents: 35000000, want: "350.000,00"},
		{cents: 100000000000, want: "1.000.000.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount(tt.cents))
		})
	}
}

func TestService_WriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := NewService(ledger.NewService(repo))
	ownerID := uuid.New()

	txs := []*ledger.Transaction{
		{
			Type:        ledger.TypeIncome,
			Amount:      35000000,
			Category:    "Salario",
			Description: "Sueldo enero",
			Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:        ledger.TypeExpense,
			Amount:      12000000,
			Category:    "Vivienda",
			Description: "Arriendo",
			Date:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	repo.EXPECT().ListTransactions(gomock.Any(), ownerID, gomock.Any()).Return(txs, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), ownerID, ledger.Filter{}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Fecha;Tipo;Monto;Categoría;Descripción", lines[0])
	assert.Equal(t, "2025-01-01;INGRESO;350.000,00;Salario;Sueldo enero", lines[1])
	assert.Equal(t, "2025-01-02;GASTO;120.000,00;Vivienda;Arriendo", lines[2])
}

// A backup written here must load back through the statement importer.
func TestService_WriteCSV_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := NewService(ledger.NewService(repo))
	ownerID := uuid.New()

	txs := []*ledger.Transaction{
		{
			Type:        ledger.TypeSaving,
			Amount:      5000000,
			Category:    "Meta: Viaje",
			Description: "Ahorro para Viaje",
			Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	repo.EXPECT().ListTransactions(gomock.Any(), ownerID, gomock.Any()).Return(txs, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), ownerID, ledger.Filter{}, &buf))

	entries, err := cartola.NewParser().Parse(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, ledger.TypeSaving, entries[0].Type)
	assert.Equal(t, int64(5000000), entries[0].Amount)
	assert.Equal(t, "Meta: Viaje", entries[0].Category)
	assert.Equal(t, "Ahorro para Viaje", entries[0].Description)
	assert.Equal(t, txs[0].Date, entries[0].Date)
}
