package cartola

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "1.234,56", want: 123456},
		{in: "-588,74", want: -58874},
		{in: "10,00", want: 1000},
		{in: "-12.500", want: -1250000},
		{in: "$ 45.990,00", want: 4599000},
		{in: "0,00", want: 0},
		{in: "0,005", want: 1}, // rounds half away from zero
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "--1,00", "1,2,3"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseAmount(in)
			assert.Error(t, err)
		})
	}
}
