package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/costbook/internal/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999.999", "1,000.00"},
		{"1234.5", "1,234.50"},
		{"1234567.89", "1,234,567.89"},
		{"-98765.4", "-98,765.40"},
		{"100000", "100,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestParse(t *testing.T) {
	got, err := money.Parse(" $1,250.505 ")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1250.51").Equal(got))

	got, err = money.Parse("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = money.Parse("twelve")
	assert.Error(t, err)
}
