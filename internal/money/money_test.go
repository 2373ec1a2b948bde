package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
)

func TestParseBRL(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.500,00", 1500.00},
		{"R$ 1.500,00", 1500.00},
		{"R$1.500,00", 1500.00},
		{"150,50", 150.50},
		{"12.345.678,90", 12345678.90},
		{"1500", 1500.00},
	}

	for _, tc := range cases {
		got, err := ParseBRL(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseBRLRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"abc",
		"R$",
		"1.500,0x",
		"-100,00",
	}

	for _, in := range cases {
		_, err := ParseBRL(in)
		require.Error(t, err, "input %q", in)

		code, _, ok := httperr.BusinessCode(err)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, "invalid_investment_value", code, "input %q", in)
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1500.00, "R$ 1.500,00"},
		{150.50, "R$ 150,50"},
		{0, "R$ 0,00"},
		{12345678.90, "R$ 12.345.678,90"},
		{999, "R$ 999,00"},
		{1000, "R$ 1.000,00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBRL(tc.in), "input %v", tc.in)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 100.00, Round2(100.0))
}
