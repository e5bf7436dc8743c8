package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount_Valid(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"0", "0"},
		{"7", "7"},
		{"100", "100"},
		{"007", "7"},
		{"4294967295", "4294967295"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.token)
		require.NoError(t, err, "ParseAmount(%q)", tt.token)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, token := range []string{
		"",
		"-5",
		"+5",
		"12.50",
		"1,000",
		"1 000",
		"abc",
		"10x",
		"٣",
		"4294967296",
		"99999999999999999999999",
	} {
		_, err := ParseAmount(token)
		require.Error(t, err, "ParseAmount(%q)", token)

		var iae *InvalidAmountError
		require.ErrorAs(t, err, &iae)
		assert.Equal(t, token, iae.Token)
	}
}

func TestNewAmount(t *testing.T) {
	a := NewAmount(250)
	assert.Equal(t, "250", a.String())
	assert.True(t, a.Decimal().IsInteger())
}
