package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireCategoryAndAmount(t *testing.T) {
	category, amount, err := requireCategoryAndAmount([]string{"keter", "100"})
	require.NoError(t, err)
	assert.Equal(t, "keter", category)
	assert.Equal(t, "100", amount)
}

func TestRequireCategoryAndAmount_Insufficient(t *testing.T) {
	for _, args := range [][]string{nil, {"keter"}} {
		_, _, err := requireCategoryAndAmount(args)

		var iae *InsufficientArgumentsError
		require.ErrorAs(t, err, &iae)
		assert.Equal(t, len(args), iae.Count)
	}
}

func TestRequireCategoryAndAmount_TooMany(t *testing.T) {
	for _, args := range [][]string{{"keter", "100", "x"}, {"keter", "100", "x", "y"}} {
		_, _, err := requireCategoryAndAmount(args)

		var tme *TooManyArgumentsError
		require.ErrorAs(t, err, &tme)
		assert.Equal(t, len(args), tme.Count)
	}
}

func TestArgumentErrorMessages(t *testing.T) {
	assert.Equal(t, "insufficient arguments: got 1, want 2 (category and amount); 1 missing",
		(&InsufficientArgumentsError{Count: 1}).Error())
	assert.Equal(t, "too many arguments: got 4, want 2 (category and amount)",
		(&TooManyArgumentsError{Count: 4}).Error())
}
