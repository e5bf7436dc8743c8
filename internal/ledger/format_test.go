package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/buy/internal/model"
)

func TestFormat_Epoch(t *testing.T) {
	got := Format(model.CategoryKeterHabasar, model.NewAmount(100), time.Unix(0, 0).UTC())
	assert.Equal(t, "\n1970/01/01 Keter Habasar\n    expenses:food  ₪100\n    liability:credit card:fibi:shufersal\n", got)
}

func TestFormat_EachCategory(t *testing.T) {
	now := time.Date(2025, 3, 9, 18, 45, 0, 0, time.UTC)
	tests := []struct {
		cat  model.Category
		want string
	}{
		{model.CategoryShufersal, "\n2025/03/09 Shufersal\n    expenses:food  ₪42\n    liability:credit card:fibi:shufersal\n"},
		{model.CategoryKeterHabasar, "\n2025/03/09 Keter Habasar\n    expenses:food  ₪42\n    liability:credit card:fibi:shufersal\n"},
		{model.CategoryTalTavlinim, "\n2025/03/09 Tal Tavlinim\n    expenses:food  ₪42\n    liability:credit card:fibi:shufersal\n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.cat, model.NewAmount(42), now), "category %s", tt.cat)
	}
}

func TestFormat_Deterministic(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	a := Format(model.CategoryTalTavlinim, model.NewAmount(7), now)
	b := Format(model.CategoryTalTavlinim, model.NewAmount(7), now)
	assert.Equal(t, a, b)
}

func TestFormat_UsesCallerLocation(t *testing.T) {
	// 22:30 UTC on Jan 1 is already Jan 2 at UTC+3.
	instant := time.Date(2025, 1, 1, 22, 30, 0, 0, time.UTC)
	plus3 := time.FixedZone("UTC+3", 3*60*60)

	assert.Contains(t, Format(model.CategoryShufersal, model.NewAmount(1), instant), "2025/01/01 Shufersal")
	assert.Contains(t, Format(model.CategoryShufersal, model.NewAmount(1), instant.In(plus3)), "2025/01/02 Shufersal")
}

func TestFormat_YearNotPadded(t *testing.T) {
	got := Format(model.CategoryShufersal, model.NewAmount(5), time.Date(987, 2, 3, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, got, "\n987/02/03 Shufersal\n")

	got = Format(model.CategoryShufersal, model.NewAmount(5), time.Date(10000, 11, 30, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, got, "\n10000/11/30 Shufersal\n")
}

func TestFormat_ParsedAmountIsCanonical(t *testing.T) {
	amt, err := model.ParseAmount("0250")
	if assert.NoError(t, err) {
		got := Format(model.CategoryShufersal, amt, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Contains(t, got, "    expenses:food  ₪250\n")
	}
}
