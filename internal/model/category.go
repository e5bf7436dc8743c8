package model

import "fmt"

// Category is one of the recognized expense kinds.
type Category string

const (
	CategoryShufersal    Category = "shufersal"
	CategoryKeterHabasar Category = "keter"
	CategoryTalTavlinim  Category = "tal"
)

const (
	accountFood       = "expenses:food"
	accountFibiCredit = "liability:credit card:fibi:shufersal"
)

// Accounts is the fixed posting pair for a category.
type Accounts struct {
	Destination string // expense side
	Source      string // liability side
}

type categoryInfo struct {
	label    string
	accounts Accounts
}

var categoryOrder = []Category{
	CategoryShufersal,
	CategoryKeterHabasar,
	CategoryTalTavlinim,
}

var categoryTable = map[Category]categoryInfo{
	CategoryShufersal: {
		label:    "Shufersal",
		accounts: Accounts{Destination: accountFood, Source: accountFibiCredit},
	},
	CategoryKeterHabasar: {
		label:    "Keter Habasar",
		accounts: Accounts{Destination: accountFood, Source: accountFibiCredit},
	},
	CategoryTalTavlinim: {
		label:    "Tal Tavlinim",
		accounts: Accounts{Destination: accountFood, Source: accountFibiCredit},
	},
}

// InvalidCategoryError reports a token that names no known category.
type InvalidCategoryError struct {
	Token string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid expense category %q", e.Token)
}

// Categories returns every known category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory matches token exactly (case-sensitive) against the short names.
func ParseCategory(token string) (Category, error) {
	c := Category(token)
	if _, ok := categoryTable[c]; !ok {
		return "", &InvalidCategoryError{Token: token}
	}
	return c, nil
}

// Label returns the payee line text, e.g. "Keter Habasar".
func (c Category) Label() string {
	return categoryTable[c].label
}

// Accounts returns the destination/source account pair.
func (c Category) Accounts() Accounts {
	return categoryTable[c].accounts
}

func (c Category) String() string { return string(c) }
