package main

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMenu(t *testing.T) {
	items, err := parseMenu(strings.NewReader(`
items:
  - id: brownie
    name: Brownie
    emoji: "🟫"
    price: "3.50"
    description: Fudgy
  - id: cookie
    name: Cookie
    price: "5"
    options: [Chocolate Chip, " ", Oatmeal]
    in_stock: false
`))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "brownie", items[0].ID)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("3.5")))
	require.NotNil(t, items[0].Description)
	assert.Equal(t, "Fudgy", *items[0].Description)
	assert.True(t, items[0].InStock)
	assert.Nil(t, items[0].Options)

	assert.Equal(t, []string{"Chocolate Chip", "Oatmeal"}, items[1].Options)
	assert.False(t, items[1].InStock)
	assert.Empty(t, items[1].Emoji)
}

func TestParseMenu_Invalid(t *testing.T) {
	_, err := parseMenu(strings.NewReader("items:\n  - name: Pie\n    price: cheap\n"))
	assert.Error(t, err)

	_, err = parseMenu(strings.NewReader("items:\n  - price: \"1.00\"\n"))
	assert.Error(t, err)
}
