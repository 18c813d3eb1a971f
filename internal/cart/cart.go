// Package cart aggregates menu items into keyed lines for one browsing session.
// A Cart is a value: every operation returns a new Cart and leaves the receiver untouched.
package cart

import (
	"encoding/json"

	"bakery-storefront/internal/model"

	"github.com/shopspring/decimal"
)

const defaultOption = "default"

// Line is a snapshot of an item plus the chosen option and quantity.
type Line struct {
	Key            string          `json:"key"`
	ItemID         string          `json:"item_id"`
	Name           string          `json:"name"`
	Emoji          string          `json:"emoji"`
	Price          decimal.Decimal `json:"price"`
	SelectedOption *string         `json:"selected_option"`
	Quantity       int             `json:"quantity"`
}

func (l Line) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineKey identifies a line by item and option; no option maps to "default".
func LineKey(itemID, option string) string {
	if option == "" {
		option = defaultOption
	}
	return itemID + "-" + option
}

type Cart struct {
	lines []Line
}

func New() Cart {
	return Cart{}
}

func (c Cart) clone() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c Cart) index(key string) int {
	for i, l := range c.lines {
		if l.Key == key {
			return i
		}
	}
	return -1
}

// Add merges quantity into the line for (item, option) or appends a new snapshot line.
// A quantity below 1 counts as 1.
func (c Cart) Add(item *model.Item, option string, quantity int) Cart {
	if quantity < 1 {
		quantity = 1
	}
	key := LineKey(item.ID, option)
	lines := c.clone()

	if i := c.index(key); i >= 0 {
		lines[i].Quantity += quantity
		return Cart{lines: lines}
	}

	line := Line{
		Key:      key,
		ItemID:   item.ID,
		Name:     item.Name,
		Emoji:    item.Emoji,
		Price:    item.Price,
		Quantity: quantity,
	}
	if option != "" {
		opt := option
		line.SelectedOption = &opt
	}

	return Cart{lines: append(lines, line)}
}

// UpdateQuantity sets the line quantity; n <= 0 removes the line.
func (c Cart) UpdateQuantity(key string, n int) Cart {
	if n <= 0 {
		return c.Remove(key)
	}

	i := c.index(key)
	if i < 0 {
		return c
	}

	lines := c.clone()
	lines[i].Quantity = n
	return Cart{lines: lines}
}

func (c Cart) Remove(key string) Cart {
	lines := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		if l.Key != key {
			lines = append(lines, l)
		}
	}
	return Cart{lines: lines}
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) Lines() []Line {
	return c.clone()
}

func (c Cart) Line(key string) (Line, bool) {
	if i := c.index(key); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// OrderLines freezes the cart into order snapshot lines.
func (c Cart) OrderLines() []model.OrderLine {
	lines := make([]model.OrderLine, len(c.lines))
	for i, l := range c.lines {
		lines[i] = model.OrderLine{
			ID:             l.ItemID,
			Name:           l.Name,
			Emoji:          l.Emoji,
			SelectedOption: l.SelectedOption,
			Quantity:       l.Quantity,
			Price:          l.Price,
		}
	}
	return lines
}

func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lines []Line          `json:"lines"`
		Total decimal.Decimal `json:"total"`
		Count int             `json:"count"`
	}{
		Lines: c.clone(),
		Total: c.Total(),
		Count: c.Count(),
	})
}
