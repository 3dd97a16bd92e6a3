package cart

import (
	"sort"
	"strings"

	"github.com/satellitegroup/printshop/internal/models"
)

// LineID derives the stable key deciding whether two additions are the
// same purchasable configuration. Option order must not matter.
func LineID(productID string, options []models.CartItemOption) string {
	if len(options) == 0 {
		return productID + "-default"
	}

	sorted := make([]models.CartItemOption, len(options))
	copy(sorted, options)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OptionID < sorted[j].OptionID })

	pairs := make([]string, len(sorted))
	for i, o := range sorted {
		pairs[i] = o.OptionID + ":" + o.ValueID
	}
	return productID + "-" + strings.Join(pairs, "-")
}

// Cart is an ordered collection of lines. Zero value is usable.
type Cart struct {
	Lines []models.CartItem
}

// Add merges into an existing line when the id matches: quantities sum,
// the existing line's metadata (unit price, options, design file) wins.
func (c *Cart) Add(productID string, quantity int, options []models.CartItemOption, unitPrice int64, design *models.DesignFile) models.CartItem {
	id := LineID(productID, options)
	for i := range c.Lines {
		if c.Lines[i].ItemID == id {
			c.Lines[i].Quantity += quantity
			return c.Lines[i]
		}
	}
	line := models.CartItem{
		ItemID:          id,
		ProductID:       productID,
		Quantity:        quantity,
		SelectedOptions: options,
		UnitPrice:       unitPrice,
		DesignFile:      design,
	}
	c.Lines = append(c.Lines, line)
	return line
}

// UpdateQuantity sets the line's quantity; zero or negative removes it.
func (c *Cart) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		c.Remove(lineID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == lineID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(lineID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.UnitPrice * int64(l.Quantity)
	}
	return sum
}

// ItemCount is the total unit quantity across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Merge folds other into c: matching line ids sum quantities, new ids
// append in other's order. c's metadata wins on matches.
func (c *Cart) Merge(other []models.CartItem) {
	for _, l := range other {
		c.Add(l.ProductID, l.Quantity, l.SelectedOptions, l.UnitPrice, l.DesignFile)
	}
}
