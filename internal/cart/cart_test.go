package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satellitegroup/printshop/internal/models"
)

func banner(value string) []models.CartItemOption {
	return []models.CartItemOption{{OptionID: "type", ValueID: value, Label: value}}
}

func TestLineID_OptionOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	a := []models.CartItemOption{
		{OptionID: "size", ValueID: "large"},
		{OptionID: "finish", ValueID: "gloss"},
	}
	b := []models.CartItemOption{
		{OptionID: "finish", ValueID: "gloss"},
		{OptionID: "size", ValueID: "large"},
	}

	require.Equal(t, LineID("4", a), LineID("4", b))
	assert.Equal(t, "4-finish:gloss-size:large", LineID("4", a))
}

func TestLineID_NoOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3-default", LineID("3", nil))
	assert.Equal(t, "3-default", LineID("3", []models.CartItemOption{}))
}

func TestAdd_MergesSameConfiguration(t *testing.T) {
	t.Parallel()

	var c Cart
	c.Add("3", 2, banner("backlit"), 20000, nil)
	c.Add("3", 3, banner("backlit"), 99999, nil)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
	// first write wins on metadata
	assert.EqualValues(t, 20000, c.Lines[0].UnitPrice)
}

func TestAdd_DifferentConfigurationsStaySeparate(t *testing.T) {
	t.Parallel()

	var c Cart
	c.Add("3", 1, banner("backlit"), 20000, nil)
	c.Add("3", 1, banner("frontlit"), 18000, nil)
	c.Add("3", 1, nil, 18000, nil)

	require.Len(t, c.Lines, 3)
	assert.Equal(t, 3, c.ItemCount())
}

func TestUpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	t.Parallel()

	var c Cart
	line := c.Add("3", 2, nil, 18000, nil)

	c.UpdateQuantity(line.ItemID, 0)
	assert.Empty(t, c.Lines)

	line = c.Add("3", 2, nil, 18000, nil)
	c.UpdateQuantity(line.ItemID, -5)
	assert.Empty(t, c.Lines)
}

func TestUpdateQuantity_UnknownLineIsNoop(t *testing.T) {
	t.Parallel()

	var c Cart
	c.Add("3", 2, nil, 18000, nil)
	c.UpdateQuantity("no-such-line", 7)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestSubtotal(t *testing.T) {
	t.Parallel()

	var c Cart
	c.Add("3", 3, nil, 18000, nil)
	c.Add("4", 10, nil, 1200, nil)

	assert.EqualValues(t, 3*18000+10*1200, c.Subtotal())
}

func TestMerge_SumsMatchingLinesAndAppendsNew(t *testing.T) {
	t.Parallel()

	base := Cart{}
	base.Add("3", 2, banner("backlit"), 20000, nil)

	other := Cart{}
	other.Add("3", 3, banner("backlit"), 11111, nil)
	other.Add("5", 10, nil, 4500, nil)

	base.Merge(other.Lines)

	require.Len(t, base.Lines, 2)
	assert.Equal(t, 5, base.Lines[0].Quantity)
	assert.EqualValues(t, 20000, base.Lines[0].UnitPrice)
	assert.Equal(t, "5-default", base.Lines[1].ItemID)
}
