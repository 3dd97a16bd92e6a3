// Package pricing computes the charge for a product configuration.
// Quantity scales the tier (or base) price; option modifiers are flat
// adders applied once per selection, never multiplied by quantity.
package pricing

import (
	"errors"
	"fmt"

	"github.com/satellitegroup/printshop/internal/catalog"
)

var ErrUnknownOption = errors.New("unknown option")

// Quote returns the total price for the full quantity, in whole
// currency units. selected maps option group id to chosen value id.
//
// When a product defines tiers but the quantity falls outside every
// bracket, the result is the flat BasePrice with no quantity scaling.
func Quote(p *catalog.Product, quantity int, selected map[string]string) (int64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	var base int64
	if len(p.QuantityTiers) > 0 {
		if tier, ok := p.TierFor(quantity); ok {
			base = tier.PricePerUnit * int64(quantity)
		} else {
			base = p.BasePrice
		}
	} else {
		base = p.BasePrice * int64(quantity)
	}

	var modifiers int64
	for optionID, valueID := range selected {
		opt, ok := p.Option(optionID)
		if !ok {
			return 0, fmt.Errorf("%w: product %s has no option %q", ErrUnknownOption, p.ID, optionID)
		}
		val, ok := opt.Value(valueID)
		if !ok {
			return 0, fmt.Errorf("%w: option %q has no value %q", ErrUnknownOption, optionID, valueID)
		}
		modifiers += val.PriceModifier
	}

	total := base + modifiers
	if total < 0 {
		total = 0
	}
	return total, nil
}
