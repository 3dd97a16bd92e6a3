package catalog

import (
	"fmt"
	"sort"
)

// Product is deployment-time reference data. Cart and checkout read it,
// nothing here writes it.
type Product struct {
	ID               string        `json:"id"`
	Slug             string        `json:"slug"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"short_description"`
	Image            string        `json:"image"`
	Category         string        `json:"category"`
	BasePrice        int64         `json:"base_price"`
	Options          []Option      `json:"options,omitempty"`
	QuantityTiers    []QuantityTier `json:"quantity_tiers,omitempty"`
	Features         []string      `json:"features,omitempty"`
}

// Option is a named choice group, e.g. platen size or paper finish.
type Option struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Values []OptionValue `json:"values"`
}

// OptionValue carries a flat additive price adjustment.
type OptionValue struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	PriceModifier int64  `json:"price_modifier"`
}

// QuantityTier maps an inclusive quantity bracket to a per-unit price.
type QuantityTier struct {
	Min          int   `json:"min"`
	Max          int   `json:"max"`
	PricePerUnit int64 `json:"price_per_unit"`
}

// Option returns the option group with the given id, if present.
func (p *Product) Option(id string) (*Option, bool) {
	for i := range p.Options {
		if p.Options[i].ID == id {
			return &p.Options[i], true
		}
	}
	return nil, false
}

// Value returns the value with the given id, if present.
func (o *Option) Value(id string) (*OptionValue, bool) {
	for i := range o.Values {
		if o.Values[i].ID == id {
			return &o.Values[i], true
		}
	}
	return nil, false
}

// TierFor returns the tier whose bracket contains quantity.
func (p *Product) TierFor(quantity int) (*QuantityTier, bool) {
	for i := range p.QuantityTiers {
		t := &p.QuantityTiers[i]
		if quantity >= t.Min && quantity <= t.Max {
			return t, true
		}
	}
	return nil, false
}

func (p *Product) validate() error {
	if p.ID == "" || p.Slug == "" || p.Name == "" {
		return fmt.Errorf("product %q: id, slug and name are required", p.ID)
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("product %q: negative base price", p.ID)
	}

	tiers := p.QuantityTiers
	sorted := sort.SliceIsSorted(tiers, func(i, j int) bool { return tiers[i].Min < tiers[j].Min })
	if !sorted {
		return fmt.Errorf("product %q: quantity tiers must be sorted by min", p.ID)
	}
	for i, t := range tiers {
		if t.Min <= 0 || t.Max < t.Min {
			return fmt.Errorf("product %q: invalid tier [%d,%d]", p.ID, t.Min, t.Max)
		}
		if t.PricePerUnit < 0 {
			return fmt.Errorf("product %q: negative tier price", p.ID)
		}
		if i > 0 && t.Min <= tiers[i-1].Max {
			return fmt.Errorf("product %q: tiers [%d,%d] and [%d,%d] overlap",
				p.ID, tiers[i-1].Min, tiers[i-1].Max, t.Min, t.Max)
		}
	}

	seenOpt := map[string]bool{}
	for _, opt := range p.Options {
		if opt.ID == "" || len(opt.Values) == 0 {
			return fmt.Errorf("product %q: option %q needs an id and at least one value", p.ID, opt.ID)
		}
		if seenOpt[opt.ID] {
			return fmt.Errorf("product %q: duplicate option id %q", p.ID, opt.ID)
		}
		seenOpt[opt.ID] = true

		seenVal := map[string]bool{}
		for _, v := range opt.Values {
			if v.ID == "" {
				return fmt.Errorf("product %q: option %q has a value without an id", p.ID, opt.ID)
			}
			if seenVal[v.ID] {
				return fmt.Errorf("product %q: option %q has duplicate value id %q", p.ID, opt.ID, v.ID)
			}
			seenVal[v.ID] = true
		}
	}
	return nil
}
