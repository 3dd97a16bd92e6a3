package catalog

import (
	"fmt"
)

// Catalog is an immutable in-memory product set, validated once at load.
type Catalog struct {
	products []Product
	byID     map[string]*Product
	bySlug   map[string]*Product
}

func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: products,
		byID:     make(map[string]*Product, len(products)),
		bySlug:   make(map[string]*Product, len(products)),
	}
	for i := range products {
		p := &c.products[i]
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if _, ok := c.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
	}
	return c, nil
}

func (c *Catalog) ByID(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) BySlug(slug string) (*Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

func (c *Catalog) All() []Product {
	return c.products
}

func (c *Catalog) ByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
