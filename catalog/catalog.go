// Package catalog holds the static product data set and the pure
// query/pagination pipeline that every storefront view renders from.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"

	_ "embed"
)

//go:embed products.json
var productsJSON []byte

// Catalog is an immutable ordered sequence of products, loaded once at
// startup and never mutated for the life of the process.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// Load parses the embedded product data. It is the only constructor used by
// the running service.
func Load() (*Catalog, error) {
	var products []models.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return New(products)
}

// New builds a catalog from an explicit product sequence, verifying the id
// uniqueness invariant.
func New(products []models.Product) (*Catalog, error) {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// All returns the catalog in its original order. Callers get a copy so the
// underlying sequence can never be mutated through the result.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks a product up by its numeric id.
func (c *Catalog) ByID(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len reports the catalog size.
func (c *Catalog) Len() int {
	return len(c.products)
}

// CountByCategory reports how many products carry the given category, used
// for the "showing X of Y" line on the home tabs.
func (c *Catalog) CountByCategory(category string) int {
	n := 0
	for _, p := range c.products {
		if p.Category == category {
			n++
		}
	}
	return n
}
