// Package catalog issues product records for the cart.
package catalog

import "github.com/shopspring/decimal"

// Product is a catalog record. Name is its identity within a cart.
type Product struct {
	Name      string
	Price     decimal.Decimal
	Available bool
}

// Clone returns an independently owned copy of p.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// Matches reports whether p and other name the same product.
// A nil product never matches anything.
func (p *Product) Matches(other *Product) bool {
	if p == nil || other == nil {
		return false
	}
	return p.Name == other.Name
}
