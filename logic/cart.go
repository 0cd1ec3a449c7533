package logic

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/NisargPatel57/Ecommerce--EI/catalog"
)

// LineItem pairs a product with a quantity.
type LineItem struct {
	Product  *catalog.Product
	Quantity int
}

// Subtotal returns price times quantity. A line without a product is worth zero.
func (i LineItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is an ordered list of line items. The same product may appear on
// several lines; Add never merges them.
type Cart struct {
	id     string
	items  []LineItem
	logger *zap.Logger
}

// NewCart creates an empty cart. A nil logger disables logging.
func NewCart(logger *zap.Logger) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Cart{
		id:     id,
		logger: logger.With(zap.String("cart_id", id)),
	}
}

// ID returns the cart's generated identifier.
func (c *Cart) ID() string {
	return c.id
}

// Add appends a new line for product. Quantity is not validated.
func (c *Cart) Add(product *catalog.Product, quantity int) {
	c.items = append(c.items, LineItem{Product: product, Quantity: quantity})
	c.logger.Info("adding item",
		zap.String("product", productName(product)),
		zap.Int("quantity", quantity),
		zap.Int("lines", len(c.items)))
}

// AddOne appends a new line for a single unit of product.
func (c *Cart) AddOne(product *catalog.Product) {
	c.Add(product, 1)
}

// UpdateQuantity sets the quantity on the first line matching product and
// reports whether a line was changed. Later duplicate lines are left as is.
func (c *Cart) UpdateQuantity(product *catalog.Product, quantity int) bool {
	for i := range c.items {
		if !c.items[i].Product.Matches(product) {
			continue
		}
		old := c.items[i].Quantity
		c.items[i].Quantity = quantity
		c.logger.Info("updating quantity",
			zap.String("product", productName(product)),
			zap.Int("old_quantity", old),
			zap.Int("new_quantity", quantity))
		return true
	}
	c.logger.Debug("item not in cart", zap.String("product", productName(product)))
	return false
}

// Remove drops every line matching product and returns how many were dropped.
// The remaining lines keep their order.
func (c *Cart) Remove(product *catalog.Product) int {
	kept := make([]LineItem, 0, len(c.items))
	for _, item := range c.items {
		if item.Product.Matches(product) {
			continue
		}
		kept = append(kept, item)
	}
	removed := len(c.items) - len(kept)
	c.items = kept
	c.logger.Info("removing item",
		zap.String("product", productName(product)),
		zap.Int("removed", removed))
	return removed
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.logger.Info("clearing cart")
}

// CalculateTotal sums price times quantity over every line.
func (c *Cart) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Checkout returns the total with policy applied, or the plain total when
// policy is nil. The cart is left untouched.
func (c *Cart) Checkout(policy DiscountPolicy) decimal.Decimal {
	subtotal := c.CalculateTotal()
	total := subtotal
	if policy != nil {
		total = policy.Apply(subtotal)
	}
	c.logger.Info("checking out",
		zap.String("subtotal", subtotal.String()),
		zap.String("total", total.String()),
		zap.String("policy", DescribePolicy(policy)))
	return total
}

// Items returns a copy of the cart's lines in order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.items)
}

func productName(p *catalog.Product) string {
	if p == nil {
		return ""
	}
	return p.Name
}
