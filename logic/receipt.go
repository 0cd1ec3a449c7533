package logic

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Receipt is a snapshot of a checkout.
type Receipt struct {
	CartID   string
	Items    []LineItem
	Subtotal decimal.Decimal
	Policy   string
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Receipt checks the cart out under policy and captures the result.
func (c *Cart) Receipt(policy DiscountPolicy) *Receipt {
	subtotal := c.CalculateTotal()
	total := c.Checkout(policy)
	return &Receipt{
		CartID:   c.id,
		Items:    c.Items(),
		Subtotal: subtotal,
		Policy:   DescribePolicy(policy),
		Discount: subtotal.Sub(total),
		Total:    total,
	}
}

// Summary renders lines as "You have 1 Laptop, 2 Laptop in your cart."
func Summary(items []LineItem) string {
	if len(items) == 0 {
		return "Your cart is empty."
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%d %s", item.Quantity, productName(item.Product)))
	}
	return fmt.Sprintf("You have %s in your cart.", strings.Join(parts, ", "))
}

// FormatReceipt generates the human-readable receipt text.
func FormatReceipt(r *Receipt) string {
	var lines []string

	shortID := r.CartID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, "           RECEIPT")
	lines = append(lines, strings.Repeat("═", 40))
	lines = append(lines, fmt.Sprintf("Cart: %s...", shortID))
	lines = append(lines, strings.Repeat("─", 40))

	for _, item := range r.Items {
		price := decimal.Zero
		if item.Product != nil {
			price = item.Product.Price
		}
		lines = append(lines, fmt.Sprintf("%d x %s @ $%s = $%s",
			item.Quantity,
			productName(item.Product),
			price.StringFixed(2),
			item.Subtotal().StringFixed(2)))
	}

	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, fmt.Sprintf("Subtotal:              $%s", r.Subtotal.StringFixed(2)))

	if !r.Discount.IsZero() {
		lines = append(lines, fmt.Sprintf("Discount (%s):       -$%s",
			r.Policy,
			r.Discount.StringFixed(2)))
	}

	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, fmt.Sprintf("TOTAL:                 $%s", r.Total.StringFixed(2)))
	lines = append(lines, strings.Repeat("═", 40))

	return strings.Join(lines, "\n")
}
