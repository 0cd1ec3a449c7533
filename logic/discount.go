package logic

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountPolicy transforms a cart total at checkout.
type DiscountPolicy interface {
	Apply(total decimal.Decimal) decimal.Decimal
}

// PercentageDiscount takes Percent percent off the total.
// Percentages outside 0-100 are applied as given.
type PercentageDiscount struct {
	Percent decimal.Decimal
}

// NewPercentageDiscount creates a PercentageDiscount for a whole-number percent.
func NewPercentageDiscount(percent int64) PercentageDiscount {
	return PercentageDiscount{Percent: decimal.NewFromInt(percent)}
}

func (d PercentageDiscount) Apply(total decimal.Decimal) decimal.Decimal {
	return total.Sub(total.Mul(d.Percent).Div(hundred))
}

func (d PercentageDiscount) String() string {
	return fmt.Sprintf("percentage %s%%", d.Percent)
}

// BuyOneGetOneFree returns the total unchanged. It sees only the total, so it
// cannot make a second unit free.
type BuyOneGetOneFree struct{}

func (BuyOneGetOneFree) Apply(total decimal.Decimal) decimal.Decimal {
	return total
}

func (BuyOneGetOneFree) String() string {
	return "buy one get one free"
}

// FixedDiscount subtracts Amount from the total, never going below zero.
type FixedDiscount struct {
	Amount decimal.Decimal
}

func (d FixedDiscount) Apply(total decimal.Decimal) decimal.Decimal {
	if d.Amount.GreaterThan(total) {
		return decimal.Zero
	}
	return total.Sub(d.Amount)
}

func (d FixedDiscount) String() string {
	return fmt.Sprintf("fixed $%s", d.Amount)
}

// DescribePolicy names a policy for receipts and logs.
func DescribePolicy(policy DiscountPolicy) string {
	if policy == nil {
		return "none"
	}
	if s, ok := policy.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", policy)
}

// ParseDiscount builds a policy from a string such as "percentage:10",
// "fixed:25.50" or "bogo". An empty string or "none" yields no policy.
func ParseDiscount(s string) (DiscountPolicy, error) {
	s = strings.TrimSpace(s)
	kind, value, _ := strings.Cut(s, ":")
	kind = strings.ToLower(strings.TrimSpace(kind))
	value = strings.TrimSpace(value)

	switch kind {
	case "", "none":
		return nil, nil
	case "bogo", "buy-one-get-one-free":
		return BuyOneGetOneFree{}, nil
	case "percentage":
		if value == "" {
			return nil, NewInvalidArgument(ErrMsgDiscountRequired)
		}
		percent, err := decimal.NewFromString(value)
		if err != nil {
			return nil, NewInvalidArgument(ErrMsgPercentageInvalid)
		}
		if percent.IsNegative() || percent.GreaterThan(hundred) {
			return nil, NewInvalidArgument(ErrMsgPercentageRange)
		}
		return PercentageDiscount{Percent: percent}, nil
	case "fixed":
		if value == "" {
			return nil, NewInvalidArgument(ErrMsgDiscountRequired)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, NewInvalidArgument(ErrMsgFixedInvalid)
		}
		if amount.IsNegative() {
			return nil, NewInvalidArgument(ErrMsgFixedDiscountNeg)
		}
		return FixedDiscount{Amount: amount}, nil
	default:
		return nil, NewInvalidArgumentf("%s: %q", ErrMsgInvalidDiscountType, kind)
	}
}
