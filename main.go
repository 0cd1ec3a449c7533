// Package main runs the shopping cart demonstration.
// Builds a small catalog, edits a cart and prints the bill.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/NisargPatel57/Ecommerce--EI/catalog"
	"github.com/NisargPatel57/Ecommerce--EI/logic"
)

func run(out io.Writer, cfg *Config, logger *zap.Logger) {
	factory := catalog.NewFactory(logger)
	laptop := factory.Create("Laptop", decimal.NewFromInt(1000), true)
	headphones := factory.Create("Headphones", decimal.NewFromInt(50), true)

	cart := logic.NewCart(logger)
	cart.Add(laptop, 1)
	cart.Add(headphones, 1)

	fmt.Fprintln(out, "Possible Inputs:")
	fmt.Fprintln(out, "Products: [{name: 'Laptop', price: 1000, available: true}, {name: 'Headphones', price: 50, available: true}]")
	fmt.Fprintln(out, "Add to Cart: 'Laptop'")
	fmt.Fprintln(out, "Update Quantity: 'Laptop, 2'")
	fmt.Fprintln(out, "Remove from Cart: 'Headphones'")
	fmt.Fprintln(out)

	cart.Add(laptop, 2)
	cart.Remove(headphones)

	fmt.Fprintln(out, "Cart Items:")
	fmt.Fprintln(out, logic.Summary(cart.Items()))
	fmt.Fprintf(out, "Total Bill: Your total bill is $%s.\n", cart.CalculateTotal())
	fmt.Fprintln(out)

	fmt.Fprintln(out, logic.FormatReceipt(cart.Receipt(cfg.Discount)))
}

func main() {
	cfg, err := loadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	run(os.Stdout, cfg, logger)
}
