package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/CaioNunes1/ecommerce-front/internal/client/api"
)

func formatProduct(p api.Product) string {
	s := fmt.Sprintf("#%d %s  %.2f", p.ID, p.Name, p.Price)
	if p.Category != nil {
		s += fmt.Sprintf("  [%s]", p.Category.Name)
	}
	return s
}

// Products lists the catalog. The catalog is public, no gating.
func (a *App) Products(ctx context.Context) error {
	products, err := a.api.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		printlnFn("No products")
		return nil
	}
	for _, p := range products {
		printlnFn(formatProduct(p))
	}
	return nil
}

// ShowProduct prints one product in detail. Usage: show <id>.
func (a *App) ShowProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not a product id: %q", args[0])
	}

	p, err := a.api.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(formatProduct(*p))
	if p.SKU != "" {
		printlnFn("SKU:", p.SKU)
	}
	if p.Description != "" {
		printlnFn(p.Description)
	}
	return nil
}
