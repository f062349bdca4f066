package cli

import (
	"context"
	"fmt"
	"strconv"
)

func parseID(args []string, usage string) (int64, bool, error) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false, nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("not a product id: %q", args[0])
	}
	return id, true, nil
}

// CartShow prints the cart lines in order.
func (a *App) CartShow(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Cart is empty")
		return nil
	}
	for _, it := range items {
		printlnFn(fmt.Sprintf("product %d x %d", it.ProductID, it.Quantity))
	}
	printlnFn("Total items:", a.cart.TotalItems())
	return nil
}

// CartAdd adds a product to the cart. Usage: add <id> [qty].
func (a *App) CartAdd(ctx context.Context, args []string) error {
	id, ok, err := parseID(args, "Usage: add <id> [qty]")
	if err != nil || !ok {
		return err
	}
	qty := 1
	if len(args) > 1 {
		qty, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("not a quantity: %q", args[1])
		}
	}
	a.cart.Add(ctx, id, qty)
	printlnFn("Added, total items:", a.cart.TotalItems())
	return nil
}

// CartRemove drops a cart line. Usage: remove <id>.
func (a *App) CartRemove(ctx context.Context, args []string) error {
	id, ok, err := parseID(args, "Usage: remove <id>")
	if err != nil || !ok {
		return err
	}
	a.cart.Remove(ctx, id)
	return nil
}

// CartSetQuantity sets a line quantity; zero or less removes the line.
// Usage: qty <id> <n>.
func (a *App) CartSetQuantity(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: qty <id> <n>")
		return nil
	}
	id, _, err := parseID(args, "")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("not a quantity: %q", args[1])
	}
	a.cart.SetQuantity(ctx, id, n)
	return nil
}

// CartClear empties the cart.
func (a *App) CartClear(ctx context.Context) error {
	a.cart.Clear(ctx)
	printlnFn("Cart cleared")
	return nil
}
