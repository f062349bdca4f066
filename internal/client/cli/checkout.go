package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/CaioNunes1/ecommerce-front/internal/client/api"
	"github.com/CaioNunes1/ecommerce-front/internal/client/guard"
)

func formatOrder(o api.Order) string {
	return fmt.Sprintf("order #%d  %s  %s  %d line(s)",
		o.ID, o.Status, o.CreatedAt.Format("2006-01-02 15:04"), len(o.Items))
}

// Checkout places an order from the current cart on behalf of the signed-in
// identity. The cart is cleared only after the backend accepts the order.
func (a *App) Checkout(ctx context.Context) error {
	if err := a.gate(ctx, guard.RequireAuth); err != nil {
		return err
	}

	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Cart is empty, nothing to order")
		return nil
	}

	lines := make([]api.OrderItemRequest, 0, len(items))
	for _, it := range items {
		lines = append(lines, api.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	user := a.session.Snapshot().Identity
	order, err := a.api.CreateOrder(ctx, user.ID, lines)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	a.cart.Clear(ctx)
	printlnFn("Order placed:", formatOrder(*order))
	return nil
}

// Orders lists the caller's orders.
func (a *App) Orders(ctx context.Context) error {
	if err := a.gate(ctx, guard.RequireAuth); err != nil {
		return err
	}
	orders, err := a.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		printlnFn("No orders yet")
		return nil
	}
	for _, o := range orders {
		printlnFn(formatOrder(o))
	}
	return nil
}

// ShowOrder prints one order with its lines. Usage: order <id>.
func (a *App) ShowOrder(ctx context.Context, args []string) error {
	if err := a.gate(ctx, guard.RequireAuth); err != nil {
		return err
	}
	if len(args) == 0 {
		printlnFn("Usage: order <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not an order id: %q", args[0])
	}

	o, err := a.api.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(formatOrder(*o))
	for _, line := range o.Items {
		printlnFn(fmt.Sprintf("  %s x %d @ %.2f", line.Product.Name, line.Quantity, line.PriceAtPurchase))
	}
	return nil
}
