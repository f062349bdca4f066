package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/CaioNunes1/ecommerce-front/internal/client/api"
	"github.com/CaioNunes1/ecommerce-front/internal/client/guard"
)

// productInput prompts for the writable product fields.
func (a *App) productInput() (api.ProductInput, error) {
	var in api.ProductInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Enter name", os.Stdout); err != nil {
		return in, err
	}
	if in.SKU, err = getSimpleText(a.reader, "Enter SKU", os.Stdout); err != nil {
		return in, err
	}
	if in.Price, err = GetFloat(a.reader, "Enter price", os.Stdout); err != nil {
		return in, err
	}
	if in.Description, err = getSimpleText(a.reader, "Enter description", os.Stdout); err != nil {
		return in, err
	}
	return in, nil
}

// AdminProducts manages the catalog. Without arguments it lists products;
// "add", "edit" and "del" run interactive workflows.
func (a *App) AdminProducts(ctx context.Context, args []string) error {
	if err := a.gate(ctx, guard.RequireAdmin); err != nil {
		return err
	}

	action := ""
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "":
		return a.Products(ctx)

	case "add":
		in, err := a.productInput()
		if err != nil {
			return err
		}
		p, err := a.api.CreateProduct(ctx, in)
		if err != nil {
			return err
		}
		printlnFn("Created", formatProduct(*p))
		return nil

	case "edit":
		id, err := GetInt(a.reader, "Enter product id", os.Stdout)
		if err != nil {
			return err
		}
		in, err := a.productInput()
		if err != nil {
			return err
		}
		p, err := a.api.UpdateProduct(ctx, id, in)
		if err != nil {
			return err
		}
		printlnFn("Updated", formatProduct(*p))
		return nil

	case "del":
		id, err := GetInt(a.reader, "Enter product id", os.Stdout)
		if err != nil {
			return err
		}
		if err := a.api.DeleteProduct(ctx, id); err != nil {
			return err
		}
		printlnFn("Deleted product", id)
		return nil

	default:
		return fmt.Errorf("unknown action %q, expected add, edit or del", action)
	}
}

// AdminUsers lists registered users; "del" removes one by email.
func (a *App) AdminUsers(ctx context.Context, args []string) error {
	if err := a.gate(ctx, guard.RequireAdmin); err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "del" {
		email, err := getSimpleText(a.reader, "Enter email to delete", os.Stdout)
		if err != nil {
			return err
		}
		if err := a.api.DeleteUserByEmail(ctx, email); err != nil {
			return err
		}
		printlnFn("Deleted", email)
		return nil
	}

	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("#%d %s <%s> role=%s", u.ID, u.Name, u.Email, u.Role))
	}
	return nil
}

// AdminOrders lists every order in the system.
func (a *App) AdminOrders(ctx context.Context) error {
	if err := a.gate(ctx, guard.RequireAdmin); err != nil {
		return err
	}
	orders, err := a.api.ListAdminOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		printlnFn("No orders")
		return nil
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("%s  user=%s", formatOrder(o), o.User.Email))
	}
	return nil
}
