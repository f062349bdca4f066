package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Products(ctx context.Context) error
	ShowProduct(ctx context.Context, args []string) error
	CartShow(ctx context.Context) error
	CartAdd(ctx context.Context, args []string) error
	CartRemove(ctx context.Context, args []string) error
	CartSetQuantity(ctx context.Context, args []string) error
	CartClear(ctx context.Context) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	ShowOrder(ctx context.Context, args []string) error
	AdminProducts(ctx context.Context, args []string) error
	AdminUsers(ctx context.Context, args []string) error
	AdminOrders(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                   — show available commands
//	  - products               — list the catalog
//	  - show <id>              — show a single product
//	  - cart                   — show the cart
//	  - add <id> [qty]         — add a product to the cart
//	  - remove <id>            — drop a cart line
//	  - qty <id> <n>           — set a line quantity
//	  - clear                  — empty the cart
//	  - exit | quit            — leave the program
//
//	Not signed in:
//	  - register               — create an account
//	  - login                  — authenticate
//
//	Signed in:
//	  - whoami                 — show the current identity
//	  - checkout               — place an order from the cart
//	  - orders                 — list orders
//	  - order <id>             — show a single order
//	  - logout                 — sign out
//
//	Admins additionally get admin-products [add|edit|del], admin-users [del]
//	and admin-orders.
//
// Any errors returned by command handlers are printed here and the loop
// continues; the REPL never aborts on a failed command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn("Available commands: products, show <id>, cart, add <id> [qty], remove <id>, qty <id> <n>, clear, exit")
			if a.isLoggedIn() {
				printlnFn("Signed in: whoami, checkout, orders, order <id>, logout")
			} else {
				printlnFn("Not signed in: register, login")
			}
			if a.isAdmin() {
				printlnFn("Admin: admin-products [add|edit|del], admin-users [del], admin-orders")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "p", "products":
			err = a.Products(ctx)

		case "show":
			err = a.ShowProduct(ctx, args)

		case "cart":
			err = a.CartShow(ctx)

		case "add":
			err = a.CartAdd(ctx, args)

		case "remove":
			err = a.CartRemove(ctx, args)

		case "qty":
			err = a.CartSetQuantity(ctx, args)

		case "clear":
			err = a.CartClear(ctx)

		case "checkout":
			err = a.Checkout(ctx)

		case "orders":
			err = a.Orders(ctx)

		case "order":
			err = a.ShowOrder(ctx, args)

		case "admin-products":
			err = a.AdminProducts(ctx, args)

		case "admin-users":
			err = a.AdminUsers(ctx, args)

		case "admin-orders":
			err = a.AdminOrders(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
