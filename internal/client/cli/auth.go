package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/CaioNunes1/ecommerce-front/internal/client/guard"
	"github.com/CaioNunes1/ecommerce-front/internal/client/session"
	"github.com/CaioNunes1/ecommerce-front/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// awaitRestored blocks until the startup session restoration settles or the
// context is cancelled. Commands that depend on the authenticated identity
// call this first so they never race the background restore.
func (a *App) awaitRestored(ctx context.Context) error {
	select {
	case <-a.restored:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// gate evaluates a guard against the current session, waiting out the
// restoring phase. A redirect verdict becomes a user-facing error naming the
// route the storefront would navigate to.
func (a *App) gate(ctx context.Context, g func(session.Snapshot) guard.Decision) error {
	for {
		d := g(a.session.Snapshot())
		switch d.Verdict {
		case guard.Allow:
			return nil
		case guard.Redirect:
			if d.Target == guard.SignInRoute {
				return fmt.Errorf("sign in first (login)")
			}
			return fmt.Errorf("not allowed")
		default:
			printlnFn("Restoring session, one moment...")
			if err := a.awaitRestored(ctx); err != nil {
				return err
			}
		}
	}
}

// Register prompts for a name, email and password and creates a new account.
//
// On success it prints a hint to sign in. The password byte slice is wiped
// before returning. Any I/O or API error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.api.SignUp(ctx, name, email, string(password)); err != nil {
		return err
	}

	printlnFn("Account created, you can now login")
	return nil
}

// Login prompts for credentials and authenticates the session. It waits for
// the startup restoration to settle first so a late restore result cannot
// overwrite an explicit sign-in.
//
// Unlike restoration, a failed login is reported to the user.
func (a *App) Login(ctx context.Context) error {
	if err := a.awaitRestored(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		printlnFn("Already signed in, logout first")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return err
	}

	printlnFn("Signed in as", email)
	return nil
}

// Logout signs the session out. It cannot fail from the user's point of
// view: local cleanup problems are logged by the session manager.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate(ctx, guard.RequireAuth); err != nil {
		return err
	}
	a.session.Logout(ctx)
	printlnFn("Signed out")
	return nil
}

// Whoami prints the current identity.
func (a *App) Whoami(ctx context.Context) error {
	if err := a.gate(ctx, guard.RequireAuth); err != nil {
		return err
	}
	u := a.session.Snapshot().Identity
	printlnFn(fmt.Sprintf("#%d %s <%s> role=%s", u.ID, u.Name, u.Email, u.Role))
	return nil
}
