// Package guard gates access to protected surfaces based on session state.
// Guards are pure functions over a session snapshot: they hold no state and
// must simply be re-evaluated whenever the session changes.
package guard

import "github.com/CaioNunes1/ecommerce-front/internal/client/session"

// Routes guards redirect to.
const (
	SignInRoute = "/signin"
	RootRoute   = "/"
)

// Verdict is the outcome of a guard evaluation.
type Verdict int

const (
	// Pending means the session is still restoring; no navigation decision
	// can be made yet and the caller should show a placeholder.
	Pending Verdict = iota
	// Allow renders the protected content.
	Allow
	// Redirect sends the user to Decision.Target.
	Redirect
)

// Decision is a guard's answer for one evaluation.
type Decision struct {
	Verdict Verdict
	Target  string
}

// RequireAuth admits any authenticated identity. While the session restores
// it defers; once settled, anonymous users are redirected to sign-in.
func RequireAuth(snap session.Snapshot) Decision {
	if snap.Restoring {
		return Decision{Verdict: Pending}
	}
	if snap.Identity != nil {
		return Decision{Verdict: Allow}
	}
	return Decision{Verdict: Redirect, Target: SignInRoute}
}

// RequireAdmin admits only identities with an admin role. Non-admins are
// sent to the anonymous-safe root route.
func RequireAdmin(snap session.Snapshot) Decision {
	if snap.Restoring {
		return Decision{Verdict: Pending}
	}
	if snap.IsAdmin() {
		return Decision{Verdict: Allow}
	}
	return Decision{Verdict: Redirect, Target: RootRoute}
}
