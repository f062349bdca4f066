// Package cli implements the interactive storefront client: a line-based
// REPL over the session, cart and API components. Commands prompt for their
// inputs; protected commands are gated through the guard package and wait
// for the startup session restoration to settle before deciding.
package cli
