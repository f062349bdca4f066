package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/CaioNunes1/ecommerce-front/internal/client/api"
	"github.com/CaioNunes1/ecommerce-front/internal/client/cart"
	"github.com/CaioNunes1/ecommerce-front/internal/client/config"
	"github.com/CaioNunes1/ecommerce-front/internal/client/credential"
	"github.com/CaioNunes1/ecommerce-front/internal/client/session"
	"github.com/CaioNunes1/ecommerce-front/internal/client/storage"
	"github.com/CaioNunes1/ecommerce-front/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the storefront components together for the interactive CLI.
type App struct {
	config  *config.Config
	log     logging.Logger
	api     api.Client
	db      *sql.DB
	creds   *credential.Manager
	session *session.Manager
	cart    *cart.Manager
	reader  *bufio.Reader

	// closed once the startup restoration settles
	restored     chan struct{}
	restoredOnce sync.Once
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewApp builds the application from config: opens the local store, creates
// the API client, and constructs the credential, session and cart managers.
// The cart loads its snapshot here, synchronously; the session is left in
// the restoring state until Run kicks off Restore.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.New(os.Stderr, logging.Format(c.LogFormat), parseLevel(c.LogLevel))

	store, db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("init local store: %w", err)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.HTTPTimeout, log)
	creds := credential.NewManager(store, apiClient)
	sess := session.NewManager(creds, apiClient, store, log)
	crt := cart.New(ctx, store, log)

	a := &App{
		config:   c,
		log:      log,
		api:      apiClient,
		db:       db,
		creds:    creds,
		session:  sess,
		cart:     crt,
		reader:   bufio.NewReader(os.Stdin),
		restored: make(chan struct{}),
	}

	sess.Subscribe(func(s session.Snapshot) {
		if !s.Restoring {
			a.restoredOnce.Do(func() { close(a.restored) })
		}
	})

	return a, nil
}

// Run starts the session restoration in the background and enters the REPL.
// Restoration failures degrade to an anonymous session and never abort the
// program.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	go a.session.Restore(ctx)

	fmt.Println("Welcome to the storefront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the session state container and the local database.
func (a *App) Close() {
	a.session.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Identity != nil
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

// getStatus renders the prompt suffix: the signed-in email, an admin mark,
// and the number of items in the cart.
func (a *App) getStatus() string {
	parts := []string{}
	if snap := a.session.Snapshot(); snap.Restoring {
		parts = append(parts, "restoring")
	} else if snap.Identity != nil {
		who := snap.Identity.Email
		if snap.IsAdmin() {
			who += "*"
		}
		parts = append(parts, who)
	}
	if n := a.cart.TotalItems(); n > 0 {
		parts = append(parts, fmt.Sprintf("cart:%d", n))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
