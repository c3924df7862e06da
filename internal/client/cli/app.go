package cli

import (
	"bufio"
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/afristyle/afristyle/internal/client/api"
	"github.com/afristyle/afristyle/internal/client/config"
	"github.com/afristyle/afristyle/internal/client/display"
	"github.com/afristyle/afristyle/internal/client/state"
	"github.com/afristyle/afristyle/internal/client/storage"
	"github.com/afristyle/afristyle/internal/logging"
)

// App wires the API client, the local store and the state containers
// together behind the REPL.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	client  api.Client
	store   *storage.Helper
	adapter *display.Adapter

	session  *state.SessionManager
	feed     *state.FeedStore
	lookbook *state.LookbookStore
	liked    *state.LikedStore

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := storage.InitDatabase(ctx, c.DataFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app := &App{
		config: c,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}

	// Any 401 from any request drops the local session.
	apiClient := api.NewHTTPClient(c.ServerBaseURL,
		api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}),
		api.WithUnauthorizedHook(func() {
			app.session.Invalidate(context.Background())
		}),
	)

	helper := storage.NewHelper(storage.NewSQLiteStore(db), log)
	adapter := display.NewAdapter()

	app.client = apiClient
	app.store = helper
	app.adapter = adapter
	app.session = state.NewSessionManager(apiClient, helper, log)
	app.feed = state.NewFeedStore(apiClient, adapter, log)
	app.lookbook = state.NewLookbookStore(apiClient, adapter, log)
	app.liked = state.NewLikedStore(ctx, helper, log)

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Phase() == state.PhaseAuthenticated
}

// Run restores the session and starts the REPL. It blocks until the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.client.Close()
		_ = a.db.Close()
	}()

	session, err := a.session.Bootstrap(ctx)
	if err != nil {
		a.log.Error(ctx, "session bootstrap failed", "error", err)
	}
	if session != nil && session.User != nil {
		printlnFn("Welcome back,", session.User.Name)
	} else {
		printlnFn("Welcome to AfriStyle (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		if user.Name != "" {
			return user.Name
		}
		return user.Email
	}
	return "guest"
}
