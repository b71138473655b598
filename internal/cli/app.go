package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/drivercal/internal/calendar"
	"github.com/dmitrijs2005/drivercal/internal/config"
	"github.com/dmitrijs2005/drivercal/internal/dateutil"
	"github.com/dmitrijs2005/drivercal/internal/logging"
	"github.com/dmitrijs2005/drivercal/internal/models"
	"github.com/dmitrijs2005/drivercal/internal/services"
	"github.com/dmitrijs2005/drivercal/internal/storage"
	"github.com/dmitrijs2005/drivercal/internal/storage/kv"
)

// App holds the process state of one CLI session: the store, the month on
// screen and the pending selection.
type App struct {
	config   *config.Config
	store    services.AvailabilityService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	renderer *calendar.Renderer
	window   calendar.Window
	now      func() time.Time
	db       *sql.DB

	month       calendar.Month
	selection   calendar.Selection
	selectedDay time.Time
}

// NewApp opens the configured storage, loads the store and restores the
// persisted session.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, level)

	var (
		kvs kv.Store
		db  *sql.DB
	)
	switch cfg.Storage {
	case config.StorageMemory:
		kvs = kv.NewMemoryStore()
	default:
		db, err = storage.InitDatabase(ctx, cfg.DatabasePath)
		if err != nil {
			logger.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "err", err)
			return nil, err
		}
		kvs = kv.NewSQLiteStore(db)
	}

	store := services.NewStore(kvs, services.Options{
		Admin:          services.AdminCredentials{Login: cfg.AdminLogin, Password: cfg.AdminPassword},
		PersistTimeout: cfg.PersistTimeout,
		Logger:         logger,
	})
	if err := store.Load(ctx); err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	a := newApp(cfg, store, in, out, logger)
	a.db = db
	return a, nil
}

func newApp(cfg *config.Config, store services.AvailabilityService, in io.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{
		config:   cfg,
		store:    store,
		log:      logger,
		reader:   bufio.NewReader(in),
		out:      out,
		renderer: calendar.NewRenderer(out, calendar.DefaultPalette()),
		window:   calendar.Window{Back: cfg.MonthsBack, Ahead: cfg.MonthsAhead},
		now:      time.Now,
	}
	a.resetView()
	return a
}

// Close releases the database, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run greets a resumed session and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to drivercal (type 'help' for commands)")
	if sess := a.store.Session(); sess.LoggedIn() {
		printlnFn("Welcome back, " + displayName(sess))
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) state() sessionState {
	sess := a.store.Session()
	switch {
	case sess.IsAdmin:
		return stateAdmin
	case sess.CurrentUser != nil:
		return stateDriver
	default:
		return stateLoggedOut
	}
}

func (a *App) getStatus() string {
	sess := a.store.Session()
	if !sess.LoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", displayName(sess))
}

func displayName(sess models.Session) string {
	if sess.IsAdmin {
		return "admin"
	}
	return sess.CurrentUser.Name
}

// resetView returns to the current month with nothing selected and today
// as the admin's day.
func (a *App) resetView() {
	today := a.now()
	a.month = calendar.MonthOf(today)
	a.selection.Clear()
	a.selectedDay = dateutil.Midnight(today)
}
