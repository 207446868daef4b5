package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/houseconnect/internal/client/client"
	"github.com/dmitrijs2005/houseconnect/internal/client/config"
	"github.com/dmitrijs2005/houseconnect/internal/client/guard"
	"github.com/dmitrijs2005/houseconnect/internal/client/services"
	"github.com/dmitrijs2005/houseconnect/internal/client/session"
	"github.com/dmitrijs2005/houseconnect/internal/filex"
	"github.com/dmitrijs2005/houseconnect/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	logger logging.Logger

	db      *sql.DB
	api     client.Client
	session *session.Store
	guard   *guard.Guard

	registration   *services.RegistrationService
	accommodations *services.AccommodationService
	applications   *services.ApplicationService
	bookings       *services.BookingService
	profiles       *services.ProfileService

	commands map[string]command

	modeMu sync.RWMutex
	mode   Mode

	reader  *bufio.Reader
	out     io.Writer
	closers []io.Closer
}

// NewApp wires storage, the API client, the session store and the services
// from c. Failures here are the only fatal ones.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	var closers []io.Closer

	logOut := io.Writer(os.Stderr)
	if c.LogFile != "" {
		if err := filex.EnsureParentDir(c.LogFile); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		closers = append(closers, f)
	}
	logger := logging.NewTextLogger(logOut, c.LogLevel)

	err := filex.EnsureParentDir(c.StoragePath)
	if err != nil {
		closeAll(closers)
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.StoragePath, "error", err)
		closeAll(closers)
		return nil, err
	}
	closers = append(closers, db)

	var store *session.Store
	api, err := client.NewHouseConnectClient(c.BackendURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "api")),
		client.WithTokenSource(func() string { return store.Token() }),
	)
	if err != nil {
		closeAll(closers)
		return nil, err
	}
	store = session.NewStore(api, session.NewSQLStorage(db), logger)

	a := newApp(c, logger, api, store, bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	a.closers = closers
	return a, nil
}

// newApp builds the object graph on top of an API client and a session
// store; tests use it with stub backends.
func newApp(c *config.Config, logger logging.Logger, api client.Client, store *session.Store, r *bufio.Reader, w io.Writer) *App {
	a := &App{
		config:         c,
		logger:         logger,
		api:            api,
		session:        store,
		guard:          guard.New(store),
		registration:   services.NewRegistrationService(api, logger),
		accommodations: services.NewAccommodationService(api, store, logger),
		applications:   services.NewApplicationService(api, store, logger),
		bookings:       services.NewBookingService(api, store, logger),
		profiles:       services.NewProfileService(api, store, logger),
		mode:           ModeOffline,
		reader:         r,
		out:            w,
	}
	a.commands = a.routes()
	return a
}

// Run hydrates the session, starts the connectivity watcher and blocks in
// the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	// Commands on protected routes wait in the guard until this finishes.
	go a.session.Hydrate(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.println("Welcome to HouseConnect (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the API client, the database and the log file.
func (a *App) Close() {
	if a.api != nil {
		_ = a.api.Close()
	}
	closeAll(a.closers)
	a.closers = nil
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i].Close()
	}
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// checkOnline pings the backend once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the backend right away and then every
// interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// getStatus renders the prompt status, e.g. "(joe STUDENT online)".
func (a *App) getStatus() string {
	s := ""
	if id := a.session.Identity(); id != nil {
		s = fmt.Sprintf("%s %s ", id.Username, id.Role)
	}
	return fmt.Sprintf("(%s%s)", s, a.Mode())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
