// Package server initializes and runs the DreamJob web application. It
// selects the database, file storage and session back-ends, runs schema
// migrations, handles graceful shutdown and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/dmitrijs2005/dreamjob/internal/server/config"
	"github.com/dmitrijs2005/dreamjob/internal/server/services"
	"github.com/dmitrijs2005/dreamjob/internal/server/web"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
	closers []func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(c.LogFormat, os.Stdout)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger}
	if err := app.init(ctx); err != nil {
		app.close(ctx)
		return nil, err
	}
	return app, nil
}

func (app *App) init(ctx context.Context) error {
	c := app.config

	db, rm, err := OpenDatabase(ctx, c)
	if err != nil {
		return err
	}
	if db != nil {
		app.db = db
		app.closers = append(app.closers, db.Close)
	} else {
		app.logger.Warn(ctx, "No datasource configured, data is kept in memory")
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	blobs, err := NewBlobStore(ctx, c)
	if err != nil {
		return fmt.Errorf("file storage init error: %w", err)
	}

	store, closeStore, err := NewSessionStore(ctx, c)
	if err != nil {
		return fmt.Errorf("session store init error: %w", err)
	}
	app.closers = append(app.closers, closeStore)

	renderer, err := web.NewTemplateRenderer()
	if err != nil {
		return err
	}

	fs := services.NewFileService(db, rm, blobs)

	app.handler = web.NewRouter(web.Deps{
		Logger:    app.logger,
		Renderer:  renderer,
		Sessions:  web.NewSessions(store, c.SecretKey, c.SessionTTL, app.logger),
		Users:     services.NewUserService(db, rm, NewPasswordHasher(c)),
		Files:     fs,
		Vacancies: services.NewVacancyService(db, rm, fs),
		Cities:    services.NewCityService(db, rm),
	})

	app.logger.Info(ctx, "App initialized",
		"storage", c.StorageBackend,
		"sessions", c.SessionStore,
		"password_hashing", c.PasswordHashing,
	)
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := web.NewServer(app.config.HTTPAddr, app.logger, app.handler)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
}

func (app *App) close(ctx context.Context) {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Warn(ctx, "close failed", "error", err)
		}
	}
	app.closers = nil
}
