package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"minifeed/internal/config"
	"minifeed/internal/db"
	"minifeed/internal/feed"
	"minifeed/internal/server"
	"minifeed/internal/store"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() config.Config
	openStore  func(config.Config) (feed.Store, func(), error)
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, feed.Store, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		openStore:  openStore,
		notify:     signal.Notify,
		run:        Run,
	}
}

func realMain(deps mainDeps) {
	_ = godotenv.Load()

	cfg := deps.loadConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	st, closeStore, err := deps.openStore(cfg)
	if err != nil {
		logrus.WithError(err).Error("store setup failed")
		return
	}
	defer closeStore()

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	logrus.WithFields(logrus.Fields{
		"driver": cfg.StoreDriver,
		"addr":   cfg.ServerPort,
	}).Info("starting server")

	if err := deps.run(context.Background(), cfg, st, signals, nil); err != nil {
		logrus.WithError(err).Error("server exited with error")
	}
}

// openStore picks the snapshot backend by configured driver.
func openStore(cfg config.Config) (feed.Store, func(), error) {
	switch cfg.StoreDriver {
	case "redis":
		client := db.ConnectRedis(cfg)
		if client == nil {
			return nil, nil, fmt.Errorf("redis driver selected but REDIS_ADDR is empty")
		}
		return store.NewRedisStore(client), func() { _ = client.Close() }, nil
	case "postgres":
		pool, err := db.ConnectPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgresStore(pool)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pg, pool.Close, nil
	default:
		return store.NewFileStore(cfg.DataPath), func() {}, nil
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, st feed.Store, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, st)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return shutdownFn(srv.App, shutdownCtx)
}
