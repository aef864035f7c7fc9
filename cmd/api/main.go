package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiwi-kloset/cmd/api/config"
	"github.com/kiwi-kloset/cmd/api/costume"
	"github.com/kiwi-kloset/cmd/api/database"
	costumehttp "github.com/kiwi-kloset/cmd/api/http"
	"github.com/kiwi-kloset/cmd/api/inmemory"
	"github.com/kiwi-kloset/cmd/api/notifications"
	"github.com/kiwi-kloset/cmd/api/seed"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	err := run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ntfy := notifications.NewNtfy(cfg.Notifications.Enabled, cfg.Notifications.BaseURL,
		&http.Client{Timeout: cfg.Notifications.Timeout})
	costumeService := costume.NewService(store, ntfy, cfg.Notifications.Timeout)
	costumeHandler := costumehttp.NewCostumeHandler(costumeService)

	//create and init http server:
	server := costumehttp.NewServer(costumehttp.ServerConfig{
		Port:           cfg.HTTP.Port,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	}, costumeHandler)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (store: %s)", server.Addr, cfg.Store)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("unexpected http server error: %w", err)
		}
		close(serverErr)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sc:
	case err := <-serverErr:
		return err
	}

	ctx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	log.Println("Graceful shutdown complete.")
	return nil
}

/* Opens the configured store. The memory store always starts with the demo data. */
func openStore(cfg config.Config) (costume.Repository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Store {
	case config.StoreMemory:
		store, err := inmemory.NewInMemoryStore()
		if err != nil {
			return nil, nil, fmt.Errorf("creating memory store: %w", err)
		}
		err = seed.Demo(ctx, store)
		if err != nil {
			return nil, nil, fmt.Errorf("seeding memory store: %w", err)
		}
		return store, func() {}, nil

	default:
		//connect to db:
		dbObject, err := database.ConnectDb(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting with db: %w", err)
		}
		closeDB := func() {
			if err := dbObject.Close(); err != nil {
				log.Println("closing db:", err)
			}
		}

		//apply migrations:
		store := database.NewStore(dbObject)
		err = database.MigrationUp(store, cfg.MigrationsPath)
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			closeDB()
			return nil, nil, fmt.Errorf("migrating: %w", err)
		}

		if cfg.SeedDemo {
			err = seed.Demo(ctx, store)
			if err != nil {
				closeDB()
				return nil, nil, fmt.Errorf("seeding db: %w", err)
			}
		}
		return store, closeDB, nil
	}
}
