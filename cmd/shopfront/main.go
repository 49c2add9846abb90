package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-front/internal/client"
	"github.com/MKhiriev/go-shop-front/internal/config"
	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/nav"
	"github.com/MKhiriev/go-shop-front/internal/service"
	"github.com/MKhiriev/go-shop-front/internal/session"
	"github.com/MKhiriev/go-shop-front/internal/state"
	"github.com/MKhiriev/go-shop-front/internal/store"
	"github.com/MKhiriev/go-shop-front/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("shop-front")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect local database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	storages := store.NewStorages(db, log)
	codec := session.NewCodec(cfg.App)
	st := state.New(storages.Blobs, codec, log)
	services := service.NewServices(st, log)

	notifier := tui.NewQueueNotifier()
	router := nav.NewRouter(services.Auth, notifier, log)
	ui := tui.New(services, router, notifier, log)

	app, err := client.NewApp(st, services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
