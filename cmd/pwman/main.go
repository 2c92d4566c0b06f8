package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pwman/internal/client"
	"github.com/MKhiriev/go-pwman/internal/config"
	"github.com/MKhiriev/go-pwman/internal/crypto"
	"github.com/MKhiriev/go-pwman/internal/logger"
	"github.com/MKhiriev/go-pwman/internal/store"
	"github.com/MKhiriev/go-pwman/internal/tui"
	"github.com/MKhiriev/go-pwman/internal/utils"
	"github.com/MKhiriev/go-pwman/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fatal(logger.NewClientLogger("pwman", ""), err, "error getting configs")
	}

	log := logger.NewClientLogger("pwman", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, crypto.NewKeyChain(), log)
	if err != nil {
		fatal(log, err, "create local storage")
	}
	defer storages.Close()

	ui, err := tui.New(buildInfo, cfg.App.ClipboardTimeout, log)
	if err != nil {
		fatal(log, err, "error creating ui")
	}

	app, err := client.NewApp(cfg, storages.VaultRepository, ui, utils.NewUUIDGenerator(), log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		_ = storages.Close()
		fatal(log, err, "client run error")
	}
}

// fatal reports err on stderr as well, since the log goes to a file.
func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
