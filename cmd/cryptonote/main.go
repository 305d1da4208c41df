package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/cryptonote/internal/buildinfo"
	"github.com/dmitrijs2005/cryptonote/internal/client/cli"
	"github.com/dmitrijs2005/cryptonote/internal/client/config"
	"github.com/dmitrijs2005/cryptonote/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, db, err := cli.NewAppFromConfig(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "session ended with error", "error", err)
	}
}
