package main

import (
	"fmt"
	"os"

	"github.com/ressKim-io/question-prism/internal/adapter/cli"
	"github.com/ressKim-io/question-prism/internal/app"
	"github.com/ressKim-io/question-prism/internal/infrastructure/config"
	"github.com/ressKim-io/question-prism/internal/infrastructure/logger"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		return err
	}

	// Keep stdout for command output
	if cfg.Log.Output == "stdout" {
		cfg.Log.Output = "stderr"
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize logger: %v\n", err)
		return err
	}
	defer func() { _ = log.Sync() }()

	a, err := app.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize services: %v\n", err)
		return err
	}
	defer a.Close()

	cli.SetServices(&cli.Services{
		Questions: a.Questions,
		Batches:   a.Batches,
		ChunkSize: cfg.Stream.ChunkSize,
		Delay:     cfg.Stream.Delay,
		Serve:     a.Serve,
	})

	// cobra already reports command errors
	return cli.Execute()
}
