package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"ragtui/internal/app"
	"ragtui/internal/backend"
	"ragtui/internal/config"
	"ragtui/internal/logging"
	"ragtui/internal/session"
	"ragtui/internal/upload"
)

func main() {
	cliApp := &cli.App{
		Name:  "ragtui",
		Usage: "interactive client for a multimodal retrieval-and-question-answering backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "backend base URL",
				EnvVars: []string{"BACKEND_URL"},
			},
			&cli.StringFlag{
				Name:    "scratch-dir",
				Usage:   "directory for staged media files",
				EnvVars: []string{"RAGTUI_SCRATCH_DIR"},
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "log file path",
				EnvVars: []string{"RAGTUI_LOG_FILE"},
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "JSON config file path",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if v := c.String("backend"); v != "" {
		cfg.BackendURL = v
	}
	if v := c.String("scratch-dir"); v != "" {
		cfg.ScratchDir = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.LogFile = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogFile)
	defer logger.Sync()

	logger.Info("starting",
		zap.String("backend", cfg.BackendURL),
		zap.String("scratch_dir", cfg.ScratchDir),
	)

	client := backend.NewClient(cfg.BackendURL, backend.WithLogger(logger))
	uploader := upload.NewCoordinator(client, cfg.ScratchDir, logger)
	store := session.New()

	model := app.New(store, client, uploader, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
