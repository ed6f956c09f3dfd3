// Package cmd wires the pdfpeek commands.
package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"
	"github.com/spf13/cobra"

	"github.com/krivenkov/pdfpeek/internal/picker"
)

// cmdConfig holds logging configuration shared by all commands.
type cmdConfig struct {
	Format string `env:"LOG_FORMAT" env-default:"text" env-description:"Log output format (text or json)"`
	Level  string `env:"LOG_LEVEL" env-default:"warn" env-description:"Log level (debug, info, warn, error)"`
}

// createLogger creates a slog logger from the configuration.
func createLogger(conf cmdConfig) *slog.Logger {
	var level slog.Level
	switch conf.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var zerologLogger zerolog.Logger
	if conf.Format == "json" {
		zerologLogger = zerolog.New(os.Stderr)
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()
	}

	handler := slogzerolog.Option{
		Level:  level,
		Logger: &zerologLogger,
	}.NewZerologHandler()

	logger := slog.New(handler)
	log.SetFlags(0)
	slog.SetDefault(logger)

	return logger
}

func loadCmdConfig() cmdConfig {
	var conf cmdConfig
	if err := cleanenv.ReadEnv(&conf); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load command config: %v\n", err)
		os.Exit(1)
	}
	return conf
}

var rootCmd = &cobra.Command{
	Use:   "pdfpeek [dir]",
	Short: "Fuzzy file picker with PDF preview",
	Long: `pdfpeek is a terminal fuzzy file picker with a preview pane.

PDF files are previewed by rendering a first-page thumbnail with pdftoppm and
fetching document metadata with pdfinfo. Selecting a file opens it with the
OS default application.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := createLogger(loadCmdConfig())

		startDir := ""
		if len(args) == 1 {
			startDir = args[0]
		}

		orch, err := buildOrchestrator(logger)
		if err != nil {
			return err
		}
		orch.SweepCache(cmd.Context())

		model, err := picker.New(orch, startDir, logger)
		if err != nil {
			return fmt.Errorf("failed to start picker: %w", err)
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("picker terminated: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
