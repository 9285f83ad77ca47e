package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonathan/interview-prep-agent/internal/api"
	"github.com/jonathan/interview-prep-agent/internal/config"
	"github.com/jonathan/interview-prep-agent/internal/prompt"
	"github.com/jonathan/interview-prep-agent/internal/render"
	"github.com/jonathan/interview-prep-agent/internal/session"
)

var (
	rootConfigPath string
	rootAPIURL     string
	rootToken      string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootAPIURL, "api-url", "", "Base URL of the prep backend (optional, defaults to PREP_API_URL env var)")
	rootCmd.PersistentFlags().StringVar(&rootToken, "token", "", "Bearer token for authenticated calls (optional, defaults to PREP_API_TOKEN env var)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

// app bundles the collaborators every command wires into its screen controller.
type app struct {
	cfg     config.Config
	client  *api.Client
	ui      prompt.UI
	printer *render.Printer
	logger  *slog.Logger
}

// buildApp resolves configuration and constructs the shared collaborators.
// Precedence: CLI flags > config file > environment variables > defaults.
func buildApp() (*app, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if rootConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return nil, err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if rootAPIURL != "" {
		cfg.APIBaseURL = rootAPIURL
	}
	if rootToken != "" {
		cfg.APIToken = rootToken
	}
	if rootVerbose {
		cfg.Verbose = true
	}

	// Step 3: Fill remaining gaps from the environment, then defaults
	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Config{})
	if merged.APIBaseURL == "" {
		return nil, fmt.Errorf("backend URL not set (use --api-url, a config file, or the PREP_API_URL environment variable)")
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if merged.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Warn up front when the token is already expired; the backend would
	// reject it anyway, this just saves the round trip surprise.
	if merged.APIToken != "" {
		if sess, err := session.FromToken(merged.APIToken); err != nil {
			logger.Debug("token is not a parseable JWT, sending as-is", "error", err)
		} else if sess.Expired(time.Now()) {
			_, _ = fmt.Fprintln(os.Stderr, "Warning: your session token has expired; sign in again to refresh it")
		} else {
			logger.Debug("session token parsed", "email", sess.Email())
		}
	}

	client := api.NewClient(merged.APIBaseURL,
		api.WithToken(merged.APIToken),
		api.WithTimeout(time.Duration(merged.TimeoutSeconds)*time.Second),
		api.WithLogger(logger),
	)

	return &app{
		cfg:     merged,
		client:  client,
		ui:      prompt.NewTerminal(os.Stdin, os.Stdout),
		printer: render.NewPrinter(os.Stdout),
		logger:  logger,
	}, nil
}
