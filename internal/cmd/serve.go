package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/rulekit/rulekit/internal/logging"
	"github.com/rulekit/rulekit/internal/server"
	"github.com/rulekit/rulekit/internal/update"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on standard input/output.

All logging goes to stderr or the configured log file: stdout is
reserved for the MCP transport.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

// runServe wires configuration, logging, and the MCP server, then
// blocks on the stdio transport until the host closes it.
func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Verbose: verboseFlag,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	s := server.New(logger)

	// Background version check. Notices go through the logger so
	// they land on stderr, never on the MCP transport.
	if cfg.UpdateCheck {
		go func() {
			result := update.Check(server.Version)
			if result.Available {
				logger.Info("update available",
					"current", result.Current,
					"latest", result.Latest,
					"release", result.URL,
				)
			}
		}()
	}

	// The stdio server runs until its streams close; an interrupt
	// from the terminal exits cleanly instead.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", "signal", sig.String())
		_ = logger.Close()
		os.Exit(0)
	}()

	logger.Info("starting MCP server", "version", server.Version)
	return mcpserver.ServeStdio(s)
}
