// =============================================================================
// NFSe DANFSe Renderer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (danfe)
//   ├── renderCmd (danfe render)
//   ├── municipioCmd (danfe municipio)
//   ├── validateCmd (danfe validate)
//   └── versionCmd (danfe version)
//
// The root command owns the global flags (--config, --verbose) and the shared
// setup: configuration, logger, municipality registry and renderer.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/direction/nfse-danfe/internal/config"
	"github.com/direction/nfse-danfe/internal/logging"
	"github.com/direction/nfse-danfe/internal/municipio"
	"github.com/direction/nfse-danfe/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile is the configuration file. Empty means danfe.yaml when present.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "danfe",
	Short: "NFSe DANFSe Renderer - Render Brazilian NFSe documents as DANFSe PDF",
	Long: `danfe turns national-standard NFSe XML documents into the DANFSe, the
printable auxiliary document, as HTML and PDF.

Key Features:
  - Municipality names and city hall logos from IBGE reference tables
  - Schema layouts 1.00 and 1.01
  - Missing fields rendered with fallbacks and reported as warnings
  - Concurrent batch rendering with archival of processed documents

Example Usage:
  danfe render                          # Render every XML in the input directory
  danfe render nota.xml --env homologacao
  danfe municipio 3550308               # Look up a municipality
  danfe validate --config ./danfe.yaml  # Check configuration and reference tables`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to the configuration file (default is "+config.DefaultConfigFile+" when present)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// session bundles what every command needs.
type session struct {
	cfg      *config.MainConfig
	logger   *zap.Logger
	registry *municipio.Registry
}

// setup loads the configuration and builds the logger.
func setup() (*session, error) {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(logging.Settings{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
		Verbose: verbose,
	})
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: logger}, nil
}

// loadRegistry initializes the municipality registry from the configured
// reference tables.
func (s *session) loadRegistry() error {
	registry := municipio.NewRegistry(
		municipio.WithEncoding(s.cfg.ReferenceEncoding),
		municipio.WithLogger(s.logger),
	)
	if err := registry.Initialize(s.cfg.EstadosCSVPath, s.cfg.MunicipiosCSVPath); err != nil {
		return fmt.Errorf("failed to load municipality tables: %w", err)
	}
	s.registry = registry
	return nil
}

// newRenderer builds a renderer on the loaded registry.
func (s *session) newRenderer() (*render.Renderer, error) {
	return render.New(s.cfg.RendererOptions(), s.registry, nil, s.logger)
}

func (s *session) close() {
	_ = s.logger.Sync()
}
