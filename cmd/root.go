package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pms-safya/abacus/internal/config"
	"github.com/pms-safya/abacus/internal/llm"
	"github.com/pms-safya/abacus/internal/logging"
	"github.com/pms-safya/abacus/internal/tips"
)

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "Abacus drill generator",
	Long: `Abacus generates mental-math drills for abacus learners: addition sequences
that exercise the small and big friend rules, and multiplication sets by level.

Print worksheets and competition papers from the terminal, or run the HTTP API.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./abacus.yaml, then the user config dir)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(paperCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the file named by --config and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger every subcommand
// shares.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	if cfg.File != "" {
		logger.Debug("config loaded", zap.String("file", cfg.File))
	}
	return cfg, logger, nil
}

// newTipService builds a tip service. Without a configured provider the
// service hands out the fallback tip.
func newTipService(ctx context.Context, cfg llm.Config, logger *zap.Logger) (*tips.Service, error) {
	provider, err := llm.NewProvider(ctx, cfg, logger)
	if errors.Is(err, llm.ErrDisabled) {
		logger.Info("no LLM provider configured, tips use the fallback")
		return tips.NewService(nil, tips.DefaultConfig()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	logger.Info("LLM provider ready", zap.String("provider", cfg.Provider), zap.String("model", provider.ModelID()))
	return tips.NewService(provider, tips.DefaultConfig()), nil
}

// choices renders an accepted-values list for flag usage strings.
func choices[T ~string](list []T) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func presets(list []int) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
