package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pms-safya/abacus/internal/tips"
)

var tipCmd = &cobra.Command{
	Use:   "tip [topic]",
	Short: "Print a coach tip",
	Long: `Ask the configured LLM provider for a short coach tip about topic.

Without a provider, or when the request fails, a fixed tip is printed instead.`,
	RunE: runTip,
}

func runTip(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, err := newTipService(cmd.Context(), cfg.LLM, logger)
	if err != nil {
		return err
	}

	tip, err := svc.Tip(cmd.Context(), strings.Join(args, " "))
	if err != nil && !errors.Is(err, tips.ErrNoProvider) {
		logger.Warn("tip generation failed, using fallback", zap.Error(err))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tip)
	return err
}
