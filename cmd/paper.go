package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pms-safya/abacus/internal/competition"
	"github.com/pms-safya/abacus/internal/narration"
	"github.com/pms-safya/abacus/internal/problemgen"
	"github.com/pms-safya/abacus/internal/ui/sheet"
)

var paperCmd = &cobra.Command{
	Use:   "paper <plan>",
	Short: "Build a competition paper from a plan file",
	Long: `Build a competition paper from a YAML or JSON plan and print it.

The text format prints a summary table followed by one worksheet per round.
A plan with a seed, or --seed, produces the same paper on every run.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaper,
}

func init() {
	f := paperCmd.Flags()
	f.Uint64("seed", 0, "Seed for a reproducible paper (overrides the plan's seed)")
	f.Bool("answers", false, "Print answers on the worksheets")
	f.Int("columns", sheet.DefaultColumns, "Questions per worksheet line")
	f.String("format", formatText, "Output format: text, json or script")
	f.Bool("plain", false, "Disable colors and rounded borders")
}

func runPaper(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format, formatText, formatJSON, formatScript); err != nil {
		return err
	}

	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	plan, err := competition.LoadPlan(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		plan.Seed = &seed
	}

	stats := &problemgen.Stats{}
	paper := competition.Build(competition.NewGenerator(plan, problemgen.WithObserver(stats)), plan)

	sum := stats.Summary()
	logger.Debug("paper generated",
		zap.String("title", paper.Title),
		zap.Int("rounds", len(paper.Rounds)),
		zap.Int("attempts", sum.Attempts),
		zap.Int("forced_rows", sum.ForcedRows),
		zap.Int("fallback_pairs", sum.FallbackPairs),
	)

	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		return writeJSON(out, paper)
	case formatScript:
		return writeScript(out, narration.Script(paper.Questions()))
	}

	answers, _ := cmd.Flags().GetBool("answers")
	columns, _ := cmd.Flags().GetInt("columns")
	styles := sheetStyles(cmd)

	if _, err := lipgloss.Fprintln(out, sheet.RenderSummary(paper, styles)); err != nil {
		return err
	}
	for i, r := range paper.Rounds {
		_, err := lipgloss.Fprintln(out, "\n"+sheet.Render(r.Questions, sheet.Options{
			Title:    fmt.Sprintf("Round %d: %s", i+1, r.Name),
			Subtitle: quizSubtitle(r.Settings),
			Answers:  answers,
			Columns:  columns,
			Styles:   styles,
		}))
		if err != nil {
			return err
		}
	}
	return nil
}
