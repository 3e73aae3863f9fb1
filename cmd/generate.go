package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pms-safya/abacus/internal/competition"
	"github.com/pms-safya/abacus/internal/narration"
	"github.com/pms-safya/abacus/internal/problemgen"
	"github.com/pms-safya/abacus/internal/ui/sheet"
	"github.com/pms-safya/abacus/internal/ui/theme"
)

// Output formats shared by generate and paper.
const (
	formatText   = "text"
	formatJSON   = "json"
	formatScript = "script"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz set",
	Long: `Generate one quiz set and print it as a worksheet, JSON or a narration script.

Settings start from the quiz section of the config file; flags override them.
Pass --seed to get the same set on every run.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	d := competition.DefaultSettings()
	f := generateCmd.Flags()
	f.String("category", string(d.Category), "Drill category: "+choices(problemgen.Categories))
	f.String("rule", string(d.Rule), "Addition rule: "+choices(problemgen.Rules))
	f.String("mult-level", string(d.MultLevel), "Multiplication level: "+choices(problemgen.MultLevels))
	f.String("digits", string(d.DigitType), "Addition operand size: "+choices(problemgen.DigitTypes))
	f.Int("count", d.QuestionCount, "Number of questions (presets: "+presets(competition.QuestionCounts)+")")
	f.Int("rows", d.RowCount, "Rows per addition question (presets: "+presets(competition.RowCounts)+")")
	f.Float64("time", d.TimePerQuestion, fmt.Sprintf("Seconds per question, %.1f to %.1f in steps of %.1f",
		competition.MinTimePerQuestion, competition.MaxTimePerQuestion, competition.TimePerQuestionStep))
	f.Uint64("seed", 0, "Seed for a reproducible set")
	f.Bool("answers", false, "Print answers on the worksheet")
	f.Int("columns", sheet.DefaultColumns, "Questions per worksheet line")
	f.String("format", formatText, "Output format: text, json or script")
	f.Bool("plain", false, "Disable colors and rounded borders")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format, formatText, formatJSON, formatScript); err != nil {
		return err
	}

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	settings := settingsFromFlags(cmd, cfg.Quiz)
	if err := settings.Validate(); err != nil {
		return err
	}

	stats := &problemgen.Stats{}
	opts := []problemgen.Option{problemgen.WithObserver(stats)}
	var src problemgen.Source
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		src = problemgen.NewSource(seed)
		opts = append(opts, problemgen.WithIDs(problemgen.SeededIDs(seed)))
	}
	qs := problemgen.New(src, opts...).QuizSet(settings.GenerationConfig())

	sum := stats.Summary()
	logger.Debug("quiz generated",
		zap.Int("questions", len(qs)),
		zap.Int("attempts", sum.Attempts),
		zap.Int("relaxed_rows", sum.RelaxedRows),
		zap.Int("forced_rows", sum.ForcedRows),
		zap.Int("fallback_pairs", sum.FallbackPairs),
	)

	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		return writeJSON(out, struct {
			Settings  competition.Settings  `json:"settings"`
			Questions []problemgen.Question `json:"questions"`
		}{settings, qs})
	case formatScript:
		return writeScript(out, narration.Script(qs))
	}

	answers, _ := cmd.Flags().GetBool("answers")
	columns, _ := cmd.Flags().GetInt("columns")
	_, err = lipgloss.Fprintln(out, sheet.Render(qs, sheet.Options{
		Title:    "Abacus drill",
		Subtitle: quizSubtitle(settings),
		Answers:  answers,
		Columns:  columns,
		Styles:   sheetStyles(cmd),
	}))
	return err
}

// settingsFromFlags overrides base with every flag the user set.
func settingsFromFlags(cmd *cobra.Command, base competition.Settings) competition.Settings {
	f := cmd.Flags()
	s := base
	if f.Changed("category") {
		v, _ := f.GetString("category")
		s.Category = problemgen.Category(v)
	}
	if f.Changed("rule") {
		v, _ := f.GetString("rule")
		s.Rule = problemgen.Rule(v)
	}
	if f.Changed("mult-level") {
		v, _ := f.GetString("mult-level")
		s.MultLevel = problemgen.MultLevel(v)
	}
	if f.Changed("digits") {
		v, _ := f.GetString("digits")
		s.DigitType = problemgen.DigitType(v)
	}
	if f.Changed("count") {
		s.QuestionCount, _ = f.GetInt("count")
	}
	if f.Changed("rows") {
		s.RowCount, _ = f.GetInt("rows")
	}
	if f.Changed("time") {
		s.TimePerQuestion, _ = f.GetFloat64("time")
	}
	return s
}

func quizSubtitle(s competition.Settings) string {
	if s.Category == problemgen.CategoryMultiplication {
		return fmt.Sprintf("%d questions · multiplication %s · %gs each", s.QuestionCount, s.MultLevel, s.TimePerQuestion)
	}
	return fmt.Sprintf("%d questions · %s · %d rows of %s digits · %gs each",
		s.QuestionCount, s.Rule, s.RowCount, s.DigitType, s.TimePerQuestion)
}

func sheetStyles(cmd *cobra.Command) *theme.Sheet {
	st := theme.Colored()
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		st = theme.Plain()
	}
	return &st
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be one of %s", format, choices(allowed))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeScript(w io.Writer, cues []narration.Cue) error {
	for _, c := range cues {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", c.Key, c.Text); err != nil {
			return err
		}
	}
	return nil
}
