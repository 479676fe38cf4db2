package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/llm"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/quizgen"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the AI provider used for quiz generation",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the configured provider and generate a sample quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		cfg := llm.ConfigFromEnv()
		provider := llm.NewProviderFromEnv(ctx)

		name := cfg.Provider
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(out, "Provider:  %s\n", name)
		fmt.Fprintf(out, "Model:     %s\n", provider.ModelID())
		if !llm.Available(provider) {
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(out, "Status:    unavailable (%v)\n", err)
			}
			fmt.Fprintln(out, "Quizzes will use the built-in question bank.")
			return nil
		}

		settings := quiz.DefaultSettings()
		settings.QuestionCount = v.GetInt("count")
		gen := quizgen.New(provider, quizgen.DefaultConfig())

		start := time.Now()
		qs, err := gen.Generate(ctx, quizgen.NewInput(v.GetString("topic"), settings))
		elapsed := time.Since(start).Round(time.Millisecond)

		if errors.Is(err, quiz.ErrIrrelevantTopic) {
			fmt.Fprintf(out, "Status:    ok, topic rejected as irrelevant (%s)\n", elapsed)
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "Status:    failed (%s)\n", elapsed)
			return fmt.Errorf("generate: %w", err)
		}

		fmt.Fprintf(out, "Status:    ok, %d questions in %s\n\n", len(qs), elapsed)
		for i, q := range qs {
			fmt.Fprintf(out, "%2d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				mark := " "
				if j == q.CorrectIndex {
					mark = "✓"
				}
				fmt.Fprintf(out, "    %s %s\n", mark, opt)
			}
		}
		return nil
	},
}

var llmModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known models and their pricing",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-30s  %12s  %12s\n", "Model", "In $/MTok", "Out $/MTok")
		fmt.Fprintln(out, strings.Repeat("─", 58))
		for _, id := range llm.Models() {
			c := llm.LookupCost(id)
			fmt.Fprintf(out, "%-30s  %12.2f  %12.2f\n", id, c.InputPerMTok, c.OutputPerMTok)
		}
	},
}

func init() {
	llmCheckCmd.Flags().String("topic", "Абай Құнанбаев", "Topic for the sample quiz")
	llmCheckCmd.Flags().Int("count", 3, "Number of sample questions")

	llmCmd.AddCommand(llmCheckCmd)
	llmCmd.AddCommand(llmModelsCmd)
}
