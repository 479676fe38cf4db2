package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/app"
	"github.com/abhisek/bilim/internal/llm"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the quiz game (same as running bilim without a command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp redirects logging to a file, builds dependencies, and launches the
// TUI.
func runApp(cmd *cobra.Command) error {
	v := viperForCmd(cmd)
	if p, err := logPath(v); err == nil {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			setupLogging(cmd, f)
		}
	}

	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	if !llm.Available(d.provider) {
		fmt.Fprintln(os.Stderr, "AI provider not configured: quizzes will use the built-in question bank.")
	}

	env := &screen.Env{
		Ctx:     cmd.Context(),
		Content: d.content,
		Game:    session.NewGame(),
		Profile: d.profile,
		I18n:    d.i18n,
	}
	return app.Run(env)
}
