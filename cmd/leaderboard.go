package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the leaderboard with your score merged in",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		others, err := d.content.GetLeaderboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("get leaderboard: %w", err)
		}

		me := d.profile.Profile().Player()
		if me.Name == "" {
			me.Name = d.i18n.T("You")
		}
		me.Score = v.GetInt("score")

		printBoard(cmd.OutOrStdout(), leaderboard.Assemble(others, me), d.i18n.T("You"))
		return nil
	},
}

// printBoard writes the top entries and, when it is outside them, the
// local player's rank.
func printBoard(w io.Writer, b leaderboard.Board, you string) {
	fmt.Fprintf(w, "%-4s  %-24s  %6s\n", "Rank", "Player", "Score")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for i, p := range b.Entries {
		name := p.Avatar + " " + p.Name
		if b.IsLocal(i) {
			name += " (" + you + ")"
		}
		fmt.Fprintf(w, "%-4s  %-24s  %6d\n", leaderboard.Medal(i+1), name, p.Score)
	}
	if b.Rank > len(b.Entries) {
		fmt.Fprintln(w, strings.Repeat("─", 40))
		fmt.Fprintf(w, "%s: %s\n", you, leaderboard.Medal(b.Rank))
	}
}

func init() {
	leaderboardCmd.Flags().Int("score", 0, "Your score to place on the board")
}
