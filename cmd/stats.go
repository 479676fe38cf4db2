package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ov, err := d.content.Overview(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		t := d.i18n.T
		out := cmd.OutOrStdout()
		st := ov.Stats
		fmt.Fprintf(out, "%-20s %d\n", t("GamesPlayed"), st.GamesPlayed)
		fmt.Fprintf(out, "%-20s %d%%\n", t("AvgScore"), st.AverageScore)
		fmt.Fprintf(out, "%-20s %d\n", t("TotalXP"), st.TotalXP)
		fmt.Fprintf(out, "%-20s %s\n", t("Rank"), st.Rank)

		if len(ov.Leaderboard) > 0 {
			top := ov.Leaderboard[0]
			fmt.Fprintf(out, "\n%s: 🥇 %s %s (%d)\n", t("Leaderboard"), top.Avatar, top.Name, top.Score)
		}
		return nil
	},
}
