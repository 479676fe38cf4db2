package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bilim",
	Short: "Kazakh language quiz game",
	Long:  "Bilim — a terminal quiz game for Kazakh language, literature and history lessons, with AI-generated quizzes.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd, nil)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("db", "", "Path to SQLite database file (overrides BILIM_DB env var)")
	f.String("store", storeSQLite, "Profile storage backend (sqlite, redis, memory)")
	f.String("redis-addr", "localhost:6379", "Redis address for --store redis")
	f.String("lang", "", "Interface language for this run (kk, ru, en)")
	f.Bool("fast", false, "Skip the simulated network delays")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lobbyCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
