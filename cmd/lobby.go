package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/content"
	"github.com/abhisek/bilim/internal/quiz"
)

var lobbyCmd = &cobra.Command{
	Use:   "lobby",
	Short: "Manage quiz lobbies",
}

var lobbyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a quiz on a topic and open a lobby",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)

		diff, err := quiz.ParseDifficulty(v.GetString("difficulty"))
		if err != nil {
			return err
		}
		settings := quiz.Settings{
			QuestionCount: v.GetInt("count"),
			Grade:         v.GetInt("grade"),
			Difficulty:    diff,
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		lobby, err := d.content.CreateLobby(cmd.Context(), v.GetString("topic"), settings)
		if errors.Is(err, quiz.ErrIrrelevantTopic) {
			return errors.New(d.i18n.T("ErrorIrrelevant"))
		}
		if err != nil {
			return fmt.Errorf("create lobby: %w", err)
		}

		printLobby(cmd.OutOrStdout(), lobby, v.GetBool("answers"))
		return nil
	},
}

// printLobby writes the lobby code and its questions. The correct option
// is marked only when answers is set.
func printLobby(w io.Writer, lobby content.Lobby, answers bool) {
	source := "question bank"
	if lobby.Source == content.SourceAI {
		source = "AI"
	}
	fmt.Fprintf(w, "Lobby code:  %s\n", lobby.Code)
	fmt.Fprintf(w, "Topic:       %s\n", lobby.Topic)
	fmt.Fprintf(w, "Settings:    %d questions, grade %d, %s\n",
		lobby.Settings.QuestionCount, lobby.Settings.Grade, lobby.Settings.Difficulty)
	fmt.Fprintf(w, "Source:      %s\n\n", source)

	for i, q := range lobby.Questions {
		fmt.Fprintf(w, "%2d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			mark := " "
			if answers && j == q.CorrectIndex {
				mark = "✓"
			}
			fmt.Fprintf(w, "    %s %d) %s\n", mark, j+1, opt)
		}
	}
}

func init() {
	def := quiz.DefaultSettings()
	f := lobbyCreateCmd.Flags()
	f.StringP("topic", "t", "", "Quiz topic (Kazakh language, literature, history or culture)")
	f.IntP("count", "n", def.QuestionCount, "Number of questions")
	f.IntP("grade", "g", def.Grade, "School grade (1-11)")
	f.StringP("difficulty", "d", string(def.Difficulty), "Difficulty (easy, medium, hard)")
	f.Bool("answers", false, "Mark the correct answers")
	_ = lobbyCreateCmd.MarkFlagRequired("topic")

	lobbyCmd.AddCommand(lobbyCreateCmd)
}
