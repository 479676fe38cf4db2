package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/quiz"
)

var joinCmd = &cobra.Command{
	Use:   "join <code>",
	Short: "Join a lobby by code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := d.profile.Profile()
		name := v.GetString("name")
		if name == "" {
			name = p.Name
		}
		avatar := v.GetString("avatar")
		if avatar == "" {
			avatar = p.Avatar
		}

		player, err := d.content.JoinLobby(cmd.Context(), args[0], name, avatar, p.AvatarColor)
		switch {
		case errors.Is(err, quiz.ErrInvalidCode):
			return errors.New(d.i18n.T("ErrorInvalidCode"))
		case errors.Is(err, quiz.ErrEmptyName):
			return errors.New(d.i18n.T("ErrorName"))
		case err != nil:
			return fmt.Errorf("join lobby: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Joined %s\n", quiz.NormalizeCode(args[0]))
		fmt.Fprintf(out, "Player:  %s %s\n", player.Avatar, player.Name)
		fmt.Fprintf(out, "ID:      %s\n", player.ID)
		return nil
	},
}

func init() {
	joinCmd.Flags().String("name", "", "Player name (defaults to the signed-in profile)")
	joinCmd.Flags().String("avatar", "", "Avatar glyph (defaults to the signed-in profile)")
}
