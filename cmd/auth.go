package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/quiz"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save a local profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		role := quiz.Role(v.GetString("role"))
		err = d.profile.Login(cmd.Context(), v.GetString("name"), role, v.GetString("avatar"), v.GetString("color"))
		switch {
		case errors.Is(err, quiz.ErrEmptyName):
			return errors.New(d.i18n.T("ErrorName"))
		case err != nil:
			return fmt.Errorf("login: %w", err)
		}

		printProfile(cmd, d)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the local profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.profile.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the local profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if !d.profile.Profile().Authenticated {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in. Run `bilim login` or start the game.")
			return nil
		}
		printProfile(cmd, d)
		return nil
	},
}

func printProfile(cmd *cobra.Command, d *deps) {
	p := d.profile.Profile()
	role := d.i18n.T("Student")
	if p.Role == quiz.RoleTeacher {
		role = d.i18n.T("Teacher")
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", p.Avatar, p.Name)
	fmt.Fprintf(out, "Role:      %s\n", role)
	fmt.Fprintf(out, "Color:     %s\n", p.AvatarColor)
	fmt.Fprintf(out, "Language:  %s\n", d.i18n.Language().Name())
}

func init() {
	f := loginCmd.Flags()
	f.String("name", "", "Display name")
	f.String("role", string(quiz.RoleStudent), "Role (teacher, student)")
	f.String("avatar", "", "Avatar glyph")
	f.String("color", "", "Avatar background color (hex)")
	_ = loginCmd.MarkFlagRequired("name")
}
