package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bilim/internal/i18n"
)

var langCmd = &cobra.Command{
	Use:       "lang [kk|ru|en]",
	Short:     "Show or set the interface language",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(i18n.Kazakh), string(i18n.Russian), string(i18n.English)},
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			cur := d.i18n.Language()
			for _, l := range i18n.Languages() {
				mark := " "
				if l == cur {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s  %s\n", mark, l, l.Name())
			}
			return nil
		}

		lang, err := i18n.Parse(args[0])
		if err != nil {
			return err
		}
		if err := d.i18n.SetLanguage(cmd.Context(), lang); err != nil {
			return fmt.Errorf("save language: %w", err)
		}
		fmt.Fprintf(out, "%s: %s\n", d.i18n.T("Language"), lang.Name())
		return nil
	},
}
