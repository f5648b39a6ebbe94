package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/text"
	"github.com/spf13/cobra"

	"limeal.fr/launchyargs/game/folder"
	"limeal.fr/launchyargs/game/launcher"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the known game types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types := launcher.All()

		lname := len("NAME:")
		for _, gt := range types {
			if len(gt.Name()) > lname {
				lname = len(gt.Name())
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, text.AlignDefault.Apply("NAME:", lname+2)+"MAIN CLASS:")
		for _, gt := range types {
			fmt.Fprintln(out, text.Bold.Sprint(text.AlignDefault.Apply(gt.Name(), lname+2))+gt.MainClass(folder.GameInfos{}))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
