package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/text"
	"github.com/spf13/cobra"

	"limeal.fr/launchyargs/pkg/config"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage access tokens stored in the OS keyring",
	Long: `Manage access tokens stored in the OS keyring.

A profile with "auth.keyring: true" (or LAUNCHY_KEYRING=true) reads the token of its username from there.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <username> [token]",
	Short: "Store the access token of a player, read from stdin when not given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		var token string
		if len(args) == 2 {
			token = args[1]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read token from stdin: %w", err)
			}
			token = strings.TrimSpace(line)
		}
		if token == "" {
			return fmt.Errorf("empty access token for %s", username)
		}

		if err := config.SaveAccessToken(username, token); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Stored access token for", text.Bold.Sprint(username))
		return nil
	},
}

var tokenDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Remove the access token of a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DeleteAccessToken(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted access token for", text.Bold.Sprint(args[0]))
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd, tokenDeleteCmd)
	rootCmd.AddCommand(tokenCmd)
}
