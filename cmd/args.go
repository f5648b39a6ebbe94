package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/text"
	"github.com/spf13/cobra"

	"limeal.fr/launchyargs/pkg/config"
)

var asJSON bool

var argsCmd = &cobra.Command{
	Use:   "args [version]",
	Short: "Print the main class and game arguments for a launch profile",
	Long: `Print the main class and game arguments for a launch profile.

The profile is read from --config, then LAUNCHY_* environment variables, then the flags below.
Arguments:
  [version]        The minecraft version to launch (e.g., "1.20.1"), overrides the profile.

Forge (1.13+) needs extra arguments, given by --forge-arg, --forge-manifest or --forge-version/--mcp-version.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.Version = args[0]
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		logger.Println("Version:", cfg.Version)
		logger.Println("Game folder:", cfg.GameDir)

		res, err := Resolve(cfg, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Fprintln(out, "- Game type:", text.Bold.Sprint(res.GameType))
		fmt.Fprintln(out, "- Main class:", res.MainClass)
		fmt.Fprintln(out, "- Arguments:")
		for i, arg := range res.Arguments {
			fmt.Fprintf(out, "    [%2d] %s\n", i, arg)
		}
		if len(res.Command) > 0 {
			fmt.Fprintln(out, "- Command:")
			for i, arg := range res.Command {
				fmt.Fprintf(out, "    [%2d] %s\n", i, arg)
			}
		}
		return nil
	},
}

// applyFlags copies every flag the user set onto the profile.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	strs := map[string]*string{
		"type":           &cfg.GameType,
		"loader":         &cfg.Loader,
		"game-dir":       &cfg.GameDir,
		"assets":         &cfg.Folder.Assets,
		"username":       &cfg.Auth.Username,
		"uuid":           &cfg.Auth.UUID,
		"token":          &cfg.Auth.AccessToken,
		"client-token":   &cfg.Auth.ClientToken,
		"forge-manifest": &cfg.Forge.Manifest,
		"forge-version":  &cfg.Forge.ForgeVersion,
		"mcp-version":    &cfg.Forge.MCPVersion,
		"java":           &cfg.Java.Path,
	}
	for name, dest := range strs {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dest = v
	}

	if flags.Changed("forge-arg") {
		v, err := flags.GetStringArray("forge-arg")
		if err != nil {
			return err
		}
		cfg.Forge.Arguments = v
	}
	return nil
}

func init() {
	rootCmd.AddCommand(argsCmd)
	f := argsCmd.Flags()
	f.BoolVar(&asJSON, "json", false, "Print the result as json")
	f.StringP("type", "t", "", "The game type name (see 'types'), resolved from the version when empty")
	f.StringP("loader", "l", "", "The mod loader (vanilla, fabric, forge)")
	f.StringP("game-dir", "g", "", "The absolute path of the game directory")
	f.String("assets", "", "The assets folder, relative to the game directory")
	f.StringP("username", "u", "", "The player name")
	f.String("uuid", "", "The player uuid")
	f.String("token", "", "The access token")
	f.String("client-token", "", "The client token (1.7.10 to 1.12)")
	f.String("forge-manifest", "", "Path or uri of the forge version json (file, http(s), sftp)")
	f.String("forge-version", "", "The forge version (e.g 36.2.39)")
	f.String("mcp-version", "", "The mcp version (e.g 20210115.111550)")
	f.StringArray("forge-arg", nil, "Extra forge argument, repeatable")
	f.String("java", "", "The java executable, prints the full command line when set")
}
