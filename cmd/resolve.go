package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"limeal.fr/launchyargs/game/launcher"
	"limeal.fr/launchyargs/game/modloader"
	"limeal.fr/launchyargs/pkg/config"
)

type Resolution struct {
	GameType  string   `json:"gameType"`
	MainClass string   `json:"mainClass"`
	Arguments []string `json:"arguments"`
	Command   []string `json:"command,omitempty"` // full java command, when a java path is configured
}

// ResolveGameType picks the game type named in the profile, or the one
// matching its version and loader.
func ResolveGameType(cfg *config.Config) (*launcher.GameType, error) {
	if cfg.GameType != "" {
		return launcher.Lookup(cfg.GameType)
	}

	loader, err := launcher.ParseLoader(cfg.Loader)
	if err != nil {
		return nil, err
	}
	return launcher.ForVersion(cfg.Version, loader)
}

// ModLoaderArguments returns the forge arguments configured in the
// profile, nil when there are none. Explicit arguments win over a
// manifest, which wins over forge/mcp versions.
func ModLoaderArguments(cfg *config.Config, logger *log.Logger) (launcher.ModLoaderArguments, error) {
	switch {
	case len(cfg.Forge.Arguments) > 0:
		return modloader.StaticArguments(cfg.Forge.Arguments), nil
	case cfg.Forge.Manifest != "":
		logger.Println("Loading forge manifest from", cfg.Forge.Manifest)
		return modloader.LoadManifestArguments(logger, cfg.Forge.Manifest)
	case cfg.Forge.ForgeVersion != "":
		return cfg.Forge.Discriminator(cfg.Version), nil
	}
	return nil, nil
}

// Resolve computes the main class and the arguments for a profile.
func Resolve(cfg *config.Config, logger *log.Logger) (*Resolution, error) {
	gameType, err := ResolveGameType(cfg)
	if err != nil {
		return nil, err
	}
	logger.Println("Game type:", gameType.Name())

	if gameType.Equal(launcher.V1_13HigherForge) {
		modLoader, err := ModLoaderArguments(cfg, logger)
		if err != nil {
			return nil, err
		}
		if modLoader != nil {
			gameType = gameType.WithModLoader(modLoader)
		}
	}

	infos := cfg.GameInfos()
	args, err := gameType.LaunchArgs(infos, cfg.GameFolder(), cfg.AuthInfos())
	if err != nil {
		return nil, fmt.Errorf("failed to build arguments for %s: %w", gameType.Name(), err)
	}

	res := &Resolution{
		GameType:  gameType.Name(),
		MainClass: gameType.MainClass(infos),
		Arguments: args,
	}

	if cfg.Java.Path != "" {
		res.Command, err = cfg.Java.CommandLine().Build(gameType, infos, cfg.GameFolder(), cfg.AuthInfos())
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

/////////////////////////////////////////////////////////////////////
// resolve command
/////////////////////////////////////////////////////////////////////

var resolveLoader string

var resolveCmd = &cobra.Command{
	Use:   "resolve <version>",
	Short: "Print the game type used for a minecraft version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := launcher.ParseLoader(resolveLoader)
		if err != nil {
			return err
		}

		gameType, err := launcher.ForVersion(args[0], loader)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), gameType.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveLoader, "loader", "l", "vanilla", "The mod loader (vanilla, fabric, forge)")
}
