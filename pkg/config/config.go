package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"limeal.fr/launchyargs/game/folder"
	"limeal.fr/launchyargs/game/launcher"
	"limeal.fr/launchyargs/game/modloader"
	"limeal.fr/launchyargs/game/profile"
)

// Config is a launch profile: who plays, what version, where.
// It is read from a YAML file and then overridden by LAUNCHY_* variables.
type Config struct {
	GameType string `yaml:"gameType" env:"LAUNCHY_GAME_TYPE"` // registry name, empty to resolve from Version
	Loader   string `yaml:"loader" env:"LAUNCHY_LOADER"`
	Version  string `yaml:"version" env:"LAUNCHY_VERSION"`
	GameDir  string `yaml:"gameDir" env:"LAUNCHY_GAME_DIR"`

	Folder folder.GameFolder `yaml:"folder"`
	Auth   AuthConfig        `yaml:"auth"`
	Forge  ForgeConfig       `yaml:"forge"`
	Java   JavaConfig        `yaml:"java"`
}

type AuthConfig struct {
	Username    string `yaml:"username" env:"LAUNCHY_USERNAME"`
	UUID        string `yaml:"uuid" env:"LAUNCHY_UUID"`
	AccessToken string `yaml:"accessToken,omitempty" env:"LAUNCHY_ACCESS_TOKEN"`
	ClientToken string `yaml:"clientToken" env:"LAUNCHY_CLIENT_TOKEN"`
	Keyring     bool   `yaml:"keyring" env:"LAUNCHY_KEYRING"` // read the access token from the OS keyring
}

type ForgeConfig struct {
	Manifest     string   `yaml:"manifest" env:"LAUNCHY_FORGE_MANIFEST"` // path or uri of the forge version json
	ForgeVersion string   `yaml:"forgeVersion" env:"LAUNCHY_FORGE_VERSION"`
	MCPVersion   string   `yaml:"mcpVersion" env:"LAUNCHY_MCP_VERSION"`
	ForgeGroup   string   `yaml:"forgeGroup" env:"LAUNCHY_FORGE_GROUP"`
	Arguments    []string `yaml:"arguments,omitempty" env:"LAUNCHY_FORGE_ARGS" envSeparator:" "`
}

// JavaConfig describes the java side of the command line. Without a Path
// only the game arguments are produced.
type JavaConfig struct {
	Path      string         `yaml:"path" env:"LAUNCHY_JAVA"`
	Memory    profile.Memory `yaml:"memory" envPrefix:"LAUNCHY_JAVA_"`
	Classpath []string       `yaml:"classpath,omitempty" env:"LAUNCHY_CLASSPATH" envSeparator:":"`
	Args      []string       `yaml:"args,omitempty" env:"LAUNCHY_JAVA_ARGS" envSeparator:" "`
}

func (j JavaConfig) CommandLine() *launcher.CommandLine {
	c := launcher.NewCommandLine(j.Path)
	c.Memory = j.Memory
	c.Classpath = j.Classpath
	c.AddJavaArgs(j.Args...)
	return c
}

func Default() *Config {
	return &Config{
		Loader: "vanilla",
		Folder: folder.Default(),
		Auth: AuthConfig{
			Username:    "steve",
			UUID:        profile.OfflineUUID,
			AccessToken: "0",
		},
		Java: JavaConfig{Memory: profile.DefaultMemory()},
	}
}

// Load reads the YAML file at path (optional when empty or missing) and
// applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Auth.Keyring {
		token, err := LoadAccessToken(cfg.Auth.Username)
		if err != nil {
			return nil, err
		}
		cfg.Auth.AccessToken = token
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// AuthInfos builds the identity handed to the game.
func (c *Config) AuthInfos() profile.AuthInfos {
	auth := profile.NewAuthInfos(c.Auth.Username, c.Auth.AccessToken, c.Auth.UUID)
	if c.Auth.ClientToken != "" {
		auth = auth.WithClientToken(c.Auth.ClientToken)
	}
	return auth
}

func (c *Config) GameInfos() folder.GameInfos {
	return folder.NewGameInfos(c.GameDir, c.Version)
}

// GameFolder fills unset layout entries with the defaults.
func (c *Config) GameFolder() folder.GameFolder {
	f := c.Folder
	def := folder.Default()
	if f.Assets == "" {
		f.Assets = def.Assets
	}
	if f.Libraries == "" {
		f.Libraries = def.Libraries
	}
	if f.Natives == "" {
		f.Natives = def.Natives
	}
	if f.MainJar == "" {
		f.MainJar = def.MainJar
	}
	return f
}

// HasForge reports whether any forge argument source is configured.
func (f ForgeConfig) HasForge() bool {
	return f.Manifest != "" || f.ForgeVersion != "" || len(f.Arguments) > 0
}

// Discriminator builds the forge discriminator from explicit versions.
func (f ForgeConfig) Discriminator(mcVersion string) *modloader.ForgeVersionDiscriminator {
	d := modloader.NewForgeVersionDiscriminator(f.ForgeVersion, mcVersion, f.MCPVersion)
	if f.ForgeGroup != "" {
		d.ForgeGroup = f.ForgeGroup
	}
	return d
}

// Save writes the profile as YAML. A keyring-backed access token stays in
// the keyring and is never written to the file.
func (c *Config) Save(path string) error {
	out := *c
	if out.Auth.Keyring {
		out.Auth.AccessToken = ""
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
