package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"limeal.fr/launchyargs/game/launcher"
	"limeal.fr/launchyargs/pkg/config"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestResolveVanilla(t *testing.T) {
	cfg := config.Default()
	cfg.Version = "1.7.10"
	cfg.GameDir = "/games/mc"
	cfg.Auth.Username = "Steve"
	cfg.Auth.AccessToken = "tok123"
	cfg.Auth.UUID = "uuid-1"

	res, err := Resolve(cfg, discard())
	require.NoError(t, err)
	assert.Equal(t, "1.7.10", res.GameType)
	assert.Equal(t, launcher.ClientMainClass, res.MainClass)
	assert.Equal(t, []string{
		"--username=Steve", "--accessToken", "tok123", "--version", "1.7.10",
		"--gameDir", "/games/mc", "--assetsDir", "/games/mc/assets",
		"--assetIndex", "1.7.10", "--userProperties", "{}",
		"--uuid", "uuid-1", "--userType", "legacy",
	}, res.Arguments)
}

func TestResolveExplicitGameType(t *testing.T) {
	cfg := config.Default()
	cfg.GameType = "1.8 or higher"
	cfg.Version = "1.13.2"
	cfg.GameDir = "/games/mc"

	res, err := Resolve(cfg, discard())
	require.NoError(t, err)
	assert.Contains(t, res.Arguments, "1.13.1")
}

func TestResolveForgeWithoutArgumentsFails(t *testing.T) {
	cfg := config.Default()
	cfg.Version = "1.16.5"
	cfg.Loader = "forge"

	_, err := Resolve(cfg, discard())
	assert.ErrorIs(t, err, launcher.ErrModLoaderMissing)
}

func TestResolveForgeSources(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "forge.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{"id":"1.16.5-forge","arguments":{"game":["--launchTarget","fmlclient"]}}`), 0644))

	tests := []struct {
		name  string
		forge config.ForgeConfig
		tail  []string
	}{
		{"static", config.ForgeConfig{Arguments: []string{"--launchTarget", "forge_client"}}, []string{"--launchTarget", "forge_client"}},
		{"manifest", config.ForgeConfig{Manifest: manifest}, []string{"--launchTarget", "fmlclient"}},
		{"versions", config.ForgeConfig{ForgeVersion: "36.2.39", MCPVersion: "20210115.111550"}, []string{"--fml.mcpVersion", "20210115.111550"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Version = "1.16.5"
			cfg.Loader = "forge"
			cfg.Forge = tt.forge

			res, err := Resolve(cfg, discard())
			require.NoError(t, err)
			assert.Equal(t, launcher.ForgeMainClass, res.MainClass)
			assert.Equal(t, tt.tail, res.Arguments[len(res.Arguments)-len(tt.tail):])
			assert.Equal(t, []string{"--versionType", "release"}, res.Arguments[16:18])
		})
	}
}

func TestResolveUnknownGameType(t *testing.T) {
	cfg := config.Default()
	cfg.GameType = "beta"

	_, err := Resolve(cfg, discard())
	assert.ErrorIs(t, err, launcher.ErrUnknownGameType)
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)

	for _, gt := range launcher.All() {
		assert.Contains(t, out, gt.Name())
	}
	assert.Contains(t, out, launcher.FabricMainClass)
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "1.20.1", "--loader", "fabric")
	require.NoError(t, err)
	assert.Equal(t, "1.13.x or higer with Fabric\n", out)

	_, err = run(t, "resolve", "24w10a")
	assert.Error(t, err)
}

func TestArgsCommandJSON(t *testing.T) {
	out, err := run(t, "args", "1.12.2", "--json", "-g", "/games/mc", "-u", "Steve", "--uuid", "uuid-1", "--token", "tok123")
	require.NoError(t, err)

	var res Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "1.8 or higher", res.GameType)
	assert.Equal(t, launcher.ClientMainClass, res.MainClass)
	assert.Equal(t, []string{"--username=Steve", "--accessToken", "tok123"}, res.Arguments[:3])
	assert.Contains(t, res.Arguments, "1.12")
}

func TestArgsCommandForgeArgs(t *testing.T) {
	out, err := run(t, "args", "1.16.5", "--loader", "forge", "--forge-arg=--launchTarget", "--forge-arg=forge_client")
	require.NoError(t, err)

	assert.Contains(t, out, launcher.ForgeMainClass)
	assert.Contains(t, out, "forge_client")
}

func TestArgsCommandForgeMissing(t *testing.T) {
	_, err := run(t, "args", "1.16.5", "--loader", "forge")
	assert.ErrorIs(t, err, launcher.ErrModLoaderMissing)
}

func TestArgsCommandReadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.5.2\ngameDir: /games/old\nauth:\n  username: Notch\n"), 0644))

	out, err := run(t, "--config", path, "args", "--json")
	require.NoError(t, err)

	var res Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, launcher.LegacyMainClass, res.MainClass)
	assert.Equal(t, "Notch", res.Arguments[0])
	assert.Equal(t, "/games/old/assets/virtual/legacy/", res.Arguments[5])
}

func TestArgsCommandJavaCommandLine(t *testing.T) {
	out, err := run(t, "args", "1.16.5", "--json", "-g", "/games/mc", "--java", "/usr/bin/java")
	require.NoError(t, err)

	var res Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Command)
	assert.Equal(t, []string{"/usr/bin/java", "-Xmx4G", "-Xms2G"}, res.Command[:3])
	assert.Equal(t, res.Arguments, res.Command[len(res.Command)-len(res.Arguments):])
	assert.Contains(t, res.Command, launcher.ClientMainClass)
}

func TestResolveWithoutJavaHasNoCommand(t *testing.T) {
	cfg := config.Default()
	cfg.Version = "1.16.5"

	res, err := Resolve(cfg, discard())
	require.NoError(t, err)
	assert.Nil(t, res.Command)
}

func TestTokenCommands(t *testing.T) {
	keyring.MockInit()

	out, err := run(t, "token", "set", "Steve", "tok-arg")
	require.NoError(t, err)
	assert.Contains(t, out, "Steve")

	token, err := config.LoadAccessToken("Steve")
	require.NoError(t, err)
	assert.Equal(t, "tok-arg", token)

	rootCmd.SetIn(strings.NewReader("tok-stdin\n"))
	defer rootCmd.SetIn(nil)
	_, err = run(t, "token", "set", "Alex")
	require.NoError(t, err)

	token, err = config.LoadAccessToken("Alex")
	require.NoError(t, err)
	assert.Equal(t, "tok-stdin", token)

	_, err = run(t, "token", "delete", "Steve")
	require.NoError(t, err)
	_, err = config.LoadAccessToken("Steve")
	assert.Error(t, err)
}

func TestArgsCommandUsesStoredToken(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, config.SaveAccessToken("Steve", "from-keyring"))

	path := filepath.Join(t.TempDir(), "launchy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1.16.5\nauth:\n  username: Steve\n  keyring: true\n"), 0644))

	out, err := run(t, "--config", path, "args", "--json")
	require.NoError(t, err)

	var res Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "from-keyring", res.Arguments[argPos(t, res.Arguments, "--accessToken")+1])
}

func argPos(t *testing.T, args []string, flag string) int {
	t.Helper()
	for i, a := range args {
		if a == flag {
			return i
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return -1
}
