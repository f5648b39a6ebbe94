package modloader

import (
	"fmt"
	"log"
	"strings"

	"limeal.fr/launchyargs/pkg/connectors"
	"limeal.fr/launchyargs/pkg/jsonreader"
)

const (
	DefaultForgeGroup = "net.minecraftforge"
	ForgeLaunchTarget = "fmlclient"
)

/////////////////////////////////////////////////////////////////////
// Discriminator
/////////////////////////////////////////////////////////////////////

// ForgeVersionDiscriminator identifies a 1.13+ Forge install, which
// modlauncher needs to find the right forge and mcp jars.
type ForgeVersionDiscriminator struct {
	ForgeVersion string `json:"forgeVersion" yaml:"forgeVersion"` // 36.2.39
	MCVersion    string `json:"mcVersion" yaml:"mcVersion"`       // 1.16.5
	ForgeGroup   string `json:"forgeGroup" yaml:"forgeGroup"`     // net.minecraftforge
	MCPVersion   string `json:"mcpVersion" yaml:"mcpVersion"`     // 20210115.111550
}

func NewForgeVersionDiscriminator(forgeVersion, mcVersion, mcpVersion string) *ForgeVersionDiscriminator {
	return &ForgeVersionDiscriminator{
		ForgeVersion: forgeVersion,
		MCVersion:    mcVersion,
		ForgeGroup:   DefaultForgeGroup,
		MCPVersion:   mcpVersion,
	}
}

func (d *ForgeVersionDiscriminator) ForgeArguments() []string {
	if d == nil {
		return nil
	}
	group := d.ForgeGroup
	if group == "" {
		group = DefaultForgeGroup
	}

	return []string{
		"--launchTarget", ForgeLaunchTarget,
		"--fml.forgeVersion", d.ForgeVersion,
		"--fml.mcVersion", d.MCVersion,
		"--fml.forgeGroup", group,
		"--fml.mcpVersion", d.MCPVersion,
	}
}

// DiscriminatorFromArguments reads the --fml.* flags of a Forge version
// manifest back into a discriminator.
func DiscriminatorFromArguments(args []string) (*ForgeVersionDiscriminator, error) {
	d := &ForgeVersionDiscriminator{}
	for i := 0; i < len(args)-1; i++ {
		switch args[i] {
		case "--fml.forgeVersion":
			d.ForgeVersion = args[i+1]
		case "--fml.mcVersion":
			d.MCVersion = args[i+1]
		case "--fml.forgeGroup":
			d.ForgeGroup = args[i+1]
		case "--fml.mcpVersion":
			d.MCPVersion = args[i+1]
		default:
			continue
		}
		i++
	}

	missing := []string{}
	if d.ForgeVersion == "" {
		missing = append(missing, "--fml.forgeVersion")
	}
	if d.MCVersion == "" {
		missing = append(missing, "--fml.mcVersion")
	}
	if d.MCPVersion == "" {
		missing = append(missing, "--fml.mcpVersion")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("forge arguments are missing %s", strings.Join(missing, ", "))
	}

	if d.ForgeGroup == "" {
		d.ForgeGroup = DefaultForgeGroup
	}
	return d, nil
}

/////////////////////////////////////////////////////////////////////
// Static & manifest arguments
/////////////////////////////////////////////////////////////////////

// StaticArguments are appended as given.
type StaticArguments []string

func (s StaticArguments) ForgeArguments() []string {
	return append([]string(nil), s...)
}

// ManifestArguments are the game arguments declared by a Forge version
// manifest (the "arguments.game" array of versions/<id>/<id>.json).
type ManifestArguments struct {
	ID        string
	Arguments []string
}

func (m *ManifestArguments) ForgeArguments() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.Arguments...)
}

// Discriminator extracts the --fml.* flags of the manifest.
func (m *ManifestArguments) Discriminator() (*ForgeVersionDiscriminator, error) {
	return DiscriminatorFromArguments(m.Arguments)
}

// ParseManifestArguments reads a Forge version manifest. Only plain string
// game arguments are kept; rule-based entries are vanilla ones.
func ParseManifestArguments(logger *log.Logger, data []byte) (*ManifestArguments, error) {
	manifest := jsonreader.MapFromBytes[any](logger, data)
	if len(manifest) == 0 {
		return nil, fmt.Errorf("empty or invalid forge manifest")
	}

	id, _ := manifest["id"].(string)
	arguments, ok := manifest["arguments"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("forge manifest %s has no arguments", id)
	}
	game, ok := arguments["game"].([]any)
	if !ok {
		return nil, fmt.Errorf("forge manifest %s has no game arguments", id)
	}

	args := []string{}
	for _, arg := range game {
		if str, ok := arg.(string); ok {
			args = append(args, str)
		}
	}

	return &ManifestArguments{ID: id, Arguments: args}, nil
}

// LoadManifestArguments reads a Forge version manifest from a path or a
// connector uri (file://, http(s)://, sftp://).
func LoadManifestArguments(logger *log.Logger, uri string) (*ManifestArguments, error) {
	data, err := connectors.ReadURI(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to load forge manifest: %w", err)
	}
	return ParseManifestArguments(logger, data)
}
