package launcher

import (
	"fmt"

	"limeal.fr/launchyargs/game/folder"
	"limeal.fr/launchyargs/game/profile"
)

const (
	LegacyMainClass = "net.minecraft.launchwrapper.Launch"
	ClientMainClass = "net.minecraft.client.main.Main"
	FabricMainClass = "net.fabricmc.loader.launch.knot.KnotClient"
	ForgeMainClass  = "cpw.mods.modlauncher.Launcher"
)

// ModLoaderArguments supplies the extra arguments a mod-loader bootstrap
// expects after the vanilla ones.
type ModLoaderArguments interface {
	ForgeArguments() []string
}

type argumentsBuilder func(g *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error)

// GameType is the launch protocol of one family of game versions:
// which main class to run and which arguments to give it.
//
// The set of game types is closed, see All. Two game types are the same
// when their names are equal.
type GameType struct {
	name      string
	mainClass string
	build     argumentsBuilder

	modLoader ModLoaderArguments
}

var (
	V1_5_2Lower = &GameType{
		name:      "1.5.2 or lower",
		mainClass: LegacyMainClass,
		build:     legacyPositionalArguments,
	}

	V1_7_2Lower = &GameType{
		name:      "1.7.2 or lower",
		mainClass: ClientMainClass,
		build:     legacyFlaggedArguments,
	}

	V1_7_10 = &GameType{
		name:      "1.7.10",
		mainClass: ClientMainClass,
		build:     v1_7_10Arguments,
	}

	V1_8Higher = &GameType{
		name:      "1.8 or higher",
		mainClass: ClientMainClass,
		build:     v1_8Arguments,
	}

	V1_13HigherVanilla = &GameType{
		name:      "1.13.x or higer",
		mainClass: ClientMainClass,
		build:     vanillaArguments,
	}

	V1_13HigherFabric = &GameType{
		name:      "1.13.x or higer with Fabric",
		mainClass: FabricMainClass,
		build:     vanillaArguments,
	}

	V1_13HigherForge = &GameType{
		name:      "1.13.x or higher with Forge",
		mainClass: ForgeMainClass,
		build:     forgeArguments,
	}
)

// All returns every known game type, oldest protocol first.
func All() []*GameType {
	return []*GameType{
		V1_5_2Lower,
		V1_7_2Lower,
		V1_7_10,
		V1_8Higher,
		V1_13HigherVanilla,
		V1_13HigherFabric,
		V1_13HigherForge,
	}
}

// Lookup finds a registered game type by name.
func Lookup(name string) (*GameType, error) {
	for _, gt := range All() {
		if gt.name == name {
			return gt, nil
		}
	}
	return nil, &Error{
		Code:    CodeUnknownGameType,
		Message: fmt.Sprintf("unknown game type %q", name),
	}
}

func (g *GameType) Name() string {
	return g.name
}

func (g *GameType) String() string {
	return g.name
}

// MainClass returns the class the JVM must run for this game type.
func (g *GameType) MainClass(infos folder.GameInfos) string {
	return g.mainClass
}

// LaunchArgs builds the game arguments, in order. The returned slice
// belongs to the caller.
func (g *GameType) LaunchArgs(infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	return g.build(g, infos, f, auth)
}

// Equal compares game types by name only.
func (g *GameType) Equal(other *GameType) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.name == other.name
}

// WithModLoader returns a copy of the game type with the mod-loader
// arguments attached. The receiver is left untouched.
func (g *GameType) WithModLoader(modLoader ModLoaderArguments) *GameType {
	c := *g
	c.modLoader = modLoader
	return &c
}

func (g *GameType) ModLoader() ModLoaderArguments {
	return g.modLoader
}
