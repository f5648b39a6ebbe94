package folder

import (
	"path/filepath"
)

type Directory string

const (
	DirectoryAssets    Directory = "assets"
	DirectoryNatives   Directory = "natives"
	DirectoryLibraries Directory = "libraries"
)

const JAR_FILE = "minecraft.jar"

// GameFolder describes where things live inside a game directory.
// Values are relative to the game directory.
type GameFolder struct {
	Assets    string `json:"assets" yaml:"assets"`
	Libraries string `json:"libraries" yaml:"libraries"`
	Natives   string `json:"natives" yaml:"natives"`
	MainJar   string `json:"mainJar" yaml:"mainJar"`
}

func Default() GameFolder {
	return GameFolder{
		Assets:    string(DirectoryAssets),
		Libraries: string(DirectoryLibraries),
		Natives:   string(DirectoryNatives),
		MainJar:   JAR_FILE,
	}
}

func (f GameFolder) AssetsDir(gameDir string) string {
	return filepath.Join(gameDir, f.Assets)
}

func (f GameFolder) LibrariesDir(gameDir string) string {
	return filepath.Join(gameDir, f.Libraries)
}

func (f GameFolder) NativesDir(gameDir string) string {
	return filepath.Join(gameDir, f.Natives)
}

/////////////////////////////////////////////////////////////////////
// Launch target
/////////////////////////////////////////////////////////////////////

type GameVersion struct {
	Name string `json:"name" yaml:"name"`
}

type GameInfos struct {
	GameDir string      `json:"gameDir" yaml:"gameDir"` // absolute path
	Version GameVersion `json:"version" yaml:"version"`
}

func NewGameInfos(gameDir string, version string) GameInfos {
	return GameInfos{
		GameDir: gameDir,
		Version: GameVersion{Name: version},
	}
}

func (g GameInfos) GetGameDir() string {
	return g.GameDir
}

func (g GameInfos) GetVersion() string {
	return g.Version.Name
}
