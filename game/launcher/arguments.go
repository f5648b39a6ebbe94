package launcher

import (
	"path/filepath"
	"reflect"
	"strings"

	"limeal.fr/launchyargs/game/folder"
	"limeal.fr/launchyargs/game/profile"
)

const legacyAssetsSuffix = "/virtual/legacy/"

/////////////////////////////////////////////////////////////////////
// Legacy protocols
/////////////////////////////////////////////////////////////////////

func legacyPositionalArguments(_ *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	return []string{
		auth.Username,
		"token:" + auth.AccessToken + ":" + auth.UUID,
		"--gameDir", gameDir(infos),
		"--assetsDir", f.AssetsDir(infos.GameDir) + legacyAssetsSuffix,
	}, nil
}

func legacyFlaggedArguments(_ *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	return []string{
		"--username=" + auth.Username,
		"--accessToken", auth.AccessToken,
		"--version", infos.Version.Name,
		"--gameDir", gameDir(infos),
		"--assetsDir", f.AssetsDir(infos.GameDir) + legacyAssetsSuffix,
		"--userProperties", "{}",
		"--uuid", auth.UUID,
		"--userType", "legacy",
	}, nil
}

func v1_7_10Arguments(_ *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	return indexedLegacyArguments(infos, f, auth, infos.Version.Name), nil
}

func v1_8Arguments(_ *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	return indexedLegacyArguments(infos, f, auth, PinnedAssetIndex(infos.Version.Name)), nil
}

// indexedLegacyArguments is the 1.7.10 layout, shared with 1.8+.
func indexedLegacyArguments(infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos, assetIndex string) []string {
	args := []string{
		"--username=" + auth.Username,
		"--accessToken", auth.AccessToken,
	}

	if auth.ClientToken != nil {
		args = append(args, "--clientToken", *auth.ClientToken)
	}

	return append(args,
		"--version", infos.Version.Name,
		"--gameDir", gameDir(infos),
		"--assetsDir", f.AssetsDir(infos.GameDir),
		"--assetIndex", assetIndex,
		"--userProperties", "{}",
		"--uuid", auth.UUID,
		"--userType", "legacy",
	)
}

/////////////////////////////////////////////////////////////////////
// 1.13+ protocol
/////////////////////////////////////////////////////////////////////

func vanillaArguments(_ *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	return newVanillaArguments(infos, f, auth), nil
}

func forgeArguments(g *GameType, infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) ([]string, error) {
	if !g.hasModLoader() {
		return nil, &Error{
			Code:    CodeModLoaderMissing,
			Message: "game type " + g.name + " needs mod-loader arguments, attach them with WithModLoader",
		}
	}

	args := newVanillaArguments(infos, f, auth)
	return append(args, g.modLoader.ForgeArguments()...), nil
}

// hasModLoader also rejects a nil pointer stored in the interface.
func (g *GameType) hasModLoader() bool {
	if g.modLoader == nil {
		return false
	}
	v := reflect.ValueOf(g.modLoader)
	return v.Kind() != reflect.Pointer || !v.IsNil()
}

func newVanillaArguments(infos folder.GameInfos, f folder.GameFolder, auth profile.AuthInfos) []string {
	return []string{
		"--username", auth.Username,
		"--version", infos.Version.Name,
		"--gameDir", gameDir(infos),
		"--assetsDir", f.AssetsDir(infos.GameDir),
		"--assetIndex", AssetIndex(infos.Version.Name),
		"--uuid", auth.UUID,
		"--accessToken", auth.AccessToken,
		"--userType", "mojang",
		"--versionType", "release",
	}
}

// gameDir is cleaned like the paths joined under it, so "/games/mc/"
// and its assets dir stay consistent.
func gameDir(infos folder.GameInfos) string {
	if infos.GameDir == "" {
		return ""
	}
	return filepath.Clean(infos.GameDir)
}

/////////////////////////////////////////////////////////////////////
// Asset index
/////////////////////////////////////////////////////////////////////

// AssetIndex cuts the version before its last dot: "1.13.2" -> "1.13".
// A version without any dot is returned as is.
func AssetIndex(version string) string {
	if i := strings.LastIndex(version, "."); i >= 0 {
		return version[:i]
	}
	return version
}

// PinnedAssetIndex is the asset index used by the 1.8+ protocol. The
// version is only cut when it has at least two dots, and 1.13.1/1.13.2
// both use the 1.13.1 index.
func PinnedAssetIndex(version string) string {
	if version == "1.13.1" || version == "1.13.2" {
		return "1.13.1"
	}

	if strings.Index(version, ".") != strings.LastIndex(version, ".") {
		return version[:strings.LastIndex(version, ".")]
	}
	return version
}
