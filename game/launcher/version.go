package launcher

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

type Loader string

const (
	LoaderVanilla Loader = "vanilla"
	LoaderFabric  Loader = "fabric"
	LoaderForge   Loader = "forge"
)

func ParseLoader(s string) (Loader, error) {
	switch l := Loader(strings.ToLower(strings.TrimSpace(s))); l {
	case "", LoaderVanilla:
		return LoaderVanilla, nil
	case LoaderFabric, LoaderForge:
		return l, nil
	default:
		return "", fmt.Errorf("invalid loader %q (available: vanilla, fabric, forge)", s)
	}
}

// ForVersion picks the game type whose launch protocol matches the
// given release and loader.
func ForVersion(version string, loader Loader) (*GameType, error) {
	if !IsReleaseVersion(version) {
		return nil, &Error{
			Code:    CodeUnknownVersion,
			Message: fmt.Sprintf("unknown game version %q", version),
		}
	}

	if VersionGTE(version, "1.13") {
		switch loader {
		case "", LoaderVanilla:
			return V1_13HigherVanilla, nil
		case LoaderFabric:
			return V1_13HigherFabric, nil
		case LoaderForge:
			return V1_13HigherForge, nil
		}
	}

	if loader != "" && loader != LoaderVanilla {
		return nil, &Error{
			Code:    CodeUnsupportedLoader,
			Message: fmt.Sprintf("loader %s is not supported for version %s", loader, version),
		}
	}

	switch {
	case VersionLTE(version, "1.5.2"):
		return V1_5_2Lower, nil
	case VersionLTE(version, "1.7.2"):
		return V1_7_2Lower, nil
	case VersionLT(version, "1.8"):
		return V1_7_10, nil
	default:
		return V1_8Higher, nil
	}
}

// IsReleaseVersion reports whether version looks like "1.x" or "1.x.y".
// Snapshots such as "24w10a" are not release versions.
func IsReleaseVersion(version string) bool {
	v := canonical(version)
	return semver.IsValid(v) && semver.Prerelease(v) == "" && semver.Build(v) == ""
}

func VersionLT(a, b string) bool  { return versionCmp(a, b) < 0 }
func VersionLTE(a, b string) bool { return versionCmp(a, b) <= 0 }
func VersionGT(a, b string) bool  { return versionCmp(a, b) > 0 }
func VersionGTE(a, b string) bool { return versionCmp(a, b) >= 0 }
func VersionEQ(a, b string) bool  { return versionCmp(a, b) == 0 }
func VersionNE(a, b string) bool  { return versionCmp(a, b) != 0 }

// versionCmp orders game versions; invalid versions sort before valid ones.
func versionCmp(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

func canonical(version string) string {
	return "v" + strings.TrimPrefix(strings.TrimSpace(version), "v")
}
