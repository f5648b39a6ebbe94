package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmp(t *testing.T) {
	assert.True(t, VersionLT("1.7.2", "1.7.10"))
	assert.True(t, VersionLTE("1.5.2", "1.5.2"))
	assert.True(t, VersionGT("1.13", "1.12.2"))
	assert.True(t, VersionGTE("1.13.0", "1.13"))
	assert.True(t, VersionEQ("1.8", "1.8.0"))
	assert.True(t, VersionNE("1.8.9", "1.8"))
	assert.True(t, VersionLT("24w10a", "1.0"), "invalid versions sort first")
}

func TestForVersion(t *testing.T) {
	tests := []struct {
		version string
		loader  Loader
		want    *GameType
	}{
		{"1.2.5", LoaderVanilla, V1_5_2Lower},
		{"1.5.2", LoaderVanilla, V1_5_2Lower},
		{"1.6.4", LoaderVanilla, V1_7_2Lower},
		{"1.7.2", LoaderVanilla, V1_7_2Lower},
		{"1.7.10", LoaderVanilla, V1_7_10},
		{"1.8", LoaderVanilla, V1_8Higher},
		{"1.12.2", "", V1_8Higher},
		{"1.13", LoaderVanilla, V1_13HigherVanilla},
		{"1.20.1", LoaderVanilla, V1_13HigherVanilla},
		{"1.20.1", LoaderFabric, V1_13HigherFabric},
		{"1.16.5", LoaderForge, V1_13HigherForge},
	}

	for _, tt := range tests {
		t.Run(tt.version+"/"+string(tt.loader), func(t *testing.T) {
			got, err := ForVersion(tt.version, tt.loader)
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestForVersionErrors(t *testing.T) {
	_, err := ForVersion("24w10a", LoaderVanilla)
	assert.ErrorIs(t, err, ErrUnknownVersion)

	_, err = ForVersion("1.14-pre1", LoaderVanilla)
	assert.ErrorIs(t, err, ErrUnknownVersion)

	_, err = ForVersion("1.12.2", LoaderForge)
	assert.ErrorIs(t, err, ErrUnsupportedLoader)
}

func TestParseLoader(t *testing.T) {
	l, err := ParseLoader(" Forge ")
	require.NoError(t, err)
	assert.Equal(t, LoaderForge, l)

	l, err = ParseLoader("")
	require.NoError(t, err)
	assert.Equal(t, LoaderVanilla, l)

	_, err = ParseLoader("quilt")
	assert.Error(t, err)
}
