package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefault_Build(t *testing.T) {
	cfg, err := config.WithDefault().Build()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxPatternLength())
	assert.Equal(t, 2, cfg.MinCommonPrefixLength())
	assert.Contains(t, cfg.AllowedAttributes(), "href")
	assert.Contains(t, cfg.JunkTags(), "script")
	assert.Contains(t, cfg.MainCandidateTags(), "body")
	assert.Contains(t, cfg.NavigationalTags(), "nav")
}

func TestBuild_RejectsInvalidPatternLength(t *testing.T) {
	_, err := config.WithDefault().WithMaxPatternLength(1).Build()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBuild_RejectsInvalidCommonPrefixLength(t *testing.T) {
	_, err := config.WithDefault().WithMinCommonPrefixLength(0).Build()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestWithConfigFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "htmlshape.json")
	content := `{"maxPatternLength": 10, "junkTags": ["script", "style"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.WithConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxPatternLength())
	assert.Equal(t, 2, cfg.MinCommonPrefixLength(), "unset field keeps the default")
	assert.ElementsMatch(t, []string{"script", "style"}, cfg.JunkTags())
}

func TestWithConfigFile_MissingFile(t *testing.T) {
	_, err := config.WithConfigFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, config.ErrFileDoesNotExist)
}

func TestWithConfigFile_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "htmlshape.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := config.WithConfigFile(path)
	assert.ErrorIs(t, err, config.ErrConfigParsingFail)
}

func TestAllowedAttributeSet(t *testing.T) {
	cfg, err := config.WithDefault().Build()
	require.NoError(t, err)
	set := cfg.AllowedAttributeSet()
	assert.True(t, set["href"])
	assert.False(t, set["onclick"])
}
