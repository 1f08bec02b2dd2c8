package config_test

import (
	"testing"

	"github.com/antec-lang/antec/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceFileAndFlags(t *testing.T) {
	cfg, err := config.Parse([]string{"-p", "-o", "out", "main.an"})
	require.NoError(t, err)
	assert.Equal(t, "main.an", cfg.SourceFile)
	assert.Equal(t, "out", cfg.OutputFile)
	assert.True(t, cfg.PrintAST)
	assert.False(t, cfg.PrintTokens)
}

func TestParseIncludeDirsRepeatable(t *testing.T) {
	cfg, err := config.Parse([]string{"-I", "/usr/local/lib/ante", "-I", "./vendor", "main.an"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/local/lib/ante", "./vendor"}, cfg.IncludeDir)
}

func TestParseUnknownFlagErrors(t *testing.T) {
	_, err := config.Parse([]string{"--bogus"})
	assert.Error(t, err)
}

func TestFrontEndOnlyNoticeListsOutOfScopeFlags(t *testing.T) {
	cfg, err := config.Parse([]string{"-O", "-r", "main.an"})
	require.NoError(t, err)
	notice := cfg.FrontEndOnlyNotice()
	assert.Contains(t, notice, "-O")
	assert.Contains(t, notice, "-r")
	assert.NotContains(t, notice, "-c")
}

func TestFrontEndOnlyNoticeEmptyWhenNoOutOfScopeFlags(t *testing.T) {
	cfg, err := config.Parse([]string{"-p", "main.an"})
	require.NoError(t, err)
	assert.Empty(t, cfg.FrontEndOnlyNotice())
}

func TestParseBuildLibAndEvalFlags(t *testing.T) {
	cfg, err := config.Parse([]string{"-lib", "-e", "main.an"})
	require.NoError(t, err)
	assert.True(t, cfg.BuildLib)
	assert.True(t, cfg.Evaluate)
	notice := cfg.FrontEndOnlyNotice()
	assert.Contains(t, notice, "-lib")
	assert.Contains(t, notice, "-e")
}
