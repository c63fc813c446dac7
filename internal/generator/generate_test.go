package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemplates lays out a minimal base + profiles tree and returns Options
// pointing at it.
func writeTemplates(t *testing.T, base, laptop string) Options {
	t.Helper()
	dir := t.TempDir()

	profiles := filepath.Join(dir, "profiles")
	require.NoError(t, os.MkdirAll(profiles, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.json"), []byte(base), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(profiles, "laptop.json"), []byte(laptop), 0644))

	return Options{
		Profile:     "laptop",
		BaseFile:    filepath.Join(dir, "base.json"),
		ProfilesDir: profiles,
		OutputFile:  filepath.Join(dir, "out", "settings.json"),
	}
}

func TestGenerateProducesValidJSON(t *testing.T) {
	t.Setenv("AICTL_TEST_KEY", "secret")
	opts := writeTemplates(t,
		`{"env": {"KEY": "${AICTL_TEST_KEY}"}, "telemetry": false}`,
		`{"telemetry": true}`,
	)

	require.NoError(t, Generate(opts))

	data, err := os.ReadFile(opts.OutputFile)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, true, parsed["telemetry"], "profile overrides base")
	assert.Equal(t, "secret", parsed["env"].(map[string]any)["KEY"])
	assert.NotContains(t, string(data), "${", "no placeholders remain")
}

func TestGenerateIdempotent(t *testing.T) {
	t.Setenv("AICTL_TEST_KEY", "secret")
	opts := writeTemplates(t,
		`{"b": "${AICTL_TEST_KEY}", "a": {"z": 1, "y": 2}}`,
		`{"a": {"y": 3}}`,
	)

	require.NoError(t, Generate(opts))
	first, err := os.ReadFile(opts.OutputFile)
	require.NoError(t, err)

	require.NoError(t, Generate(opts))
	second, err := os.ReadFile(opts.OutputFile)
	require.NoError(t, err)

	assert.Equal(t, first, second, "unchanged inputs produce byte-identical output")
}

func TestGenerateMissingTemplateIsFatal(t *testing.T) {
	opts := writeTemplates(t, `{}`, `{}`)
	opts.BaseFile = filepath.Join(t.TempDir(), "nope.json")

	err := Generate(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template")
}

func TestGenerateMissingProfileFileIsFatal(t *testing.T) {
	opts := writeTemplates(t, `{}`, `{}`)
	opts.Profile = "server" // no server.json written

	require.Error(t, Generate(opts))
}

func TestGenerateMissingRequiredVars(t *testing.T) {
	opts := writeTemplates(t, `{"k": "${AICTL_TEST_UNSET_ONE}"}`, `{}`)
	opts.RequiredVars = []string{"AICTL_TEST_UNSET_ONE", "AICTL_TEST_UNSET_TWO"}

	err := Generate(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AICTL_TEST_UNSET_ONE")
	assert.Contains(t, err.Error(), "AICTL_TEST_UNSET_TWO")

	_, statErr := os.Stat(opts.OutputFile)
	assert.True(t, os.IsNotExist(statErr), "nothing written on failure")
}

func TestGenerateForceContinuesPastMissingVars(t *testing.T) {
	opts := writeTemplates(t, `{"k": "v"}`, `{}`)
	opts.RequiredVars = []string{"AICTL_TEST_UNSET_ONE"}
	opts.Force = true

	require.NoError(t, Generate(opts))
}

func TestGenerateInvalidTemplateJSON(t *testing.T) {
	opts := writeTemplates(t, `{not json`, `{}`)
	err := Generate(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestResolveProfile(t *testing.T) {
	t.Setenv("CLAUDE_PLATFORM", "")

	p, err := ResolveProfile("")
	require.NoError(t, err)
	assert.Equal(t, "laptop", p, "default profile")

	p, err = ResolveProfile("server")
	require.NoError(t, err)
	assert.Equal(t, "server", p)

	t.Setenv("CLAUDE_PLATFORM", "server")
	p, err = ResolveProfile("")
	require.NoError(t, err)
	assert.Equal(t, "server", p, "CLAUDE_PLATFORM drives the default")

	p, err = ResolveProfile("laptop")
	require.NoError(t, err)
	assert.Equal(t, "laptop", p, "explicit argument beats the environment")

	_, err = ResolveProfile("desktop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
}

func TestLoadEnvFilePlusEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("AICTL_TEST_FROM_FILE=file\nAICTL_TEST_SHARED=file\n"), 0644))

	t.Setenv("AICTL_TEST_SHARED", "process")

	vars, err := LoadEnv(envFile)
	require.NoError(t, err)
	assert.Equal(t, "file", vars["AICTL_TEST_FROM_FILE"])
	assert.Equal(t, "process", vars["AICTL_TEST_SHARED"], "process environment wins")
}

func TestUnsetVarsCountsEnvFileValues(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("AICTL_TEST_FILE_ONLY=from-file\n"), 0644))

	vars, err := LoadEnv(envFile)
	require.NoError(t, err)

	// A variable supplied only by the .env file is set, not missing.
	unset := UnsetVars(vars, []string{"AICTL_TEST_FILE_ONLY", "AICTL_TEST_UNSET_ONE"})
	assert.Equal(t, []string{"AICTL_TEST_UNSET_ONE"}, unset)
}

func TestLoadEnvMissingFileIsFine(t *testing.T) {
	vars, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.NotEmpty(t, vars, "process environment still loaded")
}

func TestGenerateEndToEndScenario(t *testing.T) {
	// CLAUDE_PLATFORM=server with required vars unset: the profile
	// resolves to server and generation fails with an explicit list
	// instead of silently writing a broken config.
	t.Setenv("CLAUDE_PLATFORM", "server")

	profile, err := ResolveProfile("")
	require.NoError(t, err)
	require.Equal(t, "server", profile)

	dir := t.TempDir()
	profiles := filepath.Join(dir, "profiles")
	require.NoError(t, os.MkdirAll(profiles, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.json"), []byte(`{"k": "${AICTL_TEST_UNSET_ONE}"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(profiles, "server.json"), []byte(`{}`), 0644))

	err = Generate(Options{
		Profile:      profile,
		BaseFile:     filepath.Join(dir, "base.json"),
		ProfilesDir:  profiles,
		OutputFile:   filepath.Join(dir, "settings.json"),
		RequiredVars: []string{"AICTL_TEST_UNSET_ONE"},
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing required variables"))
}
