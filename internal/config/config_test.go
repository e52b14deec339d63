package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/aistudio-primer/internal/playground"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"AISTUDIO_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearKeyEnv(t)
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Models.Fast)
	assert.Equal(t, "gemini-3-pro-preview", cfg.Models.Advanced)
	assert.Equal(t, "fast", cfg.Playground.Model)
	assert.Equal(t, playground.DefaultMessages(), cfg.Messages())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.APIKey)
	assert.False(t, cfg.UsesVertex())
}

func TestLoad_APIKeyFromEnv(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("API_KEY", " AIzaTestKey123456 ")

	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "AIzaTestKey123456", cfg.APIKey)
	assert.Equal(t, "AIza*********3456", cfg.MaskedAPIKey())
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("AISTUDIO_MODELS_FAST", "gemini-custom")
	t.Setenv("AISTUDIO_PLAYGROUND_MODEL", "advanced")

	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "gemini-custom", cfg.Models.Fast)
	m, err := cfg.PlaygroundModel()
	require.NoError(t, err)
	assert.Equal(t, playground.ModelAdvanced, m)
	assert.Equal(t, "gemini-custom", cfg.Gemini().FastModel)
}

func TestReadFile(t *testing.T) {
	clearKeyEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "api_key": "from-file",
  "vertex": {"project": "demo-proj", "location": "asia-east1"},
  "log": {"level": "debug"}
}`), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, ReadFile(v))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.True(t, cfg.UsesVertex())
	assert.Equal(t, "asia-east1", cfg.Gemini().Location)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestReadFile_MissingIsFine(t *testing.T) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(t.TempDir())
	assert.NoError(t, ReadFile(v))
}

func TestReadFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": `), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	assert.Error(t, ReadFile(v))
}

func TestMaskedAPIKey(t *testing.T) {
	assert.Equal(t, "", (&Config{}).MaskedAPIKey())
	assert.Equal(t, "*****", (&Config{APIKey: "short"}).MaskedAPIKey())
}

func TestValidate(t *testing.T) {
	clearKeyEnv(t)
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	require.NoError(t, err)

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "api_key", errs[0].Field)

	cfg.APIKey = "k"
	assert.Empty(t, Validate(cfg))

	cfg.APIKey = ""
	cfg.Vertex.Project = "p"
	assert.Empty(t, Validate(cfg), "vertex uses ambient credentials")

	bad := &Config{
		APIKey:     "k",
		Playground: PlaygroundConfig{Model: "turbo"},
		Log:        LogConfig{Level: "loud"},
	}
	fields := map[string]bool{}
	for _, e := range Validate(bad) {
		fields[e.Field] = true
		assert.NotEmpty(t, e.Error())
	}
	assert.True(t, fields["models.fast"])
	assert.True(t, fields["models.advanced"])
	assert.True(t, fields["playground.model"])
	assert.True(t, fields["log.level"])
}
