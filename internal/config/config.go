package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Dallionking/aistudio-primer/internal/gemini"
	"github.com/Dallionking/aistudio-primer/internal/playground"
)

// EnvPrefix is prepended to every config key looked up in the environment,
// e.g. AISTUDIO_MODELS_FAST.
const EnvPrefix = "AISTUDIO"

// Config is the effective runtime configuration.
type Config struct {
	APIKey     string           `json:"-" mapstructure:"api_key"`
	Models     ModelsConfig     `json:"models" mapstructure:"models"`
	Vertex     VertexConfig     `json:"vertex" mapstructure:"vertex"`
	Playground PlaygroundConfig `json:"playground" mapstructure:"playground"`
	Log        LogConfig        `json:"log" mapstructure:"log"`
}

// ModelsConfig maps the fast/advanced selectors to hosted model ids.
type ModelsConfig struct {
	Fast     string `json:"fast" mapstructure:"fast"`
	Advanced string `json:"advanced" mapstructure:"advanced"`
}

// VertexConfig switches the completion backend to Vertex AI when Project is set.
type VertexConfig struct {
	Project  string `json:"project" mapstructure:"project"`
	Location string `json:"location" mapstructure:"location"`
}

// PlaygroundConfig holds the live demo settings.
type PlaygroundConfig struct {
	Model      string `json:"model" mapstructure:"model"`
	NoResponse string `json:"noResponse" mapstructure:"no_response"`
	Failure    string `json:"failure" mapstructure:"failure"`
}

// LogConfig controls slog output. File is only used by the TUI, which cannot
// log to the terminal it draws on.
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	msgs := playground.DefaultMessages()

	v.SetDefault("models.fast", gemini.DefaultFastModel)
	v.SetDefault("models.advanced", gemini.DefaultAdvancedModel)
	v.SetDefault("vertex.project", "")
	v.SetDefault("vertex.location", "")
	v.SetDefault("playground.model", playground.ModelFast.String())
	v.SetDefault("playground.no_response", msgs.NoResponse)
	v.SetDefault("playground.failure", msgs.Failure)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The key is conventionally exported without our prefix.
	_ = v.BindEnv("api_key", EnvPrefix+"_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY")
}

// Load decodes the effective configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	return &cfg, nil
}

// ReadFile reads the config file v was pointed at. A missing file is not an
// error; defaults and the environment still apply.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("reading config file: %w", err)
}

// Gemini converts the config into completion client settings.
func (c *Config) Gemini() gemini.Config {
	return gemini.Config{
		APIKey:        c.APIKey,
		Project:       c.Vertex.Project,
		Location:      c.Vertex.Location,
		FastModel:     c.Models.Fast,
		AdvancedModel: c.Models.Advanced,
	}
}

// Messages returns the playground substitution texts.
func (c *Config) Messages() playground.Messages {
	return playground.Messages{
		NoResponse: c.Playground.NoResponse,
		Failure:    c.Playground.Failure,
	}
}

// PlaygroundModel parses playground.model.
func (c *Config) PlaygroundModel() (playground.Model, error) {
	return playground.ParseModel(c.Playground.Model)
}

// UsesVertex reports whether completions go through Vertex AI.
func (c *Config) UsesVertex() bool {
	return strings.TrimSpace(c.Vertex.Project) != ""
}

// MaskedAPIKey returns the key with all but its first and last four
// characters hidden, or "" when unset.
func (c *Config) MaskedAPIKey() string {
	k := c.APIKey
	switch {
	case k == "":
		return ""
	case len(k) <= 8:
		return strings.Repeat("*", len(k))
	default:
		return k[:4] + strings.Repeat("*", len(k)-8) + k[len(k)-4:]
	}
}
