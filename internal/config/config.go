package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ankivoice/ankivoice/internal/srs"
)

// Config is the full application configuration, assembled from defaults,
// an optional YAML file, and ANKIVOICE_* environment variables.
type Config struct {
	DBPath string `mapstructure:"db_path"`

	SRS   SRS   `mapstructure:"srs"`
	LLM   LLM   `mapstructure:"llm"`
	Study Study `mapstructure:"study"`
}

// SRS holds the scheduling tunables.
type SRS struct {
	InitialInterval    int     `mapstructure:"initial_interval"`
	EaseFactorMin      float64 `mapstructure:"ease_factor_min"`
	EaseFactorMax      float64 `mapstructure:"ease_factor_max"`
	EaseFactorDefault  float64 `mapstructure:"ease_factor_default"`
	IntervalMultiplier float64 `mapstructure:"interval_multiplier"`
	MaxInterval        int     `mapstructure:"max_interval"`
}

// Params converts the config section to scheduler parameters.
// Invalid values fall back to defaults inside the scheduler.
func (s SRS) Params() srs.Params {
	return srs.Params{
		InitialInterval:    s.InitialInterval,
		EaseMin:            s.EaseFactorMin,
		EaseMax:            s.EaseFactorMax,
		EaseDefault:        s.EaseFactorDefault,
		IntervalMultiplier: s.IntervalMultiplier,
		MaxInterval:        s.MaxInterval,
	}
}

// LLM selects and configures the language model provider.
type LLM struct {
	Provider string `mapstructure:"provider"` // anthropic, openai, gemini, ollama, mock

	Anthropic ProviderConfig `mapstructure:"anthropic"`
	OpenAI    ProviderConfig `mapstructure:"openai"`
	Gemini    ProviderConfig `mapstructure:"gemini"`
	Ollama    ProviderConfig `mapstructure:"ollama"`

	MaxAttempts int           `mapstructure:"max_attempts"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ProviderConfig holds per-provider connection settings.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Study controls session shape and grading thresholds.
type Study struct {
	QuestionsPerCard    int     `mapstructure:"questions_per_card"`
	MaxQuestionsPerCard int     `mapstructure:"max_questions_per_card"`
	BatchSize           int     `mapstructure:"batch_size"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
}

// Load reads configuration. A .env file in the working directory is
// applied first (missing file is fine), then the YAML config file, then
// environment variables override everything.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configDirs() {
		v.AddConfigPath(dir)
	}

	setDefaults(v)

	v.SetEnvPrefix("ANKIVOICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Standard provider key env vars win over file-configured keys, so a
	// plain `export ANTHROPIC_API_KEY=...` is enough to get started.
	applyKeyEnvOverrides(&cfg.LLM)

	if cfg.DBPath == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = p
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("srs.initial_interval", 1)
	v.SetDefault("srs.ease_factor_min", 1.3)
	v.SetDefault("srs.ease_factor_max", 4.0)
	v.SetDefault("srs.ease_factor_default", 2.5)
	v.SetDefault("srs.interval_multiplier", 2.5)
	v.SetDefault("srs.max_interval", 365)

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.anthropic.model", "claude-haiku")
	v.SetDefault("llm.openai.model", "gpt-4o-mini")
	v.SetDefault("llm.gemini.model", "gemini-flash")
	v.SetDefault("llm.ollama.model", "gemma3:4b")
	v.SetDefault("llm.ollama.base_url", "http://localhost:11434/v1")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.timeout", "30s")

	v.SetDefault("study.questions_per_card", 3)
	v.SetDefault("study.max_questions_per_card", 10)
	v.SetDefault("study.batch_size", 20)
	v.SetDefault("study.confidence_threshold", 0.7)
}

// applyKeyEnvOverrides reads the conventional provider key variables.
// When no provider is selected, the first key found picks one
// (ollama last: it needs no key, so it is the fallback).
func applyKeyEnvOverrides(llm *LLM) {
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		llm.Anthropic.APIKey = k
		if llm.Provider == "" {
			llm.Provider = "anthropic"
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		llm.OpenAI.APIKey = k
		if llm.Provider == "" {
			llm.Provider = "openai"
		}
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		llm.Gemini.APIKey = k
		if llm.Provider == "" {
			llm.Provider = "gemini"
		}
	}
	if llm.Provider == "" {
		llm.Provider = "ollama"
	}
}

// configDirs returns the search path for config.yaml: the working
// directory first, then $XDG_CONFIG_HOME/ankivoice (or ~/.config/ankivoice).
func configDirs() []string {
	dirs := []string{"."}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		dirs = append(dirs, filepath.Join(configHome, "ankivoice"))
	}
	return dirs
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ANKIVOICE_DB environment variable
// 2. $XDG_DATA_HOME/ankivoice/ankivoice.db
// 3. ~/.local/share/ankivoice/ankivoice.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ANKIVOICE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "ankivoice", "ankivoice.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
