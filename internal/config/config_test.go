package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp moves the test into an empty directory so no stray
// config.yaml or .env is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	clearProviderEnv(t)
	t.Setenv("ANKIVOICE_DB", filepath.Join(t.TempDir(), "test.db"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SRS.EaseFactorDefault != 2.5 {
		t.Errorf("ease_factor_default = %v, want 2.5", cfg.SRS.EaseFactorDefault)
	}
	if cfg.SRS.MaxInterval != 365 {
		t.Errorf("max_interval = %d, want 365", cfg.SRS.MaxInterval)
	}
	if cfg.Study.QuestionsPerCard != 3 {
		t.Errorf("questions_per_card = %d, want 3", cfg.Study.QuestionsPerCard)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("provider with no keys = %q, want ollama fallback", cfg.LLM.Provider)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	clearProviderEnv(t)
	t.Setenv("ANKIVOICE_DB", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("ANKIVOICE_SRS_MAX_INTERVAL", "180")
	t.Setenv("ANKIVOICE_LLM_PROVIDER", "mock")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SRS.MaxInterval != 180 {
		t.Errorf("max_interval = %d, want 180 from env", cfg.SRS.MaxInterval)
	}
	if cfg.LLM.Provider != "mock" {
		t.Errorf("provider = %q, want mock from env", cfg.LLM.Provider)
	}
}

func TestLoad_ProviderKeyAutodetect(t *testing.T) {
	chdirTemp(t)
	clearProviderEnv(t)
	t.Setenv("ANKIVOICE_DB", filepath.Join(t.TempDir(), "test.db"))
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LLM.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic from key autodetect", cfg.LLM.Provider)
	}
	if cfg.LLM.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key not picked up from env")
	}
}

func TestSRSParams_RoundTrip(t *testing.T) {
	s := SRS{
		InitialInterval:    2,
		EaseFactorMin:      1.4,
		EaseFactorMax:      3.5,
		EaseFactorDefault:  2.2,
		IntervalMultiplier: 2.0,
		MaxInterval:        200,
	}

	p := s.Params()
	if p.InitialInterval != 2 || p.EaseMin != 1.4 || p.EaseMax != 3.5 ||
		p.EaseDefault != 2.2 || p.MaxInterval != 200 {
		t.Errorf("Params() = %+v, want field-for-field copy of %+v", p, s)
	}
}

func TestDefaultDBPath_EnvWins(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "my.db")
	t.Setenv("ANKIVOICE_DB", p)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != p {
		t.Errorf("DefaultDBPath = %q, want %q", got, p)
	}
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}
