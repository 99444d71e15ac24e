package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/obsidianstack/rewardcheck/internal/reward"
	"github.com/obsidianstack/rewardcheck/internal/table"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
size: 250
seed: 42
log_level: debug
menu:
  favorite: ["+cake", "+sushi"]
  hate: ["-liver"]
rule:
  min_time_in_bed: 3
  min_percent_sleeping: 0.25
  senior_age: 80
report:
  metrics_file: /tmp/rewardcheck.prom
  max_mismatches: 5
`
	cfg := loadFromString(t, yaml)

	if cfg.Size != 250 {
		t.Errorf("size: got %d", cfg.Size)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed: got %d", cfg.Seed)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level: got %v", cfg.SlogLevel())
	}
	if !reflect.DeepEqual(cfg.Menu.Favorite, []string{"+cake", "+sushi"}) {
		t.Errorf("menu.favorite: got %v", cfg.Menu.Favorite)
	}
	if !reflect.DeepEqual(cfg.Menu.Hate, []string{"-liver"}) {
		t.Errorf("menu.hate: got %v", cfg.Menu.Hate)
	}
	want := reward.Rule{MinTimeInBed: 3, MinPercentSleeping: 0.25, SeniorAge: 80}
	if got := cfg.Rule.Rule(); got != want {
		t.Errorf("rule: got %+v, want %+v", got, want)
	}
	if cfg.Report.MetricsFile != "/tmp/rewardcheck.prom" {
		t.Errorf("report.metrics_file: got %q", cfg.Report.MetricsFile)
	}
	if cfg.Report.MaxMismatches != 5 {
		t.Errorf("report.max_mismatches: got %d", cfg.Report.MaxMismatches)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "seed: 7\n")

	if cfg.Size != DefaultSize {
		t.Errorf("default size: got %d, want %d", cfg.Size, DefaultSize)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("default log_level: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if got := cfg.Menu.Menu(); !reflect.DeepEqual(got, table.DefaultMenu()) {
		t.Errorf("default menu: got %+v", got)
	}
	if got := cfg.Rule.Rule(); got != reward.DefaultRule() {
		t.Errorf("default rule: got %+v", got)
	}
	if cfg.Report.MaxMismatches != DefaultMaxMismatches {
		t.Errorf("default max_mismatches: got %d", cfg.Report.MaxMismatches)
	}
	if cfg.Report.MetricsFile != "" {
		t.Errorf("default metrics_file: got %q, want empty", cfg.Report.MetricsFile)
	}
}

func TestDefault_PassesValidation(t *testing.T) {
	if err := validate(Default()); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero size", "size: 0\n", "size must be positive"},
		{"negative size", "size: -5\n", "size must be positive"},
		{"unknown log level", "log_level: loud\n", "log_level"},
		{"empty favorite list", "menu:\n  favorite: []\n", "menu.favorite"},
		{"blank hate entry", "menu:\n  hate: [\"-eggs\", \" \"]\n", "menu.hate[1]"},
		{"overlapping menus", "menu:\n  favorite: [\"x\"]\n  hate: [\"x\"]\n", "both a favorite and a hated"},
		{"negative bed threshold", "rule:\n  min_time_in_bed: -1\n", "min_time_in_bed"},
		{"sleep threshold above 1", "rule:\n  min_percent_sleeping: 1.5\n", "min_percent_sleeping"},
		{"negative senior age", "rule:\n  senior_age: -3\n", "senior_age"},
		{"negative max mismatches", "report:\n  max_mismatches: -1\n", "max_mismatches"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadStringErr(t, tc.yaml)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := loadStringErr(t, "size: [unterminated\n")
	if err == nil || !strings.Contains(err.Error(), "config: parse yaml") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "config: read file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tc := range tests {
		cfg := &Config{LogLevel: tc.level}
		if got := cfg.SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestMenuConfig_MenuCopies(t *testing.T) {
	m := MenuConfig{Favorite: []string{"+pizza"}, Hate: []string{"-eggs"}}
	menu := m.Menu()
	menu.Favorite[0] = "+changed"
	if m.Favorite[0] != "+pizza" {
		t.Errorf("Menu() shares storage with the config: %v", m.Favorite)
	}
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return Load(path)
}
