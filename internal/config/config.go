package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/obsidianstack/rewardcheck/internal/reward"
	"github.com/obsidianstack/rewardcheck/internal/table"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultSize          = 10
	DefaultLogLevel      = "info"
	DefaultMaxMismatches = 20
)

// Config is the full run configuration. Fields map 1:1 to config.example.yaml.
type Config struct {
	// Size is the number of rows to generate.
	Size int `yaml:"size"`

	// Seed seeds the generator. 0 means a fresh time-based seed on every run.
	Seed int64 `yaml:"seed"`

	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	Menu   MenuConfig   `yaml:"menu"`
	Rule   RuleConfig   `yaml:"rule"`
	Report ReportConfig `yaml:"report"`
}

// MenuConfig lists the foods the generator picks from.
// A list given in the file replaces the default list entirely.
type MenuConfig struct {
	Favorite []string `yaml:"favorite"`
	Hate     []string `yaml:"hate"`
}

// Menu converts m to the generator's menu type.
func (m MenuConfig) Menu() table.Menu {
	return table.Menu{
		Favorite: append([]string(nil), m.Favorite...),
		Hate:     append([]string(nil), m.Hate...),
	}
}

// RuleConfig holds the reward condition thresholds.
type RuleConfig struct {
	// MinTimeInBed is exclusive: time_in_bed must be greater than this.
	MinTimeInBed int `yaml:"min_time_in_bed"`

	// MinPercentSleeping is exclusive, in [0, 1].
	MinPercentSleeping float64 `yaml:"min_percent_sleeping"`

	// SeniorAge is inclusive: age >= SeniorAge is always rewarded.
	SeniorAge int `yaml:"senior_age"`
}

// Rule converts r to the evaluator's rule type.
func (r RuleConfig) Rule() reward.Rule {
	return reward.Rule{
		MinTimeInBed:       r.MinTimeInBed,
		MinPercentSleeping: r.MinPercentSleeping,
		SeniorAge:          r.SeniorAge,
	}
}

// ReportConfig controls what is written besides the result line.
type ReportConfig struct {
	// MetricsFile, when set, receives the run's metrics in Prometheus text
	// exposition format. The file is replaced on every run.
	MetricsFile string `yaml:"metrics_file"`

	// MaxMismatches caps how many differing cells are logged when the two
	// methods disagree. 0 disables the listing.
	MaxMismatches int `yaml:"max_mismatches"`
}

// SlogLevel returns the slog level named by LogLevel.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	menu := table.DefaultMenu()
	rule := reward.DefaultRule()
	return &Config{
		Size:     DefaultSize,
		LogLevel: DefaultLogLevel,
		Menu: MenuConfig{
			Favorite: menu.Favorite,
			Hate:     menu.Hate,
		},
		Rule: RuleConfig{
			MinTimeInBed:       rule.MinTimeInBed,
			MinPercentSleeping: rule.MinPercentSleeping,
			SeniorAge:          rule.SeniorAge,
		},
		Report: ReportConfig{
			MaxMismatches: DefaultMaxMismatches,
		},
	}
}

// validate checks ranges and structural constraints.
func validate(cfg *Config) error {
	if cfg.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", cfg.Size)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q unknown: want debug|info|warn|error", cfg.LogLevel)
	}

	if err := validateFoods("menu.favorite", cfg.Menu.Favorite); err != nil {
		return err
	}
	if err := validateFoods("menu.hate", cfg.Menu.Hate); err != nil {
		return err
	}
	// Rewards are counted by comparing against favorite_food, so the two
	// lists must not share a value.
	for _, f := range cfg.Menu.Favorite {
		for _, h := range cfg.Menu.Hate {
			if f == h {
				return fmt.Errorf("menu: %q is both a favorite and a hated food", f)
			}
		}
	}

	if cfg.Rule.MinTimeInBed < 0 {
		return fmt.Errorf("rule.min_time_in_bed must not be negative")
	}
	if cfg.Rule.MinPercentSleeping < 0 || cfg.Rule.MinPercentSleeping > 1 {
		return fmt.Errorf("rule.min_percent_sleeping %v is out of range [0, 1]", cfg.Rule.MinPercentSleeping)
	}
	if cfg.Rule.SeniorAge < 0 {
		return fmt.Errorf("rule.senior_age must not be negative")
	}

	if cfg.Report.MaxMismatches < 0 {
		return fmt.Errorf("report.max_mismatches must not be negative")
	}
	return nil
}

func validateFoods(field string, foods []string) error {
	if len(foods) == 0 {
		return fmt.Errorf("%s must list at least one food", field)
	}
	for i, f := range foods {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%s[%d]: food name is required", field, i)
		}
	}
	return nil
}
