// Package config loads and watches the optional run configuration file.
//
// Top-level types:
//   - Config: size, seed, log_level, menu, rule, report
//   - MenuConfig: favorite / hate food lists; Menu() converts to table.Menu
//   - RuleConfig: min_time_in_bed, min_percent_sleeping, senior_age;
//     Rule() converts to reward.Rule
//   - ReportConfig: metrics_file, max_mismatches
//
// Default() returns the built-in configuration used when no file is given:
// 10 rows, time-based seed, info logging, the standard menu and thresholds.
// Load(path) reads the YAML file on top of those defaults, then validates
// ranges and enums.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. It re-adds the watch after every
// event so atomic-save editors (write to temp file, rename over) keep working.
package config
