package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/obsidianstack/rewardcheck/internal/config"
	"github.com/obsidianstack/rewardcheck/internal/report"
	"github.com/obsidianstack/rewardcheck/internal/reward"
	"github.com/obsidianstack/rewardcheck/internal/table"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	watch := flag.Bool("watch", false, "re-run on every change to the config file")
	flag.Parse()

	setLogger(slog.LevelInfo)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	setLogger(cfg.SlogLevel())

	if err := run(os.Stdout, cfg); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}
	if *configPath == "" {
		slog.Error("-watch needs -config")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Runs stay on this goroutine; the watcher only hands over new configs.
	updates := make(chan *config.Config, 1)
	go func() {
		if err := config.Watch(ctx, *configPath, func(c *config.Config) {
			select {
			case <-updates: // drop a pending config nobody has run yet
			default:
			}
			updates <- c
		}); err != nil {
			slog.Error("config watcher stopped", "err", err)
			cancel()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("rewardcheck shutting down")
			return
		case c := <-updates:
			setLogger(c.SlogLevel())
			if err := run(os.Stdout, c); err != nil {
				slog.Error("run failed", "err", err)
			}
		}
	}
}

func setLogger(level slog.Level) {
	// stdout carries only the result line.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// run generates one table, evaluates it both ways and writes the result line
// to w.
func run(w io.Writer, cfg *config.Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	in := table.Generate(table.NewRand(cfg.Seed), cfg.Size, cfg.Menu.Menu())

	engine := reward.NewEngine(cfg.Rule.Rule())
	res, err := engine.Compare(in)
	if err != nil {
		return err
	}

	slog.Info("compare finished",
		"run_id", res.RunID,
		"rows", res.Rows,
		"equal", res.Equal,
		"favorites", res.Favorites,
		"loop_duration", res.LoopDuration,
		"vector_duration", res.VectorDuration,
	)
	report.LogMismatches(res, cfg.Report.MaxMismatches)

	if cfg.Report.MetricsFile != "" {
		mfs, err := engine.Gather()
		if err != nil {
			return err
		}
		if err := report.WriteMetrics(cfg.Report.MetricsFile, mfs); err != nil {
			return err
		}
		slog.Debug("metrics written", "path", cfg.Report.MetricsFile)
	}

	if err := report.Print(w, res); err != nil {
		return fmt.Errorf("run %s: %w", res.RunID, err)
	}
	return nil
}
