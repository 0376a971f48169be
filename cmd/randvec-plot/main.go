package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"nethermath/internal/config"
	"nethermath/internal/log"
	"nethermath/internal/plot"
	"nethermath/internal/profiling"

	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML plot config")
	outDir := flag.String("out", "", "output directory (overrides config)")
	samples := flag.Int("n", 0, "samples per distribution (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *samples > 0 {
		cfg.Samples = *samples
	}
	cfg.Clamp()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(level)
	closer.Bind(func() { _ = logger.Sync() })
	defer closer.Close()

	if err := run(cfg, logger, profiling.Default); err != nil {
		logger.Error("plot failed", zap.Error(err))
		closer.Exit(1)
	}
}

func run(cfg config.PlotConfig, logger *log.Logger, rec *profiling.Recorder) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	logger.Info("sampling",
		zap.Int("samples", cfg.Samples),
		zap.Strings("distributions", cfg.Distributions),
		zap.String("out", cfg.OutputDir))

	capAngle := cfg.CapAngleDegrees * math.Pi / 180
	for _, name := range cfg.Distributions {
		l := logger.With(zap.String("distribution", name))

		stop := rec.Track("sample." + name)
		b, err := sample(name, cfg.Samples, capAngle)
		stop()
		if err != nil {
			return err
		}

		stop = rec.Track("plot." + name)
		img := plot.Scatter(cfg.ImageSize, b.panels()...)
		stop()

		path := filepath.Join(cfg.OutputDir, name+".png")
		if err := plot.WritePNG(path, img); err != nil {
			return err
		}

		s := b.summary()
		l.Info("wrote plot",
			zap.String("file", path),
			zap.Float64("mean_len", s.MeanLen),
			zap.Float64("min_y", s.MinY),
			zap.Float64("max_y", s.MaxY))
	}

	logger.Info("done",
		zap.Duration("sampling", rec.SumWithPrefix("sample.")),
		zap.String("slowest", rec.TopN(3)))
	return nil
}
