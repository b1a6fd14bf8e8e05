package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/metamap/internal/cli"
	"github.com/UnknownOlympus/metamap/internal/config"
	"github.com/UnknownOlympus/metamap/internal/console"
	"github.com/UnknownOlympus/metamap/internal/geo"
	"github.com/UnknownOlympus/metamap/internal/maps"
	"github.com/UnknownOlympus/metamap/internal/metadata"
	"github.com/UnknownOlympus/metamap/internal/metrics"
	"github.com/UnknownOlympus/metamap/internal/report"
	"github.com/UnknownOlympus/metamap/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	os.Exit(run(os.Args[1:]))
}

// run wires the application together and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Usage errors are reported before the environment is consulted.
	parsed, err := cli.Parse(args)
	if err != nil {
		console.NewPrinter(os.Stderr, isTerminal(os.Stderr)).Log(console.Error, "%s", err)
		return 1
	}

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	printer := console.NewPrinter(os.Stdout, !parsed.NoColor && isTerminal(os.Stdout))
	if !parsed.NoBanner {
		printer.Banner()
	}

	links, err := maps.NewLinkBuilder(cfg.MapsHost)
	if err != nil {
		printer.Log(console.Error, "%s", err)
		return 1
	}

	if cfg.MakerNotes {
		metadata.RegisterMakerNotes()
	}

	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	locator := service.NewLocatorService(
		logger,
		metadata.NewReader(metadata.OSSource{}, logger),
		geo.NewExtractor(logger),
		printer,
		report.NewReporter(printer, links),
		appMetrics,
	)

	logger.DebugContext(ctx, "Processing images", "count", len(parsed.Images), "full", parsed.Full)
	locator.Run(ctx, parsed.Images, parsed.Full)

	if cfg.Pushgateway != "" {
		if err = metrics.Push(ctx, cfg.Pushgateway, reg, cfg.PushTimeout); err != nil {
			logger.WarnContext(ctx, "Metrics push failed", "error", err)
		}
	}

	return 0
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr so they never mix with the report on stdout.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelError,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
