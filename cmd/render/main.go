package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/splitlayout/internal/blueprint"
	"github.com/GriffinCanCode/splitlayout/internal/dom"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/config"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/logging"
	"github.com/GriffinCanCode/splitlayout/internal/infrastructure/monitoring"
)

func main() {
	cfg := config.LoadOrDefault()

	// Flags override the environment
	pattern := flag.String("pattern", cfg.Render.Pattern, "Blueprint file glob, e.g. layouts/**/*.bp.yaml")
	changes := flag.Bool("changes", cfg.Render.Changes, "Print the flushed change log as JSON")
	level := flag.String("log-level", cfg.Logging.Level, "Log level")
	dev := flag.Bool("dev", cfg.Logging.Development, "Development logging")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *level, Development: *dev})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics(cfg.Metrics.Namespace)
	}

	builder, err := blueprint.NewBuilderFromConfig(cfg.Layout,
		blueprint.WithLogger(logger.Component("blueprint")),
		blueprint.WithMetrics(metrics),
	)
	if err != nil {
		logger.Fatal("Invalid layout configuration", zap.Error(err))
	}

	paths, err := doublestar.FilepathGlob(*pattern)
	if err != nil {
		logger.Fatal("Invalid blueprint pattern", zap.String("pattern", *pattern), zap.Error(err))
	}
	if len(paths) == 0 {
		logger.Warn("No blueprint files matched", zap.String("pattern", *pattern))
		return
	}

	failed := 0
	for _, path := range paths {
		if err := render(path, builder, logger, metrics, *changes); err != nil {
			logger.Error("Failed to render blueprint", zap.String("path", path), zap.Error(err))
			failed++
		}
	}

	snap := metrics.Snapshot()
	logger.Info("Rendered blueprints",
		zap.Int("files", len(paths)),
		zap.Int("failed", failed),
		zap.Int64("flushes", snap.Flushes),
		zap.Int64("changes", snap.Changes),
		zap.Int64("style_updates", snap.StyleUpdates),
	)
	if failed > 0 {
		os.Exit(1)
	}
}

func render(path string, builder *blueprint.Builder, logger *logging.Logger, metrics *monitoring.Metrics, printChanges bool) error {
	format, err := blueprint.FormatFromPath(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	bp, err := blueprint.NewParser().Parse(format, content)
	if err != nil {
		return err
	}
	result, err := builder.Build(bp)
	if err != nil {
		return err
	}

	doc := dom.NewDocument(
		dom.WithLogger(logger.Component("dom").With(zap.String("path", path))),
		dom.WithMetrics(metrics),
	)
	doc.Attach(result.Roots...)
	flushed := doc.Flush()

	fmt.Printf("<!-- %s", path)
	if result.Title != "" {
		fmt.Printf(": %s", result.Title)
	}
	fmt.Println(" -->")
	for _, root := range result.Roots {
		out, err := dom.RenderHTML(root)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	if printChanges {
		data, err := dom.MarshalChanges(flushed)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}
	return nil
}
