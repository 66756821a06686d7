// Command chart renders an evaluated nuclide table as an SVG chart of
// nuclides, colored by dominant decay mode.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/config"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/exporter"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/infrastructure"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/services"
)

func main() {
	table := flag.String("table", "", "evaluated table file (defaults to configured paths.table_file)")
	elements := flag.String("elements", "", "element names file (defaults to configured paths.elements_file)")
	out := flag.String("out", "", "output SVG path; - or empty writes to stdout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *table != "" {
		cfg.Paths.TableFile = *table
	}
	if *elements != "" {
		cfg.Paths.ElementsFile = *elements
	}

	logger, closer := infrastructure.MustNewLogger(cfg.Logging)
	defer closer.Close()

	pipeline := services.NewPipelineService(cfg, logger, nil)
	if err := pipeline.Load(context.Background()); err != nil {
		logger.Error("failed to load table", "error", err)
		os.Exit(1)
	}

	records := pipeline.Records()
	logger.Info("rendering chart", slog.Int("nuclides", len(records)))

	w := os.Stdout
	if *out != "" && *out != "-" {
		if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
			logger.Error("failed to create output directory", "error", err)
			os.Exit(1)
		}
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("failed to create output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := exporter.WriteChart(w, records); err != nil {
		logger.Error("failed to render chart", "error", err)
		os.Exit(1)
	}
}
