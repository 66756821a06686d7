// Command s2n derives two-nucleon separation energies from an evaluated
// nuclide table and writes them as a gnuplot table, CSV or Excel
// workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/config"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/exporter"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/infrastructure"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/services"
)

func main() {
	table := flag.String("table", "", "evaluated table file (defaults to configured paths.table_file)")
	elements := flag.String("elements", "", "element names file (defaults to configured paths.elements_file)")
	kindFlag := flag.String("kind", "", "separation energy kind: s2n | s2p (defaults to configured derivation.kind)")
	format := flag.String("format", "table", "output format: table | csv | xlsx")
	out := flag.String("out", "", "output file path; - or empty writes a table to stdout")
	workers := flag.Int("workers", 0, "parse workers (defaults to configured pipeline.workers)")
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
	if *kindFlag != "" {
		cfg.Derivation.Kind = *kindFlag
	}
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}

	logger, closer := infrastructure.MustNewLogger(cfg.Logging)
	defer closer.Close()

	kind, err := massgrid.ParseKind(cfg.Derivation.Kind)
	if err != nil {
		logger.Error("invalid kind", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pipeline := services.NewPipelineService(cfg, logger, nil)
	if err := pipeline.Load(ctx); err != nil {
		logger.Error("failed to load table", "error", err)
		os.Exit(1)
	}

	points, err := pipeline.Derive(ctx, kind)
	if err != nil {
		logger.Error("derivation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("separation energies derived",
		slog.String("kind", string(kind)),
		slog.Int("points", len(points)))

	if err := write(logger, kind, points, *format, *out); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}
}

func write(logger *slog.Logger, kind massgrid.Kind, points []massgrid.Point, format, out string) error {
	switch format {
	case "table":
		if out == "" || out == "-" {
			return exporter.WriteTable(os.Stdout, kind, points)
		}
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return err
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		return exporter.WriteTable(f, kind, points)
	case "csv":
		if out == "" {
			return fmt.Errorf("csv format requires -out")
		}
		return exporter.NewCSVWriter(logger).WriteFile(out, exporter.WriteOptions{
			Kind:      kind,
			Points:    points,
			BOMPrefix: true,
		})
	case "xlsx":
		if out == "" {
			return fmt.Errorf("xlsx format requires -out")
		}
		return exporter.NewExcelWriter(logger).WriteFile(out, kind, points)
	}
	return fmt.Errorf("unknown format %q (want table, csv or xlsx)", format)
}
