// Package services implements the orchestration layer between the raw
// data files and the outer surfaces (HTTP handlers and command line
// tools).
package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/chart"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/config"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/elements"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/infrastructure"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/nubase"
	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// PipelineService loads the evaluated table once and serves parsed
// records, separation energies and chart cells from memory.
type PipelineService struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *infrastructure.PipelineMetrics

	mu       sync.RWMutex
	records  []domain.NuclideRecord
	grid     *massgrid.Grid
	loadedAt time.Time
}

// NewPipelineService creates a new pipeline service.
func NewPipelineService(cfg *config.Config, logger *slog.Logger, metrics *infrastructure.PipelineMetrics) *PipelineService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineService{
		config:  cfg,
		logger:  logger.With(slog.String("component", "pipeline_service")),
		metrics: metrics,
	}
}

// Load reads the element names and the evaluated table from the
// configured paths, parses every ground-state line and folds the mass
// defects into the grid. Safe to call again to refresh.
func (s *PipelineService) Load(ctx context.Context) error {
	start := time.Now()

	table := elements.LoadFile(s.config.Paths.ElementsFile, s.logger)
	parser := nubase.NewParser(table, s.logger)

	file, err := os.Open(s.config.Paths.TableFile)
	if err != nil {
		return fmt.Errorf("open table %s: %w", s.config.Paths.TableFile, err)
	}
	defer file.Close()

	lines, skipped, err := nubase.ReadLines(file)
	if err != nil {
		return fmt.Errorf("read table %s: %w", s.config.Paths.TableFile, err)
	}

	records, grid, err := s.parseAll(ctx, parser, lines)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.grid = grid
	s.loadedAt = time.Now()
	s.mu.Unlock()

	elapsed := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordsParsed.Add(ctx, int64(len(records)))
		s.metrics.LinesSkipped.Add(ctx, int64(skipped))
		s.metrics.PipelineSeconds.Record(ctx, elapsed.Seconds(),
			metric.WithAttributes(attribute.String("stage", "load")))
	}
	s.logger.InfoContext(ctx, "table loaded",
		slog.String("path", s.config.Paths.TableFile),
		slog.Int("records", len(records)),
		slog.Int("skipped", skipped),
		slog.Duration("elapsed", elapsed))
	return nil
}

// parseAll parses the ground-state lines, fanning out over the
// configured worker count. Input order is preserved in the returned
// records regardless of worker count.
func (s *PipelineService) parseAll(ctx context.Context, parser *nubase.Parser, lines []string) ([]domain.NuclideRecord, *massgrid.Grid, error) {
	workers := s.config.Pipeline.Workers
	if workers < 1 {
		workers = 1
	}

	records := make([]domain.NuclideRecord, len(lines))
	grids := make([]*massgrid.Grid, workers)

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(lines) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(lines) {
			hi = len(lines)
		}
		grids[w] = massgrid.New()
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				rec := parser.Parse(lines[i])
				records[i] = rec
				grids[w].Accumulate(rec)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("parse table: %w", err)
	}

	grid := grids[0]
	for _, other := range grids[1:] {
		grid.Merge(other)
	}
	return records, grid, nil
}

// Records returns the parsed ground-state records in table order.
func (s *PipelineService) Records() []domain.NuclideRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Derive computes the separation energies of the requested kind from
// the loaded grid.
func (s *PipelineService) Derive(ctx context.Context, kind massgrid.Kind) ([]massgrid.Point, error) {
	s.mu.RLock()
	grid := s.grid
	s.mu.RUnlock()
	if grid == nil {
		return nil, fmt.Errorf("table not loaded")
	}

	start := time.Now()
	points := grid.Derive(kind)
	if s.metrics != nil {
		s.metrics.PointsDerived.Add(ctx, int64(len(points)),
			metric.WithAttributes(attribute.String("kind", string(kind))))
		s.metrics.PipelineSeconds.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(attribute.String("stage", "derive")))
	}
	return points, nil
}

// Cells maps every loaded record onto its chart cell.
func (s *PipelineService) Cells() []domain.ChartCell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cells := make([]domain.ChartCell, 0, len(s.records))
	for _, rec := range s.records {
		cells = append(cells, chart.Describe(rec))
	}
	return cells
}

// Loaded reports whether a table has been loaded, and when.
func (s *PipelineService) Loaded() (bool, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid != nil, s.loadedAt
}
