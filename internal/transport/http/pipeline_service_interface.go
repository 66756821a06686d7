package http

import (
	"context"
	"time"

	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
	"github.com/kmiernik/Chart-of-nuclides-drawer/pkg/contracts/domain"
)

// PipelineService is the subset of the pipeline the handlers consume.
// Defined here so handler tests can substitute a stub.
type PipelineService interface {
	Records() []domain.NuclideRecord
	Derive(ctx context.Context, kind massgrid.Kind) ([]massgrid.Point, error)
	Loaded() (bool, time.Time)
}
