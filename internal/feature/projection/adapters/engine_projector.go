// Package adapters connects the projection feature to its runtime inputs.
package adapters

import (
	"context"

	"treasury_backend/internal/feature/projection/domain/entity"
	"treasury_backend/internal/feature/projection/simulation"
)

// EngineProjector runs projections in-process.
type EngineProjector struct{}

// NewEngineProjector creates an EngineProjector.
func NewEngineProjector() *EngineProjector {
	return &EngineProjector{}
}

// Project runs the simulation pipeline, stopping early once ctx is done.
func (EngineProjector) Project(ctx context.Context, s entity.Scenario) (*entity.PlatformProjection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return simulation.Project(ctx, s)
}
