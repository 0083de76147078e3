// Package usecase implements the business logic for the projection feature.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"treasury_backend/internal/feature/projection/domain/entity"
	"treasury_backend/internal/feature/projection/simulation"
)

// PlatformProjector runs a full platform projection for a scenario.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PlatformProjector interface {
	Project(ctx context.Context, s entity.Scenario) (*entity.PlatformProjection, error)
}

// ProjectionUsecase exposes the projection pipeline to transports.
type ProjectionUsecase struct {
	projector PlatformProjector
}

// NewProjectionUsecase creates a ProjectionUsecase backed by projector.
func NewProjectionUsecase(projector PlatformProjector) *ProjectionUsecase {
	return &ProjectionUsecase{projector: projector}
}

// SimulateParticipant returns the monthly accumulation series of one
// participant together with its summary.
func (u *ProjectionUsecase) SimulateParticipant(
	ctx context.Context,
	market entity.MarketParameters,
	participant entity.ParticipantParameters,
) ([]entity.AccumulationSnapshot, entity.ParticipantSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, entity.ParticipantSummary{}, err
	}
	series, err := simulation.SimulateParticipant(market, participant)
	if err != nil {
		return nil, entity.ParticipantSummary{}, err
	}
	return series, simulation.SummarizeParticipant(series), nil
}

// BuildCohorts returns the cohort set of a platform growth scenario.
func (u *ProjectionUsecase) BuildCohorts(
	ctx context.Context,
	growth entity.PlatformGrowthParameters,
	market entity.MarketParameters,
	participant entity.ParticipantParameters,
) ([]entity.Cohort, error) {
	return simulation.BuildCohortSet(ctx, growth, market, participant)
}

// ProjectPlatform validates the scenario and runs the full pipeline through
// the configured projector, which may serve the result from a cache.
func (u *ProjectionUsecase) ProjectPlatform(ctx context.Context, s entity.Scenario) (*entity.PlatformProjection, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	p, err := u.projector.Project(ctx, s)
	if err != nil {
		slog.Error("platform projection failed", "error", err)
		return nil, err
	}
	slog.Info("platform projection complete",
		"months", p.Summary.Months,
		"cohorts", p.Summary.Cohorts,
		"final_principal", p.Summary.FinalPrincipal,
		"elapsed", time.Since(start),
	)
	return p, nil
}
