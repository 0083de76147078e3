// Package handler provides HTTP handlers for the projection feature.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"treasury_backend/internal/feature/projection/domain"
	"treasury_backend/internal/feature/projection/domain/entity"
	"treasury_backend/internal/feature/projection/transport/http/dto"
)

// HeaderRunID carries the id assigned to each projection run.
const HeaderRunID = "X-Run-ID"

// MaxSeriesRows caps the snapshot rows of a ?series=true cohort response.
// A horizon of h months yields (h+1)*h rows, so the cap allows horizons up
// to 41 years.
const MaxSeriesRows = 250_000

// ProjectionUsecase defines the projection operations used by the handler.
// Interfaces are defined by the consumer (handler), not the provider (usecase).
type ProjectionUsecase interface {
	SimulateParticipant(ctx context.Context, market entity.MarketParameters, participant entity.ParticipantParameters) ([]entity.AccumulationSnapshot, entity.ParticipantSummary, error)
	BuildCohorts(ctx context.Context, growth entity.PlatformGrowthParameters, market entity.MarketParameters, participant entity.ParticipantParameters) ([]entity.Cohort, error)
	ProjectPlatform(ctx context.Context, s entity.Scenario) (*entity.PlatformProjection, error)
}

// ProjectionHandler handles HTTP requests for projections.
type ProjectionHandler struct {
	uc ProjectionUsecase
}

// NewProjectionHandler creates a ProjectionHandler backed by uc.
func NewProjectionHandler(uc ProjectionUsecase) *ProjectionHandler {
	return &ProjectionHandler{uc: uc}
}

// Participant projects a single participant's accumulation.
//
// POST /v1/projections/participant
func (h *ProjectionHandler) Participant(c *gin.Context) {
	runID := startRun(c)

	var req dto.ParticipantProjectionReq
	if !bind(c, runID, &req) {
		return
	}
	series, summary, err := h.uc.SimulateParticipant(c.Request.Context(), req.Market.ToEntity(), req.Participant.ToEntity())
	if err != nil {
		writeError(c, runID, err)
		return
	}
	slog.Info("participant projection served", "run_id", runID, "months", len(series))
	c.JSON(http.StatusOK, dto.NewParticipantProjectionRes(series, summary))
}

// Cohorts describes the cohort set of a growth scenario.
// Per-cohort series are included with ?series=true.
//
// POST /v1/projections/cohorts
func (h *ProjectionHandler) Cohorts(c *gin.Context) {
	runID := startRun(c)

	var req dto.CohortProjectionReq
	if !bind(c, runID, &req) {
		return
	}
	withSeries := c.Query("series") == "true"
	if withSeries {
		months := req.Market.ToEntity().HorizonMonths()
		if rows := (months + 1) * months; rows > MaxSeriesRows {
			writeError(c, runID, fmt.Errorf("%w: series would hold %d rows, limit is %d",
				domain.ErrInvalidParameter, rows, MaxSeriesRows))
			return
		}
	}
	cohorts, err := h.uc.BuildCohorts(c.Request.Context(), req.Growth.ToEntity(), req.Market.ToEntity(), req.Participant.ToEntity())
	if err != nil {
		writeError(c, runID, err)
		return
	}
	slog.Info("cohort projection served", "run_id", runID, "cohorts", len(cohorts))
	c.JSON(http.StatusOK, dto.NewCohortProjectionRes(cohorts, withSeries))
}

// Platform runs the full platform pipeline.
//
// POST /v1/projections/platform
func (h *ProjectionHandler) Platform(c *gin.Context) {
	runID := startRun(c)

	var req dto.PlatformProjectionReq
	if !bind(c, runID, &req) {
		return
	}
	p, err := h.uc.ProjectPlatform(c.Request.Context(), req.ToEntity())
	if err != nil {
		writeError(c, runID, err)
		return
	}
	slog.Info("platform projection served", "run_id", runID, "months", p.Summary.Months)
	c.JSON(http.StatusOK, dto.NewPlatformProjectionRes(p))
}

func startRun(c *gin.Context) string {
	runID := uuid.NewString()
	c.Header(HeaderRunID, runID)
	return runID
}

func bind(c *gin.Context, runID string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("projection request rejected", "run_id", runID, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return false
	}
	return true
}

// writeError maps precondition failures to 422 and hides everything else behind a 500.
func writeError(c *gin.Context, runID string, err error) {
	if domain.IsPrecondition(err) {
		slog.Warn("projection precondition failed", "run_id", runID, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorRes{Error: err.Error()})
		return
	}
	slog.Error("projection failed", "run_id", runID, "error", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
}
