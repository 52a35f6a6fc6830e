package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/services"
	"github.com/campushq/recruithub/internal/middleware"
)

// EvaluationController handles pre-screening evaluation jobs
type EvaluationController struct {
	evaluationService *services.EvaluationService
}

// NewEvaluationController creates a new EvaluationController
func NewEvaluationController(evaluationService *services.EvaluationService) *EvaluationController {
	return &EvaluationController{
		evaluationService: evaluationService,
	}
}

// StartEvaluation launches a pre-screening job for a drive
// @Summary Start a pre-screening job
// @Description Launches an asynchronous job that scores every student's round-1 result against the drive's threshold. At most one job per drive may run.
// @Tags evaluations
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Success 202 {object} dto.APIResponse{data=dto.EvaluationJobResponse} "Job accepted"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Job already running"
// @Failure 422 {object} dto.ErrorResponse "No pre-screening round configured"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{driveId}/evaluations [post]
func (c *EvaluationController) StartEvaluation(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	resp, err := c.evaluationService.StartJob(ctx, driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.APIResponse{
		Success:   true,
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetEvaluationsByDrive lists a drive's jobs
// @Summary List pre-screening jobs
// @Tags evaluations
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EvaluationJobResponse} "Jobs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{driveId}/evaluations [get]
func (c *EvaluationController) GetEvaluationsByDrive(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	resp, err := c.evaluationService.GetJobsByDrive(ctx, driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetEvaluationByID retrieves one job's progress
// @Summary Get a pre-screening job
// @Tags evaluations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.EvaluationJobResponse} "Job retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /evaluations/{id} [get]
func (c *EvaluationController) GetEvaluationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.evaluationService.GetJob(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      resp,
		Timestamp: time.Now(),
	})
}
