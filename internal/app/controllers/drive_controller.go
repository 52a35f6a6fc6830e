package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/services"
	"github.com/campushq/recruithub/internal/middleware"
)

// DriveController handles recruitment drive operations
type DriveController struct {
	driveService *services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService *services.DriveService) *DriveController {
	return &DriveController{
		driveService: driveService,
	}
}

// CreateDrive handles drive creation
// @Summary Create a drive
// @Description Creates a recruitment drive with its interview round configuration
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDriveRequest true "Drive information"
// @Success 201 {object} dto.APIResponse{data=dto.DriveResponse} "Drive created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 409 {object} dto.ErrorResponse "Drive already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives [post]
func (c *DriveController) CreateDrive(ctx *gin.Context) {
	var req dto.CreateDriveRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	resp, err := c.driveService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetDriveByID retrieves a drive by ID
// @Summary Get drive by ID
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Drive retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id} [get]
func (c *DriveController) GetDriveByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.driveService.GetByID(ctx, id)
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

// GetAllDrives lists drives
// @Summary List drives
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param collegeId query int false "Filter by college ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.DriveResponse} "Drives retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives [get]
func (c *DriveController) GetAllDrives(ctx *gin.Context) {
	var collegeID int64
	if raw := ctx.Query("collegeId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid collegeId").
				WithDetails("collegeId must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		collegeID = parsed
	}

	resp, err := c.driveService.GetAll(ctx, collegeID)
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

// UpdateDrive updates an existing drive
// @Summary Update a drive
// @Description Updates a drive. Omitting rounds keeps the current round configuration.
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param request body dto.UpdateDriveRequest true "Updated drive information"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Drive updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id} [put]
func (c *DriveController) UpdateDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDriveRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	resp, err := c.driveService.Update(ctx, id, &req)
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

// DeleteDrive deletes a drive
// @Summary Delete a drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 204 "Drive deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id} [delete]
func (c *DriveController) DeleteDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.driveService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
