package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/services"
	"github.com/campushq/recruithub/internal/middleware"
)

// PanelController handles interviewer panel operations
type PanelController struct {
	panelService *services.PanelService
}

// NewPanelController creates a new PanelController
func NewPanelController(panelService *services.PanelService) *PanelController {
	return &PanelController{
		panelService: panelService,
	}
}

// CreatePanel creates a panel for one round of a drive
// @Summary Create a panel
// @Tags panels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Param request body dto.CreatePanelRequest true "Panel information"
// @Success 201 {object} dto.APIResponse{data=dto.PanelResponse} "Panel created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unconfigured round"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{driveId}/panels [post]
func (c *PanelController) CreatePanel(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	var req dto.CreatePanelRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	resp, err := c.panelService.Create(ctx, driveID, &req)
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

// GetPanelsByDrive lists the panels of a drive
// @Summary List panels
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.PanelResponse} "Panels retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{driveId}/panels [get]
func (c *PanelController) GetPanelsByDrive(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	resp, err := c.panelService.GetByDriveID(ctx, driveID)
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

// GetPanelByID retrieves a panel with its members
// @Summary Get panel by ID
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Panel ID"
// @Success 200 {object} dto.APIResponse{data=dto.PanelResponse} "Panel retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid panel ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Panel not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /panels/{id} [get]
func (c *PanelController) GetPanelByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.panelService.GetByID(ctx, id)
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

// DeletePanel deletes a panel
// @Summary Delete a panel
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Panel ID"
// @Success 204 "Panel deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid panel ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Panel not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /panels/{id} [delete]
func (c *PanelController) DeletePanel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.panelService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddPanelMember adds an interviewer to a panel
// @Summary Add a panel member
// @Tags panels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Panel ID"
// @Param request body dto.AddPanelMemberRequest true "Member"
// @Success 200 {object} dto.APIResponse{data=dto.PanelResponse} "Member added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Panel or user not found"
// @Failure 409 {object} dto.ErrorResponse "User already a member"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /panels/{id}/members [post]
func (c *PanelController) AddPanelMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddPanelMemberRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	resp, err := c.panelService.AddMember(ctx, id, &req)
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

// RemovePanelMember removes an interviewer from a panel
// @Summary Remove a panel member
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Panel ID"
// @Param userId path int true "User ID"
// @Success 204 "Member removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /panels/{id}/members/{userId} [delete]
func (c *PanelController) RemovePanelMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.panelService.RemoveMember(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssignPanelToStudent attaches a panel to a student's round record
// @Summary Assign a panel to a student
// @Description Attaches the panel to the student's record for the panel's round
// @Tags panels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Panel ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Panel assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Panel or student round not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /panels/{id}/assignments/{studentId} [post]
func (c *PanelController) AssignPanelToStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.panelService.AssignToStudent(ctx, id, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Panel assigned"))
}
