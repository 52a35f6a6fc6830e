package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/services"
	"github.com/campushq/recruithub/internal/middleware"
)

// CollegeController handles partner college operations
type CollegeController struct {
	collegeService *services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// CreateCollege handles college creation
// @Summary Create a college
// @Description Registers a new partner college with its SPOC contact
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollegeRequest true "College information"
// @Success 201 {object} dto.APIResponse{data=dto.CollegeResponse} "College created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "College already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	resp, err := c.collegeService.Create(ctx, &req)
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

// GetCollegeByID retrieves a college by ID
// @Summary Get college by ID
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=dto.CollegeResponse} "College retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [get]
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.collegeService.GetByID(ctx, id)
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

// GetAllColleges lists partner colleges
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CollegeResponse} "Colleges retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [get]
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	resp, err := c.collegeService.GetAll(ctx)
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

// UpdateCollege updates an existing college
// @Summary Update a college
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param request body dto.UpdateCollegeRequest true "Updated college information"
// @Success 200 {object} dto.APIResponse{data=dto.CollegeResponse} "College updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 409 {object} dto.ErrorResponse "College name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [put]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCollegeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	resp, err := c.collegeService.Update(ctx, id, &req)
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

// DeleteCollege deletes a college
// @Summary Delete a college
// @Description Deletes a college. Colleges with drives cannot be deleted.
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Success 204 "College deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 409 {object} dto.ErrorResponse "College has drives"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.collegeService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
