package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/services"
	"github.com/campushq/recruithub/internal/middleware"
)

// BoardController serves the derived pipeline board and drag-and-drop moves
type BoardController struct {
	boardService *services.BoardService
}

// NewBoardController creates a new BoardController
func NewBoardController(boardService *services.BoardService) *BoardController {
	return &BoardController{
		boardService: boardService,
	}
}

// GetBoard derives the current board of a drive
// @Summary Get the pipeline board
// @Description Derives the multi-round board from the roster's round histories. One bucket per configured round (round 1 excluded), plus Hired and Rejected.
// @Tags board
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.BoardResponse} "Board derived successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{driveId}/board [get]
func (c *BoardController) GetBoard(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	resp, err := c.boardService.GetBoard(ctx, driveID)
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

// MoveStudent applies a drag-and-drop transition
// @Summary Move a student between buckets
// @Description Moves a student from one round bucket to another and records the new round as NOT_STARTED. Hired and Rejected are not drop targets.
// @Tags board
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID"
// @Param request body dto.TransitionRequest true "Transition"
// @Success 200 {object} dto.APIResponse{data=dto.BoardResponse} "Move applied, updated board returned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or no-op move"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Stale move, board changed"
// @Failure 422 {object} dto.ErrorResponse "Unsupported destination bucket"
// @Failure 502 {object} dto.ErrorResponse "Move could not be saved"
// @Router /drives/{driveId}/board/transitions [post]
func (c *BoardController) MoveStudent(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "driveId")
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	resp, err := c.boardService.MoveStudent(ctx, driveID, &req)
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
