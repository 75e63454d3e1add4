package handlers

import (
	"net/http"

	"guardops-backend/internal/auth"
	"guardops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatternAssignmentHandler handles HTTP requests for monthly pattern assignments
type PatternAssignmentHandler struct {
	service service.PatternAssignmentServiceInterface
}

// NewPatternAssignmentHandler creates a new pattern assignment handler
func NewPatternAssignmentHandler(service service.PatternAssignmentServiceInterface) *PatternAssignmentHandler {
	return &PatternAssignmentHandler{service: service}
}

// ListPatternAssignments handles GET /pattern-assignments
// @Summary List pattern assignments for a month
// @Tags pattern-assignments
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} service.PatternAssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /pattern-assignments [get]
func (h *PatternAssignmentHandler) ListPatternAssignments(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month parameter is required"})
		return
	}

	assignments, err := h.service.ListByMonth(month)
	if err != nil {
		respondError(c, err, "Failed to list pattern assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// CreatePatternAssignment handles POST /pattern-assignments
// @Summary Assign a pattern row to a user for a month
// @Tags pattern-assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreatePatternAssignmentRequest true "Assignment data"
// @Success 201 {object} service.PatternAssignmentResponse "Successfully created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "User or pattern not found"
// @Failure 409 {object} ErrorResponse "User already has an assignment for this month"
// @Security BearerAuth
// @Router /pattern-assignments [post]
func (h *PatternAssignmentHandler) CreatePatternAssignment(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		respondError(c, err, "Failed to create pattern assignment")
		return
	}

	var req service.CreatePatternAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	assignment, err := h.service.Create(c, &req, actor)
	if err != nil {
		respondError(c, err, "Failed to create pattern assignment")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// DeletePatternAssignment handles DELETE /pattern-assignments/:id
// @Summary Delete a pattern assignment
// @Tags pattern-assignments
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Assignment deleted"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /pattern-assignments/{id} [delete]
func (h *PatternAssignmentHandler) DeletePatternAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid assignment ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err, "Failed to delete pattern assignment")
		return
	}

	c.Status(http.StatusNoContent)
}
