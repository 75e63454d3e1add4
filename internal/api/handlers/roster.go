package handlers

import (
	"net/http"

	"guardops-backend/internal/auth"
	"guardops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RosterHandler handles roster generation and calendar queries
type RosterHandler struct {
	service service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(service service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{service: service}
}

// GenerateRoster handles POST /roster/generate
// @Summary Generate the roster for a month
// @Description Expands every pattern assignment of the month into daily shift assignments.
// @Description With force the month is cleared first. Per-row failures are reported in errors.
// @Tags roster
// @Accept json
// @Produce json
// @Param request body service.GenerateRosterRequest true "Month and force flag"
// @Success 200 {object} service.GenerateRosterResponse "Generation summary"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Failure 422 {object} ErrorResponse "Nothing to generate"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Security BearerAuth
// @Router /roster/generate [post]
func (h *RosterHandler) GenerateRoster(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		respondError(c, err, "Failed to generate roster")
		return
	}

	var req service.GenerateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	resp, err := h.service.Generate(c, &req, actor)
	if err != nil {
		respondError(c, err, "Failed to generate roster")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PreviewRoster handles POST /roster/preview
// @Summary Preview the roster for a month
// @Description Same expansion as generate without writing anything
// @Tags roster
// @Accept json
// @Produce json
// @Param request body service.PreviewRosterRequest true "Month"
// @Success 200 {object} service.PreviewRosterResponse "Expanded candidates"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Failure 422 {object} ErrorResponse "Nothing to generate"
// @Security BearerAuth
// @Router /roster/preview [post]
func (h *RosterHandler) PreviewRoster(c *gin.Context) {
	var req service.PreviewRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	resp, err := h.service.Preview(c, &req)
	if err != nil {
		respondError(c, err, "Failed to preview roster")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCalendar handles GET /roster/calendar
// @Summary Get the roster calendar for a month
// @Tags roster
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Param user_id query string false "Only this user"
// @Success 200 {object} service.CalendarResponse "Calendar entries"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /roster/calendar [get]
func (h *RosterHandler) GetCalendar(c *gin.Context) {
	month, userID, ok := calendarParams(c)
	if !ok {
		return
	}

	resp, err := h.service.Calendar(c, month, userID)
	if err != nil {
		respondError(c, err, "Failed to get calendar")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportCalendar handles GET /roster/calendar/export
// @Summary Download the roster calendar as a spreadsheet
// @Tags roster
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string true "Month (YYYY-MM)"
// @Param user_id query string false "Only this user"
// @Success 200 {file} file "XLSX workbook"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /roster/calendar/export [get]
func (h *RosterHandler) ExportCalendar(c *gin.Context) {
	month, userID, ok := calendarParams(c)
	if !ok {
		return
	}

	data, filename, err := h.service.ExportCalendar(c, month, userID)
	if err != nil {
		respondError(c, err, "Failed to export calendar")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func calendarParams(c *gin.Context) (string, *uuid.UUID, bool) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month parameter is required"})
		return "", nil, false
	}

	raw := c.Query("user_id")
	if raw == "" {
		return month, nil, true
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user_id: invalid UUID format"})
		return "", nil, false
	}
	return month, &userID, true
}
