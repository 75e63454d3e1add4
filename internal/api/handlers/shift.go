package handlers

import (
	"net/http"
	"strconv"

	"guardops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shifts
type ShiftHandler struct {
	service service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(service service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{service: service}
}

// ListShifts handles GET /shifts
// @Summary List shifts
// @Tags shifts
// @Produce json
// @Param active_only query bool false "Only active shifts"
// @Success 200 {array} service.ShiftResponse "Successfully retrieved shifts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid active_only parameter"})
		return
	}

	shifts, err := h.service.List(activeOnly)
	if err != nil {
		respondError(c, err, "Failed to list shifts")
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// CreateShift handles POST /shifts
// @Summary Create a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Successfully created shift"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Shift code already exists"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	shift, err := h.service.Create(c, &req)
	if err != nil {
		respondError(c, err, "Failed to create shift")
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update a shift
// @Description Also used to activate or deactivate a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path int true "Shift ID"
// @Param shift body service.UpdateShiftRequest true "Fields to update"
// @Success 200 {object} service.ShiftResponse "Successfully updated shift"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	shift, err := h.service.Update(c, uint(id), &req)
	if err != nil {
		respondError(c, err, "Failed to update shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}
