package handlers

import (
	"net/http"
	"strconv"

	"guardops-backend/internal/auth"
	"guardops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatternHandler handles HTTP requests for shift patterns
type PatternHandler struct {
	service service.PatternServiceInterface
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(service service.PatternServiceInterface) *PatternHandler {
	return &PatternHandler{service: service}
}

// DefaultPatternResponse wraps the optional default pattern for a personil count
type DefaultPatternResponse struct {
	Found   bool                     `json:"found"`
	Pattern *service.PatternResponse `json:"pattern"`
}

// CreatePattern handles POST /patterns
// @Summary Create a new pattern
// @Description Create a 7-day shift pattern. The grid is validated before it is stored.
// @Tags patterns
// @Accept json
// @Produce json
// @Param pattern body service.CreatePatternRequest true "Pattern data"
// @Success 201 {object} service.PatternResponse "Successfully created pattern"
// @Failure 400 {object} PatternErrorResponse "Invalid pattern"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 409 {object} ErrorResponse "Default pattern already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /patterns [post]
func (h *PatternHandler) CreatePattern(c *gin.Context) {
	actor, err := auth.GetActor(c)
	if err != nil {
		respondError(c, err, "Failed to create pattern")
		return
	}

	var req service.CreatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	pattern, err := h.service.Create(c, &req, actor)
	if err != nil {
		respondError(c, err, "Failed to create pattern")
		return
	}

	c.JSON(http.StatusCreated, pattern)
}

// GetPattern handles GET /patterns/:id
// @Summary Get pattern by ID
// @Tags patterns
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Success 200 {object} service.PatternResponse "Successfully retrieved pattern"
// @Failure 400 {object} ErrorResponse "Invalid pattern ID"
// @Failure 404 {object} ErrorResponse "Pattern not found"
// @Security BearerAuth
// @Router /patterns/{id} [get]
func (h *PatternHandler) GetPattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pattern ID: invalid UUID format"})
		return
	}

	pattern, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get pattern")
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// ListPatterns handles GET /patterns
// @Summary List patterns
// @Description Defaults first, then by usage and creation time
// @Tags patterns
// @Produce json
// @Param personil_count query int false "Filter by personil count"
// @Param is_default query bool false "Filter by default flag"
// @Param created_by query string false "Filter by creator"
// @Param search query string false "Search name and description"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PatternListResponse "Successfully retrieved patterns"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /patterns [get]
func (h *PatternHandler) ListPatterns(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page parameter"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page_size parameter"})
		return
	}

	filter := &service.PatternListFilter{
		CreatedBy: c.Query("created_by"),
		Search:    c.Query("search"),
	}
	if raw := c.Query("personil_count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid personil_count parameter"})
			return
		}
		filter.PersonilCount = &count
	}
	if raw := c.Query("is_default"); raw != "" {
		isDefault, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid is_default parameter"})
			return
		}
		filter.IsDefault = &isDefault
	}

	resp, err := h.service.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list patterns")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDefaultPattern handles GET /patterns/default/:count
// @Summary Get the default pattern for a personil count
// @Description Returns found=false when no default is configured
// @Tags patterns
// @Produce json
// @Param count path int true "Personil count"
// @Success 200 {object} DefaultPatternResponse "Default pattern lookup result"
// @Failure 400 {object} ErrorResponse "Invalid personil count"
// @Security BearerAuth
// @Router /patterns/default/{count} [get]
func (h *PatternHandler) GetDefaultPattern(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid personil count"})
		return
	}

	pattern, found, err := h.service.GetDefault(count)
	if err != nil {
		respondError(c, err, "Failed to get default pattern")
		return
	}

	c.JSON(http.StatusOK, DefaultPatternResponse{Found: found, Pattern: pattern})
}

// ValidatePattern handles POST /patterns/validate
// @Summary Validate a pattern grid
// @Description Checks a grid without storing it and returns every problem found
// @Tags patterns
// @Accept json
// @Produce json
// @Param pattern body service.ValidatePatternRequest true "Pattern grid"
// @Success 200 {object} roster.ValidationResult "Validation result"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /patterns/validate [post]
func (h *PatternHandler) ValidatePattern(c *gin.Context) {
	var req service.ValidatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	c.JSON(http.StatusOK, h.service.Validate(&req))
}

// UpdatePattern handles PUT /patterns/:id
// @Summary Update a pattern
// @Description Partial update. A new grid or personil count is validated against the merged pattern.
// @Tags patterns
// @Accept json
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Param pattern body service.UpdatePatternRequest true "Fields to update"
// @Success 200 {object} service.PatternResponse "Successfully updated pattern"
// @Failure 400 {object} PatternErrorResponse "Invalid pattern"
// @Failure 404 {object} ErrorResponse "Pattern not found"
// @Security BearerAuth
// @Router /patterns/{id} [put]
func (h *PatternHandler) UpdatePattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pattern ID: invalid UUID format"})
		return
	}

	var req service.UpdatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	pattern, err := h.service.Update(c, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update pattern")
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// DeletePattern handles DELETE /patterns/:id
// @Summary Delete a pattern
// @Tags patterns
// @Param id path string true "Pattern ID (UUID)"
// @Success 204 "Pattern deleted"
// @Failure 404 {object} ErrorResponse "Pattern not found"
// @Failure 409 {object} ErrorResponse "Pattern is still assigned"
// @Security BearerAuth
// @Router /patterns/{id} [delete]
func (h *PatternHandler) DeletePattern(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pattern ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err, "Failed to delete pattern")
		return
	}

	c.Status(http.StatusNoContent)
}
