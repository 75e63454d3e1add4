package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"guardops-backend/internal/database/models"
	apperrors "guardops-backend/internal/errors"
	"guardops-backend/internal/logger"
	"guardops-backend/internal/repository"
	"guardops-backend/internal/roster"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatternService handles business logic for duty patterns
type PatternService struct {
	repo      repository.PatternRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewPatternService creates a new pattern service
func NewPatternService(repo repository.PatternRepositoryInterface, validator *validator.Validate) *PatternService {
	return &PatternService{
		repo:      repo,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreatePatternRequest represents the request to create a pattern
type CreatePatternRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=100" example:"4 guards rotating"`
	Description   string          `json:"description" validate:"max=1000"`
	PersonilCount int             `json:"personil_count" example:"1"`
	PatternData   json.RawMessage `json:"pattern_data" swaggertype:"array,integer"`
	IsDefault     bool            `json:"is_default"`
}

// UpdatePatternRequest represents a partial update of a pattern. Absent
// fields keep their current value.
type UpdatePatternRequest struct {
	Name          *string         `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	PersonilCount *int            `json:"personil_count,omitempty"`
	PatternData   json.RawMessage `json:"pattern_data,omitempty" swaggertype:"array,integer"`
	IsDefault     *bool           `json:"is_default,omitempty"`
}

// ValidatePatternRequest represents a dry validation request
type ValidatePatternRequest struct {
	PersonilCount int             `json:"personil_count"`
	PatternData   json.RawMessage `json:"pattern_data" swaggertype:"array,integer"`
}

// PatternListFilter holds the optional listing filters. Unset fields do not
// restrict the result.
type PatternListFilter struct {
	PersonilCount *int
	IsDefault     *bool
	CreatedBy     string
	Search        string
}

// PatternResponse represents the response for pattern operations
type PatternResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PersonilCount int       `json:"personil_count"`
	PatternData   [][]int   `json:"pattern_data"`
	IsDefault     bool      `json:"is_default"`
	UsageCount    int       `json:"usage_count"`
	LastUsedAt    *string   `json:"last_used_at,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// PatternListResponse represents a paginated list of patterns
type PatternListResponse struct {
	Patterns []PatternResponse `json:"patterns"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create validates and stores a new pattern
func (s *PatternService) Create(ctx context.Context, req *CreatePatternRequest, actor string) (*PatternResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	result := roster.ValidatePatternJSON(req.PatternData, req.PersonilCount)
	if !result.Valid {
		return nil, apperrors.NewPatternValidationError(result.Errors)
	}

	grid, err := decodeGrid(req.PatternData)
	if err != nil {
		return nil, err
	}

	pattern := &models.Pattern{
		BaseModel:     models.BaseModel{CreatedBy: actor},
		Name:          req.Name,
		Description:   req.Description,
		PersonilCount: req.PersonilCount,
		IsDefault:     req.IsDefault,
	}
	if err := pattern.SetGrid(grid); err != nil {
		return nil, err
	}

	if err := s.repo.Create(pattern); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("default pattern", "for this personil count")
		}
		return nil, fmt.Errorf("failed to create pattern: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"pattern_id":     pattern.ID,
		"personil_count": pattern.PersonilCount,
		"is_default":     pattern.IsDefault,
	}).Info("Pattern created")

	return s.toResponse(pattern)
}

// GetByID retrieves a pattern by ID
func (s *PatternService) GetByID(id uuid.UUID) (*PatternResponse, error) {
	pattern, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}
	return s.toResponse(pattern)
}

// Update applies a partial update. The grid is revalidated whenever the
// pattern data or the personil count changes, against the merged values.
func (s *PatternService) Update(ctx context.Context, id uuid.UUID, req *UpdatePatternRequest) (*PatternResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	pattern, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}

	if req.PatternData != nil || req.PersonilCount != nil {
		count := pattern.PersonilCount
		if req.PersonilCount != nil {
			count = *req.PersonilCount
		}
		raw := json.RawMessage(pattern.PatternData)
		if req.PatternData != nil {
			raw = req.PatternData
		}

		result := roster.ValidatePatternJSON(raw, count)
		if !result.Valid {
			return nil, apperrors.NewPatternValidationError(result.Errors)
		}

		grid, err := decodeGrid(raw)
		if err != nil {
			return nil, err
		}
		if err := pattern.SetGrid(grid); err != nil {
			return nil, err
		}
		pattern.PersonilCount = count
	}

	if req.Name != nil {
		pattern.Name = *req.Name
	}
	if req.Description != nil {
		pattern.Description = *req.Description
	}
	if req.IsDefault != nil {
		pattern.IsDefault = *req.IsDefault
	}

	if err := s.repo.Update(pattern); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("default pattern", "for this personil count")
		}
		return nil, fmt.Errorf("failed to update pattern: %w", err)
	}

	logger.WithContext(ctx).WithField("pattern_id", pattern.ID).Info("Pattern updated")

	return s.toResponse(pattern)
}

// Delete removes a pattern. Patterns still referenced by assignments are kept.
func (s *PatternService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPatternNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return apperrors.ErrPatternInUse
		}
		return fmt.Errorf("failed to delete pattern: %w", err)
	}

	logger.WithContext(ctx).WithField("pattern_id", id).Info("Pattern deleted")
	return nil
}

// List retrieves patterns matching every set filter
func (s *PatternService) List(filter *PatternListFilter, page, pageSize int) (*PatternListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	offset := (page - 1) * pageSize
	patterns, total, err := s.repo.List(filter.toRepositoryFilters(), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	responses := make([]PatternResponse, 0, len(patterns))
	for i := range patterns {
		resp, err := s.toResponse(&patterns[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &PatternListResponse{
		Patterns: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// IncrementUsage records that roster generation consumed the pattern
func (s *PatternService) IncrementUsage(id uuid.UUID) error {
	if err := s.repo.IncrementUsage(id, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPatternNotFound
		}
		return fmt.Errorf("failed to increment pattern usage: %w", err)
	}
	return nil
}

// GetDefault returns the default pattern for a personil count. The boolean is
// false when no default is configured, which is not an error.
func (s *PatternService) GetDefault(personilCount int) (*PatternResponse, bool, error) {
	if personilCount < 1 {
		return nil, false, apperrors.NewValidationError("personil_count", "must be at least 1")
	}

	pattern, err := s.repo.GetDefault(personilCount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get default pattern: %w", err)
	}

	resp, err := s.toResponse(pattern)
	if err != nil {
		return nil, false, err
	}
	return resp, true, nil
}

// Validate checks a pattern grid without storing anything
func (s *PatternService) Validate(req *ValidatePatternRequest) roster.ValidationResult {
	return roster.ValidatePatternJSON(req.PatternData, req.PersonilCount)
}

func (f *PatternListFilter) toRepositoryFilters() []repository.PatternFilter {
	if f == nil {
		return nil
	}

	var filters []repository.PatternFilter
	if f.PersonilCount != nil {
		filters = append(filters, repository.PersonilCountFilter(*f.PersonilCount))
	}
	if f.IsDefault != nil {
		filters = append(filters, repository.IsDefaultFilter(*f.IsDefault))
	}
	if f.CreatedBy != "" {
		filters = append(filters, repository.CreatedByFilter(f.CreatedBy))
	}
	if f.Search != "" {
		filters = append(filters, repository.SearchFilter(f.Search))
	}
	return filters
}

func (s *PatternService) toResponse(pattern *models.Pattern) (*PatternResponse, error) {
	grid, err := pattern.Grid()
	if err != nil {
		return nil, err
	}
	if grid == nil {
		grid = [][]int{}
	}

	resp := &PatternResponse{
		ID:            pattern.ID,
		Name:          pattern.Name,
		Description:   pattern.Description,
		PersonilCount: pattern.PersonilCount,
		PatternData:   grid,
		IsDefault:     pattern.IsDefault,
		UsageCount:    pattern.UsageCount,
		CreatedBy:     pattern.CreatedBy,
		CreatedAt:     pattern.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     pattern.UpdatedAt.Format(time.RFC3339),
	}
	if pattern.LastUsedAt != nil {
		lastUsed := pattern.LastUsedAt.Format(time.RFC3339)
		resp.LastUsedAt = &lastUsed
	}
	return resp, nil
}
