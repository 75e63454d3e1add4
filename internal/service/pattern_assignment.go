package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guardops-backend/internal/database/models"
	apperrors "guardops-backend/internal/errors"
	"guardops-backend/internal/logger"
	"guardops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PatternAssignmentService handles business logic for binding users to pattern rows
type PatternAssignmentService struct {
	repo        repository.PatternAssignmentRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	patternRepo repository.PatternRepositoryInterface
	validator   *validator.Validate
}

// NewPatternAssignmentService creates a new pattern assignment service
func NewPatternAssignmentService(
	repo repository.PatternAssignmentRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	patternRepo repository.PatternRepositoryInterface,
	validator *validator.Validate,
) *PatternAssignmentService {
	return &PatternAssignmentService{
		repo:        repo,
		userRepo:    userRepo,
		patternRepo: patternRepo,
		validator:   validator,
	}
}

// CreatePatternAssignmentRequest represents the request to assign a pattern row to a user for a month
type CreatePatternAssignmentRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	PatternID uuid.UUID `json:"pattern_id" validate:"required"`
	Month     string    `json:"month" validate:"required" example:"2025-01"`
	RowIndex  int       `json:"row_index" validate:"min=0"`
}

// PatternAssignmentResponse represents the response for pattern assignment operations
type PatternAssignmentResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	FullName    string    `json:"full_name,omitempty"`
	PatternID   uuid.UUID `json:"pattern_id"`
	PatternName string    `json:"pattern_name,omitempty"`
	Month       string    `json:"month"`
	RowIndex    int       `json:"row_index"`
	Row         []int     `json:"row,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   string    `json:"created_at"`
}

// Create assigns one row of a pattern to a user for a month. A user holds at
// most one assignment per month.
func (s *PatternAssignmentService) Create(ctx context.Context, req *CreatePatternAssignmentRequest, actor string) (*PatternAssignmentResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	pattern, err := s.patternRepo.GetByID(req.PatternID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to verify pattern: %w", err)
	}

	grid, err := pattern.Grid()
	if err != nil {
		return nil, err
	}
	if req.RowIndex >= len(grid) {
		return nil, apperrors.ErrRowIndexOutOfRange
	}

	existing, err := s.repo.GetByUserAndMonth(req.UserID, month.Start())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPatternAssignmentExists
	}

	assignment := &models.PatternAssignment{
		BaseModel:       models.BaseModel{CreatedBy: actor},
		UserID:          req.UserID,
		PatternID:       req.PatternID,
		AssignmentMonth: datatypes.Date(month.Time(1)),
		RowIndex:        req.RowIndex,
	}
	if err := s.repo.Create(assignment); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPatternAssignmentExists
		}
		return nil, fmt.Errorf("failed to create pattern assignment: %w", err)
	}
	assignment.User = *user
	assignment.Pattern = *pattern

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assignment_id": assignment.ID,
		"user_id":       assignment.UserID,
		"pattern_id":    assignment.PatternID,
		"month":         month.String(),
		"row_index":     assignment.RowIndex,
	}).Info("Pattern assigned")

	resp := toPatternAssignmentResponse(assignment)
	return &resp, nil
}

// ListByMonth returns every assignment of a month
func (s *PatternAssignmentService) ListByMonth(month string) ([]PatternAssignmentResponse, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.GetByMonth(m.Start())
	if err != nil {
		return nil, fmt.Errorf("failed to list pattern assignments: %w", err)
	}

	responses := make([]PatternAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = toPatternAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// Delete removes an assignment. Shift assignments already generated from it stay.
func (s *PatternAssignmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPatternAssignmentNotFound
		}
		return fmt.Errorf("failed to delete pattern assignment: %w", err)
	}

	logger.WithContext(ctx).WithField("assignment_id", id).Info("Pattern assignment deleted")
	return nil
}

func toPatternAssignmentResponse(a *models.PatternAssignment) PatternAssignmentResponse {
	resp := PatternAssignmentResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Username:    a.User.Username,
		FullName:    a.User.FullName,
		PatternID:   a.PatternID,
		PatternName: a.Pattern.Name,
		Month:       time.Time(a.AssignmentMonth).Format("2006-01"),
		RowIndex:    a.RowIndex,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	if grid, err := a.Pattern.Grid(); err == nil && a.RowIndex >= 0 && a.RowIndex < len(grid) {
		resp.Row = grid[a.RowIndex]
	}
	return resp
}
