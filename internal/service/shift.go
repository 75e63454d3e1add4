package service

import (
	"context"
	"errors"
	"fmt"

	"guardops-backend/internal/database/models"
	apperrors "guardops-backend/internal/errors"
	"guardops-backend/internal/logger"
	"guardops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ShiftService handles business logic for the shift directory
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		validator: validator,
	}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,max=50" example:"Morning"`
	Code      string `json:"code" validate:"required,max=10" example:"P"`
	StartTime string `json:"start_time" validate:"required" example:"07:00"`
	EndTime   string `json:"end_time" validate:"required" example:"15:00"`
	Color     string `json:"color" validate:"max=20" example:"#4CAF50"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// UpdateShiftRequest represents a partial update of a shift
type UpdateShiftRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Color     *string `json:"color,omitempty" validate:"omitempty,max=20"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
	IsActive  bool   `json:"is_active"`
}

// List returns all shifts, or only active ones
func (s *ShiftService) List(activeOnly bool) ([]ShiftResponse, error) {
	shifts, err := s.repo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = toShiftResponse(&shifts[i])
	}
	return responses, nil
}

// Create creates a new shift
func (s *ShiftService) Create(ctx context.Context, req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if !validTimeOfDay(req.StartTime) || !validTimeOfDay(req.EndTime) {
		return nil, apperrors.ErrInvalidTimeFormat
	}

	shift := &models.Shift{
		Name:      req.Name,
		Code:      req.Code,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Color:     req.Color,
		IsActive:  true,
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	if err := s.repo.Create(shift); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrShiftCodeExists
		}
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"shift_id": shift.ID,
		"code":     shift.Code,
	}).Info("Shift created")

	resp := toShiftResponse(shift)
	return &resp, nil
}

// Update changes a shift. Deactivated shifts are ignored by roster generation.
func (s *ShiftService) Update(ctx context.Context, id uint, req *UpdateShiftRequest) (*ShiftResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		if !validTimeOfDay(*req.StartTime) {
			return nil, apperrors.ErrInvalidTimeFormat
		}
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !validTimeOfDay(*req.EndTime) {
			return nil, apperrors.ErrInvalidTimeFormat
		}
		shift.EndTime = *req.EndTime
	}
	if req.Color != nil {
		shift.Color = *req.Color
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"shift_id":  shift.ID,
		"is_active": shift.IsActive,
	}).Info("Shift updated")

	resp := toShiftResponse(shift)
	return &resp, nil
}

func toShiftResponse(shift *models.Shift) ShiftResponse {
	return ShiftResponse{
		ID:        shift.ID,
		Name:      shift.Name,
		Code:      shift.Code,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Color:     shift.Color,
		IsActive:  shift.IsActive,
	}
}
