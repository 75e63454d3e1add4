package service

import (
	"context"

	"guardops-backend/internal/roster"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PatternServiceInterface defines the interface for pattern service
type PatternServiceInterface interface {
	Create(ctx context.Context, req *CreatePatternRequest, actor string) (*PatternResponse, error)
	GetByID(id uuid.UUID) (*PatternResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePatternRequest) (*PatternResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(filter *PatternListFilter, page, pageSize int) (*PatternListResponse, error)
	IncrementUsage(id uuid.UUID) error
	GetDefault(personilCount int) (*PatternResponse, bool, error)
	Validate(req *ValidatePatternRequest) roster.ValidationResult
}

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	List(activeOnly bool) ([]ShiftResponse, error)
	Create(ctx context.Context, req *CreateShiftRequest) (*ShiftResponse, error)
	Update(ctx context.Context, id uint, req *UpdateShiftRequest) (*ShiftResponse, error)
}

// PatternAssignmentServiceInterface defines the interface for pattern assignment service
type PatternAssignmentServiceInterface interface {
	Create(ctx context.Context, req *CreatePatternAssignmentRequest, actor string) (*PatternAssignmentResponse, error)
	ListByMonth(month string) ([]PatternAssignmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RosterServiceInterface defines the interface for roster generation and calendar queries
type RosterServiceInterface interface {
	Generate(ctx context.Context, req *GenerateRosterRequest, actor string) (*GenerateRosterResponse, error)
	Preview(ctx context.Context, req *PreviewRosterRequest) (*PreviewRosterResponse, error)
	Calendar(ctx context.Context, month string, userID *uuid.UUID) (*CalendarResponse, error)
	ExportCalendar(ctx context.Context, month string, userID *uuid.UUID) ([]byte, string, error)
}
