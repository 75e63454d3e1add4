package repository

import (
	"time"

	"guardops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uint) (*models.Shift, error)
	GetAll(activeOnly bool) ([]models.Shift, error)
	GetActive() ([]models.Shift, error)
	Update(shift *models.Shift) error
}

// PatternRepositoryInterface defines the interface for pattern repository operations
type PatternRepositoryInterface interface {
	Create(pattern *models.Pattern) error
	GetByID(id uuid.UUID) (*models.Pattern, error)
	GetByIDs(ids []uuid.UUID) ([]models.Pattern, error)
	List(filters []PatternFilter, limit, offset int) ([]models.Pattern, int64, error)
	GetDefault(personilCount int) (*models.Pattern, error)
	Update(pattern *models.Pattern) error
	Delete(id uuid.UUID) error
	IncrementUsage(id uuid.UUID, usedAt time.Time) error
}

// PatternAssignmentRepositoryInterface defines the interface for pattern assignment repository operations
type PatternAssignmentRepositoryInterface interface {
	Create(assignment *models.PatternAssignment) error
	GetByID(id uuid.UUID) (*models.PatternAssignment, error)
	GetByMonth(monthStart string) ([]models.PatternAssignment, error)
	GetByUserAndMonth(userID uuid.UUID, monthStart string) (*models.PatternAssignment, error)
	Delete(id uuid.UUID) error
}

// ShiftAssignmentRepositoryInterface defines the interface for shift assignment repository operations
type ShiftAssignmentRepositoryInterface interface {
	Transaction(fn func(repo ShiftAssignmentRepositoryInterface) error) error
	Create(assignment *models.ShiftAssignment) error
	GetByUserAndDate(userID uuid.UUID, date string) (*models.ShiftAssignment, error)
	UpdateShift(id uuid.UUID, shiftID uint) error
	DeleteByDateRange(start, end string) (int64, error)
	GetByDateRange(start, end string, userID *uuid.UUID) ([]models.ShiftAssignment, error)
}
