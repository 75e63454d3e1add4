package repository

import (
	"time"

	"guardops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShiftAssignmentRepository handles database operations for per-day shift assignments
type ShiftAssignmentRepository struct {
	db *gorm.DB
}

// NewShiftAssignmentRepository creates a new shift assignment repository
func NewShiftAssignmentRepository(db *gorm.DB) *ShiftAssignmentRepository {
	return &ShiftAssignmentRepository{db: db}
}

// Transaction runs fn against a repository bound to a transaction. Called on
// a repository that is already inside a transaction it opens a savepoint, so a
// failing fn only rolls back its own statements.
func (r *ShiftAssignmentRepository) Transaction(fn func(repo ShiftAssignmentRepositoryInterface) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ShiftAssignmentRepository{db: tx})
	})
}

// Create creates a new shift assignment
func (r *ShiftAssignmentRepository) Create(assignment *models.ShiftAssignment) error {
	return r.db.Omit(clause.Associations).Create(assignment).Error
}

// GetByUserAndDate retrieves the assignment of a user on a date (YYYY-MM-DD)
func (r *ShiftAssignmentRepository) GetByUserAndDate(userID uuid.UUID, date string) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	err := r.db.Where("user_id = ? AND assignment_date = ?", userID, date).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateShift points an existing assignment to another shift, keeping every
// other field.
func (r *ShiftAssignmentRepository) UpdateShift(id uuid.UUID, shiftID uint) error {
	result := r.db.Model(&models.ShiftAssignment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"shift_id":   shiftID,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByDateRange deletes every assignment between start and end inclusive
func (r *ShiftAssignmentRepository) DeleteByDateRange(start, end string) (int64, error) {
	result := r.db.Where("assignment_date BETWEEN ? AND ?", start, end).Delete(&models.ShiftAssignment{})
	return result.RowsAffected, result.Error
}

// GetByDateRange retrieves assignments between start and end inclusive with
// their user and shift, optionally for a single user.
func (r *ShiftAssignmentRepository) GetByDateRange(start, end string, userID *uuid.UUID) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	query := r.db.
		Preload("User").
		Preload("Shift").
		Where("assignment_date BETWEEN ? AND ?", start, end)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("assignment_date ASC").Order("user_id ASC").Find(&assignments).Error
	return assignments, err
}
