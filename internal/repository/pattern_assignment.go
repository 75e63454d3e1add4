package repository

import (
	"guardops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PatternAssignmentRepository handles database operations for pattern assignments
type PatternAssignmentRepository struct {
	db *gorm.DB
}

// NewPatternAssignmentRepository creates a new pattern assignment repository
func NewPatternAssignmentRepository(db *gorm.DB) *PatternAssignmentRepository {
	return &PatternAssignmentRepository{db: db}
}

// Create creates a new pattern assignment
func (r *PatternAssignmentRepository) Create(assignment *models.PatternAssignment) error {
	return r.db.Omit(clause.Associations).Create(assignment).Error
}

// GetByID retrieves a pattern assignment by ID
func (r *PatternAssignmentRepository) GetByID(id uuid.UUID) (*models.PatternAssignment, error) {
	var assignment models.PatternAssignment
	err := r.db.Preload("User").Preload("Pattern").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByMonth retrieves all assignments of a month with their user and pattern.
// monthStart is the first day of the month as YYYY-MM-DD.
func (r *PatternAssignmentRepository) GetByMonth(monthStart string) ([]models.PatternAssignment, error) {
	var assignments []models.PatternAssignment
	err := r.db.
		Preload("User").
		Preload("Pattern").
		Where("assignment_month = ?", monthStart).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetByUserAndMonth retrieves the assignment of one user for a month
func (r *PatternAssignmentRepository) GetByUserAndMonth(userID uuid.UUID, monthStart string) (*models.PatternAssignment, error) {
	var assignment models.PatternAssignment
	err := r.db.Where("user_id = ? AND assignment_month = ?", userID, monthStart).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Delete deletes a pattern assignment
func (r *PatternAssignmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.PatternAssignment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
