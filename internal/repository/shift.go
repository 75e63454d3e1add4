package repository

import (
	"guardops-backend/internal/database/models"

	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift. A caller-chosen ID moves the ID sequence past
// it so later shifts do not collide with it.
func (r *ShiftRepository) Create(shift *models.Shift) error {
	if shift.ID == 0 {
		return r.db.Create(shift).Error
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shift).Error; err != nil {
			return err
		}
		return tx.Exec(`SELECT setval(pg_get_serial_sequence('shifts', 'id'), (SELECT MAX(id) FROM shifts))`).Error
	})
}

// GetByID retrieves a shift by ID, active or not
func (r *ShiftRepository) GetByID(id uint) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves shifts ordered by ID
func (r *ShiftRepository) GetAll(activeOnly bool) ([]models.Shift, error) {
	var shifts []models.Shift
	query := r.db.Model(&models.Shift{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("id ASC").Find(&shifts).Error
	return shifts, err
}

// GetActive retrieves the shifts that can be assigned right now
func (r *ShiftRepository) GetActive() ([]models.Shift, error) {
	return r.GetAll(true)
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}
