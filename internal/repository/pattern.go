package repository

import (
	"time"

	"guardops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PatternFilter is one optional predicate of a pattern listing. Active
// filters are folded into the query in order, joined with AND.
type PatternFilter interface {
	Apply(db *gorm.DB) *gorm.DB
}

// PersonilCountFilter keeps patterns designed for exactly that many people
type PersonilCountFilter int

func (f PersonilCountFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("personil_count = ?", int(f))
}

// IsDefaultFilter keeps default or non-default patterns
type IsDefaultFilter bool

func (f IsDefaultFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_default = ?", bool(f))
}

// CreatedByFilter keeps patterns created by one user
type CreatedByFilter string

func (f CreatedByFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_by = ?", string(f))
}

// SearchFilter matches name or description, case-insensitively
type SearchFilter string

func (f SearchFilter) Apply(db *gorm.DB) *gorm.DB {
	like := "%" + escapeLike(string(f)) + "%"
	return db.Where("(name ILIKE ? OR description ILIKE ?)", like, like)
}

// ApplyPatternFilters folds filters into a query
func ApplyPatternFilters(db *gorm.DB, filters []PatternFilter) *gorm.DB {
	for _, f := range filters {
		if f != nil {
			db = f.Apply(db)
		}
	}
	return db
}

// PatternRepository handles database operations for duty patterns
type PatternRepository struct {
	db *gorm.DB
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(db *gorm.DB) *PatternRepository {
	return &PatternRepository{db: db}
}

// Create creates a new pattern. A default pattern takes the default slot of
// its personil count from the previous holder.
func (r *PatternRepository) Create(pattern *models.Pattern) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if pattern.IsDefault {
			if err := clearDefault(tx, pattern.PersonilCount, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(pattern).Error
	})
}

// GetByID retrieves a pattern by ID
func (r *PatternRepository) GetByID(id uuid.UUID) (*models.Pattern, error) {
	var pattern models.Pattern
	err := r.db.First(&pattern, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// GetByIDs retrieves several patterns at once
func (r *PatternRepository) GetByIDs(ids []uuid.UUID) ([]models.Pattern, error) {
	var patterns []models.Pattern
	if len(ids) == 0 {
		return patterns, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&patterns).Error
	return patterns, err
}

// List retrieves patterns matching all filters, default patterns first, then
// the most used, then the most recent.
func (r *PatternRepository) List(filters []PatternFilter, limit, offset int) ([]models.Pattern, int64, error) {
	var patterns []models.Pattern
	var total int64

	query := ApplyPatternFilters(r.db.Model(&models.Pattern{}), filters)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.
		Order("is_default DESC").
		Order("usage_count DESC").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&patterns).Error
	if err != nil {
		return nil, 0, err
	}

	return patterns, total, nil
}

// GetDefault retrieves the default pattern for a personil count.
// Returns gorm.ErrRecordNotFound when no default is configured.
func (r *PatternRepository) GetDefault(personilCount int) (*models.Pattern, error) {
	var pattern models.Pattern
	err := r.db.Where("personil_count = ? AND is_default = ?", personilCount, true).First(&pattern).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// Update saves a pattern. When it is default, any other default of the same
// personil count is cleared in the same transaction.
func (r *PatternRepository) Update(pattern *models.Pattern) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if pattern.IsDefault {
			if err := clearDefault(tx, pattern.PersonilCount, pattern.ID); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(pattern).Error
	})
}

// Delete deletes a pattern
func (r *PatternRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Pattern{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementUsage bumps the usage counter and records when it happened
func (r *PatternRepository) IncrementUsage(id uuid.UUID, usedAt time.Time) error {
	result := r.db.Model(&models.Pattern{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"usage_count":  gorm.Expr("usage_count + ?", 1),
			"last_used_at": usedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func clearDefault(tx *gorm.DB, personilCount int, keep uuid.UUID) error {
	query := tx.Model(&models.Pattern{}).Where("personil_count = ? AND is_default = ?", personilCount, true)
	if keep != uuid.Nil {
		query = query.Where("id <> ?", keep)
	}
	return query.UpdateColumn("is_default", false).Error
}
