package service_test

import (
	"errors"
	"sort"
	"time"

	"guardops-backend/internal/database/models"
	"guardops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errDuplicateKey = errors.New("duplicate key value violates unique constraint \"idx_shift_assignments_user_date\"")

// memShiftAssignmentRepo keeps shift assignments in memory. Transaction
// restores the previous state when fn fails, like a savepoint would.
type memShiftAssignmentRepo struct {
	rows         map[string]models.ShiftAssignment
	failCreate   map[string]error
	transactions int
	deleteErr    error
}

func newMemShiftAssignmentRepo() *memShiftAssignmentRepo {
	return &memShiftAssignmentRepo{
		rows:       make(map[string]models.ShiftAssignment),
		failCreate: make(map[string]error),
	}
}

func rowKey(userID uuid.UUID, date string) string {
	return userID.String() + "|" + date
}

func dateOf(a models.ShiftAssignment) string {
	return time.Time(a.AssignmentDate).Format("2006-01-02")
}

func (r *memShiftAssignmentRepo) Transaction(fn func(repo repository.ShiftAssignmentRepositoryInterface) error) error {
	r.transactions++
	snapshot := make(map[string]models.ShiftAssignment, len(r.rows))
	for k, v := range r.rows {
		snapshot[k] = v
	}
	if err := fn(r); err != nil {
		r.rows = snapshot
		return err
	}
	return nil
}

func (r *memShiftAssignmentRepo) Create(assignment *models.ShiftAssignment) error {
	key := rowKey(assignment.UserID, dateOf(*assignment))
	if err := r.failCreate[key]; err != nil {
		return err
	}
	if _, exists := r.rows[key]; exists {
		return errDuplicateKey
	}
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	assignment.CreatedAt = time.Now().UTC()
	assignment.UpdatedAt = assignment.CreatedAt
	r.rows[key] = *assignment
	return nil
}

func (r *memShiftAssignmentRepo) GetByUserAndDate(userID uuid.UUID, date string) (*models.ShiftAssignment, error) {
	row, ok := r.rows[rowKey(userID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *memShiftAssignmentRepo) UpdateShift(id uuid.UUID, shiftID uint) error {
	for k, row := range r.rows {
		if row.ID == id {
			row.ShiftID = shiftID
			row.UpdatedAt = time.Now().UTC()
			r.rows[k] = row
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memShiftAssignmentRepo) DeleteByDateRange(start, end string) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var deleted int64
	for k, row := range r.rows {
		if d := dateOf(row); d >= start && d <= end {
			delete(r.rows, k)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memShiftAssignmentRepo) GetByDateRange(start, end string, userID *uuid.UUID) ([]models.ShiftAssignment, error) {
	var out []models.ShiftAssignment
	for _, row := range r.rows {
		d := dateOf(row)
		if d < start || d > end {
			continue
		}
		if userID != nil && row.UserID != *userID {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if dateOf(out[i]) != dateOf(out[j]) {
			return dateOf(out[i]) < dateOf(out[j])
		}
		return out[i].UserID.String() < out[j].UserID.String()
	})
	return out, nil
}

// seed stores a row directly, bypassing failure injection
func (r *memShiftAssignmentRepo) seed(userID uuid.UUID, date time.Time, shiftID uint, notes string) models.ShiftAssignment {
	row := models.ShiftAssignment{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedBy: "seed"},
		UserID:         userID,
		ShiftID:        shiftID,
		AssignmentDate: datatypesDate(date),
		Notes:          notes,
	}
	r.rows[rowKey(userID, dateOf(row))] = row
	return row
}

func (r *memShiftAssignmentRepo) shiftOn(userID uuid.UUID, date string) (uint, bool) {
	row, ok := r.rows[rowKey(userID, date)]
	return row.ShiftID, ok
}
