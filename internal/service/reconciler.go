package service

import (
	"errors"
	"fmt"

	"guardops-backend/internal/database/models"
	"guardops-backend/internal/repository"
	"guardops-backend/internal/roster"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReconcileResult summarizes how candidates were merged into stored assignments
type ReconcileResult struct {
	Created int
	Deleted int64
	Errors  []roster.RowError
}

// Reconciler merges expanded candidates into the shift assignment table
type Reconciler struct{}

// NewReconciler creates a new reconciler
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile applies candidates through repo, which the caller is expected to
// have bound to a transaction. With force every assignment of the month is
// deleted first. Each candidate runs in its own nested transaction: a failing
// candidate is rolled back alone, recorded, and the rest proceed. Only the
// force delete returns an error.
func (r *Reconciler) Reconcile(repo repository.ShiftAssignmentRepositoryInterface, month roster.Month, candidates []roster.Candidate, force bool, actor string) (*ReconcileResult, error) {
	result := &ReconcileResult{}

	if force {
		deleted, err := repo.DeleteByDateRange(month.Start(), month.End())
		if err != nil {
			return nil, fmt.Errorf("failed to clear assignments for %s: %w", month, err)
		}
		result.Deleted = deleted
	}

	for _, c := range candidates {
		err := repo.Transaction(func(tx repository.ShiftAssignmentRepositoryInterface) error {
			return applyCandidate(tx, month, c, actor)
		})
		if err != nil {
			result.Errors = append(result.Errors, roster.RowError{
				UserID: c.UserID,
				Date:   c.Date,
				Reason: err.Error(),
			})
			continue
		}
		result.Created++
	}

	return result, nil
}

// applyCandidate updates the shift of an existing (user, date) row or inserts
// a new one.
func applyCandidate(repo repository.ShiftAssignmentRepositoryInterface, month roster.Month, c roster.Candidate, actor string) error {
	existing, err := repo.GetByUserAndDate(c.UserID, c.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if existing != nil {
		if err := repo.UpdateShift(existing.ID, c.ShiftID); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}
		return nil
	}

	assignment := &models.ShiftAssignment{
		BaseModel:      models.BaseModel{CreatedBy: actor},
		UserID:         c.UserID,
		ShiftID:        c.ShiftID,
		AssignmentDate: datatypes.Date(month.Time(c.Day)),
		IsReplacement:  false,
	}
	if err := repo.Create(assignment); err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}
