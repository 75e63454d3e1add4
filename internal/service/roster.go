package service

import (
	"context"
	"fmt"
	"time"

	"guardops-backend/internal/database/models"
	apperrors "guardops-backend/internal/errors"
	"guardops-backend/internal/logger"
	"guardops-backend/internal/repository"
	"guardops-backend/internal/roster"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// RosterService expands pattern assignments over a month and persists the result
type RosterService struct {
	assignmentRepo      repository.PatternAssignmentRepositoryInterface
	shiftRepo           repository.ShiftRepositoryInterface
	shiftAssignmentRepo repository.ShiftAssignmentRepositoryInterface
	patterns            PatternServiceInterface
	reconciler          *Reconciler
	validator           *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(
	assignmentRepo repository.PatternAssignmentRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	shiftAssignmentRepo repository.ShiftAssignmentRepositoryInterface,
	patterns PatternServiceInterface,
	reconciler *Reconciler,
	validator *validator.Validate,
) *RosterService {
	return &RosterService{
		assignmentRepo:      assignmentRepo,
		shiftRepo:           shiftRepo,
		shiftAssignmentRepo: shiftAssignmentRepo,
		patterns:            patterns,
		reconciler:          reconciler,
		validator:           validator,
	}
}

// GenerateRosterRequest represents the request to generate a month's roster
type GenerateRosterRequest struct {
	Month string `json:"month" validate:"required" example:"2025-01"`
	Force bool   `json:"force"`
}

// GenerateRosterResponse reports what generation did. Errors lists every
// (user, day) that could not be resolved or stored.
type GenerateRosterResponse struct {
	Month   string            `json:"month"`
	Created int               `json:"created"`
	Skipped int               `json:"skipped"`
	Deleted int64             `json:"deleted"`
	Errors  []roster.RowError `json:"errors,omitempty"`
}

// PreviewRosterRequest represents the request to preview a month's roster
type PreviewRosterRequest struct {
	Month string `json:"month" validate:"required" example:"2025-01"`
}

// PreviewRosterResponse lists what generation would write
type PreviewRosterResponse struct {
	Month      string             `json:"month"`
	Candidates []roster.Candidate `json:"candidates"`
	Skipped    int                `json:"skipped"`
	Errors     []roster.RowError  `json:"errors,omitempty"`
}

// CalendarEntry is one stored shift assignment with its user and shift
type CalendarEntry struct {
	ID             uuid.UUID  `json:"id"`
	Date           string     `json:"date"`
	UserID         uuid.UUID  `json:"user_id"`
	Username       string     `json:"username"`
	FullName       string     `json:"full_name"`
	ShiftID        uint       `json:"shift_id"`
	ShiftName      string     `json:"shift_name"`
	ShiftCode      string     `json:"shift_code"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	Color          string     `json:"color,omitempty"`
	IsReplacement  bool       `json:"is_replacement"`
	ReplacedUserID *uuid.UUID `json:"replaced_user_id,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// CalendarResponse holds the stored assignments of a month. Days without an
// entry for a user are OFF or unscheduled.
type CalendarResponse struct {
	Month   string          `json:"month"`
	Days    int             `json:"days"`
	Entries []CalendarEntry `json:"entries"`
	Total   int             `json:"total"`
}

// Generate expands every pattern assignment of the month and reconciles the
// result with stored shift assignments in one transaction. Missing
// assignments or shifts abort before anything is written; per-day problems
// are returned in the response.
func (s *RosterService) Generate(ctx context.Context, req *GenerateRosterRequest, actor string) (*GenerateRosterResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"month": month.String(),
		"force": req.Force,
	})

	expansion, patternIDs, err := s.expand(month)
	if err != nil {
		return nil, err
	}

	var reconciled *ReconcileResult
	err = s.shiftAssignmentRepo.Transaction(func(tx repository.ShiftAssignmentRepositoryInterface) error {
		result, err := s.reconciler.Reconcile(tx, month, expansion.Candidates, req.Force, actor)
		if err != nil {
			return err
		}
		reconciled = result
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Roster generation failed")
		return nil, fmt.Errorf("failed to generate roster: %w", err)
	}

	for _, id := range patternIDs {
		if err := s.patterns.IncrementUsage(id); err != nil {
			log.WithError(err).WithField("pattern_id", id).Warn("Failed to record pattern usage")
		}
	}

	rowErrors := append(append([]roster.RowError{}, expansion.Errors...), reconciled.Errors...)

	log.WithFields(map[string]interface{}{
		"created": reconciled.Created,
		"skipped": expansion.Skipped,
		"deleted": reconciled.Deleted,
		"errors":  len(rowErrors),
	}).Info("Roster generated")

	resp := &GenerateRosterResponse{
		Month:   month.String(),
		Created: reconciled.Created,
		Skipped: expansion.Skipped,
		Deleted: reconciled.Deleted,
	}
	if len(rowErrors) > 0 {
		resp.Errors = rowErrors
	}
	return resp, nil
}

// Preview expands the month without writing anything
func (s *RosterService) Preview(ctx context.Context, req *PreviewRosterRequest) (*PreviewRosterResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	expansion, _, err := s.expand(month)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"month":      month.String(),
		"candidates": len(expansion.Candidates),
	}).Debug("Roster previewed")

	candidates := expansion.Candidates
	if candidates == nil {
		candidates = []roster.Candidate{}
	}
	resp := &PreviewRosterResponse{
		Month:      month.String(),
		Candidates: candidates,
		Skipped:    expansion.Skipped,
	}
	if len(expansion.Errors) > 0 {
		resp.Errors = expansion.Errors
	}
	return resp, nil
}

// Calendar returns the stored assignments of a month, optionally for one user
func (s *RosterService) Calendar(ctx context.Context, month string, userID *uuid.UUID) (*CalendarResponse, error) {
	m, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	assignments, err := s.shiftAssignmentRepo.GetByDateRange(m.Start(), m.End(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	entries := lo.Map(assignments, func(a models.ShiftAssignment, _ int) CalendarEntry {
		return toCalendarEntry(&a)
	})

	return &CalendarResponse{
		Month:   m.String(),
		Days:    m.DaysInMonth(),
		Entries: entries,
		Total:   len(entries),
	}, nil
}

// expand loads the month's assignments and active shifts and runs the
// expander. Assignments whose row cannot be resolved become row errors.
func (s *RosterService) expand(month roster.Month) (*roster.Expansion, []uuid.UUID, error) {
	assignments, err := s.assignmentRepo.GetByMonth(month.Start())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get pattern assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, nil, apperrors.ErrNoPatternAssignments
	}

	shifts, err := s.shiftRepo.GetActive()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get active shifts: %w", err)
	}
	if len(shifts) == 0 {
		return nil, nil, apperrors.ErrNoActiveShifts
	}

	active := lo.Map(shifts, func(sh models.Shift, _ int) roster.ActiveShift {
		return roster.ActiveShift{ID: sh.ID, Name: sh.Name}
	})

	inputs, rowErrors := resolveRows(assignments)
	expansion := roster.Expand(month, inputs, active)
	expansion.Errors = append(rowErrors, expansion.Errors...)

	patternIDs := lo.Uniq(lo.Map(inputs, func(a roster.Assignment, _ int) uuid.UUID {
		return a.PatternID
	}))

	return &expansion, patternIDs, nil
}

// resolveRows picks the pattern row each assignment follows
func resolveRows(assignments []models.PatternAssignment) ([]roster.Assignment, []roster.RowError) {
	var inputs []roster.Assignment
	var rowErrors []roster.RowError

	for _, pa := range assignments {
		grid, err := pa.Pattern.Grid()
		if err != nil {
			rowErrors = append(rowErrors, roster.RowError{UserID: pa.UserID, Reason: err.Error()})
			continue
		}
		if pa.RowIndex < 0 || pa.RowIndex >= len(grid) {
			rowErrors = append(rowErrors, roster.RowError{
				UserID: pa.UserID,
				Reason: fmt.Sprintf("%s (row %d, pattern has %d rows)", apperrors.ErrRowIndexOutOfRange, pa.RowIndex, len(grid)),
			})
			continue
		}

		inputs = append(inputs, roster.Assignment{
			UserID:    pa.UserID,
			UserName:  pa.User.FullName,
			PatternID: pa.PatternID,
			Row:       grid[pa.RowIndex],
		})
	}

	return inputs, rowErrors
}

func parseMonth(s string) (roster.Month, error) {
	month, err := roster.ParseMonth(s)
	if err != nil {
		return roster.Month{}, apperrors.ErrInvalidMonthFormat
	}
	return month, nil
}

func toCalendarEntry(a *models.ShiftAssignment) CalendarEntry {
	return CalendarEntry{
		ID:             a.ID,
		Date:           time.Time(a.AssignmentDate).Format("2006-01-02"),
		UserID:         a.UserID,
		Username:       a.User.Username,
		FullName:       a.User.FullName,
		ShiftID:        a.ShiftID,
		ShiftName:      a.Shift.Name,
		ShiftCode:      a.Shift.Code,
		StartTime:      a.Shift.StartTime,
		EndTime:        a.Shift.EndTime,
		Color:          a.Shift.Color,
		IsReplacement:  a.IsReplacement,
		ReplacedUserID: a.ReplacedUserID,
		Notes:          a.Notes,
	}
}
