package roster

import (
	"github.com/google/uuid"
)

// Assignment is one user following one pattern row for a month. Row is the
// effective row already selected when the assignment was created.
type Assignment struct {
	UserID    uuid.UUID
	UserName  string
	PatternID uuid.UUID
	Row       []int
}

// ActiveShift is the part of a shift the expander needs.
type ActiveShift struct {
	ID   uint
	Name string
}

// Candidate is one (user, day) that should hold a shift.
type Candidate struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	PatternID uuid.UUID `json:"pattern_id"`
	ShiftID   uint      `json:"shift_id"`
	Day       int       `json:"day"`
	Date      string    `json:"date"`
}

// RowError records a problem with a single (user, day) or a whole assignment.
type RowError struct {
	UserID uuid.UUID `json:"user_id"`
	Date   string    `json:"date,omitempty"`
	Reason string    `json:"reason"`
}

func (e RowError) String() string {
	if e.Date == "" {
		return "user " + e.UserID.String() + ": " + e.Reason
	}
	return "user " + e.UserID.String() + " on " + e.Date + ": " + e.Reason
}

// Expansion is the outcome of expanding all assignments over a month.
type Expansion struct {
	Month      Month
	Candidates []Candidate
	Skipped    int
	Errors     []RowError
}

// ReasonShiftNotFound is recorded when a pattern code has no active shift.
const ReasonShiftNotFound = "shift not found"

// Expand repeats each assignment's row cyclically over every day of the month.
// Day d uses row[(d-1) mod len(row)], so the cycle is anchored to the day of
// the month rather than the weekday. OFF days produce no candidate and are
// counted in Skipped. Codes without an active shift are recorded as errors.
func Expand(month Month, assignments []Assignment, activeShifts []ActiveShift) Expansion {
	out := Expansion{Month: month}

	lookup := make(map[uint]ActiveShift, len(activeShifts))
	for _, s := range activeShifts {
		lookup[s.ID] = s
	}

	days := month.DaysInMonth()
	for _, a := range assignments {
		if len(a.Row) == 0 {
			out.Errors = append(out.Errors, RowError{UserID: a.UserID, Reason: "pattern row is empty"})
			continue
		}

		for day := 1; day <= days; day++ {
			code := a.Row[(day-1)%len(a.Row)]
			if code == CodeOff {
				out.Skipped++
				continue
			}

			date := month.Date(day)
			shift, ok := lookup[uint(code)]
			if code < 0 || !ok {
				out.Errors = append(out.Errors, RowError{UserID: a.UserID, Date: date, Reason: ReasonShiftNotFound})
				continue
			}

			out.Candidates = append(out.Candidates, Candidate{
				UserID:    a.UserID,
				UserName:  a.UserName,
				PatternID: a.PatternID,
				ShiftID:   shift.ID,
				Day:       day,
				Date:      date,
			})
		}
	}

	return out
}

// CodeForDay returns the code a row yields on a given day of the month.
func CodeForDay(row []int, day int) int {
	if len(row) == 0 || day < 1 {
		return CodeOff
	}
	return row[(day-1)%len(row)]
}
