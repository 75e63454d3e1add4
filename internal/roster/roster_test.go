package roster

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRow = []int{1, 3, 2, 3, 2, 2, 0}

func allShifts() []ActiveShift {
	return []ActiveShift{{ID: 1, Name: "Pagi"}, {ID: 2, Name: "Siang"}, {ID: 3, Name: "Malam"}}
}

func candidateFor(t *testing.T, exp Expansion, userID uuid.UUID, day int) (Candidate, bool) {
	t.Helper()
	for _, c := range exp.Candidates {
		if c.UserID == userID && c.Day == day {
			return c, true
		}
	}
	return Candidate{}, false
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  Month
		expectErr bool
	}{
		{name: "year-month", input: "2025-01", expected: Month{Year: 2025, Month: time.January}},
		{name: "full date truncated", input: "2024-02-17", expected: Month{Year: 2024, Month: time.February}},
		{name: "surrounding spaces", input: " 2025-12 ", expected: Month{Year: 2025, Month: time.December}},
		{name: "month out of range", input: "2025-13", expectErr: true},
		{name: "garbage", input: "January", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMonth(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, Month{2025, time.January}.DaysInMonth())
	assert.Equal(t, 28, Month{2025, time.February}.DaysInMonth())
	assert.Equal(t, 29, Month{2024, time.February}.DaysInMonth())
	assert.Equal(t, 28, Month{1900, time.February}.DaysInMonth())
	assert.Equal(t, 29, Month{2000, time.February}.DaysInMonth())
	assert.Equal(t, 30, Month{2025, time.April}.DaysInMonth())
	assert.Equal(t, 31, Month{2025, time.December}.DaysInMonth())
}

func TestMonthFormatting(t *testing.T) {
	m := Month{Year: 2025, Month: time.March}
	assert.Equal(t, "2025-03", m.String())
	assert.Equal(t, "2025-03-01", m.Start())
	assert.Equal(t, "2025-03-31", m.End())
	assert.Equal(t, "2025-03-09", m.Date(9))
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), m.Time(1))
}

func TestMonthOfIgnoresUTCOffset(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	firstOfMonth := time.Date(2025, time.May, 1, 0, 30, 0, 0, jakarta)

	// in UTC this instant is still April 30th
	assert.Equal(t, time.April, firstOfMonth.UTC().Month())
	assert.Equal(t, Month{Year: 2025, Month: time.May}, MonthOf(firstOfMonth))
}

func TestValidatePattern(t *testing.T) {
	t.Run("valid grid", func(t *testing.T) {
		result := ValidateGrid([][]int{sampleRow, {0, 1, 1, 2, 2, 3, 3}}, 2)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("row count mismatch", func(t *testing.T) {
		result := ValidateGrid([][]int{sampleRow}, 2)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "1 rows but personil count is 2")
	})

	t.Run("invalid cell names row day and value", func(t *testing.T) {
		result := ValidateGrid([][]int{{1, 3, 2, 9, 2, 2, 0}}, 1)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "row 1, day 4: invalid value 9 (must be an integer between 0 and 3)", result.Errors[0])
	})

	t.Run("scalar is a hard failure", func(t *testing.T) {
		result := ValidatePattern(float64(5), 3)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"pattern data must be an array"}, result.Errors)
	})

	t.Run("nil is a hard failure", func(t *testing.T) {
		result := ValidateGrid(nil, 1)
		assert.Equal(t, []string{"pattern data must be an array"}, result.Errors)
	})

	t.Run("wrong length still checks values", func(t *testing.T) {
		result := ValidateGrid([][]int{{1, 5, 0}}, 1)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{
			"row 1 must have exactly 7 days, got 3",
			"row 1, day 2: invalid value 5 (must be an integer between 0 and 3)",
		}, result.Errors)
	})

	t.Run("missing day off is reported", func(t *testing.T) {
		result := ValidateGrid([][]int{{1, 1, 1, 1, 1, 1, 1}}, 1)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"row 1 has no day off (0)"}, result.Errors)
	})

	t.Run("errors accumulate across rows", func(t *testing.T) {
		result := ValidateGrid([][]int{{1, 1, 1, 1, 1, 1, 1}, {0, -1, 2, 2, 2, 2, 2}, sampleRow}, 2)
		assert.Equal(t, []string{
			"pattern has 3 rows but personil count is 2",
			"row 1 has no day off (0)",
			"row 2, day 2: invalid value -1 (must be an integer between 0 and 3)",
		}, result.Errors)
	})

	t.Run("non positive personil count", func(t *testing.T) {
		result := ValidateGrid([][]int{}, 0)
		assert.Equal(t, []string{"personil count must be at least 1"}, result.Errors)
	})
}

func TestValidatePatternJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		result := ValidatePatternJSON(json.RawMessage(`[[1,3,2,3,2,2,0]]`), 1)
		assert.True(t, result.Valid)
	})

	t.Run("row that is not an array", func(t *testing.T) {
		result := ValidatePatternJSON(json.RawMessage(`[[1,3,2,3,2,2,0], "x"]`), 2)
		assert.Equal(t, []string{"row 2 must be an array"}, result.Errors)
	})

	t.Run("fractional and string cells", func(t *testing.T) {
		result := ValidatePatternJSON(json.RawMessage(`[[1.5,3,"2",3,2,2,0]]`), 1)
		assert.Equal(t, []string{
			"row 1, day 1: invalid value 1.5 (must be an integer between 0 and 3)",
			`row 1, day 3: invalid value "2" (must be an integer between 0 and 3)`,
		}, result.Errors)
	})

	t.Run("object instead of array", func(t *testing.T) {
		result := ValidatePatternJSON(json.RawMessage(`{"rows":1}`), 1)
		assert.Equal(t, []string{"pattern data must be an array"}, result.Errors)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		result := ValidatePatternJSON(json.RawMessage(`[[1,2`), 1)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "not valid JSON")
	})

	t.Run("empty body", func(t *testing.T) {
		result := ValidatePatternJSON(nil, 1)
		assert.Equal(t, []string{"pattern data must be an array"}, result.Errors)
	})
}

func TestExpandCyclicCorrectness(t *testing.T) {
	userID := uuid.New()
	april := Month{Year: 2025, Month: time.April}

	exp := Expand(april, []Assignment{{UserID: userID, Row: sampleRow}}, allShifts())

	require.Empty(t, exp.Errors)
	assert.Equal(t, 4, exp.Skipped)
	assert.Len(t, exp.Candidates, 26)

	for _, day := range []int{1, 7, 8, 29, 30} {
		expected := sampleRow[(day-1)%7]
		assert.Equal(t, expected, CodeForDay(sampleRow, day), "day %d", day)

		c, ok := candidateFor(t, exp, userID, day)
		if expected == CodeOff {
			assert.False(t, ok, "day %d is OFF and must have no candidate", day)
			continue
		}
		require.True(t, ok, "day %d", day)
		assert.Equal(t, uint(expected), c.ShiftID, "day %d", day)
		assert.Equal(t, april.Date(day), c.Date)
	}
}

func TestExpandCoversDay31(t *testing.T) {
	userID := uuid.New()
	january := Month{Year: 2025, Month: time.January}

	exp := Expand(january, []Assignment{{UserID: userID, Row: sampleRow}}, allShifts())

	c, ok := candidateFor(t, exp, userID, 31)
	require.True(t, ok, "day 31 must not be dropped")
	assert.Equal(t, uint(2), c.ShiftID)
	assert.Equal(t, "2025-01-31", c.Date)
	assert.Len(t, exp.Candidates, 27)
	assert.Equal(t, 4, exp.Skipped)
}

func TestExpandDay31WithoutActiveShiftIsAnError(t *testing.T) {
	userID := uuid.New()
	january := Month{Year: 2025, Month: time.January}

	// shift 2 is inactive, so every code-2 day becomes an error, day 31 included
	exp := Expand(january, []Assignment{{UserID: userID, Row: sampleRow}}, []ActiveShift{{ID: 1}, {ID: 3}})

	_, ok := candidateFor(t, exp, userID, 31)
	assert.False(t, ok)

	var found bool
	for _, e := range exp.Errors {
		if e.Date == "2025-01-31" {
			found = true
			assert.Equal(t, ReasonShiftNotFound, e.Reason)
			assert.Equal(t, userID, e.UserID)
		}
	}
	assert.True(t, found, "day 31 must appear in the error list")
}

func TestExpandFirstDayStaysInMonth(t *testing.T) {
	userID := uuid.New()
	for _, m := range []Month{{2025, time.March}, {2024, time.February}, {2025, time.December}} {
		exp := Expand(m, []Assignment{{UserID: userID, Row: sampleRow}}, allShifts())
		require.NotEmpty(t, exp.Candidates)
		assert.Equal(t, m.Start(), exp.Candidates[0].Date)
		assert.Equal(t, 1, exp.Candidates[0].Day)
	}
}

func TestExpandFebruary(t *testing.T) {
	userID := uuid.New()

	leap := Expand(Month{2024, time.February}, []Assignment{{UserID: userID, Row: sampleRow}}, allShifts())
	c, ok := candidateFor(t, leap, userID, 29)
	require.True(t, ok)
	assert.Equal(t, uint(1), c.ShiftID)

	common := Expand(Month{2025, time.February}, []Assignment{{UserID: userID, Row: sampleRow}}, allShifts())
	_, ok = candidateFor(t, common, userID, 29)
	assert.False(t, ok)
	assert.Equal(t, 28, len(common.Candidates)+common.Skipped)
}

func TestExpandOffDaysAreAbsent(t *testing.T) {
	userID := uuid.New()
	exp := Expand(Month{2025, time.January}, []Assignment{{UserID: userID, Row: sampleRow}}, allShifts())

	for _, c := range exp.Candidates {
		assert.NotEqual(t, CodeOff, CodeForDay(sampleRow, c.Day))
		assert.NotZero(t, c.ShiftID)
	}
	for _, day := range []int{7, 14, 21, 28} {
		_, ok := candidateFor(t, exp, userID, day)
		assert.False(t, ok, "day %d", day)
	}
}

func TestExpandMultipleUsersIndependent(t *testing.T) {
	alice, budi := uuid.New(), uuid.New()
	assignments := []Assignment{
		{UserID: alice, Row: sampleRow},
		{UserID: budi, Row: []int{0, 1, 1, 2, 2, 3, 3}},
	}

	exp := Expand(Month{2025, time.April}, assignments, allShifts())

	a1, ok := candidateFor(t, exp, alice, 1)
	require.True(t, ok)
	assert.Equal(t, uint(1), a1.ShiftID)

	_, ok = candidateFor(t, exp, budi, 1)
	assert.False(t, ok)

	b8, ok := candidateFor(t, exp, budi, 8)
	assert.False(t, ok, "day 8 repeats the OFF day of the cycle, got %+v", b8)

	b30, ok := candidateFor(t, exp, budi, 30)
	require.True(t, ok)
	assert.Equal(t, uint(1), b30.ShiftID)
}

func TestExpandEmptyRow(t *testing.T) {
	userID := uuid.New()
	exp := Expand(Month{2025, time.January}, []Assignment{{UserID: userID}}, allShifts())

	assert.Empty(t, exp.Candidates)
	require.Len(t, exp.Errors, 1)
	assert.Equal(t, "", exp.Errors[0].Date)
	assert.Contains(t, exp.Errors[0].String(), "pattern row is empty")
}

func TestExpandIsDeterministic(t *testing.T) {
	userID := uuid.New()
	assignments := []Assignment{{UserID: userID, Row: sampleRow}}

	first := Expand(Month{2025, time.January}, assignments, allShifts())
	second := Expand(Month{2025, time.January}, assignments, allShifts())

	assert.Equal(t, first, second)
}
