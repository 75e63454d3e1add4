package roster

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	// CycleLength is the number of days in one pattern row
	CycleLength = 7

	// CodeOff marks a day without a shift
	CodeOff = 0

	// MaxShiftCode is the highest shift code a pattern cell may hold
	MaxShiftCode = 3
)

// ValidationResult holds every problem found in a pattern grid.
// Any non-empty Errors list makes the pattern invalid.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (r *ValidationResult) add(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ValidatePatternJSON decodes raw JSON and validates it. Malformed JSON is
// reported through the same error list.
func ValidatePatternJSON(raw json.RawMessage, personilCount int) ValidationResult {
	var data interface{}
	if len(raw) == 0 {
		return ValidatePattern(nil, personilCount)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return ValidationResult{Valid: false, Errors: []string{fmt.Sprintf("pattern data is not valid JSON: %v", err)}}
	}
	return ValidatePattern(data, personilCount)
}

// ValidateGrid validates an already typed grid.
func ValidateGrid(grid [][]int, personilCount int) ValidationResult {
	if grid == nil {
		return ValidatePattern(nil, personilCount)
	}
	rows := make([]interface{}, len(grid))
	for i, row := range grid {
		if row == nil {
			rows[i] = nil
			continue
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		rows[i] = cells
	}
	return ValidatePattern(rows, personilCount)
}

// ValidatePattern checks a decoded pattern grid. It never stops at the first
// problem except when the grid itself is not a sequence.
func ValidatePattern(data interface{}, personilCount int) ValidationResult {
	result := ValidationResult{Errors: []string{}}

	rows, ok := data.([]interface{})
	if !ok {
		result.add("pattern data must be an array")
		return result
	}

	if personilCount < 1 {
		result.add("personil count must be at least 1")
	}
	if len(rows) != personilCount {
		result.add("pattern has %d rows but personil count is %d", len(rows), personilCount)
	}

	for i, raw := range rows {
		rowNum := i + 1
		cells, ok := raw.([]interface{})
		if !ok {
			result.add("row %d must be an array", rowNum)
			continue
		}

		if len(cells) != CycleLength {
			result.add("row %d must have exactly %d days, got %d", rowNum, CycleLength, len(cells))
		}

		hasOff := false
		for j, cell := range cells {
			code, ok := shiftCode(cell)
			if !ok {
				result.add("row %d, day %d: invalid value %s (must be an integer between %d and %d)",
					rowNum, j+1, formatCell(cell), CodeOff, MaxShiftCode)
				continue
			}
			if code == CodeOff {
				hasOff = true
			}
		}

		if !hasOff {
			result.add("row %d has no day off (%d)", rowNum, CodeOff)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// shiftCode reports whether v is an integer in [0, MaxShiftCode].
func shiftCode(v interface{}) (int, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f != math.Trunc(f) || f < CodeOff || f > MaxShiftCode {
		return 0, false
	}
	return int(f), true
}

func formatCell(v interface{}) string {
	switch v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case nil:
		return "null"
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
