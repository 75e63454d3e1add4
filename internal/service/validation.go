package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	apperrors "guardops-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// validateStruct runs the struct tags and turns the first failure into a
// ValidationError naming the JSON field.
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(toSnakeCase(fe.Field()), describeTag(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// validTimeOfDay reports whether s is a 24h HH:MM clock time
func validTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// decodeGrid decodes an already validated pattern grid. Integral floats such
// as 2.0 are accepted.
func decodeGrid(raw json.RawMessage) ([][]int, error) {
	var cells [][]float64
	if err := json.Unmarshal(raw, &cells); err != nil {
		return nil, fmt.Errorf("decode pattern data: %w", err)
	}
	grid := make([][]int, len(cells))
	for i, row := range cells {
		grid[i] = make([]int, len(row))
		for j, v := range row {
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("decode pattern data: row %d, day %d is not an integer", i+1, j+1)
			}
			grid[i][j] = int(v)
		}
	}
	return grid, nil
}
