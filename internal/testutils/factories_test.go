package testutils

import (
	"testing"
	"time"

	"guardops-backend/internal/roster"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternFactoryProducesValidGrid(t *testing.T) {
	f := NewFactorySet()

	pattern := f.Pattern.WithGrid("Pair", [][]int{{1, 1, 2, 2, 3, 3, 0}, {0, 3, 3, 1, 1, 2, 2}})
	grid, err := pattern.Grid()
	require.NoError(t, err)

	assert.Equal(t, 2, pattern.PersonilCount)
	assert.True(t, roster.ValidateGrid(grid, pattern.PersonilCount).Valid)
	assert.False(t, pattern.IsDefault)
	assert.True(t, f.Pattern.Default("Pair", grid).IsDefault)
}

func TestAssignmentFactoriesUseUTCDates(t *testing.T) {
	f := NewFactorySet()
	userID := uuid.New()

	pa := f.PatternAssignment.Create(userID, uuid.New(), 2025, time.January, 0)
	assert.Equal(t, "2025-01-01", time.Time(pa.AssignmentMonth).Format("2006-01-02"))

	sa := f.ShiftAssignment.Create(userID, 2, 2025, time.January, 31)
	assert.Equal(t, "2025-01-31", time.Time(sa.AssignmentDate).Format("2006-01-02"))
	assert.Equal(t, uint(2), sa.ShiftID)
}

func TestUserFactoryUniqueUsernames(t *testing.T) {
	f := NewUserFactory()
	assert.NotEqual(t, f.Create().Username, f.Create().Username)
}
