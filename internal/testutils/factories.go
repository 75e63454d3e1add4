package testutils

import (
	"time"

	"guardops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test guard with a unique username
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: "guard." + id.String()[:8],
		FullName: "Test Guard",
		Phone:    "+62-812-0000-0000",
		Role:     models.UserRoleGuard,
		IsActive: true,
	}
}

// WithName sets the username and full name
func (f *UserFactory) WithName(username, fullName string) *models.User {
	user := f.Create()
	user.Username = username
	user.FullName = fullName
	return user
}

// WithRole sets a custom role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Standard returns the three shifts pattern codes 1..3 refer to
func (f *ShiftFactory) Standard() []*models.Shift {
	return []*models.Shift{
		{ID: 1, Name: "Pagi", Code: "P", StartTime: "07:00", EndTime: "15:00", Color: "#4CAF50", IsActive: true},
		{ID: 2, Name: "Siang", Code: "S", StartTime: "15:00", EndTime: "23:00", Color: "#FF9800", IsActive: true},
		{ID: 3, Name: "Malam", Code: "M", StartTime: "23:00", EndTime: "07:00", Color: "#3F51B5", IsActive: true},
	}
}

// WithCode creates a shift with the given code and no fixed ID
func (f *ShiftFactory) WithCode(code string) *models.Shift {
	return &models.Shift{
		Name:      "Shift " + code,
		Code:      code,
		StartTime: "08:00",
		EndTime:   "16:00",
		IsActive:  true,
	}
}

// PatternFactory provides methods to create test Pattern data
type PatternFactory struct{}

// NewPatternFactory creates a new PatternFactory
func NewPatternFactory() *PatternFactory {
	return &PatternFactory{}
}

// Create creates a single-row pattern
func (f *PatternFactory) Create() *models.Pattern {
	return f.WithGrid("Test Pattern", [][]int{{1, 1, 2, 2, 3, 3, 0}})
}

// WithGrid creates a pattern for the given grid. Personil count follows the
// number of rows.
func (f *PatternFactory) WithGrid(name string, grid [][]int) *models.Pattern {
	pattern := &models.Pattern{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			CreatedBy: "admin",
		},
		Name:          name,
		Description:   "A test pattern",
		PersonilCount: len(grid),
	}
	_ = pattern.SetGrid(grid)
	return pattern
}

// Default creates a default pattern for the grid
func (f *PatternFactory) Default(name string, grid [][]int) *models.Pattern {
	pattern := f.WithGrid(name, grid)
	pattern.IsDefault = true
	return pattern
}

// PatternAssignmentFactory provides methods to create test PatternAssignment data
type PatternAssignmentFactory struct{}

// NewPatternAssignmentFactory creates a new PatternAssignmentFactory
func NewPatternAssignmentFactory() *PatternAssignmentFactory {
	return &PatternAssignmentFactory{}
}

// Create assigns row of pattern to user for the month starting at year/month
func (f *PatternAssignmentFactory) Create(userID, patternID uuid.UUID, year int, month time.Month, row int) *models.PatternAssignment {
	return &models.PatternAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedBy: "admin",
		},
		UserID:          userID,
		PatternID:       patternID,
		AssignmentMonth: datatypes.Date(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)),
		RowIndex:        row,
	}
}

// ShiftAssignmentFactory provides methods to create test ShiftAssignment data
type ShiftAssignmentFactory struct{}

// NewShiftAssignmentFactory creates a new ShiftAssignmentFactory
func NewShiftAssignmentFactory() *ShiftAssignmentFactory {
	return &ShiftAssignmentFactory{}
}

// Create puts user on shiftID for one day
func (f *ShiftAssignmentFactory) Create(userID uuid.UUID, shiftID uint, year int, month time.Month, day int) *models.ShiftAssignment {
	return &models.ShiftAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedBy: "admin",
		},
		UserID:         userID,
		ShiftID:        shiftID,
		AssignmentDate: datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)),
	}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User              *UserFactory
	Shift             *ShiftFactory
	Pattern           *PatternFactory
	PatternAssignment *PatternAssignmentFactory
	ShiftAssignment   *ShiftAssignmentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:              NewUserFactory(),
		Shift:             NewShiftFactory(),
		Pattern:           NewPatternFactory(),
		PatternAssignment: NewPatternAssignmentFactory(),
		ShiftAssignment:   NewShiftAssignmentFactory(),
	}
}
