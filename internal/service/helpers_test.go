package service_test

import (
	"time"

	"guardops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func datatypesDate(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

func newPattern(name string, grid [][]int) *models.Pattern {
	p := &models.Pattern{
		BaseModel:     models.BaseModel{ID: uuid.New(), CreatedBy: "admin"},
		Name:          name,
		PersonilCount: len(grid),
	}
	if err := p.SetGrid(grid); err != nil {
		panic(err)
	}
	return p
}

func newUser(username, fullName string) models.User {
	return models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  username,
		FullName:  fullName,
		Role:      models.UserRoleGuard,
		IsActive:  true,
	}
}

func newAssignment(user models.User, pattern *models.Pattern, month time.Time, rowIndex int) models.PatternAssignment {
	return models.PatternAssignment{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		UserID:          user.ID,
		PatternID:       pattern.ID,
		AssignmentMonth: datatypesDate(month),
		RowIndex:        rowIndex,
		User:            user,
		Pattern:         *pattern,
	}
}

func standardShifts() []models.Shift {
	return []models.Shift{
		{ID: 1, Name: "Morning", Code: "P", StartTime: "07:00", EndTime: "15:00", Color: "#4CAF50", IsActive: true},
		{ID: 2, Name: "Afternoon", Code: "S", StartTime: "15:00", EndTime: "23:00", Color: "#2196F3", IsActive: true},
		{ID: 3, Name: "Night", Code: "M", StartTime: "23:00", EndTime: "07:00", Color: "#9C27B0", IsActive: true},
	}
}
