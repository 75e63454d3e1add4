package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PatternAssignment binds one user to one row of a pattern for one month.
type PatternAssignment struct {
	BaseModel
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_pattern_assignments_user_month" validate:"required"`
	PatternID       uuid.UUID      `json:"pattern_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssignmentMonth datatypes.Date `json:"assignment_month" gorm:"type:date;not null;uniqueIndex:idx_pattern_assignments_user_month;index"`
	RowIndex        int            `json:"row_index" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Pattern Pattern `json:"pattern,omitempty" gorm:"foreignKey:PatternID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for PatternAssignment
func (PatternAssignment) TableName() string {
	return "pattern_assignments"
}
