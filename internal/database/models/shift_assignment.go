package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShiftAssignment is one user working one shift on one date. OFF days have no
// row. A user holds at most one shift per date.
type ShiftAssignment struct {
	BaseModel
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_shift_assignments_user_date"`
	ShiftID        uint           `json:"shift_id" gorm:"not null;index"`
	AssignmentDate datatypes.Date `json:"assignment_date" gorm:"type:date;not null;uniqueIndex:idx_shift_assignments_user_date;index"`
	IsReplacement  bool           `json:"is_replacement" gorm:"not null;default:false"`
	ReplacedUserID *uuid.UUID     `json:"replaced_user_id,omitempty" gorm:"type:uuid"`
	Notes          string         `json:"notes" gorm:"type:text"`

	// Relationships
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Shift Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
