package models

import "time"

// Shift is a named time-of-day definition. Pattern codes 1..3 resolve to the
// shift with the same ID.
type Shift struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;size:50" validate:"required,max=50"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null;size:10" validate:"required,max=10"`
	StartTime string    `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime   string    `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	Color     string    `json:"color" gorm:"size:20"`
	IsActive  bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
