package models

// User is a member of the security staff. Users are maintained by the
// account module; the roster engine only reads them.
type User struct {
	BaseModel
	Username string   `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	FullName string   `json:"full_name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone    string   `json:"phone" gorm:"size:20"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null;default:'guard'" validate:"required"`
	IsActive bool     `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
