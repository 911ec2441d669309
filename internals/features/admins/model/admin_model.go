package model

import "time"

// AdminModel backs both Admin and Staff accounts; role decides which views
// an account shows up in. Staff endpoints are a role-filtered slice of this
// same table, never a separate store.
type AdminModel struct {
	ID        int       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:name"`
	Email     string    `json:"email" gorm:"column:email"`
	Password  string    `json:"-" gorm:"column:password"`
	Role      string    `json:"role" gorm:"column:role;default:'Admin'"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (AdminModel) TableName() string { return "admins" }

const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)
