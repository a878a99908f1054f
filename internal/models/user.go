package models

import (
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Gender    string `gorm:"size:10" json:"gender"`

	Role string `gorm:"size:10;default:'user'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsPrivileged reports whether the user has system-wide read/write access.
func (u *User) IsPrivileged() bool {
	return IsPrivilegedRole(u.Role)
}

func IsPrivilegedRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}
