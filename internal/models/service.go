package models

import (
	"fmt"
	"time"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"`

	DurationMinutes int  `json:"duration_minutes"`
	IsActive        bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DurationDisplay renders the duration as "1h 30min" / "2h" / "45min".
func (s *Service) DurationDisplay() string {
	hours := s.DurationMinutes / 60
	minutes := s.DurationMinutes % 60

	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%dh %dmin", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dmin", minutes)
}
