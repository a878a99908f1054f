package models

import "time"

// ServiceAvailability is a bounded-capacity time window for a service on a
// given date. At most one window exists per (service, date, start_time,
// delivery mode), enforced by the composite unique index.
type ServiceAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"uniqueIndex:idx_service_slot;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	Date      string `gorm:"size:10;uniqueIndex:idx_service_slot;not null" json:"date"`       // YYYY-MM-DD
	StartTime string `gorm:"size:5;uniqueIndex:idx_service_slot;not null" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Capacity    int `gorm:"not null;default:1" json:"capacity"`
	BookedCount int `gorm:"not null;default:0" json:"booked_count"`

	IsHomeService bool `gorm:"uniqueIndex:idx_service_slot;default:false" json:"is_home_service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *ServiceAvailability) IsAvailable() bool {
	return a.BookedCount < a.Capacity
}

func (a *ServiceAvailability) RemainingSlots() int {
	if a.BookedCount >= a.Capacity {
		return 0
	}
	return a.Capacity - a.BookedCount
}
