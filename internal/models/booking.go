package models

import "time"

// Booking is a user's claim on a specific date+time for a service. The
// (appointment_date, appointment_time) pair is unique system-wide.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	// AvailabilityID links the booking to the capacity window it consumed.
	// Nil when the slot is not window-backed.
	AvailabilityID *uint `json:"availability_id"`

	AppointmentDate string `gorm:"size:10;uniqueIndex:idx_booking_slot;not null" json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string `gorm:"size:5;uniqueIndex:idx_booking_slot;not null" json:"appointment_time"`  // HH:mm

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	Reference string `gorm:"size:36" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
