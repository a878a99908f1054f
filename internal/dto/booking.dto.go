package dto

import (
	"time"

	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

type BookingUserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type BookingDTO struct {
	ID              uint            `json:"id"`
	User            *BookingUserDTO `json:"user,omitempty"`
	ServiceName     string          `json:"service_name"`
	ServicePrice    float64         `json:"service_price"`
	AvailabilityID  *uint           `json:"availability_id,omitempty"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	Reference       string          `json:"reference"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewBookingDTO flattens the service join the way the display layer
// expects. The user block is only filled on privileged listings, where
// the row was loaded with its owner.
func NewBookingDTO(b *models.Booking, withUser bool) BookingDTO {
	out := BookingDTO{
		ID:              b.ID,
		ServiceName:     b.Service.Name,
		ServicePrice:    b.Service.Price,
		AvailabilityID:  b.AvailabilityID,
		AppointmentDate: b.AppointmentDate,
		AppointmentTime: b.AppointmentTime,
		Status:          b.Status,
		Notes:           b.Notes,
		Reference:       b.Reference,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if withUser {
		out.User = &BookingUserDTO{
			ID:       b.User.ID,
			Username: b.User.Username,
			Email:    b.User.Email,
			FullName: b.User.FullName(),
		}
	}

	return out
}

func NewBookingDTOs(bookings []models.Booking, withUser bool) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingDTO(&bookings[i], withUser))
	}
	return out
}
