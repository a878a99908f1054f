package dto

import (
	"time"

	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

type AvailabilityDTO struct {
	ID             uint       `json:"id"`
	Service        ServiceDTO `json:"service"`
	Date           string     `json:"date"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	Capacity       int        `json:"capacity"`
	BookedCount    int        `json:"booked_count"`
	IsHomeService  bool       `json:"is_home_service"`
	IsAvailable    bool       `json:"is_available"`
	RemainingSlots int        `json:"remaining_slots"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewAvailabilityDTO(w *models.ServiceAvailability) AvailabilityDTO {
	return AvailabilityDTO{
		ID:             w.ID,
		Service:        NewServiceDTO(&w.Service),
		Date:           w.Date,
		StartTime:      w.StartTime,
		EndTime:        w.EndTime,
		Capacity:       w.Capacity,
		BookedCount:    w.BookedCount,
		IsHomeService:  w.IsHomeService,
		IsAvailable:    w.IsAvailable(),
		RemainingSlots: w.RemainingSlots(),
		CreatedAt:      w.CreatedAt,
	}
}

func NewAvailabilityDTOs(windows []models.ServiceAvailability) []AvailabilityDTO {
	out := make([]AvailabilityDTO, 0, len(windows))
	for i := range windows {
		out = append(out, NewAvailabilityDTO(&windows[i]))
	}
	return out
}
