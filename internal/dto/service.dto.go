package dto

import "github.com/PrimeCutStudio/salon-booking/internal/models"

type ServiceDTO struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	DurationDisplay string  `json:"duration_display"`
	IsActive        bool    `json:"is_active"`
}

func NewServiceDTO(s *models.Service) ServiceDTO {
	return ServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		DurationDisplay: s.DurationDisplay(),
		IsActive:        s.IsActive,
	}
}

func NewServiceDTOs(services []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(services))
	for i := range services {
		out = append(out, NewServiceDTO(&services[i]))
	}
	return out
}
