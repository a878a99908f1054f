package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/httpresp"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

type EquipmentHandler struct {
	db *gorm.DB
}

func NewEquipmentHandler(db *gorm.DB) *EquipmentHandler {
	return &EquipmentHandler{db: db}
}

// List is public and only exposes new equipment available as add-ons.
func (h *EquipmentHandler) List(c *gin.Context) {
	var equipment []models.Equipment
	if err := h.db.
		Preload("Services").
		Where("is_new = true").
		Order("id ASC").
		Find(&equipment).Error; err != nil {
		httperr.Internal(c, "failed_to_list_equipment", "Could not list equipment.")
		return
	}

	httpresp.List(c, equipment)
}
