package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/middleware"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

type CartHandler struct {
	db *gorm.DB
}

func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db}
}

// --------- Requests ---------

type AddToCartRequest struct {
	ServiceID          uint    `json:"service_id" binding:"required"`
	Quantity           int     `json:"quantity"`
	UseNewEquipment    bool    `json:"use_new_equipment"`
	EquipmentSurcharge float64 `json:"equipment_surcharge"`
}

// --------- Helpers ---------

// getOrCreateCart lazily provisions the user's cart on first access.
func (h *CartHandler) getOrCreateCart(c *gin.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := h.db.
		Preload("Items.Service").
		Where("user_id = ?", userID).
		First(&cart).Error

	if err == nil {
		return &cart, nil
	}

	cart = models.Cart{UserID: userID}
	if err := h.db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func cartPayload(cart *models.Cart) gin.H {
	return gin.H{
		"id":           cart.ID,
		"items":        cart.Items,
		"total_amount": cart.TotalAmount(),
		"items_count":  cart.ItemsCount(),
		"created_at":   cart.CreatedAt,
		"updated_at":   cart.UpdatedAt,
	}
}

// --------- Handlers ---------

func (h *CartHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	cart, err := h.getOrCreateCart(c, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Could not load cart.")
		return
	}

	c.JSON(http.StatusOK, cartPayload(cart))
}

// Add merges quantity when the same (service, equipment) line already
// exists in the cart.
func (h *CartHandler) Add(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND is_active = true", req.ServiceID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	cart, err := h.getOrCreateCart(c, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Could not load cart.")
		return
	}

	var item models.CartItem
	err = h.db.
		Where(
			"cart_id = ? AND service_id = ? AND use_new_equipment = ?",
			cart.ID, svc.ID, req.UseNewEquipment,
		).
		First(&item).Error

	if err == nil {
		item.Quantity += quantity
		if err := h.db.Save(&item).Error; err != nil {
			httperr.Internal(c, "failed_to_update_cart", "Could not update cart.")
			return
		}
	} else {
		item = models.CartItem{
			CartID:             cart.ID,
			ServiceID:          svc.ID,
			Quantity:           quantity,
			UseNewEquipment:    req.UseNewEquipment,
			EquipmentSurcharge: req.EquipmentSurcharge,
		}
		if err := h.db.Create(&item).Error; err != nil {
			httperr.Internal(c, "failed_to_update_cart", "Could not update cart.")
			return
		}
	}

	item.Service = svc
	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	itemID := c.Param("item_id")

	res := h.db.
		Where(
			"id = ? AND cart_id IN (?)",
			itemID,
			h.db.Model(&models.Cart{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&models.CartItem{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_cart", "Could not update cart.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "cart_item_not_found", "Cart item not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	cart, err := h.getOrCreateCart(c, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_cart", "Could not load cart.")
		return
	}

	if err := h.db.
		Where("cart_id = ?", cart.ID).
		Delete(&models.CartItem{}).Error; err != nil {
		httperr.Internal(c, "failed_to_update_cart", "Could not update cart.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
