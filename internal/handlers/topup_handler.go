package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PrimeCutStudio/salon-booking/internal/audit"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/httpresp"
	"github.com/PrimeCutStudio/salon-booking/internal/middleware"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
	"github.com/PrimeCutStudio/salon-booking/internal/payments"
)

type TopUpHandler struct {
	db       *gorm.DB
	payments *payments.Client
	audit    *audit.Dispatcher
}

func NewTopUpHandler(db *gorm.DB, payments *payments.Client, audit *audit.Dispatcher) *TopUpHandler {
	return &TopUpHandler{
		db:       db,
		payments: payments,
		audit:    audit,
	}
}

// --------- Requests ---------

type CreateTopUpRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type TopUpWebhookRequest struct {
	ExternalReference string `json:"external_reference" binding:"required"`
	Status            string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *TopUpHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var topups []models.CreditTopUp
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&topups).Error; err != nil {
		httperr.Internal(c, "failed_to_list_topups", "Could not list credit top-ups.")
		return
	}

	httpresp.List(c, topups)
}

// Create records the top-up as pending and hands the caller a hosted
// checkout link. The row is only settled by the provider webhook.
func (h *TopUpHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	topup := models.CreditTopUp{
		UserID:    userID,
		Amount:    req.Amount,
		Status:    models.TopUpStatusPending,
		Reference: uuid.NewString(),
	}

	var initPoint string
	if h.payments.Enabled() {
		checkout, err := h.payments.CreateTopUpCheckout(
			c.Request.Context(),
			topup.Reference,
			topup.Amount,
		)
		if err != nil {
			httperr.Internal(c, "payment_provider_error", "Could not start checkout.")
			return
		}
		topup.PaymentIntentID = checkout.PreferenceID
		initPoint = checkout.InitPoint
	}

	if err := h.db.Create(&topup).Error; err != nil {
		httperr.Internal(c, "failed_to_create_topup", "Could not create credit top-up.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "topup_created",
		Entity:   "credit_topup",
		EntityID: &topup.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"topup":      topup,
		"init_point": initPoint,
	})
}

// Webhook records the provider's settlement verdict. It is intentionally
// dumb: match by reference, update status, nothing else.
func (h *TopUpHandler) Webhook(c *gin.Context) {
	var req TopUpWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !models.IsValidTopUpStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Unknown top-up status.")
		return
	}

	var topup models.CreditTopUp
	if err := h.db.
		Where("reference = ?", req.ExternalReference).
		First(&topup).Error; err != nil {
		httperr.NotFound(c, "topup_not_found", "Credit top-up not found.")
		return
	}

	topup.Status = req.Status
	if err := h.db.Save(&topup).Error; err != nil {
		httperr.Internal(c, "failed_to_update_topup", "Could not update credit top-up.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &topup.UserID,
		Action:   "topup_" + req.Status,
		Entity:   "credit_topup",
		EntityID: &topup.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": topup.Status})
}
