package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/dto"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/middleware"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
	ucAvailability "github.com/PrimeCutStudio/salon-booking/internal/usecase/availability"
)

// ======================================================
// USE CASE CONTRACTS
// ======================================================

type WindowLister interface {
	Execute(ctx context.Context, filter domain.WindowFilter) ([]models.ServiceAvailability, error)
}

type WindowCreator interface {
	Execute(ctx context.Context, in ucAvailability.CreateWindowInput) (*models.ServiceAvailability, error)
}

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	list   WindowLister
	create WindowCreator
}

func NewAvailabilityHandler(list WindowLister, create WindowCreator) *AvailabilityHandler {
	return &AvailabilityHandler{
		list:   list,
		create: create,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWindowRequest struct {
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"` // HH:mm
	EndTime       string `json:"end_time" binding:"required"`   // HH:mm
	Capacity      int    `json:"capacity" binding:"required,min=1"`
	IsHomeService bool   `json:"is_home_service"`
}

// ======================================================
// LIST (public)
// ======================================================

func (h *AvailabilityHandler) List(c *gin.Context) {
	var filter domain.WindowFilter

	if s := strings.TrimSpace(c.Query("service_id")); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
			return
		}
		serviceID := uint(id)
		filter.ServiceID = &serviceID
	}

	filter.Date = strings.TrimSpace(c.Query("date"))

	if s := strings.TrimSpace(c.Query("is_home_service")); s != "" {
		home := strings.EqualFold(s, "true")
		filter.IsHomeService = &home
	}

	windows, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Could not list availability windows.")
		return
	}

	c.JSON(http.StatusOK, dto.NewAvailabilityDTOs(windows))
}

// ======================================================
// CREATE (staff/admin)
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	w, err := h.create.Execute(c.Request.Context(), ucAvailability.CreateWindowInput{
		ActorID:       actorID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Capacity:      req.Capacity,
		IsHomeService: req.IsHomeService,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidService):
			httperr.BadRequest(c, httperr.CodeInvalidService, "Invalid service selected.")
		case httperr.IsBusiness(err, httperr.CodeDuplicateWindow):
			httperr.BadRequest(c, httperr.CodeDuplicateWindow, "A window already exists for this slot.")
		case httperr.IsBusiness(err, "invalid_date"),
			httperr.IsBusiness(err, "invalid_time"),
			httperr.IsBusiness(err, "invalid_time_range"),
			httperr.IsBusiness(err, "invalid_capacity"):
			httperr.BadRequest(c, err.Error(), "Invalid window definition.")
		default:
			httperr.Internal(c, "failed_to_create_window", "Could not create availability window.")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewAvailabilityDTO(w))
}
