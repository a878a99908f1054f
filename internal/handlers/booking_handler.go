package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/dto"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/middleware"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
	ucBooking "github.com/PrimeCutStudio/salon-booking/internal/usecase/booking"
)

// ======================================================
// USE CASE CONTRACTS
// ======================================================

type BookingCreator interface {
	Execute(ctx context.Context, in ucBooking.CreateBookingInput) (*models.Booking, error)
}

type BookingStatusUpdater interface {
	Execute(ctx context.Context, in ucBooking.UpdateStatusInput) (*models.Booking, error)
}

type BookingDeleter interface {
	Execute(ctx context.Context, actorID uint, bookingID uint) error
}

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo   domain.Repository
	create BookingCreator
	update BookingStatusUpdater
	delete BookingDeleter
}

func NewBookingHandler(
	repo domain.Repository,
	create BookingCreator,
	update BookingStatusUpdater,
	delete BookingDeleter,
) *BookingHandler {
	return &BookingHandler{
		repo:   repo,
		create: create,
		update: update,
		delete: delete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" binding:"required"` // HH:mm
	IsHomeService   bool   `json:"is_home_service"`
	Notes           string `json:"notes"`
}

type UpdateBookingRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:        userID,
		ServiceID:     req.ServiceID,
		Date:          req.AppointmentDate,
		Time:          req.AppointmentTime,
		IsHomeService: req.IsHomeService,
		Notes:         req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidService):
			httperr.BadRequest(c, httperr.CodeInvalidService, "Invalid service selected.")
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			httperr.BadRequest(c, httperr.CodeSlotTaken, "This time slot is already booked.")
		case httperr.IsBusiness(err, httperr.CodeCapacityExceeded):
			httperr.Conflict(c, httperr.CodeCapacityExceeded, "This availability window is full.")
		case httperr.IsBusiness(err, "invalid_date"), httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, err.Error(), "Invalid appointment date or time.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewBookingDTO(b, false))
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if models.IsPrivilegedRole(role) {
		bookings, err := h.repo.ListBookings(c.Request.Context())
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
			return
		}
		c.JSON(http.StatusOK, dto.NewBookingDTOs(bookings, true))
		return
	}

	bookings, err := h.repo.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingDTOs(bookings, false))
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	if models.IsPrivilegedRole(role) {
		b, err := h.repo.GetBookingByID(c.Request.Context(), id)
		if err != nil {
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
			return
		}
		c.JSON(http.StatusOK, dto.NewBookingDTO(b, true))
		return
	}

	b, err := h.repo.GetBookingForUser(c.Request.Context(), id, userID)
	if err != nil {
		httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingDTO(b, false))
}

// ======================================================
// UPDATE (status transitions)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.update.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		ActorID:   userID,
		ActorRole: role,
		BookingID: id,
		Status:    req.Status,
		Notes:     req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeBookingNotFound):
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
		case httperr.IsBusiness(err, httperr.CodeNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only modify your own bookings"})
		case httperr.IsBusiness(err, httperr.CodeOnlyPending):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You can only cancel pending bookings"})
		case httperr.IsBusiness(err, httperr.CodeOnlyCancel):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You can only cancel bookings"})
		case httperr.IsBusiness(err, httperr.CodeInvalidStatus):
			httperr.BadRequest(c, httperr.CodeInvalidStatus, "Unknown booking status.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Could not update booking.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewBookingDTO(b, models.IsPrivilegedRole(role)))
}

// ======================================================
// DELETE (staff/admin)
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), userID, id); err != nil {
		if httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_booking", "Could not delete booking.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}
