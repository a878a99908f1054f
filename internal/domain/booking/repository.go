package booking

import (
	"context"

	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

type WindowFilter struct {
	ServiceID     *uint
	Date          string
	IsHomeService *bool
}

type Repository interface {
	// -------- Service catalog --------
	GetActiveService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability windows --------
	CreateWindow(
		ctx context.Context,
		w *models.ServiceAvailability,
	) error

	ListAvailableWindows(
		ctx context.Context,
	) ([]models.ServiceAvailability, error)

	// GetWindowForSlot returns nil without error when no window covers
	// the slot (slot-backed scheduling not in use for it).
	GetWindowForSlot(
		ctx context.Context,
		serviceID uint,
		date string,
		startTime string,
		isHomeService bool,
	) (*models.ServiceAvailability, error)

	// Reserve atomically claims one capacity unit; it must never lose an
	// update when two callers race for the last slot.
	Reserve(
		ctx context.Context,
		windowID uint,
	) error

	// Release frees one capacity unit, floored at zero.
	Release(
		ctx context.Context,
		windowID uint,
	) error

	// -------- Bookings --------

	// CreateBooking inserts the booking and, when it is window-backed,
	// reserves the window inside the same transaction.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	// UpdateBooking persists a status/notes mutation and, when
	// releaseWindow is set, frees the linked window in the same
	// transaction.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
		releaseWindow bool,
	) error

	// DeleteBooking removes the row and frees a still-held window in the
	// same transaction.
	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
