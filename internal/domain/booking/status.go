package booking

import "github.com/PrimeCutStudio/salon-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

// CanOwnerUpdate enforces the regular-user rules: only the owner's own
// pending booking may change status, and only into cancelled. Privileged
// actors bypass this entirely.
func CanOwnerUpdate(current Status, next Status) error {
	if next != StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeOnlyCancel)
	}
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeOnlyPending)
	}
	return nil
}

// HoldsSlot reports whether a booking in this status still claims a unit
// of window capacity. Completed bookings consumed their slot for good.
func HoldsSlot(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}
