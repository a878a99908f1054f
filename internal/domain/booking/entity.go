package booking

import (
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus mutates the booking for a privileged actor. Any target
// status is accepted as long as it is a known one.
func ApplyStatus(b *models.Booking, next Status) error {
	if !IsValid(next) {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	b.Status = string(next)
	return nil
}

// OwnerCancel mutates the booking for its owning user, who may only
// cancel while the booking is still pending.
func OwnerCancel(b *models.Booking, next Status) error {
	if !IsValid(next) {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
	if err := CanOwnerUpdate(Status(b.Status), next); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

// ReleasesSlot reports whether moving from to next frees the capacity
// unit held on the linked availability window.
func ReleasesSlot(from Status, next Status) bool {
	return HoldsSlot(from) && next == StatusCancelled
}
