package booking

import (
	"context"

	"github.com/PrimeCutStudio/salon-booking/internal/audit"
	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
)

// DeleteBooking is privileged-only; regular users cancel instead of
// deleting. A still-held window is released alongside the row removal.
type DeleteBooking struct {
	repo  domain.Repository
	cache Invalidator
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	cache Invalidator,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) error {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b); err != nil {
		return err
	}

	if b.AvailabilityID != nil && domain.HoldsSlot(domain.Status(b.Status)) {
		if uc.cache != nil {
			_ = uc.cache.InvalidateWindows(ctx)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
