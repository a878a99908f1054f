package booking

import (
	"context"

	"github.com/PrimeCutStudio/salon-booking/internal/audit"
	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	ActorID   uint
	ActorRole string

	BookingID uint
	Status    string
	Notes     *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateStatus struct {
	repo  domain.Repository
	cache Invalidator
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	cache Invalidator,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	privileged := models.IsPrivilegedRole(in.ActorRole)

	if !privileged && b.UserID != in.ActorID {
		return nil, httperr.ErrBusiness(httperr.CodeNotOwner)
	}

	from := domain.Status(b.Status)
	next := domain.Status(in.Status)

	if privileged {
		err = domain.ApplyStatus(b, next)
	} else {
		err = domain.OwnerCancel(b, next)
	}
	if err != nil {
		return nil, err
	}

	if in.Notes != nil {
		b.Notes = *in.Notes
	}

	release := b.AvailabilityID != nil && domain.ReleasesSlot(from, next)

	if err := uc.repo.UpdateBooking(ctx, b, release); err != nil {
		return nil, err
	}

	if release {
		uc.invalidate(ctx)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from": string(from),
			"to":   string(next),
		},
	})

	return b, nil
}

func (uc *UpdateStatus) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.InvalidateWindows(ctx)
	}
}
