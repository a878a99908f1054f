package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PrimeCutStudio/salon-booking/internal/audit"
	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

// ======================================================
// CACHE CONTRACT
// ======================================================

type Invalidator interface {
	InvalidateWindows(ctx context.Context) error
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	IsHomeService bool
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	cache Invalidator
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	cache Invalidator,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// Slot-backed scheduling: when a capacity window covers this exact
	// slot, the booking claims a unit of it in the same transaction as
	// the insert. No window means the booking stands on its own.
	window, err := uc.repo.GetWindowForSlot(
		ctx,
		svc.ID,
		in.Date,
		in.Time,
		in.IsHomeService,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID:          in.UserID,
		ServiceID:       svc.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
		Reference:       uuid.NewString(),
	}

	if window != nil {
		b.AvailabilityID = &window.ID
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		uc.audit.Dispatch(audit.Event{
			UserID: &in.UserID,
			Action: "booking_conflict",
			Entity: "booking",
			Metadata: map[string]any{
				"date": in.Date,
				"time": in.Time,
			},
		})
		return nil, err
	}

	b.Service = *svc

	if window != nil {
		uc.invalidate(ctx)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.InvalidateWindows(ctx)
	}
}
