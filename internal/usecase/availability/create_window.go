package availability

import (
	"context"
	"time"

	"github.com/PrimeCutStudio/salon-booking/internal/audit"
	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateWindowInput struct {
	ActorID   uint
	ServiceID uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:mm
	EndTime   string // HH:mm

	Capacity      int
	IsHomeService bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateWindow struct {
	repo  domain.Repository
	cache Invalidator
	audit *audit.Dispatcher
}

func NewCreateWindow(
	repo domain.Repository,
	cache Invalidator,
	audit *audit.Dispatcher,
) *CreateWindow {
	return &CreateWindow{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateWindow) Execute(
	ctx context.Context,
	in CreateWindowInput,
) (*models.ServiceAvailability, error) {

	if err := validateSlot(in.Date, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	if in.Capacity < 1 {
		return nil, httperr.ErrBusiness("invalid_capacity")
	}

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	w := &models.ServiceAvailability{
		ServiceID:     in.ServiceID,
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Capacity:      in.Capacity,
		BookedCount:   0,
		IsHomeService: in.IsHomeService,
	}

	if err := uc.repo.CreateWindow(ctx, w); err != nil {
		return nil, err
	}
	w.Service = *svc

	uc.invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "window_created",
		Entity:   "service_availability",
		EntityID: &w.ID,
	})

	return w, nil
}

func (uc *CreateWindow) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.InvalidateWindows(ctx)
	}
}

// validateSlot checks the date and the half-open [start, end) interval.
func validateSlot(date, start, end string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	startT, err := time.Parse("15:04", start)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	endT, err := time.Parse("15:04", end)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	if !endT.After(startT) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	return nil
}
