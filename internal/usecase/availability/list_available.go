package availability

import (
	"context"
	"log"

	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

// ======================================================
// CACHE CONTRACTS
// ======================================================

type Invalidator interface {
	InvalidateWindows(ctx context.Context) error
}

type WindowCache interface {
	Invalidator
	GetWindows(ctx context.Context) ([]models.ServiceAvailability, error)
	SetWindows(ctx context.Context, windows []models.ServiceAvailability) error
}

// ======================================================
// USE CASE
// ======================================================

type ListAvailable struct {
	repo  domain.Repository
	cache WindowCache
}

func NewListAvailable(repo domain.Repository, cache WindowCache) *ListAvailable {
	return &ListAvailable{
		repo:  repo,
		cache: cache,
	}
}

// Execute returns open windows, filtered in memory over the cached full
// listing. Cache failures fall through to Postgres.
func (uc *ListAvailable) Execute(
	ctx context.Context,
	filter domain.WindowFilter,
) ([]models.ServiceAvailability, error) {

	windows, err := uc.cachedWindows(ctx)
	if err != nil {
		return nil, err
	}

	return applyFilter(windows, filter), nil
}

func (uc *ListAvailable) cachedWindows(
	ctx context.Context,
) ([]models.ServiceAvailability, error) {

	if uc.cache != nil {
		cached, err := uc.cache.GetWindows(ctx)
		if err != nil {
			log.Println("availability cache read failed:", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	windows, err := uc.repo.ListAvailableWindows(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetWindows(ctx, windows); err != nil {
			log.Println("availability cache write failed:", err)
		}
	}

	return windows, nil
}

func applyFilter(
	windows []models.ServiceAvailability,
	filter domain.WindowFilter,
) []models.ServiceAvailability {

	out := make([]models.ServiceAvailability, 0, len(windows))
	for _, w := range windows {
		if !w.IsAvailable() {
			continue
		}
		if filter.ServiceID != nil && w.ServiceID != *filter.ServiceID {
			continue
		}
		if filter.Date != "" && w.Date != filter.Date {
			continue
		}
		if filter.IsHomeService != nil && w.IsHomeService != *filter.IsHomeService {
			continue
		}
		out = append(out, w)
	}
	return out
}
