package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = true", serviceID).
		First(&svc).Error; err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability windows
// --------------------------------------------------

func (r *BookingGormRepository) CreateWindow(
	ctx context.Context,
	w *models.ServiceAvailability,
) error {

	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeDuplicateWindow)
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) ListAvailableWindows(
	ctx context.Context,
) ([]models.ServiceAvailability, error) {

	var windows []models.ServiceAvailability
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("booked_count < capacity").
		Order("date ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *BookingGormRepository) GetWindowForSlot(
	ctx context.Context,
	serviceID uint,
	date string,
	startTime string,
	isHomeService bool,
) (*models.ServiceAvailability, error) {

	var w models.ServiceAvailability
	err := r.db.WithContext(ctx).
		Where(
			"service_id = ? AND date = ? AND start_time = ? AND is_home_service = ?",
			serviceID, date, startTime, isHomeService,
		).
		First(&w).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// reserveTx claims one capacity unit with a single conditional UPDATE, so
// two racing requests for the last slot can never both succeed.
func reserveTx(tx *gorm.DB, windowID uint) error {
	res := tx.
		Model(&models.ServiceAvailability{}).
		Where("id = ? AND booked_count < capacity", windowID).
		UpdateColumn("booked_count", gorm.Expr("booked_count + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeCapacityExceeded)
	}
	return nil
}

// releaseTx frees one capacity unit. The guard keeps booked_count from
// ever going negative; releasing an empty window is a no-op.
func releaseTx(tx *gorm.DB, windowID uint) error {
	return tx.
		Model(&models.ServiceAvailability{}).
		Where("id = ? AND booked_count > 0", windowID).
		UpdateColumn("booked_count", gorm.Expr("booked_count - 1")).Error
}

func (r *BookingGormRepository) Reserve(
	ctx context.Context,
	windowID uint,
) error {
	return reserveTx(r.db.WithContext(ctx), windowID)
}

func (r *BookingGormRepository) Release(
	ctx context.Context,
	windowID uint,
) error {
	return releaseTx(r.db.WithContext(ctx), windowID)
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}

		if b.AvailabilityID != nil {
			if err := reserveTx(tx, *b.AvailabilityID); err != nil {
				return err
			}
		}

		return nil
	})

	return err
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		First(&b, bookingID).Error; err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
	releaseWindow bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(b).Error; err != nil {
			return err
		}

		if releaseWindow && b.AvailabilityID != nil {
			if err := releaseTx(tx, *b.AvailabilityID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Booking{}, b.ID).Error; err != nil {
			return err
		}

		if b.AvailabilityID != nil && domain.HoldsSlot(domain.Status(b.Status)) {
			if err := releaseTx(tx, *b.AvailabilityID); err != nil {
				return err
			}
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
