package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/PrimeCutStudio/salon-booking/internal/domain/booking"
	"github.com/PrimeCutStudio/salon-booking/internal/httperr"
	"github.com/PrimeCutStudio/salon-booking/internal/models"
)

// Mock structures

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActiveService(ctx context.Context, serviceID uint) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) CreateWindow(ctx context.Context, w *models.ServiceAvailability) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockRepository) ListAvailableWindows(ctx context.Context) ([]models.ServiceAvailability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceAvailability), args.Error(1)
}

func (m *MockRepository) GetWindowForSlot(ctx context.Context, serviceID uint, date, startTime string, isHomeService bool) (*models.ServiceAvailability, error) {
	args := m.Called(ctx, serviceID, date, startTime, isHomeService)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceAvailability), args.Error(1)
}

func (m *MockRepository) Reserve(ctx context.Context, windowID uint) error {
	args := m.Called(ctx, windowID)
	return args.Error(0)
}

func (m *MockRepository) Release(ctx context.Context, windowID uint) error {
	args := m.Called(ctx, windowID)
	return args.Error(0)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetBookingByID(ctx context.Context, bookingID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) GetBookingForUser(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookingsForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) UpdateBooking(ctx context.Context, b *models.Booking, releaseWindow bool) error {
	args := m.Called(ctx, b, releaseWindow)
	return args.Error(0)
}

func (m *MockRepository) DeleteBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

var _ domain.Repository = (*MockRepository)(nil)

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateWindows(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ============================ CreateBooking ============================

func TestCreateBooking_Success_NoWindow(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockInvalidator{}

	uc := NewCreateBooking(repo, cache, nil)

	ctx := context.Background()
	svc := &models.Service{ID: 3, Name: "Haircut", Price: 40, IsActive: true}

	repo.On("GetActiveService", ctx, uint(3)).Return(svc, nil).Once()
	repo.On("GetWindowForSlot", ctx, uint(3), "2026-09-10", "14:00", false).Return(nil, nil).Once()
	repo.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil).Once()

	b, err := uc.Execute(ctx, CreateBookingInput{
		UserID:    7,
		ServiceID: 3,
		Date:      "2026-09-10",
		Time:      "14:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, uint(7), b.UserID)
	assert.Equal(t, "pending", b.Status)
	assert.Nil(t, b.AvailabilityID)
	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, "Haircut", b.Service.Name)

	repo.AssertExpectations(t)
	cache.AssertNotCalled(t, "InvalidateWindows")
}

func TestCreateBooking_Success_WindowBacked(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockInvalidator{}

	uc := NewCreateBooking(repo, cache, nil)

	ctx := context.Background()
	svc := &models.Service{ID: 3, Name: "Haircut", IsActive: true}
	window := &models.ServiceAvailability{
		ID:        12,
		ServiceID: 3,
		Date:      "2026-09-10",
		StartTime: "14:00",
		Capacity:  2,
	}

	repo.On("GetActiveService", ctx, uint(3)).Return(svc, nil).Once()
	repo.On("GetWindowForSlot", ctx, uint(3), "2026-09-10", "14:00", true).Return(window, nil).Once()
	repo.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil).Once()
	cache.On("InvalidateWindows", ctx).Return(nil).Once()

	b, err := uc.Execute(ctx, CreateBookingInput{
		UserID:        7,
		ServiceID:     3,
		Date:          "2026-09-10",
		Time:          "14:00",
		IsHomeService: true,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.NotNil(t, b.AvailabilityID)
	assert.Equal(t, uint(12), *b.AvailabilityID)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	uc := NewCreateBooking(&MockRepository{}, nil, nil)
	ctx := context.Background()

	testCases := []struct {
		name         string
		input        CreateBookingInput
		expectedCode string
	}{
		{
			name:         "malformed date",
			input:        CreateBookingInput{ServiceID: 3, Date: "10/09/2026", Time: "14:00"},
			expectedCode: "invalid_date",
		},
		{
			name:         "malformed time",
			input:        CreateBookingInput{ServiceID: 3, Date: "2026-09-10", Time: "2pm"},
			expectedCode: "invalid_time",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := uc.Execute(ctx, tc.input)
			assert.Nil(t, b)
			assert.True(t, httperr.IsBusiness(err, tc.expectedCode))
		})
	}
}

func TestCreateBooking_InactiveService(t *testing.T) {
	repo := &MockRepository{}

	uc := NewCreateBooking(repo, nil, nil)

	ctx := context.Background()
	repo.On("GetActiveService", ctx, uint(9)).
		Return(nil, httperr.ErrBusiness(httperr.CodeInvalidService)).Once()

	b, err := uc.Execute(ctx, CreateBookingInput{
		UserID:    7,
		ServiceID: 9,
		Date:      "2026-09-10",
		Time:      "14:00",
	})

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidService))

	repo.AssertNotCalled(t, "CreateBooking")
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockInvalidator{}

	uc := NewCreateBooking(repo, cache, nil)

	ctx := context.Background()
	svc := &models.Service{ID: 3, IsActive: true}

	repo.On("GetActiveService", ctx, uint(3)).Return(svc, nil).Once()
	repo.On("GetWindowForSlot", ctx, uint(3), "2026-09-10", "14:00", false).Return(nil, nil).Once()
	repo.On("CreateBooking", ctx, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeSlotTaken)).Once()

	b, err := uc.Execute(ctx, CreateBookingInput{
		UserID:    7,
		ServiceID: 3,
		Date:      "2026-09-10",
		Time:      "14:00",
	})

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	repo.AssertExpectations(t)
	cache.AssertNotCalled(t, "InvalidateWindows")
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	repo := &MockRepository{}

	uc := NewCreateBooking(repo, nil, nil)

	ctx := context.Background()
	svc := &models.Service{ID: 3, IsActive: true}
	window := &models.ServiceAvailability{ID: 12, ServiceID: 3, Capacity: 1, BookedCount: 1}

	repo.On("GetActiveService", ctx, uint(3)).Return(svc, nil).Once()
	repo.On("GetWindowForSlot", ctx, uint(3), "2026-09-10", "14:00", false).Return(window, nil).Once()
	repo.On("CreateBooking", ctx, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeCapacityExceeded)).Once()

	b, err := uc.Execute(ctx, CreateBookingInput{
		UserID:    7,
		ServiceID: 3,
		Date:      "2026-09-10",
		Time:      "14:00",
	})

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCapacityExceeded))

	repo.AssertExpectations(t)
}

func TestCreateBooking_WindowLookupError(t *testing.T) {
	repo := &MockRepository{}

	uc := NewCreateBooking(repo, nil, nil)

	ctx := context.Background()
	svc := &models.Service{ID: 3, IsActive: true}
	expectedErr := errors.New("database error")

	repo.On("GetActiveService", ctx, uint(3)).Return(svc, nil).Once()
	repo.On("GetWindowForSlot", ctx, uint(3), "2026-09-10", "14:00", false).Return(nil, expectedErr).Once()

	b, err := uc.Execute(ctx, CreateBookingInput{
		UserID:    7,
		ServiceID: 3,
		Date:      "2026-09-10",
		Time:      "14:00",
	})

	assert.Nil(t, b)
	assert.Equal(t, expectedErr, err)

	repo.AssertNotCalled(t, "CreateBooking")
}
