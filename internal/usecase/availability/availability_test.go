package availability

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

type MockWindowCache struct {
	mock.Mock
}

func (m *MockWindowCache) InvalidateWindows(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWindowCache) GetWindows(ctx context.Context) ([]models.ServiceAvailability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceAvailability), args.Error(1)
}

func (m *MockWindowCache) SetWindows(ctx context.Context, windows []models.ServiceAvailability) error {
	args := m.Called(ctx, windows)
	return args.Error(0)
}

// ============================ CreateWindow ============================

func TestCreateWindow_Success(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockWindowCache{}

	uc := NewCreateWindow(repo, cache, nil)

	ctx := context.Background()
	svc := &models.Service{ID: 3, Name: "Haircut", IsActive: true}

	repo.On("GetActiveService", ctx, uint(3)).Return(svc, nil).Once()
	repo.On("CreateWindow", ctx, mock.AnythingOfType("*models.ServiceAvailability")).Return(nil).Once()
	cache.On("InvalidateWindows", ctx).Return(nil).Once()

	w, err := uc.Execute(ctx, CreateWindowInput{
		ActorID:   50,
		ServiceID: 3,
		Date:      "2026-09-10",
		StartTime: "14:00",
		EndTime:   "15:00",
		Capacity:  4,
	})

	assert.NoError(t, err)
	assert.NotNil(t, w)
	assert.Equal(t, 4, w.Capacity)
	assert.Equal(t, 0, w.BookedCount)
	assert.Equal(t, "Haircut", w.Service.Name)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateWindow_ValidationErrors(t *testing.T) {
	uc := NewCreateWindow(&MockRepository{}, nil, nil)
	ctx := context.Background()

	testCases := []struct {
		name         string
		input        CreateWindowInput
		expectedCode string
	}{
		{
			name:         "malformed date",
			input:        CreateWindowInput{ServiceID: 3, Date: "next tuesday", StartTime: "14:00", EndTime: "15:00", Capacity: 1},
			expectedCode: "invalid_date",
		},
		{
			name:         "malformed start time",
			input:        CreateWindowInput{ServiceID: 3, Date: "2026-09-10", StartTime: "25:00", EndTime: "15:00", Capacity: 1},
			expectedCode: "invalid_time",
		},
		{
			name:         "end before start",
			input:        CreateWindowInput{ServiceID: 3, Date: "2026-09-10", StartTime: "15:00", EndTime: "14:00", Capacity: 1},
			expectedCode: "invalid_time_range",
		},
		{
			name:         "end equals start",
			input:        CreateWindowInput{ServiceID: 3, Date: "2026-09-10", StartTime: "14:00", EndTime: "14:00", Capacity: 1},
			expectedCode: "invalid_time_range",
		},
		{
			name:         "zero capacity",
			input:        CreateWindowInput{ServiceID: 3, Date: "2026-09-10", StartTime: "14:00", EndTime: "15:00", Capacity: 0},
			expectedCode: "invalid_capacity",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := uc.Execute(ctx, tc.input)
			assert.Nil(t, w)
			assert.True(t, httperr.IsBusiness(err, tc.expectedCode))
		})
	}
}

func TestCreateWindow_DuplicateWindow(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockWindowCache{}

	uc := NewCreateWindow(repo, cache, nil)

	ctx := context.Background()
	svc := &models.Service{ID: 3, IsActive: true}

	repo.On("GetActiveService", ctx, uint(3)).Return(svc, nil).Once()
	repo.On("CreateWindow", ctx, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeDuplicateWindow)).Once()

	w, err := uc.Execute(ctx, CreateWindowInput{
		ActorID:   50,
		ServiceID: 3,
		Date:      "2026-09-10",
		StartTime: "14:00",
		EndTime:   "15:00",
		Capacity:  4,
	})

	assert.Nil(t, w)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateWindow))

	cache.AssertNotCalled(t, "InvalidateWindows")
}

// ============================ ListAvailable ============================

func sampleWindows() []models.ServiceAvailability {
	return []models.ServiceAvailability{
		{ID: 1, ServiceID: 3, Date: "2026-09-10", StartTime: "14:00", Capacity: 2, BookedCount: 0},
		{ID: 2, ServiceID: 3, Date: "2026-09-11", StartTime: "14:00", Capacity: 2, BookedCount: 2},
		{ID: 3, ServiceID: 4, Date: "2026-09-10", StartTime: "10:00", Capacity: 1, BookedCount: 0, IsHomeService: true},
	}
}

func TestListAvailable_CacheMiss_FillsCache(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockWindowCache{}

	uc := NewListAvailable(repo, cache)

	ctx := context.Background()
	windows := sampleWindows()

	cache.On("GetWindows", ctx).Return(nil, nil).Once()
	repo.On("ListAvailableWindows", ctx).Return(windows, nil).Once()
	cache.On("SetWindows", ctx, windows).Return(nil).Once()

	out, err := uc.Execute(ctx, domain.WindowFilter{})

	assert.NoError(t, err)
	// the full window is dropped, the open two remain
	assert.Len(t, out, 2)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestListAvailable_CacheHit_SkipsRepo(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockWindowCache{}

	uc := NewListAvailable(repo, cache)

	ctx := context.Background()
	cache.On("GetWindows", ctx).Return(sampleWindows(), nil).Once()

	out, err := uc.Execute(ctx, domain.WindowFilter{})

	assert.NoError(t, err)
	assert.Len(t, out, 2)

	repo.AssertNotCalled(t, "ListAvailableWindows")
}

func TestListAvailable_CacheError_FallsThrough(t *testing.T) {
	repo := &MockRepository{}
	cache := &MockWindowCache{}

	uc := NewListAvailable(repo, cache)

	ctx := context.Background()
	windows := sampleWindows()

	cache.On("GetWindows", ctx).Return(nil, errors.New("redis down")).Once()
	repo.On("ListAvailableWindows", ctx).Return(windows, nil).Once()
	cache.On("SetWindows", ctx, windows).Return(errors.New("redis down")).Once()

	out, err := uc.Execute(ctx, domain.WindowFilter{})

	assert.NoError(t, err)
	assert.Len(t, out, 2)

	repo.AssertExpectations(t)
}

func TestListAvailable_Filters(t *testing.T) {
	repo := &MockRepository{}

	uc := NewListAvailable(repo, nil)

	ctx := context.Background()
	repo.On("ListAvailableWindows", ctx).Return(sampleWindows(), nil)

	serviceID := uint(3)
	out, err := uc.Execute(ctx, domain.WindowFilter{ServiceID: &serviceID})
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)

	out, err = uc.Execute(ctx, domain.WindowFilter{Date: "2026-09-10"})
	assert.NoError(t, err)
	assert.Len(t, out, 2)

	home := true
	out, err = uc.Execute(ctx, domain.WindowFilter{IsHomeService: &home})
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, uint(3), out[0].ID)
}

func TestListAvailable_RepoError(t *testing.T) {
	repo := &MockRepository{}

	uc := NewListAvailable(repo, nil)

	ctx := context.Background()
	expectedErr := errors.New("database error")
	repo.On("ListAvailableWindows", ctx).Return(nil, expectedErr).Once()

	out, err := uc.Execute(ctx, domain.WindowFilter{})

	assert.Nil(t, out)
	assert.Equal(t, expectedErr, err)
}
