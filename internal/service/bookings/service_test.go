package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	restaurantClient "github.com/m04kA/SMC-ReservationService/internal/integrations/restaurantservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledReason string
	updatedStatus   domain.BookingStatus

	getErr    error
	cancelErr error
	listErr   error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.UserID != userID {
			continue
		}
		if status != nil && booking.Status != *status {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.RestaurantBookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.RestaurantID != filter.RestaurantID {
			continue
		}
		if !filter.IncludeInactive && !booking.IsActive() {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type fakeRestaurantClient struct {
	restaurant *restaurantClient.Restaurant
	err        error
}

func (f *fakeRestaurantClient) GetRestaurant(_ context.Context, _ int64) (*restaurantClient.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.restaurant, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		UserID:       100,
		RestaurantID: 10,
		BookingDate:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    "18:00",
		PartySize:    4,
		Status:       domain.StatusConfirmed,
		GuestName:    "Ivan",
	}
}

func testRestaurant(ownerID int64) *restaurantClient.Restaurant {
	return &restaurantClient.Restaurant{
		ID:       10,
		Name:     "Trattoria",
		OwnerID:  ownerID,
		IsActive: true,
	}
}

func newTestService(repo *fakeBookingRepo, client *fakeRestaurantClient) *Service {
	return NewService(repo, client, nopLogger{})
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(999)})

	resp, err := svc.GetByID(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "18:00", resp.StartTime)
	assert.Equal(t, "2025-06-02", resp.Date)
}

func TestGetByID_RestaurantOwnerHasAccess(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	resp, err := svc.GetByID(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.UserID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	_, err := svc.GetByID(context.Background(), 1, 777)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := newTestService(repo, &fakeRestaurantClient{})

	_, err := svc.GetByID(context.Background(), 42, 100)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_FiltersByStatus(t *testing.T) {
	confirmed := testBooking()
	cancelled := testBooking()
	cancelled.ID = 2
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: confirmed, 2: cancelled}}
	svc := newTestService(repo, &fakeRestaurantClient{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 100,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := newTestService(repo, &fakeRestaurantClient{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 100,
		Status: ptr.Ptr("eaten"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetRestaurantBookings_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	_, err := svc.GetRestaurantBookings(context.Background(), &models.GetRestaurantBookingsRequest{
		RestaurantID: 10,
		UserID:       777,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetRestaurantBookings(context.Background(), &models.GetRestaurantBookingsRequest{
		RestaurantID: 10,
		UserID:       500,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetRestaurantBookings_ExcludesInactiveByDefault(t *testing.T) {
	active := testBooking()
	completed := testBooking()
	completed.ID = 2
	completed.Status = domain.StatusCompleted

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: active, 2: completed}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	resp, err := svc.GetRestaurantBookings(context.Background(), &models.GetRestaurantBookingsRequest{
		RestaurantID: 10,
		UserID:       500,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.GetRestaurantBookings(context.Background(), &models.GetRestaurantBookingsRequest{
		RestaurantID:    10,
		UserID:          500,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestCancel_ByBookingOwner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             100,
		CancellationReason: "plans changed",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "plans changed", repo.cancelledReason)
}

func TestCancel_ByRestaurantOwner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             500,
		CancellationReason: "kitchen closed",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 777})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_CompletedBookingRejected(t *testing.T) {
	completed := testBooking()
	completed.Status = domain.StatusCompleted

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: completed}}
	svc := newTestService(repo, &fakeRestaurantClient{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 100, Status: "seated"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 500, Status: "seated"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSeated, repo.updatedStatus)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{restaurant: testRestaurant(500)})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 500, Status: "teleported"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_RestaurantLookupFails(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: testBooking()}}
	svc := newTestService(repo, &fakeRestaurantClient{err: errors.New("connection refused")})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 777})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
