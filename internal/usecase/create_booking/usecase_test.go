package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/restaurantservice"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = time.Now()
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetActiveByRestaurantAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeAvailabilityRepo struct {
	availability *domain.RestaurantAvailability
	err          error
}

func (f *fakeAvailabilityRepo) GetByRestaurantID(_ context.Context, _ int64) (*domain.RestaurantAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.availability, nil
}

type fakeRestaurantClient struct {
	err error
}

func (f *fakeRestaurantClient) GetActiveRestaurant(_ context.Context, restaurantID int64) (*restaurantservice.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &restaurantservice.Restaurant{ID: restaurantID, Name: "Trattoria", IsActive: true}, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-06-02 is a Monday.
var (
	testMonday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

func testAvailability() *domain.RestaurantAvailability {
	return &domain.RestaurantAvailability{
		RestaurantID:            1,
		ManagementMode:          domain.ModeGuestCount,
		TableTurningTimeMinutes: 60,
		Schedule: domain.WeeklySchedule{
			Monday: domain.DayTemplate{
				IsOpen:          true,
				Slots:           []types.TimeString{"18:00", "18:30", "19:00"},
				CapacityPerSlot: 10,
			},
		},
	}
}

func newTestUseCase(bookings *fakeBookingRepo, availability *fakeAvailabilityRepo, client *fakeRestaurantClient) *UseCase {
	uc := NewUseCase(bookings, availability, client, fakeTxManager{}, 30, 0, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testSunday}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:       7,
		RestaurantID: 1,
		Date:         testMonday,
		StartTime:    "6:30 PM",
		PartySize:    4,
		GuestName:    "Anna",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{availability: testAvailability()}, &fakeRestaurantClient{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "pending", resp.Status)
	// The staff-entered "6:30 PM" is normalized before it is stored.
	assert.Equal(t, types.TimeString("18:30"), resp.StartTime)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_RejectsSaturatedSlot(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: "18:00", PartySize: 8, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(repo, &fakeAvailabilityRepo{availability: testAvailability()}, &fakeRestaurantClient{})

	// 18:30 is inside the 18:00 booking's occupancy window, only 2 seats left.
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created, "no booking row may be written for a saturated slot")
}

func TestExecute_RejectsTimeOutsideSchedule(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: testAvailability()}, &fakeRestaurantClient{})

	req := validRequest()
	req.StartTime = "17:45"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotInSchedule)
}

func TestExecute_RejectsClosedDay(t *testing.T) {
	availability := testAvailability()
	availability.SpecialDates = map[string]domain.DayTemplate{"2025-06-02": {IsOpen: false}}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: availability}, &fakeRestaurantClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_RejectsWhenAvailabilityNotConfigured(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound},
		&fakeRestaurantClient{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAvailabilityNotConfigured)
}

func TestExecute_RestaurantErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: testAvailability()},
		&fakeRestaurantClient{err: restaurantservice.ErrRestaurantNotFound})
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	uc = newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: testAvailability()},
		&fakeRestaurantClient{err: restaurantservice.ErrRestaurantInactive})
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRestaurantInactive)
}

func TestExecute_InputValidation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{availability: testAvailability()}, &fakeRestaurantClient{})

	req := validRequest()
	req.StartTime = "6:xx PM"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.GuestName = "  "
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Date = testSunday.AddDate(0, 0, -2)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TableModeUsesTableAllocator(t *testing.T) {
	availability := &domain.RestaurantAvailability{
		RestaurantID:            1,
		ManagementMode:          domain.ModeTable,
		TableTurningTimeMinutes: 90,
		Schedule: domain.WeeklySchedule{
			Monday: domain.DayTemplate{IsOpen: true, Slots: []types.TimeString{"18:30"}},
		},
		Tables: []domain.Table{{ID: 1, Capacity: 4, IsActive: true}},
	}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartTime: "18:00", PartySize: 2, Status: domain.StatusSeated},
	}}

	uc := newTestUseCase(repo, &fakeAvailabilityRepo{availability: availability}, &fakeRestaurantClient{})

	// The seated party occupies the only qualifying table until 19:30.
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
