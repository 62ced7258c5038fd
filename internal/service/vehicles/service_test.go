package vehicles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	vehicleRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/vehicle"
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles/models"
)

var testNow = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type vehicleRepoMock struct {
	createFn          func(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	getByIDFn         func(ctx context.Context, id int64) (*domain.Vehicle, error)
	getByHostIDFn     func(ctx context.Context, hostID int64) ([]*domain.Vehicle, error)
	setAvailabilityFn func(ctx context.Context, id int64, available bool) error
	deleteFn          func(ctx context.Context, id int64) error
}

func (m *vehicleRepoMock) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	return m.createFn(ctx, vehicle)
}

func (m *vehicleRepoMock) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return m.getByIDFn(ctx, id)
}

func (m *vehicleRepoMock) GetByHostID(ctx context.Context, hostID int64) ([]*domain.Vehicle, error) {
	return m.getByHostIDFn(ctx, hostID)
}

func (m *vehicleRepoMock) SetAvailability(ctx context.Context, id int64, available bool) error {
	return m.setAvailabilityFn(ctx, id, available)
}

func (m *vehicleRepoMock) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type bookingRepoMock struct {
	filterFn func(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error)
}

func (m *bookingRepoMock) GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
	if m.filterFn == nil {
		return nil, nil
	}
	return m.filterFn(ctx, filter)
}

const hostID = int64(2)

func hostVehicle() *domain.Vehicle {
	return &domain.Vehicle{ID: 10, HostID: hostID, Make: "Toyota", Model: "RAV4", Available: true}
}

func newTestService(vehicles *vehicleRepoMock, bookings *bookingRepoMock) *Service {
	svc := NewService(vehicles, bookings, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func validCreateRequest() *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		HostID:       hostID,
		Make:         "Toyota",
		Model:        "RAV4",
		Year:         2023,
		DailyRate:    80,
		Location:     "Lisbon",
		Category:     "suv",
		Transmission: "automatic",
		FuelType:     "petrol",
		Seats:        5,
	}
}

func TestCreate_Success(t *testing.T) {
	var created *domain.Vehicle
	vehicles := &vehicleRepoMock{
		createFn: func(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
			created = v
			stored := *v
			stored.ID = 10
			return &stored, nil
		},
	}

	resp, err := newTestService(vehicles, &bookingRepoMock{}).Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	require.NotNil(t, created)
	assert.True(t, created.Available, "new listing is bookable right away")
	assert.Equal(t, domain.DefaultCurrency, created.Currency, "currency defaults when omitted")
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(&vehicleRepoMock{}, &bookingRepoMock{})

	tests := []struct {
		name string
		mod  func(*models.CreateVehicleRequest)
	}{
		{"missing host", func(r *models.CreateVehicleRequest) { r.HostID = 0 }},
		{"blank make", func(r *models.CreateVehicleRequest) { r.Make = "  " }},
		{"year too old", func(r *models.CreateVehicleRequest) { r.Year = 1899 }},
		{"year in the future", func(r *models.CreateVehicleRequest) { r.Year = 2028 }},
		{"non-positive rate", func(r *models.CreateVehicleRequest) { r.DailyRate = 0 }},
		{"empty location", func(r *models.CreateVehicleRequest) { r.Location = "" }},
		{"no seats", func(r *models.CreateVehicleRequest) { r.Seats = 0 }},
		{"missing category", func(r *models.CreateVehicleRequest) { r.Category = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mod(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSetAvailability_HostOnly(t *testing.T) {
	var setTo *bool
	vehicles := &vehicleRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Vehicle, error) {
			return hostVehicle(), nil
		},
		setAvailabilityFn: func(ctx context.Context, id int64, available bool) error {
			setTo = &available
			return nil
		},
	}
	svc := newTestService(vehicles, &bookingRepoMock{})

	err := svc.SetAvailability(context.Background(), 10, &models.SetAvailabilityRequest{UserID: hostID, Available: false})
	require.NoError(t, err)
	require.NotNil(t, setTo)
	assert.False(t, *setTo)

	err = svc.SetAvailability(context.Background(), 10, &models.SetAvailabilityRequest{UserID: 99, Available: true})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDelete_BlockedByUpcomingBookings(t *testing.T) {
	vehicles := &vehicleRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Vehicle, error) {
			return hostVehicle(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			t.Fatal("vehicle with upcoming rentals must not be deleted")
			return nil
		},
	}
	bookings := &bookingRepoMock{
		filterFn: func(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
			assert.True(t, filter.BlockingOnly, "pending bookings do not block deletion")
			require.NotNil(t, filter.StartDate)
			assert.Equal(t, "2026-09-01", filter.StartDate.String())
			return []*domain.Booking{{ID: 5, Status: domain.StatusConfirmed}}, nil
		},
	}

	err := newTestService(vehicles, bookings).Delete(context.Background(), 10, hostID)

	assert.ErrorIs(t, err, ErrHasActiveBookings)
}

func TestDelete_Success(t *testing.T) {
	deleted := false
	vehicles := &vehicleRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Vehicle, error) {
			return hostVehicle(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	err := newTestService(vehicles, &bookingRepoMock{}).Delete(context.Background(), 10, hostID)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDelete_NotFound(t *testing.T) {
	vehicles := &vehicleRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Vehicle, error) {
			return nil, vehicleRepo.ErrVehicleNotFound
		},
	}

	err := newTestService(vehicles, &bookingRepoMock{}).Delete(context.Background(), 99, hostID)

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
