package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	bookingRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/booking"
	"github.com/voom-app/VOOM-RentalService/internal/service/bookings/models"
	"github.com/voom-app/VOOM-RentalService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type bookingRepoMock struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Booking, error)
	getByRenterFn  func(ctx context.Context, renterID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	filterFn       func(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.BookingStatus) error
	cancelFn       func(ctx context.Context, id int64, reason string) error
}

func (m *bookingRepoMock) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *bookingRepoMock) GetByRenterID(ctx context.Context, renterID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.getByRenterFn(ctx, renterID, status)
}

func (m *bookingRepoMock) GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
	return m.filterFn(ctx, filter)
}

func (m *bookingRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *bookingRepoMock) Cancel(ctx context.Context, id int64, reason string) error {
	return m.cancelFn(ctx, id, reason)
}

type vehicleRepoMock struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Vehicle, error)
}

func (m *vehicleRepoMock) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return m.getByIDFn(ctx, id)
}

const (
	renterID = int64(1)
	hostID   = int64(2)
	otherID  = int64(3)
)

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        5,
		Reference: "VOOM-2026-000005",
		VehicleID: 10,
		RenterID:  renterID,
		Status:    status,
	}
}

func newTestService(bookings *bookingRepoMock) *Service {
	vehicles := &vehicleRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, HostID: hostID}, nil
		},
	}
	return NewService(bookings, vehicles, nopLogger{})
}

func TestGetByID_AccessRules(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusConfirmed), nil
		},
	}
	svc := newTestService(bookings)

	resp, err := svc.GetByID(context.Background(), 5, renterID)
	require.NoError(t, err, "renter sees own booking")
	assert.Equal(t, int64(5), resp.ID)

	_, err = svc.GetByID(context.Background(), 5, hostID)
	assert.NoError(t, err, "vehicle host sees bookings of his vehicle")

	_, err = svc.GetByID(context.Background(), 5, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	_, err := newTestService(bookings).GetByID(context.Background(), 99, renterID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetRenterBookings_StatusFilter(t *testing.T) {
	var gotStatus *domain.BookingStatus
	bookings := &bookingRepoMock{
		getByRenterFn: func(ctx context.Context, id int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
			gotStatus = status
			return []*domain.Booking{testBooking(domain.StatusCompleted)}, nil
		},
	}
	svc := newTestService(bookings)

	resp, err := svc.GetRenterBookings(context.Background(), &models.GetRenterBookingsRequest{
		RenterID: renterID,
		Status:   ptr.Ptr("completed"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.StatusCompleted, *gotStatus)

	_, err = svc.GetRenterBookings(context.Background(), &models.GetRenterBookingsRequest{
		RenterID: renterID,
		Status:   ptr.Ptr("parked"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetVehicleBookings_HostOnly(t *testing.T) {
	bookings := &bookingRepoMock{
		filterFn: func(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
	}
	svc := newTestService(bookings)

	_, err := svc.GetVehicleBookings(context.Background(), &models.GetVehicleBookingsRequest{
		UserID:    hostID,
		VehicleID: 10,
	})
	assert.NoError(t, err)

	_, err = svc.GetVehicleBookings(context.Background(), &models.GetVehicleBookingsRequest{
		UserID:    renterID,
		VehicleID: 10,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		userID  int64
		wantErr error
	}{
		{"renter cancels pending booking", domain.StatusPending, renterID, nil},
		{"host cancels confirmed booking", domain.StatusConfirmed, hostID, nil},
		{"stranger cannot cancel", domain.StatusPending, otherID, ErrAccessDenied},
		{"in-progress rental cannot be cancelled", domain.StatusInProgress, renterID, ErrCannotCancel},
		{"completed rental cannot be cancelled", domain.StatusCompleted, renterID, ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cancelledReason string
			bookings := &bookingRepoMock{
				getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
					return testBooking(tt.status), nil
				},
				cancelFn: func(ctx context.Context, id int64, reason string) error {
					cancelledReason = reason
					return nil
				},
			}

			err := newTestService(bookings).Cancel(context.Background(), 5, &models.CancelBookingRequest{
				UserID:             tt.userID,
				CancellationReason: "change of plans",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, cancelledReason, "repository must not be touched")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "change of plans", cancelledReason)
		})
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.BookingStatus
		newStatus string
		wantErr   error
	}{
		{"confirmed to in_progress", domain.StatusConfirmed, "in_progress", nil},
		{"in_progress to completed", domain.StatusInProgress, "completed", nil},
		{"pending cannot be started", domain.StatusPending, "in_progress", ErrInvalidTransition},
		{"confirmed cannot be completed", domain.StatusConfirmed, "completed", ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, "in_progress", ErrInvalidTransition},
		{"pending is not reachable via update", domain.StatusConfirmed, "pending", ErrInvalidTransition},
		{"unknown status", domain.StatusConfirmed, "parked", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &bookingRepoMock{
				getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
					return testBooking(tt.current), nil
				},
				updateStatusFn: func(ctx context.Context, id int64, status domain.BookingStatus) error {
					return nil
				},
			}

			err := newTestService(bookings).UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
				UserID: hostID,
				Status: tt.newStatus,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateStatus_HostOnly(t *testing.T) {
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return testBooking(domain.StatusConfirmed), nil
		},
	}

	err := newTestService(bookings).UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		UserID: renterID,
		Status: "in_progress",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
