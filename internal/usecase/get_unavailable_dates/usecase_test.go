package get_unavailable_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	vehicleRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/vehicle"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

var testNow = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type bookingRepoMock struct {
	filterFn func(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error)
}

func (m *bookingRepoMock) GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
	if m.filterFn == nil {
		return nil, nil
	}
	return m.filterFn(ctx, filter)
}

type vehicleRepoMock struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Vehicle, error)
}

func (m *vehicleRepoMock) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	if m.getByIDFn == nil {
		return &domain.Vehicle{ID: id}, nil
	}
	return m.getByIDFn(ctx, id)
}

func date(s string) types.Date {
	d, err := types.NewDateFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dr(start, end string) domain.DateRange {
	return domain.DateRange{StartDate: date(start), EndDate: date(end)}
}

func newTestUseCase(bookings *bookingRepoMock) *UseCase {
	uc := NewUseCase(bookings, &vehicleRepoMock{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestMergeRanges(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.DateRange
		want  []domain.DateRange
	}{
		{
			name:  "disjoint ranges stay apart",
			input: []domain.DateRange{dr("2026-09-10", "2026-09-12"), dr("2026-09-20", "2026-09-22")},
			want:  []domain.DateRange{dr("2026-09-10", "2026-09-12"), dr("2026-09-20", "2026-09-22")},
		},
		{
			name:  "overlapping ranges merge",
			input: []domain.DateRange{dr("2026-09-10", "2026-09-15"), dr("2026-09-12", "2026-09-20")},
			want:  []domain.DateRange{dr("2026-09-10", "2026-09-20")},
		},
		{
			name:  "back-to-back ranges merge",
			input: []domain.DateRange{dr("2026-09-10", "2026-09-12"), dr("2026-09-13", "2026-09-15")},
			want:  []domain.DateRange{dr("2026-09-10", "2026-09-15")},
		},
		{
			name:  "unsorted input is sorted first",
			input: []domain.DateRange{dr("2026-09-20", "2026-09-22"), dr("2026-09-10", "2026-09-12")},
			want:  []domain.DateRange{dr("2026-09-10", "2026-09-12"), dr("2026-09-20", "2026-09-22")},
		},
		{
			name:  "contained range is swallowed",
			input: []domain.DateRange{dr("2026-09-10", "2026-09-20"), dr("2026-09-12", "2026-09-14")},
			want:  []domain.DateRange{dr("2026-09-10", "2026-09-20")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeRanges(tt.input))
		})
	}
}

func TestClampRanges(t *testing.T) {
	window := dr("2026-09-01", "2026-09-30")

	got := clampRanges([]domain.DateRange{
		dr("2026-08-25", "2026-09-03"), // хвост до окна обрезается
		dr("2026-09-10", "2026-09-12"), // целиком внутри
		dr("2026-09-28", "2026-10-05"), // хвост после окна обрезается
		dr("2026-10-10", "2026-10-12"), // целиком вне - выбрасывается
	}, window)

	assert.Equal(t, []domain.DateRange{
		dr("2026-09-01", "2026-09-03"),
		dr("2026-09-10", "2026-09-12"),
		dr("2026-09-28", "2026-09-30"),
	}, got)
}

func TestExecute_ProjectsBlockingBookings(t *testing.T) {
	bookings := &bookingRepoMock{
		filterFn: func(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
			assert.Equal(t, int64(10), filter.VehicleID)
			assert.True(t, filter.BlockingOnly)
			return []*domain.Booking{
				{Status: domain.StatusConfirmed, StartDate: date("2026-09-10"), EndDate: date("2026-09-12")},
				{Status: domain.StatusInProgress, StartDate: date("2026-09-13"), EndDate: date("2026-09-15")},
				{Status: domain.StatusConfirmed, StartDate: date("2026-10-01"), EndDate: date("2026-10-02")},
			}, nil
		},
	}

	resp, err := newTestUseCase(bookings).Execute(context.Background(), &Request{VehicleID: 10})

	require.NoError(t, err)
	assert.Equal(t, date("2026-09-01"), resp.From)
	// Смежные бронирования слиты в один интервал
	require.Len(t, resp.Ranges, 2)
	assert.Equal(t, date("2026-09-10"), resp.Ranges[0].StartDate)
	assert.Equal(t, date("2026-09-15"), resp.Ranges[0].EndDate)
	assert.Equal(t, date("2026-10-01"), resp.Ranges[1].StartDate)
}

func TestExecute_EmptyCalendar(t *testing.T) {
	resp, err := newTestUseCase(&bookingRepoMock{}).Execute(context.Background(), &Request{VehicleID: 10})

	require.NoError(t, err)
	assert.Empty(t, resp.Ranges)
}

func TestExecute_CustomHorizonClampsWindow(t *testing.T) {
	bookings := &bookingRepoMock{
		filterFn: func(ctx context.Context, filter domain.VehicleBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{Status: domain.StatusConfirmed, StartDate: date("2026-09-05"), EndDate: date("2026-09-20")},
			}, nil
		},
	}

	resp, err := newTestUseCase(bookings).Execute(context.Background(), &Request{VehicleID: 10, HorizonDays: 10})

	require.NoError(t, err)
	assert.Equal(t, date("2026-09-11"), resp.To)
	require.Len(t, resp.Ranges, 1)
	assert.Equal(t, date("2026-09-11"), resp.Ranges[0].EndDate, "range is clamped to the horizon")
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := NewUseCase(&bookingRepoMock{}, &vehicleRepoMock{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Vehicle, error) {
			return nil, vehicleRepo.ErrVehicleNotFound
		},
	}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	_, err := uc.Execute(context.Background(), &Request{VehicleID: 99})

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_InvalidVehicleID(t *testing.T) {
	_, err := newTestUseCase(&bookingRepoMock{}).Execute(context.Background(), &Request{VehicleID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
