package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

func newTestSelector(bookings ...*domain.Booking) *Selector {
	return NewSelector(NewCalendar(bookings, testNow))
}

func TestSelector_SimpleRangeSelection(t *testing.T) {
	s := newTestSelector()

	var gotStart, gotEnd types.Date
	s.OnSelectStartDate = func(d types.Date) { gotStart = d }
	s.OnSelectEndDate = func(d types.Date) { gotEnd = d }

	require.True(t, s.Select(date("2026-09-10")))
	assert.Equal(t, PhaseEnd, s.Phase())
	assert.Equal(t, date("2026-09-10"), gotStart)

	require.True(t, s.Select(date("2026-09-13")))
	assert.Equal(t, PhaseStart, s.Phase(), "accepted end returns to start phase")
	assert.Equal(t, date("2026-09-13"), gotEnd)
	assert.True(t, s.HasCompleteRange())
}

func TestSelector_UnavailableDateIsNoOp(t *testing.T) {
	s := newTestSelector(booking(domain.StatusConfirmed, "2026-09-10", "2026-09-12"))

	callbackFired := false
	s.OnSelectStartDate = func(types.Date) { callbackFired = true }

	assert.False(t, s.Select(date("2026-09-11")), "click on an occupied date")
	assert.False(t, s.Select(date("2026-08-20")), "click on a past date")
	assert.Equal(t, PhaseStart, s.Phase())
	assert.True(t, s.StartDate().IsZero())
	assert.False(t, callbackFired)
}

func TestSelector_EndBeforeStartRejected(t *testing.T) {
	s := newTestSelector()

	require.True(t, s.Select(date("2026-09-10")))

	endFired := false
	s.OnSelectEndDate = func(types.Date) { endFired = true }

	assert.False(t, s.Select(date("2026-09-05")))
	assert.Equal(t, PhaseEnd, s.Phase(), "rejected end keeps the phase")
	assert.True(t, s.EndDate().IsZero())
	assert.False(t, endFired)
}

func TestSelector_SingleDayRental(t *testing.T) {
	s := newTestSelector()

	require.True(t, s.Select(date("2026-09-10")))
	require.True(t, s.Select(date("2026-09-10")), "end == start is a one-day rental")

	assert.Equal(t, date("2026-09-10"), s.StartDate())
	assert.Equal(t, date("2026-09-10"), s.EndDate())
	assert.True(t, s.HasCompleteRange())
}

func TestSelector_RangeAcrossBookingRejected(t *testing.T) {
	s := newTestSelector(booking(domain.StatusConfirmed, "2026-09-10", "2026-09-12"))

	require.True(t, s.Select(date("2026-09-08")))

	// Конец за бронированием: диапазон 8..14 накрыл бы чужие даты
	assert.False(t, s.Select(date("2026-09-14")))
	assert.Equal(t, PhaseEnd, s.Phase())
	assert.True(t, s.EndDate().IsZero())

	// Конец вплотную к бронированию принимается
	require.True(t, s.Select(date("2026-09-09")))
	assert.Equal(t, date("2026-09-09"), s.EndDate())
}

func TestSelector_RestartResetsStaleEnd(t *testing.T) {
	s := newTestSelector()

	require.True(t, s.Select(date("2026-09-10")))
	require.True(t, s.Select(date("2026-09-12")))
	require.True(t, s.HasCompleteRange())

	// Новый диапазон начинается позже прежнего конца - конец сбрасывается
	require.True(t, s.Select(date("2026-09-20")))
	assert.Equal(t, PhaseEnd, s.Phase())
	assert.Equal(t, date("2026-09-20"), s.StartDate())
	assert.True(t, s.EndDate().IsZero())
	assert.False(t, s.HasCompleteRange())
}

func TestSelector_RestartKeepsLaterEnd(t *testing.T) {
	s := newTestSelector()

	require.True(t, s.Select(date("2026-09-10")))
	require.True(t, s.Select(date("2026-09-15")))

	// Новое начало раньше прежнего конца - конец остаётся
	require.True(t, s.Select(date("2026-09-12")))
	assert.Equal(t, date("2026-09-12"), s.StartDate())
	assert.Equal(t, date("2026-09-15"), s.EndDate())
	assert.True(t, s.HasCompleteRange())
}

func TestSelector_CallbacksOnlyOnAcceptedTransitions(t *testing.T) {
	s := newTestSelector(booking(domain.StatusConfirmed, "2026-09-10", "2026-09-12"))

	startCalls, endCalls := 0, 0
	s.OnSelectStartDate = func(types.Date) { startCalls++ }
	s.OnSelectEndDate = func(types.Date) { endCalls++ }

	s.Select(date("2026-09-11")) // occupied, no-op
	s.Select(date("2026-09-05")) // accepted start
	s.Select(date("2026-09-03")) // end before start, rejected
	s.Select(date("2026-09-14")) // straddles the booking, rejected
	s.Select(date("2026-09-08")) // accepted end

	assert.Equal(t, 1, startCalls)
	assert.Equal(t, 1, endCalls)
}
