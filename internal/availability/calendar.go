// Package availability реализует календарь занятости автомобиля и
// двухфазный выбор диапазона дат аренды. Пакет чистый: никакого I/O,
// список бронирований поставляется вызывающей стороной.
package availability

import (
	"time"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// BlockedRanges проецирует блокирующие бронирования автомобиля в список
// закрытых интервалов недоступности. Бронирования со статусами pending и
// cancelled не блокируют даты. Записи с некорректным интервалом (нулевые
// даты, конец раньше начала) пропускаются, а не приводят к ошибке.
func BlockedRanges(bookings []*domain.Booking) []domain.DateRange {
	ranges := make([]domain.DateRange, 0, len(bookings))

	for _, booking := range bookings {
		if !booking.IsBlocking() {
			continue
		}

		r := booking.DateRange()
		if !r.IsValid() {
			continue
		}

		ranges = append(ranges, r)
	}

	return ranges
}

// Calendar отвечает на вопрос "можно ли выбрать дату d" для одного
// автомобиля. Дата недоступна, если она раньше сегодняшнего дня или
// попадает внутрь закрытого интервала любого блокирующего бронирования
// (граничные дни интервала тоже заняты).
type Calendar struct {
	today  types.Date
	ranges []domain.DateRange
}

// NewCalendar создает календарь занятости из блокирующих бронирований
func NewCalendar(bookings []*domain.Booking, now time.Time) *Calendar {
	return &Calendar{
		today:  types.Today(now),
		ranges: BlockedRanges(bookings),
	}
}

// IsDateUnavailable reports whether d cannot be selected for a new booking
func (c *Calendar) IsDateUnavailable(d types.Date) bool {
	// Ретроактивные бронирования запрещены
	if d.Before(c.today) {
		return true
	}

	for _, r := range c.ranges {
		if r.Contains(d) {
			return true
		}
	}

	return false
}

// RangeStraddlesBooking reports whether the closed candidate range
// [start, end] would overlap an existing blocking interval. The check
// mirrors the selector's end-date rule: a blocking boundary strictly
// between start and end means the proposed range swallows a booking.
func (c *Calendar) RangeStraddlesBooking(start, end types.Date) bool {
	for _, r := range c.ranges {
		if r.StartDate.After(start) && r.StartDate.Before(end) {
			return true
		}
		if r.EndDate.After(start) && r.EndDate.Before(end) {
			return true
		}
	}
	return false
}

// Ranges возвращает интервалы недоступности календаря
func (c *Calendar) Ranges() []domain.DateRange {
	return c.ranges
}
