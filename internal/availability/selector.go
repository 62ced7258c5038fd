package availability

import "github.com/voom-app/VOOM-RentalService/pkg/types"

// Phase состояние выбора: какую границу диапазона принимаем следующей
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseEnd   Phase = "end"
)

// Selector implements the two-phase date selection state machine of the
// booking calendar. The owning layer feeds it confirmed date clicks;
// accepted transitions are reported through the callbacks, rejected
// clicks change nothing and fire nothing.
//
// Guarantees:
//   - an accepted (start, end) pair never overlaps a blocking booking;
//   - an accepted end date is never before its paired start date
//     (end == start is a legal single-day rental);
//   - after an accepted start selection the phase is PhaseEnd, after an
//     accepted end selection it returns to PhaseStart.
type Selector struct {
	calendar *Calendar
	phase    Phase

	startDate types.Date
	endDate   types.Date

	// Колбэки вызываются только на принятых переходах
	OnSelectStartDate func(types.Date)
	OnSelectEndDate   func(types.Date)
}

// NewSelector создает селектор дат поверх календаря занятости
func NewSelector(calendar *Calendar) *Selector {
	return &Selector{
		calendar: calendar,
		phase:    PhaseStart,
	}
}

// Phase возвращает текущую фазу выбора
func (s *Selector) Phase() Phase {
	return s.phase
}

// StartDate возвращает выбранную дату начала (нулевая, если не выбрана)
func (s *Selector) StartDate() types.Date {
	return s.startDate
}

// EndDate возвращает выбранную дату окончания (нулевая, если не выбрана)
func (s *Selector) EndDate() types.Date {
	return s.endDate
}

// HasCompleteRange reports whether both endpoints are selected
func (s *Selector) HasCompleteRange() bool {
	return !s.startDate.IsZero() && !s.endDate.IsZero()
}

// Select обрабатывает клик по дате. Возвращает true, если выбор принят.
func (s *Selector) Select(d types.Date) bool {
	// Клик по недоступной дате - no-op в любой фазе
	if s.calendar.IsDateUnavailable(d) {
		return false
	}

	switch s.phase {
	case PhaseStart:
		return s.selectStart(d)
	case PhaseEnd:
		return s.selectEnd(d)
	default:
		return false
	}
}

func (s *Selector) selectStart(d types.Date) bool {
	s.startDate = d

	// Ранее выбранный конец, оказавшийся раньше нового начала, сбрасываем
	if !s.endDate.IsZero() && s.endDate.Before(d) {
		s.endDate = types.Date{}
	}

	s.phase = PhaseEnd

	if s.OnSelectStartDate != nil {
		s.OnSelectStartDate(d)
	}
	return true
}

func (s *Selector) selectEnd(d types.Date) bool {
	// Конец раньше начала - отказ без смены состояния.
	// Равенство допустимо: аренда на один день.
	if d.Before(s.startDate) {
		return false
	}

	// Диапазон, накрывающий чужое бронирование, - отказ
	if s.calendar.RangeStraddlesBooking(s.startDate, d) {
		return false
	}

	s.endDate = d
	// Возвращаемся в фазу начала: пользователь может начать новый
	// диапазон, завершённый остаётся доступным для отправки
	s.phase = PhaseStart

	if s.OnSelectEndDate != nil {
		s.OnSelectEndDate(d)
	}
	return true
}
