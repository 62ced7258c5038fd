package domain

// Business validation constants
const (
	MinRentalDays               = 1
	MaxRentalDays               = 90
	MaxAdvanceBookingDays       = 365
	MaxLocationLength           = 255
	MaxCancellationReasonLength = 500
	DefaultCurrency             = "USD"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses список статусов, блокирующих даты автомобиля.
// Используется при вычислении недоступных дат и проверке пересечений.
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// NonBlockingStatuses список статусов, не влияющих на доступность
var NonBlockingStatuses = []BookingStatus{
	StatusPending,
	StatusCancelled,
}
