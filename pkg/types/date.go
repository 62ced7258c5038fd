package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat формат календарной даты в API и БД
const DateFormat = "2006-01-02"

// Date represents a calendar date without a time component.
// Rental ranges, the availability calendar and the date selector all
// operate on whole days, so the zero time-of-day is normalized to UTC
// midnight to make comparisons unambiguous.
type Date struct {
	t time.Time
}

// NewDate создает Date из time.Time, отбрасывая время суток
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDateFromString парсит дату из строки формата YYYY-MM-DD
func NewDateFromString(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date string %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Today возвращает сегодняшнюю дату для переданного момента времени
func Today(now time.Time) Date {
	return NewDate(now)
}

// IsZero returns true if the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether both values name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays возвращает дату, сдвинутую на n дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil возвращает количество полных дней от d до other
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Time возвращает дату как time.Time (UTC, полночь)
func (d Date) Time() time.Time {
	return d.t
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateFormat)
}

// MarshalJSON сериализует дату как строку YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON десериализует дату из строки YYYY-MM-DD
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := NewDateFromString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку DATE
func (d Date) Value() (driver.Value, error) {
	if d.t.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan реализует sql.Scanner для чтения из колонки DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case []byte:
		parsed, err := NewDateFromString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := NewDateFromString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("types.Date: cannot scan %T", src)
	}
}
