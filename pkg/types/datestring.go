package types

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// ErrInvalidDateString возвращается при некорректном формате строки даты
var ErrInvalidDateString = errors.New("invalid date string format")

// DateString календарная дата в формате "YYYY-MM-DD"
// Как и TimeString, упорядочена лексикографически
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет, что строка соответствует формату YYYY-MM-DD.
// Как и у TimeString, требуется каноническая запись с нулевым дополнением,
// иначе лексикографический порядок расходится с хронологическим
func (d DateString) Validate() error {
	parsed, err := time.Parse(DateFormat, string(d))
	if err != nil || parsed.Format(DateFormat) != string(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// IsBefore возвращает true, если дата строго раньше other
func (d DateString) IsBefore(other DateString) bool {
	return d < other
}

// IsAfter возвращает true, если дата строго позже other
func (d DateString) IsAfter(other DateString) bool {
	return d > other
}

// Time возвращает дату как time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	parsed, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return parsed, nil
}

// At комбинирует дату и время суток в один момент времени (UTC)
func (d DateString) At(t TimeString) (time.Time, error) {
	combined, err := time.Parse(DateFormat+" "+TimeFormat, string(d)+" "+string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidDateString, string(d), string(t))
	}
	return combined, nil
}

// AddDays возвращает дату, сдвинутую на days дней вперед
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}
