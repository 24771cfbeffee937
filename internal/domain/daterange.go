package domain

import (
	"errors"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

// ErrEndBeforeStart возвращается при попытке выбрать дату возврата
// раньше уже выбранной даты выдачи
var ErrEndBeforeStart = errors.New("return date cannot be before pickup date")

// RangeFocus подсказывает UI, какой элемент выбора открыть следующим.
// Это эргономическая подсказка, а не жесткое ограничение: любое поле
// диапазона можно менять в любой момент
type RangeFocus string

const (
	FocusNone      RangeFocus = ""
	FocusStartDate RangeFocus = "start_date"
	FocusStartTime RangeFocus = "start_time"
	FocusEndDate   RangeFocus = "end_date"
	FocusEndTime   RangeFocus = "end_time"
)

// DateRange is the pickup/return selection being built by a renter.
// Времена всегда заполнены (по умолчанию - границы окна выдачи объявления),
// даты пусты, пока не выбраны. Значение иммутабельно: методы выбора
// возвращают новый диапазон
type DateRange struct {
	StartDate types.DateString
	StartTime types.TimeString
	EndDate   types.DateString
	EndTime   types.TimeString

	Focus RangeFocus
}

// NewDateRange returns an empty range with times set to the listing defaults
func NewDateRange(hours OperatingHours) DateRange {
	return DateRange{
		StartTime: hours.Start,
		EndTime:   hours.End,
		Focus:     FocusStartDate,
	}
}

// IsComplete returns true once both dates are set
func (r DateRange) IsComplete() bool {
	return !r.StartDate.IsZero() && !r.EndDate.IsZero()
}

// IsEmpty returns true if no date has been picked yet
func (r DateRange) IsEmpty() bool {
	return r.StartDate.IsZero() && r.EndDate.IsZero()
}

// SelectStartDate picks the pickup date.
//
// Если дата возврата уже выбрана и новая дата выдачи позже нее,
// дата возврата сбрасывается: более поздний выбор начала означает,
// что пользователь строит диапазон заново
func (r DateRange) SelectStartDate(date types.DateString) DateRange {
	r.StartDate = date
	if !r.EndDate.IsZero() && date.IsAfter(r.EndDate) {
		r.EndDate = ""
	}
	r.Focus = FocusStartTime
	return r
}

// SelectEndDate picks the return date.
//
// Выбор даты возврата раньше выбранной даты выдачи отклоняется с ошибкой,
// диапазон не меняется
func (r DateRange) SelectEndDate(date types.DateString) (DateRange, error) {
	if !r.StartDate.IsZero() && date.IsBefore(r.StartDate) {
		return r, ErrEndBeforeStart
	}
	r.EndDate = date
	r.Focus = FocusEndTime
	return r, nil
}

// SelectStartTime sets the pickup time. No cross-field validation here:
// итоговая длительность всегда тарифицируется минимум как один день
func (r DateRange) SelectStartTime(t types.TimeString) DateRange {
	r.StartTime = t
	if r.EndDate.IsZero() {
		r.Focus = FocusEndDate
	} else {
		r.Focus = FocusNone
	}
	return r
}

// SelectEndTime sets the return time
func (r DateRange) SelectEndTime(t types.TimeString) DateRange {
	r.EndTime = t
	r.Focus = FocusNone
	return r
}

// Clear resets the range: dates emptied, times back to listing defaults
func (r DateRange) Clear(hours OperatingHours) DateRange {
	return NewDateRange(hours)
}
