package domain

import (
	"fmt"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

// allTimeSlots полная 30-минутная сетка суток: "00:00".."23:30"
var allTimeSlots = buildTimeGrid()

func buildTimeGrid() []types.TimeString {
	grid := make([]types.TimeString, 0, TimeSlotsPerDay)
	for i := 0; i < TimeSlotsPerDay; i++ {
		total := i * TimeSlotStepMinutes
		grid = append(grid, types.TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)))
	}
	return grid
}

// AllTimeSlots returns a fresh copy of the full 30-minute time grid
func AllTimeSlots() []types.TimeString {
	grid := make([]types.TimeString, len(allTimeSlots))
	copy(grid, allTimeSlots)
	return grid
}

// BlockedDates is a set of calendar dates unavailable for selection
type BlockedDates map[types.DateString]struct{}

// NewBlockedDates builds a set from a list of dates
func NewBlockedDates(dates ...types.DateString) BlockedDates {
	set := make(BlockedDates, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains returns true if d is in the blocked set
func (b BlockedDates) Contains(d types.DateString) bool {
	_, ok := b[d]
	return ok
}

// BlockedDatesFromRentals разворачивает активные аренды в множество занятых
// дат, ограниченное периодом [from, to]
func BlockedDatesFromRentals(rentals []*Rental, from, to types.DateString) (BlockedDates, error) {
	blocked := make(BlockedDates)

	for _, rental := range rentals {
		if !rental.IsActive() {
			continue
		}

		day := rental.StartDate
		if day.IsBefore(from) {
			day = from
		}

		for !day.IsAfter(rental.EndDate) && !day.IsAfter(to) {
			blocked[day] = struct{}{}

			next, err := day.AddDays(1)
			if err != nil {
				return nil, err
			}
			day = next
		}
	}

	return blocked, nil
}

// IsDateSelectable reports whether date can be picked as a rental bound.
//
// Дата недоступна, когда:
// - она раньше сегодняшней (сравнение только по датам);
// - она занята другой арендой;
// - это сегодня, а окно выдачи уже полностью прошло (nowTime > hours.End).
//
// Чистый предикат: используется и рендерингом календаря, и валидацией выбора
func IsDateSelectable(
	date types.DateString,
	today types.DateString,
	blocked BlockedDates,
	hours OperatingHours,
	nowTime types.TimeString,
) bool {
	if date.IsBefore(today) {
		return false
	}

	if blocked.Contains(date) {
		return false
	}

	if date == today && nowTime.IsAfter(hours.End) {
		return false
	}

	return true
}

// ListAvailableTimes returns the selectable time-of-day slots for date.
//
// Сетка 30 минут пересекается с окном [hours.Start, hours.End] включительно.
// Для сегодняшней даты дополнительно отбрасываются слоты, которые уже
// прошли (остаются только строго позже nowTime).
//
// Каждый вызов возвращает свежий срез
func ListAvailableTimes(
	date types.DateString,
	hours OperatingHours,
	today types.DateString,
	nowTime types.TimeString,
) []types.TimeString {
	slots := make([]types.TimeString, 0, TimeSlotsPerDay)

	for _, slot := range allTimeSlots {
		if !hours.Contains(slot) {
			continue
		}
		if date == today && !slot.IsAfter(nowTime) {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}
