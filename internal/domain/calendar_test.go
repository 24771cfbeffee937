package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

var testHours = OperatingHours{Start: "08:00", End: "18:00"}

func TestIsDateSelectable_PastDate(t *testing.T) {
	today := types.DateString("2024-10-15")

	pastDates := []types.DateString{"2024-10-14", "2024-09-30", "2023-12-31"}
	for _, date := range pastDates {
		assert.False(t, IsDateSelectable(date, today, nil, testHours, "10:00"),
			"past date %s must not be selectable", date)
	}

	// Прошедшая дата недоступна независимо от содержимого blocked-множества
	blocked := NewBlockedDates("2024-10-14")
	assert.False(t, IsDateSelectable("2024-10-14", today, blocked, testHours, "10:00"))
}

func TestIsDateSelectable_BlockedDate(t *testing.T) {
	today := types.DateString("2024-10-15")
	blocked := NewBlockedDates("2024-10-20", "2024-10-21")

	assert.False(t, IsDateSelectable("2024-10-20", today, blocked, testHours, "10:00"))
	assert.False(t, IsDateSelectable("2024-10-21", today, blocked, testHours, "10:00"))
	assert.True(t, IsDateSelectable("2024-10-22", today, blocked, testHours, "10:00"))
}

func TestIsDateSelectable_TodayAfterClosing(t *testing.T) {
	today := types.DateString("2024-10-15")

	// Окно выдачи уже полностью прошло
	assert.False(t, IsDateSelectable(today, today, nil, testHours, "18:01"))
	assert.False(t, IsDateSelectable(today, today, nil, testHours, "23:30"))

	// Ровно в момент закрытия и раньше - еще можно
	assert.True(t, IsDateSelectable(today, today, nil, testHours, "18:00"))
	assert.True(t, IsDateSelectable(today, today, nil, testHours, "08:00"))

	// На завтра время суток не влияет
	assert.True(t, IsDateSelectable("2024-10-16", today, nil, testHours, "23:30"))
}

func TestListAvailableTimes_WithinOperatingHours(t *testing.T) {
	slots := ListAvailableTimes("2024-10-20", testHours, "2024-10-15", "12:00")

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("18:00"), slots[len(slots)-1])
	// 08:00..18:00 включительно с шагом 30 минут
	assert.Len(t, slots, 21)

	for _, slot := range slots {
		assert.True(t, testHours.Contains(slot), "slot %s outside operating hours", slot)
	}
}

func TestListAvailableTimes_TodayFiltersPassedSlots(t *testing.T) {
	today := types.DateString("2024-10-15")

	// Сценарий из спецификации: 17:45 -> остается только 18:00
	slots := ListAvailableTimes(today, testHours, today, "17:45")
	assert.Equal(t, []types.TimeString{"18:00"}, slots)

	// Ровно на границе слота: слот 12:00 уже не доступен (строго позже)
	slots = ListAvailableTimes(today, testHours, today, "12:00")
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("12:30"), slots[0])

	// После закрытия слотов нет
	slots = ListAvailableTimes(today, testHours, today, "18:00")
	assert.Empty(t, slots)
}

func TestListAvailableTimes_FreshSliceEachCall(t *testing.T) {
	date := types.DateString("2024-10-20")

	first := ListAvailableTimes(date, testHours, "2024-10-15", "12:00")
	second := ListAvailableTimes(date, testHours, "2024-10-15", "12:00")

	require.Equal(t, first, second)

	first[0] = "99:99"
	assert.Equal(t, types.TimeString("08:00"), second[0])
}

func TestAllTimeSlots_FullGrid(t *testing.T) {
	grid := AllTimeSlots()

	require.Len(t, grid, 48)
	assert.Equal(t, types.TimeString("00:00"), grid[0])
	assert.Equal(t, types.TimeString("00:30"), grid[1])
	assert.Equal(t, types.TimeString("23:30"), grid[47])
}

func TestBlockedDatesFromRentals(t *testing.T) {
	rentals := []*Rental{
		{
			StartDate: "2024-10-20",
			EndDate:   "2024-10-22",
			Status:    StatusConfirmed,
		},
		{
			// Отмененная аренда не блокирует даты
			StartDate: "2024-10-25",
			EndDate:   "2024-10-26",
			Status:    StatusCancelledByRenter,
		},
	}

	blocked, err := BlockedDatesFromRentals(rentals, "2024-10-01", "2024-10-31")
	require.NoError(t, err)

	assert.True(t, blocked.Contains("2024-10-20"))
	assert.True(t, blocked.Contains("2024-10-21"))
	assert.True(t, blocked.Contains("2024-10-22"))
	assert.False(t, blocked.Contains("2024-10-23"))
	assert.False(t, blocked.Contains("2024-10-25"))
}

func TestBlockedDatesFromRentals_ClampedToPeriod(t *testing.T) {
	rentals := []*Rental{
		{
			StartDate: "2024-09-28",
			EndDate:   "2024-10-02",
			Status:    StatusConfirmed,
		},
	}

	blocked, err := BlockedDatesFromRentals(rentals, "2024-10-01", "2024-10-31")
	require.NoError(t, err)

	assert.False(t, blocked.Contains("2024-09-30"))
	assert.True(t, blocked.Contains("2024-10-01"))
	assert.True(t, blocked.Contains("2024-10-02"))
	assert.False(t, blocked.Contains("2024-10-03"))
}
