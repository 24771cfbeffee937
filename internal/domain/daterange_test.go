package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

func TestNewDateRange_DefaultsFromListing(t *testing.T) {
	r := NewDateRange(testHours)

	assert.True(t, r.IsEmpty())
	assert.False(t, r.IsComplete())
	assert.Equal(t, types.TimeString("08:00"), r.StartTime)
	assert.Equal(t, types.TimeString("18:00"), r.EndTime)
	assert.Equal(t, FocusStartDate, r.Focus)
}

func TestSelectStartDate_AdvancesFocusToTime(t *testing.T) {
	r := NewDateRange(testHours).SelectStartDate("2024-10-20")

	assert.Equal(t, types.DateString("2024-10-20"), r.StartDate)
	assert.Equal(t, FocusStartTime, r.Focus)
}

func TestSelectStartDate_ClearsConflictingEndDate(t *testing.T) {
	r := NewDateRange(testHours).SelectStartDate("2024-10-20")
	r, err := r.SelectEndDate("2024-10-22")
	require.NoError(t, err)
	require.True(t, r.IsComplete())

	// Новая дата выдачи позже даты возврата - возврат сбрасывается
	r = r.SelectStartDate("2024-10-25")

	assert.Equal(t, types.DateString("2024-10-25"), r.StartDate)
	assert.True(t, r.EndDate.IsZero())
	assert.False(t, r.IsComplete())
}

func TestSelectStartDate_KeepsCompatibleEndDate(t *testing.T) {
	r := NewDateRange(testHours).SelectStartDate("2024-10-20")
	r, err := r.SelectEndDate("2024-10-22")
	require.NoError(t, err)

	r = r.SelectStartDate("2024-10-21")

	assert.Equal(t, types.DateString("2024-10-21"), r.StartDate)
	assert.Equal(t, types.DateString("2024-10-22"), r.EndDate)
}

func TestSelectEndDate_RejectsEndBeforeStart(t *testing.T) {
	r := NewDateRange(testHours).SelectStartDate("2024-10-20")

	updated, err := r.SelectEndDate("2024-10-19")

	require.ErrorIs(t, err, ErrEndBeforeStart)
	// Диапазон не изменился
	assert.Equal(t, r, updated)
	assert.True(t, updated.EndDate.IsZero())
}

func TestSelectEndDate_SameDayAllowed(t *testing.T) {
	r := NewDateRange(testHours).SelectStartDate("2024-10-20")

	r, err := r.SelectEndDate("2024-10-20")

	require.NoError(t, err)
	assert.Equal(t, types.DateString("2024-10-20"), r.EndDate)
	assert.Equal(t, FocusEndTime, r.Focus)
}

func TestSelectEndDate_WithoutStart(t *testing.T) {
	r := NewDateRange(testHours)

	r, err := r.SelectEndDate("2024-10-19")

	require.NoError(t, err)
	assert.Equal(t, types.DateString("2024-10-19"), r.EndDate)
}

func TestSelectTime_FocusFlow(t *testing.T) {
	r := NewDateRange(testHours).SelectStartDate("2024-10-20")

	// Выбор времени выдачи ведет к выбору даты возврата
	r = r.SelectStartTime("09:30")
	assert.Equal(t, types.TimeString("09:30"), r.StartTime)
	assert.Equal(t, FocusEndDate, r.Focus)

	r, err := r.SelectEndDate("2024-10-22")
	require.NoError(t, err)

	r = r.SelectEndTime("17:00")
	assert.Equal(t, types.TimeString("17:00"), r.EndTime)
	assert.Equal(t, FocusNone, r.Focus)
	assert.True(t, r.IsComplete())
}

func TestClear_ResetsDatesAndTimes(t *testing.T) {
	r := NewDateRange(testHours).SelectStartDate("2024-10-20").SelectStartTime("11:00")
	r, err := r.SelectEndDate("2024-10-22")
	require.NoError(t, err)

	r = r.Clear(testHours)

	assert.True(t, r.IsEmpty())
	assert.Equal(t, types.TimeString("08:00"), r.StartTime)
	assert.Equal(t, types.TimeString("18:00"), r.EndTime)
}
