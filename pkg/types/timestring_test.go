package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_LexicalOrderMatchesChronological(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.True(t, TimeString("09:00").IsAfter("08:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("23:30").IsAfter("00:00"))
}

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"24:00", "8:00", "08:60", "0800", "morning", ""}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	res, err := TimeString("08:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), res)

	res, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), res)

	// Выход за пределы суток
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("00:00").AddMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2024, 10, 15, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestDateString_Validate(t *testing.T) {
	valid := []string{"2024-01-02", "2024-12-31", "2025-06-15"}
	for _, s := range valid {
		assert.NoError(t, DateString(s).Validate(), s)
	}

	// Запись без нулевого дополнения парсится time.Parse, но нарушает
	// лексикографический порядок, поэтому отклоняется
	invalid := []string{"2024-1-2", "2024-01-2", "2024-1-02", "2024-13-01", "20240102", "tomorrow", ""}
	for _, s := range invalid {
		assert.Error(t, DateString(s).Validate(), s)
	}
}

func TestDateString_Comparisons(t *testing.T) {
	assert.True(t, DateString("2024-10-01").IsBefore("2024-10-02"))
	assert.True(t, DateString("2024-12-31").IsBefore("2025-01-01"))
	assert.True(t, DateString("2024-10-02").IsAfter("2024-09-30"))
}

func TestDateString_At(t *testing.T) {
	moment, err := DateString("2024-10-01").At("08:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC), moment)

	_, err = DateString("2024-13-01").At("08:00")
	assert.Error(t, err)
}

func TestDateString_AddDays(t *testing.T) {
	next, err := DateString("2024-10-31").AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-11-01"), next)

	next, err = DateString("2024-02-28").AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-02-29"), next)
}
