package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

func TestComputeDays_WholeDays(t *testing.T) {
	// Сценарий из спецификации: трое полных суток
	days, err := ComputeDays("2024-10-01", "08:00", "2024-10-04", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 3, days)
}

func TestComputeDays_PartialDayRoundsUp(t *testing.T) {
	// 3 суток и 1 час тарифицируются как 4 дня
	days, err := ComputeDays("2024-10-01", "08:00", "2024-10-04", "09:00")
	require.NoError(t, err)
	assert.Equal(t, 4, days)

	// Несколько часов в пределах одних суток - один день
	days, err = ComputeDays("2024-10-01", "08:00", "2024-10-01", "17:30")
	require.NoError(t, err)
	assert.Equal(t, 1, days)
}

func TestComputeDays_IdenticalInstantsClampToOne(t *testing.T) {
	days, err := ComputeDays("2024-10-01", "08:00", "2024-10-01", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 1, days)
}

func TestComputeDays_NegativeDurationClampToOne(t *testing.T) {
	// Перевернутый диапазон маскируется минимумом в один день:
	// упорядоченность проверяет DateRange, не калькулятор
	days, err := ComputeDays("2024-10-04", "08:00", "2024-10-01", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 1, days)
}

func TestComputeDays_Monotonic(t *testing.T) {
	endDates := []string{"2024-10-01", "2024-10-02", "2024-10-05", "2024-10-20", "2024-11-01"}

	prev := 0
	for _, end := range endDates {
		days, err := ComputeDays("2024-10-01", "08:00", types.DateString(end), "08:00")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, days, prev, "end=%s", end)
		prev = days
	}
}

func TestComputeDays_InvalidInput(t *testing.T) {
	_, err := ComputeDays("not-a-date", "08:00", "2024-10-04", "08:00")
	assert.Error(t, err)

	_, err = ComputeDays("2024-10-01", "8am", "2024-10-04", "08:00")
	assert.Error(t, err)
}

func TestComputeQuote_FlatFeeWithInsurance(t *testing.T) {
	// Сценарий из спецификации: 85/день * 3 дня, сбор 45, страховка 30
	quote := ComputeQuote(3, 85, FlatFee(45), 30)

	assert.Equal(t, 3, quote.Days)
	assert.Equal(t, 255.0, quote.RentalCost)
	assert.Equal(t, 45.0, quote.ServiceFee)
	assert.Equal(t, 30.0, quote.Insurance)
	assert.Equal(t, 330.0, quote.Total)
}

func TestComputeQuote_PercentageFee(t *testing.T) {
	quote := ComputeQuote(3, 85, PercentageFee(0.10), 0)

	assert.Equal(t, 255.0, quote.RentalCost)
	assert.Equal(t, 25.5, quote.ServiceFee)
	assert.Equal(t, 0.0, quote.Insurance)
	assert.Equal(t, 280.5, quote.Total)
}

func TestComputeQuote_Idempotent(t *testing.T) {
	first := ComputeQuote(7, 119.99, PercentageFee(0.10), 12.5)
	second := ComputeQuote(7, 119.99, PercentageFee(0.10), 12.5)

	assert.Equal(t, first, second)
}

func TestComputeQuote_ClampsDays(t *testing.T) {
	quote := ComputeQuote(0, 100, FlatFee(10), 0)
	assert.Equal(t, 1, quote.Days)
	assert.Equal(t, 100.0, quote.RentalCost)

	quote = ComputeQuote(-5, 100, FlatFee(10), 0)
	assert.Equal(t, 1, quote.Days)
}

func TestComputeQuote_DefaultDaysFallback(t *testing.T) {
	// Неполный диапазон: вызывающая сторона подставляет дефолтные 3 дня
	quote := ComputeQuote(DefaultRentalDays, 85, FlatFee(45), 30)

	assert.Equal(t, 3, quote.Days)
	assert.Equal(t, 330.0, quote.Total)
}
