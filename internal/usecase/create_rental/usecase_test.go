package create_rental

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/internal/integrations/paymentgateway"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

type fakeCarRepo struct {
	car            *domain.Car
	err            error
	tripsIncreased int
}

func (f *fakeCarRepo) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return f.car, f.err
}

func (f *fakeCarRepo) IncrementTrips(ctx context.Context, id int64) error {
	f.tripsIncreased++
	return nil
}

type fakeRentalRepo struct {
	existing []*domain.Rental
	// Аренды, появившиеся между предварительной проверкой и транзакцией
	appearedInTx []*domain.Rental
	created      *domain.Rental
	inTx         bool
}

func (f *fakeRentalRepo) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	created := *rental
	created.ID = 555
	f.created = &created
	return &created, nil
}

func (f *fakeRentalRepo) GetActiveByCarInPeriod(ctx context.Context, carID int64, from, to types.DateString) ([]*domain.Rental, error) {
	if f.inTx {
		return append(f.existing, f.appearedInTx...), nil
	}
	return f.existing, nil
}

type fakePaymentClient struct {
	charge *paymentgateway.ChargeResponse
	err    error
	calls  int
	amount float64
}

func (f *fakePaymentClient) ProcessPayment(ctx context.Context, amount float64, card paymentgateway.CardDetails, idempotencyKey string) (*paymentgateway.ChargeResponse, error) {
	f.calls++
	f.amount = amount
	return f.charge, f.err
}

type fakeTxManager struct {
	rentals *fakeRentalRepo
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.rentals != nil {
		f.rentals.inTx = true
		defer func() { f.rentals.inTx = false }()
	}
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type fakeIDGenerator struct{}

func (f *fakeIDGenerator) NewID() string {
	return "test-key"
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func listedCar() *domain.Car {
	return &domain.Car{
		ID:          1,
		HostID:      10,
		Make:        "Toyota",
		Model:       "RAV4",
		PricePerDay: 85,
		Available:   true,
		Hours:       domain.OperatingHours{Start: "08:00", End: "18:00"},
	}
}

func validRequest() *Request {
	return &Request{
		RenterID:  20,
		CarID:     1,
		StartDate: "2026-06-20", StartTime: "10:00",
		EndDate: "2026-06-23", EndTime: "10:00",
		Card: paymentgateway.CardDetails{Number: "4242424242424242"},
	}
}

type fixture struct {
	uc      *UseCase
	cars    *fakeCarRepo
	rentals *fakeRentalRepo
	payment *fakePaymentClient
}

func newFixture(car *domain.Car) *fixture {
	cars := &fakeCarRepo{car: car}
	rentals := &fakeRentalRepo{}
	payment := &fakePaymentClient{charge: &paymentgateway.ChargeResponse{TransactionID: "txn_1"}}

	uc := NewUseCase(cars, rentals, payment, &fakeTxManager{rentals: rentals},
		PricingConfig{ServiceFeePercent: 0.10}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)}
	uc.idGenerator = &fakeIDGenerator{}

	return &fixture{uc: uc, cars: cars, rentals: rentals, payment: payment}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(listedCar())

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	rental := resp.Rental
	assert.Equal(t, int64(555), rental.ID)
	assert.Equal(t, domain.StatusConfirmed, rental.Status)
	assert.Equal(t, 3, rental.Days)
	assert.Equal(t, 255.0, rental.RentalCost)
	assert.InDelta(t, 25.5, rental.ServiceFee, 1e-9)
	assert.Equal(t, 0.0, rental.Insurance)
	assert.InDelta(t, 280.5, rental.TotalPrice, 1e-9)
	require.NotNil(t, rental.TransactionID)
	assert.Equal(t, "txn_1", *rental.TransactionID)
	assert.Equal(t, "Toyota", rental.CarMake)

	assert.InDelta(t, 280.5, f.payment.amount, 1e-9)
	assert.Equal(t, 1, f.cars.tripsIncreased)
}

func TestExecute_OwnCarRejected(t *testing.T) {
	f := newFixture(listedCar())

	req := validRequest()
	req.RenterID = 10 // хост машины

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOwnCar)
	assert.Zero(t, f.payment.calls)
}

func TestExecute_UnlistedCarRejected(t *testing.T) {
	car := listedCar()
	car.Available = false
	f := newFixture(car)

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCarNotListed)
}

func TestExecute_ReversedRangeRejected(t *testing.T) {
	f := newFixture(listedCar())

	req := validRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, f.payment.calls)
}

func TestExecute_BlockedDatesRejectedBeforePayment(t *testing.T) {
	f := newFixture(listedCar())
	f.rentals.existing = []*domain.Rental{
		{Status: domain.StatusConfirmed, StartDate: "2026-06-21", EndDate: "2026-06-22"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Zero(t, f.payment.calls, "payment must not run for an unavailable range")
}

func TestExecute_TimeOutsideHoursRejected(t *testing.T) {
	f := newFixture(listedCar())

	req := validRequest()
	req.StartTime = "07:00"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTimeOutsideHours)
}

func TestExecute_PaymentDeclined(t *testing.T) {
	f := newFixture(listedCar())
	f.payment.charge = nil
	f.payment.err = paymentgateway.ErrPaymentDeclined

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Nil(t, f.rentals.created)
}

func TestExecute_InvalidCard(t *testing.T) {
	f := newFixture(listedCar())
	f.payment.charge = nil
	f.payment.err = paymentgateway.ErrInvalidCard

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestExecute_ConflictInsideTransaction(t *testing.T) {
	// Даты заняли между предварительной проверкой и транзакцией
	f := newFixture(listedCar())
	f.rentals.appearedInTx = []*domain.Rental{
		{Status: domain.StatusConfirmed, StartDate: "2026-06-20", EndDate: "2026-06-25"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Equal(t, 1, f.payment.calls, "conflict is detected after the charge")
	assert.Nil(t, f.rentals.created)
}

func TestExecute_CancelledRentalsDoNotConflict(t *testing.T) {
	f := newFixture(listedCar())
	f.rentals.existing = []*domain.Rental{
		{Status: domain.StatusCancelledByHost, StartDate: "2026-06-20", EndDate: "2026-06-25"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}
