package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/dbmetrics"
	"github.com/cubecar/CC-RentalService/pkg/psqlbuilder"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// rentalColumns колонки таблицы rentals в порядке сканирования
var rentalColumns = []string{
	"id",
	"renter_id",
	"car_id",
	"host_id",
	"start_date",
	"start_time",
	"end_date",
	"end_time",
	"days",
	"rental_cost",
	"service_fee",
	"insurance",
	"total_price",
	"status",
	"transaction_id",
	"car_make",
	"car_model",
	"price_per_day",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с арендами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую аренду
// При создании с проверкой доступности дат вызывается внутри
// сериализуемой транзакции (через контекст) для защиты от гонки
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rentals").
		Columns(
			"renter_id",
			"car_id",
			"host_id",
			"start_date",
			"start_time",
			"end_date",
			"end_time",
			"days",
			"rental_cost",
			"service_fee",
			"insurance",
			"total_price",
			"status",
			"transaction_id",
			"car_make",
			"car_model",
			"price_per_day",
		).
		Values(
			rental.RenterID,
			rental.CarID,
			rental.HostID,
			rental.StartDate,
			rental.StartTime,
			rental.EndDate,
			rental.EndTime,
			rental.Days,
			rental.RentalCost,
			rental.ServiceFee,
			rental.Insurance,
			rental.TotalPrice,
			rental.Status,
			rental.TransactionID,
			rental.CarMake,
			rental.CarModel,
			rental.PricePerDay,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает аренду по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	rental, err := scanRental(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// GetByRenterID получает историю аренд пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByRenterID(ctx context.Context, renterID int64, status *domain.RentalStatus) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"renter_id": renterID}).
		OrderBy("start_date DESC", "id DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRenterID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRentals(ctx, executor, "GetByRenterID", query, args)
}

// GetByHostWithFilter получает аренды хоста с гибкой фильтрацией
func (r *Repository) GetByHostWithFilter(ctx context.Context, filter domain.HostRentalsFilter) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"host_id": filter.HostID}).
		OrderBy("start_date DESC", "id DESC")

	if filter.CarID != nil {
		builder = builder.Where(squirrel.Eq{"car_id": *filter.CarID})
	}

	// Пересечение периодов: аренда попадает в выборку, если задевает
	// хотя бы один день из [StartDate, EndDate]
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if !filter.IncludeInactive {
		builder = builder.Where(squirrel.Eq{"status": domain.ActiveStatuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHostWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRentals(ctx, executor, "GetByHostWithFilter", query, args)
}

// GetActiveByCarInPeriod получает активные аренды машины, пересекающиеся
// с периодом [from, to] (границы включительно)
// Используется для расчета занятых дат и проверки доступности
func (r *Repository) GetActiveByCarInPeriod(ctx context.Context, carID int64, from, to types.DateString) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"car_id": carID}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		Where(squirrel.GtOrEq{"end_date": from}).
		Where(squirrel.LtOrEq{"start_date": to}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCarInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRentals(ctx, executor, "GetActiveByCarInPeriod", query, args)
}

// Cancel отменяет аренду с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.RentalStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []domain.RentalStatus{domain.StatusPending, domain.StatusConfirmed}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// UpdateStatus обновляет статус аренды
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

func (r *Repository) queryRentals(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Rental, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var rentals []*domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan rental: %v", ErrScanRow, op, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrExecQuery, op, err)
	}

	return rentals, nil
}

// scanRental сканирует одну строку таблицы rentals в доменную модель
func scanRental(scan func(dest ...interface{}) error) (*domain.Rental, error) {
	var rental domain.Rental
	var cancelledAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&rental.ID,
		&rental.RenterID,
		&rental.CarID,
		&rental.HostID,
		&rental.StartDate,
		&rental.StartTime,
		&rental.EndDate,
		&rental.EndTime,
		&rental.Days,
		&rental.RentalCost,
		&rental.ServiceFee,
		&rental.Insurance,
		&rental.TotalPrice,
		&rental.Status,
		&rental.TransactionID,
		&rental.CarMake,
		&rental.CarModel,
		&rental.PricePerDay,
		&rental.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		rental.CancelledAt = &cancelledAt.Time
	}
	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}
