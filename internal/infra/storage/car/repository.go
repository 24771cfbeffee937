package car

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/dbmetrics"
	"github.com/cubecar/CC-RentalService/pkg/psqlbuilder"
)

// carColumns колонки таблицы cars в порядке сканирования
var carColumns = []string{
	"id",
	"host_id",
	"make",
	"model",
	"year",
	"price_per_day",
	"location",
	"type",
	"image_url",
	"images",
	"features",
	"description",
	"rating",
	"trips",
	"available",
	"latitude",
	"longitude",
	"hours_start",
	"hours_end",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с объявлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое объявление
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"host_id",
			"make",
			"model",
			"year",
			"price_per_day",
			"location",
			"type",
			"image_url",
			"images",
			"features",
			"description",
			"rating",
			"trips",
			"available",
			"latitude",
			"longitude",
			"hours_start",
			"hours_end",
		).
		Values(
			car.HostID,
			car.Make,
			car.Model,
			car.Year,
			car.PricePerDay,
			car.Location,
			car.Type,
			car.ImageURL,
			pq.Array(car.Images),
			pq.Array(car.Features),
			car.Description,
			car.Rating,
			car.Trips,
			car.Available,
			car.Latitude,
			car.Longitude,
			car.Hours.Start,
			car.Hours.End,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return car, nil
}

// GetByID получает объявление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	car, err := scanCar(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// ListAvailable получает все доступные объявления
func (r *Repository) ListAvailable(ctx context.Context) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"available": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var cars []*domain.Car
	for rows.Next() {
		car, err := scanCar(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailable - scan car: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - iterate rows: %v", ErrExecQuery, err)
	}

	return cars, nil
}

// ListByHost получает все объявления хоста (включая снятые с публикации)
func (r *Repository) ListByHost(ctx context.Context, hostID int64) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"host_id": hostID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByHost - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHost - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var cars []*domain.Car
	for rows.Next() {
		car, err := scanCar(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByHost - scan car: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByHost - iterate rows: %v", ErrExecQuery, err)
	}

	return cars, nil
}

// IncrementTrips увеличивает счетчик поездок объявления
func (r *Repository) IncrementTrips(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("trips", squirrel.Expr("trips + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementTrips - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementTrips - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementTrips - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// scanCar сканирует одну строку таблицы cars в доменную модель
func scanCar(scan func(dest ...interface{}) error) (*domain.Car, error) {
	var car domain.Car
	var images, features pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&car.ID,
		&car.HostID,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.PricePerDay,
		&car.Location,
		&car.Type,
		&car.ImageURL,
		&images,
		&features,
		&car.Description,
		&car.Rating,
		&car.Trips,
		&car.Available,
		&car.Latitude,
		&car.Longitude,
		&car.Hours.Start,
		&car.Hours.End,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	car.Images = images
	car.Features = features
	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return &car, nil
}
