package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"driver-service/internal/entities"
	driverService "driver-service/internal/service/driver"
	locationService "driver-service/internal/service/location"
)

const driverColumns = `id, name, phone, vehicle_type, plate, status, current_zone,
		rating, success_rate, deliveries_today, active_orders,
		last_lat, last_lon, last_seen_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	driverModel, err := r.scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverService.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE phone = $1`

	driverModel, err := r.scanDriver(r.querier.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverService.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyphone error: %w", err)
	}

	return ToDomain(driverModel), nil
}

// GetStats агрегирует счётчики по текущему состоянию orders/stops водителя.
// Дашборд пишет в те же таблицы, поэтому считаем на каждый запрос заново.
func (r *Repository) GetStats(ctx context.Context, id string) (*entities.DriverStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE o.status = 'delivered' AND o.delivered_at::date = NOW()::date),
			COUNT(*) FILTER (WHERE o.status = 'delivered'),
			COALESCE(
				COUNT(*) FILTER (WHERE o.status = 'delivered')::float
					/ NULLIF(COUNT(*) FILTER (WHERE o.status IN ('delivered', 'failed')), 0),
				0),
			COUNT(*) FILTER (WHERE s.status = 'pending')
		FROM runs r
		JOIN stops s ON s.run_id = r.id
		JOIN orders o ON o.id = s.order_id
		WHERE r.driver_id = $1`

	var statsModel DriverStatsDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&statsModel.DeliveriesToday,
		&statsModel.TotalDeliveries,
		&statsModel.SuccessRate,
		&statsModel.ActiveOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getstats error: %w", err)
	}

	return ToStatsDomain(&statsModel), nil
}

// UpdateLocation перезаписывает позицию водителя только если сэмпл новее
// сохранённого (сравнение по wall-clock timestamp самого сэмпла).
func (r *Repository) UpdateLocation(ctx context.Context, sample entities.LocationSample) (bool, error) {
	query := `
		UPDATE drivers
		SET last_lat = $2,
			last_lon = $3,
			last_seen_at = $4,
			updated_at = NOW()
		WHERE id = $1
			AND (last_seen_at IS NULL OR last_seen_at < $4)`

	result, err := r.querier.Exec(ctx, query, sample.DriverID, sample.Latitude, sample.Longitude, sample.Timestamp)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository updatelocation error: %w", err)
	}

	if result.RowsAffected() > 0 {
		return true, nil
	}

	// либо водителя нет, либо сэмпл устарел - различаем отдельным чтением
	var one int
	err = r.querier.QueryRow(ctx, `SELECT 1 FROM drivers WHERE id = $1`, sample.DriverID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, locationService.ErrDriverNotFound
		}
		return false, fmt.Errorf("unexpected driver repository updatelocation error: %w", err)
	}

	return false, nil
}

func (r *Repository) scanDriver(row pgx.Row) (*DriverDB, error) {
	var driverModel DriverDB
	err := row.Scan(
		&driverModel.ID,
		&driverModel.Name,
		&driverModel.Phone,
		&driverModel.VehicleType,
		&driverModel.Plate,
		&driverModel.Status,
		&driverModel.CurrentZone,
		&driverModel.Rating,
		&driverModel.SuccessRate,
		&driverModel.DeliveriesToday,
		&driverModel.ActiveOrders,
		&driverModel.LastLat,
		&driverModel.LastLon,
		&driverModel.LastSeenAt,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driverModel, nil
}
