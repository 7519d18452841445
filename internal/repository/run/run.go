package run

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"driver-service/internal/entities"
	runService "driver-service/internal/service/run"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListByDriver возвращает раны водителя со счётчиками стопов, опционально
// суженные до подмножества статусов. Порядок стабильный: дата, затем id.
func (r *Repository) ListByDriver(ctx context.Context, driverID string, statuses []entities.RunStatusType) ([]entities.Run, error) {
	builder := qb.
		Select(
			"r.id", "r.driver_id", "r.run_date", "r.zone", "r.status",
			"COUNT(s.id)",
			"COUNT(s.id) FILTER (WHERE s.status IN ('delivered', 'failed'))",
			"r.estimated_duration_sec", "r.total_distance_km",
			"r.created_at", "r.updated_at",
		).
		From("runs r").
		LeftJoin("stops s ON s.run_id = r.id").
		Where(sq.Eq{"r.driver_id": driverID}).
		GroupBy("r.id").
		OrderBy("r.run_date ASC", "r.id ASC")

	if len(statuses) > 0 {
		statusStrings := make([]string, 0, len(statuses))
		for _, status := range statuses {
			statusStrings = append(statusStrings, status.String())
		}
		builder = builder.Where(sq.Eq{"r.status": statusStrings})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected run repository listbydriver error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected run repository listbydriver error: %w", err)
	}
	defer rows.Close()

	runModels := make([]RunDB, 0, 8)
	for rows.Next() {
		var runModel RunDB
		err := rows.Scan(
			&runModel.ID,
			&runModel.DriverID,
			&runModel.Date,
			&runModel.Zone,
			&runModel.Status,
			&runModel.TotalStops,
			&runModel.CompletedStops,
			&runModel.EstimatedDurationSec,
			&runModel.TotalDistanceKm,
			&runModel.CreatedAt,
			&runModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected run repository listbydriver error: %w", err)
		}
		runModels = append(runModels, runModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected run repository listbydriver error: %w", err)
	}

	return ToDomainList(runModels), nil
}

func (r *Repository) GetByID(ctx context.Context, runID string) (*entities.Run, error) {
	query := `
		SELECT r.id, r.driver_id, r.run_date, r.zone, r.status,
			COUNT(s.id),
			COUNT(s.id) FILTER (WHERE s.status IN ('delivered', 'failed')),
			r.estimated_duration_sec, r.total_distance_km,
			r.created_at, r.updated_at
		FROM runs r
		LEFT JOIN stops s ON s.run_id = r.id
		WHERE r.id = $1
		GROUP BY r.id`

	var runModel RunDB
	err := r.querier.QueryRow(ctx, query, runID).Scan(
		&runModel.ID,
		&runModel.DriverID,
		&runModel.Date,
		&runModel.Zone,
		&runModel.Status,
		&runModel.TotalStops,
		&runModel.CompletedStops,
		&runModel.EstimatedDurationSec,
		&runModel.TotalDistanceKm,
		&runModel.CreatedAt,
		&runModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, runService.ErrRunNotFound
		}
		return nil, fmt.Errorf("unexpected run repository getbyid error: %w", err)
	}

	return ToDomain(&runModel), nil
}

// ListStopsWithOrders возвращает стопы рана по sequence, каждый с данными
// заказа для адреса и контактов клиента.
func (r *Repository) ListStopsWithOrders(ctx context.Context, runID string) ([]entities.Stop, error) {
	query := `
		SELECT s.id, s.run_id, s.order_id, s.seq, s.status,
			s.failure_reason, s.notes, s.version, s.updated_at,
			o.order_number, o.customer, o.email, o.phone, o.address, o.suburb, o.postcode, o.state,
			o.parcels, o.service_level, o.status, o.instructions, o.created_at
		FROM stops s
		JOIN orders o ON o.id = s.order_id
		WHERE s.run_id = $1
		ORDER BY s.seq ASC`

	rows, err := r.querier.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("unexpected run repository liststops error: %w", err)
	}
	defer rows.Close()

	stopModels := make([]StopWithOrderDB, 0, 16)
	for rows.Next() {
		var stopModel StopWithOrderDB
		err := rows.Scan(
			&stopModel.ID,
			&stopModel.RunID,
			&stopModel.OrderID,
			&stopModel.Seq,
			&stopModel.Status,
			&stopModel.FailureReason,
			&stopModel.Notes,
			&stopModel.Version,
			&stopModel.UpdatedAt,
			&stopModel.OrderNumber,
			&stopModel.OrderCustomer,
			&stopModel.OrderEmail,
			&stopModel.OrderPhone,
			&stopModel.OrderAddress,
			&stopModel.OrderSuburb,
			&stopModel.OrderPostcode,
			&stopModel.OrderState,
			&stopModel.OrderParcels,
			&stopModel.OrderServiceLevel,
			&stopModel.OrderStatus,
			&stopModel.OrderInstructions,
			&stopModel.OrderCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected run repository liststops error: %w", err)
		}
		stopModels = append(stopModels, stopModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected run repository liststops error: %w", err)
	}

	return ToStopDomainList(stopModels), nil
}
