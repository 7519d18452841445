package location

import (
	"context"
	"fmt"
	"strings"

	"driver-service/internal/entities"
)

type Location struct {
	repository Repository
}

func New(repository Repository) *Location {
	return &Location{
		repository: repository,
	}
}

// Report принимает очередной позиционный сэмпл. Минимального интервала нет -
// частота отправки это политика устройства, сервер принимает любой темп.
// Хранится только последняя позиция: сэмпл со временем старше сохранённого
// отбрасывается молча, а не применяется.
func (s *Location) Report(ctx context.Context, sample entities.LocationSample) (bool, error) {
	if strings.TrimSpace(sample.DriverID) == "" {
		return false, ErrInvalidDriverID
	}
	if !isValidCoordinates(sample.Latitude, sample.Longitude) {
		return false, ErrInvalidCoordinates
	}
	if sample.Timestamp.IsZero() {
		return false, ErrInvalidTimestamp
	}

	applied, err := s.repository.UpdateLocation(ctx, sample)
	if err != nil {
		return false, fmt.Errorf("update location: %w", err)
	}

	return applied, nil
}

func isValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
