package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
)

const uniqueViolation = "23505"

type StationRepo struct {
	pool *pgxpool.Pool
}

func NewStationRepo(pool *pgxpool.Pool) *StationRepo {
	return &StationRepo{pool: pool}
}

func (r *StationRepo) Create(ctx context.Context, station *entity.Station) error {
	query := `
		INSERT INTO stations (id, name, location, created_at, updated_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		station.ID, station.Name,
		station.Location.Longitude, station.Location.Latitude,
		station.CreatedAt, station.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrStationAlreadyExists
		}
		return fmt.Errorf("inserting station: %w", err)
	}
	return nil
}

func (r *StationRepo) GetByName(ctx context.Context, name string) (*entity.Station, error) {
	query := `
		SELECT id, name,
			   ST_Y(location::geometry) as lat, ST_X(location::geometry) as lng,
			   created_at, updated_at
		FROM stations
		WHERE name = $1
	`
	var station entity.Station
	var lat, lng float64

	err := r.pool.QueryRow(ctx, query, name).Scan(
		&station.ID, &station.Name, &lat, &lng, &station.CreatedAt, &station.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStationNotFound
		}
		return nil, fmt.Errorf("querying station: %w", err)
	}

	station.Location = valueobject.NewLocation(lat, lng)
	return &station, nil
}

func (r *StationRepo) List(ctx context.Context) ([]entity.Station, error) {
	query := `
		SELECT id, name,
			   ST_Y(location::geometry) as lat, ST_X(location::geometry) as lng,
			   created_at, updated_at
		FROM stations
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stations: %w", err)
	}
	defer rows.Close()

	var stations []entity.Station
	for rows.Next() {
		var station entity.Station
		var lat, lng float64

		if err := rows.Scan(
			&station.ID, &station.Name, &lat, &lng, &station.CreatedAt, &station.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning station: %w", err)
		}
		station.Location = valueobject.NewLocation(lat, lng)
		stations = append(stations, station)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stations: %w", err)
	}
	return stations, nil
}

func (r *StationRepo) Update(ctx context.Context, station *entity.Station) error {
	query := `
		UPDATE stations
		SET location = ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, updated_at = $4
		WHERE name = $1
	`
	result, err := r.pool.Exec(ctx, query,
		station.Name, station.Location.Longitude, station.Location.Latitude, station.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating station: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStationNotFound
	}
	return nil
}

func (r *StationRepo) Delete(ctx context.Context, name string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM stations WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting station: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrStationNotFound
	}
	return nil
}

func (r *StationRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM stations WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking station existence: %w", err)
	}
	return exists, nil
}
