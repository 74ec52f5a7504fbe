package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/pagination"
)

const callerColumns = `
	id, channel, reports,
	ST_Y(fix::geometry) as fix_lat, ST_X(fix::geometry) as fix_lng,
	start_time, stop_time, created_at, updated_at
`

type CallerRepo struct {
	pool *pgxpool.Pool
}

func NewCallerRepo(pool *pgxpool.Pool) *CallerRepo {
	return &CallerRepo{pool: pool}
}

func (r *CallerRepo) Create(ctx context.Context, caller *entity.Caller) error {
	query := `
		INSERT INTO callers (id, channel, reports, fix, start_time, stop_time, created_at, updated_at)
		VALUES ($1, $2, $3,
			CASE WHEN $4::float8 IS NULL THEN NULL
				 ELSE ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography END,
			$6, $7, $8, $9)
	`
	reports, err := marshalReports(caller.Reports)
	if err != nil {
		return err
	}
	lng, lat := fixArgs(caller.Fix)

	_, err = r.pool.Exec(ctx, query,
		caller.ID, caller.Channel, reports, lng, lat,
		caller.StartTime, caller.StopTime, caller.CreatedAt, caller.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting caller: %w", err)
	}
	return nil
}

func (r *CallerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Caller, error) {
	query := fmt.Sprintf(`SELECT %s FROM callers WHERE id = $1`, callerColumns)
	return r.scanCaller(r.pool.QueryRow(ctx, query, id))
}

func (r *CallerRepo) GetOpenByChannel(ctx context.Context, channel string) (*entity.Caller, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM callers
		WHERE channel = $1 AND stop_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`, callerColumns)
	return r.scanCaller(r.pool.QueryRow(ctx, query, channel))
}

func (r *CallerRepo) List(ctx context.Context, params repository.CallerListParams) ([]entity.Caller, *pagination.Info, error) {
	var conditions []string
	var args []any
	argNum := 1

	if params.Since != nil {
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d", argNum))
		args = append(args, *params.Since)
		argNum++
	}
	if params.Channel != "" {
		conditions = append(conditions, fmt.Sprintf("channel = $%d", argNum))
		args = append(args, params.Channel)
		argNum++
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM callers WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting callers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM callers
		WHERE %s
		ORDER BY start_time DESC
		LIMIT $%d OFFSET $%d
	`, callerColumns, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit(), params.Pagination.Offset())

	callers, err := r.queryCallers(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	pageInfo := params.Pagination.Info(total)
	return callers, pageInfo, nil
}

func (r *CallerRepo) ListSince(ctx context.Context, since time.Time) ([]entity.Caller, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM callers
		WHERE start_time >= $1
		ORDER BY start_time ASC
	`, callerColumns)
	return r.queryCallers(ctx, query, since)
}

func (r *CallerRepo) Update(ctx context.Context, caller *entity.Caller, lastSeen time.Time) error {
	query := `
		UPDATE callers
		SET channel = $2, reports = $3,
			fix = CASE WHEN $4::float8 IS NULL THEN NULL
					   ELSE ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography END,
			stop_time = $6, updated_at = $7
		WHERE id = $1 AND updated_at = $8
	`
	reports, err := marshalReports(caller.Reports)
	if err != nil {
		return err
	}
	lng, lat := fixArgs(caller.Fix)

	result, err := r.pool.Exec(ctx, query,
		caller.ID, caller.Channel, reports, lng, lat, caller.StopTime, caller.UpdatedAt, lastSeen,
	)
	if err != nil {
		return fmt.Errorf("updating caller: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM callers WHERE id = $1)`, caller.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking caller: %w", err)
	}
	if !exists {
		return domain.ErrCallerNotFound
	}
	return domain.ErrCallerConflict
}

func (r *CallerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM callers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting caller: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCallerNotFound
	}
	return nil
}

func (r *CallerRepo) queryCallers(ctx context.Context, query string, args ...any) ([]entity.Caller, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying callers: %w", err)
	}
	defer rows.Close()

	var callers []entity.Caller
	for rows.Next() {
		caller, err := r.scanCaller(rows)
		if err != nil {
			return nil, err
		}
		callers = append(callers, *caller)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating callers: %w", err)
	}
	return callers, nil
}

func (r *CallerRepo) scanCaller(row pgx.Row) (*entity.Caller, error) {
	var caller entity.Caller
	var reports []byte
	var fixLat, fixLng *float64

	err := row.Scan(
		&caller.ID, &caller.Channel, &reports, &fixLat, &fixLng,
		&caller.StartTime, &caller.StopTime, &caller.CreatedAt, &caller.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCallerNotFound
		}
		return nil, fmt.Errorf("scanning caller: %w", err)
	}

	if len(reports) > 0 {
		if err := json.Unmarshal(reports, &caller.Reports); err != nil {
			return nil, fmt.Errorf("decoding caller reports: %w", err)
		}
	}
	if fixLat != nil && fixLng != nil {
		caller.Fix = &valueobject.Fix{Latitude: *fixLat, Longitude: *fixLng}
	}

	return &caller, nil
}

func marshalReports(reports []entity.Report) ([]byte, error) {
	if reports == nil {
		reports = []entity.Report{}
	}
	b, err := json.Marshal(reports)
	if err != nil {
		return nil, fmt.Errorf("encoding caller reports: %w", err)
	}
	return b, nil
}

func fixArgs(fix *valueobject.Fix) (lng, lat *float64) {
	if fix == nil {
		return nil, nil
	}
	return &fix.Longitude, &fix.Latitude
}
