package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// StationRepository resolves RFF names to surveyed positions. GetByName
// returns domain.ErrStationNotFound for unknown stations.
type StationRepository interface {
	Create(ctx context.Context, station *entity.Station) error
	GetByName(ctx context.Context, name string) (*entity.Station, error)
	List(ctx context.Context) ([]entity.Station, error)
	Update(ctx context.Context, station *entity.Station) error
	Delete(ctx context.Context, name string) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type CallerRepository interface {
	Create(ctx context.Context, caller *entity.Caller) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Caller, error)
	GetOpenByChannel(ctx context.Context, channel string) (*entity.Caller, error)
	List(ctx context.Context, params CallerListParams) ([]entity.Caller, *pagination.Info, error)
	ListSince(ctx context.Context, since time.Time) ([]entity.Caller, error)
	// Update writes caller only if the stored row still carries
	// lastSeen as its updated_at, returning domain.ErrCallerConflict otherwise.
	Update(ctx context.Context, caller *entity.Caller, lastSeen time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CallerListParams struct {
	Pagination pagination.Params
	Since      *time.Time
	Channel    string
}
