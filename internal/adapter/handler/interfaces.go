package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/caller"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/convert"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/export"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/fix"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/station"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.Token, error)
}

type StationService interface {
	Create(ctx context.Context, input station.CreateInput) (*entity.Station, error)
	List(ctx context.Context) ([]entity.Station, error)
	GetByName(ctx context.Context, name string) (*entity.Station, error)
	Move(ctx context.Context, name string, loc *valueobject.Location) (*entity.Station, error)
	Delete(ctx context.Context, name string) error
	Nearest(ctx context.Context, loc *valueobject.Location) (*station.NearestResult, error)
}

type CallerService interface {
	Create(ctx context.Context, input caller.CreateInput) (*entity.Caller, error)
	List(ctx context.Context, input caller.ListInput) ([]entity.Caller, *pagination.Info, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Caller, error)
	Update(ctx context.Context, id uuid.UUID, input caller.UpdateInput) (*entity.Caller, error)
	AddReport(ctx context.Context, id uuid.UUID, report entity.Report) (*entity.Caller, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BearingLines(ctx context.Context, id uuid.UUID) ([]fix.BearingLine, error)
}

type FixService interface {
	Compute(ctx context.Context, reports []entity.Report) (*valueobject.Fix, error)
	BearingLines(ctx context.Context, reports []entity.Report) ([]fix.BearingLine, error)
}

type ConvertService interface {
	ToDecimal(angle string) (float64, error)
	ToDMS(lat, lng float64) (*convert.DMS, error)
}

type ExportService interface {
	Export(ctx context.Context, input export.Input) (*export.Result, error)
}
