package caller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/df-fix-backend/internal/usecase/fix"
)

//go:generate mockgen -source=service.go -destination=../../mocks/caller_mocks.go -package=mocks

const maxWriteAttempts = 5

type FixCalculator interface {
	Compute(ctx context.Context, reports []entity.Report) (*valueobject.Fix, error)
	BearingLines(ctx context.Context, reports []entity.Report) ([]fix.BearingLine, error)
}

type Service struct {
	callerRepo repository.CallerRepository
	fixCalc    FixCalculator
}

func NewService(callerRepo repository.CallerRepository, fixCalc FixCalculator) *Service {
	return &Service{
		callerRepo: callerRepo,
		fixCalc:    fixCalc,
	}
}

type CreateInput struct {
	Channel   string
	Reports   []entity.Report
	StartTime time.Time
	StopTime  *time.Time
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Caller, error) {
	if err := validateReports(input.Reports); err != nil {
		return nil, err
	}

	caller := entity.NewCaller(input.Channel, stampReports(input.Reports), input.StartTime)
	if input.StopTime != nil {
		caller.Stop(*input.StopTime)
	}

	if err := s.refreshFix(ctx, caller); err != nil {
		return nil, err
	}

	if err := s.callerRepo.Create(ctx, caller); err != nil {
		return nil, fmt.Errorf("creating caller: %w", err)
	}

	return caller, nil
}

type ListInput struct {
	Page    int
	PerPage int
	Since   *time.Time
	Channel string
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Caller, *pagination.Info, error) {
	params := repository.CallerListParams{
		Pagination: pagination.NewParams(input.Page, input.PerPage),
		Since:      input.Since,
		Channel:    input.Channel,
	}

	callers, pageInfo, err := s.callerRepo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing callers: %w", err)
	}

	return callers, pageInfo, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.Caller, error) {
	return s.callerRepo.GetByID(ctx, id)
}

type UpdateInput struct {
	Channel  *string
	Reports  []entity.Report
	StopTime *time.Time
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*entity.Caller, error) {
	if input.Reports != nil {
		if err := validateReports(input.Reports); err != nil {
			return nil, err
		}
	}

	return retryOnConflict(func() (*entity.Caller, error) {
		caller, err := s.callerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		lastSeen := caller.UpdatedAt

		if input.Channel != nil {
			caller.Channel = *input.Channel
		}
		if input.Reports != nil {
			caller.Reports = stampReports(input.Reports)
		}
		if input.StopTime != nil {
			caller.Stop(*input.StopTime)
		}

		return s.save(ctx, caller, lastSeen)
	})
}

func (s *Service) AddReport(ctx context.Context, id uuid.UUID, report entity.Report) (*entity.Caller, error) {
	return retryOnConflict(func() (*entity.Caller, error) {
		caller, err := s.callerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return s.appendReport(ctx, caller, report)
	})
}

// AddChannelReport appends to the open caller on channel, opening one when
// the channel is idle.
func (s *Service) AddChannelReport(ctx context.Context, channel string, report entity.Report) (*entity.Caller, error) {
	return retryOnConflict(func() (*entity.Caller, error) {
		caller, err := s.callerRepo.GetOpenByChannel(ctx, channel)
		switch {
		case err == nil:
			return s.appendReport(ctx, caller, report)
		case errors.Is(err, domain.ErrCallerNotFound):
			return s.Create(ctx, CreateInput{
				Channel:   channel,
				Reports:   []entity.Report{report},
				StartTime: report.ReceivedAt,
			})
		default:
			return nil, fmt.Errorf("finding open caller: %w", err)
		}
	})
}

func (s *Service) appendReport(ctx context.Context, caller *entity.Caller, report entity.Report) (*entity.Caller, error) {
	if caller.IsStopped() {
		return nil, domain.ErrCallerStopped
	}
	if err := fix.ValidateReport(report); err != nil {
		return nil, err
	}

	lastSeen := caller.UpdatedAt
	caller.AddReport(report)
	return s.save(ctx, caller, lastSeen)
}

// save recomputes the fix and writes caller back if nobody else changed it
// since lastSeen.
func (s *Service) save(ctx context.Context, caller *entity.Caller, lastSeen time.Time) (*entity.Caller, error) {
	if err := s.refreshFix(ctx, caller); err != nil {
		return nil, err
	}

	if err := s.callerRepo.Update(ctx, caller, lastSeen); err != nil {
		return nil, fmt.Errorf("updating caller: %w", err)
	}

	return caller, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.callerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting caller: %w", err)
	}
	return nil
}

func (s *Service) BearingLines(ctx context.Context, id uuid.UUID) ([]fix.BearingLine, error) {
	caller, err := s.callerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.fixCalc.BearingLines(ctx, caller.Reports)
}

func (s *Service) refreshFix(ctx context.Context, caller *entity.Caller) error {
	f, err := s.fixCalc.Compute(ctx, caller.Reports)
	if err != nil {
		return fmt.Errorf("computing fix: %w", err)
	}
	caller.SetFix(f)
	return nil
}

// retryOnConflict reruns a read-modify-write of a caller while another
// writer keeps winning the race, up to maxWriteAttempts.
func retryOnConflict(write func() (*entity.Caller, error)) (*entity.Caller, error) {
	for attempt := 1; ; attempt++ {
		caller, err := write()
		if errors.Is(err, domain.ErrCallerConflict) && attempt < maxWriteAttempts {
			continue
		}
		return caller, err
	}
}

func validateReports(reports []entity.Report) error {
	for _, r := range reports {
		if err := fix.ValidateReport(r); err != nil {
			return err
		}
	}
	return nil
}

func stampReports(reports []entity.Report) []entity.Report {
	now := time.Now().UTC()
	out := make([]entity.Report, len(reports))
	for i, r := range reports {
		if r.ReceivedAt.IsZero() {
			r.ReceivedAt = now
		}
		out[i] = r
	}
	return out
}
