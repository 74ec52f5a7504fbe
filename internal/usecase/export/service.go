package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/df-fix-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
)

const (
	keyPrefix          = "exports/callers-"
	contentType        = "application/json"
	DefaultURLValidity = time.Hour
)

type Service struct {
	callerRepo repository.CallerRepository
	archive    storage.ArchiveStorage
	urlExpiry  time.Duration
}

func NewService(callerRepo repository.CallerRepository, archive storage.ArchiveStorage, urlExpiry time.Duration) *Service {
	if urlExpiry <= 0 {
		urlExpiry = DefaultURLValidity
	}
	return &Service{
		callerRepo: callerRepo,
		archive:    archive,
		urlExpiry:  urlExpiry,
	}
}

type Input struct {
	Since time.Time
}

type Result struct {
	Key       string
	URL       string
	Callers   int
	ExpiresAt time.Time
}

type snapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Since       time.Time        `json:"since"`
	Callers     []callerSnapshot `json:"callers"`
}

type callerSnapshot struct {
	ID        uuid.UUID       `json:"id"`
	Channel   string          `json:"channel"`
	Reports   []entity.Report `json:"reports"`
	Fix       *fixSnapshot    `json:"fix"`
	StartTime time.Time       `json:"start_time"`
	StopTime  *time.Time      `json:"stop_time"`
}

type fixSnapshot struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Export writes every caller started since input.Since to the archive as one
// JSON document and returns a time-limited link to it.
func (s *Service) Export(ctx context.Context, input Input) (*Result, error) {
	callers, err := s.callerRepo.ListSince(ctx, input.Since)
	if err != nil {
		return nil, fmt.Errorf("listing callers: %w", err)
	}

	now := time.Now().UTC()
	doc := snapshot{
		GeneratedAt: now,
		Since:       input.Since.UTC(),
		Callers:     make([]callerSnapshot, 0, len(callers)),
	}
	for _, c := range callers {
		cs := callerSnapshot{
			ID:        c.ID,
			Channel:   c.Channel,
			Reports:   c.Reports,
			StartTime: c.StartTime,
			StopTime:  c.StopTime,
		}
		if c.Fix != nil {
			cs.Fix = &fixSnapshot{Latitude: c.Fix.Latitude, Longitude: c.Fix.Longitude}
		}
		doc.Callers = append(doc.Callers, cs)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	key := keyPrefix + now.Format("20060102T150405Z") + ".json"
	if err := s.archive.Upload(ctx, key, bytes.NewReader(body), contentType, int64(len(body))); err != nil {
		return nil, fmt.Errorf("uploading snapshot: %w", err)
	}

	url, err := s.archive.GetSignedURL(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("signing snapshot url: %w", err)
	}

	return &Result{
		Key:       key,
		URL:       url,
		Callers:   len(callers),
		ExpiresAt: now.Add(s.urlExpiry),
	}, nil
}
