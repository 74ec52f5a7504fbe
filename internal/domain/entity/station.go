package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
)

// Station is a reference fix (RFF) receiver site with a surveyed position.
type Station struct {
	ID        uuid.UUID
	Name      string
	Location  *valueobject.Location
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewStation(name string, loc *valueobject.Location) *Station {
	now := time.Now().UTC()
	return &Station{
		ID:        uuid.New(),
		Name:      name,
		Location:  loc,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Station) Move(loc *valueobject.Location) {
	s.Location = loc
	s.UpdatedAt = time.Now().UTC()
}
