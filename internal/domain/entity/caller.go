package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain/valueobject"
)

// Report is one receiver's bearing on a caller, kept exactly as received.
type Report struct {
	Station    string    `json:"station"`
	Bearing    string    `json:"bearing"`
	ReceivedAt time.Time `json:"received_at"`
}

// Caller is a transmission session on a channel with the bearings taken on it.
type Caller struct {
	ID        uuid.UUID
	Channel   string
	Reports   []Report
	Fix       *valueobject.Fix
	StartTime time.Time
	StopTime  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCaller(channel string, reports []Report, startTime time.Time) *Caller {
	now := time.Now().UTC()
	if startTime.IsZero() {
		startTime = now
	}
	return &Caller{
		ID:        uuid.New(),
		Channel:   channel,
		Reports:   reports,
		StartTime: startTime.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Caller) AddReport(r Report) {
	if r.ReceivedAt.IsZero() {
		r.ReceivedAt = time.Now().UTC()
	}
	c.Reports = append(c.Reports, r)
	c.UpdatedAt = time.Now().UTC()
}

func (c *Caller) SetFix(fix *valueobject.Fix) {
	c.Fix = fix
	c.UpdatedAt = time.Now().UTC()
}

func (c *Caller) Stop(at time.Time) {
	at = at.UTC()
	c.StopTime = &at
	c.UpdatedAt = time.Now().UTC()
}

func (c *Caller) IsStopped() bool {
	return c.StopTime != nil
}

func (c *Caller) HasFix() bool {
	return c.Fix != nil
}
