package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../mocks/ingest_mocks.go -package=mocks

const TopicPrefix = "df/reports/"

var ErrInvalidTopic = errors.New("invalid report topic")

type ReportSink interface {
	AddChannelReport(ctx context.Context, channel string, report entity.Report) (*entity.Caller, error)
}

type Metrics interface {
	ReportIngested(channel string)
	ReportRejected(reason string)
}

type message struct {
	Station    string    `json:"station"`
	Bearing    string    `json:"bearing"`
	ReceivedAt time.Time `json:"received_at"`
}

type Service struct {
	sink    ReportSink
	metrics Metrics
	logger  *zap.Logger
}

func NewService(sink ReportSink, metrics Metrics, logger *zap.Logger) *Service {
	return &Service{
		sink:    sink,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle turns one bearing report message into a caller update.
func (s *Service) Handle(ctx context.Context, topic string, payload []byte) error {
	channel, err := ChannelFromTopic(topic)
	if err != nil {
		s.reject("topic", err, zap.String("topic", topic))
		return err
	}

	var msg message
	if err := json.Unmarshal(payload, &msg); err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrInvalidReport, err)
		s.reject("payload", err, zap.String("topic", topic))
		return err
	}

	report := entity.Report{
		Station:    strings.TrimSpace(msg.Station),
		Bearing:    msg.Bearing,
		ReceivedAt: msg.ReceivedAt.UTC(),
	}
	if msg.ReceivedAt.IsZero() {
		report.ReceivedAt = time.Now().UTC()
	}

	caller, err := s.sink.AddChannelReport(ctx, channel, report)
	if err != nil {
		s.reject("rejected", err,
			zap.String("channel", channel),
			zap.String("station", report.Station),
			zap.String("bearing", report.Bearing),
		)
		return err
	}

	s.metrics.ReportIngested(channel)

	fields := []zap.Field{
		zap.String("channel", channel),
		zap.String("station", report.Station),
		zap.String("caller_id", caller.ID.String()),
	}
	if caller.HasFix() {
		fields = append(fields,
			zap.Float64("fix_lat", caller.Fix.Latitude),
			zap.Float64("fix_lng", caller.Fix.Longitude),
		)
	}
	s.logger.Info("bearing report ingested", fields...)

	return nil
}

func (s *Service) reject(reason string, err error, fields ...zap.Field) {
	s.metrics.ReportRejected(reason)
	s.logger.Warn("bearing report dropped", append(fields, zap.Error(err))...)
}

// ChannelFromTopic extracts the channel from a df/reports/<channel> topic.
func ChannelFromTopic(topic string) (string, error) {
	channel, ok := strings.CutPrefix(topic, TopicPrefix)
	if !ok || channel == "" || strings.Contains(channel, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	return channel, nil
}
