package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/config"
)

const (
	tokenTimeout   = 10 * time.Second
	handleTimeout  = 5 * time.Second
	disconnectWait = 250
)

var ErrTokenTimeout = errors.New("mqtt operation timed out")

type Client interface {
	Connect() mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Unsubscribe(topics ...string) mqtt.Token
	Disconnect(quiesce uint)
}

type Handler interface {
	Handle(ctx context.Context, topic string, payload []byte) error
}

func NewClient(cfg config.MQTTConfig, logger *zap.Logger) mqtt.Client {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(false)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("mqtt connection lost", zap.Error(err))
	})
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		logger.Info("mqtt connected", zap.String("broker", cfg.Broker))
	})

	return mqtt.NewClient(opts)
}

type Subscriber struct {
	client  Client
	topic   string
	qos     byte
	handler Handler
	logger  *zap.Logger
}

func NewSubscriber(client Client, cfg config.MQTTConfig, handler Handler, logger *zap.Logger) *Subscriber {
	return &Subscriber{
		client:  client,
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		handler: handler,
		logger:  logger,
	}
}

// Start connects and subscribes. Messages are handled until ctx is done or Stop is called.
func (s *Subscriber) Start(ctx context.Context) error {
	if err := wait(s.client.Connect()); err != nil {
		return fmt.Errorf("connecting to broker: %w", err)
	}

	callback := func(_ mqtt.Client, msg mqtt.Message) {
		s.dispatch(ctx, msg)
	}
	if err := wait(s.client.Subscribe(s.topic, s.qos, callback)); err != nil {
		s.client.Disconnect(disconnectWait)
		return fmt.Errorf("subscribing to %s: %w", s.topic, err)
	}

	s.logger.Info("subscribed to bearing reports", zap.String("topic", s.topic), zap.Uint8("qos", s.qos))
	return nil
}

func (s *Subscriber) Stop() {
	if err := wait(s.client.Unsubscribe(s.topic)); err != nil {
		s.logger.Warn("unsubscribing", zap.String("topic", s.topic), zap.Error(err))
	}
	s.client.Disconnect(disconnectWait)
	s.logger.Info("mqtt subscriber stopped")
}

func (s *Subscriber) dispatch(ctx context.Context, msg mqtt.Message) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic handling bearing report", zap.Any("error", r), zap.String("topic", msg.Topic()))
		}
	}()

	if ctx.Err() != nil {
		return
	}

	hctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	// The handler logs its own failures; a bad report must not stop the stream.
	_ = s.handler.Handle(hctx, msg.Topic(), msg.Payload())
	msg.Ack()
}

func wait(token mqtt.Token) error {
	if !token.WaitTimeout(tokenTimeout) {
		return ErrTokenTimeout
	}
	return token.Error()
}
