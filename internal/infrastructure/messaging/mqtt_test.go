package messaging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/config"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeMessage struct {
	topic   string
	payload []byte
	acked   bool
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              { m.acked = true }

type fakeClient struct {
	connectErr   error
	subscribeErr error
	callback     mqtt.MessageHandler
	subscribed   string
	disconnected bool
}

func (c *fakeClient) Connect() mqtt.Token { return &fakeToken{err: c.connectErr} }

func (c *fakeClient) Subscribe(topic string, _ byte, callback mqtt.MessageHandler) mqtt.Token {
	c.subscribed = topic
	c.callback = callback
	return &fakeToken{err: c.subscribeErr}
}

func (c *fakeClient) Unsubscribe(...string) mqtt.Token { return &fakeToken{} }

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

type recordingHandler struct {
	mu     sync.Mutex
	topics []string
	err    error
	panic  bool
}

func (h *recordingHandler) Handle(_ context.Context, topic string, _ []byte) error {
	if h.panic {
		panic("boom")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.topics = append(h.topics, topic)
	return h.err
}

func testConfig() config.MQTTConfig {
	return config.MQTTConfig{Topic: "df/reports/+", QoS: 1}
}

func TestSubscriber_Start(t *testing.T) {
	t.Run("subscribes and dispatches messages", func(t *testing.T) {
		client := &fakeClient{}
		handler := &recordingHandler{}
		sub := NewSubscriber(client, testConfig(), handler, zap.NewNop())

		require.NoError(t, sub.Start(context.Background()))
		assert.Equal(t, "df/reports/+", client.subscribed)

		msg := &fakeMessage{topic: "df/reports/ch16", payload: []byte(`{}`)}
		client.callback(nil, msg)

		assert.Equal(t, []string{"df/reports/ch16"}, handler.topics)
		assert.True(t, msg.acked)
	})

	t.Run("handler error still acks", func(t *testing.T) {
		client := &fakeClient{}
		handler := &recordingHandler{err: errors.New("bad report")}
		sub := NewSubscriber(client, testConfig(), handler, zap.NewNop())
		require.NoError(t, sub.Start(context.Background()))

		msg := &fakeMessage{topic: "df/reports/ch16"}
		client.callback(nil, msg)

		assert.True(t, msg.acked)
	})

	t.Run("handler panic is contained", func(t *testing.T) {
		client := &fakeClient{}
		sub := NewSubscriber(client, testConfig(), &recordingHandler{panic: true}, zap.NewNop())
		require.NoError(t, sub.Start(context.Background()))

		assert.NotPanics(t, func() {
			client.callback(nil, &fakeMessage{topic: "df/reports/ch16"})
		})
	})

	t.Run("cancelled context drops messages", func(t *testing.T) {
		client := &fakeClient{}
		handler := &recordingHandler{}
		ctx, cancel := context.WithCancel(context.Background())
		sub := NewSubscriber(client, testConfig(), handler, zap.NewNop())
		require.NoError(t, sub.Start(ctx))

		cancel()
		client.callback(nil, &fakeMessage{topic: "df/reports/ch16"})

		assert.Empty(t, handler.topics)
	})

	t.Run("connect failure", func(t *testing.T) {
		client := &fakeClient{connectErr: errors.New("refused")}
		sub := NewSubscriber(client, testConfig(), &recordingHandler{}, zap.NewNop())

		err := sub.Start(context.Background())
		assert.ErrorContains(t, err, "connecting to broker")
	})

	t.Run("subscribe failure disconnects", func(t *testing.T) {
		client := &fakeClient{subscribeErr: errors.New("not authorized")}
		sub := NewSubscriber(client, testConfig(), &recordingHandler{}, zap.NewNop())

		err := sub.Start(context.Background())
		assert.ErrorContains(t, err, "subscribing to df/reports/+")
		assert.True(t, client.disconnected)
	})
}

func TestSubscriber_Stop(t *testing.T) {
	client := &fakeClient{}
	sub := NewSubscriber(client, testConfig(), &recordingHandler{}, zap.NewNop())
	require.NoError(t, sub.Start(context.Background()))

	sub.Stop()

	assert.True(t, client.disconnected)
}
