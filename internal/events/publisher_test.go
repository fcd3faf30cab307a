package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"football-club/matchday/internal/constants"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	publishFunc func(ctx context.Context, exchange, key string, msg amqp.Publishing) error
	sent        []published
	closed      bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishFunc != nil {
		if err := f.publishFunc(ctx, exchange, key, msg); err != nil {
			return err
		}
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "matchday.events"}

	payload := map[string]string{"notification_id": "n1", "match_id": "m1"}
	require.NoError(t, p.Publish(context.Background(), constants.EventNotificationSent, payload))

	require.Len(t, ch.sent, 1)
	got := ch.sent[0]
	assert.Equal(t, "matchday.events", got.exchange)
	assert.Equal(t, "notification.sent", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.NotEmpty(t, got.msg.MessageId)

	var body map[string]string
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, payload, body)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestAMQPPublisher_PublishErrors(t *testing.T) {
	ch := &fakeChannel{publishFunc: func(ctx context.Context, exchange, key string, msg amqp.Publishing) error {
		return errors.New("channel closed")
	}}
	p := &AMQPPublisher{ch: ch, exchange: "x"}

	err := p.Publish(context.Background(), constants.EventNotificationCreated, map[string]string{})
	assert.ErrorContains(t, err, "channel closed")

	err = p.Publish(context.Background(), constants.EventNotificationCreated, make(chan int))
	assert.ErrorContains(t, err, "marshal")
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.Publish(context.Background(), constants.EventNotificationCreated, nil))
	assert.NoError(t, p.Close())
}
