package kafka

import (
	"context"
	"time"

	"hosteed/internal/pkg/errs"

	"github.com/IBM/sarama"
)

type Producer struct {
	sync sarama.SyncProducer
}

func NewConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 250 * time.Millisecond
	// idempotent producers require a single in-flight request
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

func NewProducer(brokers []string, clientID string) (*Producer, error) {
	sync, err := sarama.NewSyncProducer(brokers, NewConfig(clientID))
	if err != nil {
		return nil, errs.Wrap(err, "create kafka producer")
	}
	return &Producer{sync: sync}, nil
}

// NewProducerWith wraps an existing sync producer, e.g. sarama/mocks.
func NewProducerWith(sync sarama.SyncProducer) *Producer {
	return &Producer{sync: sync}
}

func (p *Producer) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: hs,
	}
	if _, _, err := p.sync.SendMessage(msg); err != nil {
		return errs.Wrapf(err, "publish to %s", topic)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}
