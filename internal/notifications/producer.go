package notifications

import (
	"context"
	"encoding/json"

	"buslink/internal/shared/config"
	"buslink/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher emits domain events. Callers treat publishing as best
// effort: a failed publish is logged, never returned to the request.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// noopPublisher is used when Kafka is disabled in config.
type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, event Event) {}
func (noopPublisher) Close() error                             { return nil }

// NewNoopPublisher returns a publisher that drops every event. Used as
// a fallback when the broker connection cannot be established.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

// NewPublisher connects a sync producer to the configured brokers.
// Returns a no-op publisher when Kafka is disabled.
func NewPublisher(cfg *config.KafkaConfig, log *logger.Logger) (Publisher, error) {
	if !cfg.Enabled {
		log.Info("kafka disabled, events will not be published")
		return noopPublisher{}, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, err
	}

	return &kafkaPublisher{
		producer: producer,
		topic:    cfg.EventsTopic,
		log:      log,
	}, nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to marshal event", "type", event.Type, "error", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ScheduleID.String()),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Error("failed to publish event", "type", event.Type, "schedule_id", event.ScheduleID, "error", err)
		return
	}
	p.log.Debug("event published", "type", event.Type, "partition", partition, "offset", offset)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}
