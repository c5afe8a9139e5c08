package notifications

import (
	"context"
	"encoding/json"

	"buslink/internal/shared/config"
	"buslink/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer reads the events topic and records deliveries. Actual
// email/SMS dispatch is out of scope; the handler logs each event so
// deliveries are traceable end to end.
type Consumer struct {
	group  sarama.ConsumerGroup
	topic  string
	log    *logger.Logger
	cancel context.CancelFunc
}

func NewConsumer(cfg *config.KafkaConfig, log *logger.Logger) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group: group,
		topic: cfg.EventsTopic,
		log:   log,
	}, nil
}

// Start consumes in a background goroutine until Stop is called.
func (c *Consumer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		handler := &eventHandler{log: c.log}
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
				c.log.Error("consumer error", "error", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *Consumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.group.Close()
}

type eventHandler struct {
	log *logger.Logger
}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			h.log.Error("skipping malformed event", "offset", msg.Offset, "error", err)
			session.MarkMessage(msg, "")
			continue
		}

		h.log.Info("event delivered",
			"type", event.Type,
			"schedule_id", event.ScheduleID,
			"event_id", event.ID,
			"occurred_at", event.OccurredAt,
		)
		session.MarkMessage(msg, "")
	}
	return nil
}
