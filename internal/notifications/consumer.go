package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aerobook/internal/shared/config"
	"aerobook/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer drains the booking topic and turns events into emails.
type Consumer struct {
	group  sarama.ConsumerGroup
	topics []string
	sender EmailSender
	logger *logger.Logger
	cancel context.CancelFunc
}

func NewConsumer(cfg config.KafkaConfig, sender EmailSender) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		group:  group,
		topics: []string{cfg.BookingTopic},
		sender: sender,
		logger: logger.GetDefault(),
	}, nil
}

// Start runs the consume loop until the context is cancelled or Stop is
// called. Consume returns on every rebalance, hence the outer loop.
func (c *Consumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.group.Errors() {
			c.logger.Error("consumer group error", "error", err)
		}
	}()

	go func() {
		handler := &eventHandler{sender: c.sender, logger: c.logger}
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := c.group.Consume(ctx, c.topics, handler); err != nil {
					c.logger.Error("consume failed, retrying", "error", err)
					time.Sleep(time.Second)
				}
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
	sender EmailSender
	logger *logger.Logger
}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.handle(session.Context(), message); err != nil {
				h.logger.Error("failed to process booking event", "error", err,
					"topic", message.Topic, "offset", message.Offset)
			}
			// Mark regardless; a poison message should not wedge the
			// partition for notification traffic.
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *eventHandler) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event BookingEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}

	if event.UserEmail == "" {
		h.logger.InfoContext(ctx, "booking event without recipient, skipping email",
			"event_type", event.Type, "booking_reference", event.BookingReference)
		return nil
	}

	return h.sender.Send(ctx, event.UserEmail, event.Subject(), renderBody(event))
}

func renderBody(e BookingEvent) string {
	body := fmt.Sprintf("Booking reference: %s\n", e.BookingReference)
	if e.FlightNumber != "" {
		body += fmt.Sprintf("Flight: %s\n", e.FlightNumber)
	}
	if e.Passengers > 0 {
		body += fmt.Sprintf("Passengers: %d (%s)\n", e.Passengers, e.FareClass)
	}
	if e.Amount > 0 {
		body += fmt.Sprintf("Amount: %.2f\n", e.Amount)
	}
	if e.TransactionID != "" {
		body += fmt.Sprintf("Transaction: %s\n", e.TransactionID)
	}
	return body
}
