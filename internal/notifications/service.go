package notifications

import (
	"context"

	"aerobook/internal/shared/config"
	"aerobook/pkg/logger"
)

// Service owns the producer and consumer lifecycle. When Kafka is
// disabled it degrades to a nil publisher; domain services treat a nil
// Publisher as "notifications off".
type Service struct {
	publisher *KafkaPublisher
	consumer  *Consumer
	logger    *logger.Logger
}

// NewService wires the notification pipeline from config. Returns a
// service with a nil publisher when the broker is disabled.
func NewService(cfg *config.Config) (*Service, error) {
	svc := &Service{logger: logger.GetDefault()}

	if !cfg.Kafka.Enabled {
		svc.logger.Info("kafka disabled, booking notifications off")
		return svc, nil
	}

	publisher, err := NewKafkaPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	svc.publisher = publisher

	sender := pickSender(cfg)
	consumer, err := NewConsumer(cfg.Kafka, sender)
	if err != nil {
		publisher.Close()
		return nil, err
	}
	svc.consumer = consumer

	return svc, nil
}

// Publisher returns the event publisher, nil when disabled.
func (s *Service) Publisher() Publisher {
	if s.publisher == nil {
		return nil
	}
	return s.publisher
}

// Start launches the consumer loop when the pipeline is enabled.
func (s *Service) Start(ctx context.Context) {
	if s.consumer != nil {
		s.consumer.Start(ctx)
	}
}

// Close shuts the pipeline down, consumer first so in-flight messages
// finish before the producer goes away.
func (s *Service) Close() error {
	var firstErr error
	if s.consumer != nil {
		if err := s.consumer.Stop(); err != nil {
			firstErr = err
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func pickSender(cfg *config.Config) EmailSender {
	sender, err := NewSMTPSender(cfg.Email)
	if err != nil {
		logger.GetDefault().Info("smtp not configured, using log sender for emails")
		return NewLogSender()
	}
	return sender
}
