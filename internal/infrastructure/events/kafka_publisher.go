package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ecomovil/platform/internal/config"
	"github.com/ecomovil/platform/pkg/logger"
)

// KafkaPublisher is a Kafka-backed Publisher.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    logger.Logger
}

// NewKafkaPublisher creates a publisher writing to the configured topic.
func NewKafkaPublisher(cfg *config.EventsConfig, log logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaPublisher{
		writer: writer,
		log:    log.WithComponent("kafka_publisher"),
	}
}

// PublishUserRegistered emits a user.registered event.
func (p *KafkaPublisher) PublishUserRegistered(ctx context.Context, userID int64, username string) error {
	return p.publish(ctx, eventUserRegistered, userID, username)
}

// PublishUserAuthenticated emits a user.authenticated event.
func (p *KafkaPublisher) PublishUserAuthenticated(ctx context.Context, userID int64, username string) error {
	return p.publish(ctx, eventUserAuthenticated, userID, username)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, userID int64, username string) error {
	event := userEvent{
		Type:     eventType,
		UserID:   userID,
		Username: username,
		At:       time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error(ctx, "failed to marshal event", err, logger.Fields{"type": eventType})
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: payload}); err != nil {
		p.log.Error(ctx, "failed to write event to Kafka", err, logger.Fields{"type": eventType})
		return err
	}
	return nil
}

// Close closes the underlying Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
