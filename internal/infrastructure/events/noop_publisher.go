package events

import (
	"context"

	"github.com/ecomovil/platform/pkg/logger"
)

// NoopPublisher logs events instead of publishing them. Used when event
// publishing is disabled.
type NoopPublisher struct {
	log logger.Logger
}

// NewNoopPublisher creates a publisher that only logs.
func NewNoopPublisher(log logger.Logger) *NoopPublisher {
	return &NoopPublisher{log: log.WithComponent("noop_publisher")}
}

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, userID int64, username string) error {
	p.log.Debug(ctx, "event publishing disabled, dropping user.registered", logger.Fields{"username": username})
	return nil
}

func (p *NoopPublisher) PublishUserAuthenticated(ctx context.Context, userID int64, username string) error {
	p.log.Debug(ctx, "event publishing disabled, dropping user.authenticated", logger.Fields{"username": username})
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}
