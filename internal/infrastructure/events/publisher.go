// Package events publishes IAM domain events. The Kafka publisher is used
// when event publishing is enabled; the no-op publisher otherwise, so the
// sign-up/sign-in flows never depend on a broker being reachable.
package events

import "context"

// Publisher emits user lifecycle events.
type Publisher interface {
	PublishUserRegistered(ctx context.Context, userID int64, username string) error
	PublishUserAuthenticated(ctx context.Context, userID int64, username string) error
	Close() error
}

// userEvent is the wire shape of a published event.
type userEvent struct {
	Type     string `json:"type"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	At       string `json:"at"`
}

const (
	eventUserRegistered    = "user.registered"
	eventUserAuthenticated = "user.authenticated"
)
