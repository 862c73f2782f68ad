package api

import (
	"context"
	"time"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
)

// MetricEvaluator defines the component able to compute metric payloads
type MetricEvaluator interface {
	// Evaluate computes, without caching, the payload of the metric registered under key
	Evaluate(ctx context.Context, key string) (any, error)

	// Keys returns the registered metric keys in registration order
	Keys() []string

	// Now returns the current request time in the configured location
	Now() time.Time

	IsInterfaceNil() bool
}

// MessageStore defines the interface for the append-only message log
type MessageStore interface {
	// SaveMessage appends a message and returns the stored record
	SaveMessage(ctx context.Context, code int, title string, body string, createdAt time.Time) (*common.MessageRecord, error)

	// GetMessages returns every stored message in insertion order
	GetMessages(ctx context.Context) ([]common.MessageRecord, error)

	// Close shuts down the database connection
	Close() error

	IsInterfaceNil() bool
}
