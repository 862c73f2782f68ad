package metrics

import (
	"context"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
)

// Source defines the relational store the aggregate queries run against
type Source interface {
	// Count runs a query producing a single integer
	Count(ctx context.Context, query string, args ...any) (int64, error)

	// Trend runs a query producing (date, count) rows, preserving their order
	Trend(ctx context.Context, query string, args ...any) ([]common.TrendPoint, error)

	IsInterfaceNil() bool
}

// Registry defines the lookup table of metric definitions
type Registry interface {
	Get(key string) (Definition, error)
	Definitions() []Definition
	IsInterfaceNil() bool
}
