package testsCommon

import (
	"context"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
)

// SourceStub -
type SourceStub struct {
	CountHandler func(ctx context.Context, query string, args ...any) (int64, error)
	TrendHandler func(ctx context.Context, query string, args ...any) ([]common.TrendPoint, error)
	CloseHandler func() error
}

// Count -
func (stub *SourceStub) Count(ctx context.Context, query string, args ...any) (int64, error) {
	if stub.CountHandler != nil {
		return stub.CountHandler(ctx, query, args...)
	}

	return 0, nil
}

// Trend -
func (stub *SourceStub) Trend(ctx context.Context, query string, args ...any) ([]common.TrendPoint, error) {
	if stub.TrendHandler != nil {
		return stub.TrendHandler(ctx, query, args...)
	}

	return make([]common.TrendPoint, 0), nil
}

// Close -
func (stub *SourceStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *SourceStub) IsInterfaceNil() bool {
	return stub == nil
}
