package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

// TimestampLayout is the layout of the timestamp field of every payload
const TimestampLayout = time.RFC3339

const zeroPercentage = "0.00%"

var log = logger.GetOrCreate("metrics")

// ArgsEvaluator defines the arguments needed to create an evaluator
type ArgsEvaluator struct {
	Source   Source
	Registry Registry
	Clock    func() time.Time
	Location *time.Location
}

// evaluator computes metric payloads fresh on every call
type evaluator struct {
	source   Source
	registry Registry
	clock    func() time.Time
	location *time.Location
}

// NewEvaluator creates a new evaluator instance
func NewEvaluator(args ArgsEvaluator) (*evaluator, error) {
	if check.IfNil(args.Source) {
		return nil, common.ErrNilSource
	}
	if check.IfNil(args.Registry) {
		return nil, errNilRegistry
	}
	if args.Clock == nil {
		return nil, common.ErrNilClock
	}

	location := args.Location
	if location == nil {
		location = time.UTC
	}

	return &evaluator{
		source:   args.Source,
		registry: args.Registry,
		clock:    args.Clock,
		location: location,
	}, nil
}

// Now returns the request time in the configured location
func (e *evaluator) Now() time.Time {
	return e.clock().In(e.location)
}

// Evaluate computes the JSON payload of the metric registered under key: a common.MetricResult, or a
// map of key to meaning for catalog metrics. Data-access failures are returned as *common.DataAccessError.
func (e *evaluator) Evaluate(ctx context.Context, key string) (any, error) {
	def, err := e.registry.Get(key)
	if err != nil {
		return nil, err
	}

	now := e.Now()
	timestamp := now.Format(TimestampLayout)

	if def.Shape == ShapeCatalog {
		return e.catalog(def, timestamp), nil
	}

	result := common.MetricResult{
		Metric:      def.Label,
		Description: def.Description,
		Timestamp:   timestamp,
	}

	switch def.Shape {
	case ShapeCount:
		result.Value, err = e.source.Count(ctx, def.Query, windowArgs(def.Windows, now)...)
	case ShapeTrend:
		result.Trend, err = e.source.Trend(ctx, def.Query, windowArgs(def.Windows, now)...)
	case ShapeRatio:
		result.Value, err = e.ratio(ctx, def, now)
	case ShapeStatic:
		result.Value = def.Static
	default:
		err = fmt.Errorf("%w: %s has unknown shape %d", errInvalidDefinition, def.Key, def.Shape)
	}
	if err != nil {
		log.Debug("metric evaluation failed", "key", key, "shape", def.Shape.String(), "error", err)
		return nil, err
	}

	return result, nil
}

// Keys returns the registered metric keys in registration order
func (e *evaluator) Keys() []string {
	definitions := e.registry.Definitions()
	keys := make([]string, 0, len(definitions))
	for _, def := range definitions {
		keys = append(keys, def.Key)
	}

	return keys
}

// ratio runs two independent reads, the counts may come from different snapshots
func (e *evaluator) ratio(ctx context.Context, def Definition, now time.Time) (string, error) {
	numerator, err := e.source.Count(ctx, def.Query, windowArgs(def.Windows, now)...)
	if err != nil {
		return "", err
	}

	denominator, err := e.source.Count(ctx, def.DenominatorQuery, windowArgs(def.DenominatorWindows, now)...)
	if err != nil {
		return "", err
	}

	return FormatPercentage(numerator, denominator), nil
}

func (e *evaluator) catalog(def Definition, timestamp string) map[string]string {
	meanings := make(map[string]string, len(def.CatalogKeys)+1)
	for _, key := range def.CatalogKeys {
		listed, err := e.registry.Get(key)
		if err != nil {
			continue
		}

		meanings[key] = listed.Summary
	}
	meanings["timestamp"] = timestamp

	return meanings
}

// FormatPercentage renders numerator/denominator with two decimals, 0.00% on an empty denominator
func FormatPercentage(numerator int64, denominator int64) string {
	if denominator == 0 {
		return zeroPercentage
	}

	return fmt.Sprintf("%.2f%%", float64(numerator)*100/float64(denominator))
}

func windowArgs(windows []Window, now time.Time) []any {
	args := make([]any, 0, len(windows)*2)
	for _, w := range windows {
		args = append(args, w.Args(now)...)
	}

	return args
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *evaluator) IsInterfaceNil() bool {
	return e == nil
}
