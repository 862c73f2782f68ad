package metrics

import (
	"fmt"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
)

// registry is the immutable lookup table of metric definitions
type registry struct {
	ordered []Definition
	byKey   map[string]Definition
}

// NewRegistry validates the definitions and indexes them by key. Duplicate keys are rejected.
func NewRegistry(definitions []Definition) (*registry, error) {
	r := &registry{
		ordered: make([]Definition, 0, len(definitions)),
		byKey:   make(map[string]Definition, len(definitions)),
	}

	for _, def := range definitions {
		err := checkDefinition(def)
		if err != nil {
			return nil, err
		}

		_, exists := r.byKey[def.Key]
		if exists {
			return nil, fmt.Errorf("%w: duplicate key %s", errInvalidDefinition, def.Key)
		}

		r.byKey[def.Key] = def
		r.ordered = append(r.ordered, def)
	}

	for _, def := range r.ordered {
		for _, key := range def.CatalogKeys {
			_, exists := r.byKey[key]
			if !exists {
				return nil, fmt.Errorf("%w: %s lists unknown metric %s", errInvalidDefinition, def.Key, key)
			}
		}
	}

	return r, nil
}

func checkDefinition(def Definition) error {
	if len(def.Key) == 0 {
		return fmt.Errorf("%w: empty key", errInvalidDefinition)
	}

	switch def.Shape {
	case ShapeCount, ShapeTrend:
		if len(def.Query) == 0 {
			return fmt.Errorf("%w: %s has no query", errInvalidDefinition, def.Key)
		}
	case ShapeRatio:
		if len(def.Query) == 0 || len(def.DenominatorQuery) == 0 {
			return fmt.Errorf("%w: %s needs both numerator and denominator queries", errInvalidDefinition, def.Key)
		}
	case ShapeStatic:
		if def.Static == nil {
			return fmt.Errorf("%w: %s has no static value", errInvalidDefinition, def.Key)
		}
	case ShapeCatalog:
		if len(def.CatalogKeys) == 0 {
			return fmt.Errorf("%w: %s lists no metrics", errInvalidDefinition, def.Key)
		}
	default:
		return fmt.Errorf("%w: %s has unknown shape %d", errInvalidDefinition, def.Key, def.Shape)
	}

	return nil
}

// Get returns the definition registered under key
func (r *registry) Get(key string) (Definition, error) {
	def, exists := r.byKey[key]
	if !exists {
		return Definition{}, fmt.Errorf("%w: %s", common.ErrUnknownMetric, key)
	}

	return def, nil
}

// Definitions returns all definitions in registration order
func (r *registry) Definitions() []Definition {
	return append([]Definition(nil), r.ordered...)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (r *registry) IsInterfaceNil() bool {
	return r == nil
}
