package metrics

import (
	"testing"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("duplicate key should error", func(t *testing.T) {
		r, err := NewRegistry([]Definition{
			staticDefinition("end12", "System Uptime", "", "99.9%"),
			staticDefinition("end12", "System Uptime", "", "99.8%"),
		})
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errInvalidDefinition)
		assert.Contains(t, err.Error(), "duplicate key end12")
	})
	t.Run("empty key should error", func(t *testing.T) {
		_, err := NewRegistry([]Definition{staticDefinition("", "label", "", 1)})
		assert.ErrorIs(t, err, errInvalidDefinition)
	})
	t.Run("count without query should error", func(t *testing.T) {
		_, err := NewRegistry([]Definition{{Key: "end1", Shape: ShapeCount}})
		assert.ErrorIs(t, err, errInvalidDefinition)
	})
	t.Run("ratio without denominator should error", func(t *testing.T) {
		_, err := NewRegistry([]Definition{{Key: "end17", Shape: ShapeRatio, Query: "SELECT 1"}})
		assert.ErrorIs(t, err, errInvalidDefinition)
	})
	t.Run("static without value should error", func(t *testing.T) {
		_, err := NewRegistry([]Definition{{Key: "end12", Shape: ShapeStatic}})
		assert.ErrorIs(t, err, errInvalidDefinition)
	})
	t.Run("catalog with unknown key should error", func(t *testing.T) {
		_, err := NewRegistry([]Definition{{Key: "end9", Shape: ShapeCatalog, CatalogKeys: []string{"end2"}}})
		assert.ErrorIs(t, err, errInvalidDefinition)
		assert.Contains(t, err.Error(), "unknown metric end2")
	})
	t.Run("unknown shape should error", func(t *testing.T) {
		_, err := NewRegistry([]Definition{{Key: "end1", Shape: Shape(42)}})
		assert.ErrorIs(t, err, errInvalidDefinition)
	})
	t.Run("default definitions should work", func(t *testing.T) {
		r, err := NewRegistry(DefaultDefinitions())
		require.NoError(t, err)
		require.False(t, r.IsInterfaceNil())
		assert.Equal(t, len(DefaultDefinitions()), len(r.Definitions()))
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(DefaultDefinitions())
	require.NoError(t, err)

	def, err := r.Get("end400")
	require.NoError(t, err)
	assert.Equal(t, ShapeTrend, def.Shape)
	assert.Equal(t, "Signups Per Day (Last 7 Days)", def.Label)

	_, err = r.Get("end999")
	assert.ErrorIs(t, err, common.ErrUnknownMetric)
}

func TestRegistry_DefinitionsAreCopied(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry(DefaultDefinitions())
	require.NoError(t, err)

	defs := r.Definitions()
	defs[0].Label = "changed"

	def, err := r.Get(defs[0].Key)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", def.Label)
}

func TestDefaultDefinitions_OneEntryPerKey(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for _, def := range DefaultDefinitions() {
		_, found := seen[def.Key]
		assert.False(t, found, "key %s registered twice", def.Key)
		seen[def.Key] = struct{}{}
	}

	assert.Len(t, seen, 23)
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "count", ShapeCount.String())
	assert.Equal(t, "trend", ShapeTrend.String())
	assert.Equal(t, "ratio", ShapeRatio.String())
	assert.Equal(t, "static", ShapeStatic.String())
	assert.Equal(t, "catalog", ShapeCatalog.String())
	assert.Equal(t, "unknown", Shape(42).String())
}
