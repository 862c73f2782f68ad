package factory

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/config"
	"github.com/stretchr/testify/assert"
)

func createTestConfig(t *testing.T) config.Config {
	return config.Config{
		ListenAddress:  "127.0.0.1:0",
		MessagesDBPath: filepath.Join(t.TempDir(), "messages.db"),
		Source: config.SourceConfig{
			Driver:   "sqlite3",
			Database: filepath.Join(t.TempDir(), "source.db"),
		},
	}
}

func TestNewComponentsHandler(t *testing.T) {
	t.Parallel()

	t.Run("should work", func(t *testing.T) {
		handler, err := NewComponentsHandler("", createTestConfig(t))

		assert.NotNil(t, handler)
		assert.Nil(t, err)

		handler.Close()
	})
	t.Run("invalid time zone should error", func(t *testing.T) {
		cfg := createTestConfig(t)
		cfg.TimeZone = "Nowhere/Land"

		handler, err := NewComponentsHandler("", cfg)
		assert.Nil(t, handler)
		assert.Error(t, err)
	})
	t.Run("unsupported driver should error", func(t *testing.T) {
		cfg := createTestConfig(t)
		cfg.Source.Driver = "oracle"

		handler, err := NewComponentsHandler("", cfg)
		assert.Nil(t, handler)
		assert.Error(t, err)
	})
	t.Run("duplicated channel should error", func(t *testing.T) {
		cfg := createTestConfig(t)
		cfg.MessageChannels = []int{189, 189}

		handler, err := NewComponentsHandler("", cfg)
		assert.Nil(t, handler)
		assert.Error(t, err)
	})
}

func TestComponentsHandlerMethods(t *testing.T) {
	t.Parallel()

	handler, _ := NewComponentsHandler("", createTestConfig(t))

	handler.Start()

	store := handler.GetStore()
	assert.Equal(t, "*storage.sqliteStorage", fmt.Sprintf("%T", store))

	evaluator := handler.GetEvaluator()
	assert.Equal(t, "*metrics.evaluator", fmt.Sprintf("%T", evaluator))

	serv := handler.GetServer()
	assert.Equal(t, "*api.server", fmt.Sprintf("%T", serv))

	handler.Close()
}
