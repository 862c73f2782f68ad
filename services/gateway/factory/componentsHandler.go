package factory

import (
	"time"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/api"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/config"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/metrics"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/source"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/storage"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("factory")

type sourceCloser interface {
	metrics.Source
	Close() error
}

type componentsHandler struct {
	source    sourceCloser
	store     api.MessageStore
	evaluator api.MetricEvaluator
	server    Server
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(
	sourcePassword string,
	cfg config.Config,
) (*componentsHandler, error) {
	cfg.ApplyDefaults()

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	src, err := source.NewSQLSource(source.ArgsSQLSource{
		Config:   cfg.Source,
		Password: sourcePassword,
	})
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(cfg.MessagesDBPath)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	ch := &componentsHandler{
		source: src,
		store:  store,
	}

	err = ch.createServer(cfg, location)
	if err != nil {
		ch.Close()
		return nil, err
	}

	return ch, nil
}

func (ch *componentsHandler) createServer(cfg config.Config, location *time.Location) error {
	registry, err := metrics.NewRegistry(metrics.DefaultDefinitions())
	if err != nil {
		return err
	}

	ch.evaluator, err = metrics.NewEvaluator(metrics.ArgsEvaluator{
		Source:   ch.source,
		Registry: registry,
		Clock:    time.Now,
		Location: location,
	})
	if err != nil {
		return err
	}

	server, err := api.NewServer(api.ArgsWebServer{
		ListenAddress:   cfg.ListenAddress,
		Version:         cfg.Version,
		MessageChannels: cfg.MessageChannels,
		Evaluator:       ch.evaluator,
		MessageStore:    ch.store,
		GeneralHandler:  api.CORSMiddleware,
	})
	if err != nil {
		return err
	}

	ch.server = server

	return nil
}

// GetStore returns the message store component
func (ch *componentsHandler) GetStore() api.MessageStore {
	return ch.store
}

// GetEvaluator returns the metric evaluator component
func (ch *componentsHandler) GetEvaluator() api.MetricEvaluator {
	return ch.evaluator
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the inner components
func (ch *componentsHandler) Start() {
	ch.server.Start()
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	if ch.server != nil {
		err := ch.server.Close()
		log.LogIfError(err)
	}

	err := ch.store.Close()
	log.LogIfError(err)

	err = ch.source.Close()
	log.LogIfError(err)
}
