package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	healthyStatus          = "healthy"
	messageStoredResponse  = "Message stored successfully"
	timestampLayout        = time.RFC3339
	metricsExpositionRoute = "/metrics"
)

var log = logger.GetOrCreate("api")

type server struct {
	router          *gin.Engine
	httpServer      *http.Server
	evaluator       MetricEvaluator
	messageStore    MessageStore
	listenAddr      string
	version         string
	messageChannels []int
	instrumentation *instrumentation
	generalHandler  func(http.Handler) http.Handler
	mutServer       sync.RWMutex
	wg              sync.WaitGroup
}

// messageSendRequest maps the query parameters of a message send call
type messageSendRequest struct {
	Title string `form:"title" binding:"required"`
	Body  string `form:"body" binding:"required"`
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ListenAddress   string
	Version         string
	MessageChannels []int
	Evaluator       MetricEvaluator
	MessageStore    MessageStore
	GeneralHandler  func(http.Handler) http.Handler
}

// NewServer initializes the Gin engine and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Evaluator) {
		return nil, errors.New("evaluator is required")
	}
	if check.IfNil(args.MessageStore) {
		return nil, common.ErrNilMessageStore
	}
	if args.GeneralHandler == nil {
		return nil, errors.New("nil http handler")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	ins := newInstrumentation()
	router.Use(gin.Recovery(), ins.middleware())

	s := &server{
		router:          router,
		evaluator:       args.Evaluator,
		messageStore:    args.MessageStore,
		listenAddr:      args.ListenAddress,
		version:         args.Version,
		messageChannels: args.MessageChannels,
		instrumentation: ins,
		generalHandler:  args.GeneralHandler,
	}

	err := s.setupRoutes()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *server) setupRoutes() error {
	api := s.router.Group("/api")

	api.GET("/health", s.handleHealth)

	for _, key := range s.evaluator.Keys() {
		api.GET("/"+key, s.handleMetric(key))
	}

	seenChannels := make(map[int]struct{}, len(s.messageChannels))
	for _, code := range s.messageChannels {
		_, duplicated := seenChannels[code]
		if duplicated {
			return fmt.Errorf("duplicated message channel %d", code)
		}
		seenChannels[code] = struct{}{}

		api.GET("/send/"+strconv.Itoa(code), s.handleMessageSend(code))
	}

	s.router.GET(metricsExpositionRoute, gin.WrapH(s.instrumentation.handler()))

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "api route not found"})
	})

	return nil
}

// Start listens and serves connections
func (s *server) Start() {
	handler := s.generalHandler(s.router)

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "error", err)
		return
	}

	s.mutServer.Lock()
	s.listenAddr = ln.Addr().String()
	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: handler,
	}
	httpServer := s.httpServer
	s.mutServer.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", ln.Addr().String())

		errServe := httpServer.Serve(ln)
		if errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			log.Error("http server failed", "error", errServe)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	s.mutServer.RLock()
	defer s.mutServer.RUnlock()

	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.mutServer.RLock()
	httpServer := s.httpServer
	s.mutServer.RUnlock()

	if httpServer != nil {
		if err := httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()

	return nil
}

// --- Handlers ---

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:    healthyStatus,
		Timestamp: s.evaluator.Now().Format(timestampLayout),
		Version:   s.version,
	})
}

func (s *server) handleMetric(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := s.evaluator.Evaluate(c.Request.Context(), key)
		if err != nil {
			s.instrumentation.metricFailures.WithLabelValues(key).Inc()
			log.Warn("metric request failed", "metric", key, "error", err)
			s.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, payload)
	}
}

func (s *server) handleMessageSend(code int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req messageSendRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			s.respondError(c, &common.ValidationError{Err: common.ErrMissingTitleOrBody})
			return
		}

		now := s.evaluator.Now()
		record, err := s.messageStore.SaveMessage(c.Request.Context(), code, req.Title, req.Body, now)
		if err != nil {
			log.Warn("failed to store message", "code", code, "error", err)
			s.respondError(c, err)
			return
		}

		s.instrumentation.messagesStored.WithLabelValues(strconv.Itoa(code)).Inc()
		log.Debug("message stored", "id", record.ID, "code", code, "sender", c.Request.RemoteAddr)

		c.JSON(http.StatusOK, common.MessageResponse{
			Code:      record.Code,
			Title:     record.Title,
			Body:      record.Body,
			Message:   messageStoredResponse,
			Timestamp: now.Format(timestampLayout),
		})
	}
}

func (s *server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var validationErr *common.ValidationError
	if errors.As(err, &validationErr) {
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
