package api

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/config"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/metrics"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/source"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/storage"
	"github.com/kuza-analytics/metrics-gateway/services/gateway/testsCommon"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func setupTestServer(t *testing.T, clock func() time.Time) (*server, MessageStore) {
	dbPath := filepath.Join(t.TempDir(), "source.db")
	require.NoError(t, testsCommon.SeedSourceDatabase(dbPath))

	src, err := source.NewSQLSource(source.ArgsSQLSource{
		Config: config.SourceConfig{
			Driver:   source.DriverSQLite,
			Database: dbPath,
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = src.Close()
	})

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	r, err := metrics.NewRegistry(metrics.DefaultDefinitions())
	require.NoError(t, err)

	eval, err := metrics.NewEvaluator(metrics.ArgsEvaluator{
		Source:   src,
		Registry: r,
		Clock:    clock,
		Location: time.UTC,
	})
	require.NoError(t, err)

	serv, err := NewServer(ArgsWebServer{
		ListenAddress:   ":0",
		Version:         "3.0.0",
		MessageChannels: []int{189, 187, 147, 190},
		Evaluator:       eval,
		MessageStore:    store,
		GeneralHandler:  passThrough,
	})
	require.NoError(t, err)

	return serv, store
}

func fixtureClock() time.Time {
	return testsCommon.FixtureNow
}

func TestHealthEndpoint(t *testing.T) {
	serv, _ := setupTestServer(t, fixtureClock)

	w := doGet(serv, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy","timestamp":"2026-10-18T14:30:00Z","version":"3.0.0"}`, w.Body.String())
}

func TestCountEndpoints(t *testing.T) {
	serv, _ := setupTestServer(t, fixtureClock)

	w := doGet(serv, "/api/end100")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"metric":"Total Signups (All-Time)","value":10,"timestamp":"2026-10-18T14:30:00Z"}`, w.Body.String())

	w = doGet(serv, "/api/end3")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Equal(t, "Subscriptions Ending in 5 Days", gjson.Get(body, "metric").String())
	require.Equal(t, "Urgent monitoring of subscriptions expiring soon for retention or renewal reminders.", gjson.Get(body, "description").String())
	require.Equal(t, int64(2), gjson.Get(body, "value").Int())
	require.False(t, gjson.Get(body, "trend").Exists())
}

func TestTrendEndpoint(t *testing.T) {
	serv, _ := setupTestServer(t, fixtureClock)

	w := doGet(serv, "/api/end400")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.False(t, gjson.Get(body, "value").Exists())
	require.Equal(t, int64(3), gjson.Get(body, "trend.#").Int())
	require.Equal(t, []string{"2026-10-18", "2026-10-16", "2026-10-13"}, stringsOf(gjson.Get(body, "trend.#.date")))
	require.Equal(t, int64(2), gjson.Get(body, "trend.0.signups").Int())
	require.Equal(t, int64(1), gjson.Get(body, "trend.2.signups").Int())
}

func TestTrendEndpoint_EmptyWindow(t *testing.T) {
	farFuture := func() time.Time {
		return testsCommon.FixtureNow.AddDate(1, 0, 0)
	}
	serv, _ := setupTestServer(t, farFuture)

	w := doGet(serv, "/api/end400")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, gjson.Get(w.Body.String(), "trend").IsArray())
	require.Equal(t, int64(0), gjson.Get(w.Body.String(), "trend.#").Int())
}

func TestRatioEndpoint(t *testing.T) {
	serv, _ := setupTestServer(t, fixtureClock)

	w := doGet(serv, "/api/end17")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "37.50%", gjson.Get(w.Body.String(), "value").String())

	farFuture := func() time.Time {
		return testsCommon.FixtureNow.AddDate(1, 0, 0)
	}
	serv, _ = setupTestServer(t, farFuture)

	w = doGet(serv, "/api/end17")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "0.00%", gjson.Get(w.Body.String(), "value").String())
}

func TestStaticEndpointIsStable(t *testing.T) {
	calls := 0
	tickingClock := func() time.Time {
		calls++
		return testsCommon.FixtureNow.Add(time.Duration(calls) * time.Minute)
	}
	serv, _ := setupTestServer(t, tickingClock)

	first := doGet(serv, "/api/end12").Body.String()
	second := doGet(serv, "/api/end12").Body.String()

	require.Equal(t, gjson.Get(first, "metric").String(), gjson.Get(second, "metric").String())
	require.Equal(t, "99.9%", gjson.Get(first, "value").String())
	require.Equal(t, gjson.Get(first, "value").String(), gjson.Get(second, "value").String())
	require.Equal(t, gjson.Get(first, "description").String(), gjson.Get(second, "description").String())
	require.NotEqual(t, gjson.Get(first, "timestamp").String(), gjson.Get(second, "timestamp").String())
}

func TestCatalogEndpoint(t *testing.T) {
	serv, _ := setupTestServer(t, fixtureClock)

	w := doGet(serv, "/api/end9")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, key := range []string{"end2", "end3", "end4", "end5", "end6", "end7", "end8", "timestamp"} {
		require.True(t, gjson.Get(body, key).Exists(), key)
	}
	require.Equal(t, "Users registered within the last 7 days (new user acquisition in the past week).", gjson.Get(body, "end4").String())
}

func TestMessageSendEndpoint(t *testing.T) {
	serv, store := setupTestServer(t, time.Now)
	start := time.Now().Add(-time.Second)

	w := doGet(serv, "/api/send/189?title=Hello&body=World")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Equal(t, int64(189), gjson.Get(body, "code").Int())
	require.Equal(t, "Hello", gjson.Get(body, "title").String())
	require.Equal(t, "World", gjson.Get(body, "body").String())
	require.Equal(t, "Message stored successfully", gjson.Get(body, "message").String())
	_, err := time.Parse(time.RFC3339, gjson.Get(body, "timestamp").String())
	require.NoError(t, err)

	w = doGet(serv, "/api/send/147?title=Second&body=Message")
	require.Equal(t, http.StatusOK, w.Code)

	w = doGet(serv, "/api/send/190?title=")
	require.Equal(t, http.StatusBadRequest, w.Code)

	messages, err := store.GetMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, 189, messages[0].Code)
	require.Equal(t, "Hello", messages[0].Title)
	require.Equal(t, "World", messages[0].Body)
	require.False(t, messages[0].CreatedAt.Before(start))
	require.Equal(t, 147, messages[1].Code)
}

func TestEveryKeyIsRouted(t *testing.T) {
	serv, _ := setupTestServer(t, fixtureClock)

	for _, def := range metrics.DefaultDefinitions() {
		w := doGet(serv, "/api/"+def.Key)
		require.Equal(t, http.StatusOK, w.Code, def.Key)
	}
}

func stringsOf(result gjson.Result) []string {
	values := make([]string, 0)
	for _, item := range result.Array() {
		values = append(values, item.String())
	}

	return values
}

func TestMessageSendEndpoint_ClosedStore(t *testing.T) {
	serv, store := setupTestServer(t, time.Now)
	require.NoError(t, store.Close())

	w := doGet(serv, "/api/send/189?title=Hello&body=World")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"sql: database is closed"}`, w.Body.String())
}
