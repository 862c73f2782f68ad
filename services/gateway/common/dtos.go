package common

import "time"

// MetricResult is the payload returned by every metric endpoint
type MetricResult struct {
	Metric      string `json:"metric"`
	Description string `json:"description,omitempty"`
	// Value holds a count (int64), a formatted percentage or a static literal. Nil for trend metrics.
	Value any `json:"value,omitempty"`
	// Trend holds a []TrendPoint for trend metrics, empty slices are still rendered
	Trend     any    `json:"trend,omitempty"`
	Timestamp string `json:"timestamp"`
}

// TrendPoint is a single (date, count) pair of a trend metric
type TrendPoint struct {
	Date    string `json:"date"`
	Signups int64  `json:"signups"`
}

// MessageRecord represents a row of the local messages table
type MessageRecord struct {
	ID        int64     `json:"id"`
	Code      int       `json:"code"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// MessageResponse echoes a stored message
type MessageResponse struct {
	Code      int    `json:"code"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
