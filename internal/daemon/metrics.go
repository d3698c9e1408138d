package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics tracks daemon statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	RequestsFailed   atomic.Int64
	EventsSent       atomic.Int64
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the served requests counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncFailures increments the failed requests counter
func (m *Metrics) IncFailures() {
	m.RequestsFailed.Add(1)
}

// IncEventsSent increments the events sent counter
func (m *Metrics) IncEventsSent() {
	m.EventsSent.Add(1)
}

// SetConnectedClients sets the current connected clients count
func (m *Metrics) SetConnectedClients(count int32) {
	m.ConnectedClients.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	RequestsFailed   int64     `json:"requests_failed"`
	EventsSent       int64     `json:"events_sent"`
	ConnectedClients int32     `json:"connected_clients"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		RequestsFailed:   m.RequestsFailed.Load(),
		EventsSent:       m.EventsSent.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).String(),
	}
}
