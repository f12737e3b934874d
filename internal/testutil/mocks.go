package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns a copy of the recorded log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.Logs))
	copy(out, m.Logs)
	return out
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	PollsOK          int
	PollsFailed      int
	PlaybackOps      map[string]int
	PlaybackRejected int
	ContactAccepted  int
	CacheHits        int
	CacheMisses      int
	LastStatus       string
	MusicActive      bool
	StreamClients    int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncPollsTotal(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.PollsOK++
	} else {
		m.PollsFailed++
	}
}
func (m *MockMetrics) ObservePollDuration(_ time.Duration) {}
func (m *MockMetrics) SetPresenceStatus(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastStatus = status
}
func (m *MockMetrics) SetMusicActive(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MusicActive = active
}
func (m *MockMetrics) IncPlaybackOps(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlaybackOps == nil {
		m.PlaybackOps = make(map[string]int)
	}
	m.PlaybackOps[op]++
}
func (m *MockMetrics) IncPlaybackRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlaybackRejected++
}
func (m *MockMetrics) IncContactAccepted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ContactAccepted++
}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) SetStreamClients(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StreamClients = count
}

// MockPresenceClient implements presence.Client with scripted responses.
type MockPresenceClient struct {
	mu        sync.Mutex
	Snapshots []*models.PresenceSnapshot
	Errs      []error
	Calls     int
	Block     chan struct{} // when set, Fetch waits for a receive before returning
}

func (m *MockPresenceClient) Fetch(ctx context.Context) (*models.PresenceSnapshot, error) {
	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.Calls
	m.Calls++

	if i < len(m.Errs) && m.Errs[i] != nil {
		return nil, m.Errs[i]
	}

	if len(m.Snapshots) == 0 {
		return &models.PresenceSnapshot{UserStatus: models.StatusOnline, FetchedAt: time.Now()}, nil
	}
	if i >= len(m.Snapshots) {
		i = len(m.Snapshots) - 1
	}
	return m.Snapshots[i], nil
}

// CallCount returns the number of Fetch calls so far.
func (m *MockPresenceClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// MockNotifier implements presence.Notifier and records broadcast views.
type MockNotifier struct {
	mu    sync.Mutex
	Views []models.PresenceView
}

func (m *MockNotifier) Broadcast(view models.PresenceView) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Views = append(m.Views, view)
}

func (m *MockNotifier) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Views)
}

func (m *MockNotifier) Last() (models.PresenceView, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Views) == 0 {
		return models.PresenceView{}, false
	}
	return m.Views[len(m.Views)-1], true
}
