package controllers

import (
	"context"
	"net/http"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/providers"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockCache struct {
	data map[string][]byte
}

func newMockCache() *mockCache                     { return &mockCache{data: make(map[string][]byte)} }
func (m *mockCache) Get(key string) ([]byte, bool) { v, ok := m.data[key]; return v, ok }
func (m *mockCache) Set(key string, value []byte)  { m.data[key] = value }

type mockPoller struct {
	view       models.PresenceView
	running    bool
	viewCalls  int
	startCalls int
	stopCalls  int
}

func (m *mockPoller) Start()        { m.startCalls++ }
func (m *mockPoller) Stop()         { m.stopCalls++ }
func (m *mockPoller) Running() bool { return m.running }
func (m *mockPoller) View() models.PresenceView {
	m.viewCalls++
	return m.view
}

type mockHub struct {
	subscribeCalls int
	clients        int
}

func (m *mockHub) Broadcast(_ models.PresenceView) {}
func (m *mockHub) Subscribe(w http.ResponseWriter, _ *http.Request) {
	m.subscribeCalls++
	w.WriteHeader(http.StatusSwitchingProtocols)
}
func (m *mockHub) ClientCount() int { return m.clients }
func (m *mockHub) Close()           {}

type playerCall struct {
	op   string
	arg  int
}

type mockPlayer struct {
	state models.PlayerState
	calls []playerCall
}

func (m *mockPlayer) Start()                    {}
func (m *mockPlayer) Stop()                     {}
func (m *mockPlayer) State() models.PlayerState { return m.state }
func (m *mockPlayer) Play(_ context.Context)    { m.calls = append(m.calls, playerCall{op: "play"}) }
func (m *mockPlayer) Pause()                    { m.calls = append(m.calls, playerCall{op: "pause"}) }
func (m *mockPlayer) Next(_ context.Context)    { m.calls = append(m.calls, playerCall{op: "next"}) }
func (m *mockPlayer) Previous(_ context.Context) {
	m.calls = append(m.calls, playerCall{op: "previous"})
}
func (m *mockPlayer) SelectTrack(_ context.Context, index int) {
	m.calls = append(m.calls, playerCall{op: "select", arg: index})
}
func (m *mockPlayer) Seek(seconds int) {
	m.calls = append(m.calls, playerCall{op: "seek", arg: seconds})
}
func (m *mockPlayer) SetVolume(level int) {
	m.calls = append(m.calls, playerCall{op: "volume", arg: level})
}
func (m *mockPlayer) ToggleMute() { m.calls = append(m.calls, playerCall{op: "mute"}) }
