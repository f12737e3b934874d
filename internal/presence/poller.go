package presence

import (
	"context"
	"sync"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/providers"
	"github.com/lquan-tech/porfolio/internal/structures"
	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

// Notifier receives every rebuilt presence view.
type Notifier interface {
	Broadcast(view models.PresenceView)
}

type PollerInterface interface {
	Start()
	Stop()
	Running() bool
	View() models.PresenceView
}

// Poller keeps a cached snapshot of the upstream presence record. A slow
// schedule re-fetches it, a fast schedule recomputes the derived playback
// fields while a music session is active. Poll failures keep the previous
// snapshot and only raise the error flag; the next interval retries.
type Poller struct {
	config   *structures.Config
	logger   providers.Logger
	client   Client
	metrics  providers.MetricsProviderInterface
	notifier Notifier

	running atomic.Bool
	gen     atomic.Int64

	mu       sync.Mutex
	cron     *gron.Cron
	snapshot *models.PresenceSnapshot
	errState bool
	view     models.PresenceView
}

func NewPoller(config *structures.Config, logger providers.Logger, client Client, metrics providers.MetricsProviderInterface, notifier Notifier) PollerInterface {
	p := &Poller{
		config:   config,
		logger:   logger,
		client:   client,
		metrics:  metrics,
		notifier: notifier,
	}
	p.view = BuildView(nil, false, time.Now())
	return p
}

// Start fetches immediately and schedules the poll and derive loops.
// Calling Start on a running poller cancels the previous loops first, so at
// most one loop of each kind is ever active.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.cron != nil {
		p.cron.Stop()
	}
	gen := p.gen.Inc()

	c := gron.New()
	c.AddFunc(gron.Every(p.config.Presence.PollInterval), func() {
		p.fetchOnce(gen)
	})
	c.AddFunc(gron.Every(p.config.Presence.TickInterval), func() {
		p.tick(gen)
	})
	c.Start()
	p.cron = c
	p.running.Store(true)
	p.mu.Unlock()

	p.logger.Infof(providers.TypePresence, "Polling %s every %s", p.config.Presence.Endpoint, p.config.Presence.PollInterval)
	go p.fetchOnce(gen)
}

// Stop cancels the schedules and orphans any in-flight fetch: a response
// that settles after Stop carries a stale generation and is discarded.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cron != nil {
		p.cron.Stop()
		p.cron = nil
	}
	p.gen.Inc()
	p.running.Store(false)
}

func (p *Poller) Running() bool {
	return p.running.Load()
}

// View returns the last derived view. Safe to call at any time, including
// before the first fetch completes (offline placeholder).
func (p *Poller) View() models.PresenceView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// fetchOnce performs one request-response cycle and applies the result,
// unless the poller was stopped or restarted while the request was in
// flight.
func (p *Poller) fetchOnce(gen int64) {
	timeout := p.config.Presence.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	started := time.Now()
	snap, err := p.client.Fetch(ctx)
	p.metrics.ObservePollDuration(time.Since(started))

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen.Load() {
		return
	}

	if err != nil {
		p.metrics.IncPollsTotal(false)
		p.errState = true
		p.logger.Warnf(providers.TypePresence, "Presence fetch failed: %s", err)
		p.rebuildViewLocked(time.Now())
		return
	}

	p.metrics.IncPollsTotal(true)
	p.errState = false
	p.snapshot = snap
	p.metrics.SetPresenceStatus(string(snap.UserStatus))
	p.metrics.SetMusicActive(snap.Music != nil)
	p.rebuildViewLocked(time.Now())
}

// tick recomputes the derived fields without touching the network. It only
// does work while a music session is active; elapsed strings for plain
// activities change slowly enough that the poll refresh covers them.
func (p *Poller) tick(gen int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen.Load() {
		return
	}
	if p.snapshot == nil || p.snapshot.Music == nil {
		return
	}
	p.rebuildViewLocked(time.Now())
}

func (p *Poller) rebuildViewLocked(now time.Time) {
	p.view = BuildView(p.snapshot, p.errState, now)
	if p.notifier != nil {
		p.notifier.Broadcast(p.view)
	}
}
