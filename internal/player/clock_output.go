package player

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/providers"
)

// ErrNoTrack is returned when Resume is called before any track was loaded.
var ErrNoTrack = errors.New("player: no track loaded")

// ClockOutput tracks playback position against the wall clock and emits
// TrackEnded when the position reaches the track duration. It is the
// headless stand-in for a streaming media element: same transport contract,
// no audio device.
type ClockOutput struct {
	logger providers.Logger
	events chan Event

	mu        sync.Mutex
	track     models.Track
	loaded    bool
	playing   bool
	base      time.Duration // position accumulated before startedAt
	startedAt time.Time
	timer     *time.Timer
	armToken  int
	volume    int
	muted     bool
	closed    bool
}

func NewClockOutput(logger providers.Logger) Output {
	return &ClockOutput{
		logger: logger,
		events: make(chan Event, 4),
	}
}

func (o *ClockOutput) StartTrack(_ context.Context, track models.Track) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrNoTrack
	}
	o.track = track
	o.loaded = true
	o.base = 0
	o.startedAt = time.Now()
	o.playing = true
	o.armLocked()
	return nil
}

func (o *ClockOutput) Resume(_ context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded || o.closed {
		return ErrNoTrack
	}
	if o.playing {
		return nil
	}
	if o.base >= o.durationLocked() {
		// Resuming a finished track replays it.
		o.base = 0
	}
	o.startedAt = time.Now()
	o.playing = true
	o.armLocked()
	return nil
}

func (o *ClockOutput) Pause() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.playing {
		return
	}
	o.base += time.Since(o.startedAt)
	o.playing = false
	o.disarmLocked()
}

func (o *ClockOutput) Seek(position time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return
	}
	dur := o.durationLocked()
	if position < 0 {
		position = 0
	}
	if position > dur {
		position = dur
	}
	o.base = position
	if o.playing {
		o.startedAt = time.Now()
		o.armLocked()
	}
}

func (o *ClockOutput) Position() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	pos := o.base
	if o.playing {
		pos += time.Since(o.startedAt)
	}
	if dur := o.durationLocked(); pos > dur {
		pos = dur
	}
	return pos
}

func (o *ClockOutput) SetVolume(percent int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.volume = percent
}

func (o *ClockOutput) SetMuted(muted bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.muted = muted
}

func (o *ClockOutput) Events() <-chan Event {
	return o.events
}

func (o *ClockOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.playing = false
	o.disarmLocked()
}

func (o *ClockOutput) durationLocked() time.Duration {
	return time.Duration(o.track.Duration) * time.Second
}

// armLocked schedules the track-end fire for the remaining play time. The
// token invalidates timers from an earlier arm that fire late.
func (o *ClockOutput) armLocked() {
	o.disarmLocked()
	o.armToken++
	token := o.armToken
	remaining := o.durationLocked() - o.base
	if remaining < 0 {
		remaining = 0
	}
	o.timer = time.AfterFunc(remaining, func() {
		o.fire(token)
	})
}

func (o *ClockOutput) disarmLocked() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

func (o *ClockOutput) fire(token int) {
	o.mu.Lock()
	if token != o.armToken || !o.playing || o.closed {
		o.mu.Unlock()
		return
	}
	o.base = o.durationLocked()
	o.playing = false
	trackID := o.track.ID
	o.mu.Unlock()

	select {
	case o.events <- Event{Kind: TrackEnded, TrackID: trackID}:
	default:
		o.logger.Warnf(providers.TypePlayer, "Dropped track-end event for %s", trackID)
	}
}
