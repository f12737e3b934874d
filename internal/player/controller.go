package player

import (
	"context"
	"sync"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/providers"
	"github.com/lquan-tech/porfolio/internal/structures"
)

const defaultVolume = 70

type ControllerInterface interface {
	Start()
	Stop()
	State() models.PlayerState
	Play(ctx context.Context)
	Pause()
	Next(ctx context.Context)
	Previous(ctx context.Context)
	SelectTrack(ctx context.Context, index int)
	Seek(seconds int)
	SetVolume(level int)
	ToggleMute()
}

// Controller owns the playlist cursor and transport state. Exactly one
// track is current at all times; next/previous wrap around the playlist.
// An output refusal to start playback is recovered by reverting the
// playing flag, it never propagates.
type Controller struct {
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	output  Output

	mu      sync.Mutex
	tracks  []models.Track
	index   int
	loaded  bool
	playing bool
	volume  int
	muted   bool

	quit     chan struct{}
	stopOnce sync.Once
}

func NewController(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, output Output) ControllerInterface {
	tracks := make([]models.Track, 0, len(conf.Player.Tracks))
	for _, tc := range conf.Player.Tracks {
		tracks = append(tracks, models.Track{
			ID:         tc.ID,
			Title:      tc.Title,
			Artist:     tc.Artist,
			Duration:   tc.Duration,
			SourceURL:  tc.Source,
			ArtworkURL: tc.Artwork,
		})
	}

	volume := conf.Player.Volume
	if volume == 0 {
		volume = defaultVolume
	}
	volume = clampVolume(volume)

	output.SetVolume(volume)

	return &Controller{
		logger:  logger,
		metrics: metrics,
		output:  output,
		tracks:  tracks,
		volume:  volume,
		quit:    make(chan struct{}),
	}
}

// Start begins consuming output events. A track playing to its end behaves
// exactly like Next: advance with wraparound and keep playing.
func (c *Controller) Start() {
	go func() {
		for {
			select {
			case <-c.quit:
				return
			case ev := <-c.output.Events():
				if ev.Kind == TrackEnded {
					c.metrics.IncPlaybackOps("autoadvance")
					c.advance(context.Background(), 1)
				}
			}
		}
	}()
}

func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		close(c.quit)
		c.output.Close()
	})
}

func (c *Controller) State() models.PlayerState {
	c.mu.Lock()
	defer c.mu.Unlock()

	position := 0
	if c.loaded {
		position = int(c.output.Position() / time.Second)
	}

	return models.PlayerState{
		Track:      c.tracks[c.index],
		Index:      c.index,
		TrackCount: len(c.tracks),
		Position:   position,
		IsPlaying:  c.playing,
		Volume:     c.volume,
		IsMuted:    c.muted,
	}
}

func (c *Controller) Play(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playing {
		return
	}
	c.metrics.IncPlaybackOps("play")

	var err error
	if c.loaded {
		err = c.output.Resume(ctx)
	} else {
		err = c.output.StartTrack(ctx, c.tracks[c.index])
	}
	if err != nil {
		c.metrics.IncPlaybackRejected()
		c.logger.Warnf(providers.TypePlayer, "Playback rejected: %s", err)
		c.playing = false
		return
	}
	c.loaded = true
	c.playing = true
}

func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.playing {
		return
	}
	c.metrics.IncPlaybackOps("pause")
	c.output.Pause()
	c.playing = false
}

func (c *Controller) Next(ctx context.Context) {
	c.metrics.IncPlaybackOps("next")
	c.advance(ctx, 1)
}

func (c *Controller) Previous(ctx context.Context) {
	c.metrics.IncPlaybackOps("previous")
	c.advance(ctx, -1)
}

// SelectTrack jumps to an arbitrary playlist entry. An out-of-range index
// is ignored.
func (c *Controller) SelectTrack(ctx context.Context, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.tracks) {
		return
	}
	c.metrics.IncPlaybackOps("select")
	c.index = index
	c.startCurrentLocked(ctx)
}

// Seek sets the position within the current track, clamped to its duration.
// It does not change the playing state.
func (c *Controller) Seek(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		return
	}
	c.metrics.IncPlaybackOps("seek")

	dur := c.tracks[c.index].Duration
	if seconds < 0 {
		seconds = 0
	}
	if seconds > dur {
		seconds = dur
	}
	c.output.Seek(time.Duration(seconds) * time.Second)
}

// SetVolume clamps to [0, 100]. It deliberately leaves the mute flag alone:
// unmuting only happens when the caller asks for it.
func (c *Controller) SetVolume(level int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics.IncPlaybackOps("volume")
	c.volume = clampVolume(level)
	c.output.SetVolume(c.volume)
}

func (c *Controller) ToggleMute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics.IncPlaybackOps("mute")
	c.muted = !c.muted
	c.output.SetMuted(c.muted)
}

// advance moves the cursor by delta with wraparound, resets the position
// and auto-plays the new track.
func (c *Controller) advance(ctx context.Context, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.tracks)
	c.index = ((c.index+delta)%n + n) % n
	c.startCurrentLocked(ctx)
}

func (c *Controller) startCurrentLocked(ctx context.Context) {
	err := c.output.StartTrack(ctx, c.tracks[c.index])
	if err != nil {
		c.metrics.IncPlaybackRejected()
		c.logger.Warnf(providers.TypePlayer, "Playback rejected: %s", err)
		c.playing = false
		return
	}
	c.loaded = true
	c.playing = true
}

func clampVolume(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
