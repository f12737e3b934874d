package player

import (
	"context"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
)

// EventKind identifies an Output event.
type EventKind int

const (
	// TrackEnded fires when the loaded track plays to its end.
	TrackEnded EventKind = iota
)

type Event struct {
	Kind    EventKind
	TrackID string
}

// Output is the media handle the controller drives. Starting or resuming
// playback is fallible (a real backend may refuse, like a browser autoplay
// policy); everything else is a direct state change. Track-end is reported
// on the Events channel rather than through a callback, so the consumer
// decides where the advance happens.
type Output interface {
	StartTrack(ctx context.Context, track models.Track) error
	Resume(ctx context.Context) error
	Pause()
	Seek(position time.Duration)
	Position() time.Duration
	SetVolume(percent int)
	SetMuted(muted bool)
	Events() <-chan Event
	Close()
}
