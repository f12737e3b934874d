package models

import "time"

// Status is the closed set of presence states the upstream API reports.
type Status string

const (
	StatusOnline  Status = "online"
	StatusIdle    Status = "idle"
	StatusDnd     Status = "dnd"
	StatusOffline Status = "offline"
)

// ActivityKind classifies an activity entry.
type ActivityKind string

const (
	ActivityGame      ActivityKind = "game"
	ActivityStream    ActivityKind = "stream"
	ActivityMusic     ActivityKind = "music"
	ActivityVideo     ActivityKind = "video"
	ActivityCustom    ActivityKind = "custom"
	ActivityCompeting ActivityKind = "competing"
)

type Activity struct {
	Kind      ActivityKind `json:"kind"`
	Name      string       `json:"name"`
	State     string       `json:"state,omitempty"`
	StartedAt *time.Time   `json:"startedAt,omitempty"`
	ImageURL  string       `json:"imageUrl,omitempty"`
}

// MusicSession describes an active external music session. Present only
// while the upstream reports one; absence means nothing is playing.
type MusicSession struct {
	TrackID    string    `json:"trackId"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	Album      string    `json:"album"`
	StartedAt  time.Time `json:"startedAt"`
	EndsAt     time.Time `json:"endsAt"`
	ArtworkURL string    `json:"artworkUrl,omitempty"`
}

// PresenceSnapshot is the cached upstream presence record. It is immutable:
// each successful poll replaces the whole value, a failed poll keeps the
// previous one.
type PresenceSnapshot struct {
	Username   string        `json:"username"`
	AvatarURL  string        `json:"avatarUrl,omitempty"`
	UserStatus Status        `json:"userStatus"`
	Activities []Activity    `json:"activities"`
	Music      *MusicSession `json:"music,omitempty"`
	FetchedAt  time.Time     `json:"fetchedAt"`
}

// ActivityView is an Activity plus its derived elapsed-time string.
type ActivityView struct {
	Activity
	Elapsed string `json:"elapsed,omitempty"`
}

// MusicView carries the per-tick derived playback fields of a MusicSession.
type MusicView struct {
	MusicSession
	Progress float64 `json:"progress"`
	Elapsed  string  `json:"elapsed"`
	Duration string  `json:"duration"`
}

// PresenceView is what the API serves: the last snapshot with the derived
// display fields recomputed for a given instant. Derived fields are never
// stored back on the snapshot.
type PresenceView struct {
	Username    string         `json:"username"`
	AvatarURL   string         `json:"avatarUrl,omitempty"`
	UserStatus  Status         `json:"userStatus"`
	StatusColor string         `json:"statusColor"`
	Activities  []ActivityView `json:"activities"`
	Music       *MusicView     `json:"music,omitempty"`
	FetchedAt   time.Time      `json:"fetchedAt"`
	Error       bool           `json:"error"`
}
