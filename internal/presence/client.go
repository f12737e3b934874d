package presence

import (
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/structures"
)

// Client fetches one presence record from the upstream API.
type Client interface {
	Fetch(ctx context.Context) (*models.PresenceSnapshot, error)
}

type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPClient(conf *structures.Config) Client {
	timeout := conf.Presence.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		endpoint: conf.Presence.Endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Upstream wire format. The envelope carries success=false with an HTTP 200
// for unknown users, so the flag is checked, not just the status code.
type wireEnvelope struct {
	Success bool     `json:"success"`
	Data    wireData `json:"data"`
}

type wireData struct {
	DiscordStatus      string         `json:"discord_status"`
	Activities         []wireActivity `json:"activities"`
	Spotify            *wireSpotify   `json:"spotify"`
	ListeningToSpotify bool           `json:"listening_to_spotify"`
	DiscordUser        wireUser       `json:"discord_user"`
}

type wireUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	GlobalName  string `json:"global_name"`
	Avatar      string `json:"avatar"`
	DisplayName string `json:"display_name"`
}

type wireActivity struct {
	Type       int    `json:"type"`
	Name       string `json:"name"`
	State      string `json:"state"`
	Timestamps struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	} `json:"timestamps"`
	Assets struct {
		LargeImage string `json:"large_image"`
	} `json:"assets"`
}

type wireSpotify struct {
	TrackID    string `json:"track_id"`
	Song       string `json:"song"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	AlbumArt   string `json:"album_art_url"`
	Timestamps struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	} `json:"timestamps"`
}

func (c *HTTPClient) Fetch(ctx context.Context) (*models.PresenceSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("presence request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("presence request: unexpected status %d", resp.StatusCode)
	}

	var envelope wireEnvelope
	if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("presence decode: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("presence request: upstream reported failure")
	}

	return mapSnapshot(&envelope.Data, time.Now()), nil
}

func mapSnapshot(data *wireData, now time.Time) *models.PresenceSnapshot {
	snap := &models.PresenceSnapshot{
		Username:   userDisplayName(&data.DiscordUser),
		AvatarURL:  avatarURL(&data.DiscordUser),
		UserStatus: mapStatus(data.DiscordStatus),
		Activities: make([]models.Activity, 0, len(data.Activities)),
		FetchedAt:  now,
	}

	for _, wa := range data.Activities {
		act := models.Activity{
			Kind:     mapActivityKind(wa.Type),
			Name:     wa.Name,
			State:    wa.State,
			ImageURL: wa.Assets.LargeImage,
		}
		if wa.Timestamps.Start > 0 {
			start := time.UnixMilli(wa.Timestamps.Start)
			act.StartedAt = &start
		}
		snap.Activities = append(snap.Activities, act)
	}

	if data.ListeningToSpotify && data.Spotify != nil {
		snap.Music = &models.MusicSession{
			TrackID:    data.Spotify.TrackID,
			Title:      data.Spotify.Song,
			Artist:     data.Spotify.Artist,
			Album:      data.Spotify.Album,
			StartedAt:  time.UnixMilli(data.Spotify.Timestamps.Start),
			EndsAt:     time.UnixMilli(data.Spotify.Timestamps.End),
			ArtworkURL: data.Spotify.AlbumArt,
		}
	}

	return snap
}

// mapStatus keeps the status enum closed: anything the upstream invents
// beyond the four known values collapses to offline here, at the wire
// boundary, so nothing downstream has to handle an unknown status.
func mapStatus(s string) models.Status {
	switch s {
	case "online":
		return models.StatusOnline
	case "idle":
		return models.StatusIdle
	case "dnd":
		return models.StatusDnd
	default:
		return models.StatusOffline
	}
}

func mapActivityKind(t int) models.ActivityKind {
	switch t {
	case 0:
		return models.ActivityGame
	case 1:
		return models.ActivityStream
	case 2:
		return models.ActivityMusic
	case 3:
		return models.ActivityVideo
	case 5:
		return models.ActivityCompeting
	default:
		return models.ActivityCustom
	}
}

func userDisplayName(u *wireUser) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func avatarURL(u *wireUser) string {
	if u.ID == "" || u.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.webp", u.ID, u.Avatar)
}
