package presence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lanyardBody = `{
	"success": true,
	"data": {
		"discord_user": {"id": "94490510688792576", "username": "lquan", "global_name": "Quan"},
		"discord_status": "idle",
		"activities": [
			{"type": 0, "name": "Factorio", "state": "Launching rockets", "timestamps": {"start": 1767225600000}},
			{"type": 4, "name": "Custom Status", "state": "shipping"}
		],
		"listening_to_spotify": true,
		"spotify": {
			"track_id": "4uLU6hMCjMI75M1A2tKUQC",
			"song": "Never Gonna Give You Up",
			"artist": "Rick Astley",
			"album": "Whenever You Need Somebody",
			"album_art_url": "https://i.scdn.co/image/abc",
			"timestamps": {"start": 1767225600000, "end": 1767225813000}
		}
	}
}`

func clientFor(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &structures.Config{}
	conf.Presence.Endpoint = srv.URL
	conf.Presence.RequestTimeout = 2 * time.Second
	return NewHTTPClient(conf), srv
}

func TestHTTPClient_Fetch_Success(t *testing.T) {
	c, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(lanyardBody))
	})

	snap, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Quan", snap.Username)
	assert.Equal(t, models.StatusIdle, snap.UserStatus)
	require.Len(t, snap.Activities, 2)
	assert.Equal(t, models.ActivityGame, snap.Activities[0].Kind)
	assert.Equal(t, "Factorio", snap.Activities[0].Name)
	require.NotNil(t, snap.Activities[0].StartedAt)
	assert.Equal(t, models.ActivityCustom, snap.Activities[1].Kind)
	assert.Nil(t, snap.Activities[1].StartedAt)

	require.NotNil(t, snap.Music)
	assert.Equal(t, "Rick Astley", snap.Music.Artist)
	assert.Equal(t, time.UnixMilli(1767225600000), snap.Music.StartedAt)
	assert.Equal(t, time.UnixMilli(1767225813000), snap.Music.EndsAt)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestHTTPClient_Fetch_NoMusicWhenNotListening(t *testing.T) {
	c, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"discord_status":"online","activities":[],"listening_to_spotify":false,"spotify":null}}`))
	})

	snap, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, snap.UserStatus)
	assert.Nil(t, snap.Music)
	assert.Empty(t, snap.Activities)
}

func TestHTTPClient_Fetch_UnknownStatusCollapsesToOffline(t *testing.T) {
	c, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"discord_status":"streaming_on_mars","activities":[]}}`))
	})

	snap, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, snap.UserStatus)
}

func TestHTTPClient_Fetch_FailureEnvelope(t *testing.T) {
	c, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"user_not_monitored"}}`))
	})

	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPClient_Fetch_HTTPError(t *testing.T) {
	c, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusBadGateway)
	})

	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPClient_Fetch_MalformedJSON(t *testing.T) {
	c, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": tru`))
	})

	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPClient_Fetch_ContextCancelled(t *testing.T) {
	c, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(lanyardBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Fetch(ctx)
	assert.Error(t, err)
}

func TestMapActivityKind(t *testing.T) {
	cases := map[int]models.ActivityKind{
		0:  models.ActivityGame,
		1:  models.ActivityStream,
		2:  models.ActivityMusic,
		3:  models.ActivityVideo,
		4:  models.ActivityCustom,
		5:  models.ActivityCompeting,
		42: models.ActivityCustom,
	}
	for wire, want := range cases {
		assert.Equal(t, want, mapActivityKind(wire), "wire type %d", wire)
	}
}

func TestAvatarURL(t *testing.T) {
	assert.Empty(t, avatarURL(&wireUser{ID: "1"}))
	assert.Empty(t, avatarURL(&wireUser{Avatar: "h"}))
	assert.Equal(t,
		"https://cdn.discordapp.com/avatars/94490510688792576/abc123.webp",
		avatarURL(&wireUser{ID: "94490510688792576", Avatar: "abc123"}))
}
