package presence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
	"github.com/lquan-tech/porfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func httpHandlerFunc(hub HubInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hub.Subscribe(w, r)
	}
}

func TestHub_BroadcastReachesSubscriber(t *testing.T) {
	hub := NewHub(&testutil.MockLogger{}, &testutil.MockMetrics{})
	defer hub.Close()

	srv := httptest.NewServer(httpHandlerFunc(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+srv.URL[len("http"):], nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	waitForClients(t, hub, 1)

	sent := models.PresenceView{Username: "Quan", UserStatus: models.StatusOnline, StatusColor: "#23a55a"}
	hub.Broadcast(sent)

	var got models.PresenceView
	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.Equal(t, sent.Username, got.Username)
	assert.Equal(t, sent.UserStatus, got.UserStatus)
}

func TestHub_UnsubscribeOnDisconnect(t *testing.T) {
	hub := NewHub(&testutil.MockLogger{}, &testutil.MockMetrics{})
	defer hub.Close()

	srv := httptest.NewServer(httpHandlerFunc(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+srv.URL[len("http"):], nil)
	require.NoError(t, err)
	waitForClients(t, hub, 1)

	conn.Close(websocket.StatusNormalClosure, "")
	waitForClients(t, hub, 0)
}

func TestHub_ClosedHubRefusesSubscribers(t *testing.T) {
	hub := NewHub(&testutil.MockLogger{}, &testutil.MockMetrics{})
	hub.Close()

	srv := httptest.NewServer(httpHandlerFunc(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+srv.URL[len("http"):], nil)
	if err == nil {
		// The upgrade may succeed before the hub turns the subscriber away;
		// either way no subscriber must remain registered.
		defer conn.Close(websocket.StatusNormalClosure, "")
	}
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_BroadcastWithoutSubscribersIsNoop(t *testing.T) {
	hub := NewHub(&testutil.MockLogger{}, &testutil.MockMetrics{})
	defer hub.Close()

	hub.Broadcast(models.PresenceView{Username: "nobody"})
	assert.Equal(t, 0, hub.ClientCount())
}

func waitForClients(t *testing.T, hub HubInterface, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == want
	}, 2*time.Second, 10*time.Millisecond)
}
