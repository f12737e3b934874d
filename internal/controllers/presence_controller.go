package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/lquan-tech/porfolio/internal/presence"
	"github.com/lquan-tech/porfolio/internal/providers"
)

const presenceCacheKey = "presence"

type PresenceController struct {
	logger providers.Logger
	poller presence.PollerInterface
	hub    presence.HubInterface
	cache  providers.CacheProviderInterface
}

func NewPresenceController(logger providers.Logger, poller presence.PollerInterface, hub presence.HubInterface, cache providers.CacheProviderInterface) *PresenceController {
	return &PresenceController{
		logger: logger,
		poller: poller,
		hub:    hub,
		cache:  cache,
	}
}

// GetPresence serves the current derived view. The cache TTL is one derive
// tick, so a cached body is never staler than what a recompute would give.
func (pc *PresenceController) GetPresence(w http.ResponseWriter, r *http.Request) {
	if data, ok := pc.cache.Get(presenceCacheKey); ok {
		writeJSONBytes(w, data)
		return
	}

	gson, err := json.Marshal(pc.poller.View())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pc.cache.Set(presenceCacheKey, gson)
	writeJSONBytes(w, gson)
}

// StreamPresence upgrades to a websocket and pushes every view update.
func (pc *PresenceController) StreamPresence(w http.ResponseWriter, r *http.Request) {
	pc.hub.Subscribe(w, r)
}

func writeJSONBytes(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
