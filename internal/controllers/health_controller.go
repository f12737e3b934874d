package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/lquan-tech/porfolio/internal/player"
	"github.com/lquan-tech/porfolio/internal/presence"
)

type HealthController struct {
	poller    presence.PollerInterface
	player    player.ControllerInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Polling       bool    `json:"polling"`
	PresenceError bool    `json:"presence_error"`
	SnapshotAge   float64 `json:"snapshot_age_seconds"`
	Tracks        int     `json:"tracks"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	view := hc.poller.View()

	age := 0.0
	if !view.FetchedAt.IsZero() {
		age = time.Since(view.FetchedAt).Seconds()
	}

	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Polling:       hc.poller.Running(),
		PresenceError: view.Error,
		SnapshotAge:   age,
		Tracks:        hc.player.State().TrackCount,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(poller presence.PollerInterface, playerCtl player.ControllerInterface) *HealthController {
	return &HealthController{
		poller:    poller,
		player:    playerCtl,
		startTime: time.Now(),
	}
}
