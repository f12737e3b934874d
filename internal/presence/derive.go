package presence

import (
	"fmt"
	"time"

	"github.com/lquan-tech/porfolio/internal/models"
)

var statusColors = map[models.Status]string{
	models.StatusOnline:  "#23a55a",
	models.StatusIdle:    "#f0b232",
	models.StatusDnd:     "#f23f43",
	models.StatusOffline: "#80848e",
}

// StatusColor is a pure function over the closed status enum.
func StatusColor(s models.Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[models.StatusOffline]
}

// Progress returns playback progress in percent, clamped to [0, 100].
func Progress(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 0
	}
	p := float64(now.Sub(start)) / float64(total) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// formatClock renders a duration as m:ss, with an hour prefix past 1h.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// BuildView derives the display fields for an instant. The snapshot itself
// is never mutated; a nil snapshot yields the offline placeholder view.
func BuildView(snap *models.PresenceSnapshot, errFlag bool, now time.Time) models.PresenceView {
	if snap == nil {
		return models.PresenceView{
			UserStatus:  models.StatusOffline,
			StatusColor: StatusColor(models.StatusOffline),
			Activities:  []models.ActivityView{},
			Error:       errFlag,
		}
	}

	view := models.PresenceView{
		Username:    snap.Username,
		AvatarURL:   snap.AvatarURL,
		UserStatus:  snap.UserStatus,
		StatusColor: StatusColor(snap.UserStatus),
		Activities:  make([]models.ActivityView, 0, len(snap.Activities)),
		FetchedAt:   snap.FetchedAt,
		Error:       errFlag,
	}

	for _, act := range snap.Activities {
		av := models.ActivityView{Activity: act}
		if act.StartedAt != nil && now.After(*act.StartedAt) {
			av.Elapsed = formatClock(now.Sub(*act.StartedAt))
		}
		view.Activities = append(view.Activities, av)
	}

	if snap.Music != nil {
		elapsed := now.Sub(snap.Music.StartedAt)
		total := snap.Music.EndsAt.Sub(snap.Music.StartedAt)
		if elapsed > total {
			elapsed = total
		}
		view.Music = &models.MusicView{
			MusicSession: *snap.Music,
			Progress:     Progress(snap.Music.StartedAt, snap.Music.EndsAt, now),
			Elapsed:      formatClock(elapsed),
			Duration:     formatClock(total),
		}
	}

	return view
}
