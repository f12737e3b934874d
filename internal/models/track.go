package models

// Track is one playlist entry. The playlist is fixed for the lifetime of
// the process, so tracks carry no mutable state.
type Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Duration   int    `json:"duration"`
	SourceURL  string `json:"sourceUrl"`
	ArtworkURL string `json:"artworkUrl,omitempty"`
}

// PlayerState is the controller's externally visible state.
type PlayerState struct {
	Track      Track `json:"track"`
	Index      int   `json:"index"`
	TrackCount int   `json:"trackCount"`
	Position   int   `json:"position"`
	IsPlaying  bool  `json:"isPlaying"`
	Volume     int   `json:"volume"`
	IsMuted    bool  `json:"isMuted"`
}
