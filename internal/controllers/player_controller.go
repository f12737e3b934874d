package controllers

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/lquan-tech/porfolio/internal/player"
	"github.com/lquan-tech/porfolio/internal/providers"
)

type PlayerController struct {
	logger     providers.Logger
	controller player.ControllerInterface
}

func NewPlayerController(logger providers.Logger, controller player.ControllerInterface) *PlayerController {
	return &PlayerController{
		logger:     logger,
		controller: controller,
	}
}

func (pc *PlayerController) GetState(w http.ResponseWriter, r *http.Request) {
	pc.writeState(w)
}

func (pc *PlayerController) Play(w http.ResponseWriter, r *http.Request) {
	pc.controller.Play(r.Context())
	pc.writeState(w)
}

func (pc *PlayerController) Pause(w http.ResponseWriter, r *http.Request) {
	pc.controller.Pause()
	pc.writeState(w)
}

func (pc *PlayerController) Next(w http.ResponseWriter, r *http.Request) {
	pc.controller.Next(r.Context())
	pc.writeState(w)
}

func (pc *PlayerController) Previous(w http.ResponseWriter, r *http.Request) {
	pc.controller.Previous(r.Context())
	pc.writeState(w)
}

// Select jumps to the playlist index given in the "i" query parameter.
// A non-numeric index is a client error; an out-of-range one is ignored by
// the controller and the unchanged state comes back.
func (pc *PlayerController) Select(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.URL.Query().Get("i"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	pc.controller.SelectTrack(r.Context(), index)
	pc.writeState(w)
}

func (pc *PlayerController) Seek(w http.ResponseWriter, r *http.Request) {
	seconds, err := strconv.Atoi(r.URL.Query().Get("s"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	pc.controller.Seek(seconds)
	pc.writeState(w)
}

func (pc *PlayerController) Volume(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(r.URL.Query().Get("v"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	pc.controller.SetVolume(level)
	pc.writeState(w)
}

func (pc *PlayerController) Mute(w http.ResponseWriter, r *http.Request) {
	pc.controller.ToggleMute()
	pc.writeState(w)
}

func (pc *PlayerController) writeState(w http.ResponseWriter) {
	gson, err := json.Marshal(pc.controller.State())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSONBytes(w, gson)
}
