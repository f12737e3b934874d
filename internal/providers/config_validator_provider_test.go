package providers

import (
	"testing"
	"time"

	"github.com/lquan-tech/porfolio/internal/structures"
	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Presence: structures.PresenceConfig{
			Endpoint:     "https://api.lanyard.rest/v1/users/94490510688792576",
			PollInterval: 30 * time.Second,
			TickInterval: 1 * time.Second,
		},
		Player: structures.PlayerConfig{
			Volume: 70,
			Tracks: []structures.TrackConfig{
				{ID: "t1", Title: "Track One", Artist: "Someone", Duration: 212, Source: "/audio/t1.mp3"},
				{ID: "t2", Title: "Track Two", Artist: "Someone", Duration: 187, Source: "/audio/t2.mp3"},
			},
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingEndpoint(t *testing.T) {
	c := validConfig()
	c.Presence.Endpoint = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_NonURLEndpoint(t *testing.T) {
	c := validConfig()
	c.Presence.Endpoint = "not a url"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyPlaylist(t *testing.T) {
	c := validConfig()
	c.Player.Tracks = nil
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_TrackMissingSource(t *testing.T) {
	c := validConfig()
	c.Player.Tracks[1].Source = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_TrackZeroDuration(t *testing.T) {
	c := validConfig()
	c.Player.Tracks[0].Duration = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_DuplicateTrackIDs(t *testing.T) {
	c := validConfig()
	c.Player.Tracks[1].ID = c.Player.Tracks[0].ID
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
