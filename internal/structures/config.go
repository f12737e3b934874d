package structures

import "time"

type Server struct {
	Host        string `yaml:"host" validate:"required"`
	Port        int    `yaml:"port" validate:"required|uint|min:1"`
	Compression bool   `yaml:"compression"`
}

type PresenceConfig struct {
	Endpoint       string        `yaml:"endpoint" validate:"required|fullUrl"`
	PollInterval   time.Duration `yaml:"pollInterval" validate:"required|min:1"`
	TickInterval   time.Duration `yaml:"tickInterval" validate:"required|min:1"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

type TrackConfig struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Artist   string `yaml:"artist"`
	Duration int    `yaml:"duration"`
	Source   string `yaml:"source"`
	Artwork  string `yaml:"artwork"`
}

type PlayerConfig struct {
	Volume int           `yaml:"volume" validate:"uint|max:100"`
	Tracks []TrackConfig `yaml:"tracks"`
}

type ContactConfig struct {
	MaxMessageLen int `yaml:"maxMessageLen"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Presence  PresenceConfig `yaml:"presence"`
	Player    PlayerConfig   `yaml:"player"`
	Contact   ContactConfig  `yaml:"contact"`
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
