package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lquan-tech/porfolio/internal/structures"
	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "PORFOLIO_LOG_LEVEL")
	viper.BindEnv("presence.endpoint", "PORFOLIO_PRESENCE_ENDPOINT")
	viper.BindEnv("presence.pollInterval", "PORFOLIO_POLL_INTERVAL")
	viper.BindEnv("presence.tickInterval", "PORFOLIO_TICK_INTERVAL")
	viper.BindEnv("cache.enabled", "PORFOLIO_CACHE_ENABLED")
	viper.BindEnv("cache.size", "PORFOLIO_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PorfolioDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
