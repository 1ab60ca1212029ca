package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pulsetrack/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("api.key", "PULSETRACK_API_KEY")
	viper.BindEnv("logger.level", "PULSETRACK_LOG_LEVEL")
	viper.BindEnv("refresh.interval", "PULSETRACK_REFRESH_INTERVAL")
	viper.BindEnv("storage.saveInterval", "PULSETRACK_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "PULSETRACK_CACHE_ENABLED")
	viper.BindEnv("cache.size", "PULSETRACK_CACHE_SIZE")

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

	if conf.Api.Timeout <= 0 {
		conf.Api.Timeout = 10 * time.Second
	}

	conf.AppName = "PulseTrack"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
