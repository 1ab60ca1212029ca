package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type ApiConfig struct {
	BaseURL string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Key     string        `yaml:"key"`
	Timeout time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval" validate:"required|min:1"`
	// KeepUnreachable retains a tracked user whose re-fetch failed during a
	// refresh cycle instead of silently dropping the record.
	KeepUnreachable bool `yaml:"keepUnreachable"`
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
	Api       ApiConfig     `yaml:"api"`
	WebServer Server        `yaml:"webServer"`
	Storage   StorageConfig `yaml:"storage"`
	Refresh   RefreshConfig `yaml:"refresh"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
