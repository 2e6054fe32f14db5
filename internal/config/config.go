package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rusenback/ifmon/internal/monitor"
)

// Config collects every ifmon setting.
type Config struct {
	Monitor MonitorConfig `mapstructure:"monitor"`
	Log     LogConfig     `mapstructure:"log"`
	Docker  DockerConfig  `mapstructure:"docker"`
}

// MonitorConfig holds the session options.
type MonitorConfig struct {
	Iface    string `mapstructure:"iface"`
	Sort     string `mapstructure:"sort"`
	Interval int    `mapstructure:"interval"` // seconds
	Unit     string `mapstructure:"unit"`
}

// LogConfig 定义日志配置。
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// DockerConfig enables naming of Docker bridge interfaces.
type DockerConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Host    string        `mapstructure:"host"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Options converts the monitor section into session options.
// The interval is raised to one second when smaller.
func (c *Config) Options() (monitor.Options, error) {
	sortKey, err := monitor.ParseSortKey(c.Monitor.Sort)
	if err != nil {
		return monitor.Options{}, fmt.Errorf("monitor.sort: %w", err)
	}
	unit, err := monitor.ParseUnit(c.Monitor.Unit)
	if err != nil {
		return monitor.Options{}, fmt.Errorf("monitor.unit: %w", err)
	}
	interval := c.Monitor.Interval
	if interval < 1 {
		interval = 1
	}
	return monitor.Options{
		Iface:    strings.TrimSpace(c.Monitor.Iface),
		Sort:     sortKey,
		Interval: time.Duration(interval) * time.Second,
		Unit:     unit,
	}, nil
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks the values that cannot be defaulted silently.
func (c *Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "text", "console":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if c.Docker.Timeout < 0 {
		return fmt.Errorf("docker.timeout: must not be negative")
	}
	return nil
}
