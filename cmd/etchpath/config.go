package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the etchpath configuration file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Telemetry selects the OpenTelemetry exporter: none or stdout.
	Telemetry string `json:"telemetry" yaml:"telemetry"`

	Edges  EdgesConfig  `json:"edges" yaml:"edges"`
	Tour   TourConfig   `json:"tour" yaml:"tour"`
	Output OutputConfig `json:"output" yaml:"output"`
	Device DeviceConfig `json:"device" yaml:"device"`
}

// EdgesConfig controls edge detection.
type EdgesConfig struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Invert    bool    `json:"invert" yaml:"invert"`
}

// TourConfig controls tour construction. The start is given in image pixels.
type TourConfig struct {
	HasStart bool    `json:"has_start" yaml:"has_start"`
	StartX   float64 `json:"start_x" yaml:"start_x"`
	StartY   float64 `json:"start_y" yaml:"start_y"`
}

// OutputConfig describes the device's drawable area and motion settings.
type OutputConfig struct {
	Width         float64       `json:"width" yaml:"width"`
	Height        float64       `json:"height" yaml:"height"`
	KeepAspect    bool          `json:"keep_aspect" yaml:"keep_aspect"`
	FlipY         bool          `json:"flip_y" yaml:"flip_y"`
	PointDistance float64       `json:"point_distance" yaml:"point_distance"`
	Speed         float64       `json:"speed" yaml:"speed"`
	StartDelay    time.Duration `json:"start_delay" yaml:"start_delay"`
	EndDelay      time.Duration `json:"end_delay" yaml:"end_delay"`
	Stroke        float64       `json:"stroke" yaml:"stroke"`
}

// DeviceConfig describes the serial connection to the plotter.
type DeviceConfig struct {
	Port   string        `json:"port" yaml:"port"`
	Baud   int           `json:"baud" yaml:"baud"`
	Buffer int           `json:"buffer" yaml:"buffer"`
	Settle time.Duration `json:"settle" yaml:"settle"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Telemetry: "none",
		Edges: EdgesConfig{
			Threshold: 128,
		},
		Tour: TourConfig{
			HasStart: true, // device home
		},
		Output: OutputConfig{
			Width:         800,
			Height:        600,
			PointDistance: 1,
			Speed:         50,
			StartDelay:    time.Second,
			EndDelay:      time.Second,
			Stroke:        1,
		},
		Device: DeviceConfig{
			Port:   "/dev/ttyUSB0",
			Baud:   115200,
			Buffer: 4,
			Settle: 2 * time.Second,
		},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path yields the
// defaults. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Telemetry {
	case "none", "stdout":
	default:
		return fmt.Errorf("%w: telemetry must be none or stdout, got %q", ErrInvalidConfig, c.Telemetry)
	}
	if c.Edges.Threshold < 0 {
		return fmt.Errorf("%w: edges.threshold must be >= 0, got %g", ErrInvalidConfig, c.Edges.Threshold)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: output size must be positive, got %gx%g", ErrInvalidConfig, c.Output.Width, c.Output.Height)
	}
	if c.Output.PointDistance < 0 {
		return fmt.Errorf("%w: output.point_distance must be >= 0, got %g", ErrInvalidConfig, c.Output.PointDistance)
	}
	if c.Output.Speed <= 0 {
		return fmt.Errorf("%w: output.speed must be positive, got %g", ErrInvalidConfig, c.Output.Speed)
	}
	if c.Output.StartDelay < 0 || c.Output.EndDelay < 0 {
		return fmt.Errorf("%w: output delays must be >= 0", ErrInvalidConfig)
	}
	if c.Device.Baud <= 0 {
		return fmt.Errorf("%w: device.baud must be positive, got %d", ErrInvalidConfig, c.Device.Baud)
	}
	if c.Device.Buffer <= 0 {
		return fmt.Errorf("%w: device.buffer must be positive, got %d", ErrInvalidConfig, c.Device.Buffer)
	}

	return nil
}

// parseLevel maps a level name to a slog.Level.
func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, name)
}
