// Package config holds the environment options bag. Absent keys keep their
// documented defaults; loading never fails on a missing key.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNumFighters      = 2
	DefaultDt               = 0.2
	DefaultMaxEpisodeSec    = 300.0
	DefaultAccelLimitG      = 10.0
	DefaultSafeAltitudeKm   = 4.0
	DefaultDangerAltitudeKm = 3.5
	DefaultAltitudeFloorFt  = 2500.0
	DefaultRollLimitRad     = 3.0
	DefaultPitchLimitRad    = 1.5
	DefaultCheckIntervalSec = 20.0
	DefaultHeadingTolDeg    = 10.0
	DefaultAltitudeTolFt    = 1000.0
	DefaultInitAltitudeFt   = 20000.0
	DefaultInitSpeedFps     = 800.0
	DefaultTargetSpeedFps   = 800.0
)

type Config struct {
	Task        string  `yaml:"task"`
	NumFighters int     `yaml:"num_fighters"`
	Dt          float64 `yaml:"dt"`
	Seed        int64   `yaml:"seed"`

	MaxEpisodeSec float64 `yaml:"max_episode_sec"`

	AccelerationLimitX float64 `yaml:"acceleration_limit_x"`
	AccelerationLimitY float64 `yaml:"acceleration_limit_y"`
	AccelerationLimitZ float64 `yaml:"acceleration_limit_z"`

	SafeAltitudeKm   float64 `yaml:"safe_altitude_km"`
	DangerAltitudeKm float64 `yaml:"danger_altitude_km"`
	AltitudeFloorFt  float64 `yaml:"altitude_floor_ft"`

	RollLimitRad  float64 `yaml:"roll_limit_rad"`
	PitchLimitRad float64 `yaml:"pitch_limit_rad"`

	CheckIntervalSec    float64 `yaml:"check_interval_sec"`
	HeadingToleranceDeg float64 `yaml:"heading_tolerance_deg"`
	AltitudeToleranceFt float64 `yaml:"altitude_tolerance_ft"`

	TargetSpeedFps float64 `yaml:"target_speed_fps"`

	Init InitConfig `yaml:"init"`
}

// InitConfig places the vehicle and its targets at episode start.
type InitConfig struct {
	AltitudeFt       float64 `yaml:"altitude_ft"`
	HeadingDeg       float64 `yaml:"heading_deg"`
	SpeedFps         float64 `yaml:"speed_fps"`
	TargetAltitudeFt float64 `yaml:"target_altitude_ft"`
	TargetHeadingDeg float64 `yaml:"target_heading_deg"`
}

func DefaultConfig() *Config {
	return &Config{
		Task:                "heading",
		NumFighters:         DefaultNumFighters,
		Dt:                  DefaultDt,
		MaxEpisodeSec:       DefaultMaxEpisodeSec,
		AccelerationLimitX:  DefaultAccelLimitG,
		AccelerationLimitY:  DefaultAccelLimitG,
		AccelerationLimitZ:  DefaultAccelLimitG,
		SafeAltitudeKm:      DefaultSafeAltitudeKm,
		DangerAltitudeKm:    DefaultDangerAltitudeKm,
		AltitudeFloorFt:     DefaultAltitudeFloorFt,
		RollLimitRad:        DefaultRollLimitRad,
		PitchLimitRad:       DefaultPitchLimitRad,
		CheckIntervalSec:    DefaultCheckIntervalSec,
		HeadingToleranceDeg: DefaultHeadingTolDeg,
		AltitudeToleranceFt: DefaultAltitudeTolFt,
		TargetSpeedFps:      DefaultTargetSpeedFps,
		Init: InitConfig{
			AltitudeFt:       DefaultInitAltitudeFt,
			SpeedFps:         DefaultInitSpeedFps,
			TargetAltitudeFt: DefaultInitAltitudeFt,
			TargetHeadingDeg: 90.0,
		},
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
