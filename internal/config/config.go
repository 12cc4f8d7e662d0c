package config

import (
	"fmt"
	"os"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/sensor"
	"github.com/san-kum/veer/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTrack       = "classic"
	DefaultController  = "reactive"
	DefaultHz          = 60
	DefaultDuration    = 30.0
	DefaultOnCollision = "halt"
)

// Config describes one simulation run: where the car drives, what
// drives it, and for how long.
type Config struct {
	Description string             `yaml:"description,omitempty"`
	Track       string             `yaml:"track"`
	Controller  string             `yaml:"controller"`
	Hz          int                `yaml:"hz"`
	Duration    float64            `yaml:"duration"`
	OnCollision string             `yaml:"on_collision"`
	Car         car.Params         `yaml:"car"`
	Sensors     SensorConfig       `yaml:"sensors"`
	Control     map[string]float64 `yaml:"control,omitempty"`
}

type SensorConfig struct {
	Range float64 `yaml:"range"`
}

func DefaultConfig() *Config {
	return &Config{
		Track:       DefaultTrack,
		Controller:  DefaultController,
		Hz:          DefaultHz,
		Duration:    DefaultDuration,
		OnCollision: DefaultOnCollision,
		Car:         car.DefaultParams(),
		Sensors:     SensorConfig{Range: sensor.DefaultRig().Range},
	}
}

// Load reads a YAML config from path. Fields absent from the file
// keep their defaults.
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

// Validate rejects configs the simulation cannot run.
func (c *Config) Validate() error {
	if c.Hz <= 0 {
		return fmt.Errorf("config: hz must be positive, got %d", c.Hz)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if _, err := sim.ParsePolicy(c.OnCollision); err != nil {
		return err
	}
	if c.Sensors.Range <= 0 {
		return fmt.Errorf("config: sensor range must be positive, got %g", c.Sensors.Range)
	}
	if c.Car.Accel <= 0 || c.Car.MaxSpeed <= 0 {
		return fmt.Errorf("config: car accel and max speed must be positive")
	}
	return nil
}

// Rig returns the sensor rig for this config: the standard three-ray
// fan with the configured range.
func (c *Config) Rig() sensor.Rig {
	rig := sensor.DefaultRig()
	if c.Sensors.Range > 0 {
		rig.Range = c.Sensors.Range
	}
	return rig
}

// Policy parses the collision policy. Call Validate first if the
// config came from user input.
func (c *Config) Policy() sim.CollisionPolicy {
	p, err := sim.ParsePolicy(c.OnCollision)
	if err != nil {
		return sim.CollideHalt
	}
	return p
}
