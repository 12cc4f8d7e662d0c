package config

import (
	"fmt"
	"maps"
	"sort"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/sensor"
)

// Presets are ready-to-run configurations for the builtin tracks.
var Presets = map[string]*Config{
	"classic-demo": {
		Description: "the original demo: reactive rule on the two-pillar layout",
		Track:       "classic", Controller: "reactive",
		Hz: 60, Duration: 30, OnCollision: "halt",
		Car:     car.DefaultParams(),
		Sensors: SensorConfig{Range: sensor.DefaultRig().Range},
	},
	"open-cruise": {
		Description: "hold a target speed on the empty field",
		Track:       "open", Controller: "cruise",
		Hz: 60, Duration: 20, OnCollision: "halt",
		Car:     car.DefaultParams(),
		Sensors: SensorConfig{Range: sensor.DefaultRig().Range},
		Control: map[string]float64{"target_speed": 2.5, "turn": 1.0},
	},
	"slalom-reset": {
		Description: "weave the pillar row, respawning after crashes",
		Track:       "slalom", Controller: "reactive",
		Hz: 60, Duration: 45, OnCollision: "reset",
		Car:     car.DefaultParams(),
		Sensors: SensorConfig{Range: sensor.DefaultRig().Range},
	},
	"corridor-run": {
		Description: "tight hallway with an eager centering margin",
		Track:       "corridor", Controller: "reactive",
		Hz: 60, Duration: 40, OnCollision: "halt",
		Car:     car.DefaultParams(),
		Sensors: SensorConfig{Range: sensor.DefaultRig().Range},
		Control: map[string]float64{"center_margin": 30},
	},
}

// GetPreset returns a copy of the named preset, safe for the caller
// to modify.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("config: unknown preset %q", name)
	}
	cp := *p
	cp.Control = maps.Clone(p.Control)
	return &cp, nil
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
