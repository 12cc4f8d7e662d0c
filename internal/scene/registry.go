package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/control"
	"github.com/san-kum/veer/internal/sim"
	"github.com/san-kum/veer/internal/track"
)

// Registry maps names to track and controller constructors so runs
// can be assembled from config strings.
type Registry struct {
	tracks      map[string]func() *track.Track
	controllers map[string]func(car.Params) sim.Controller
}

// NewRegistry returns a registry with the builtin tracks and
// controllers already registered.
func NewRegistry() *Registry {
	r := &Registry{
		tracks:      make(map[string]func() *track.Track),
		controllers: make(map[string]func(car.Params) sim.Controller),
	}

	r.tracks["classic"] = track.Classic
	r.tracks["open"] = track.Open
	r.tracks["slalom"] = track.Slalom
	r.tracks["corridor"] = track.Corridor

	r.controllers["reactive"] = func(cp car.Params) sim.Controller {
		return control.NewReactive(control.DefaultReactiveParams(), cp)
	}
	r.controllers["cruise"] = func(cp car.Params) sim.Controller {
		return control.NewCruise(0.8 * cp.MaxSpeed)
	}
	r.controllers["manual"] = func(cp car.Params) sim.Controller {
		return control.NewManual(cp)
	}
	r.controllers["none"] = func(cp car.Params) sim.Controller {
		return control.NewNone()
	}

	return r
}

func (r *Registry) RegisterTrack(name string, fn func() *track.Track) {
	r.tracks[name] = fn
}

func (r *Registry) RegisterController(name string, fn func(car.Params) sim.Controller) {
	r.controllers[name] = fn
}

func (r *Registry) GetTrack(name string) (*track.Track, error) {
	fn, ok := r.tracks[name]
	if !ok {
		return nil, fmt.Errorf("unknown track: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetController(name string, cp car.Params) (sim.Controller, error) {
	fn, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("unknown controller: %s", name)
	}
	return fn(cp), nil
}

func (r *Registry) ListTracks() []string {
	names := make([]string, 0, len(r.tracks))
	for name := range r.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListControllers() []string {
	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
