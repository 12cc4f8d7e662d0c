package gui

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/config"
	"github.com/san-kum/veer/internal/control"
	"github.com/san-kum/veer/internal/scene"
	"github.com/san-kum/veer/internal/sensor"
	"github.com/san-kum/veer/internal/sim"
	"github.com/san-kum/veer/internal/track"
)

// Theme Colors (original demo palette)
var (
	ColBg      = rl.NewColor(0, 0, 0, 255)       // Black
	ColWall    = rl.NewColor(255, 255, 255, 255) // White
	ColCar     = rl.NewColor(0, 150, 255, 255)   // Car Blue
	ColCarHit  = rl.NewColor(255, 60, 60, 255)   // Crash Red
	ColText    = rl.NewColor(255, 255, 255, 255)
	ColTextDim = rl.NewColor(120, 120, 120, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColAccent  = rl.NewColor(0, 150, 255, 255)

	ColSafe   = rl.NewColor(0, 255, 0, 255)
	ColWarn   = rl.NewColor(255, 255, 0, 255)
	ColDanger = rl.NewColor(255, 0, 0, 255)
)

// Sensor zone thresholds, pixels. Same cutoffs the reactive rule
// brakes and slows at.
const (
	dangerZone = 80.0
	warnZone   = 120.0
)

type App struct {
	World *sim.World

	TrackName string
	CtrlName  string

	InMenu  bool
	InTune  bool
	Running bool
	Manual  bool

	Tracks   []string
	Ctrls    []string
	SelTrack int
	SelCtrl  int
	OnCtrls  bool

	SceneCtrl sim.Controller
	ManCtrl   *control.Manual
	Tunable   sim.Configurable
	ParamKeys []string
	ParamSel  int

	Font   rl.Font
	Frames int
	Quit   bool

	reg *scene.Registry
}

// initWindow opens the Raylib window at the field size, sets the
// target FPS to 60, and disables the default exit key so Escape can
// back out to the menu instead.
func initWindow() {
	rl.InitWindow(int32(track.FieldWidth), int32(track.FieldHeight), "2D Self-Driving Car Simulation")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// NewApp creates an App configured for either interactive menu-driven
// use or a direct run of the given track and controller. The window
// must already be open.
func NewApp(trackName, ctrlName string, interactive bool) (*App, error) {
	reg := scene.NewRegistry()
	app := &App{
		reg:     reg,
		Tracks:  reg.ListTracks(),
		Ctrls:   reg.ListControllers(),
		Font:    rl.GetFontDefault(),
		InMenu:  interactive,
		Running: !interactive,
	}

	for i, name := range app.Tracks {
		if name == trackName {
			app.SelTrack = i
		}
	}
	for i, name := range app.Ctrls {
		if name == ctrlName {
			app.SelCtrl = i
		}
	}

	if !interactive {
		if err := app.loadScene(trackName, ctrlName); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// RunInteractive opens the window, starts in the track and controller
// menu, and blocks until the user quits.
func RunInteractive() error {
	initWindow()
	defer rl.CloseWindow()
	app, err := NewApp(config.DefaultTrack, config.DefaultController, true)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

// Run opens the window straight into a run of the given track and
// controller and blocks until the user quits.
func Run(trackName, ctrlName string) error {
	initWindow()
	defer rl.CloseWindow()
	app, err := NewApp(trackName, ctrlName, false)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.Quit {
		a.Update()
		a.Draw()
	}
}

// loadScene builds a fresh world for the picked track and controller
// and resets the screen state to a running simulation.
func (a *App) loadScene(trackName, ctrlName string) error {
	params := car.DefaultParams()

	tr, err := a.reg.GetTrack(trackName)
	if err != nil {
		return err
	}
	ctrl, err := a.reg.GetController(ctrlName, params)
	if err != nil {
		return err
	}
	w, err := sim.NewWorld(tr, params, sensor.DefaultRig(), ctrl)
	if err != nil {
		return err
	}

	a.World = w
	a.TrackName = trackName
	a.CtrlName = ctrlName
	a.SceneCtrl = ctrl
	a.ManCtrl = control.NewManual(params)
	a.Manual = false
	a.InMenu = false
	a.InTune = false
	a.Running = true
	a.Frames = 0

	a.Tunable = nil
	a.ParamKeys = nil
	a.ParamSel = 0
	if cfg, ok := ctrl.(sim.Configurable); ok {
		a.Tunable = cfg
		for k := range cfg.GetParams() {
			a.ParamKeys = append(a.ParamKeys, k)
		}
		sort.Strings(a.ParamKeys)
	}
	return nil
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.Quit = true
		return
	}

	if a.InMenu {
		a.updateMenu()
		return
	}

	if a.InTune {
		a.updateTune()
		if a.Running {
			a.step()
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu = true
		a.Running = false
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyN) {
		a.Running = false
		a.step()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.World.Reset()
		a.Frames = 0
		a.Running = true
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.toggleManual()
	}
	if rl.IsKeyPressed(rl.KeyTab) && a.Tunable != nil {
		a.InTune = true
		return
	}

	if a.Manual {
		a.readDrive()
	}
	if a.Running {
		a.step()
	}
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyTab) {
		a.OnCtrls = !a.OnCtrls
	}

	sel, items := &a.SelTrack, a.Tracks
	if a.OnCtrls {
		sel, items = &a.SelCtrl, a.Ctrls
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		*sel++
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		*sel--
	}

	// Wrap selection
	if *sel >= len(items) {
		*sel = 0
	}
	if *sel < 0 {
		*sel = len(items) - 1
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		if err := a.loadScene(a.Tracks[a.SelTrack], a.Ctrls[a.SelCtrl]); err == nil {
			a.InMenu = false
		}
	}
}

// updateTune handles the overlay input. The simulation keeps stepping
// underneath so adjustments show up immediately.
func (a *App) updateTune() {
	if rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyEscape) {
		a.InTune = false
		return
	}
	if len(a.ParamKeys) == 0 {
		return
	}

	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.ParamSel = (a.ParamSel + 1) % len(a.ParamKeys)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.ParamSel--
		if a.ParamSel < 0 {
			a.ParamSel = len(a.ParamKeys) - 1
		}
	}

	factor := 0.0
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		factor = 1.05
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		factor = 0.95
	}
	if factor != 0 {
		key := a.ParamKeys[a.ParamSel]
		val := a.Tunable.GetParams()[key] * factor
		_ = a.Tunable.SetParam(key, val)
	}
}

// toggleManual swaps between the scene controller and arrow-key
// driving without moving the car.
func (a *App) toggleManual() {
	a.Manual = !a.Manual
	if a.Manual {
		a.ManCtrl.SetInput(0, 0)
		a.World.SetController(a.ManCtrl)
	} else {
		a.World.SetController(a.SceneCtrl)
	}
}

// readDrive polls the arrow keys into the manual controller.
func (a *App) readDrive() {
	throttle, steer := 0.0, 0.0
	if rl.IsKeyDown(rl.KeyUp) {
		throttle = 1
	}
	if rl.IsKeyDown(rl.KeyDown) {
		throttle = -1
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		steer = -1
	}
	if rl.IsKeyDown(rl.KeyRight) {
		steer = 1
	}
	a.ManCtrl.SetInput(throttle, steer)
}

func (a *App) step() {
	a.World.Step()
	a.Frames++
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InMenu {
		a.drawMenu()
	} else {
		a.drawWorld()
		a.DrawHUD()
		if a.InTune {
			a.drawTune()
		}
	}

	rl.EndDrawing()
}
