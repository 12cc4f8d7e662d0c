package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/veer/internal/geom"
	"github.com/san-kum/veer/internal/sim"
)

func vec2(v geom.Vec) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

// zoneColor grades a sensor ray by how close the obstacle is.
func zoneColor(distance float64) rl.Color {
	switch {
	case distance < dangerZone:
		return ColDanger
	case distance < warnZone:
		return ColWarn
	default:
		return ColSafe
	}
}

func (a *App) drawWorld() {
	for _, r := range a.World.Track.Rects {
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), ColWall)
	}

	cur := a.World.Car()

	for _, rd := range a.World.Sense() {
		dir := geom.FromDeg(cur.Heading + rd.Bearing)
		end := cur.Pos.Add(dir.Scale(rd.Distance))
		col := zoneColor(rd.Distance)
		rl.DrawLineEx(vec2(cur.Pos), vec2(end), 2, col)
		if rd.Hit {
			rl.DrawCircleV(vec2(end), 4, col)
		}
	}

	body := ColCar
	if a.World.Status() == sim.StatusCollided {
		body = ColCarHit
	}
	p := a.World.Params
	rec := rl.NewRectangle(float32(cur.Pos.X), float32(cur.Pos.Y), float32(p.Length), float32(p.Width))
	origin := rl.NewVector2(float32(p.Length/2), float32(p.Width/2))
	rl.DrawRectanglePro(rec, origin, float32(cur.Heading), body)

	// Nose marker shows which way the car points
	tip := cur.Pos.Add(geom.FromDeg(cur.Heading).Scale(p.Length / 2))
	base := cur.Pos.Add(geom.FromDeg(cur.Heading).Scale(p.Length/2 - 8))
	left := base.Add(geom.FromDeg(cur.Heading - 90).Scale(4))
	right := base.Add(geom.FromDeg(cur.Heading + 90).Scale(4))
	rl.DrawTriangle(vec2(tip), vec2(left), vec2(right), ColWall)
}

func (a *App) DrawHUD() {
	a.drawText(fmt.Sprintf("Total Distance Traveled: %.0f", a.World.Distance()), 15, 10, 20, ColText)
	a.drawText(fmt.Sprintf("Speed: %.1f", a.World.Car().Speed), 15, 35, 20, ColText)

	status, col := "RUNNING", ColSafe
	switch {
	case a.World.Status() == sim.StatusCollided:
		status, col = "COLLIDED - R TO RESPAWN", ColDanger
	case !a.Running:
		status, col = "PAUSED", ColWarn
	}
	a.drawText(status, 600, 10, 16, col)

	mode := fmt.Sprintf("%s :: %s", a.TrackName, a.CtrlName)
	if a.Manual {
		mode = fmt.Sprintf("%s :: manual", a.TrackName)
	}
	a.drawText(mode, 600, 32, 14, ColTextDim)

	a.drawText("[SPACE] PAUSE  [N] STEP  [R] RESET  [M] MANUAL  [TAB] TUNE  [ESC] MENU  [Q] QUIT", 15, 575, 12, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 735, 575, 12, ColTextDim)
}

func (a *App) drawMenu() {
	a.drawText("veer", 50, 40, 40, ColSelect)
	a.drawText("pick a track and a controller", 50, 95, 16, ColTextDim)

	a.drawColumn("TRACK", a.Tracks, a.SelTrack, 50, !a.OnCtrls)
	a.drawColumn("CONTROLLER", a.Ctrls, a.SelCtrl, 420, a.OnCtrls)

	a.drawText("ARROWS: NAVIGATE  ENTER: DRIVE  Q: QUIT", 420, 575, 14, ColTextDim)
}

func (a *App) drawColumn(title string, items []string, sel, x int, focused bool) {
	col := ColTextDim
	if focused {
		col = ColAccent
	}
	a.drawText(title, x, 150, 16, col)

	y := 190
	for i, name := range items {
		line := fmt.Sprintf("  %s", name)
		itemCol := ColText
		if i == sel {
			line = fmt.Sprintf("> %s", name)
			itemCol = ColAccent
			if focused {
				itemCol = ColSelect
			}
		}
		a.drawText(line, x, y, 20, itemCol)
		y += 28
	}
}

func (a *App) drawTune() {
	rl.DrawRectangle(150, 120, 500, 360, rl.NewColor(0, 0, 0, 230))
	rl.DrawRectangleLines(150, 120, 500, 360, ColAccent)

	a.drawText("tune", 180, 145, 24, ColSelect)
	a.drawText(fmt.Sprintf("Target: %s", a.CtrlName), 180, 180, 14, ColAccent)

	y := 225
	params := a.Tunable.GetParams()
	for i, key := range a.ParamKeys {
		marker := "  "
		itemCol := ColText
		if i == a.ParamSel {
			marker = "> "
			itemCol = ColSelect
		}
		a.drawText(fmt.Sprintf("%s%-18s %.2f", marker, key, params[key]), 180, y, 18, itemCol)
		y += 26
	}

	a.drawText("ARROWS: ADJUST  TAB: CLOSE", 180, 445, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
