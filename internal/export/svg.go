package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/veer/internal/car"
	"github.com/san-kum/veer/internal/geom"
	"github.com/san-kum/veer/internal/sim"
	"github.com/san-kum/veer/internal/track"
)

// SceneSVG renders a finished run as an SVG snapshot: track rects in
// white on black, the driven path as a blue polyline, and the car
// body at its final pose. A collided car is drawn red.
func SceneSVG(tr *track.Track, p car.Params, frames []sim.Frame) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
<g fill="#ffffff">
`, tr.Width, tr.Height, tr.Width, tr.Height))

	for _, r := range tr.Rects {
		sb.WriteString(fmt.Sprintf(`<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f"/>
`, r.X, r.Y, r.W, r.H))
	}
	sb.WriteString("</g>\n")

	if len(frames) > 1 {
		sb.WriteString(`<polyline fill="none" stroke="#0096ff" stroke-width="1.5" points="`)
		for i, f := range frames {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", f.Car.Pos.X, f.Car.Pos.Y))
		}
		sb.WriteString("\"/>\n")
	}

	if len(frames) > 0 {
		last := frames[len(frames)-1]
		fill := "#0096ff"
		if last.Status == sim.StatusCollided {
			fill = "#ff3c3c"
		}

		corners := car.Body(last.Car, p).Corners()
		sb.WriteString(fmt.Sprintf(`<polygon fill="%s" points="`, fill))
		for i, c := range corners {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", c.X, c.Y))
		}
		sb.WriteString("\"/>\n")

		nose := last.Car.Pos.Add(geom.FromDeg(last.Car.Heading).Scale(p.Length / 2))
		sb.WriteString(fmt.Sprintf(`<line stroke="#ffffff" stroke-width="2" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, last.Car.Pos.X, last.Car.Pos.Y, nose.X, nose.Y))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SaveSVG writes the snapshot to path.
func SaveSVG(path string, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
