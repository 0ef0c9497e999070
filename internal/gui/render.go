package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var bgColor = rl.NewColor(10, 10, 10, 255)

func toRaylib(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(bgColor)

	bodies := a.sim.Registry().Bodies()

	if a.orbitsVisible {
		for i, b := range bodies {
			if b.Anchor {
				continue
			}
			points := a.trails.Trail(i).Points()
			col := toRaylib(b.Color)
			for j := 1; j < len(points); j++ {
				rl.DrawLineV(
					rl.NewVector2(float32(points[j-1].X), float32(points[j-1].Y)),
					rl.NewVector2(float32(points[j].X), float32(points[j].Y)),
					col,
				)
			}
		}
	}

	for _, b := range bodies {
		p := a.proj.Project(b.Pos)
		rl.DrawCircleV(
			rl.NewVector2(float32(p.X), float32(p.Y)),
			float32(b.RenderRadius),
			toRaylib(b.Color),
		)
	}

	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	y := int32(10)
	for _, b := range a.sim.Registry().Bodies() {
		rl.DrawText(b.Name, 10, y, 14, toRaylib(b.Color))
		y += 20
	}

	days := a.sim.Elapsed(a.cfg.Dt) / 86400
	status := fmt.Sprintf("t = %.1f days   speed %dx", days, a.speed)
	if a.paused {
		status += "   PAUSED"
	}
	rl.DrawText(status, 10, int32(a.cfg.Window.Height)-44, 14, rl.Gray)
	rl.DrawText("O orbits  SPACE pause  +/- speed  R reset  Q quit",
		10, int32(a.cfg.Window.Height)-24, 14, rl.DarkGray)
}
