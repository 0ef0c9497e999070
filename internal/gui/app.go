// Package gui is the raylib frontend: it owns the window, polls input,
// drives the fixed-timestep simulation and submits each frame. One
// goroutine does everything, in that order, every frame.
package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/marek-sk/orbitsim/internal/config"
	"github.com/marek-sk/orbitsim/internal/physics"
	"github.com/marek-sk/orbitsim/internal/screen"
	"github.com/marek-sk/orbitsim/internal/sim"
)

const maxSpeed = 1024 // ticks per frame

type App struct {
	cfg    *config.Config
	sim    *sim.Simulator
	proj   screen.Projector
	trails *screen.TrailSet

	orbitsVisible bool
	paused        bool
	speed         int
	running       bool
}

// Run builds the simulation from cfg and blocks in the frame loop
// until the user quits or closes the window.
func Run(cfg *config.Config) error {
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	gravity := physics.NewGravity()
	gravity.Softening = cfg.Softening

	speed := cfg.Speed
	if speed < 1 {
		speed = 1
	}

	app := &App{
		cfg:           cfg,
		sim:           sim.New(reg, gravity),
		proj:          screen.NewProjector(cfg.Window.Width, cfg.Window.Height, cfg.Scale),
		trails:        screen.NewTrailSet(reg.Len()),
		orbitsVisible: true,
		speed:         speed,
		running:       true,
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)

	for app.running && !rl.WindowShouldClose() {
		app.update()
		app.draw()
	}
	return nil
}

// update polls input and, unless paused, advances the physics. The
// whole body set is updated before anything is projected, so draw
// never sees a partial tick.
func (a *App) update() {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		a.running = false
		return
	}
	if rl.IsKeyPressed(rl.KeyO) {
		a.orbitsVisible = !a.orbitsVisible
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		if a.speed < maxSpeed {
			a.speed *= 2
		}
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		if a.speed > 1 {
			a.speed /= 2
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.sim.Reset()
		a.trails.Reset()
	}

	if a.paused {
		return
	}

	for i := 0; i < a.speed; i++ {
		a.sim.Tick(a.cfg.Dt)
	}

	// Trails record one projected point per rendered frame. When the
	// orbit display is off the trail simply is not extended; toggling
	// back on resumes from whatever was recorded.
	if a.orbitsVisible {
		a.trails.Extend(a.proj, a.sim.Registry().Bodies())
	}
}
