//go:build cgo

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/SlavicJan/way-of-warrior/internal/game"
)

// AppConfig carries what the entry point knows: build identity and the
// flag-configurable paths.
type AppConfig struct {
	Version      string
	Seed         int64
	AssetsDir    string
	ControlsPath string
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "assets"
	}
	if cfg.ControlsPath == "" {
		cfg.ControlsPath = ControlsFileName
	}
	return &App{cfg: cfg}
}

type gameUI struct {
	cfg      AppConfig
	state    *game.State
	bindings Bindings
	tex      uiTextures
	safe     rectI
	quit     bool
}

// Run opens the window and drives the fixed input/update/draw loop until
// the quit binding or the window close button fires.
func (a *App) Run() error {
	bindings, err := LoadBindings(a.cfg.ControlsPath)
	if err != nil {
		return fmt.Errorf("load controls: %w", err)
	}

	ui := &gameUI{
		cfg:      a.cfg,
		state:    game.NewState(game.Config{Seed: a.cfg.Seed}),
		bindings: bindings,
	}

	rl.InitWindow(screenW, screenH, "Way of the Warrior")
	// Esc is a rebindable quit action, not raylib's hard exit key.
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	ui.tex, ui.safe = loadUITextures(a.cfg.AssetsDir)
	ui.centerCamera()

	for !ui.quit && !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())
		ui.handleInput(dt)
		ui.state.Update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	ui.tex.unload()
	rl.CloseWindow()
	return nil
}

func (ui *gameUI) centerCamera() {
	ui.state.Camera.CenterOn(ui.state.Hero.Cell,
		float64(ui.safe.centerX()), float64(ui.safe.centerY()))
}

func (ui *gameUI) handleInput(dt float64) {
	state := ui.state

	if ui.bindings.Pressed(ActionQuit) {
		ui.quit = true
		return
	}
	if ui.bindings.Pressed(ActionInventory) {
		state.ToggleInventory()
	}
	if ui.bindings.Pressed(ActionDialog) {
		state.ToggleDialog()
	}
	if ui.bindings.Pressed(ActionDebug) {
		state.ToggleDebug()
	}
	if ui.bindings.Pressed(ActionCenter) {
		ui.centerCamera()
		state.Message = "Camera centred on the hero."
	}
	if ui.bindings.Pressed(ActionTeleport) {
		if _, err := state.Teleport(game.LandmarkPortal); err == nil {
			ui.centerCamera()
			state.Message = "Teleported to the portal. Press E next to it to spawn a wave."
		}
	}
	if ui.bindings.Pressed(ActionActivate) {
		state.ActivatePortal()
	}

	speed := game.CameraPanSpeed
	if shiftDown() {
		speed = game.CameraFastSpeed
	}
	if panLeftDown() {
		state.Camera.Pan(speed*dt, 0)
	}
	if panRightDown() {
		state.Camera.Pan(-speed*dt, 0)
	}
	if panUpDown() {
		state.Camera.Pan(0, speed*dt)
	}
	if panDownDown() {
		state.Camera.Pan(0, -speed*dt)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) || rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		pos := rl.GetMousePosition()
		// Clicks behind the decorative frame are dead.
		if ui.safe.contains(int(pos.X), int(pos.Y)) {
			wx, wy := state.Camera.ToWorld(float64(pos.X), float64(pos.Y))
			state.MoveTo(game.IsoToGrid(wx, wy))
		}
	}
}
