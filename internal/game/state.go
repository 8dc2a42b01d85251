package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Config controls deterministic setup of a new game.
type Config struct {
	// Seed drives world generation and wave spawning. Zero picks a
	// time-based seed.
	Seed int64
}

// State is the whole mutable game: map, actors, camera and UI toggles. It is
// rendering-agnostic; the client package translates input events into calls
// on it and draws whatever it holds.
type State struct {
	Config Config

	World   *World
	Hero    *Hero
	Portal  *Portal
	Enemies []Enemy
	Camera  Camera

	ShowInventory bool
	ShowDialog    bool
	Debug         bool

	// Message is the one-line status shown at the bottom of the screen.
	Message string

	waveRNG *rand.Rand
}

// NewState builds a world from the config and places the hero a few tiles
// off the portal so the spawn interaction is reachable immediately.
func NewState(config Config) *State {
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	world := NewWorld(config.Seed)
	portal := NewPortal(world.Portal())
	hero := NewHero(Cell{X: portal.Cell.X - 4, Y: portal.Cell.Y + 6}.Clamp())
	world.clearAround(hero.Cell)

	return &State{
		Config:  config,
		World:   world,
		Hero:    hero,
		Portal:  portal,
		Message: "Click: move  |  I: inventory  |  O: dialog  |  F1: debug  |  E: portal",
		waveRNG: seededRNG(config.Seed, "wave"),
	}
}

// Update advances actors by dt seconds.
func (s *State) Update(dt float64) {
	s.Hero.Update(dt)
	s.Portal.Update(dt)
}

// MoveTo routes the hero toward the cell (clamped onto the grid). Blocked
// targets and unreachable cells leave the current path untouched.
func (s *State) MoveTo(target Cell) bool {
	target = target.Clamp()
	if s.World.IsBlocked(target) {
		return false
	}
	path := FindPath(s.Hero.Cell, target, s.World.Blocked)
	if len(path) == 0 {
		return false
	}
	s.Hero.SetPath(path)
	return true
}

// ToggleInventory flips the inventory panel.
func (s *State) ToggleInventory() {
	s.ShowInventory = !s.ShowInventory
}

// ToggleDialog flips the dialog panel.
func (s *State) ToggleDialog() {
	s.ShowDialog = !s.ShowDialog
}

// ToggleDebug flips the debug overlay.
func (s *State) ToggleDebug() {
	s.Debug = !s.Debug
}

// Teleport moves the hero onto the named landmark, tolerating typos in the
// name, and cancels any pending path.
func (s *State) Teleport(name string) (Landmark, error) {
	mark, ok := s.World.FindLandmark(name)
	if !ok {
		return Landmark{}, fmt.Errorf("no landmark matching %q", name)
	}
	s.Hero.Cell = mark.Cell
	s.Hero.ClearPath()
	s.Message = fmt.Sprintf("Teleported to the %s.", mark.Name)
	return mark, nil
}

// ActivatePortal spawns an enemy wave around the portal when the hero is on
// or next to it. Away from the portal it only updates the status message.
func (s *State) ActivatePortal() int {
	if !s.Portal.Adjacent(s.Hero.Cell) {
		s.Message = "Walk to the portal at the map centre and press E."
		return 0
	}
	wave := SpawnWave(s.waveRNG, s.World, s.Portal.Cell, s.Hero.Cell)
	s.Enemies = append(s.Enemies, wave...)
	s.Message = fmt.Sprintf("Portal activated: spawned %d enemies.", len(wave))
	return len(wave)
}

// PortalNearby reports whether the portal proximity hint should show.
func (s *State) PortalNearby() bool {
	return s.Portal.Adjacent(s.Hero.Cell)
}

// StatsLine renders the hero stat summary shown above the playfield.
func (s *State) StatsLine() string {
	return fmt.Sprintf("LVL %d  HP %d  MP %d  GOLD %d",
		s.Hero.Level, s.Hero.HP, s.Hero.MP, s.Hero.Gold)
}
