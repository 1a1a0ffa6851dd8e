// Package pixel implements the canvas rendition: the same surge
// mechanic drawn with half-block characters at double vertical
// resolution, with the run attributed to a named player.
package pixel

import (
	"fmt"

	"flapterm/internal/config"
	"flapterm/internal/core"
	"flapterm/internal/registry"
)

// hudRows is the number of screen rows reserved above the canvas.
const hudRows = 1

// Game implements the pixel-canvas game logic. Vertical positions are in
// canvas pixels, horizontal positions in columns.
type Game struct {
	playerY    float64
	playerVel  float64
	pairs      *PairManager
	canvas     *Canvas
	playerName string
	score      int
	gameOver   bool
	paused     bool
	runtime    core.RuntimeConfig
	cfg        config.PixelConfig
	difficulty *config.DifficultyManager
	tickCount  int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pixel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pixel Flappy"
}

// SetPlayerName attributes the run to a player. The platform layer sets
// it from the intro screen or the SSH login before the run starts.
func (g *Game) SetPlayerName(name string) {
	g.playerName = name
}

// PlayerName returns the name the run is attributed to.
func (g *Game) PlayerName() string {
	return g.playerName
}

// canvasRows returns the number of terminal rows the canvas covers.
func (g *Game) canvasRows() int {
	rows := g.runtime.ScreenH - hudRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// fieldH returns the playable field height in pixels.
func (g *Game) fieldH() int {
	return g.canvasRows() * 2
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPixel(configPath)
	if err != nil {
		cfg = config.DefaultPixelConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPixelPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.playerY = float64(g.fieldH()) / 2.0
	g.playerVel = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.canvas == nil {
		g.canvas = NewCanvas(runtime.ScreenW, g.canvasRows())
	} else {
		g.canvas.Resize(runtime.ScreenW, g.canvasRows())
	}

	if g.pairs == nil {
		g.pairs = NewPairManager(runtime.Seed, runtime.ScreenW, g.fieldH(), &g.cfg, g.difficulty)
	} else {
		g.pairs.UpdateConfig(&g.cfg, g.difficulty)
		g.pairs.UpdateFieldSize(runtime.ScreenW, g.fieldH())
		g.pairs.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	if in.Has(core.ActionFlap) {
		g.playerVel = g.cfg.Physics.JumpImpulse
		events = append(events, core.EventFlap)
	}

	g.playerVel += g.cfg.Physics.Gravity
	if g.playerVel > g.cfg.Physics.MaxFallSpeed {
		g.playerVel = g.cfg.Physics.MaxFallSpeed
	}
	g.playerY += g.playerVel

	passed := g.pairs.Update(g.cfg.Player.X+g.cfg.Player.Width, g.score, g.tickCount)
	g.score += passed
	for i := 0; i < passed; i++ {
		events = append(events, core.EventScore)
	}

	// The canvas edges are the boundary: touch either and the run ends
	if g.playerY < 0 {
		g.playerY = 0
		g.gameOver = true
	}
	fieldH := g.fieldH()
	if int(g.playerY)+g.cfg.Player.Height > fieldH {
		g.playerY = float64(fieldH - g.cfg.Player.Height)
		g.gameOver = true
	}

	if g.pairs.CheckCollision(g.playerRect()) {
		g.gameOver = true
	}

	if g.gameOver {
		events = append(events, core.EventCrash)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// playerRect returns the player's collision rectangle in canvas space.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.cfg.Player.X, int(g.playerY), g.cfg.Player.Width, g.cfg.Player.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Obstacle layer
	g.canvas.Clear()
	pipeWidth := g.cfg.Obstacles.PipeWidth
	fieldH := g.fieldH()
	for _, p := range g.pairs.Pairs() {
		g.canvas.FillRect(p.X, 0, pipeWidth, p.GapY)
		bottomY := p.GapY + p.GapHeight
		g.canvas.FillRect(p.X, bottomY, pipeWidth, fieldH-bottomY)
	}
	g.canvas.Flush(dst, hudRows, core.ColorGreen)

	// Player layer
	g.canvas.Clear()
	r := g.playerRect()
	g.canvas.FillRect(r.X, r.Y, r.W, r.H)
	g.canvas.Flush(dst, hudRows, core.ColorYellow)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.playerName != "" {
		dst.DrawTextCentered(0, fmt.Sprintf(" %s ", g.playerName))
	}
	if g.runtime.TickRate > 0 {
		timeText := fmt.Sprintf(" Time: %ds ", g.tickCount/g.runtime.TickRate)
		dst.DrawText(dst.Width()-len(timeText)-2, 0, timeText)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pixel", func() registry.Game {
		return New()
	})
}
