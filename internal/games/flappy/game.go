// Package flappy implements the classic cell-grid rendition: the player
// falls under gravity, surges upward on input and must pass through the
// gaps in scrolling obstacle pairs.
package flappy

import (
	"fmt"

	"flapterm/internal/config"
	"flapterm/internal/core"
	"flapterm/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// clouds is the decorative background layer: anchor positions that
// drift left over time and wrap around the screen.
var clouds = []struct {
	x, y  int
	shape string
}{
	{12, 2, "░░░░"},
	{34, 4, "░░░░░░"},
	{58, 3, "░░░"},
	{75, 5, "░░░░░"},
}

// Game implements the cell-grid game logic.
type Game struct {
	playerY    float64            // Player vertical position (top of hitbox)
	playerVel  float64            // Player vertical velocity
	pipes      *PipeManager       // Obstacle pair manager
	score      int                // Current score
	gameOver   bool               // Whether the run has ended
	paused     bool               // Whether the game is paused
	runtime    core.RuntimeConfig // Screen size, tick rate, seed
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	tickCount  int // Ticks since the run started
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
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.playerY = float64(runtime.ScreenH) / 2.0
	g.playerVel = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.pipes == nil {
		g.pipes = NewPipeManager(runtime.Seed, runtime.ScreenW, runtime.ScreenH, &g.cfg, g.difficulty)
	} else {
		g.pipes.UpdateConfig(&g.cfg, g.difficulty)
		g.pipes.UpdateScreenSize(runtime.ScreenW, runtime.ScreenH)
		g.pipes.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	// A surge replaces the current vertical velocity outright
	if in.Has(core.ActionFlap) {
		g.playerVel = g.cfg.Physics.JumpImpulse
		events = append(events, core.EventFlap)
	}

	// Apply physics
	g.playerVel += g.cfg.Physics.Gravity
	if g.playerVel > g.cfg.Physics.MaxFallSpeed {
		g.playerVel = g.cfg.Physics.MaxFallSpeed
	}
	g.playerY += g.playerVel

	// Update pairs and collect score
	passed := g.pipes.Update(g.cfg.Player.X+g.cfg.Player.Width, g.score, g.tickCount)
	g.score += passed
	for i := 0; i < passed; i++ {
		events = append(events, core.EventScore)
	}

	// Hit top of screen
	if g.playerY < 0 {
		g.playerY = 0
		g.gameOver = true
	}

	// Hit the ground
	groundY := g.groundY()
	if int(g.playerY)+g.cfg.Player.Height > groundY {
		g.playerY = float64(groundY - g.cfg.Player.Height)
		g.gameOver = true
	}

	// Hit an obstacle column
	if g.pipes.CheckCollision(g.playerRect(), groundY) {
		g.gameOver = true
	}

	if g.gameOver {
		events = append(events, core.EventCrash)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// groundY returns the row occupied by the ground line.
func (g *Game) groundY() int {
	return g.runtime.ScreenH - 1
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.cfg.Player.X, int(g.playerY), g.cfg.Player.Width, g.cfg.Player.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := dst.Height() - 1
	dst.DrawHLineColor(0, groundY, dst.Width(), GroundChar, core.ColorGray)

	g.drawClouds(dst)

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p)
	}

	// Draw player
	playerY := int(g.playerY)
	for dy := 0; dy < g.cfg.Player.Height; dy++ {
		for dx := 0; dx < g.cfg.Player.Width; dx++ {
			ch := PlayerBody
			if dx == g.cfg.Player.Width-1 && dy == 0 {
				ch = PlayerChar
			}
			dst.SetColor(g.cfg.Player.X+dx, playerY+dy, ch, core.ColorYellow)
		}
	}

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
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

// drawClouds renders the background layer. Clouds drift at a quarter of
// the tick pace, slower than the obstacles, and wrap around the screen.
func (g *Game) drawClouds(dst *core.Screen) {
	w := dst.Width()
	if w <= 0 {
		return
	}

	offset := g.tickCount / 4
	for _, c := range clouds {
		x := (c.x - offset) % w
		if x < 0 {
			x += w
		}
		for j, r := range []rune(c.shape) {
			dst.SetColor((x+j)%w, c.y, r, core.ColorGray)
		}
	}
}

// drawPipe renders a single obstacle pair.
func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	groundY := dst.Height() - 1
	pipeWidth := g.cfg.Obstacles.PipeWidth

	// Top column, capped at its lower end
	for y := 0; y < p.GapY; y++ {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColor(p.X+x, y, PipeChar, core.ColorGreen)
		}
	}
	if p.GapY > 0 {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColor(p.X+x, p.GapY-1, PipeCapTop, core.ColorGreen)
		}
	}

	// Bottom column, capped at its upper end
	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < groundY; y++ {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColor(p.X+x, y, PipeChar, core.ColorGreen)
		}
	}
	if bottomY < groundY {
		for x := 0; x < pipeWidth; x++ {
			dst.SetColor(p.X+x, bottomY, PipeCapBottom, core.ColorGreen)
		}
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
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
