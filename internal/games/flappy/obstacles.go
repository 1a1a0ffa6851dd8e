package flappy

import (
	"math/rand"

	"flapterm/internal/config"
	"flapterm/internal/core"
)

// Pipe is one obstacle pair: a top and a bottom column separated by a
// vertical gap the player must pass through.
type Pipe struct {
	X         int  // Horizontal position (left edge)
	GapY      int  // Y position where the gap starts (top of gap)
	GapHeight int  // Height of the passable gap
	Passed    bool // Whether the player has passed this pair (for scoring)
}

// TopRect returns the collision rectangle for the top column.
func (p Pipe) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.X, 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom column,
// which extends from below the gap down to the ground row.
func (p Pipe) BottomRect(pipeWidth, groundY int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottomY, pipeWidth, groundY-bottomY)
}

// PipeManager handles spawning, movement, scoring and removal of
// obstacle pairs. Spawning runs on a tick countdown so pairs arrive at a
// fixed cadence regardless of scroll speed.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	screenW    int
	screenH    int
	spawnTimer int     // Ticks until the next pair spawns
	scrollAcc  float64 // Fractional scroll carried between ticks
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64, screenW, screenH int, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		screenW:    screenW,
		screenH:    screenH,
		cfg:        cfg,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// UpdateConfig updates the configuration.
func (pm *PipeManager) UpdateConfig(cfg *config.FlappyConfig, diff *config.DifficultyManager) {
	pm.cfg = cfg
	pm.difficulty = diff
}

// Reset clears all pairs and resets the RNG and spawn timer. The first
// pair spawns on the next update.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.spawnTimer = 0
	pm.scrollAcc = 0
}

// UpdateScreenSize updates the screen dimensions.
func (pm *PipeManager) UpdateScreenSize(screenW, screenH int) {
	pm.screenW = screenW
	pm.screenH = screenH
}

// Update moves pairs left, counts down the spawn timer and spawns new
// pairs as it expires. Returns the number of pairs passed this tick.
func (pm *PipeManager) Update(playerX, score, ticks int) int {
	passed := 0

	// Scroll speed can be fractional; carry the remainder so the average
	// speed matches the configured value exactly.
	speed := pm.difficulty.Speed(pm.cfg.Physics.BaseSpeed, score, ticks)
	pm.scrollAcc += speed
	move := int(pm.scrollAcc)
	pm.scrollAcc -= float64(move)

	for i := range pm.pipes {
		pm.pipes[i].X -= move
	}

	pipeWidth := pm.cfg.Obstacles.PipeWidth

	// Check for passed pairs (pair fully left of the player's right edge)
	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+pipeWidth < playerX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	// Remove pairs that have moved off the left side
	validPipes := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+pipeWidth > 0 {
			validPipes = append(validPipes, p)
		}
	}
	pm.pipes = validPipes

	pm.spawnTimer--
	if pm.spawnTimer < 0 {
		pm.spawnPipe(score, ticks)
		pm.spawnTimer = pm.difficulty.Interval(pm.cfg.Obstacles.SpawnInterval, score, ticks)
	}

	return passed
}

// spawnPipe creates a new pair just past the right edge of the screen.
func (pm *PipeManager) spawnPipe(score, ticks int) {
	// Difficulty shrinks the upper bound of the gap range
	maxGap := pm.cfg.Obstacles.MaxGapSize
	currentGap := pm.difficulty.GapSize(maxGap, score, ticks)

	minGap := pm.cfg.Obstacles.MinGapSize
	if currentGap < minGap {
		currentGap = minGap
	}

	gapRange := currentGap - minGap
	gapHeight := minGap
	if gapRange > 0 {
		gapHeight = minGap + pm.rng.Intn(gapRange+1)
	}

	// Valid vertical range for the gap, keeping clear of the top margin
	// and the ground
	fieldH := pm.screenH - 1
	topMargin := pm.cfg.Obstacles.TopMargin
	bottomMargin := pm.cfg.Obstacles.BottomMargin
	minGapY := topMargin
	maxGapY := fieldH - bottomMargin - gapHeight

	if maxGapY < minGapY {
		maxGapY = minGapY // Edge case for very small screens
	}

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.screenW,
		GapY:      gapY,
		GapHeight: gapHeight,
		Passed:    false,
	})
}

// Pipes returns the current list of pairs.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle collides with any pair.
func (pm *PipeManager) CheckCollision(playerRect core.Rect, groundY int) bool {
	pipeWidth := pm.cfg.Obstacles.PipeWidth
	for _, p := range pm.pipes {
		if playerRect.Intersects(p.TopRect(pipeWidth)) || playerRect.Intersects(p.BottomRect(pipeWidth, groundY)) {
			return true
		}
	}
	return false
}
