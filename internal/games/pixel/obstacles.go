package pixel

import (
	"math/rand"

	"flapterm/internal/config"
	"flapterm/internal/core"
)

// Pair is one obstacle pair in canvas space: X and width are in columns,
// the gap position and height in pixels.
type Pair struct {
	X         int  // Horizontal position (left edge, columns)
	GapY      int  // Pixel row where the gap starts
	GapHeight int  // Gap height in pixels
	Passed    bool // Whether the player has passed this pair
}

// TopRect returns the collision rectangle for the top column. Width is
// in columns, height in pixels.
func (p Pair) TopRect(pipeWidth int) core.Rect {
	return core.NewRect(p.X, 0, pipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom column,
// extending from below the gap to the bottom canvas edge.
func (p Pair) BottomRect(pipeWidth, fieldH int) core.Rect {
	bottomY := p.GapY + p.GapHeight
	return core.NewRect(p.X, bottomY, pipeWidth, fieldH-bottomY)
}

// PairManager handles spawning, movement, scoring and removal of
// obstacle pairs on the canvas. It runs the same tick-countdown spawner
// as the cell-based variant, with gaps measured in pixels.
type PairManager struct {
	pairs      []Pair
	rng        *rand.Rand
	screenW    int
	fieldH     int // Canvas height in pixels
	spawnTimer int
	scrollAcc  float64
	cfg        *config.PixelConfig
	difficulty *config.DifficultyManager
}

// NewPairManager creates a pair manager for a field of screenW columns
// by fieldH pixels.
func NewPairManager(seed int64, screenW, fieldH int, cfg *config.PixelConfig, diff *config.DifficultyManager) *PairManager {
	pm := &PairManager{
		pairs:      make([]Pair, 0, 8),
		screenW:    screenW,
		fieldH:     fieldH,
		cfg:        cfg,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// UpdateConfig updates the configuration.
func (pm *PairManager) UpdateConfig(cfg *config.PixelConfig, diff *config.DifficultyManager) {
	pm.cfg = cfg
	pm.difficulty = diff
}

// Reset clears all pairs and resets the RNG and spawn timer.
func (pm *PairManager) Reset(seed int64) {
	pm.pairs = pm.pairs[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.spawnTimer = 0
	pm.scrollAcc = 0
}

// UpdateFieldSize updates the field dimensions.
func (pm *PairManager) UpdateFieldSize(screenW, fieldH int) {
	pm.screenW = screenW
	pm.fieldH = fieldH
}

// Update moves pairs left and spawns new ones as the timer expires.
// Returns the number of pairs passed this tick.
func (pm *PairManager) Update(playerX, score, ticks int) int {
	passed := 0

	speed := pm.difficulty.Speed(pm.cfg.Physics.BaseSpeed, score, ticks)
	pm.scrollAcc += speed
	move := int(pm.scrollAcc)
	pm.scrollAcc -= float64(move)

	for i := range pm.pairs {
		pm.pairs[i].X -= move
	}

	pipeWidth := pm.cfg.Obstacles.PipeWidth

	for i := range pm.pairs {
		if !pm.pairs[i].Passed && pm.pairs[i].X+pipeWidth < playerX {
			pm.pairs[i].Passed = true
			passed++
		}
	}

	valid := pm.pairs[:0]
	for _, p := range pm.pairs {
		if p.X+pipeWidth > 0 {
			valid = append(valid, p)
		}
	}
	pm.pairs = valid

	pm.spawnTimer--
	if pm.spawnTimer < 0 {
		pm.spawnPair(score, ticks)
		pm.spawnTimer = pm.difficulty.Interval(pm.cfg.Obstacles.SpawnInterval, score, ticks)
	}

	return passed
}

// spawnPair creates a new pair just past the right edge of the field.
func (pm *PairManager) spawnPair(score, ticks int) {
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

	minGapY := pm.cfg.Obstacles.TopMargin
	maxGapY := pm.fieldH - pm.cfg.Obstacles.BottomMargin - gapHeight
	if maxGapY < minGapY {
		maxGapY = minGapY
	}

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + pm.rng.Intn(maxGapY-minGapY+1)
	}

	pm.pairs = append(pm.pairs, Pair{
		X:         pm.screenW,
		GapY:      gapY,
		GapHeight: gapHeight,
	})
}

// Pairs returns the current list of pairs.
func (pm *PairManager) Pairs() []Pair {
	return pm.pairs
}

// CheckCollision tests if the given canvas-space rectangle collides with
// any pair.
func (pm *PairManager) CheckCollision(playerRect core.Rect) bool {
	pipeWidth := pm.cfg.Obstacles.PipeWidth
	for _, p := range pm.pairs {
		if playerRect.Intersects(p.TopRect(pipeWidth)) || playerRect.Intersects(p.BottomRect(pipeWidth, pm.fieldH)) {
			return true
		}
	}
	return false
}
