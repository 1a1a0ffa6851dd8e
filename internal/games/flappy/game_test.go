package flappy

import (
	"testing"

	"flapterm/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     1,
	}
}

func containsEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	cfg := testConfig()
	cfg.Seed = 12345

	// Surge every 15 ticks to try to stay airborne
	inputSequence := make([]core.InputFrame, 200)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputSequence[i].Set(core.ActionFlap)
		}
	}

	g1 := New()
	g1.Reset(cfg)
	var state1 core.GameState
	for _, in := range inputSequence {
		result := g1.Step(in)
		state1 = result.State
		if state1.GameOver {
			break
		}
	}

	g2 := New()
	g2.Reset(cfg)
	var state2 core.GameState
	for _, in := range inputSequence {
		result := g2.Step(in)
		state2 = result.State
		if state2.GameOver {
			break
		}
	}

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.tickCount, g2.tickCount)
	}
}

func TestGameReset(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 42

	g := New()
	g.Reset(cfg)

	// Play a few ticks
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionFlap)
		}
		g.Step(in)
	}

	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if len(g.pipes.Pipes()) != 0 {
		t.Errorf("Reset should clear pipes, got %d", len(g.pipes.Pipes()))
	}
}

func TestGameSurgePhysics(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	initialY := g.playerY

	surge := core.NewInputFrame()
	surge.Set(core.ActionFlap)
	result := g.Step(surge)

	// Player should have moved up (negative Y direction)
	if g.playerY >= initialY {
		t.Errorf("Surge should move player up, was %f, now %f", initialY, g.playerY)
	}

	// Velocity should be negative (upward)
	if g.playerVel >= 0 {
		t.Errorf("Surge velocity should be negative, got %f", g.playerVel)
	}

	if !containsEvent(result.Events, core.EventFlap) {
		t.Error("Surge should emit a flap event")
	}
}

func TestGameSurgeReplacesVelocity(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Build up downward velocity, then surge
	g.playerY = 5
	noInput := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(noInput)
	}
	if g.playerVel <= 0 {
		t.Fatalf("expected downward velocity after falling, got %f", g.playerVel)
	}

	surge := core.NewInputFrame()
	surge.Set(core.ActionFlap)
	g.Step(surge)

	// The impulse overwrites velocity rather than adding to it, so the
	// result is the same whether the player was falling or rising.
	want := g.cfg.Physics.JumpImpulse + g.cfg.Physics.Gravity
	if g.playerVel != want {
		t.Errorf("velocity after surge = %f, want %f", g.playerVel, want)
	}
}

func TestGameGravity(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.playerY = 10
	g.playerVel = 0

	noInput := core.NewInputFrame()
	g.Step(noInput)

	// Player should have fallen
	if g.playerY <= 10 {
		t.Errorf("Gravity should pull player down, Y is still %f", g.playerY)
	}
	if g.playerVel <= 0 {
		t.Errorf("Velocity should be positive after gravity, got %f", g.playerVel)
	}
}

func TestGameFallSpeedClamp(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.playerY = 2 // High up so the fall lasts a while
	noInput := core.NewInputFrame()
	for i := 0; i < 30 && !g.gameOver; i++ {
		g.Step(noInput)
		if g.playerVel > g.cfg.Physics.MaxFallSpeed {
			t.Fatalf("velocity %f exceeds max fall speed %f", g.playerVel, g.cfg.Physics.MaxFallSpeed)
		}
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if !g.paused {
		t.Error("Game should be paused")
	}

	yBefore := g.playerY
	ticksBefore := g.tickCount

	noInput := core.NewInputFrame()
	g.Step(noInput)

	// Physics and the tick counter freeze while paused
	if g.playerY != yBefore {
		t.Errorf("Player position should not change while paused, was %f, now %f", yBefore, g.playerY)
	}
	if g.tickCount != ticksBefore {
		t.Errorf("Tick count should not advance while paused, was %d, now %d", ticksBefore, g.tickCount)
	}

	g.Step(pauseInput)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestGameOverOnGround(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	// Force the player into the ground
	g.playerY = float64(cfg.ScreenH - 1)
	g.playerVel = 10

	noInput := core.NewInputFrame()
	result := g.Step(noInput)

	if !result.State.GameOver {
		t.Error("Game should be over when player hits ground")
	}
	if !containsEvent(result.Events, core.EventCrash) {
		t.Error("Ground hit should emit a crash event")
	}

	// Position is clamped to rest on the ground, not below it
	if int(g.playerY)+g.cfg.Player.Height > cfg.ScreenH-1 {
		t.Errorf("player not clamped to ground, y=%f", g.playerY)
	}
}

func TestGameOverOnCeiling(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.playerY = 0.5
	g.playerVel = -3

	noInput := core.NewInputFrame()
	result := g.Step(noInput)

	if !result.State.GameOver {
		t.Error("Game should be over when player hits the top of the screen")
	}
	if g.playerY != 0 {
		t.Errorf("player should be clamped to the top, y=%f", g.playerY)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	g.playerY = float64(cfg.ScreenH)
	noInput := core.NewInputFrame()
	g.Step(noInput)
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	yAfter := g.playerY
	scoreAfter := g.score

	// Steps after the crash change nothing and emit nothing
	surge := core.NewInputFrame()
	surge.Set(core.ActionFlap)
	result := g.Step(surge)

	if g.playerY != yAfter || g.score != scoreAfter {
		t.Error("state should freeze after game over")
	}
	if len(result.Events) != 0 {
		t.Errorf("no events expected after game over, got %v", result.Events)
	}
}

func TestGameScoreEvents(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Inject a pair just ahead of the player with the gap aligned to the
	// player's rows so it is passed without a collision.
	g.pipes.pipes = append(g.pipes.pipes, Pipe{
		X:         g.cfg.Player.X - 3,
		GapY:      8,
		GapHeight: 12,
		Passed:    false,
	})
	g.playerY = 12

	noInput := core.NewInputFrame()
	scored := false
	for i := 0; i < 12 && !g.gameOver; i++ {
		result := g.Step(noInput)
		if containsEvent(result.Events, core.EventScore) {
			scored = true
			break
		}
	}

	if !scored {
		t.Fatal("passing a pair should emit a score event")
	}
	if g.score != 1 {
		t.Errorf("score = %d, want 1", g.score)
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// Screen should have content (not all spaces)
	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}

	// Ground line at the bottom row
	groundY := cfg.ScreenH - 1
	if screen.Get(0, groundY) != GroundChar {
		t.Errorf("Ground should be drawn at bottom, got %q", screen.Get(0, groundY))
	}
}

func TestPipeCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// A pair overlapping the player with the gap well above it
	g.pipes.pipes = append(g.pipes.pipes, Pipe{
		X:         g.cfg.Player.X - 1,
		GapY:      0,
		GapHeight: 5,
		Passed:    false,
	})
	g.playerY = 15 // Below the gap

	noInput := core.NewInputFrame()
	result := g.Step(noInput)

	if !result.State.GameOver {
		t.Error("Game should be over when player hits an obstacle column")
	}
	if !containsEvent(result.Events, core.EventCrash) {
		t.Error("Collision should emit a crash event")
	}
}
