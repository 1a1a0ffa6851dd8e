package pixel

import (
	"strings"
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
	cfg := testConfig()
	cfg.Seed = 777

	inputSequence := make([]core.InputFrame, 200)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%12 == 0 {
			inputSequence[i].Set(core.ActionFlap)
		}
	}

	run := func() (core.GameState, int) {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.tickCount
	}

	state1, ticks1 := run()
	state2, ticks2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
}

func TestGameFieldUsesPixelUnits(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	// One HUD row, the rest is canvas at two pixels per row
	wantField := (cfg.ScreenH - 1) * 2
	if g.fieldH() != wantField {
		t.Errorf("fieldH = %d, want %d", g.fieldH(), wantField)
	}
	if g.playerY != float64(wantField)/2 {
		t.Errorf("player starts at %f, want field middle %f", g.playerY, float64(wantField)/2)
	}
}

func TestGameSurge(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	initialY := g.playerY

	surge := core.NewInputFrame()
	surge.Set(core.ActionFlap)
	result := g.Step(surge)

	if g.playerY >= initialY {
		t.Errorf("Surge should move player up, was %f, now %f", initialY, g.playerY)
	}
	if !containsEvent(result.Events, core.EventFlap) {
		t.Error("Surge should emit a flap event")
	}
}

func TestGameOverOnBottomEdge(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	fieldH := g.fieldH()
	g.playerY = float64(fieldH - 1)
	g.playerVel = 10

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Game should be over at the bottom canvas edge")
	}
	if int(g.playerY)+g.cfg.Player.Height > fieldH {
		t.Errorf("player not clamped to the field, y=%f", g.playerY)
	}
	if !containsEvent(result.Events, core.EventCrash) {
		t.Error("Bottom hit should emit a crash event")
	}
}

func TestGameOverOnTopEdge(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.playerY = 1
	g.playerVel = -8

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Game should be over at the top canvas edge")
	}
	if g.playerY != 0 {
		t.Errorf("player should be clamped to the top, y=%f", g.playerY)
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
	g.Step(core.NewInputFrame())
	if g.playerY != yBefore {
		t.Errorf("Player position should not change while paused, was %f, now %f", yBefore, g.playerY)
	}

	g.Step(pauseInput)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestGamePlayerName(t *testing.T) {
	g := New()
	if g.PlayerName() != "" {
		t.Errorf("new game player name = %q, want empty", g.PlayerName())
	}

	g.SetPlayerName("ada")
	g.Reset(testConfig())

	if g.PlayerName() != "ada" {
		t.Errorf("player name = %q, want %q (must survive Reset)", g.PlayerName(), "ada")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "ada") {
		t.Errorf("HUD row %q should show the player name", screen.Row(0))
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, want score display", screen.Row(0))
	}

	// The player is drawn with half-block characters below the HUD
	foundBlock := false
	for y := 1; y < cfg.ScreenH && !foundBlock; y++ {
		for x := 0; x < cfg.ScreenW; x++ {
			switch screen.Get(x, y) {
			case BlockFull, BlockUpperHalf, BlockLowerHalf:
				foundBlock = true
			}
		}
	}
	if !foundBlock {
		t.Error("Render should draw the player with block characters")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.playerY = float64(g.fieldH())
	g.Step(core.NewInputFrame())
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	scoreAfter := g.score
	yAfter := g.playerY

	surge := core.NewInputFrame()
	surge.Set(core.ActionFlap)
	result := g.Step(surge)

	if g.score != scoreAfter || g.playerY != yAfter {
		t.Error("state should freeze after game over")
	}
	if len(result.Events) != 0 {
		t.Errorf("no events expected after game over, got %v", result.Events)
	}
}
