package engine

import (
	"math/rand"
	"testing"
)

func mustApply(t *testing.T, g GameState, pos Position, a Action) GameState {
	t.Helper()
	ng, err := ApplyAction(g, pos, a)
	if err != nil {
		t.Fatalf("ApplyAction(%v, %v): %v", pos, a.Type, err)
	}
	return ng
}

// stepOnce advances the game by one randomly chosen legal action. Returns
// false when no seat can act.
func stepOnce(g GameState, rng *rand.Rand) (GameState, bool) {
	if g.Phase == PhaseDealerSelection {
		ng, err := ApplyAction(g, North, Action{Type: ActionSelectDealer})
		return ng, err == nil
	}
	pos, ok := CurrentPlayer(g)
	if !ok {
		return g, false
	}
	acts := LegalActions(g, pos)
	if len(acts) == 0 {
		return g, false
	}
	ng, err := ApplyAction(g, pos, acts[rng.Intn(len(acts))])
	return ng, err == nil
}

// playFullGame drives a seeded game to completion with random legal moves.
func playFullGame(t *testing.T, seed int64) GameState {
	t.Helper()
	g := NewGame(DefaultConfig(), seed)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 20000; i++ {
		if g.Phase == PhaseComplete {
			return g
		}
		ng, ok := stepOnce(g, rng)
		if !ok {
			t.Fatalf("seed %d: stuck in phase %v after %d steps", seed, g.Phase, i)
		}
		g = ng
	}
	t.Fatalf("seed %d: game did not finish", seed)
	return g
}

// advanceTo steps the game until it reaches phase or fails.
func advanceTo(t *testing.T, g GameState, phase Phase, rng *rand.Rand) GameState {
	t.Helper()
	for i := 0; i < 20000; i++ {
		if g.Phase == phase {
			return g
		}
		ng, ok := stepOnce(g, rng)
		if !ok {
			t.Fatalf("stuck in phase %v waiting for %v", g.Phase, phase)
		}
		g = ng
	}
	t.Fatalf("never reached phase %v", phase)
	return g
}
