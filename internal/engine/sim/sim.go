package sim

import (
	"fmt"
	"math/rand"

	"github.com/marcelfahle/pidro-backend-sub001/internal/engine"
)

type ActionRecord struct {
	Step  int
	Phase engine.Phase
	Pos   engine.Position
	A     engine.Action
}

// RunSelfPlayGames drives whole games with random legal actions, checking
// structural invariants after every step and replay fidelity at game end.
func RunSelfPlayGames(seed int64, games int, maxSteps int) error {
	for g := 0; g < games; g++ {
		gameSeed := seed + int64(g)
		if err := runOneGame(gameSeed, maxSteps); err != nil {
			return err
		}
	}
	return nil
}

func runOneGame(seed int64, maxSteps int) error {
	state := engine.NewGame(engine.DefaultConfig(), seed)
	rng := rand.New(rand.NewSource(seed))
	records := []ActionRecord{}

	for step := 0; step < maxSteps; step++ {
		if state.Phase == engine.PhaseComplete {
			return checkFinished(seed, step, state, records)
		}
		pos, action, err := chooseAction(state, rng)
		if err != nil {
			return failure(seed, step, state.Phase, -1, records, err.Error())
		}
		next, err := engine.ApplyAction(state, pos, action)
		if err != nil {
			return failure(seed, step, state.Phase, pos, records, fmt.Sprintf("apply error: %v", err))
		}
		records = append(records, ActionRecord{Step: step, Phase: next.Phase, Pos: pos, A: action})
		if err := checkInvariants(next); err != nil {
			return failure(seed, step, next.Phase, pos, records, err.Error())
		}
		state = next
	}
	return failure(seed, maxSteps, state.Phase, -1, records, "game did not finish")
}

func chooseAction(state engine.GameState, rng *rand.Rand) (engine.Position, engine.Action, error) {
	if state.Phase == engine.PhaseDealerSelection {
		return engine.North, engine.Action{Type: engine.ActionSelectDealer}, nil
	}
	pos, ok := engine.CurrentPlayer(state)
	if !ok {
		return 0, engine.Action{}, fmt.Errorf("no current player")
	}
	legal := engine.LegalActions(state, pos)
	if len(legal) == 0 {
		return pos, engine.Action{}, fmt.Errorf("no legal actions for %v", pos)
	}
	return pos, legal[rng.Intn(len(legal))], nil
}

func checkInvariants(state engine.GameState) error {
	if state.Phase == engine.PhaseDealerSelection {
		return nil
	}
	total, dup := countCards(state)
	if total != 52 {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if state.CurrentTrick != nil && len(state.CurrentTrick.Plays) > 4 {
		return fmt.Errorf("invalid trick size: %d", len(state.CurrentTrick.Plays))
	}
	if state.HandPoints[0]+state.HandPoints[1] > 14 {
		return fmt.Errorf("hand points overflow: %v", state.HandPoints)
	}
	if avail := engine.TotalAvailablePoints(state); state.HandPoints[0]+state.HandPoints[1] > avail {
		return fmt.Errorf("hand points %v exceed available %d", state.HandPoints, avail)
	}
	for i, p := range state.Players {
		if state.Phase == engine.PhasePlaying && len(p.Hand) > state.Config.FinalHandSize {
			return fmt.Errorf("seat %d hand too large: %d", i, len(p.Hand))
		}
		if p.Eliminated && state.Phase == engine.PhasePlaying {
			if p.HasTrump(*state.TrumpSuit) {
				return fmt.Errorf("seat %d eliminated while holding trump", i)
			}
		}
	}
	if state.HighestBid != nil {
		if state.HighestBid.Amount < state.Config.MinBid || state.HighestBid.Amount > state.Config.MaxBid {
			return fmt.Errorf("contract out of window: %d", state.HighestBid.Amount)
		}
	}
	return nil
}

func checkFinished(seed int64, step int, state engine.GameState, records []ActionRecord) error {
	if state.Winner == nil {
		return failure(seed, step, state.Phase, -1, records, "complete game without winner")
	}
	if state.CumulativeScores[*state.Winner] < state.Config.WinningScore {
		return failure(seed, step, state.Phase, -1, records,
			fmt.Sprintf("winner below winning score: %v", state.CumulativeScores))
	}
	replayed := engine.Replay(state.Config, state.Seed, state.Events)
	if !engine.StatesEqual(state, replayed) {
		return failure(seed, step, state.Phase, -1, records, "replay diverged from live state")
	}
	return nil
}

func countCards(state engine.GameState) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, p := range state.Players {
		for _, c := range p.Hand {
			add(c)
		}
	}
	for _, c := range state.Deck.Cards {
		add(c)
	}
	for _, c := range state.DiscardedCards {
		add(c)
	}
	for _, stack := range state.KilledCards {
		for _, c := range stack {
			add(c)
		}
	}
	if state.CurrentTrick != nil {
		for _, p := range state.CurrentTrick.Plays {
			add(p.Card)
		}
	}
	for _, r := range state.Tricks {
		for _, p := range r.Plays {
			add(p.Card)
		}
	}
	return total, dup
}

func failure(seed int64, step int, phase engine.Phase, pos engine.Position, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[s%d %v %v] %v\n", r.Step, r.Pos, r.Phase, r.A.Type)
	}
	return fmt.Errorf("seed=%d step=%d phase=%v pos=%v reason=%s\nlast actions:\n%s",
		seed, step, phase, pos, reason, log)
}
