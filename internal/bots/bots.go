package bots

import (
	"math/rand"

	"github.com/marcelfahle/pidro-backend-sub001/internal/engine"
)

type Bot interface {
	ChooseAction(state engine.GameState, pos engine.Position) engine.Action
}

type EasyBot struct {
	RNG *rand.Rand
}

func NewEasy(seed int64) *EasyBot {
	return &EasyBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) ChooseAction(state engine.GameState, pos engine.Position) engine.Action {
	legal := engine.LegalActions(state, pos)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}
	return legal[b.RNG.Intn(len(legal))]
}

type NormalBot struct {
	RNG *rand.Rand
}

func NewNormal(seed int64) *NormalBot {
	return &NormalBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *NormalBot) ChooseAction(state engine.GameState, pos engine.Position) engine.Action {
	switch state.Phase {
	case engine.PhaseBidding:
		return bidByHeuristic(state, pos)
	case engine.PhaseDeclaring:
		return declareByHeuristic(state, pos)
	case engine.PhasePlaying:
		return playByHeuristic(state, pos)
	default:
		legal := engine.LegalActions(state, pos)
		if len(legal) == 0 {
			return engine.Action{Type: engine.ActionPass}
		}
		return legal[0]
	}
}

// bestSuit scores each candidate trump suit by the point cards held plus
// trump length, and returns the strongest.
func bestSuit(hand []engine.Card) (engine.Suit, int) {
	best := engine.SuitHearts
	bestScore := -1
	for _, s := range []engine.Suit{engine.SuitHearts, engine.SuitDiamonds, engine.SuitClubs, engine.SuitSpades} {
		score := 0
		for _, c := range hand {
			if !engine.IsTrump(c, s) {
				continue
			}
			score += engine.PointValue(c, s)*2 + 1
		}
		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best, bestScore
}

func bidByHeuristic(state engine.GameState, pos engine.Position) engine.Action {
	_, potential := bestSuit(state.Players[pos].Hand)
	amount := state.Config.MinBid + potential/3
	if amount > state.Config.MaxBid {
		amount = state.Config.MaxBid
	}
	legal := engine.LegalActions(state, pos)
	canPass := false
	bestBid := 0
	for _, a := range legal {
		if a.Type == engine.ActionPass {
			canPass = true
		}
		if a.Type == engine.ActionBid && a.Bid <= amount && a.Bid > bestBid {
			bestBid = a.Bid
		}
	}
	if bestBid > 0 && (state.HighestBid == nil || !canPass || potential >= 10) {
		return engine.Action{Type: engine.ActionBid, Bid: bestBid}
	}
	if canPass {
		return engine.Action{Type: engine.ActionPass}
	}
	// Forced dealer with a weak hand: bid the smallest legal amount.
	for _, a := range legal {
		if a.Type == engine.ActionBid {
			return a
		}
	}
	return engine.Action{Type: engine.ActionPass}
}

func declareByHeuristic(state engine.GameState, pos engine.Position) engine.Action {
	suit, _ := bestSuit(state.Players[pos].Hand)
	return engine.Action{Type: engine.ActionDeclareTrump, Suit: &suit}
}

func playByHeuristic(state engine.GameState, pos engine.Position) engine.Action {
	legal := engine.LegalActions(state, pos)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}
	trump := *state.TrumpSuit

	// Cheapest card that would currently take the trick.
	var winning *engine.Action
	for i, a := range legal {
		if a.Card == nil || !winsIfPlayed(state, *a.Card, trump) {
			continue
		}
		if winning == nil || engine.Compare(*a.Card, *winning.Card, trump) < 0 {
			winning = &legal[i]
		}
	}
	if winning != nil {
		return *winning
	}
	// Otherwise shed: lowest point value, then lowest rank.
	shed := legal[0]
	for _, a := range legal {
		if a.Card == nil || shed.Card == nil {
			continue
		}
		ap, sp := engine.PointValue(*a.Card, trump), engine.PointValue(*shed.Card, trump)
		if ap < sp || (ap == sp && engine.Compare(*a.Card, *shed.Card, trump) < 0) {
			shed = a
		}
	}
	return shed
}

func winsIfPlayed(state engine.GameState, card engine.Card, trump engine.Suit) bool {
	if state.CurrentTrick == nil {
		return true
	}
	for _, p := range state.CurrentTrick.Plays {
		if engine.Compare(p.Card, card, trump) > 0 {
			return false
		}
	}
	return true
}
