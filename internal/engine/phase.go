package engine

// validNext is the static phase adjacency table. Only scoring branches:
// to dealing for the next hand, or to complete once a team has won.
var validNext = map[Phase][]Phase{
	PhaseDealerSelection: {PhaseDealing},
	PhaseDealing:         {PhaseBidding},
	PhaseBidding:         {PhaseDeclaring},
	PhaseDeclaring:       {PhaseDiscarding},
	PhaseDiscarding:      {PhaseSecondDeal},
	PhaseSecondDeal:      {PhasePlaying},
	PhasePlaying:         {PhaseScoring},
	PhaseScoring:         {PhaseDealing, PhaseComplete},
	PhaseComplete:        {},
}

// ValidTransition reports whether from -> to is on the phase graph.
func ValidTransition(from, to Phase) bool {
	for _, n := range validNext[from] {
		if n == to {
			return true
		}
	}
	return false
}

// NextPhase derives the successor from state content.
func NextPhase(g GameState) Phase {
	switch g.Phase {
	case PhaseScoring:
		if gameOver(g) {
			return PhaseComplete
		}
		return PhaseDealing
	case PhaseComplete:
		return PhaseComplete
	default:
		return validNext[g.Phase][0]
	}
}
