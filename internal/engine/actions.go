package engine

type ActionType int

const (
	ActionSelectDealer ActionType = iota
	ActionPass
	ActionBid
	ActionDeclareTrump
	ActionDiscard
	ActionRobPack
	ActionPlayCard
)

func (t ActionType) String() string {
	switch t {
	case ActionSelectDealer:
		return "select_dealer"
	case ActionPass:
		return "pass"
	case ActionBid:
		return "bid"
	case ActionDeclareTrump:
		return "declare_trump"
	case ActionDiscard:
		return "discard"
	case ActionRobPack:
		return "rob_pack"
	case ActionPlayCard:
		return "play_card"
	default:
		return "unknown"
	}
}

// Action is one player move. Only the fields the type needs are set.
type Action struct {
	Type  ActionType
	Bid   int
	Suit  *Suit
	Card  *Card
	Cards []Card
}

// ApplyAction is the engine's single entry point. It validates the action
// against state and pos, then returns the successor state; on error the
// input state comes back unchanged. The input is never mutated either way.
func ApplyAction(state GameState, pos Position, a Action) (GameState, error) {
	g := state.clone()
	var err error
	switch a.Type {
	case ActionSelectDealer:
		err = applySelectDealer(&g)
	case ActionPass, ActionBid:
		err = applyBidAction(&g, pos, a)
	case ActionDeclareTrump:
		if a.Suit == nil {
			err = ErrInvalidAction
		} else {
			err = applyDeclareTrump(&g, pos, *a.Suit)
		}
	case ActionDiscard:
		err = applyDiscard(&g, pos, a.Cards)
	case ActionRobPack:
		err = applyRobPack(&g, pos, a.Cards)
	case ActionPlayCard:
		if a.Card == nil {
			err = ErrInvalidAction
		} else {
			err = applyPlayCard(&g, pos, *a.Card)
		}
	default:
		err = ErrInvalidAction
	}
	if err != nil {
		return state, err
	}
	return g, nil
}

// CurrentPlayer returns the seat expected to act, if any.
func CurrentPlayer(g GameState) (Position, bool) {
	if g.Turn == nil {
		return 0, false
	}
	return *g.Turn, true
}

// LegalActions enumerates every action pos may take in the current state.
// Out of turn the answer is empty. For composite choices (discards, the
// dealer rob) the canonical keep-best selection is offered.
func LegalActions(g GameState, pos Position) []Action {
	switch g.Phase {
	case PhaseDealerSelection:
		return []Action{{Type: ActionSelectDealer}}
	case PhaseBidding:
		if g.Turn == nil || *g.Turn != pos {
			return nil
		}
		return legalBids(g, pos)
	case PhaseDeclaring:
		if g.Turn == nil || *g.Turn != pos {
			return nil
		}
		out := make([]Action, 0, 4)
		for _, s := range []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades} {
			suit := s
			out = append(out, Action{Type: ActionDeclareTrump, Suit: &suit})
		}
		return out
	case PhaseDiscarding:
		if g.Turn == nil || *g.Turn != pos {
			return nil
		}
		hand := g.Players[pos].Hand
		kept := SelectBestCards(hand, *g.TrumpSuit, g.Config.FinalHandSize)
		return []Action{{Type: ActionDiscard, Cards: complement(hand, kept)}}
	case PhaseSecondDeal:
		if g.Turn == nil || *g.Turn != pos {
			return nil
		}
		pool := append(append([]Card(nil), g.Players[pos].Hand...), g.Deck.Cards...)
		return []Action{{Type: ActionRobPack, Cards: SelectBestCards(pool, *g.TrumpSuit, g.Config.FinalHandSize)}}
	case PhasePlaying:
		if g.Turn == nil || *g.Turn != pos {
			return nil
		}
		return legalPlays(g, pos)
	default:
		return nil
	}
}

func legalBids(g GameState, pos Position) []Action {
	out := []Action{}
	if !(dealerMustBid(g) && pos == *g.Dealer) {
		out = append(out, Action{Type: ActionPass})
	}
	for amount := g.Config.MinBid; amount <= g.Config.MaxBid; amount++ {
		if validateBid(g, pos, amount) == nil {
			out = append(out, Action{Type: ActionBid, Bid: amount})
		}
	}
	return out
}

func legalPlays(g GameState, pos Position) []Action {
	out := []Action{}
	for _, c := range g.Players[pos].TrumpCards(*g.TrumpSuit) {
		card := c
		out = append(out, Action{Type: ActionPlayCard, Card: &card})
	}
	return out
}

// complement returns the cards of pool not in keep, respecting multiplicity.
func complement(pool, keep []Card) []Card {
	rest := append([]Card(nil), pool...)
	for _, c := range keep {
		removeFirst(&rest, c)
	}
	return rest
}
