package engine

import "reflect"

type EventType int

const (
	EventDealerSelected EventType = iota
	EventCardsDealt
	EventBidMade
	EventBidPassed
	EventTrumpDeclared
	EventCardsDiscarded
	EventSecondDeal
	EventDealerRobbed
	EventCardPlayed
	EventTrickWon
	EventHandScored
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventDealerSelected:
		return "dealer_selected"
	case EventCardsDealt:
		return "cards_dealt"
	case EventBidMade:
		return "bid_made"
	case EventBidPassed:
		return "bid_passed"
	case EventTrumpDeclared:
		return "trump_declared"
	case EventCardsDiscarded:
		return "cards_discarded"
	case EventSecondDeal:
		return "second_deal"
	case EventDealerRobbed:
		return "dealer_robbed"
	case EventCardPlayed:
		return "card_played"
	case EventTrickWon:
		return "trick_won"
	case EventHandScored:
		return "hand_scored"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one entry of the append-only log. Only the fields relevant to
// the type are set. Deal events carry the dealt hands plus the remaining
// stock order, so the log alone reconstructs state without consulting the
// RNG.
type Event struct {
	Type      EventType
	Position  Position
	Dealer    Position
	Card      *Card
	Suit      Suit
	Amount    int
	Points    int
	Cards     []Card
	Discarded []Card
	Hands     [4][]Card
	Stock     []Card
	Team      Team
	TwoHolder *Position
	TwoPoints int
	Winner    Team
	Scores    [2]int
}

// record folds e into g and appends it to the log.
func record(g *GameState, e Event) {
	applyEvent(g, e)
	g.Events = append(g.Events, e)
}

// applyEvent is the pure reducer: it performs exactly the state change the
// live path performs, with no validation and no randomness. Every mutation
// of GameState goes through here, which is what makes Replay exact.
func applyEvent(g *GameState, e Event) {
	switch e.Type {
	case EventDealerSelected:
		reduceDealerSelected(g, e)
	case EventCardsDealt:
		reduceCardsDealt(g, e)
	case EventBidMade:
		reduceBidMade(g, e)
	case EventBidPassed:
		reduceBidPassed(g, e)
	case EventTrumpDeclared:
		reduceTrumpDeclared(g, e)
	case EventCardsDiscarded:
		reduceCardsDiscarded(g, e)
	case EventSecondDeal:
		reduceSecondDeal(g, e)
	case EventDealerRobbed:
		reduceDealerRobbed(g, e)
	case EventCardPlayed:
		reduceCardPlayed(g, e)
	case EventTrickWon:
		reduceTrickWon(g, e)
	case EventHandScored:
		reduceHandScored(g, e)
	case EventGameOver:
		reduceGameOver(g, e)
	}
}

// Replay folds an event log into the state it produced. Given the same
// config, seed and events it reconstructs the live state exactly.
func Replay(cfg Config, seed int64, events []Event) GameState {
	g := NewGame(cfg, seed)
	for _, e := range events {
		record(&g, e)
	}
	return g
}

// Undo returns the state as of the penultimate event.
func Undo(g GameState) (GameState, error) {
	if len(g.Events) == 0 {
		return g, ErrNoHistory
	}
	return Replay(g.Config, g.Seed, g.Events[:len(g.Events)-1]), nil
}

// StatesEqual compares two states observationally, normalizing the
// nil-versus-empty slice distinction that value copying leaves behind.
func StatesEqual(a, b GameState) bool {
	return reflect.DeepEqual(a.clone(), b.clone())
}
