package engine

import "math/rand"

type Phase int

const (
	PhaseDealerSelection Phase = iota
	PhaseDealing
	PhaseBidding
	PhaseDeclaring
	PhaseDiscarding
	PhaseSecondDeal
	PhasePlaying
	PhaseScoring
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseDealerSelection:
		return "dealer_selection"
	case PhaseDealing:
		return "dealing"
	case PhaseBidding:
		return "bidding"
	case PhaseDeclaring:
		return "declaring"
	case PhaseDiscarding:
		return "discarding"
	case PhaseSecondDeal:
		return "second_deal"
	case PhasePlaying:
		return "playing"
	case PhaseScoring:
		return "scoring"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Variant selects the rule set. Only the Finnish variant is implemented;
// it permits trump plays exclusively.
type Variant string

const VariantFinnish Variant = "finnish"

type Config struct {
	MinBid              int
	MaxBid              int
	WinningScore        int
	InitialDealCount    int
	FinalHandSize       int
	AllowNegativeScores bool
}

func DefaultConfig() Config {
	return Config{
		MinBid:              6,
		MaxBid:              14,
		WinningScore:        62,
		InitialDealCount:    9,
		FinalHandSize:       6,
		AllowNegativeScores: true,
	}
}

// Bid is one bidding-round entry. Pass entries carry no amount.
type Bid struct {
	Position Position
	Amount   int
	Pass     bool
}

// GameState is the aggregate. All transitions are pure: callers receive a
// fresh value and the input state is never mutated, so distinct states are
// fully independent and two games can advance concurrently with no
// coordination.
type GameState struct {
	Phase            Phase
	HandNumber       int
	Variant          Variant
	Seed             int64
	Players          [4]Player
	Dealer           *Position
	Turn             *Position
	Deck             Deck
	DiscardedCards   []Card
	Bids             []Bid
	HighestBid       *Bid
	BiddingTeam      *Team
	TrumpSuit        *Suit
	Tricks           []TrickResult
	CurrentTrick     *Trick
	TrickNumber      int
	HandPoints       [2]int
	CumulativeScores [2]int
	KilledCards      [4][]Card
	Winner           *Team
	Events           []Event
	Config           Config
}

// NewGame creates a fresh match in dealer selection with a seed-shuffled
// deck. The same config and seed always produce the same game.
func NewGame(cfg Config, seed int64) GameState {
	g := GameState{
		Phase:      PhaseDealerSelection,
		HandNumber: 1,
		Variant:    VariantFinnish,
		Seed:       seed,
		Config:     cfg,
		Deck:       NewDeck(rand.New(rand.NewSource(seed))),
	}
	for i := range g.Players {
		g.Players[i] = Player{Position: Position(i), Team: TeamOf(Position(i))}
	}
	return g
}

// clone deep-copies every live collection so the result shares no mutable
// storage with g. Events are append-only and their payloads immutable by
// convention, so the log is copied shallowly. Empty slices come back nil,
// which makes clone double as the normalizer behind StatesEqual.
func (g GameState) clone() GameState {
	ng := g
	for i := range ng.Players {
		ng.Players[i].Hand = append([]Card(nil), g.Players[i].Hand...)
		ng.Players[i].RevealedCards = append([]Card(nil), g.Players[i].RevealedCards...)
	}
	ng.Deck.Cards = append([]Card(nil), g.Deck.Cards...)
	ng.DiscardedCards = append([]Card(nil), g.DiscardedCards...)
	ng.Bids = append([]Bid(nil), g.Bids...)
	ng.Tricks = append([]TrickResult(nil), g.Tricks...)
	for i := range ng.Tricks {
		ng.Tricks[i].Plays = append([]TrickPlay(nil), g.Tricks[i].Plays...)
		if g.Tricks[i].TwoHolder != nil {
			p := *g.Tricks[i].TwoHolder
			ng.Tricks[i].TwoHolder = &p
		}
	}
	if g.CurrentTrick != nil {
		ct := *g.CurrentTrick
		ct.Plays = append([]TrickPlay(nil), g.CurrentTrick.Plays...)
		ng.CurrentTrick = &ct
	}
	for i := range ng.KilledCards {
		ng.KilledCards[i] = append([]Card(nil), g.KilledCards[i]...)
	}
	ng.Dealer = clonePosition(g.Dealer)
	ng.Turn = clonePosition(g.Turn)
	if g.HighestBid != nil {
		b := *g.HighestBid
		ng.HighestBid = &b
	}
	if g.BiddingTeam != nil {
		t := *g.BiddingTeam
		ng.BiddingTeam = &t
	}
	if g.TrumpSuit != nil {
		s := *g.TrumpSuit
		ng.TrumpSuit = &s
	}
	if g.Winner != nil {
		w := *g.Winner
		ng.Winner = &w
	}
	ng.Events = append([]Event(nil), g.Events...)
	return ng
}

// newHandRNG derives the shuffle source for a later hand from the game
// seed, so a whole match is a pure function of config and seed.
func newHandRNG(seed int64, hand int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(hand)))
}

func clonePosition(p *Position) *Position {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// resetHand clears per-hand fields while keeping cumulative scores, the
// dealer and the event log.
func resetHand(g *GameState) {
	for i := range g.Players {
		p := &g.Players[i]
		p.Hand = nil
		p.RevealedCards = nil
		p.Eliminated = false
		p.TricksWon = 0
	}
	g.DiscardedCards = nil
	g.Bids = nil
	g.HighestBid = nil
	g.BiddingTeam = nil
	g.TrumpSuit = nil
	g.Tricks = nil
	g.CurrentTrick = nil
	g.TrickNumber = 0
	g.HandPoints = [2]int{}
	g.KilledCards = [4][]Card{}
	g.Turn = nil
}
