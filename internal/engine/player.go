package engine

type Position int

const (
	North Position = iota
	East
	South
	West
)

func (p Position) String() string {
	switch p {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "?"
	}
}

// Next is the position clockwise of p.
func (p Position) Next() Position {
	return (p + 1) % 4
}

type Team int

const (
	NorthSouth Team = iota
	EastWest
)

func (t Team) String() string {
	switch t {
	case NorthSouth:
		return "north_south"
	case EastWest:
		return "east_west"
	default:
		return "?"
	}
}

func (t Team) Opponent() Team {
	return 1 - t
}

// TeamOf pairs north with south and east with west.
func TeamOf(p Position) Team {
	return Team(p % 2)
}

// Player is one seat's per-hand state. Eliminated ("cold") players stay in
// the state with their hand revealed but take no further turns this hand.
type Player struct {
	Position      Position
	Team          Team
	Hand          []Card
	Eliminated    bool
	RevealedCards []Card
	TricksWon     int
}

// AddCards appends to the hand in arrival order.
func (p *Player) AddCards(cards []Card) {
	p.Hand = append(p.Hand, cards...)
}

// RemoveCard deletes the first matching card only, so accidental duplicates
// are never over-deleted. No-op when the card is absent.
func (p *Player) RemoveCard(c Card) bool {
	return removeFirst(&p.Hand, c)
}

// TrumpCards returns the trump portion of the hand.
func (p Player) TrumpCards(trump Suit) []Card {
	out := []Card{}
	for _, c := range p.Hand {
		if IsTrump(c, trump) {
			out = append(out, c)
		}
	}
	return out
}

// NonTrumpCards is the complement of TrumpCards.
func (p Player) NonTrumpCards(trump Suit) []Card {
	out := []Card{}
	for _, c := range p.Hand {
		if !IsTrump(c, trump) {
			out = append(out, c)
		}
	}
	return out
}

func (p Player) HasTrump(trump Suit) bool {
	for _, c := range p.Hand {
		if IsTrump(c, trump) {
			return true
		}
	}
	return false
}

// Eliminate marks the player cold and snapshots the current hand as the
// revealed cards. Re-eliminating does not re-copy.
func (p *Player) Eliminate() {
	if p.Eliminated {
		return
	}
	p.Eliminated = true
	p.RevealedCards = append([]Card(nil), p.Hand...)
}

func (p Player) Active() bool {
	return !p.Eliminated
}

func (p *Player) IncrementTricksWon() {
	p.TricksWon++
}

func removeFirst(cards *[]Card, c Card) bool {
	for i, h := range *cards {
		if h == c {
			*cards = append((*cards)[:i], (*cards)[i+1:]...)
			return true
		}
	}
	return false
}

func containsCard(cards []Card, c Card) bool {
	for _, h := range cards {
		if h == c {
			return true
		}
	}
	return false
}
