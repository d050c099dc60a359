package engine

// TrickPlay is one card laid into a trick.
type TrickPlay struct {
	Position Position
	Card     Card
}

// Trick is the in-flight play sequence of a single trick. Plays are
// append-only; at most four, fewer once seats have gone cold.
type Trick struct {
	Leader Position
	Plays  []TrickPlay
}

// Winner resolves the play whose card ranks greatest under trump. Ties are
// impossible: every trump card has a strict rank. A single-play trick is won
// trivially by its only player.
func (t Trick) Winner(trump Suit) (Position, error) {
	if len(t.Plays) == 0 {
		return 0, ErrIncompleteTrick
	}
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if Compare(p.Card, best.Card, trump) > 0 {
			best = p
		}
	}
	return best.Position, nil
}

// Points sums the trick's point cards, excluding the two of trump: its point
// stays with whoever played it, even when that player also wins the trick.
func (t Trick) Points(trump Suit) int {
	total := 0
	for _, p := range t.Plays {
		if p.Card.Rank == Rank2 && p.Card.Suit == trump {
			continue
		}
		total += PointValue(p.Card, trump)
	}
	return total
}

// TwoOfTrump returns who played the two of trump, if anyone did.
func (t Trick) TwoOfTrump(trump Suit) (Position, bool) {
	for _, p := range t.Plays {
		if p.Card.Rank == Rank2 && p.Card.Suit == trump {
			return p.Position, true
		}
	}
	return 0, false
}

// PlayBy returns the card pos played into the trick.
func (t Trick) PlayBy(pos Position) (Card, error) {
	for _, p := range t.Plays {
		if p.Position == pos {
			return p.Card, nil
		}
	}
	return Card{}, ErrNotFound
}

// TrickResult is a settled trick.
type TrickResult struct {
	Plays     []TrickPlay
	Winner    Position
	Points    int
	TwoHolder *Position
	TwoPoints int
}
