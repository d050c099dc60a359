package engine

import "strconv"

type Suit int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

// SameColorSuit returns the other suit of the same color. The pairing is
// fixed and self-inverse: hearts<->diamonds, clubs<->spades.
func SameColorSuit(s Suit) Suit {
	switch s {
	case SuitHearts:
		return SuitDiamonds
	case SuitDiamonds:
		return SuitHearts
	case SuitClubs:
		return SuitSpades
	case SuitSpades:
		return SuitClubs
	default:
		panic("unknown suit")
	}
}

type Rank int

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

func (r Rank) String() string {
	switch r {
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsTrump reports whether c counts as trump. Besides the 13 cards of the
// trump suit, the rank-5 card of the same-color suit (the "wrong five") is
// trump as well, for 14 trump cards per hand.
func IsTrump(c Card, trump Suit) bool {
	return c.Suit == trump || (c.Rank == Rank5 && c.Suit == SameColorSuit(trump))
}

// trumpStrength is a strict total order key over trump cards:
// A>K>Q>J>10>9>8>7>6>right5>wrong5>4>3>2. Both fives share base rank 5 but
// the right five always outranks the wrong five.
func trumpStrength(c Card, trump Suit) int {
	if c.Rank == Rank5 {
		if c.Suit == trump {
			return 11
		}
		return 10
	}
	return int(c.Rank) * 2
}

// Compare orders a against b under trump: 1 when a wins, -1 when b wins.
// Any trump beats any non-trump; two non-trump cards are incomparable and
// compare as 0 (the engine never needs to rank them).
func Compare(a, b Card, trump Suit) int {
	at, bt := IsTrump(a, trump), IsTrump(b, trump)
	switch {
	case at && !bt:
		return 1
	case !at && bt:
		return -1
	case !at && !bt:
		return 0
	}
	sa, sb := trumpStrength(a, trump), trumpStrength(b, trump)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}

// PointValue returns the hand points c is worth under trump: 5 for either
// five, 1 for the trump ace, jack, ten and two, 0 for everything else.
// Exactly 14 points exist per hand.
func PointValue(c Card, trump Suit) int {
	if !IsTrump(c, trump) {
		return 0
	}
	switch c.Rank {
	case Rank5:
		return 5
	case RankA, RankJ, Rank10, Rank2:
		return 1
	default:
		return 0
	}
}
