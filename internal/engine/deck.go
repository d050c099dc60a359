package engine

import "math/rand"

// Deck is an ordered pile of cards consumed from the front.
type Deck struct {
	Cards    []Card
	Shuffled bool
}

// NewDeck returns the full 52-card deck in rng order.
func NewDeck(rng *rand.Rand) Deck {
	return Deck{Cards: orderedCards()}.Shuffle(rng)
}

func orderedCards() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades} {
		for r := Rank2; r <= RankA; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Shuffle returns a reordering of d preserving the multiset.
func (d Deck) Shuffle(rng *rand.Rand) Deck {
	cards := append([]Card(nil), d.Cards...)
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return Deck{Cards: cards, Shuffled: true}
}

// DealBatch removes the first n cards, or everything left when fewer remain.
func (d Deck) DealBatch(n int) ([]Card, Deck) {
	if n < 0 {
		panic("negative batch size")
	}
	if n > len(d.Cards) {
		n = len(d.Cards)
	}
	dealt := append([]Card(nil), d.Cards[:n]...)
	rest := Deck{Cards: append([]Card(nil), d.Cards[n:]...), Shuffled: d.Shuffled}
	return dealt, rest
}

// Draw is an alias for DealBatch.
func (d Deck) Draw(n int) ([]Card, Deck) {
	return d.DealBatch(n)
}

func (d Deck) Remaining() int {
	return len(d.Cards)
}
