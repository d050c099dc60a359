package engine

import (
	"math/rand"
	"testing"
)

func TestSelectDealerDealsFirstHand(t *testing.T) {
	g := NewGame(DefaultConfig(), 42)
	g = mustApply(t, g, North, Action{Type: ActionSelectDealer})

	if g.Phase != PhaseBidding {
		t.Fatalf("phase = %v, want bidding", g.Phase)
	}
	if g.Dealer == nil {
		t.Fatalf("no dealer after selection")
	}
	for i, p := range g.Players {
		if len(p.Hand) != 9 {
			t.Fatalf("player %d has %d cards, want 9", i, len(p.Hand))
		}
	}
	if g.Deck.Remaining() != 16 {
		t.Fatalf("stock has %d cards, want 16", g.Deck.Remaining())
	}
	if g.Turn == nil || *g.Turn != g.Dealer.Next() {
		t.Fatalf("bidding should open left of dealer %v, turn = %v", *g.Dealer, g.Turn)
	}
}

func TestSelectDealerIsSeedDeterministic(t *testing.T) {
	a := mustApply(t, NewGame(DefaultConfig(), 11), North, Action{Type: ActionSelectDealer})
	b := mustApply(t, NewGame(DefaultConfig(), 11), North, Action{Type: ActionSelectDealer})
	if !StatesEqual(a, b) {
		t.Fatalf("same seed produced different opening states")
	}
}

func TestDealConservesDeck(t *testing.T) {
	g := mustApply(t, NewGame(DefaultConfig(), 5), North, Action{Type: ActionSelectDealer})
	seen := map[Card]bool{}
	total := 0
	for _, p := range g.Players {
		for _, c := range p.Hand {
			if seen[c] {
				t.Fatalf("card %v dealt twice", c)
			}
			seen[c] = true
			total++
		}
	}
	for _, c := range g.Deck.Cards {
		if seen[c] {
			t.Fatalf("card %v in both hand and stock", c)
		}
		seen[c] = true
		total++
	}
	if total != 52 {
		t.Fatalf("deal lost cards: %d accounted for", total)
	}
}

func TestRotateDealer(t *testing.T) {
	g := mustApply(t, NewGame(DefaultConfig(), 9), North, Action{Type: ActionSelectDealer})
	before := *g.Dealer
	ng, err := RotateDealer(g)
	if err != nil {
		t.Fatalf("RotateDealer: %v", err)
	}
	if *ng.Dealer != before.Next() {
		t.Fatalf("dealer = %v, want %v", *ng.Dealer, before.Next())
	}
	if ng.HandNumber != g.HandNumber+1 {
		t.Fatalf("hand number = %d, want %d", ng.HandNumber, g.HandNumber+1)
	}
	if *g.Dealer != before {
		t.Fatalf("RotateDealer mutated its input")
	}
}

func TestRotateDealerWithoutDealer(t *testing.T) {
	if _, err := RotateDealer(NewGame(DefaultConfig(), 1)); err != ErrNoDealer {
		t.Fatalf("expected ErrNoDealer, got %v", err)
	}
}

func TestDealHandsBatchesOfThree(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(2)))
	hands, rest := dealHands(d, West, 9)
	for i, h := range hands {
		if len(h) != 9 {
			t.Fatalf("seat %d got %d cards", i, len(h))
		}
	}
	if rest.Remaining() != 16 {
		t.Fatalf("stock = %d, want 16", rest.Remaining())
	}
	// Dealer's left gets the first batch off the top.
	for i := 0; i < 3; i++ {
		if hands[North][i] != d.Cards[i] {
			t.Fatalf("first batch should go left of dealer")
		}
	}
}
