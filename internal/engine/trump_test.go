package engine

import (
	"math/rand"
	"testing"
)

func TestValidateDiscard(t *testing.T) {
	trump := SuitHearts
	hand := []Card{
		{RankA, SuitHearts}, {RankK, SuitHearts}, {RankQ, SuitHearts},
		{Rank9, SuitHearts}, {Rank8, SuitHearts}, {Rank7, SuitHearts},
		{Rank6, SuitHearts}, {Rank3, SuitHearts},
	}
	if err := ValidateDiscard(hand, []Card{{Rank3, SuitHearts}, {Rank6, SuitHearts}}, trump, 6); err != nil {
		t.Fatalf("legal discard rejected: %v", err)
	}
	if err := ValidateDiscard(hand, []Card{{Rank3, SuitHearts}}, trump, 6); err != ErrInvalidAction {
		t.Fatalf("short discard should fail, got %v", err)
	}
	if err := ValidateDiscard(hand, []Card{{Rank3, SuitSpades}, {Rank6, SuitHearts}}, trump, 6); err != ErrInvalidAction {
		t.Fatalf("discarding a card not in hand should fail, got %v", err)
	}
	if err := ValidateDiscard(hand, []Card{{RankA, SuitHearts}, {Rank6, SuitHearts}}, trump, 6); err != ErrPointCard {
		t.Fatalf("discarding the ace with spare non-point trumps should fail, got %v", err)
	}
}

func TestValidateDiscardPointCardOnlyWhenForced(t *testing.T) {
	trump := SuitHearts
	// Seven point trumps and one spare: one point card has to go.
	hand := []Card{
		{Rank5, SuitHearts}, {Rank5, SuitDiamonds}, {RankA, SuitHearts},
		{RankJ, SuitHearts}, {Rank10, SuitHearts}, {Rank2, SuitHearts},
		{RankK, SuitHearts}, {RankQ, SuitHearts},
	}
	if err := ValidateDiscard(hand, []Card{{RankK, SuitHearts}, {Rank2, SuitHearts}}, trump, 6); err != ErrPointCard {
		t.Fatalf("point discard with a spare non-point trump kept should fail, got %v", err)
	}
	if err := ValidateDiscard(hand, []Card{{Rank2, SuitHearts}, {Rank10, SuitHearts}}, trump, 6); err != nil {
		t.Fatalf("forced point discard rejected: %v", err)
	}
}

func TestSelectBestCards(t *testing.T) {
	trump := SuitSpades
	pool := []Card{
		{RankA, SuitHearts}, {Rank5, SuitSpades}, {Rank3, SuitSpades},
		{RankK, SuitDiamonds}, {RankJ, SuitSpades}, {Rank5, SuitClubs},
		{Rank9, SuitSpades}, {Rank4, SuitClubs},
	}
	got := SelectBestCards(pool, trump, 6)
	if len(got) != 6 {
		t.Fatalf("selected %d cards, want 6", len(got))
	}
	for _, c := range got {
		if !IsTrump(c, trump) {
			t.Fatalf("non-trump %v kept while trumps were available", c)
		}
	}
	// Fives first, then the jack, then plain trumps by rank.
	if got[0] != (Card{Rank5, SuitSpades}) || got[1] != (Card{Rank5, SuitClubs}) {
		t.Fatalf("fives should head the selection, got %v", got[:2])
	}
	if got[2] != (Card{RankJ, SuitSpades}) {
		t.Fatalf("jack should follow the fives, got %v", got[2])
	}
}

func TestSelectBestCardsRobPool(t *testing.T) {
	trump := SuitHearts
	pool := []Card{
		{RankA, SuitHearts}, {RankK, SuitHearts}, {Rank5, SuitHearts},
		{Rank5, SuitDiamonds}, {Rank9, SuitHearts}, {Rank8, SuitHearts},
		{Rank7, SuitHearts},
	}
	got := SelectBestCards(pool, trump, 6)
	want := []Card{
		{Rank5, SuitHearts}, {Rank5, SuitDiamonds}, {RankA, SuitHearts},
		{RankK, SuitHearts}, {Rank9, SuitHearts}, {Rank8, SuitHearts},
	}
	if len(got) != len(want) {
		t.Fatalf("selected %d cards, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSelectBestCardsShortPool(t *testing.T) {
	got := SelectBestCards([]Card{{Rank2, SuitHearts}}, SuitHearts, 6)
	if len(got) != 1 {
		t.Fatalf("short pool should return everything, got %d", len(got))
	}
}

func TestDeclareTrumpSweepsNonTrumps(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	g := advanceTo(t, NewGame(DefaultConfig(), 61), PhaseDeclaring, rng)
	declarer := *g.Turn
	suit := SuitHearts
	g = mustApply(t, g, declarer, Action{Type: ActionDeclareTrump, Suit: &suit})

	if g.TrumpSuit == nil || *g.TrumpSuit != suit {
		t.Fatalf("trump suit not set")
	}
	for i, p := range g.Players {
		for _, c := range p.Hand {
			if !IsTrump(c, suit) {
				t.Fatalf("seat %d still holds non-trump %v", i, c)
			}
		}
	}
	for _, c := range g.DiscardedCards {
		if IsTrump(c, suit) {
			t.Fatalf("trump %v in the shared discard pile", c)
		}
	}
	for i, stack := range g.KilledCards {
		for _, c := range stack {
			if !IsTrump(c, suit) {
				t.Fatalf("non-trump %v on seat %d killed stack", c, i)
			}
		}
	}
	assertCardConservation(t, g)
}

func TestSecondDealTopsUpNonDealers(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	g := advanceTo(t, NewGame(DefaultConfig(), 77), PhaseSecondDeal, rng)
	dealer := *g.Dealer
	for i, p := range g.Players {
		if Position(i) == dealer {
			continue
		}
		if len(p.Hand) != g.Config.FinalHandSize {
			t.Fatalf("seat %d has %d cards after the second deal, want %d", i, len(p.Hand), g.Config.FinalHandSize)
		}
	}
	if g.Turn == nil || *g.Turn != dealer {
		t.Fatalf("dealer should be on turn to rob, turn = %v", g.Turn)
	}
	assertCardConservation(t, g)
}

func TestDealerRobKeepsBestAndKillsRest(t *testing.T) {
	rng := rand.New(rand.NewSource(91))
	g := advanceTo(t, NewGame(DefaultConfig(), 91), PhaseSecondDeal, rng)
	dealer := *g.Dealer
	pool := append(append([]Card(nil), g.Players[dealer].Hand...), g.Deck.Cards...)
	killedBefore := len(g.KilledCards[dealer])

	acts := LegalActions(g, dealer)
	if len(acts) != 1 || acts[0].Type != ActionRobPack {
		t.Fatalf("expected a single rob offer, got %v", acts)
	}
	g = mustApply(t, g, dealer, acts[0])

	want := g.Config.FinalHandSize
	if len(pool) < want {
		want = len(pool)
	}
	if len(g.Players[dealer].Hand) != want {
		t.Fatalf("dealer kept %d cards, want %d", len(g.Players[dealer].Hand), want)
	}
	if g.Deck.Remaining() != 0 {
		t.Fatalf("stock should be empty after the rob")
	}
	if got := len(g.KilledCards[dealer]) - killedBefore; got != len(pool)-want {
		t.Fatalf("dealer killed %d cards, want %d", got, len(pool)-want)
	}
	if g.Phase != PhasePlaying && g.Phase != PhaseBidding && g.Phase != PhaseComplete {
		t.Fatalf("phase = %v after rob", g.Phase)
	}
	assertCardConservation(t, g)
}

func TestRobPackRejectsWrongSize(t *testing.T) {
	rng := rand.New(rand.NewSource(91))
	g := advanceTo(t, NewGame(DefaultConfig(), 91), PhaseSecondDeal, rng)
	dealer := *g.Dealer
	kept := append([]Card(nil), g.Players[dealer].Hand...)[:1]
	if _, err := ApplyAction(g, dealer, Action{Type: ActionRobPack, Cards: kept}); err != ErrInvalidAction {
		t.Fatalf("undersized keep should fail, got %v", err)
	}
}

// assertCardConservation checks that hands, stock, discards and killed
// stacks still partition the 52-card deck.
func assertCardConservation(t *testing.T, g GameState) {
	t.Helper()
	seen := map[Card]int{}
	total := 0
	add := func(cards []Card) {
		for _, c := range cards {
			seen[c]++
			total++
		}
	}
	for _, p := range g.Players {
		add(p.Hand)
	}
	add(g.Deck.Cards)
	add(g.DiscardedCards)
	for _, stack := range g.KilledCards {
		add(stack)
	}
	if g.CurrentTrick != nil {
		for _, p := range g.CurrentTrick.Plays {
			add([]Card{p.Card})
		}
	}
	for _, r := range g.Tricks {
		for _, p := range r.Plays {
			add([]Card{p.Card})
		}
	}
	if total != 52 {
		t.Fatalf("card conservation broken: %d cards accounted for", total)
	}
	for c, n := range seen {
		if n != 1 {
			t.Fatalf("card %v appears %d times", c, n)
		}
	}
}
