package engine

import "testing"

func TestSameColorSuitIsSelfInverse(t *testing.T) {
	for _, s := range []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades} {
		if got := SameColorSuit(SameColorSuit(s)); got != s {
			t.Fatalf("SameColorSuit not self-inverse for %v: got %v", s, got)
		}
		if SameColorSuit(s) == s {
			t.Fatalf("SameColorSuit(%v) returned the same suit", s)
		}
	}
}

func TestIsTrumpIncludesWrongFive(t *testing.T) {
	trump := SuitHearts
	if !IsTrump(Card{Rank5, SuitDiamonds}, trump) {
		t.Fatalf("five of diamonds should be trump when hearts are trump")
	}
	if IsTrump(Card{Rank5, SuitClubs}, trump) {
		t.Fatalf("five of clubs is not trump when hearts are trump")
	}
	if IsTrump(Card{Rank6, SuitDiamonds}, trump) {
		t.Fatalf("six of diamonds is not trump when hearts are trump")
	}
	count := 0
	for _, c := range orderedCards() {
		if IsTrump(c, trump) {
			count++
		}
	}
	if count != 14 {
		t.Fatalf("expected 14 trump cards, got %d", count)
	}
}

func TestTrumpOrdering(t *testing.T) {
	trump := SuitSpades
	order := []Card{
		{RankA, SuitSpades}, {RankK, SuitSpades}, {RankQ, SuitSpades},
		{RankJ, SuitSpades}, {Rank10, SuitSpades}, {Rank9, SuitSpades},
		{Rank8, SuitSpades}, {Rank7, SuitSpades}, {Rank6, SuitSpades},
		{Rank5, SuitSpades}, {Rank5, SuitClubs}, {Rank4, SuitSpades},
		{Rank3, SuitSpades}, {Rank2, SuitSpades},
	}
	for i := 0; i < len(order)-1; i++ {
		if Compare(order[i], order[i+1], trump) != 1 {
			t.Fatalf("%v should beat %v", order[i], order[i+1])
		}
		if Compare(order[i+1], order[i], trump) != -1 {
			t.Fatalf("%v should lose to %v", order[i+1], order[i])
		}
	}
}

func TestCompareTrumpBeatsNonTrump(t *testing.T) {
	trump := SuitHearts
	if Compare(Card{Rank2, SuitHearts}, Card{RankA, SuitSpades}, trump) != 1 {
		t.Fatalf("lowest trump should beat ace off-suit")
	}
	if Compare(Card{RankA, SuitSpades}, Card{RankK, SuitClubs}, trump) != 0 {
		t.Fatalf("two non-trump cards should compare equal")
	}
}

func TestPointValuesSumToFourteen(t *testing.T) {
	for _, trump := range []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades} {
		total := 0
		for _, c := range orderedCards() {
			total += PointValue(c, trump)
		}
		if total != maxHandPoints {
			t.Fatalf("trump %v: point total %d, want %d", trump, total, maxHandPoints)
		}
	}
}

func TestPointValueBreakdown(t *testing.T) {
	trump := SuitClubs
	cases := []struct {
		card Card
		want int
	}{
		{Card{Rank5, SuitClubs}, 5},
		{Card{Rank5, SuitSpades}, 5},
		{Card{RankA, SuitClubs}, 1},
		{Card{RankJ, SuitClubs}, 1},
		{Card{Rank10, SuitClubs}, 1},
		{Card{Rank2, SuitClubs}, 1},
		{Card{RankK, SuitClubs}, 0},
		{Card{RankA, SuitHearts}, 0},
		{Card{Rank5, SuitHearts}, 0},
	}
	for _, tc := range cases {
		if got := PointValue(tc.card, trump); got != tc.want {
			t.Fatalf("PointValue(%v) = %d, want %d", tc.card, got, tc.want)
		}
	}
}
