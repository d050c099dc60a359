package engine

// applyDeclareTrump sets the trump suit and immediately runs the discard
// cascade: every seat's non-trump cards are swept away automatically, and
// if no seat holds more trumps than the final hand size the second deal
// follows in the same step. Only an over-limit seat pauses the cascade for
// an explicit discard.
func applyDeclareTrump(g *GameState, pos Position, suit Suit) error {
	if g.Phase != PhaseDeclaring {
		return ErrInvalidPhase
	}
	if g.Turn == nil || *g.Turn != pos {
		return ErrNotYourTurn
	}
	record(g, Event{Type: EventTrumpDeclared, Position: pos, Suit: suit})
	discardNonTrumps(g)
	if g.Turn == nil {
		return runSecondDeal(g)
	}
	return nil
}

// discardNonTrumps sweeps every seat's non-trump cards to the shared
// discard pile in one event per affected seat.
func discardNonTrumps(g *GameState) {
	for i := range g.Players {
		off := g.Players[i].NonTrumpCards(*g.TrumpSuit)
		if len(off) == 0 {
			continue
		}
		record(g, Event{Type: EventCardsDiscarded, Position: Position(i), Cards: off})
	}
}

// firstOverLimit finds the first non-dealer seat still holding more trumps
// than the final hand size, scanning clockwise from the dealer's left. The
// dealer is exempt: a dealer surplus resolves in the pack rob instead.
func firstOverLimit(g GameState) *Position {
	seat := g.Dealer.Next()
	for i := 0; i < 3; i++ {
		if len(g.Players[seat].TrumpCards(*g.TrumpSuit)) > g.Config.FinalHandSize {
			s := seat
			return &s
		}
		seat = seat.Next()
	}
	return nil
}

// applyDiscard handles an explicit surplus-trump discard by an over-limit
// seat, then resumes the cascade.
func applyDiscard(g *GameState, pos Position, discards []Card) error {
	if g.Phase != PhaseDiscarding {
		return ErrInvalidPhase
	}
	if g.Turn == nil || *g.Turn != pos {
		return ErrNotYourTurn
	}
	hand := g.Players[pos].Hand
	if err := ValidateDiscard(hand, discards, *g.TrumpSuit, g.Config.FinalHandSize); err != nil {
		return err
	}
	record(g, Event{Type: EventCardsDiscarded, Position: pos, Cards: discards})
	if g.Turn == nil {
		return runSecondDeal(g)
	}
	return nil
}

// ValidateDiscard checks a surplus-trump discard: every discard must come
// from the hand, exactly finalSize cards must remain, and a point card may
// only go when no non-point trump could have gone in its place.
func ValidateDiscard(hand, discards []Card, trump Suit, finalSize int) error {
	remaining := append([]Card(nil), hand...)
	for _, c := range discards {
		if !removeFirst(&remaining, c) {
			return ErrInvalidAction
		}
	}
	if len(remaining) != finalSize {
		return ErrInvalidAction
	}
	for _, c := range discards {
		if PointValue(c, trump) == 0 {
			continue
		}
		for _, k := range remaining {
			if IsTrump(k, trump) && PointValue(k, trump) == 0 {
				return ErrPointCard
			}
		}
	}
	return nil
}

func reduceTrumpDeclared(g *GameState, e Event) {
	s := e.Suit
	g.TrumpSuit = &s
	g.Phase = PhaseDiscarding
	g.Turn = firstOverLimit(*g)
}

// reduceCardsDiscarded routes the cards off the hand: trumps a seat was
// forced to part with land face-down on that seat's killed stack, swept
// non-trumps join the shared discard pile. Afterward the turn points at
// the next over-limit seat, if any remains.
func reduceCardsDiscarded(g *GameState, e Event) {
	p := &g.Players[e.Position]
	for _, c := range e.Cards {
		removeFirst(&p.Hand, c)
		if IsTrump(c, *g.TrumpSuit) {
			g.KilledCards[e.Position] = append(g.KilledCards[e.Position], c)
		} else {
			g.DiscardedCards = append(g.DiscardedCards, c)
		}
	}
	if g.Phase == PhaseDiscarding {
		g.Turn = firstOverLimit(*g)
	}
}

// runSecondDeal tops up the three non-dealer seats to the final hand size
// from the stock. The dealer takes no cards here: the whole remaining stock
// is the dealer's to rob.
func runSecondDeal(g *GameState) error {
	var hands [4][]Card
	d := g.Deck
	seat := g.Dealer.Next()
	for i := 0; i < 3; i++ {
		need := g.Config.FinalHandSize - len(g.Players[seat].Hand)
		if need > 0 {
			var cards []Card
			cards, d = d.DealBatch(need)
			hands[seat] = append(append([]Card(nil), g.Players[seat].Hand...), cards...)
		} else {
			hands[seat] = append([]Card(nil), g.Players[seat].Hand...)
		}
		seat = seat.Next()
	}
	hands[*g.Dealer] = append([]Card(nil), g.Players[*g.Dealer].Hand...)
	record(g, Event{Type: EventSecondDeal, Dealer: *g.Dealer, Hands: hands, Stock: d.Cards})
	return maybeFinishHand(g)
}

func reduceSecondDeal(g *GameState, e Event) {
	for i := range g.Players {
		g.Players[i].Hand = append([]Card(nil), e.Hands[i]...)
	}
	g.Deck = Deck{Cards: append([]Card(nil), e.Stock...), Shuffled: true}
	g.Phase = PhaseSecondDeal
	dealer := *g.Dealer
	if g.Deck.Remaining() > 0 || len(g.Players[dealer].Hand) > g.Config.FinalHandSize {
		g.Turn = &dealer
		return
	}
	// Stock exhausted and the dealer fits the limit; nothing to rob.
	startPlaying(g)
}

// applyRobPack lets the dealer pick a final hand from hand plus the whole
// remaining stock. The kept set is validated to be exactly the pool's best
// legal size; everything else is killed.
func applyRobPack(g *GameState, pos Position, kept []Card) error {
	if g.Phase != PhaseSecondDeal {
		return ErrInvalidPhase
	}
	if g.Turn == nil || *g.Turn != pos {
		return ErrNotYourTurn
	}
	pool := append(append([]Card(nil), g.Players[pos].Hand...), g.Deck.Cards...)
	want := g.Config.FinalHandSize
	if len(pool) < want {
		want = len(pool)
	}
	if len(kept) != want {
		return ErrInvalidAction
	}
	rest := append([]Card(nil), pool...)
	for _, c := range kept {
		if !removeFirst(&rest, c) {
			return ErrInvalidAction
		}
	}
	record(g, Event{Type: EventDealerRobbed, Position: pos, Cards: kept, Discarded: rest})
	return maybeFinishHand(g)
}

// reduceDealerRobbed installs the dealer's chosen hand. The rejects land on
// the dealer's killed stack, rejected trumps included, which is why the top
// killed card stays visible for the available-points count.
func reduceDealerRobbed(g *GameState, e Event) {
	g.Players[e.Position].Hand = append([]Card(nil), e.Cards...)
	g.KilledCards[e.Position] = append(g.KilledCards[e.Position], e.Discarded...)
	g.Deck = Deck{Shuffled: true}
	startPlaying(g)
}

// startPlaying opens trick play with the high bidder leading, skipping
// seats with no trump left.
func startPlaying(g *GameState) {
	g.Phase = PhasePlaying
	g.Turn = nextWithTrump(g, g.HighestBid.Position)
}

// nextWithTrump returns the first active seat at or after from that can
// still play, eliminating trumpless seats it passes over. Nil when no seat
// holds trump.
func nextWithTrump(g *GameState, from Position) *Position {
	if !anyTrumpHeld(*g) {
		return nil
	}
	seat := from
	for i := 0; i < 4; i++ {
		p := &g.Players[seat]
		if p.Active() {
			if p.HasTrump(*g.TrumpSuit) {
				s := seat
				return &s
			}
			p.Eliminate()
		}
		seat = seat.Next()
	}
	return nil
}

func anyTrumpHeld(g GameState) bool {
	for _, p := range g.Players {
		if p.Active() && p.HasTrump(*g.TrumpSuit) {
			return true
		}
	}
	return false
}

// SelectBestCards picks the n strongest cards from pool under trump,
// preferring trumps, then higher point value, then higher rank.
func SelectBestCards(pool []Card, trump Suit, n int) []Card {
	sorted := append([]Card(nil), pool...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && keepKeyLess(sorted[j], sorted[j-1], trump); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func keepKeyLess(a, b Card, trump Suit) bool {
	at, bt := IsTrump(a, trump), IsTrump(b, trump)
	if at != bt {
		return at
	}
	ap, bp := PointValue(a, trump), PointValue(b, trump)
	if ap != bp {
		return ap > bp
	}
	return a.Rank > b.Rank
}
