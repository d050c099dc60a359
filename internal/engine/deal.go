package engine

// applySelectDealer cuts for dealer and, in the same step, deals the first
// hand. The cut draws one card per seat off the top of the shuffled deck;
// the highest rank takes the deal, suit order breaking rank ties.
func applySelectDealer(g *GameState) error {
	if g.Phase != PhaseDealerSelection {
		return ErrInvalidPhase
	}
	dealer := cutForDealer(g.Deck)
	cut := g.Deck.Cards[dealer]
	record(g, Event{Type: EventDealerSelected, Dealer: dealer, Card: &cut})
	return dealInitial(g)
}

// cutForDealer inspects the top four cards without consuming them: seat i
// cuts card i. The cut is only used to pick the dealer; the full deck is
// reshuffled into the hands by the deal itself.
func cutForDealer(d Deck) Position {
	best := North
	for i := 1; i < 4; i++ {
		c, b := d.Cards[i], d.Cards[best]
		if c.Rank > b.Rank || (c.Rank == b.Rank && c.Suit > b.Suit) {
			best = Position(i)
		}
	}
	return best
}

// RotateDealer passes the deal clockwise and advances the hand counter.
func RotateDealer(g GameState) (GameState, error) {
	if g.Dealer == nil {
		return g, ErrNoDealer
	}
	ng := g.clone()
	next := ng.Dealer.Next()
	ng.Dealer = &next
	ng.HandNumber++
	return ng, nil
}

// dealInitial distributes the opening hands and records the deal event
// with the complete hands and remaining stock.
func dealInitial(g *GameState) error {
	if g.Dealer == nil {
		return ErrNoDealer
	}
	required := g.Config.InitialDealCount * 4
	if g.Deck.Remaining() < required {
		return InsufficientCardsError{Required: required, Available: g.Deck.Remaining()}
	}
	hands, stock := dealHands(g.Deck, *g.Dealer, g.Config.InitialDealCount)
	record(g, Event{
		Type:   EventCardsDealt,
		Dealer: *g.Dealer,
		Hands:  hands,
		Stock:  stock.Cards,
	})
	return nil
}

// dealHands deals count cards to each seat in three-card batches, clockwise
// starting left of the dealer, the dealer receiving last.
func dealHands(d Deck, dealer Position, count int) ([4][]Card, Deck) {
	var hands [4][]Card
	for dealt := 0; dealt < count; dealt += 3 {
		batch := 3
		if count-dealt < batch {
			batch = count - dealt
		}
		seat := dealer.Next()
		for i := 0; i < 4; i++ {
			var cards []Card
			cards, d = d.DealBatch(batch)
			hands[seat] = append(hands[seat], cards...)
			seat = seat.Next()
		}
	}
	return hands, d
}

func reduceDealerSelected(g *GameState, e Event) {
	d := e.Dealer
	g.Dealer = &d
	g.Phase = PhaseDealing
}

// reduceCardsDealt installs dealt hands and the remaining stock. When the
// previous hand just scored, the same event also performs the hand
// rollover: per-hand state resets, the deal rotates to e.Dealer.
func reduceCardsDealt(g *GameState, e Event) {
	if g.Phase == PhaseScoring {
		resetHand(g)
		g.HandNumber++
	}
	d := e.Dealer
	g.Dealer = &d
	for i := range g.Players {
		g.Players[i].Hand = append([]Card(nil), e.Hands[i]...)
	}
	g.Deck = Deck{Cards: append([]Card(nil), e.Stock...), Shuffled: true}
	turn := d.Next()
	g.Turn = &turn
	g.Phase = PhaseBidding
}
