package engine

// applyBidAction handles one bidding turn, a pass or a numeric bid.
func applyBidAction(g *GameState, pos Position, a Action) error {
	if g.Phase != PhaseBidding {
		return ErrInvalidPhase
	}
	if g.Turn == nil || *g.Turn != pos {
		return ErrNotYourTurn
	}
	if a.Type == ActionPass {
		if dealerMustBid(*g) && pos == *g.Dealer {
			return ErrInvalidAction
		}
		record(g, Event{Type: EventBidPassed, Position: pos})
	} else {
		if err := validateBid(*g, pos, a.Bid); err != nil {
			return err
		}
		record(g, Event{Type: EventBidMade, Position: pos, Amount: a.Bid})
	}
	return nil
}

// validateBid enforces the bid window and the raise rule. A bid must exceed
// the standing high bid, except that matching a standing maximum bid is
// allowed and takes the contract over.
func validateBid(g GameState, pos Position, amount int) error {
	if amount < g.Config.MinBid || amount > g.Config.MaxBid {
		return ErrInvalidAction
	}
	if g.HighestBid != nil && amount <= g.HighestBid.Amount {
		if !(amount == g.Config.MaxBid && g.HighestBid.Amount == g.Config.MaxBid) {
			return ErrInvalidAction
		}
	}
	return nil
}

// dealerMustBid reports whether the dealer is forced to bid: everyone else
// has passed and no bid stands.
func dealerMustBid(g GameState) bool {
	return len(g.Bids) == 3 && g.HighestBid == nil
}

func reduceBidMade(g *GameState, e Event) {
	b := Bid{Position: e.Position, Amount: e.Amount}
	g.Bids = append(g.Bids, b)
	g.HighestBid = &b
	advanceBidding(g)
}

func reduceBidPassed(g *GameState, e Event) {
	g.Bids = append(g.Bids, Bid{Position: e.Position, Pass: true})
	advanceBidding(g)
}

// advanceBidding moves the turn or, once all four seats have spoken, closes
// the auction: the high bidder's team becomes the bidding team and declares
// trump next.
func advanceBidding(g *GameState) {
	if len(g.Bids) < 4 {
		next := g.Turn.Next()
		g.Turn = &next
		return
	}
	bt := TeamOf(g.HighestBid.Position)
	g.BiddingTeam = &bt
	turn := g.HighestBid.Position
	g.Turn = &turn
	g.Phase = PhaseDeclaring
}
