package engine

import "testing"

func openBidding(t *testing.T, seed int64) GameState {
	t.Helper()
	return mustApply(t, NewGame(DefaultConfig(), seed), North, Action{Type: ActionSelectDealer})
}

func TestBiddingOutOfTurn(t *testing.T) {
	g := openBidding(t, 21)
	wrong := g.Turn.Next()
	if _, err := ApplyAction(g, wrong, Action{Type: ActionPass}); err != ErrNotYourTurn {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
}

func TestBidMustRaise(t *testing.T) {
	g := openBidding(t, 21)
	g = mustApply(t, g, *g.Turn, Action{Type: ActionBid, Bid: 8})
	if _, err := ApplyAction(g, *g.Turn, Action{Type: ActionBid, Bid: 8}); err != ErrInvalidAction {
		t.Fatalf("matching a standing bid below max should fail, got %v", err)
	}
	if _, err := ApplyAction(g, *g.Turn, Action{Type: ActionBid, Bid: 7}); err != ErrInvalidAction {
		t.Fatalf("underbidding should fail, got %v", err)
	}
	g = mustApply(t, g, *g.Turn, Action{Type: ActionBid, Bid: 9})
	if g.HighestBid.Amount != 9 {
		t.Fatalf("highest bid = %d, want 9", g.HighestBid.Amount)
	}
}

func TestBidWindow(t *testing.T) {
	g := openBidding(t, 21)
	if _, err := ApplyAction(g, *g.Turn, Action{Type: ActionBid, Bid: 5}); err != ErrInvalidAction {
		t.Fatalf("bid below minimum should fail, got %v", err)
	}
	if _, err := ApplyAction(g, *g.Turn, Action{Type: ActionBid, Bid: 15}); err != ErrInvalidAction {
		t.Fatalf("bid above maximum should fail, got %v", err)
	}
}

func TestEqualMaxBidTakesContract(t *testing.T) {
	g := openBidding(t, 33)
	first := *g.Turn
	g = mustApply(t, g, first, Action{Type: ActionBid, Bid: 14})
	second := *g.Turn
	g = mustApply(t, g, second, Action{Type: ActionBid, Bid: 14})
	if g.HighestBid.Position != second {
		t.Fatalf("matching max bid should take the contract over")
	}
	if g.HighestBid.Amount != 14 {
		t.Fatalf("contract = %d, want 14", g.HighestBid.Amount)
	}
}

func TestDealerForcedBid(t *testing.T) {
	g := openBidding(t, 13)
	for i := 0; i < 3; i++ {
		g = mustApply(t, g, *g.Turn, Action{Type: ActionPass})
	}
	dealer := *g.Dealer
	if *g.Turn != dealer {
		t.Fatalf("turn = %v, want dealer %v", *g.Turn, dealer)
	}
	if _, err := ApplyAction(g, dealer, Action{Type: ActionPass}); err != ErrInvalidAction {
		t.Fatalf("dealer must not pass after three passes, got %v", err)
	}
	for _, a := range LegalActions(g, dealer) {
		if a.Type == ActionPass {
			t.Fatalf("pass offered to forced dealer")
		}
	}
	g = mustApply(t, g, dealer, Action{Type: ActionBid, Bid: g.Config.MinBid})
	if g.Phase != PhaseDeclaring {
		t.Fatalf("phase = %v, want declaring", g.Phase)
	}
	if *g.BiddingTeam != TeamOf(dealer) {
		t.Fatalf("bidding team = %v, want %v", *g.BiddingTeam, TeamOf(dealer))
	}
}

func TestAuctionClosesToHighBidder(t *testing.T) {
	g := openBidding(t, 55)
	bidder := *g.Turn
	g = mustApply(t, g, bidder, Action{Type: ActionBid, Bid: 10})
	for i := 0; i < 3; i++ {
		g = mustApply(t, g, *g.Turn, Action{Type: ActionPass})
	}
	if g.Phase != PhaseDeclaring {
		t.Fatalf("phase = %v, want declaring", g.Phase)
	}
	if *g.Turn != bidder {
		t.Fatalf("declarer = %v, want %v", *g.Turn, bidder)
	}
	if len(g.Bids) != 4 {
		t.Fatalf("recorded %d bids, want 4", len(g.Bids))
	}
}
