package engine

// maxHandPoints is the total on the table each hand: two fives at five
// apiece plus ace, jack, ten and two of trump at one each.
const maxHandPoints = 14

// settleHand converts hand points into cumulative score. The bidding team
// keeps its haul only when it made the contract, otherwise it is set back
// by the full bid; defenders always keep what they took. Two scoring
// events fire, bidding team first, then either the game ends or the next
// hand is dealt in the same cascade.
func settleHand(g *GameState) error {
	bt := *g.BiddingTeam
	bid := g.HighestBid.Amount
	delta := g.HandPoints[bt]
	if delta < bid {
		delta = -bid
	}
	record(g, Event{Type: EventHandScored, Team: bt, Points: delta})
	record(g, Event{Type: EventHandScored, Team: bt.Opponent(), Points: g.HandPoints[bt.Opponent()]})
	if NextPhase(*g) == PhaseComplete {
		winner, err := DetermineWinner(*g)
		if err != nil {
			return err
		}
		record(g, Event{Type: EventGameOver, Winner: winner, Scores: g.CumulativeScores})
		return nil
	}
	ng, err := RotateDealer(*g)
	if err != nil {
		return err
	}
	dealer := *ng.Dealer
	deck := NewDeck(newHandRNG(g.Seed, ng.HandNumber))
	hands, stock := dealHands(deck, dealer, g.Config.InitialDealCount)
	record(g, Event{
		Type:   EventCardsDealt,
		Dealer: dealer,
		Hands:  hands,
		Stock:  stock.Cards,
	})
	return nil
}

func reduceHandScored(g *GameState, e Event) {
	g.Phase = PhaseScoring
	g.Turn = nil
	g.CumulativeScores[e.Team] += e.Points
	if !g.Config.AllowNegativeScores && g.CumulativeScores[e.Team] < 0 {
		g.CumulativeScores[e.Team] = 0
	}
}

func reduceGameOver(g *GameState, e Event) {
	w := e.Winner
	g.Winner = &w
	g.CumulativeScores = e.Scores
	g.Phase = PhaseComplete
	g.Turn = nil
}

// TrickScore is the point breakdown of one settled trick.
type TrickScore struct {
	Winner     Position
	TrickTeam  Team
	Points     int
	TwoHolder  *Position
	TwoPoints  int
	TeamPoints [2]int
}

// ScoreTrick expands a trick result into per-team credit.
func ScoreTrick(r TrickResult) TrickScore {
	s := TrickScore{
		Winner:    r.Winner,
		TrickTeam: TeamOf(r.Winner),
		Points:    r.Points,
		TwoHolder: r.TwoHolder,
		TwoPoints: r.TwoPoints,
	}
	s.TeamPoints[s.TrickTeam] += r.Points
	if r.TwoHolder != nil {
		s.TeamPoints[TeamOf(*r.TwoHolder)] += r.TwoPoints
	}
	return s
}

// AggregateTeamScores sums trick results into per-team hand points.
func AggregateTeamScores(results []TrickResult) [2]int {
	var totals [2]int
	for _, r := range results {
		s := ScoreTrick(r)
		totals[0] += s.TeamPoints[0]
		totals[1] += s.TeamPoints[1]
	}
	return totals
}

func gameOver(g GameState) bool {
	return g.CumulativeScores[0] >= g.Config.WinningScore ||
		g.CumulativeScores[1] >= g.Config.WinningScore
}

// GameOver reports whether either team has reached the winning score.
func GameOver(g GameState) bool {
	return gameOver(g)
}

// DetermineWinner names the winning team. When both teams cross the line
// in the same hand the bidding team wins, whatever the margins.
func DetermineWinner(g GameState) (Team, error) {
	ns := g.CumulativeScores[NorthSouth] >= g.Config.WinningScore
	ew := g.CumulativeScores[EastWest] >= g.Config.WinningScore
	switch {
	case ns && ew:
		return *g.BiddingTeam, nil
	case ns:
		return NorthSouth, nil
	case ew:
		return EastWest, nil
	default:
		return 0, ErrGameNotOver
	}
}

// TotalAvailablePoints is how many of the hand's points can still be won:
// the full complement minus points buried in killed stacks. The top card
// of each stack stays face-up, so its point is not counted as lost.
func TotalAvailablePoints(g GameState) int {
	if g.TrumpSuit == nil {
		return maxHandPoints
	}
	total := maxHandPoints
	for _, stack := range g.KilledCards {
		for i, c := range stack {
			if i == 0 {
				continue
			}
			total -= PointValue(c, *g.TrumpSuit)
		}
	}
	return total
}
