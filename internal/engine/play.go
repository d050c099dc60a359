package engine

// applyPlayCard handles one trick turn. The Finnish variant admits trump
// plays only; anything else is rejected before it reaches the log.
func applyPlayCard(g *GameState, pos Position, c Card) error {
	if g.Phase != PhasePlaying {
		return ErrInvalidPhase
	}
	if g.Turn == nil || *g.Turn != pos {
		return ErrNotYourTurn
	}
	if err := validatePlay(*g, pos, c); err != nil {
		return err
	}
	record(g, Event{Type: EventCardPlayed, Position: pos, Card: &c})
	if g.Turn == nil {
		return completeTrick(g)
	}
	return nil
}

func validatePlay(g GameState, pos Position, c Card) error {
	if !containsCard(g.Players[pos].Hand, c) {
		return ErrInvalidAction
	}
	if !IsTrump(c, *g.TrumpSuit) {
		return ErrInvalidAction
	}
	return nil
}

func reduceCardPlayed(g *GameState, e Event) {
	g.Players[e.Position].RemoveCard(*e.Card)
	if g.CurrentTrick == nil {
		g.CurrentTrick = &Trick{Leader: e.Position}
	}
	g.CurrentTrick.Plays = append(g.CurrentTrick.Plays, TrickPlay{Position: e.Position, Card: *e.Card})
	advanceTrickTurn(g)
}

// advanceTrickTurn walks clockwise to the next seat that still owes a card
// to the trick, eliminating trumpless seats it passes over. A nil turn
// means the trick is complete: every seat still able to play has played.
func advanceTrickTurn(g *GameState) {
	seat := g.Turn.Next()
	for i := 0; i < 3; i++ {
		if _, err := g.CurrentTrick.PlayBy(seat); err == nil {
			break
		}
		p := &g.Players[seat]
		if p.Active() {
			if p.HasTrump(*g.TrumpSuit) {
				g.Turn = &seat
				return
			}
			p.Eliminate()
		}
		seat = seat.Next()
	}
	g.Turn = nil
}

// completeTrick settles the finished trick and, if no trump remains in any
// hand, the whole hand.
func completeTrick(g *GameState) error {
	t := *g.CurrentTrick
	trump := *g.TrumpSuit
	winner, err := t.Winner(trump)
	if err != nil {
		return err
	}
	e := Event{Type: EventTrickWon, Position: winner, Points: t.Points(trump)}
	if holder, ok := t.TwoOfTrump(trump); ok {
		e.TwoHolder = &holder
		e.TwoPoints = 1
	}
	record(g, e)
	return maybeFinishHand(g)
}

// reduceTrickWon archives the trick and credits its points: the trick haul
// to the winner's team, the two of trump to whoever played it.
func reduceTrickWon(g *GameState, e Event) {
	t := *g.CurrentTrick
	res := TrickResult{
		Plays:     t.Plays,
		Winner:    e.Position,
		Points:    e.Points,
		TwoHolder: e.TwoHolder,
		TwoPoints: e.TwoPoints,
	}
	g.Tricks = append(g.Tricks, res)
	g.HandPoints[TeamOf(e.Position)] += e.Points
	if e.TwoHolder != nil {
		g.HandPoints[TeamOf(*e.TwoHolder)] += e.TwoPoints
	}
	g.Players[e.Position].IncrementTricksWon()
	g.CurrentTrick = nil
	g.TrickNumber++
	g.Turn = nextWithTrump(g, e.Position)
}

// maybeFinishHand settles the hand once no active seat holds trump.
func maybeFinishHand(g *GameState) error {
	if g.Phase != PhasePlaying || anyTrumpHeld(*g) {
		return nil
	}
	return settleHand(g)
}
