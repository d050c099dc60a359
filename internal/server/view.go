package server

import "github.com/marcelfahle/pidro-backend-sub001/internal/engine"

type PlayerView struct {
	Position    string    `json:"position"`
	Team        string    `json:"team"`
	Hand        []CardDTO `json:"hand,omitempty"`
	HandCount   int       `json:"handCount"`
	Revealed    []CardDTO `json:"revealed,omitempty"`
	Eliminated  bool      `json:"eliminated"`
	TricksWon   int       `json:"tricksWon"`
	KilledCount int       `json:"killedCount"`
	KilledTop   *CardDTO  `json:"killedTop,omitempty"`
}

type BidView struct {
	Position string `json:"position"`
	Amount   int    `json:"amount,omitempty"`
	Pass     bool   `json:"pass,omitempty"`
}

type TrickPlayView struct {
	Position string  `json:"position"`
	Card     CardDTO `json:"card"`
}

type GameView struct {
	SessionID       string          `json:"sessionId"`
	Phase           string          `json:"phase"`
	HandNumber      int             `json:"handNumber"`
	Players         []PlayerView    `json:"players"`
	Dealer          *string         `json:"dealer,omitempty"`
	Turn            *string         `json:"turn,omitempty"`
	StockCount      int             `json:"stockCount"`
	Bids            []BidView       `json:"bids"`
	HighestBid      *BidView        `json:"highestBid,omitempty"`
	Trump           *string         `json:"trump,omitempty"`
	CurrentTrick    []TrickPlayView `json:"currentTrick"`
	TrickNumber     int             `json:"trickNumber"`
	HandPoints      [2]int          `json:"handPoints"`
	Scores          [2]int          `json:"scores"`
	AvailablePoints int             `json:"availablePoints"`
	Winner          *string         `json:"winner,omitempty"`
	LegalActions    []ActionDTO     `json:"legalActions"`
}

// BuildGameView renders g for one viewer: the viewer sees its own hand,
// everyone else only as counts, except that cold seats lie open for all.
func BuildGameView(g engine.GameState, viewer engine.Position, sessionID string) *GameView {
	players := make([]PlayerView, 0, len(g.Players))
	for i, p := range g.Players {
		pv := PlayerView{
			Position:    p.Position.String(),
			Team:        p.Team.String(),
			HandCount:   len(p.Hand),
			Eliminated:  p.Eliminated,
			TricksWon:   p.TricksWon,
			KilledCount: len(g.KilledCards[i]),
		}
		if engine.Position(i) == viewer {
			pv.Hand = cardsToDTO(p.Hand)
		}
		if p.Eliminated {
			pv.Revealed = cardsToDTO(p.RevealedCards)
		}
		if len(g.KilledCards[i]) > 0 {
			pv.KilledTop = cardToDTO(g.KilledCards[i][0])
		}
		players = append(players, pv)
	}

	bids := make([]BidView, 0, len(g.Bids))
	for _, b := range g.Bids {
		bids = append(bids, bidToView(b))
	}
	var highest *BidView
	if g.HighestBid != nil {
		bv := bidToView(*g.HighestBid)
		highest = &bv
	}
	trick := []TrickPlayView{}
	if g.CurrentTrick != nil {
		for _, p := range g.CurrentTrick.Plays {
			trick = append(trick, TrickPlayView{Position: p.Position.String(), Card: *cardToDTO(p.Card)})
		}
	}
	legal := []ActionDTO{}
	for _, a := range engine.LegalActions(g, viewer) {
		legal = append(legal, ActionFromEngine(a))
	}

	return &GameView{
		SessionID:       sessionID,
		Phase:           g.Phase.String(),
		HandNumber:      g.HandNumber,
		Players:         players,
		Dealer:          positionName(g.Dealer),
		Turn:            positionName(g.Turn),
		StockCount:      g.Deck.Remaining(),
		Bids:            bids,
		HighestBid:      highest,
		Trump:           suitName(g.TrumpSuit),
		CurrentTrick:    trick,
		TrickNumber:     g.TrickNumber,
		HandPoints:      g.HandPoints,
		Scores:          g.CumulativeScores,
		AvailablePoints: engine.TotalAvailablePoints(g),
		Winner:          teamName(g.Winner),
		LegalActions:    legal,
	}
}

func bidToView(b engine.Bid) BidView {
	return BidView{Position: b.Position.String(), Amount: b.Amount, Pass: b.Pass}
}

func positionName(p *engine.Position) *string {
	if p == nil {
		return nil
	}
	s := p.String()
	return &s
}

func suitName(s *engine.Suit) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

func teamName(t *engine.Team) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
