package server

import "github.com/marcelfahle/pidro-backend-sub001/internal/engine"

type Event struct {
	Type string       `json:"type"`
	Data EventPayload `json:"data"`
}

type EventPayload struct {
	Position  string    `json:"position,omitempty"`
	Dealer    string    `json:"dealer,omitempty"`
	Bid       int       `json:"bid,omitempty"`
	Suit      string    `json:"suit,omitempty"`
	Card      *CardDTO  `json:"card,omitempty"`
	Cards     []CardDTO `json:"cards,omitempty"`
	Points    int       `json:"points,omitempty"`
	Team      string    `json:"team,omitempty"`
	TwoHolder string    `json:"twoHolder,omitempty"`
	Winner    string    `json:"winner,omitempty"`
	Scores    *[2]int   `json:"scores,omitempty"`
}

// buildEvents maps the engine log entries appended since the last delivery
// onto wire events. Hidden payloads (dealt hands, stock order) never leave
// the engine; deal events surface as dealer announcements only.
func buildEvents(log []engine.Event, from int) []Event {
	events := []Event{}
	for _, e := range log[from:] {
		switch e.Type {
		case engine.EventDealerSelected:
			events = append(events, Event{Type: "dealer_selected", Data: EventPayload{Dealer: e.Dealer.String()}})
		case engine.EventCardsDealt:
			events = append(events, Event{Type: "cards_dealt", Data: EventPayload{Dealer: e.Dealer.String()}})
		case engine.EventBidMade:
			events = append(events, Event{Type: "bid_made", Data: EventPayload{Position: e.Position.String(), Bid: e.Amount}})
		case engine.EventBidPassed:
			events = append(events, Event{Type: "bid_passed", Data: EventPayload{Position: e.Position.String()}})
		case engine.EventTrumpDeclared:
			events = append(events, Event{Type: "trump_declared", Data: EventPayload{Position: e.Position.String(), Suit: e.Suit.String()}})
		case engine.EventCardsDiscarded:
			events = append(events, Event{Type: "cards_discarded", Data: EventPayload{Position: e.Position.String(), Cards: cardsToDTO(e.Cards)}})
		case engine.EventSecondDeal:
			events = append(events, Event{Type: "second_deal", Data: EventPayload{Dealer: e.Dealer.String()}})
		case engine.EventDealerRobbed:
			events = append(events, Event{Type: "dealer_robbed", Data: EventPayload{Position: e.Position.String()}})
		case engine.EventCardPlayed:
			var card *CardDTO
			if e.Card != nil {
				card = cardToDTO(*e.Card)
			}
			events = append(events, Event{Type: "card_played", Data: EventPayload{Position: e.Position.String(), Card: card}})
		case engine.EventTrickWon:
			p := EventPayload{Position: e.Position.String(), Points: e.Points}
			if e.TwoHolder != nil {
				p.TwoHolder = e.TwoHolder.String()
			}
			events = append(events, Event{Type: "trick_won", Data: p})
		case engine.EventHandScored:
			events = append(events, Event{Type: "hand_scored", Data: EventPayload{Team: e.Team.String(), Points: e.Points}})
		case engine.EventGameOver:
			scores := e.Scores
			events = append(events, Event{Type: "game_over", Data: EventPayload{Winner: e.Winner.String(), Scores: &scores}})
		}
	}
	return events
}
