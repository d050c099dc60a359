package server

import (
	"errors"
	"strconv"

	"github.com/marcelfahle/pidro-backend-sub001/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type ActionDTO struct {
	Type  string    `json:"type"`
	Bid   int       `json:"bid,omitempty"`
	Suit  string    `json:"suit,omitempty"`
	Card  *CardDTO  `json:"card,omitempty"`
	Cards []CardDTO `json:"cards,omitempty"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "bid":
		return engine.Action{Type: engine.ActionBid, Bid: a.Bid}, nil
	case "pass":
		return engine.Action{Type: engine.ActionPass}, nil
	case "select_dealer":
		return engine.Action{Type: engine.ActionSelectDealer}, nil
	case "declare_trump":
		s, err := parseSuit(a.Suit)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionDeclareTrump, Suit: &s}, nil
	case "discard":
		cards, err := cardsToEngine(a.Cards)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionDiscard, Cards: cards}, nil
	case "rob_pack":
		cards, err := cardsToEngine(a.Cards)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionRobPack, Cards: cards}, nil
	case "play_card":
		if a.Card == nil {
			return engine.Action{}, errors.New("card required")
		}
		card, err := a.Card.toEngine()
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionPlayCard, Card: &card}, nil
	default:
		return engine.Action{}, errors.New("unknown action type")
	}
}

func ActionFromEngine(a engine.Action) ActionDTO {
	switch a.Type {
	case engine.ActionBid:
		return ActionDTO{Type: "bid", Bid: a.Bid}
	case engine.ActionPass:
		return ActionDTO{Type: "pass"}
	case engine.ActionSelectDealer:
		return ActionDTO{Type: "select_dealer"}
	case engine.ActionDeclareTrump:
		dto := ActionDTO{Type: "declare_trump"}
		if a.Suit != nil {
			dto.Suit = a.Suit.String()
		}
		return dto
	case engine.ActionDiscard:
		return ActionDTO{Type: "discard", Cards: cardsToDTO(a.Cards)}
	case engine.ActionRobPack:
		return ActionDTO{Type: "rob_pack", Cards: cardsToDTO(a.Cards)}
	case engine.ActionPlayCard:
		dto := ActionDTO{Type: "play_card"}
		if a.Card != nil {
			dto.Card = cardToDTO(*a.Card)
		}
		return dto
	default:
		return ActionDTO{Type: "unknown"}
	}
}

func (c CardDTO) toEngine() (engine.Card, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	r, err := parseRank(c.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: s, Rank: r}, nil
}

func cardsToEngine(dtos []CardDTO) ([]engine.Card, error) {
	cards := make([]engine.Card, 0, len(dtos))
	for _, d := range dtos {
		c, err := d.toEngine()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func cardToDTO(c engine.Card) *CardDTO {
	return &CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func cardsToDTO(cards []engine.Card) []CardDTO {
	out := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		out = append(out, *cardToDTO(c))
	}
	return out
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "H":
		return engine.SuitHearts, nil
	case "D":
		return engine.SuitDiamonds, nil
	case "C":
		return engine.SuitClubs, nil
	case "S":
		return engine.SuitSpades, nil
	default:
		return engine.SuitHearts, errors.New("invalid suit")
	}
}

func parseRank(r string) (engine.Rank, error) {
	switch r {
	case "J":
		return engine.RankJ, nil
	case "Q":
		return engine.RankQ, nil
	case "K":
		return engine.RankK, nil
	case "A":
		return engine.RankA, nil
	default:
		n, err := strconv.Atoi(r)
		if err != nil || n < 2 || n > 10 {
			return engine.Rank2, errors.New("invalid rank")
		}
		return engine.Rank(n), nil
	}
}
