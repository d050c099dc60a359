package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/marcelfahle/pidro-backend-sub001/internal/bots"
	"github.com/marcelfahle/pidro-backend-sub001/internal/engine"
)

// HumanSeat is the seat the connected client controls; the other three
// seats are bots.
const HumanSeat = engine.North

// Session is a single-table actor: one human client, three bots, one
// mutex. All engine access happens under the lock.
type Session struct {
	mu        sync.Mutex
	log       *zap.Logger
	id        string
	seed      int64
	state     engine.GameState
	started   bool
	delivered int
	actionIDs map[string]bool
	conn      *websocket.Conn
	botSeats  map[engine.Position]bots.Bot
}

// NewSession creates an idle session. A zero seed means a wall-clock seed
// per game start.
func NewSession(log *zap.Logger, seed int64) *Session {
	return &Session{
		log:       log,
		id:        uuid.NewString(),
		seed:      seed,
		actionIDs: map[string]bool{},
		botSeats:  map[engine.Position]bots.Bot{},
	}
}

func (s *Session) ID() string {
	return s.id
}

type ClientMessage struct {
	Type     string     `json:"type"`
	ActionID string     `json:"actionId,omitempty"`
	Action   *ActionDTO `json:"action,omitempty"`
	Seed     int64      `json:"seed,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleConnection pumps messages off the socket until it closes.
func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.log.Info("client disconnected", zap.String("session", s.id), zap.Error(err))
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.mu.Lock()
		s.sendStateLocked(nil)
		s.mu.Unlock()
	case "start_game":
		s.startGame(msg.Seed)
	case "player_action":
		s.applyAction(msg.ActionID, msg.Action)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame(seedOverride int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.seed
	if seedOverride != 0 {
		seed = seedOverride
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.state = engine.NewGame(engine.DefaultConfig(), seed)
	s.started = true
	s.delivered = 0
	s.actionIDs = map[string]bool{}
	s.botSeats = map[engine.Position]bots.Bot{
		engine.East:  bots.NewNormal(seed + 1),
		engine.South: bots.NewEasy(seed + 2),
		engine.West:  bots.NewNormal(seed + 3),
	}
	next, err := engine.ApplyAction(s.state, HumanSeat, engine.Action{Type: engine.ActionSelectDealer})
	if err != nil {
		s.log.Error("opening deal failed", zap.String("session", s.id), zap.Error(err))
		s.sendErrorLocked("internal", err.Error())
		return
	}
	s.state = next
	s.log.Info("game started",
		zap.String("session", s.id),
		zap.Int64("seed", seed),
		zap.Stringer("dealer", *s.state.Dealer))
	s.sendStateLocked(s.collectEventsLocked())
	s.botAutoPlayLocked()
}

func (s *Session) applyAction(actionID string, dto *ActionDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendErrorLocked("not_started", "game not started")
		return
	}
	if actionID == "" {
		s.sendErrorLocked("missing_action_id", "actionId required")
		return
	}
	if s.actionIDs[actionID] {
		s.sendStateLocked(nil)
		return
	}
	s.actionIDs[actionID] = true

	action, err := dto.ToEngine()
	if err != nil {
		s.sendErrorLocked("bad_action", err.Error())
		return
	}
	next, err := engine.ApplyAction(s.state, HumanSeat, action)
	if err != nil {
		s.sendErrorLocked("apply_failed", err.Error())
		return
	}
	s.state = next
	s.sendStateLocked(s.collectEventsLocked())
	s.botAutoPlayLocked()
}

// botAutoPlayLocked lets the bot seats act until the human is on turn or
// the game is over, streaming a state update per bot move.
func (s *Session) botAutoPlayLocked() {
	for {
		pos, ok := engine.CurrentPlayer(s.state)
		if !ok {
			return
		}
		bot, isBot := s.botSeats[pos]
		if !isBot {
			return
		}
		action := bot.ChooseAction(s.state, pos)
		next, err := engine.ApplyAction(s.state, pos, action)
		if err != nil {
			s.log.Error("bot action rejected",
				zap.String("session", s.id),
				zap.Stringer("seat", pos),
				zap.Stringer("action", action.Type),
				zap.Error(err))
			return
		}
		s.state = next
		s.sendStateLocked(s.collectEventsLocked())
	}
}

// collectEventsLocked maps engine log entries not yet delivered to the
// client onto wire events.
func (s *Session) collectEventsLocked() []Event {
	events := buildEvents(s.state.Events, s.delivered)
	s.delivered = len(s.state.Events)
	return events
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	var view *GameView
	if s.started {
		view = BuildGameView(s.state, HumanSeat, s.id)
	} else {
		idle := engine.NewGame(engine.DefaultConfig(), 0)
		view = BuildGameView(idle, HumanSeat, s.id)
	}
	msg := ServerMessage{Type: "state", State: view, Events: events}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn("write failed", zap.String("session", s.id), zap.Error(err))
	}
}

func (s *Session) sendError(code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendErrorLocked(code, message)
}

func (s *Session) sendErrorLocked(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{Type: "error", Error: &ErrorView{Code: code, Message: message}}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn("write failed", zap.String("session", s.id), zap.Error(err))
	}
}
