package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades websocket connections and hands them to the session.
// Single-table: every connection talks to the same session.
type Handler struct {
	log  *zap.Logger
	once sync.Once
	sess *Session
	seed int64
}

func NewHandler(log *zap.Logger, seed int64) *Handler {
	return &Handler{log: log, seed: seed}
}

func (h *Handler) session() *Session {
	h.once.Do(func() {
		h.sess = NewSession(h.log, h.seed)
	})
	return h.sess
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	h.session().HandleConnection(conn)
}
