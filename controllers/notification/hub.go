package notificationControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks open websocket connections per user so stored
// notifications can also be pushed live. Each connection carries its
// own write mutex: gorilla allows at most one concurrent writer per
// connection, and two checkouts may notify the same seller at once.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*websocket.Conn]*sync.Mutex
	logger  zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]*sync.Mutex),
		logger:  logger,
	}
}

func (h *Hub) register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]*sync.Mutex)
	}
	h.clients[userID][conn] = &sync.Mutex{}
}

func (h *Hub) unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], conn)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Push delivers a notification to every open connection of its user.
// Best effort: a dead connection is dropped, never retried.
func (h *Hub) Push(n models.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}

	type target struct {
		conn    *websocket.Conn
		writeMu *sync.Mutex
	}
	h.mu.RLock()
	targets := make([]target, 0, len(h.clients[n.UserID]))
	for conn, writeMu := range h.clients[n.UserID] {
		targets = append(targets, target{conn: conn, writeMu: writeMu})
	}
	h.mu.RUnlock()

	for _, tgt := range targets {
		tgt.writeMu.Lock()
		err := tgt.conn.WriteMessage(websocket.TextMessage, data)
		tgt.writeMu.Unlock()
		if err != nil {
			h.logger.Debug().Err(err).Str("user_id", n.UserID).Msg("dropping dead notification socket")
			h.unregister(n.UserID, tgt.conn)
			tgt.conn.Close()
		}
	}
}

// GET /notifications/ws
func StreamHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		hub.register(userID, conn)
		defer hub.unregister(userID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
