package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/gophcollab/internal/server/hub"
	"github.com/iudanet/gophcollab/pkg/api"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4 << 20
)

// Relay is the part of the hub the websocket endpoint talks to.
type Relay interface {
	Register(c *hub.Client)
	Unregister(c *hub.Client)
	Receive(c *hub.Client, env api.Envelope)
}

// WSHandler переводит соединение на websocket и связывает его с хабом
type WSHandler struct {
	relay    Relay
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates the relay websocket endpoint
func NewWSHandler(logger *slog.Logger, relay Relay) *WSHandler {
	return &WSHandler{
		relay:  relay,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve обрабатывает GET /ws?workspace=<id>
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже записал ответ клиенту
		h.logger.Warn("Websocket upgrade failed", "error", err, "remote_addr", r.RemoteAddr)
		return
	}

	c := hub.NewClient(r.URL.Query().Get("workspace"))
	h.relay.Register(c)

	go h.writePump(conn, c)
	h.readPump(conn, c)
}

// readPump передает кадры участника в хаб до закрытия соединения
func (h *WSHandler) readPump(conn *websocket.Conn, c *hub.Client) {
	defer func() {
		h.relay.Unregister(c)
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Websocket read failed", "id", c.ID(), "error", err)
			}
			return
		}

		var env api.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			h.logger.Warn("Malformed frame", "id", c.ID(), "error", err)
			continue
		}
		h.relay.Receive(c, env)
	}
}

// writePump отправляет очередь участника и держит соединение пингами
func (h *WSHandler) writePump(conn *websocket.Conn, c *hub.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.Outbound():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Хаб закрыл очередь
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Debug("Websocket write failed", "id", c.ID(), "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
