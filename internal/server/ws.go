package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/socialinept/princessplatelets-server-go/internal/game"
)

// eventBuffer bounds the per-client queue of pending events. A client that
// falls this far behind is disconnected rather than blocking the engine.
const eventBuffer = 256

// handleEvents upgrades the connection and forwards every engine event for
// the requested game as a JSON message until the client goes away.
func (s *Server) handleEvents(c *gin.Context) {
	g, ok := s.manager.Game(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  s.cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: s.cfg.WebSocket.WriteBufferSize,
		CheckOrigin:     func(*http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	views := make(chan EventView, eventBuffer)
	done := make(chan struct{})
	var closeOnce sync.Once
	closeDone := func() { closeOnce.Do(func() { close(done) }) }

	// Publication is synchronous on the engine goroutine, so the view must be
	// snapshotted here; the raw event carries live engine objects that the
	// engine keeps mutating after this callback returns.
	handle := g.Bus().Subscribe(func(event game.Event) {
		view := newEventView(event)
		select {
		case views <- view:
		default:
			// Slow client; drop it, the write pump notices.
			closeDone()
		}
	})

	// Read pump: discard inbound frames, detect disconnect.
	go func() {
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				closeDone()
				return
			}
		}
	}()

	// Write pump.
	go func() {
		defer func() {
			g.Bus().Unsubscribe(handle)
			conn.Close()
		}()
		for {
			select {
			case view := <-views:
				if s.cfg.WebSocket.WriteTimeout > 0 {
					_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.WebSocket.WriteTimeout))
				}
				if writeErr := conn.WriteJSON(view); writeErr != nil {
					s.logger.Debug("websocket write failed", zap.Error(writeErr))
					return
				}
			case <-done:
				return
			}
		}
	}()
}
