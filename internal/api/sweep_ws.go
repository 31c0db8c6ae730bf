package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rinksim/skipbot/internal/engine"
)

var sweepUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The ice simulator runs on a different origin during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	sweepWriteWait = 5 * time.Second
	sweepIdleWait  = 60 * time.Second
)

type sweepFrame struct {
	Tick engine.Tick `json:"tick"`
}

type advisoryFrame struct {
	Advisory engine.SweepAdvisory `json:"advisory"`
	Tick     engine.Tick          `json:"tick"`
}

// handleSweepWS holds a socket open for the duration of a delivery: the
// simulator streams trajectory ticks in, the engine streams an advisory
// back per tick. The advisor itself is stateless, so one connection per
// stone is purely a transport convenience.
func (s *Server) handleSweepWS(w http.ResponseWriter, r *http.Request) {
	conn, err := sweepUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("sweep ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		conn.SetReadDeadline(time.Now().Add(sweepIdleWait))
		var frame sweepFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("sweep ws read: %v", err)
			}
			return
		}

		out := advisoryFrame{
			Advisory: engine.AdviseSweep(frame.Tick),
			Tick:     frame.Tick,
		}
		conn.SetWriteDeadline(time.Now().Add(sweepWriteWait))
		if err := conn.WriteJSON(out); err != nil {
			s.logger.Printf("sweep ws write: %v", err)
			return
		}
	}
}
