// SPDX-License-Identifier: MIT
// Package: server
//
// canvas_ws.go: websocket drawing sessions.
//
// Each connection owns one canvas. Messages are JSON objects:
//
//	{"op":"enable","row":r,"col":c}   ink a cell, reply with the prediction
//	{"op":"point","x":x,"y":y,"block":b}  same, from pixel coordinates
//	{"op":"reset"}                    clear the canvas
//	{"op":"analyze"}                  reply with the prediction
//	{"op":"train","label":l,"rate":r} one online step on the current drawing
//
// Errors are reported in the reply's "error" field; the session stays open.

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/katalvlaran/neuron/canvas"
)

// Session limits. The server pings every pongWait*9/10; a session whose
// peer answers neither pings nor sends messages for pongWait is closed.
const (
	maxMessageSize = 4096
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
)

// Canvas ops.
const (
	OpEnable  = "enable"
	OpPoint   = "point"
	OpReset   = "reset"
	OpAnalyze = "analyze"
	OpTrain   = "train"
)

// canvasMessage is one client request.
type canvasMessage struct {
	Op    string   `json:"op"`
	Row   *int     `json:"row"`
	Col   *int     `json:"col"`
	X     *int     `json:"x"`
	Y     *int     `json:"y"`
	Block int      `json:"block"`
	Label *int     `json:"label"`
	Rate  *float64 `json:"rate,omitempty"`
}

// canvasReply is one server answer.
type canvasReply struct {
	Session string    `json:"session"`
	Op      string    `json:"op"`
	Class   int       `json:"class"`
	Output  []float64 `json:"output,omitempty"`
	Strokes int       `json:"strokes"`
	Changed bool      `json:"changed,omitempty"`
	Error   string    `json:"error,omitempty"`
}

func (s *Server) canvasHandler(c *gin.Context) {
	// The hijacked response only carries headers passed to Upgrade.
	hdr := http.Header{HeaderRequestID: []string{c.GetString(ctxRequestID)}}
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, hdr)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.cfg.logger.Warn("websocket upgrade", "err", err, "request_id", c.GetString(ctxRequestID))
		return
	}
	defer conn.Close()

	board, err := canvas.New(s.cfg.rows, s.cfg.cols, s.cfg.canvasOpts)
	if err != nil {
		s.cfg.logger.Error("canvas", "err", err)
		return
	}
	id := uuid.NewString()
	log := s.cfg.logger.With("session", id)
	log.Info("canvas session opened")

	wait := s.cfg.pongWait
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wait))
	})

	// WriteControl may run concurrently with the loop's WriteJSON.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(wait * 9 / 10)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	for {
		var msg canvasMessage
		if err = conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("canvas session read", "err", err)
			}
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(wait))

		reply := s.handleCanvas(board, msg)
		reply.Session = id
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err = conn.WriteJSON(reply); err != nil {
			log.Warn("canvas session write", "err", err)
			break
		}
	}
	log.Info("canvas session closed")
}

// handleCanvas applies one message to board and builds the reply.
func (s *Server) handleCanvas(board *canvas.Canvas, msg canvasMessage) canvasReply {
	reply := canvasReply{Op: msg.Op, Class: -1}

	switch msg.Op {
	case OpEnable:
		if msg.Row == nil || msg.Col == nil {
			reply.Error = fmt.Errorf("%w: %s needs row and col", ErrMissingField, msg.Op).Error()
			return reply
		}
		row, col := *msg.Row, *msg.Col
		if !board.InBounds(row, col) {
			reply.Error = fmt.Sprintf("cell (%d,%d) outside %dx%d canvas", row, col, board.Rows(), board.Cols())
			return reply
		}
		reply.Changed = board.Enable(row, col)
		s.predict(board, &reply)
	case OpPoint:
		if msg.X == nil || msg.Y == nil {
			reply.Error = fmt.Errorf("%w: %s needs x and y", ErrMissingField, msg.Op).Error()
			return reply
		}
		row, col, ok := board.FromPointer(*msg.X, *msg.Y, msg.Block)
		if !ok {
			reply.Error = fmt.Sprintf("point (%d,%d) outside canvas", *msg.X, *msg.Y)
			return reply
		}
		reply.Changed = board.Enable(row, col)
		s.predict(board, &reply)
	case OpReset:
		board.Reset()
	case OpAnalyze:
		s.predict(board, &reply)
	case OpTrain:
		if msg.Label == nil {
			reply.Error = fmt.Errorf("%w: %s needs label", ErrMissingField, msg.Op).Error()
			return reply
		}
		rate := s.cfg.defaultRate
		if msg.Rate != nil {
			rate = *msg.Rate
		}
		s.mu.Lock()
		class, out, err := s.net.Classify(board.Vector())
		if err == nil {
			err = s.net.BackPropagate(*msg.Label, rate)
		}
		s.mu.Unlock()
		if err != nil {
			reply.Error = err.Error()
			return reply
		}
		reply.Class, reply.Output = class, out
	default:
		reply.Error = fmt.Errorf("%w: %q", ErrUnknownOp, msg.Op).Error()
		return reply
	}
	reply.Strokes = len(board.Strokes())

	return reply
}

// predict classifies the board into reply.
func (s *Server) predict(board *canvas.Canvas, reply *canvasReply) {
	s.mu.Lock()
	class, out, err := s.net.Classify(board.Vector())
	s.mu.Unlock()
	if err != nil {
		reply.Error = err.Error()
		return
	}
	reply.Class, reply.Output = class, out
}
