package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/pokerhands/internal/rounds"
	"github.com/lox/pokerhands/poker"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// ErrConnectionClosed is returned when sending on a closed connection.
var ErrConnectionClosed = errors.New("connection closed")

// Connection is one websocket client. Each connection keeps its own score.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	evaluator poker.Evaluator
	clock     quartz.Clock
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	mu    sync.Mutex
	score poker.Score
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, evaluator poker.Evaluator, clock quartz.Clock, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:      conn,
		send:      make(chan *Message, 256),
		evaluator: evaluator,
		clock:     clock,
		logger:    logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Score returns the session's running score.
func (c *Connection) Score() poker.Score {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type)

	switch msg.Type {
	case MessageTypeRound:
		var data RoundData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, ErrorCodeInvalidMessage, "Failed to parse round data")
			return
		}
		c.handleRound(msg.RequestID, data)

	case MessageTypeReset:
		c.mu.Lock()
		c.score = poker.Score{}
		c.mu.Unlock()
		c.sendTally(msg.RequestID)

	case MessageTypeScore:
		c.sendTally(msg.RequestID)

	default:
		c.sendError(msg.RequestID, ErrorCodeUnknownType, fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

func (c *Connection) handleRound(requestID string, data RoundData) {
	round, err := parseRound(data)
	if err != nil {
		c.sendError(requestID, ErrorCodeInvalidRound, err.Error())
		return
	}

	res := c.evaluator.Evaluate(round)

	c.mu.Lock()
	c.score = c.score.Add(res.Outcome)
	score := c.score
	c.mu.Unlock()

	c.logger.Debug("Evaluated round",
		"player1", res.Category1,
		"player2", res.Category2,
		"outcome", res.Outcome)

	c.reply(requestID, MessageTypeOutcome, outcomeData(res, score))
}

// parseRound accepts either a full round line or one hand per player.
func parseRound(data RoundData) (poker.Round, error) {
	if data.Line != "" {
		return rounds.ParseLine(data.Line)
	}
	h1, err := poker.ParseHand(data.Player1)
	if err != nil {
		return poker.Round{}, fmt.Errorf("player 1: %w", err)
	}
	h2, err := poker.ParseHand(data.Player2)
	if err != nil {
		return poker.Round{}, fmt.Errorf("player 2: %w", err)
	}
	return rounds.NewRound(h1, h2)
}

func (c *Connection) sendTally(requestID string) {
	c.reply(requestID, MessageTypeTally, TallyData{
		Rules: c.evaluator.Rules.String(),
		Score: c.Score(),
	})
}

// sendError sends an error message to the client
func (c *Connection) sendError(requestID, code, message string) {
	c.reply(requestID, MessageTypeError, ErrorData{Code: code, Message: message})
}

func (c *Connection) reply(requestID string, messageType MessageType, data any) {
	msg, err := NewMessage(messageType, data, c.clock.Now())
	if err != nil {
		c.logger.Error("Failed to create message", "type", messageType, "error", err)
		return
	}
	msg.RequestID = requestID
	if err := c.SendMessage(msg); err != nil {
		c.logger.Debug("Failed to send message", "type", messageType, "error", err)
	}
}
