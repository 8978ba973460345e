package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 120 // input arrives at client frame rate
)

// Client represents a WebSocket connection
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	runID      string
	remoteAddr string
	msgCount   int
	msgResetAt time.Time
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		remoteAddr: remoteAddr,
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		if msgType == websocket.BinaryMessage {
			c.handleBinaryInput(message)
		} else {
			c.handleMessage(message)
		}
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// Check for binary marker (0xFF prefix from SendBinary)
			var err error
			if len(message) > 0 && message[0] == 0xFF {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message.
// Prefixes with 0xFF marker byte so WritePump can distinguish from text.
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = 0xFF // binary marker
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("unmarshal error: %v", err)
		return
	}

	switch env.T {
	case MsgHello:
		c.handleHello(env.D)
	case MsgInput:
		c.handleInput(env.D)
	case MsgRestart:
		c.handleRestart()
	}
}

// handleHello creates a run, or resumes one when the hello carries a
// still-valid token for a live run
func (c *Client) handleHello(data json.RawMessage) {
	if c.runID != "" {
		return // already attached
	}
	var msg HelloMsg
	if len(data) > 0 {
		if err := json.Unmarshal(data, &msg); err != nil {
			return
		}
	}

	var run *Run
	if msg.Token != "" {
		if rid, err := c.hub.tokens.Validate(msg.Token); err == nil {
			run = c.hub.runs.GetRun(rid)
		}
	}
	if run == nil {
		run = c.hub.runs.CreateRun()
		if run == nil {
			c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "too many active runs"}})
			return
		}
	}

	token, err := c.hub.tokens.Issue(run.ID)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "internal error"}})
		return
	}

	c.runID = run.ID
	c.hub.runs.Touch(run.ID)
	run.Game.SetClient(c)

	c.SendJSON(Envelope{T: MsgWelcome, Data: WelcomeMsg{
		RunID:    run.ID,
		Token:    token,
		Viewport: [2]int{ViewportWidth, ViewportHeight},
		MaxDepth: MaxDepth,
	}})
}

func (c *Client) handleInput(data json.RawMessage) {
	if c.runID == "" {
		return
	}
	var msg InputMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	run := c.hub.runs.GetRun(c.runID)
	if run == nil {
		return
	}
	run.Game.HandleInput(DecodeKeys(msg.Keys), msg.Camera)
}

// handleBinaryInput decodes the compact 4-byte held-keys frame
func (c *Client) handleBinaryInput(msg []byte) {
	if c.runID == "" {
		return
	}
	keys, camera, ok := DecodeBinaryInput(msg)
	if !ok {
		return
	}
	run := c.hub.runs.GetRun(c.runID)
	if run == nil {
		return
	}
	run.Game.HandleInput(keys, camera)
}

func (c *Client) handleRestart() {
	if c.runID == "" {
		return
	}
	run := c.hub.runs.GetRun(c.runID)
	if run == nil {
		return
	}
	run.Game.Restart()
}
