package session

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"cardturner/pkg/deck"
)

// Client is a presentation surface subscribed to session updates over a
// websocket
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Send delivers payloads for the write loop to flush
	Send chan interface{}

	// Close asks the write loop to shut the connection down
	Close chan string

	// CloseError records why the read loop gave up
	CloseError error

	id      uuid.UUID
	session *Session
}

// NewClient returns a new client for the connection
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn:  conn,
		Send:  make(chan interface{}, 256),
		Close: make(chan string),
		id:    uuid.New(),
	}
}

func (c *Client) String() string {
	return c.id.String()
}

// ReceivedMessage dispatches a client action onto the session run loop
func (c *Client) ReceivedMessage(msg *ActionMessage) {
	action, ok := deck.ParseAction(msg.Action)
	if !ok {
		logrus.WithField("action", msg.Action).WithField("client", c.String()).Warn("unknown action")
		return
	}

	c.session.Perform(msg.Deck, action)
}

// queue drops the payload when the client's buffer is full; a stalled reader
// must not stall the run loop
func (c *Client) queue(payload interface{}) {
	select {
	case c.Send <- payload:
	default:
		logrus.WithField("client", c.String()).Warn("send buffer full, dropping payload")
	}
}
