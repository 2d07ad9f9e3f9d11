package mux

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardturner/pkg/session"
)

// readState skips clock ticks until the next full state payload arrives
func readState(t *testing.T, conn *websocket.Conn) session.StatePayload {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))

	for {
		var payload session.StatePayload
		require.NoError(t, conn.ReadJSON(&payload))

		if payload.Type == "state" {
			return payload
		}
	}
}

func TestWebSocket(t *testing.T) {
	a := assert.New(t)
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// a fresh subscriber gets the current state right away
	state := readState(t, conn)
	a.Equal("Suits", state.Decks[0].Name)
	a.Equal("", state.Decks[0].Table)
	a.Equal(3, state.Decks[0].DrawPile)

	// actions sent over the socket drive the deck and push new state
	require.NoError(t, conn.WriteJSON(session.ActionMessage{Action: "draw", Deck: 0}))

	state = readState(t, conn)
	a.Equal("C", state.Decks[0].Table)
	a.Equal(2, state.Decks[0].DrawPile)
	a.Equal("00:00", state.Clock)

	require.NoError(t, conn.WriteJSON(session.ActionMessage{Action: "discard", Deck: 0}))

	state = readState(t, conn)
	a.Equal("", state.Decks[0].Table)
	a.Equal(1, state.Decks[0].DiscardPile)
}
