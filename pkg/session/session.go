package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"cardturner/pkg/deck"
	"cardturner/pkg/ingest"
)

// clockTick is how often the elapsed clock is pushed to clients
const clockTick = time.Second

// Session owns the deck collection and the elapsed-time clock for the
// lifetime of the process. Every deck transition and every clock tick runs
// on the session's single run loop, so no two operations ever touch a deck
// concurrently and the engine needs no locks.
type Session struct {
	decks    deck.Collection
	settings ingest.Settings

	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool

	// startedAt is when the last action happened; only the run loop touches it
	startedAt time.Time
}

// New returns a session for an ingested source.
// Call Start() to begin the run loop.
func New(res *ingest.Result) *Session {
	return &Session{
		decks:         res.Decks,
		settings:      res.Settings,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
		startedAt:     time.Now(),
	}
}

// Start starts the run loop
func (s *Session) Start() {
	go s.runLoop()
}

// Stop terminates the run loop
func (s *Session) Stop() {
	s.close <- true
}

// Settings returns the session-wide display settings
func (s *Session) Settings() ingest.Settings {
	return s.settings
}

func (s *Session) runLoop() {
	logrus.WithField("decks", len(s.decks)).Debug("starting session run loop")

	ticker := time.NewTicker(clockTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.broadcast(ClockPayload{Type: "clock", Clock: s.elapsed()})
		case fn := <-s.execInRunLoop:
			fn()
		case <-s.close:
			logrus.Debug("terminating session run loop")
			return
		}
	}
}

// Perform runs the named transition on deck i inside the run loop, resets
// the clock, pushes the new state to every client, and returns the label now
// showing on that deck's table.
func (s *Session) Perform(i int, action deck.Action) string {
	result := make(chan string, 1)
	s.execInRunLoop <- func() {
		label := s.decks.Apply(i, action)
		s.startedAt = time.Now()
		s.broadcast(s.statePayload())
		result <- label
	}

	return <-result
}

// State returns a snapshot of every deck, taken inside the run loop
func (s *Session) State() StatePayload {
	result := make(chan StatePayload, 1)
	s.execInRunLoop <- func() {
		result <- s.statePayload()
	}

	return <-result
}

// AddClient subscribes a client and immediately queues it the current state
func (s *Session) AddClient(client *Client) {
	s.lock.Lock()
	client.session = s
	s.clients[client] = true
	s.lock.Unlock()

	logrus.WithField("client", client.String()).Debug("client connected")

	s.execInRunLoop <- func() {
		client.queue(s.statePayload())
	}
}

// RemoveClient unsubscribes a client
func (s *Session) RemoveClient(client *Client) {
	s.lock.Lock()
	delete(s.clients, client)
	s.lock.Unlock()

	logrus.WithField("client", client.String()).Debug("client disconnected")
}

func (s *Session) broadcast(payload interface{}) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for client := range s.clients {
		client.queue(payload)
	}
}

// elapsed renders the time since the last action as MM:SS
func (s *Session) elapsed() string {
	spent := int(time.Since(s.startedAt).Seconds())
	return fmt.Sprintf("%02d:%02d", spent/60, spent%60)
}
