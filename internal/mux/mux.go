package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"cardturner/pkg/session"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	session *session.Session
}

// NewMux returns a new HTTP mux around a running session
func NewMux(version string, sess *session.Session) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		session: sess,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/state").Handler(this.getState())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())
	r.Methods(http.MethodPost).Path("/decks/{index:[0-9]+}/{action:draw|undraw|discard|undiscard}").Handler(this.postDeckAction())

	return this
}
