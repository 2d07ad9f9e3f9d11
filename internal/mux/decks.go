package mux

import (
	"fmt"
	"net/http"
	"strconv"

	gmux "github.com/gorilla/mux"

	"cardturner/pkg/deck"
)

type actionResponse struct {
	Deck  int    `json:"deck"`
	Table string `json:"table"`
}

func (m *Mux) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.session.State())
	}
}

func (m *Mux) postDeckAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)

		index, err := strconv.Atoi(vars["index"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		action, ok := deck.ParseAction(vars["action"])
		if !ok {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("unknown action: %s", vars["action"]))
			return
		}

		label := m.session.Perform(index, action)
		writeJSON(w, http.StatusOK, actionResponse{
			Deck:  index,
			Table: label,
		})
	}
}
