package session

// DeckState is the renderable view of one deck
type DeckState struct {
	Name         string `json:"name"`
	Table        string `json:"table"`
	DisplayColor string `json:"displayColor"`
	TextColor    string `json:"textColor"`
	DrawPile     int    `json:"drawPile"`
	DiscardPile  int    `json:"discardPile"`
}

// StatePayload is pushed to every client after each action
type StatePayload struct {
	Type  string      `json:"type"`
	Title string      `json:"title"`
	Clock string      `json:"clock"`
	Decks []DeckState `json:"decks"`
}

// ClockPayload is pushed every second
type ClockPayload struct {
	Type  string `json:"type"`
	Clock string `json:"clock"`
}

// ActionMessage is what a client sends to drive a deck
type ActionMessage struct {
	Action string `json:"action"`
	Deck   int    `json:"deck"`
}

// statePayload must be called from the run loop
func (s *Session) statePayload() StatePayload {
	decks := make([]DeckState, len(s.decks))
	for i, d := range s.decks {
		decks[i] = DeckState{
			Name:         d.Name(),
			Table:        d.Table(),
			DisplayColor: d.DisplayColor(),
			TextColor:    d.TextColor(),
			DrawPile:     d.CardsLeft(),
			DiscardPile:  d.Discards(),
		}
	}

	return StatePayload{
		Type:  "state",
		Title: s.settings.Title,
		Clock: s.elapsed(),
		Decks: decks,
	}
}
