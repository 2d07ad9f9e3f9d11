// Package ingest reads an external deck source, a sectioned config file or an
// XLSX workbook, and turns it into a ready-to-play deck collection. Ingestion
// runs once at startup, is fail-fast, and never produces a partial
// collection.
package ingest

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"cardturner/pkg/deck"
)

// Settings are the session-wide defaults carried by the reserved main
// section of a sectioned source. Workbook sources always use the defaults.
type Settings struct {
	Title  string
	Width  int
	Height int
	Color  string
}

// DefaultSettings returns the settings used when the source doesn't override
// them
func DefaultSettings() Settings {
	return Settings{
		Title:  "Card turner",
		Width:  400,
		Height: 400,
		Color:  "black",
	}
}

// Result is a fully ingested source: the decks in discovery order, each
// populated and shuffled, plus the session settings.
type Result struct {
	Decks    deck.Collection
	Settings Settings
}

// Source is one external deck source
type Source interface {
	// Parse reads the source once and produces the collection. Any failure
	// aborts the whole ingestion.
	Parse() (*Result, error)
}

// FromFile returns the source implementation for path, chosen by extension:
// .xlsx is read as a workbook, everything else as a sectioned config file.
func FromFile(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &workbookSource{path: path}
	}

	return &configSource{path: path}
}

// trimQuotes strips surrounding double quotes, if any
func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// splitCards turns a comma-delimited cards field into cards. Empty segments
// are dropped: an empty label would read as "no card" and then leak out of
// the deck on the next transition.
func splitCards(s string) []deck.Card {
	parts := strings.Split(trimQuotes(s), ",")

	cards := make([]deck.Card, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}

		cards = append(cards, deck.Card(p))
	}

	return cards
}

// logDecks reports what ingestion produced. Diagnostic only.
func logDecks(decks deck.Collection) {
	logrus.WithField("decks", len(decks)).Info("card decks read")

	for _, d := range decks {
		logrus.WithFields(logrus.Fields{
			"deck":  d.Name(),
			"cards": d.CardsLeft(),
		}).Debug("deck loaded")
	}
}
