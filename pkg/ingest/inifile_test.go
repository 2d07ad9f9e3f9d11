package ingest

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"cardturner/pkg/deck"
)

// drain draws every card off the deck and returns the labels seen
func drain(d *deck.Deck) []string {
	var labels []string
	for label := d.Draw(); label != ""; label = d.Draw() {
		labels = append(labels, label)
	}

	return labels
}

func TestConfigSource_Parse(t *testing.T) {
	a := assert.New(t)

	res, err := FromFile("testdata/decks.ini").Parse()
	a.NoError(err)

	a.Equal("Suits and arcana", res.Settings.Title)
	a.Equal(500, res.Settings.Width)
	a.Equal(400, res.Settings.Height)
	a.Equal("gray", res.Settings.Color)

	// main is reserved and never becomes a deck; the rest keep file order
	a.Equal(2, len(res.Decks))
	a.Equal("Suits", res.Decks[0].Name())
	a.Equal("Major Arcana", res.Decks[1].Name())

	a.Equal("white", res.Decks[0].DisplayColor())
	a.Equal("navy", res.Decks[0].TextColor())

	// unstyled decks fall back to the defaults
	a.Equal("white", res.Decks[1].DisplayColor())
	a.Equal("black", res.Decks[1].TextColor())

	a.Equal(4, res.Decks[0].CardsLeft())
	a.Equal(3, res.Decks[1].CardsLeft())

	// shuffled, so compare contents only
	a.ElementsMatch([]string{"Hearts", "Clubs", "Diamonds", "Spades"}, drain(res.Decks[0]))
	a.ElementsMatch([]string{"The Fool", "The Magician", "The High Priestess"}, drain(res.Decks[1]))
}

func TestConfigSource_Parse_missingFile(t *testing.T) {
	_, err := FromFile("testdata/no-such-file.ini").Parse()
	assert.Error(t, err)
}

func TestSplitCards(t *testing.T) {
	a := assert.New(t)

	a.Equal([]deck.Card{"A", "B", "C"}, splitCards("A,B,C"))
	a.Equal([]deck.Card{"A", "B"}, splitCards(`"A,B"`))

	// empty segments are dropped, not blank cards
	a.Equal([]deck.Card{"A", "B"}, splitCards("A,,B,"))
	a.Empty(splitCards(""))
}
