package deck

import (
	"math/rand"
	"time"
)

// default colors for decks the source doesn't style
const (
	DefaultDisplayColor = "white"
	DefaultTextColor    = "black"
)

// Deck owns the three zones of one deck of cards: the face-down draw pile,
// the table holding at most one face-up card, and the discard pile. Every
// card is in exactly one zone at all times, and the only way to move a card
// between zones is one of the four transition methods.
type Deck struct {
	name         string
	displayColor string
	textColor    string

	drawPile []Card
	table    Card // "" means nothing is showing
	discards []Card

	seed int64
	rng  *rand.Rand
}

// New returns a new, empty deck. Empty colors fall back to the defaults.
// Important! the deck is unshuffled. Add() the cards and call Shuffle()
// before play.
func New(name, displayColor, textColor string) *Deck {
	if displayColor == "" {
		displayColor = DefaultDisplayColor
	}

	if textColor == "" {
		textColor = DefaultTextColor
	}

	return &Deck{
		name:         name,
		displayColor: displayColor,
		textColor:    textColor,
		seed:         -1,
	}
}

// Add appends cards to the draw pile
func (d *Deck) Add(cards ...Card) {
	d.drawPile = append(d.drawPile, cards...)
}

// SetSeed will set the shuffle seed
// This should only be used by tests. Setting the seed is normally handled
// when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

// Shuffle randomizes the order of the draw pile and of the discard pile,
// independently. The table is never touched. Shuffle is called once right
// after the deck is populated; no transition re-shuffles.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.SetSeed(time.Now().UnixNano())
	}

	shuffle(d.rng, d.drawPile)
	shuffle(d.rng, d.discards)
}

func shuffle(rng *rand.Rand, cards []Card) {
	for j := len(cards) - 1; j > 0; j-- {
		i := rng.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// zone is where vacateTable sends the card currently showing
type zone int

const (
	toDiscards zone = iota
	toDrawPile
)

// vacateTable moves the table card, if any, to the target zone. Draw and
// Undiscard both call this first, which is what keeps the table at one card:
// drawing with a card still showing silently discards it.
func (d *Deck) vacateTable(target zone) {
	if d.table == "" {
		return
	}

	switch target {
	case toDiscards:
		d.discards = append(d.discards, d.table)
	case toDrawPile:
		d.drawPile = append(d.drawPile, d.table)
	}

	d.table = ""
}

// Draw moves the next card from the draw pile to the table. A card already
// showing goes to the discard pile first. Returns the label now showing, or
// "" if the draw pile is exhausted. Exhaustion is not an error, and drawing
// from an exhausted pile with nothing showing changes nothing.
func (d *Deck) Draw() string {
	d.vacateTable(toDiscards)

	if n := len(d.drawPile); n > 0 {
		d.table = d.drawPile[n-1]
		d.drawPile = d.drawPile[:n-1]
	}

	return d.table.String()
}

// Discard moves the table card, if any, to the discard pile. Always returns
// "": after a discard nothing is showing, and a discard with nothing showing
// is a no-op.
func (d *Deck) Discard() string {
	d.vacateTable(toDiscards)
	return ""
}

// Undraw puts the table card, if any, back on the draw end of the draw pile,
// so an immediate Draw shows it again. Always returns "".
func (d *Deck) Undraw() string {
	d.vacateTable(toDrawPile)
	return ""
}

// Undiscard moves the most recently discarded card back to the table. A card
// already showing is returned to the draw pile first. Returns the label now
// showing, or "" if the discard pile is empty.
func (d *Deck) Undiscard() string {
	d.vacateTable(toDrawPile)

	if n := len(d.discards); n > 0 {
		d.table = d.discards[n-1]
		d.discards = d.discards[:n-1]
	}

	return d.table.String()
}

// Name returns the deck's display name
func (d *Deck) Name() string {
	return d.name
}

// DisplayColor returns the deck's background color
func (d *Deck) DisplayColor() string {
	return d.displayColor
}

// TextColor returns the deck's label color
func (d *Deck) TextColor() string {
	return d.textColor
}

// Table returns the label of the card currently showing, or ""
func (d *Deck) Table() string {
	return d.table.String()
}

// CardsLeft returns the number of cards left in the draw pile
func (d *Deck) CardsLeft() int {
	return len(d.drawPile)
}

// Discards returns the number of cards in the discard pile
func (d *Deck) Discards() int {
	return len(d.discards)
}

// Size returns the total number of cards across all three zones
func (d *Deck) Size() int {
	n := len(d.drawPile) + len(d.discards)
	if d.table != "" {
		n++
	}

	return n
}
