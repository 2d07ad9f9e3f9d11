package ingest

import (
	"fmt"

	ini "gopkg.in/ini.v1"

	"cardturner/pkg/deck"
)

// mainSection is the reserved section carrying session-wide defaults. It is
// never a deck.
const mainSection = "main"

// configSource reads a sectioned key/value file: one deck per section, in
// file order, with a comma-delimited cards field and optional verbatim
// color/textcolor fields.
type configSource struct {
	path string
}

func (s *configSource) Parse() (*Result, error) {
	cfg, err := ini.Load(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not read deck config %s: %w", s.path, err)
	}

	res := &Result{Settings: DefaultSettings()}

	for _, sec := range cfg.Sections() {
		switch sec.Name() {
		case ini.DefaultSection:
			continue
		case mainSection:
			applySettings(sec, &res.Settings)
			continue
		}

		// color syntax isn't validated here; bad values are the renderer's
		// problem
		d := deck.New(sec.Name(), sec.Key("color").String(), sec.Key("textcolor").String())

		if cards := sec.Key("cards").String(); cards != "" {
			d.Add(splitCards(cards)...)
		}

		d.Shuffle()
		res.Decks = append(res.Decks, d)
	}

	logDecks(res.Decks)
	return res, nil
}

func applySettings(sec *ini.Section, settings *Settings) {
	if v := sec.Key("title").String(); v != "" {
		settings.Title = v
	}

	if v, err := sec.Key("width").Int(); err == nil && v > 0 {
		settings.Width = v
	}

	if v, err := sec.Key("height").Int(); err == nil && v > 0 {
		settings.Height = v
	}

	if v := sec.Key("color").String(); v != "" {
		settings.Color = v
	}
}
