package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cardturner/pkg/deck"
)

// workbookSource reads an XLSX workbook: one deck per column of the active
// sheet, named by the row 1 header, styled by that header cell's fill and
// font colors.
type workbookSource struct {
	path string
}

func (s *workbookSource) Parse() (*Result, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	decks, err := parseWorkbook(f)
	if err != nil {
		return nil, err
	}

	logDecks(decks)
	return &Result{Decks: decks, Settings: DefaultSettings()}, nil
}

// parseWorkbook reads the active sheet only. Blank header cells don't start
// a deck, and blank cells in a card column are skipped, never blank cards.
func parseWorkbook(f *excelize.File) (deck.Collection, error) {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	var decks deck.Collection
	for col, name := range rows[0] {
		if name == "" {
			continue
		}

		displayColor, textColor, err := headerColors(f, sheet, col)
		if err != nil {
			return nil, err
		}

		d := deck.New(trimQuotes(name), displayColor, textColor)
		for _, row := range rows[1:] {
			if col < len(row) && row[col] != "" {
				d.Add(deck.Card(trimQuotes(row[col])))
			}
		}

		d.Shuffle()
		decks = append(decks, d)
	}

	return decks, nil
}

// headerColors resolves the header cell's fill into the deck's display color
// and its font color into the text color.
func headerColors(f *excelize.File, sheet string, col int) (string, string, error) {
	cell, err := excelize.CoordinatesToCellName(col+1, 1)
	if err != nil {
		return "", "", err
	}

	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", "", fmt.Errorf("could not read style of %s: %w", cell, err)
	}

	style, err := f.GetStyle(styleID)
	if err != nil {
		return "", "", fmt.Errorf("could not load style %d: %w", styleID, err)
	}

	displayColor, err := fillSpec(style.Fill).Resolve()
	if err != nil {
		return "", "", fmt.Errorf("header %s fill: %w", cell, err)
	}

	textColor, err := fontSpec(style.Font).Resolve()
	if err != nil {
		return "", "", fmt.Errorf("header %s font: %w", cell, err)
	}

	return displayColor, textColor, nil
}

// fillSpec extracts the raw color of a pattern fill
func fillSpec(fill excelize.Fill) ColorSpec {
	if len(fill.Color) == 0 || fill.Color[0] == "" {
		return ColorSpec{Kind: ColorNone}
	}

	return ColorSpec{Kind: ColorRGB, RGB: strings.TrimPrefix(fill.Color[0], "#")}
}

// fontSpec extracts the raw font color, whichever of the three encodings the
// style used
func fontSpec(font *excelize.Font) ColorSpec {
	switch {
	case font == nil:
		return ColorSpec{Kind: ColorNone}
	case font.Color != "":
		return ColorSpec{Kind: ColorRGB, RGB: strings.TrimPrefix(font.Color, "#")}
	case font.ColorTheme != nil:
		return ColorSpec{Kind: ColorTheme, Theme: *font.ColorTheme, Tint: font.ColorTint}
	case font.ColorIndexed > 0:
		return ColorSpec{Kind: ColorIndexed, Indexed: font.ColorIndexed}
	}

	return ColorSpec{Kind: ColorNone}
}
