package ingest

// themePalette holds the stock Office theme colors in theme-index order:
// lt1, dk1, lt2, dk2, then accents 1-6, hyperlink, and followed hyperlink.
// The workbook's own theme part isn't reachable through the reader API, so
// custom document themes resolve against this palette instead.
var themePalette = []string{
	"FFFFFF", // 0: light 1
	"000000", // 1: dark 1
	"E7E6E6", // 2: light 2
	"44546A", // 3: dark 2
	"4472C4", // 4: accent 1
	"ED7D31", // 5: accent 2
	"A5A5A5", // 6: accent 3
	"FFC000", // 7: accent 4
	"5B9BD5", // 8: accent 5
	"70AD47", // 9: accent 6
	"0563C1", // 10: hyperlink
	"954F72", // 11: followed hyperlink
}

// indexedPalette is the fixed legacy palette of indexed workbook colors
// (ECMA-376 part 1, 18.8.27).
var indexedPalette = []string{
	"000000", "FFFFFF", "FF0000", "00FF00", "0000FF", "FFFF00", "FF00FF", "00FFFF",
	"000000", "FFFFFF", "FF0000", "00FF00", "0000FF", "FFFF00", "FF00FF", "00FFFF",
	"800000", "008000", "000080", "808000", "800080", "008080", "C0C0C0", "808080",
	"9999FF", "993366", "FFFFCC", "CCFFFF", "660066", "FF8080", "0066CC", "CCCCFF",
	"000080", "FF00FF", "FFFF00", "00FFFF", "800080", "800000", "008080", "0000FF",
	"00CCFF", "CCFFFF", "CCFFCC", "FFFF99", "99CCFF", "FF99CC", "CC99FF", "FFCC99",
	"3366FF", "33CCCC", "99CC00", "FFCC00", "FF9900", "FF6600", "666699", "969696",
	"003366", "339966", "003300", "333300", "993300", "993366", "333399", "333333",
}
