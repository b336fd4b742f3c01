package mana

import (
	"regexp"
	"strings"
)

var allColors = []Color{White, Blue, Black, Red, Green}

// defaultLandTable maps exact card names to the colors they produce, covering
// common multi-color and utility lands whose oracle text defeats the heuristic.
// The table is data, not engine logic: callers can layer their own on top via
// DetectorWithTable when card data updates.
var defaultLandTable = map[string][]Color{
	"Command Tower":       {White, Blue, Black, Red, Green},
	"Mana Confluence":     {White, Blue, Black, Red, Green},
	"City of Brass":       {White, Blue, Black, Red, Green},
	"Exotic Orchard":      {White, Blue, Black, Red, Green},
	"Reflecting Pool":     {White, Blue, Black, Red, Green},
	"Grand Coliseum":      {White, Blue, Black, Red, Green},
	"Unclaimed Territory": {White, Blue, Black, Red, Green},
	"Ancient Tomb":        {Colorless},
	"Sol Ring":            {Colorless},
	"Wastes":              {Colorless},
}

var anyColorPhrases = []string{
	"add one mana of any color",
	"adds one mana of any color",
	"add mana of any color",
	"any one color",
	"mana of any type",
}

var (
	addPattern    = regexp.MustCompile(`add\s+(?:\{[wubrgc]\}(?:\s*(?:,|or)\s*)?)+`)
	symbolContext = regexp.MustCompile(`\{([wubrgc])\}`)
)

// Detector classifies what mana a land-type card can produce. Best effort:
// name table first, then basic land types, then oracle text, then colorless.
type Detector struct {
	table map[string][]Color
}

// NewDetector returns a detector backed by the built-in land table.
func NewDetector() *Detector {
	return &Detector{table: defaultLandTable}
}

// DetectorWithTable returns a detector whose overrides take precedence over
// the built-in table.
func DetectorWithTable(overrides map[string][]Color) *Detector {
	table := make(map[string][]Color, len(defaultLandTable)+len(overrides))
	for name, colors := range defaultLandTable {
		table[name] = colors
	}
	for name, colors := range overrides {
		table[name] = colors
	}
	return &Detector{table: table}
}

// Detect returns the de-duplicated set of colors the card can produce.
func (d *Detector) Detect(name, typeLine, oracleText string) []Color {
	if colors, ok := d.table[name]; ok {
		return dedupe(colors)
	}

	if colors := basicTypeColors(typeLine); len(colors) > 0 {
		return colors
	}

	if colors := parseManaFromText(oracleText); len(colors) > 0 {
		return colors
	}

	return []Color{Colorless}
}

// DetectLandMana classifies a card using the built-in land table.
func DetectLandMana(name, typeLine, oracleText string) []Color {
	return NewDetector().Detect(name, typeLine, oracleText)
}

func basicTypeColors(typeLine string) []Color {
	line := strings.ToLower(typeLine)
	var colors []Color
	if strings.Contains(line, "plains") {
		colors = append(colors, White)
	}
	if strings.Contains(line, "island") {
		colors = append(colors, Blue)
	}
	if strings.Contains(line, "swamp") {
		colors = append(colors, Black)
	}
	if strings.Contains(line, "mountain") {
		colors = append(colors, Red)
	}
	if strings.Contains(line, "forest") {
		colors = append(colors, Green)
	}
	return colors
}

// parseManaFromText scans oracle text for mana production. Any-color phrases
// win outright; otherwise "add {x}" statements and add/produce-adjacent
// symbols are collected.
func parseManaFromText(oracleText string) []Color {
	text := strings.ToLower(oracleText)
	if text == "" {
		return nil
	}

	for _, phrase := range anyColorPhrases {
		if strings.Contains(text, phrase) {
			return append([]Color(nil), allColors...)
		}
	}

	var colors []Color
	for _, match := range addPattern.FindAllString(text, -1) {
		for _, c := range Colors {
			if strings.Contains(match, "{"+strings.ToLower(string(c))+"}") {
				colors = append(colors, c)
			}
		}
	}

	// Symbols outside an "add" chain still count when the nearby text is
	// about producing mana.
	for _, loc := range symbolContext.FindAllStringSubmatchIndex(text, -1) {
		contextStart := loc[0] - 20
		if contextStart < 0 {
			contextStart = 0
		}
		context := text[contextStart:loc[0]]
		if strings.Contains(context, "add") || strings.Contains(context, "produce") {
			colors = append(colors, Color(strings.ToUpper(text[loc[2]:loc[3]])))
		}
	}

	return dedupe(colors)
}

func dedupe(colors []Color) []Color {
	seen := make(map[Color]bool, len(colors))
	var out []Color
	for _, c := range colors {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
