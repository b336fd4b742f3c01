package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Cost represents a parsed mana cost.
//
// Hybrid symbols ({W/U}, {2/B}, ...) are counted toward Total and treated as
// generic for payment purposes; they are not attributed to a specific color.
// {X} parses but contributes zero. Both are documented simplifications.
type Cost struct {
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
	Generic   int
	Hybrid    int
	HasX      bool
	Total     int
}

var symbolPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ParseCost parses a mana cost string (e.g., "{2}{W}{U}", "{X}{R}").
// An empty string yields a zero cost.
func ParseCost(costStr string) (Cost, error) {
	var cost Cost
	if costStr == "" {
		return cost, nil
	}

	matches := symbolPattern.FindAllStringSubmatch(costStr, -1)
	for _, match := range matches {
		symbol := strings.ToUpper(strings.TrimSpace(match[1]))

		switch symbol {
		case "X":
			cost.HasX = true
		case "W":
			cost.White++
			cost.Total++
		case "U":
			cost.Blue++
			cost.Total++
		case "B":
			cost.Black++
			cost.Total++
		case "R":
			cost.Red++
			cost.Total++
		case "G":
			cost.Green++
			cost.Total++
		case "C":
			cost.Colorless++
			cost.Total++
		default:
			if num, err := strconv.Atoi(symbol); err == nil && num >= 0 {
				cost.Generic += num
				cost.Total += num
			} else if strings.Contains(symbol, "/") {
				cost.Hybrid++
				cost.Total++
			} else {
				return Cost{}, fmt.Errorf("unknown mana symbol: {%s}", symbol)
			}
		}
	}

	return cost, nil
}

// Required returns the specific amount of the given color this cost demands.
func (c Cost) Required(col Color) int {
	switch col {
	case White:
		return c.White
	case Blue:
		return c.Blue
	case Black:
		return c.Black
	case Red:
		return c.Red
	case Green:
		return c.Green
	case Colorless:
		return c.Colorless
	default:
		return 0
	}
}

// TotalGeneric returns the generic requirement including hybrid symbols,
// which are payable with mana of any color.
func (c Cost) TotalGeneric() int {
	return c.Generic + c.Hybrid
}

// String renders the cost back into symbol notation.
func (c Cost) String() string {
	var b strings.Builder
	if c.HasX {
		b.WriteString("{X}")
	}
	if c.Generic > 0 {
		fmt.Fprintf(&b, "{%d}", c.Generic)
	}
	for _, col := range Colors {
		for i := 0; i < c.Required(col); i++ {
			fmt.Fprintf(&b, "{%s}", col)
		}
	}
	return b.String()
}
