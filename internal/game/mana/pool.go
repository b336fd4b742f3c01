package mana

// Color is a single mana symbol as it appears in costs and on the wire.
type Color string

const (
	White     Color = "W"
	Blue      Color = "U"
	Black     Color = "B"
	Red       Color = "R"
	Green     Color = "G"
	Colorless Color = "C"
)

// Colors lists every color in canonical WUBRG+C order.
var Colors = []Color{White, Blue, Black, Red, Green, Colorless}

// paymentOrder is the fixed priority used when generic costs are auto-paid:
// colorless is drained first so colored mana stays available for colored costs.
var paymentOrder = []Color{Colorless, White, Blue, Black, Red, Green}

// Valid reports whether c is one of the six recognized mana colors.
func (c Color) Valid() bool {
	switch c {
	case White, Blue, Black, Red, Green, Colorless:
		return true
	}
	return false
}

// Pool is a player's mana pool. It is a value type: mutating operations
// return a new pool and never leave a counter negative.
type Pool struct {
	White     int `json:"W"`
	Blue      int `json:"U"`
	Black     int `json:"B"`
	Red       int `json:"R"`
	Green     int `json:"G"`
	Colorless int `json:"C"`
}

// Get returns the amount of the given color in the pool.
func (p Pool) Get(c Color) int {
	switch c {
	case White:
		return p.White
	case Blue:
		return p.Blue
	case Black:
		return p.Black
	case Red:
		return p.Red
	case Green:
		return p.Green
	case Colorless:
		return p.Colorless
	default:
		return 0
	}
}

func (p Pool) with(c Color, amount int) Pool {
	if amount < 0 {
		amount = 0
	}
	switch c {
	case White:
		p.White = amount
	case Blue:
		p.Blue = amount
	case Black:
		p.Black = amount
	case Red:
		p.Red = amount
	case Green:
		p.Green = amount
	case Colorless:
		p.Colorless = amount
	}
	return p
}

// Add returns a pool with amount of the given color added.
func (p Pool) Add(c Color, amount int) Pool {
	if amount <= 0 {
		return p
	}
	return p.with(c, p.Get(c)+amount)
}

// Remove returns a pool with amount of the given color removed,
// flooring at zero.
func (p Pool) Remove(c Color, amount int) Pool {
	if amount <= 0 {
		return p
	}
	return p.with(c, p.Get(c)-amount)
}

// Total returns the total mana count across all colors.
func (p Pool) Total() int {
	return p.White + p.Blue + p.Black + p.Red + p.Green + p.Colorless
}
