package game

import "fmt"

// WireColor identifies the physical color of a wire tile.
type WireColor int

const (
	Blue WireColor = iota
	Red
	Yellow
)

func (c WireColor) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// WireValue is the true identity of a wire. Blue wires carry 1-12; red and
// yellow wires carry a color sentinel instead of a number. ValueHidden is
// never stored server-side; it only appears in filtered views.
type WireValue int

const (
	ValueHidden WireValue = 0
	ValueRed    WireValue = -1
	ValueYellow WireValue = -2
)

// BlueValueMin and BlueValueMax bound the blue wire number range.
const (
	BlueValueMin = 1
	BlueValueMax = 12
)

// BlueCopies is how many tiles of each blue value exist in a deal.
const BlueCopies = 4

func (v WireValue) String() string {
	switch v {
	case ValueHidden:
		return "?"
	case ValueRed:
		return "RED"
	case ValueYellow:
		return "YELLOW"
	default:
		return fmt.Sprintf("%d", int(v))
	}
}

// IsNumber reports whether v is a concrete blue wire number.
func (v WireValue) IsNumber() bool {
	return v >= BlueValueMin && v <= BlueValueMax
}

// Announceable reports whether v can be announced for a cut: a blue number
// or the yellow sentinel. Red wires are never announced; they go through
// the reveal ritual instead.
func (v WireValue) Announceable() bool {
	return v.IsNumber() || v == ValueYellow
}

// WireTile is one physical wire on a player's stand.
//
// SortValue drives the left-to-right ordering on a stand: blue tiles use the
// integers 1-12, red and yellow tiles use fractional values so they sort
// between "their" neighboring numbers. GameValue is always populated in
// server-side state and stripped by the view filter for tiles the viewer is
// not entitled to see.
type WireTile struct {
	ID         string    `json:"id"`
	Color      WireColor `json:"color"`
	SortValue  float64   `json:"sortValue"`
	GameValue  WireValue `json:"gameValue"`
	Cut        bool      `json:"cut"`
	Revealed   bool      `json:"revealed"`
	XMarked    bool      `json:"xMarked,omitempty"`
	UpsideDown bool      `json:"upsideDown,omitempty"`
}

// Public reports whether the tile's true value is public knowledge.
func (t *WireTile) Public() bool {
	return t.Cut || t.Revealed
}

// NewBlueTile builds a numbered blue tile.
func NewBlueTile(id string, value int) WireTile {
	return WireTile{
		ID:        id,
		Color:     Blue,
		SortValue: float64(value),
		GameValue: WireValue(value),
	}
}

// NewSpecialTile builds a red or yellow tile at the given fractional sort
// position.
func NewSpecialTile(id string, color WireColor, sortValue float64) WireTile {
	value := ValueRed
	if color == Yellow {
		value = ValueYellow
	}
	return WireTile{
		ID:        id,
		Color:     color,
		SortValue: sortValue,
		GameValue: value,
	}
}
