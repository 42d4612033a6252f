package game

// InfoToken is a marker placed on a stand slot recording a previously
// revealed or declared value. Declared is false for tokens a mission places
// as deliberate misinformation.
type InfoToken struct {
	Value    WireValue `json:"value"`
	Position int       `json:"position"`
	Declared bool      `json:"declared"`
}

// Player is one seat at the table. Hand order is semantically meaningful:
// adjacency matters for label equipment and stand splits. Tiles are never
// removed from Hand; cutting flips the Cut flag and the tile stays as
// history.
type Player struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Hand          []WireTile  `json:"hand"`
	StandSizes    []int       `json:"standSizes"`
	InfoTokens    []InfoToken `json:"infoTokens"`
	Character     CharacterID `json:"character,omitempty"`
	CharacterUsed bool        `json:"characterUsed"`
	IsCaptain     bool        `json:"isCaptain"`
	Connected     bool        `json:"connected"`
	IsBot         bool        `json:"isBot"`
}

// UncutCount returns how many uncut tiles of the given value the player
// holds.
func (p *Player) UncutCount(v WireValue) int {
	n := 0
	for i := range p.Hand {
		if !p.Hand[i].Cut && p.Hand[i].GameValue == v {
			n++
		}
	}
	return n
}

// AllUncutRed reports whether every uncut tile left in the hand is red.
// False when the hand has no uncut tiles at all.
func (p *Player) AllUncutRed() bool {
	any := false
	for i := range p.Hand {
		if p.Hand[i].Cut {
			continue
		}
		if p.Hand[i].Color != Red {
			return false
		}
		any = true
	}
	return any
}

// TileAt returns the tile at the hand index, or nil when out of range.
func (p *Player) TileAt(idx int) *WireTile {
	if idx < 0 || idx >= len(p.Hand) {
		return nil
	}
	return &p.Hand[idx]
}

// StandOf returns which stand the hand index belongs to.
func (p *Player) StandOf(idx int) int {
	offset := 0
	for stand, size := range p.StandSizes {
		if idx < offset+size {
			return stand
		}
		offset += size
	}
	return 0
}

// HasInfoTokenAt reports whether a token already sits on the position.
func (p *Player) HasInfoTokenAt(pos int) bool {
	for _, tok := range p.InfoTokens {
		if tok.Position == pos {
			return true
		}
	}
	return false
}
