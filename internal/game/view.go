package game

// SpectatorViewer is the viewer identity for connections that own no seat.
// Spectators see exactly what any non-owner sees.
const SpectatorViewer = "spectator"

// FilterState produces the redacted projection of the state that is safe to
// send to the viewer. It is a pure function over a deep copy: the caller's
// state is never touched, and filtering an already-filtered state is a
// no-op (idempotent).
//
// The visibility rule is uniform: a tile's numeric identity (GameValue and
// SortValue) is visible iff the tile is cut, face up, or in the viewer's own
// hand. Color is always visible. An upside-down wire is hidden from its own
// owner too until flipped. Campaign sub-state follows the same owner rule:
// decks are redacted for everyone, per-player hidden hands for everyone but
// their owner, and shared trackers are fully public.
func FilterState(s *GameState, viewerID string) *GameState {
	out := cloneState(s)

	for i := range out.Players {
		p := &out.Players[i]
		owner := p.ID == viewerID
		for j := range p.Hand {
			tile := &p.Hand[j]
			if tile.Public() {
				continue
			}
			if owner && !tile.UpsideDown {
				continue
			}
			tile.GameValue = ValueHidden
			tile.SortValue = 0
		}
	}

	if nc := out.Campaign.NumberCards; nc != nil {
		for i := range nc.Deck {
			nc.Deck[i] = 0
		}
		for playerID, hand := range nc.Hands {
			if playerID == viewerID {
				continue
			}
			for i := range hand {
				hand[i] = 0
			}
		}
	}

	if cs := out.Campaign.Constraints; cs != nil {
		// The rotating deck is face down; only its size is public. Active
		// cards and the discard pile stay visible.
		for i := range cs.Deck {
			cs.Deck[i] = ConstraintCard{}
		}
	}

	kept := out.Log[:0]
	for _, entry := range out.Log {
		if entry.VisibleTo != "" && entry.VisibleTo != viewerID {
			continue
		}
		kept = append(kept, entry)
	}
	out.Log = kept

	return out
}

// cloneState deep-copies a GameState so the filter can redact freely.
func cloneState(s *GameState) *GameState {
	out := *s

	out.Players = make([]Player, len(s.Players))
	for i := range s.Players {
		p := s.Players[i]
		p.Hand = append([]WireTile(nil), p.Hand...)
		p.StandSizes = append([]int(nil), p.StandSizes...)
		p.InfoTokens = append([]InfoToken(nil), p.InfoTokens...)
		out.Players[i] = p
	}

	out.Board.Validation = copyIntMap(s.Board.Validation)
	out.Board.Markers = append([]EqualityMarker(nil), s.Board.Markers...)
	out.Board.Equipment = append([]EquipmentCard(nil), s.Board.Equipment...)

	if s.Campaign.NumberCards != nil {
		nc := *s.Campaign.NumberCards
		nc.Deck = append([]int(nil), nc.Deck...)
		nc.Discard = append([]int(nil), nc.Discard...)
		nc.Visible = append([]int(nil), nc.Visible...)
		if nc.Hands != nil {
			hands := make(map[string][]int, len(nc.Hands))
			for k, v := range nc.Hands {
				hands[k] = append([]int(nil), v...)
			}
			nc.Hands = hands
		}
		out.Campaign.NumberCards = &nc
	}
	if s.Campaign.Constraints != nil {
		cs := *s.Campaign.Constraints
		cs.Deck = append([]ConstraintCard(nil), cs.Deck...)
		cs.Discard = append([]ConstraintCard(nil), cs.Discard...)
		active := make(map[string]ConstraintCard, len(cs.Active))
		for k, v := range cs.Active {
			active[k] = v
		}
		cs.Active = active
		if cs.Global != nil {
			global := *cs.Global
			cs.Global = &global
		}
		out.Campaign.Constraints = &cs
	}
	if s.Campaign.Oxygen != nil {
		ox := *s.Campaign.Oxygen
		ox.PerPlayer = copyIntMapString(s.Campaign.Oxygen.PerPlayer)
		out.Campaign.Oxygen = &ox
	}
	if s.Campaign.Nano != nil {
		nano := *s.Campaign.Nano
		out.Campaign.Nano = &nano
	}
	if s.Campaign.Bunker != nil {
		bunker := *s.Campaign.Bunker
		out.Campaign.Bunker = &bunker
	}
	if s.Campaign.Timer != nil {
		timer := *s.Campaign.Timer
		out.Campaign.Timer = &timer
	}
	out.Campaign.SpecialMarkers = copyIntMapString(s.Campaign.SpecialMarkers)

	out.Log = append([]LogEntry(nil), s.Log...)
	if s.NextSeat != nil {
		seat := *s.NextSeat
		out.NextSeat = &seat
	}
	if s.Pending != nil {
		pending := *s.Pending
		pending.Tiles = append([]int(nil), s.Pending.Tiles...)
		pending.Reporters = append([]string(nil), s.Pending.Reporters...)
		out.Pending = &pending
	}
	if s.Audio != nil {
		audio := *s.Audio
		out.Audio = &audio
	}
	if s.Surrender != nil {
		votes := make(map[string]bool, len(s.Surrender.Votes))
		for k, v := range s.Surrender.Votes {
			votes[k] = v
		}
		out.Surrender = &SurrenderVote{Votes: votes}
	}
	return &out
}

func copyIntMap(m map[int]int) map[int]int {
	if m == nil {
		return nil
	}
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyIntMapString(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
