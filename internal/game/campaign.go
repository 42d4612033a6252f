package game

import "time"

// CampaignState is the mission-keyed bag of optional shared trackers. Only
// the sub-states the active mission uses are non-nil; a nil field means the
// mission does not play with that mechanic at all.
type CampaignState struct {
	NumberCards    *NumberCardState `json:"numberCards,omitempty"`
	Constraints    *ConstraintState `json:"constraints,omitempty"`
	Oxygen         *OxygenState     `json:"oxygen,omitempty"`
	Nano           *TrackState      `json:"nano,omitempty"`
	Bunker         *TrackState      `json:"bunker,omitempty"`
	Timer          *TimerState      `json:"timer,omitempty"`
	SpecialMarkers map[string]int   `json:"specialMarkers,omitempty"`
}

// NumberCardState drives sequence-priority missions: a deck of number
// cards, a face-up row, and a pointer to the currently active value. Deck
// contents and per-player hidden hands are secret; the face-up row and the
// discard pile are public.
type NumberCardState struct {
	Deck       []int            `json:"deck"`
	Discard    []int            `json:"discard"`
	Visible    []int            `json:"visible"`
	Hands      map[string][]int `json:"hands,omitempty"`
	Pointer    int              `json:"pointer"`
	CutsNeeded int              `json:"cutsNeeded"`
	CutsMade   int              `json:"cutsMade"`
}

// ActiveValue returns the currently cut-eligible number card value, or 0
// when the sequence is exhausted.
func (n *NumberCardState) ActiveValue() int {
	if n == nil || n.Pointer < 0 || n.Pointer >= len(n.Visible) {
		return 0
	}
	return n.Visible[n.Pointer]
}

// ConstraintCard restricts what its holder may cut while active.
type ConstraintCard struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	BanValues []int     `json:"banValues,omitempty"`
	BanColor  WireColor `json:"banColor,omitempty"`
	HasColor  bool      `json:"hasColor,omitempty"`
}

// ConstraintState holds the rotating constraint deck plus the active card
// per player. Global, when set, applies to everyone.
type ConstraintState struct {
	Deck    []ConstraintCard          `json:"deck"`
	Discard []ConstraintCard          `json:"discard"`
	Active  map[string]ConstraintCard `json:"active"`
	Global  *ConstraintCard           `json:"global,omitempty"`
}

// OxygenState tracks the shared oxygen pool and optional per-player
// allotments. Both are public.
type OxygenState struct {
	Pool      int            `json:"pool"`
	PerPlayer map[string]int `json:"perPlayer,omitempty"`
}

// TrackState is a shared marker on a fixed-length track, used by the nano
// and bunker mission families.
type TrackState struct {
	Pos    int `json:"pos"`
	Length int `json:"length"`
}

// TimerState marks the wall-clock deadline for timed missions.
type TimerState struct {
	Deadline        time.Time `json:"deadline"`
	DurationSeconds int       `json:"durationSeconds"`
}

// Expired reports whether the deadline has passed.
func (t *TimerState) Expired(now time.Time) bool {
	return t != nil && !t.Deadline.IsZero() && now.After(t.Deadline)
}

// AudioSync carries the mission soundtrack cue so reconnecting clients can
// resume playback at the right offset. Purely cosmetic, always public.
type AudioSync struct {
	TrackID   string    `json:"trackId"`
	StartedAt time.Time `json:"startedAt"`
}

// SurrenderVote tallies an in-progress vote to abandon the mission.
type SurrenderVote struct {
	Votes map[string]bool `json:"votes"`
}

// InFavor counts yes votes.
func (s *SurrenderVote) InFavor() int {
	n := 0
	for _, yes := range s.Votes {
		if yes {
			n++
		}
	}
	return n
}
