package game

// Phase is the lifecycle stage of a game. Transitions are monotonic:
// setup_info_tokens -> playing -> finished.
type Phase string

const (
	PhaseSetupInfoTokens Phase = "setup_info_tokens"
	PhasePlaying         Phase = "playing"
	PhaseFinished        Phase = "finished"
)

// Result is the terminal outcome of a finished game. Empty until the phase
// reaches finished.
type Result string

const (
	ResultNone          Result = ""
	ResultWin           Result = "win"
	ResultLossRedWire   Result = "loss_red_wire"
	ResultLossDetonator Result = "loss_detonator"
	ResultLossTimer     Result = "loss_timer"
	ResultLossSurrender Result = "loss_surrender"
	ResultLossOxygen    Result = "loss_oxygen"
)

// EqualityMarker records a label-equipment placement: whether the tiles at
// two positions of a player's stand share the same value.
type EqualityMarker struct {
	PlayerID string `json:"playerId"`
	PosA     int    `json:"posA"`
	PosB     int    `json:"posB"`
	Equal    bool   `json:"equal"`
}

// BoardState is the shared, always-public part of the table.
type BoardState struct {
	DetonatorPos int `json:"detonatorPos"`
	DetonatorMax int `json:"detonatorMax"`
	// Validation maps a blue value to the number of copies confirmed cut.
	// It drives solo-cut legality and equipment unlock thresholds.
	Validation map[int]int      `json:"validation"`
	Markers    []EqualityMarker `json:"markers,omitempty"`
	Equipment  []EquipmentCard  `json:"equipment,omitempty"`
}

// LogEntry is one line in the append-only game log. VisibleTo restricts an
// entry to a single player; empty means public.
type LogEntry struct {
	Turn      int    `json:"turn"`
	PlayerID  string `json:"playerId,omitempty"`
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	VisibleTo string `json:"visibleTo,omitempty"`
}

// GameState is the aggregate root: the fully omniscient server-side state of
// one room's game. It is created by StartGame, mutated exclusively by the
// Apply* executors, and frozen once Result is set.
type GameState struct {
	MissionID     int           `json:"missionId"`
	Phase         Phase         `json:"phase"`
	Players       []Player      `json:"players"`
	Board         BoardState    `json:"board"`
	Campaign      CampaignState `json:"campaign"`
	CurrentPlayer int           `json:"currentPlayer"`
	// NextSeat, when set, names the seat that takes the next turn instead
	// of clockwise order. Installed by choose-next resolutions and consumed
	// by the turn handoff.
	NextSeat    *int                 `json:"nextSeat,omitempty"`
	TurnNumber  int                  `json:"turnNumber"`
	TurnWrapped bool                 `json:"turnWrapped,omitempty"`
	Result      Result               `json:"result,omitempty"`
	Log         []LogEntry           `json:"log"`
	Pending     *PendingForcedAction `json:"pending,omitempty"`
	Audio       *AudioSync           `json:"audio,omitempty"`
	Surrender   *SurrenderVote       `json:"surrender,omitempty"`
}

// PlayerByID returns the player with the given id, or nil.
func (s *GameState) PlayerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

func (s *GameState) playerIndex(id string) int {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// CurrentPlayerID returns the id of the seat whose turn it is.
func (s *GameState) CurrentPlayerID() string {
	if s.CurrentPlayer < 0 || s.CurrentPlayer >= len(s.Players) {
		return ""
	}
	return s.Players[s.CurrentPlayer].ID
}

// Captain returns the captain, or nil when no captain is assigned.
func (s *GameState) Captain() *Player {
	for i := range s.Players {
		if s.Players[i].IsCaptain {
			return &s.Players[i]
		}
	}
	return nil
}

// Finished reports whether the game has reached a terminal result.
func (s *GameState) Finished() bool {
	return s.Phase == PhaseFinished
}

// TotalCopies returns how many tiles of the blue value exist in this deal.
func (s *GameState) TotalCopies(v WireValue) int {
	n := 0
	for i := range s.Players {
		for j := range s.Players[i].Hand {
			if s.Players[i].Hand[j].GameValue == v {
				n++
			}
		}
	}
	return n
}

// CutCopies returns how many tiles of the value have been cut so far.
func (s *GameState) CutCopies(v WireValue) int {
	n := 0
	for i := range s.Players {
		for j := range s.Players[i].Hand {
			t := &s.Players[i].Hand[j]
			if t.Cut && t.GameValue == v {
				n++
			}
		}
	}
	return n
}

// RemainingCopies returns how many uncut tiles of the value are left in the
// game, regardless of whose stand they sit on.
func (s *GameState) RemainingCopies(v WireValue) int {
	return s.TotalCopies(v) - s.CutCopies(v)
}

// AnyUncutRed reports whether any red wire is still uncut and unrevealed.
func (s *GameState) AnyUncutRed() bool {
	for i := range s.Players {
		for j := range s.Players[i].Hand {
			t := &s.Players[i].Hand[j]
			if t.Color == Red && !t.Cut && !t.Revealed {
				return true
			}
		}
	}
	return false
}

// appendLog adds an entry stamped with the current turn number.
func (s *GameState) appendLog(playerID, kind, text string) {
	s.Log = append(s.Log, LogEntry{
		Turn:     s.TurnNumber,
		PlayerID: playerID,
		Kind:     kind,
		Text:     text,
	})
}

// appendPrivateLog adds an entry only the given viewer will receive.
func (s *GameState) appendPrivateLog(playerID, viewerID, kind, text string) {
	s.Log = append(s.Log, LogEntry{
		Turn:      s.TurnNumber,
		PlayerID:  playerID,
		Kind:      kind,
		Text:      text,
		VisibleTo: viewerID,
	})
}
