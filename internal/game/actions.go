package game

import (
	"fmt"
	"sort"
	"time"
)

// GameAction is the lightweight public cue broadcast alongside state
// updates. It drives client animation and log display and carries
// already-public information only.
type GameAction struct {
	Kind           string `json:"kind"`
	PlayerID       string `json:"playerId,omitempty"`
	TargetPlayerID string `json:"targetPlayerId,omitempty"`
	Value          int    `json:"value,omitempty"`
	Success        bool   `json:"success"`
	Detonator      int    `json:"detonator"`
	Result         Result `json:"result,omitempty"`
}

// Seat is the minimal identity the lobby hands to StartGame.
type Seat struct {
	ID    string
	Name  string
	IsBot bool
}

const defaultDetonatorMax = 8

// StartGame deals a fresh game for the mission and seats. The seed fully
// determines the deal; production callers pass NewSeed(), tests pass fixed
// values.
func StartGame(missionID int, seats []Seat, seed int64, now time.Time) (*GameState, error) {
	schema, err := MissionByID(missionID)
	if err != nil {
		return nil, err
	}
	if !schema.AllowsPlayerCount(len(seats)) {
		return nil, fmt.Errorf("mission %d does not support %d players", missionID, len(seats))
	}
	setup := schema.SetupFor(len(seats))
	rng := NewRand(seed)

	players := make([]Player, len(seats))
	for i, seat := range seats {
		players[i] = Player{
			ID:        seat.ID,
			Name:      seat.Name,
			IsBot:     seat.IsBot,
			Connected: true,
		}
	}
	dealer := NewDealer(rng)
	players, err = dealer.Deal(setup, players)
	if err != nil {
		return nil, err
	}
	assignCharacters(players, rng)
	captainSeat := rng.Intn(len(players))
	players[captainSeat].IsCaptain = true

	detonatorMax := setup.DetonatorMax
	if detonatorMax <= 0 {
		detonatorMax = defaultDetonatorMax
	}
	validation := make(map[int]int, setup.BlueMax-setup.BlueMin+1)
	for v := setup.BlueMin; v <= setup.BlueMax; v++ {
		validation[v] = 0
	}

	s := &GameState{
		MissionID:     missionID,
		Phase:         PhaseSetupInfoTokens,
		Players:       players,
		CurrentPlayer: captainSeat,
		Board: BoardState{
			DetonatorMax: detonatorMax,
			Validation:   validation,
			Equipment:    equipmentForSetup(setup),
		},
	}
	s.appendLog("", "game_started", fmt.Sprintf("mission %d (%s) with %d players", missionID, schema.Name, len(seats)))
	applySetupHooks(s, schema, rng, now)
	return s, nil
}

// ApplyPlaceInfoToken handles the setup-phase token placement. Once every
// seat has placed, the game moves to playing with the captain acting first.
func ApplyPlaceInfoToken(s *GameState, playerID string, req PlaceInfoTokenRequest, now time.Time) (*GameAction, error) {
	if err := ValidatePlaceInfoToken(s, playerID, req); err != nil {
		return nil, err
	}
	p := s.PlayerByID(playerID)
	p.InfoTokens = append(p.InfoTokens, InfoToken{
		Value:    WireValue(req.Value),
		Position: req.Position,
		Declared: !s.Schema().HasHook(HookFalseToken),
	})
	s.appendLog(playerID, "info_token", p.Name+" placed their info token")

	placed := 0
	for i := range s.Players {
		if len(s.Players[i].InfoTokens) > 0 {
			placed++
		}
	}
	if placed == len(s.Players) {
		s.Phase = PhasePlaying
		s.TurnNumber = 1
		for i := range s.Players {
			if s.Players[i].IsCaptain {
				s.CurrentPlayer = i
			}
		}
		s.appendLog("", "phase_playing", "all tokens placed, defusal begins")
		installYellowAssign(s, s.Schema())
		if s.Pending == nil {
			startOfTurnHooks(s, s.Schema())
		}
	}
	return &GameAction{Kind: "info_token", PlayerID: playerID, Detonator: s.Board.DetonatorPos}, nil
}

// ApplyDualCut executes the primary cooperative action. On a match both the
// nominated tile and the actor's own copy are cut; on a mismatch the
// detonator advances one notch and the nominated tile gets an info token
// recording its true value. A nominated red wire detonates immediately.
func ApplyDualCut(s *GameState, playerID string, req DualCutRequest, now time.Time) (*GameAction, error) {
	if err := ValidateDualCut(s, playerID, req); err != nil {
		return nil, err
	}
	schema := s.Schema()
	actor := s.PlayerByID(playerID)
	target := s.PlayerByID(req.TargetPlayerID)
	tile := target.TileAt(req.TargetIndex)
	value := WireValue(req.Value)

	success := tile.GameValue == value
	if success {
		s.cutTile(target, req.TargetIndex)
		s.cutOwnCopy(actor, value)
		s.appendLog(playerID, "dual_cut", fmt.Sprintf("%s cut a %s on %s's stand", actor.Name, value, target.Name))
	} else if tile.Color == Red {
		tile.Cut = true
		s.appendLog(playerID, "dual_cut", fmt.Sprintf("%s cut a red wire on %s's stand", actor.Name, target.Name))
	} else {
		s.Board.DetonatorPos++
		target.InfoTokens = append(target.InfoTokens, InfoToken{
			Value:    tile.GameValue,
			Position: req.TargetIndex,
			Declared: true,
		})
		s.appendLog(playerID, "dual_cut", fmt.Sprintf("%s guessed %s wrong; the wire was %s", actor.Name, value, tile.GameValue))
	}

	postActionHooks(s, schema, playerID, success, value, 2)
	s.evaluateOutcome(now)
	s.finishTurn(schema, now)

	return &GameAction{
		Kind:           "dual_cut",
		PlayerID:       playerID,
		TargetPlayerID: req.TargetPlayerID,
		Value:          req.Value,
		Success:        success,
		Detonator:      s.Board.DetonatorPos,
		Result:         s.Result,
	}, nil
}

// ApplyDoubleDetector executes the two-wire detector cut. One matching wire
// resolves immediately; two matching wires hand the choice to the target
// player as a forced action; zero matches fail like a dual cut, marking
// both nominated wires.
func ApplyDoubleDetector(s *GameState, playerID string, req DoubleDetectorRequest, now time.Time) (*GameAction, error) {
	if err := ValidateDoubleDetector(s, playerID, req); err != nil {
		return nil, err
	}
	schema := s.Schema()
	actor := s.PlayerByID(playerID)
	target := s.PlayerByID(req.TargetPlayerID)
	value := WireValue(req.Value)
	card := s.Board.EquipmentByKind(EquipDoubleDetector)
	card.Used = true

	var matches []int
	for _, idx := range []int{req.IndexA, req.IndexB} {
		if target.TileAt(idx).GameValue == value {
			matches = append(matches, idx)
		}
	}

	switch len(matches) {
	case 0:
		s.Board.DetonatorPos++
		for _, idx := range []int{req.IndexA, req.IndexB} {
			tile := target.TileAt(idx)
			if tile.Color == Red {
				tile.Cut = true
				continue
			}
			target.InfoTokens = append(target.InfoTokens, InfoToken{
				Value:    tile.GameValue,
				Position: idx,
				Declared: true,
			})
		}
		s.appendLog(playerID, "double_detector", fmt.Sprintf("%s detected no %d on %s's stand", actor.Name, req.Value, target.Name))
		postActionHooks(s, schema, playerID, false, value, 0)
		s.evaluateOutcome(now)
		s.finishTurn(schema, now)
	case 1:
		s.cutTile(target, matches[0])
		s.cutOwnCopy(actor, value)
		s.appendLog(playerID, "double_detector", fmt.Sprintf("%s detected a %d on %s's stand", actor.Name, req.Value, target.Name))
		postActionHooks(s, schema, playerID, true, value, 2)
		s.evaluateOutcome(now)
		s.finishTurn(schema, now)
	default:
		// Both wires match: the target resolves the ambiguity.
		s.Pending = &PendingForcedAction{
			Kind:     ForcedDetectorChoice,
			ActorID:  target.ID,
			TargetID: playerID,
			Value:    req.Value,
			Tiles:    matches,
		}
		s.appendLog(playerID, "double_detector", fmt.Sprintf("both detected wires match %d; %s chooses", req.Value, target.Name))
	}

	return &GameAction{
		Kind:           "double_detector",
		PlayerID:       playerID,
		TargetPlayerID: req.TargetPlayerID,
		Value:          req.Value,
		Success:        len(matches) > 0,
		Detonator:      s.Board.DetonatorPos,
		Result:         s.Result,
	}, nil
}

// ApplySoloCut cuts every copy of the value in the actor's own hand. A solo
// cut is a bonus action: the turn stays with the actor.
func ApplySoloCut(s *GameState, playerID string, req SoloCutRequest, now time.Time) (*GameAction, error) {
	if err := ValidateSoloCut(s, playerID, req); err != nil {
		return nil, err
	}
	schema := s.Schema()
	actor := s.PlayerByID(playerID)
	value := WireValue(req.Value)

	cut := 0
	for i := range actor.Hand {
		if !actor.Hand[i].Cut && actor.Hand[i].GameValue == value {
			s.cutTile(actor, i)
			cut++
		}
	}
	s.appendLog(playerID, "solo_cut", fmt.Sprintf("%s solo-cut all %d remaining copies of %s", actor.Name, cut, value))

	postActionHooks(s, schema, playerID, true, value, cut)
	s.evaluateOutcome(now)
	// The turn stays with the actor unless they have nothing left to play.
	if !s.Finished() && s.Pending == nil && !playerHasUncutWork(actor) {
		s.finishTurn(schema, now)
	}

	return &GameAction{
		Kind:      "solo_cut",
		PlayerID:  playerID,
		Value:     req.Value,
		Success:   true,
		Detonator: s.Board.DetonatorPos,
		Result:    s.Result,
	}, nil
}

// ApplyRevealReds flips the actor's remaining all-red hand face up with no
// detonator risk.
func ApplyRevealReds(s *GameState, playerID string, now time.Time) (*GameAction, error) {
	if err := ValidateRevealReds(s, playerID); err != nil {
		return nil, err
	}
	schema := s.Schema()
	actor := s.PlayerByID(playerID)
	for i := range actor.Hand {
		if !actor.Hand[i].Cut {
			actor.Hand[i].Revealed = true
		}
	}
	s.appendLog(playerID, "reveal_reds", actor.Name+" revealed their remaining red wires")

	postActionHooks(s, schema, playerID, true, ValueRed, 0)
	s.evaluateOutcome(now)
	s.finishTurn(schema, now)

	return &GameAction{
		Kind:      "reveal_reds",
		PlayerID:  playerID,
		Success:   true,
		Detonator: s.Board.DetonatorPos,
		Result:    s.Result,
	}, nil
}

// ApplyUseEquipment activates an unlocked equipment card.
func ApplyUseEquipment(s *GameState, playerID string, req UseEquipmentRequest, now time.Time) (*GameAction, error) {
	if err := ValidateUseEquipment(s, playerID, req); err != nil {
		return nil, err
	}
	schema := s.Schema()
	actor := s.PlayerByID(playerID)
	card := s.Board.EquipmentByKind(req.Kind)
	card.Used = true

	switch req.Kind {
	case EquipWalkieTalkie:
		s.Pending = &PendingForcedAction{Kind: ForcedChooseNextPlayer, ActorID: playerID}
	case EquipLabelPair:
		target := s.PlayerByID(req.TargetPlayerID)
		a, b := target.TileAt(req.PosA), target.TileAt(req.PosB)
		s.Board.Markers = append(s.Board.Markers, EqualityMarker{
			PlayerID: target.ID,
			PosA:     req.PosA,
			PosB:     req.PosB,
			Equal:    a.GameValue == b.GameValue,
		})
	case EquipGeneralRadar:
		reporters := s.reportersAfter(playerID)
		s.Pending = &PendingForcedAction{
			Kind:      ForcedRadarReport,
			ActorID:   reporters[0],
			TargetID:  playerID,
			Value:     req.Value,
			Reporters: reporters,
		}
	case EquipGrapplingHook:
		s.Pending = &PendingForcedAction{
			Kind:     ForcedSwapGive,
			ActorID:  req.TargetPlayerID,
			TargetID: playerID,
		}
	case EquipPostIt:
		actor.InfoTokens = append(actor.InfoTokens, InfoToken{
			Value:    WireValue(req.Value),
			Position: req.Position,
			Declared: true,
		})
	case EquipStabilizer:
		s.Board.DetonatorPos--
	}
	s.appendLog(playerID, "equipment_used", fmt.Sprintf("%s used the %s", actor.Name, req.Kind))

	s.evaluateOutcome(now)
	if s.Pending == nil {
		s.finishTurn(schema, now)
	}
	return &GameAction{
		Kind:      "equipment_used",
		PlayerID:  playerID,
		Success:   true,
		Detonator: s.Board.DetonatorPos,
		Result:    s.Result,
	}, nil
}

// ApplyUseCharacter spends the actor's one-shot character ability.
func ApplyUseCharacter(s *GameState, playerID string, req UseCharacterRequest, now time.Time) (*GameAction, error) {
	if err := ValidateUseCharacter(s, playerID, req); err != nil {
		return nil, err
	}
	schema := s.Schema()
	actor := s.PlayerByID(playerID)
	actor.CharacterUsed = true

	switch actor.Character {
	case CharVeteran:
		s.Board.DetonatorPos--
	case CharScout:
		target := s.PlayerByID(req.TargetPlayerID)
		tile := target.TileAt(req.TileIndex)
		s.appendPrivateLog(playerID, playerID, "peek", fmt.Sprintf("the wire at %s's position %d is %s", target.Name, req.TileIndex, tile.GameValue))
		s.Pending = &PendingForcedAction{Kind: ForcedPeekAck, ActorID: playerID}
	case CharMedic:
		s.Campaign.Oxygen.Pool += 2
		s.Pending = &PendingForcedAction{Kind: ForcedOxygenAllocate, ActorID: playerID}
	case CharEngineer:
		card := s.Board.EquipmentByKind(req.EquipmentKind)
		card.Unlocked = true
	case CharSignaler:
		actor.InfoTokens = append(actor.InfoTokens, InfoToken{
			Value:    WireValue(req.Value),
			Position: req.TileIndex,
			Declared: true,
		})
	case CharMentalist:
		s.drawConstraint(playerID)
	case CharOperator:
		s.Pending = &PendingForcedAction{Kind: ForcedStandReorder, ActorID: playerID}
	case CharArchivist:
		nc := s.Campaign.NumberCards
		nc.Visible = append(nc.Visible, nc.Deck[0])
		nc.Deck = nc.Deck[1:]
	}
	s.appendLog(playerID, "character_used", fmt.Sprintf("%s used the %s ability", actor.Name, actor.Character))

	s.evaluateOutcome(now)
	if s.Pending == nil {
		s.finishTurn(schema, now)
	}
	return &GameAction{
		Kind:      "character_used",
		PlayerID:  playerID,
		Success:   true,
		Detonator: s.Board.DetonatorPos,
		Result:    s.Result,
	}, nil
}

// ApplyForcedResponse resolves the pending forced action.
func ApplyForcedResponse(s *GameState, playerID string, resp ForcedResponse, now time.Time) (*GameAction, error) {
	if err := ValidateForcedResponse(s, playerID, resp); err != nil {
		return nil, err
	}
	schema := s.Schema()
	kind := s.Pending.Kind
	value := WireValue(s.Pending.Value)
	advance := s.resolveForced(playerID, resp)

	if kind == ForcedDetectorChoice {
		postActionHooks(s, schema, playerID, true, value, 2)
	}
	s.evaluateOutcome(now)
	if advance && s.Pending == nil {
		s.finishTurn(schema, now)
	}
	return &GameAction{
		Kind:      "forced_resolved",
		PlayerID:  playerID,
		Success:   true,
		Detonator: s.Board.DetonatorPos,
		Result:    s.Result,
	}, nil
}

// ApplySurrenderVote records a ballot; a strict majority in favor ends the
// game.
func ApplySurrenderVote(s *GameState, playerID string, req SurrenderVoteRequest, now time.Time) (*GameAction, error) {
	if err := ValidateSurrenderVote(s, playerID, req); err != nil {
		return nil, err
	}
	if s.Surrender == nil {
		s.Surrender = &SurrenderVote{Votes: map[string]bool{}}
	}
	s.Surrender.Votes[playerID] = req.Vote
	s.appendLog(playerID, "surrender_vote", "a surrender ballot was cast")

	if s.Surrender.InFavor()*2 > len(s.Players) {
		s.finish(ResultLossSurrender)
	}
	return &GameAction{
		Kind:      "surrender_vote",
		PlayerID:  playerID,
		Detonator: s.Board.DetonatorPos,
		Result:    s.Result,
	}, nil
}

// HandleDisconnect marks the player disconnected and keeps the pending
// forced action resolvable: actions only the absent player could answer are
// auto-resolved with a legal default so the table never deadlocks.
func HandleDisconnect(s *GameState, playerID string, now time.Time) {
	p := s.PlayerByID(playerID)
	if p == nil {
		return
	}
	p.Connected = false
	if s.Pending == nil || s.Pending.ActorID != playerID || s.Finished() {
		return
	}
	resp, ok := defaultForcedResponse(s, p)
	if !ok {
		return
	}
	if _, err := ApplyForcedResponse(s, playerID, resp, now); err != nil {
		// A default that fails validation is a bug; leave the action pending
		// for the player's reconnect rather than corrupting state.
		s.appendLog(playerID, "disconnect", "pending action could not be auto-resolved")
	}
}

// HandleReconnect marks the player connected again. Pending forced actions
// addressed to them survive disconnection and resume as-is.
func HandleReconnect(s *GameState, playerID string) {
	if p := s.PlayerByID(playerID); p != nil {
		p.Connected = true
	}
}

// defaultForcedResponse picks a legal default resolution for the pending
// action on behalf of an absent actor.
func defaultForcedResponse(s *GameState, p *Player) (ForcedResponse, bool) {
	pending := s.Pending
	switch pending.Kind {
	case ForcedCaptainChooseNext, ForcedChooseNextPlayer, ForcedDesignateCutter:
		for i := range s.Players {
			cand := &s.Players[i]
			if cand.ID != p.ID && playerHasUncutWork(cand) {
				return ForcedResponse{ChosenPlayerID: cand.ID}, true
			}
		}
	case ForcedDetectorChoice:
		if len(pending.Tiles) > 0 {
			return ForcedResponse{TileIndex: pending.Tiles[0]}, true
		}
	case ForcedRadarReport, ForcedPeekAck, ForcedConstraintDraw, ForcedSequenceRefill:
		return ForcedResponse{Acknowledge: true}, true
	case ForcedSwapGive:
		for i := range p.Hand {
			if !p.Hand[i].Cut {
				return ForcedResponse{TileIndex: i}, true
			}
		}
	case ForcedUpsideDownReveal:
		for i := range p.Hand {
			if p.Hand[i].UpsideDown && !p.Hand[i].Revealed {
				return ForcedResponse{TileIndex: i}, true
			}
		}
	case ForcedYellowAssign:
		for i := range p.Hand {
			if p.Hand[i].Color == Yellow && !p.Hand[i].Cut {
				return ForcedResponse{TileIndex: i}, true
			}
		}
	case ForcedPassInfoToken:
		if len(p.InfoTokens) > 0 {
			next := s.Players[(s.playerIndex(p.ID)+1)%len(s.Players)].ID
			return ForcedResponse{TokenIndex: 0, ChosenPlayerID: next}, true
		}
	case ForcedOxygenAllocate:
		if ox := s.Campaign.Oxygen; ox != nil && ox.Pool > 0 {
			for i := range s.Players {
				if s.Players[i].ID != p.ID {
					return ForcedResponse{Value: 1, ChosenPlayerID: s.Players[i].ID}, true
				}
			}
		}
	case ForcedFalseTokenPlace:
		for i := range p.Hand {
			lie := BlueValueMin
			if int(p.Hand[i].GameValue) == lie {
				lie = BlueValueMin + 1
			}
			return ForcedResponse{TileIndex: i, Value: lie}, true
		}
	case ForcedStandReorder:
		uncut := make([]int, 0, 2)
		for i := range p.Hand {
			if !p.Hand[i].Cut {
				uncut = append(uncut, i)
				if len(uncut) == 2 {
					return ForcedResponse{PosA: uncut[0], PosB: uncut[1]}, true
				}
			}
		}
	}
	return ForcedResponse{}, false
}

// cutTile cuts the tile at the index and books it on the validation track.
func (s *GameState) cutTile(p *Player, idx int) {
	tile := &p.Hand[idx]
	tile.Cut = true
	if tile.GameValue.IsNumber() {
		s.Board.Validation[int(tile.GameValue)]++
	}
	s.refreshEquipmentUnlocks()
}

// cutOwnCopy cuts the actor's first uncut tile of the value.
func (s *GameState) cutOwnCopy(p *Player, v WireValue) {
	for i := range p.Hand {
		if !p.Hand[i].Cut && p.Hand[i].GameValue == v {
			s.cutTile(p, i)
			return
		}
	}
}

// moveTile hands the tile at idx from giver to receiver, keeping both
// stands sorted and both players' info tokens pointing at the right slots.
func (s *GameState) moveTile(giver *Player, idx int, receiver *Player) {
	tile := giver.Hand[idx]
	stand := giver.StandOf(idx)
	giver.Hand = append(giver.Hand[:idx], giver.Hand[idx+1:]...)
	giver.StandSizes[stand]--

	kept := giver.InfoTokens[:0]
	for _, tok := range giver.InfoTokens {
		if tok.Position == idx {
			continue
		}
		if tok.Position > idx {
			tok.Position--
		}
		kept = append(kept, tok)
	}
	giver.InfoTokens = kept

	insert := sort.Search(receiver.StandSizes[0], func(i int) bool {
		return receiver.Hand[i].SortValue >= tile.SortValue
	})
	receiver.Hand = append(receiver.Hand, WireTile{})
	copy(receiver.Hand[insert+1:], receiver.Hand[insert:])
	receiver.Hand[insert] = tile
	receiver.StandSizes[0]++
	for i := range receiver.InfoTokens {
		if receiver.InfoTokens[i].Position >= insert {
			receiver.InfoTokens[i].Position++
		}
	}
}

// reportersAfter lists every other seat in clockwise order starting from
// the seat after the player.
func (s *GameState) reportersAfter(playerID string) []string {
	start := s.playerIndex(playerID)
	out := make([]string, 0, len(s.Players)-1)
	for i := 1; i < len(s.Players); i++ {
		out = append(out, s.Players[(start+i)%len(s.Players)].ID)
	}
	return out
}

// evaluateOutcome checks end-of-game predicates in fixed priority. It is a
// no-op once the game is finished.
func (s *GameState) evaluateOutcome(now time.Time) {
	if s.Finished() {
		return
	}
	for i := range s.Players {
		for j := range s.Players[i].Hand {
			t := &s.Players[i].Hand[j]
			if t.Color == Red && t.Cut {
				s.finish(ResultLossRedWire)
				return
			}
		}
	}
	if s.Board.DetonatorPos >= s.Board.DetonatorMax {
		s.finish(ResultLossDetonator)
		return
	}
	if nano := s.Campaign.Nano; nano != nil && nano.Pos >= nano.Length {
		// The nano tracker substitutes for the detonator on its missions.
		s.finish(ResultLossDetonator)
		return
	}
	if s.Campaign.Timer.Expired(now) {
		s.finish(ResultLossTimer)
		return
	}
	if ox := s.Campaign.Oxygen; ox != nil && ox.Pool <= 0 {
		s.finish(ResultLossOxygen)
		return
	}
	cleared := true
	for i := range s.Players {
		for j := range s.Players[i].Hand {
			t := &s.Players[i].Hand[j]
			if t.Color != Red && !t.Cut {
				cleared = false
			}
		}
	}
	if cleared {
		s.finish(ResultWin)
	}
}

// CheckTimerExpiry ends a timed mission whose countdown ran out. The caller
// polls this between actions; it returns true when the game just ended.
func CheckTimerExpiry(s *GameState, now time.Time) bool {
	if s.Finished() || !s.Campaign.Timer.Expired(now) {
		return false
	}
	s.finish(ResultLossTimer)
	return true
}

// finish freezes the game with a terminal result.
func (s *GameState) finish(result Result) {
	if s.Finished() {
		return
	}
	s.Phase = PhaseFinished
	s.Result = result
	s.Pending = nil
	s.appendLog("", "game_over", string(result))
}

// finishTurn runs end-of-turn hooks and hands the turn to the next seat,
// unless the action installed a forced action or ended the game. It is
// re-entered after a forced action installed by an end-of-turn hook
// resolves; TurnWrapped keeps the hooks from firing twice for one turn.
func (s *GameState) finishTurn(schema *MissionRuleSchema, now time.Time) {
	if s.Finished() {
		return
	}
	if !s.TurnWrapped {
		s.TurnWrapped = true
		endOfTurnHooks(s, schema)
		s.evaluateOutcome(now)
	}
	if s.Finished() || s.Pending != nil {
		return
	}
	if s.NextSeat != nil {
		s.CurrentPlayer = *s.NextSeat
		s.NextSeat = nil
	} else {
		s.advanceTurn()
	}
	s.TurnNumber++
	s.TurnWrapped = false
	startOfTurnHooks(s, schema)
}

// advanceTurn moves to the next clockwise seat that still has hidden
// wires. A seat with nothing left to cut is skipped.
func (s *GameState) advanceTurn() {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		seat := (s.CurrentPlayer + i) % n
		if playerHasUncutWork(&s.Players[seat]) {
			s.CurrentPlayer = seat
			return
		}
	}
}
