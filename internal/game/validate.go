package game

import (
	"errors"
	"fmt"
)

// Request payloads for the closed set of inbound actions. The transport
// decodes these from the wire; validators treat every field as untrusted.

type DualCutRequest struct {
	TargetPlayerID string `json:"targetPlayerId"`
	TargetIndex    int    `json:"targetIndex"`
	Value          int    `json:"value"`
}

type DoubleDetectorRequest struct {
	TargetPlayerID string `json:"targetPlayerId"`
	IndexA         int    `json:"indexA"`
	IndexB         int    `json:"indexB"`
	Value          int    `json:"value"`
}

type SoloCutRequest struct {
	Value int `json:"value"`
}

type PlaceInfoTokenRequest struct {
	Position int `json:"position"`
	Value    int `json:"value"`
}

type UseEquipmentRequest struct {
	Kind           EquipmentKind `json:"kind"`
	TargetPlayerID string        `json:"targetPlayerId,omitempty"`
	PosA           int           `json:"posA"`
	PosB           int           `json:"posB"`
	Position       int           `json:"position"`
	Value          int           `json:"value"`
}

type UseCharacterRequest struct {
	TargetPlayerID string        `json:"targetPlayerId,omitempty"`
	TileIndex      int           `json:"tileIndex"`
	Value          int           `json:"value"`
	EquipmentKind  EquipmentKind `json:"equipmentKind,omitempty"`
}

type SurrenderVoteRequest struct {
	Vote bool `json:"vote"`
}

// requireTurnAction runs the checks shared by every turn-scoped action, in
// the fixed order: phase, pending forced action, turn ownership.
func requireTurnAction(s *GameState, playerID string) error {
	if s.Finished() {
		return errors.New("the game is over")
	}
	if s.Phase != PhasePlaying {
		return errors.New("the game has not started yet")
	}
	if s.Pending != nil {
		if s.Pending.ActorID == playerID {
			return errors.New("you must resolve the pending action first")
		}
		return errors.New("waiting for another player to resolve a pending action")
	}
	if s.CurrentPlayerID() != playerID {
		return errors.New("it is not your turn")
	}
	if s.PlayerByID(playerID) == nil {
		return errors.New("unknown player")
	}
	return nil
}

// ValidateDualCut checks the primary cooperative action: announce a value
// you hold and point at a teammate's wire. The yellow sentinel is a legal
// announce like any number; only red is never announced.
func ValidateDualCut(s *GameState, playerID string, req DualCutRequest) error {
	if err := requireTurnAction(s, playerID); err != nil {
		return err
	}
	value := WireValue(req.Value)
	if !value.Announceable() {
		return fmt.Errorf("%s is not a wire value you can announce", value)
	}
	actor := s.PlayerByID(playerID)
	if actor.UncutCount(value) == 0 {
		return fmt.Errorf("you hold no uncut %s to announce", value)
	}
	if req.TargetPlayerID == playerID {
		return errors.New("a dual cut must target a teammate's wire")
	}
	target := s.PlayerByID(req.TargetPlayerID)
	if target == nil {
		return errors.New("target player is not at the table")
	}
	tile := target.TileAt(req.TargetIndex)
	if tile == nil {
		return errors.New("no wire at that position")
	}
	if tile.Cut {
		return errors.New("that wire is already cut")
	}
	if tile.Revealed {
		return errors.New("that wire is already face up")
	}
	return cutRestriction(s, s.Schema(), playerID, value, tile)
}

// ValidateDoubleDetector checks the multi-wire detector variant of the dual
// cut. The detector equipment card must be unlocked and unspent.
func ValidateDoubleDetector(s *GameState, playerID string, req DoubleDetectorRequest) error {
	if err := requireTurnAction(s, playerID); err != nil {
		return err
	}
	card := s.Board.EquipmentByKind(EquipDoubleDetector)
	if card == nil {
		return errors.New("this mission has no double detector")
	}
	if !card.Unlocked || card.Locked {
		return errors.New("the double detector is not unlocked yet")
	}
	if card.Used {
		return errors.New("the double detector has already been used")
	}
	value := WireValue(req.Value)
	if !value.IsNumber() {
		return fmt.Errorf("%d is not a wire value you can announce", req.Value)
	}
	actor := s.PlayerByID(playerID)
	if actor.UncutCount(value) == 0 {
		return fmt.Errorf("you hold no uncut %d to announce", req.Value)
	}
	if req.TargetPlayerID == playerID {
		return errors.New("the detector must point at a teammate's stand")
	}
	target := s.PlayerByID(req.TargetPlayerID)
	if target == nil {
		return errors.New("target player is not at the table")
	}
	if req.IndexA == req.IndexB {
		return errors.New("the detector needs two different wires")
	}
	for _, idx := range []int{req.IndexA, req.IndexB} {
		tile := target.TileAt(idx)
		if tile == nil {
			return errors.New("no wire at that position")
		}
		if tile.Cut || tile.Revealed {
			return errors.New("both detected wires must be uncut and face down")
		}
		if err := cutRestriction(s, s.Schema(), playerID, value, tile); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSoloCut checks the unilateral cut: legal for a value only when the
// actor provably holds every remaining uncut copy in the game.
func ValidateSoloCut(s *GameState, playerID string, req SoloCutRequest) error {
	if err := requireTurnAction(s, playerID); err != nil {
		return err
	}
	value := WireValue(req.Value)
	if !value.Announceable() {
		return fmt.Errorf("%s is not a wire value you can announce", value)
	}
	actor := s.PlayerByID(playerID)
	remaining := s.RemainingCopies(value)
	if remaining == 0 {
		return fmt.Errorf("every %s has already been cut", value)
	}
	if actor.UncutCount(value) != remaining {
		return fmt.Errorf("you do not hold all remaining copies of %s", value)
	}
	return cutRestriction(s, s.Schema(), playerID, value, nil)
}

// ValidateRevealReds checks the all-reds reveal. Red Alert missions replace
// this ritual and disable it outright.
func ValidateRevealReds(s *GameState, playerID string) error {
	if err := requireTurnAction(s, playerID); err != nil {
		return err
	}
	if s.Schema().HasHook(HookRedAlert) {
		return errors.New("this mission handles red wires differently")
	}
	actor := s.PlayerByID(playerID)
	if !actor.AllUncutRed() {
		return errors.New("you may only reveal once every other wire is cut")
	}
	return nil
}

// ValidateUseEquipment checks an equipment card activation.
func ValidateUseEquipment(s *GameState, playerID string, req UseEquipmentRequest) error {
	if err := requireTurnAction(s, playerID); err != nil {
		return err
	}
	card := s.Board.EquipmentByKind(req.Kind)
	if card == nil {
		return errors.New("this mission has no such equipment")
	}
	if !card.Unlocked || card.Locked {
		return errors.New("that equipment is not unlocked yet")
	}
	if card.Used {
		return errors.New("that equipment has already been used")
	}
	actor := s.PlayerByID(playerID)

	switch req.Kind {
	case EquipDoubleDetector:
		return errors.New("the double detector is used through its own cut action")
	case EquipWalkieTalkie:
		return nil
	case EquipLabelPair:
		target := s.PlayerByID(req.TargetPlayerID)
		if target == nil {
			return errors.New("target player is not at the table")
		}
		a, b := target.TileAt(req.PosA), target.TileAt(req.PosB)
		if a == nil || b == nil {
			return errors.New("no wire at that position")
		}
		if req.PosB-req.PosA != 1 && req.PosA-req.PosB != 1 {
			return errors.New("labels go between two adjacent wires")
		}
		if target.StandOf(req.PosA) != target.StandOf(req.PosB) {
			return errors.New("labels cannot bridge two stands")
		}
		return nil
	case EquipGeneralRadar:
		if !WireValue(req.Value).IsNumber() {
			return fmt.Errorf("%d is not a wire value the radar can scan", req.Value)
		}
		return nil
	case EquipGrapplingHook:
		if req.TargetPlayerID == playerID {
			return errors.New("the hook must reach for a teammate's stand")
		}
		target := s.PlayerByID(req.TargetPlayerID)
		if target == nil {
			return errors.New("target player is not at the table")
		}
		if !playerHasUncutWork(target) {
			return errors.New("that player has no wires left to take")
		}
		return nil
	case EquipPostIt:
		tile := actor.TileAt(req.Position)
		if tile == nil || tile.Cut {
			return errors.New("the post-it goes on one of your uncut wires")
		}
		if actor.HasInfoTokenAt(req.Position) {
			return errors.New("that wire already carries a token")
		}
		if int(tile.GameValue) != req.Value {
			return errors.New("the post-it must state the wire's true value")
		}
		return nil
	case EquipStabilizer:
		if s.Board.DetonatorPos == 0 {
			return errors.New("the detonator is already at the start")
		}
		return nil
	default:
		return fmt.Errorf("unknown equipment %q", req.Kind)
	}
}

// ValidateUseCharacter checks a one-shot character ability.
func ValidateUseCharacter(s *GameState, playerID string, req UseCharacterRequest) error {
	if err := requireTurnAction(s, playerID); err != nil {
		return err
	}
	actor := s.PlayerByID(playerID)
	if actor.CharacterUsed {
		return errors.New("your character ability is spent for this mission")
	}

	switch actor.Character {
	case CharVeteran:
		if s.Board.DetonatorPos == 0 {
			return errors.New("the detonator is already at the start")
		}
	case CharScout:
		if req.TargetPlayerID == playerID {
			return errors.New("the scout peeks at a teammate's wire")
		}
		target := s.PlayerByID(req.TargetPlayerID)
		if target == nil {
			return errors.New("target player is not at the table")
		}
		tile := target.TileAt(req.TileIndex)
		if tile == nil || tile.Cut || tile.Revealed {
			return errors.New("the scout peeks at a face-down uncut wire")
		}
	case CharMedic:
		if s.Campaign.Oxygen == nil {
			return errors.New("this mission has no oxygen supply to refill")
		}
	case CharEngineer:
		card := s.Board.EquipmentByKind(req.EquipmentKind)
		if card == nil {
			return errors.New("no such equipment on this mission")
		}
		if card.Unlocked || card.Locked {
			return errors.New("that equipment cannot be force-unlocked")
		}
	case CharSignaler:
		tile := actor.TileAt(req.TileIndex)
		if tile == nil || tile.Cut {
			return errors.New("the signal goes on one of your uncut wires")
		}
		if actor.HasInfoTokenAt(req.TileIndex) {
			return errors.New("that wire already carries a token")
		}
		if int(tile.GameValue) != req.Value {
			return errors.New("the signal must state the wire's true value")
		}
	case CharMentalist:
		cs := s.Campaign.Constraints
		if cs == nil {
			return errors.New("this mission has no constraint cards")
		}
		if _, ok := cs.Active[playerID]; !ok {
			return errors.New("you have no active constraint card")
		}
	case CharOperator:
		uncut := 0
		for i := range actor.Hand {
			if !actor.Hand[i].Cut {
				uncut++
			}
		}
		if uncut < 2 {
			return errors.New("you need at least two uncut wires to rearrange")
		}
	case CharArchivist:
		nc := s.Campaign.NumberCards
		if nc == nil || len(nc.Deck) == 0 {
			return errors.New("there is no number card deck to reveal from")
		}
	default:
		return errors.New("you have no character assigned")
	}
	return nil
}

// ValidatePlaceInfoToken checks the setup-phase info token placement.
func ValidatePlaceInfoToken(s *GameState, playerID string, req PlaceInfoTokenRequest) error {
	if s.Finished() {
		return errors.New("the game is over")
	}
	if s.Phase != PhaseSetupInfoTokens {
		return errors.New("info tokens are placed during setup only")
	}
	p := s.PlayerByID(playerID)
	if p == nil {
		return errors.New("unknown player")
	}
	if len(p.InfoTokens) > 0 {
		return errors.New("you already placed your info token")
	}
	tile := p.TileAt(req.Position)
	if tile == nil {
		return errors.New("no wire at that position")
	}
	if tile.Color != Blue {
		return errors.New("the token goes on a blue wire")
	}
	truthful := int(tile.GameValue) == req.Value
	if s.Schema().HasHook(HookFalseToken) {
		if truthful {
			return errors.New("on this mission your token must lie")
		}
		if !WireValue(req.Value).IsNumber() {
			return fmt.Errorf("%d is not a wire value", req.Value)
		}
		return nil
	}
	if !truthful {
		return errors.New("the token must state the wire's true value")
	}
	return nil
}

// ValidateSurrenderVote checks a surrender ballot.
func ValidateSurrenderVote(s *GameState, playerID string, req SurrenderVoteRequest) error {
	if s.Finished() {
		return errors.New("the game is over")
	}
	if s.Phase != PhasePlaying {
		return errors.New("there is nothing to surrender yet")
	}
	if s.PlayerByID(playerID) == nil {
		return errors.New("unknown player")
	}
	return nil
}
