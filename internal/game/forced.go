package game

import (
	"errors"
	"fmt"
)

// ForcedKind tags the closed set of forced-action interrupts. While one is
// pending, only its designated actor may act, and only with the matching
// response.
type ForcedKind string

const (
	ForcedCaptainChooseNext ForcedKind = "captain_choose_next"
	ForcedChooseNextPlayer  ForcedKind = "choose_next_player"
	ForcedDetectorChoice    ForcedKind = "double_detector_choice"
	ForcedDesignateCutter   ForcedKind = "designate_cutter"
	ForcedRadarReport       ForcedKind = "radar_report"
	ForcedPassInfoToken     ForcedKind = "pass_info_token"
	ForcedConstraintDraw    ForcedKind = "constraint_draw"
	ForcedOxygenAllocate    ForcedKind = "oxygen_allocate"
	ForcedFalseTokenPlace   ForcedKind = "false_token_place"
	ForcedUpsideDownReveal  ForcedKind = "upside_down_reveal"
	ForcedSwapGive          ForcedKind = "swap_give"
	ForcedPeekAck           ForcedKind = "peek_ack"
	ForcedYellowAssign      ForcedKind = "yellow_assign"
	ForcedSequenceRefill    ForcedKind = "sequence_refill"
	ForcedStandReorder      ForcedKind = "stand_reorder"
)

// PendingForcedAction suspends normal turn order until ActorID supplies the
// response the kind requires. At most one may be pending; the engine never
// installs one that no player can resolve.
type PendingForcedAction struct {
	Kind      ForcedKind `json:"kind"`
	ActorID   string     `json:"actorId"`
	TargetID  string     `json:"targetId,omitempty"`
	Value     int        `json:"value,omitempty"`
	Tiles     []int      `json:"tiles,omitempty"`
	Reporters []string   `json:"reporters,omitempty"`
}

// ForcedResponse is the inbound payload resolving a pending forced action.
// Which fields matter depends on the pending kind.
type ForcedResponse struct {
	ChosenPlayerID string `json:"chosenPlayerId,omitempty"`
	TileIndex      int    `json:"tileIndex"`
	TokenIndex     int    `json:"tokenIndex"`
	PosA           int    `json:"posA"`
	PosB           int    `json:"posB"`
	Value          int    `json:"value,omitempty"`
	Acknowledge    bool   `json:"acknowledge,omitempty"`
}

// ValidateForcedResponse checks that playerID may resolve the pending
// action with the given response.
func ValidateForcedResponse(s *GameState, playerID string, resp ForcedResponse) error {
	if s.Finished() {
		return errors.New("the game is over")
	}
	if s.Pending == nil {
		return errors.New("no forced action is pending")
	}
	if s.Pending.ActorID != playerID {
		return errors.New("you are not the player who must resolve this")
	}
	p := s.PlayerByID(playerID)
	if p == nil {
		return errors.New("unknown player")
	}

	switch s.Pending.Kind {
	case ForcedCaptainChooseNext, ForcedChooseNextPlayer, ForcedDesignateCutter:
		chosen := s.PlayerByID(resp.ChosenPlayerID)
		if chosen == nil {
			return errors.New("chosen player is not at the table")
		}
		if !playerHasUncutWork(chosen) {
			return errors.New("chosen player has no uncut wires left")
		}
	case ForcedDetectorChoice:
		if !containsInt(s.Pending.Tiles, resp.TileIndex) {
			return errors.New("you must pick one of the two detected wires")
		}
	case ForcedRadarReport, ForcedPeekAck, ForcedConstraintDraw, ForcedSequenceRefill:
		if !resp.Acknowledge {
			return errors.New("response must acknowledge")
		}
	case ForcedPassInfoToken:
		if resp.TokenIndex < 0 || resp.TokenIndex >= len(p.InfoTokens) {
			return errors.New("no such info token")
		}
		if !s.areNeighbors(playerID, resp.ChosenPlayerID) {
			return errors.New("tokens may only pass to a neighboring player")
		}
	case ForcedOxygenAllocate:
		ox := s.Campaign.Oxygen
		if ox == nil {
			return errors.New("this mission has no oxygen pool")
		}
		if resp.Value <= 0 || resp.Value > ox.Pool {
			return fmt.Errorf("cannot allocate %d oxygen from a pool of %d", resp.Value, ox.Pool)
		}
		if s.PlayerByID(resp.ChosenPlayerID) == nil {
			return errors.New("chosen player is not at the table")
		}
	case ForcedFalseTokenPlace:
		tile := p.TileAt(resp.TileIndex)
		if tile == nil {
			return errors.New("no wire at that position")
		}
		if int(tile.GameValue) == resp.Value {
			return errors.New("this token must not state the true value")
		}
	case ForcedUpsideDownReveal:
		tile := p.TileAt(resp.TileIndex)
		if tile == nil || !tile.UpsideDown || tile.Revealed {
			return errors.New("you must flip your upside-down wire")
		}
	case ForcedSwapGive:
		tile := p.TileAt(resp.TileIndex)
		if tile == nil || tile.Cut {
			return errors.New("you must give an uncut wire")
		}
	case ForcedYellowAssign:
		tile := p.TileAt(resp.TileIndex)
		if tile == nil || tile.Color != Yellow || tile.Cut {
			return errors.New("you must mark one of your uncut yellow wires")
		}
	case ForcedStandReorder:
		a, b := p.TileAt(resp.PosA), p.TileAt(resp.PosB)
		if a == nil || b == nil || a.Cut || b.Cut {
			return errors.New("both swapped wires must be uncut")
		}
	default:
		return fmt.Errorf("unhandled forced action kind %q", s.Pending.Kind)
	}
	return nil
}

// resolveForced applies a validated response, clears the pending action (or
// replaces it with its follow-up), and returns whether the turn should
// advance afterwards.
func (s *GameState) resolveForced(playerID string, resp ForcedResponse) bool {
	pending := s.Pending
	p := s.PlayerByID(playerID)
	s.Pending = nil

	switch pending.Kind {
	case ForcedCaptainChooseNext:
		// The captain picks at the start of a turn; the handoff already ran.
		s.CurrentPlayer = s.playerIndex(resp.ChosenPlayerID)
		s.appendLog(playerID, "next_player", resp.ChosenPlayerID+" acts next")
		return false

	case ForcedChooseNextPlayer, ForcedDesignateCutter:
		// These replace the handoff at the end of the actor's turn, so the
		// choice goes through the normal turn wrap-up with the seat pinned.
		seat := s.playerIndex(resp.ChosenPlayerID)
		s.NextSeat = &seat
		s.appendLog(playerID, "next_player", resp.ChosenPlayerID+" acts next")
		return true

	case ForcedDetectorChoice:
		cutter := s.PlayerByID(pending.TargetID)
		s.cutTile(p, resp.TileIndex)
		s.cutOwnCopy(cutter, WireValue(pending.Value))
		s.appendLog(playerID, "detector_resolved", fmt.Sprintf("cut the %d at position %d", pending.Value, resp.TileIndex))
		return true

	case ForcedRadarReport:
		count := p.UncutCount(WireValue(pending.Value))
		s.appendLog(playerID, "radar_report", fmt.Sprintf("%s holds %d uncut copies of %d", p.Name, count, pending.Value))
		rest := pending.Reporters[1:]
		if len(rest) > 0 {
			s.Pending = &PendingForcedAction{
				Kind:      ForcedRadarReport,
				ActorID:   rest[0],
				TargetID:  pending.TargetID,
				Value:     pending.Value,
				Reporters: rest,
			}
		} else {
			s.Pending = &PendingForcedAction{
				Kind:    ForcedDesignateCutter,
				ActorID: pending.TargetID,
				Value:   pending.Value,
			}
		}
		return false

	case ForcedPassInfoToken:
		token := p.InfoTokens[resp.TokenIndex]
		p.InfoTokens = append(p.InfoTokens[:resp.TokenIndex], p.InfoTokens[resp.TokenIndex+1:]...)
		receiver := s.PlayerByID(resp.ChosenPlayerID)
		token.Position = clampPosition(resp.TileIndex, len(receiver.Hand))
		receiver.InfoTokens = append(receiver.InfoTokens, token)
		s.appendLog(playerID, "token_passed", "info token passed to "+receiver.Name)
		return true

	case ForcedConstraintDraw:
		s.drawConstraint(playerID)
		return true

	case ForcedOxygenAllocate:
		ox := s.Campaign.Oxygen
		ox.Pool -= resp.Value
		if ox.PerPlayer == nil {
			ox.PerPlayer = map[string]int{}
		}
		ox.PerPlayer[resp.ChosenPlayerID] += resp.Value
		s.appendLog(playerID, "oxygen_allocated", fmt.Sprintf("%d oxygen to %s", resp.Value, resp.ChosenPlayerID))
		return true

	case ForcedFalseTokenPlace:
		p.InfoTokens = append(p.InfoTokens, InfoToken{
			Value:    WireValue(resp.Value),
			Position: resp.TileIndex,
			Declared: false,
		})
		s.appendLog(playerID, "false_token", "a token was placed")
		return true

	case ForcedUpsideDownReveal:
		p.Hand[resp.TileIndex].Revealed = true
		p.Hand[resp.TileIndex].UpsideDown = false
		s.appendLog(playerID, "wire_flipped", "an upside-down wire was flipped face up")
		return true

	case ForcedSwapGive:
		s.moveTile(p, resp.TileIndex, s.PlayerByID(pending.TargetID))
		s.appendLog(playerID, "wire_given", p.Name+" handed a wire over")
		return true

	case ForcedPeekAck:
		return true

	case ForcedYellowAssign:
		p.InfoTokens = append(p.InfoTokens, InfoToken{
			Value:    ValueYellow,
			Position: resp.TileIndex,
			Declared: true,
		})
		s.appendLog(playerID, "yellow_marked", p.Name+" marked a yellow wire")
		if len(pending.Reporters) > 1 {
			rest := pending.Reporters[1:]
			s.Pending = &PendingForcedAction{
				Kind:      ForcedYellowAssign,
				ActorID:   rest[0],
				Reporters: rest,
			}
		}
		return false

	case ForcedSequenceRefill:
		s.refillSequenceRow()
		return true

	case ForcedStandReorder:
		p.Hand[resp.PosA], p.Hand[resp.PosB] = p.Hand[resp.PosB], p.Hand[resp.PosA]
		s.appendLog(playerID, "stand_reordered", p.Name+" rearranged two wires")
		return true

	default:
		return true
	}
}

// areNeighbors reports whether two seats are adjacent in clockwise order.
func (s *GameState) areNeighbors(a, b string) bool {
	ia, ib := s.playerIndex(a), s.playerIndex(b)
	if ia < 0 || ib < 0 || ia == ib {
		return false
	}
	n := len(s.Players)
	return (ia+1)%n == ib || (ib+1)%n == ia
}

// playerHasUncutWork reports whether the player still has hidden uncut
// wires, i.e. can meaningfully take a turn.
func playerHasUncutWork(p *Player) bool {
	for i := range p.Hand {
		if !p.Hand[i].Cut && !p.Hand[i].Revealed {
			return true
		}
	}
	return false
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func clampPosition(pos, handLen int) int {
	if pos < 0 {
		return 0
	}
	if pos >= handLen {
		return handLen - 1
	}
	return pos
}
