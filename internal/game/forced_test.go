package game

import (
	"testing"
)

func TestRadarReportChain(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(4, 7),
		blueHand(4, 9),
		blueHand(4, 8),
	))
	s.Board.EquipmentByKind(EquipGeneralRadar).Unlocked = true

	if _, err := ApplyUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipGeneralRadar, Value: 4}, testNow()); err != nil {
		t.Fatalf("radar: %v", err)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedRadarReport || s.Pending.ActorID != "p2" {
		t.Fatalf("the first report comes from the next seat, pending=%+v", s.Pending)
	}

	if _, err := ApplyForcedResponse(s, "p2", ForcedResponse{Acknowledge: true}, testNow()); err != nil {
		t.Fatalf("report p2: %v", err)
	}
	if s.Pending == nil || s.Pending.ActorID != "p3" {
		t.Fatalf("the chain must move to the next seat, pending=%+v", s.Pending)
	}
	if _, err := ApplyForcedResponse(s, "p3", ForcedResponse{Acknowledge: true}, testNow()); err != nil {
		t.Fatalf("report p3: %v", err)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedDesignateCutter || s.Pending.ActorID != "p1" {
		t.Fatalf("after all reports the radar user designates the cutter, pending=%+v", s.Pending)
	}

	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{ChosenPlayerID: "p3"}, testNow()); err != nil {
		t.Fatalf("designate: %v", err)
	}
	if s.CurrentPlayerID() != "p3" {
		t.Errorf("the designated cutter must act next, current is %s", s.CurrentPlayerID())
	}
}

func TestGrapplingHookMovesAWire(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Board.EquipmentByKind(EquipGrapplingHook).Unlocked = true

	if _, err := ApplyUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipGrapplingHook, TargetPlayerID: "p2"}, testNow()); err != nil {
		t.Fatalf("hook: %v", err)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedSwapGive || s.Pending.ActorID != "p2" {
		t.Fatalf("the hooked player chooses what to give, pending=%+v", s.Pending)
	}

	if _, err := ApplyForcedResponse(s, "p2", ForcedResponse{TileIndex: 0}, testNow()); err != nil {
		t.Fatalf("give: %v", err)
	}
	if len(s.Players[0].Hand) != 3 || len(s.Players[1].Hand) != 1 {
		t.Fatalf("the wire must change hands: %d vs %d", len(s.Players[0].Hand), len(s.Players[1].Hand))
	}
	// SortValue 5 lands between 3 and 7 on the receiving stand.
	if s.Players[0].Hand[1].GameValue != 5 {
		t.Errorf("the received wire must slot in sorted order: %+v", s.Players[0].Hand)
	}
	if s.Players[0].StandSizes[0] != 3 {
		t.Errorf("the receiver's stand size must grow, got %v", s.Players[0].StandSizes)
	}
}

func TestPassTokenOnlyToNeighbors(t *testing.T) {
	players := testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
		blueHand(6, 8),
		blueHand(2, 4),
	)
	players[0].InfoTokens = []InfoToken{{Value: 3, Position: 0, Declared: true}}
	s := testState(5, players)
	s.Pending = &PendingForcedAction{Kind: ForcedPassInfoToken, ActorID: "p1"}

	// p3 sits across the table from p1.
	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{TokenIndex: 0, ChosenPlayerID: "p3"}, testNow()); err == nil {
		t.Fatalf("a token must not cross the table")
	}
	// p4 is p1's counter-clockwise neighbor.
	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{TokenIndex: 0, ChosenPlayerID: "p4"}, testNow()); err != nil {
		t.Fatalf("pass to neighbor: %v", err)
	}
	if len(s.Players[3].InfoTokens) != 1 {
		t.Errorf("the token must arrive at the neighbor")
	}
}

func TestUpsideDownForcedReveal(t *testing.T) {
	players := testPlayers(
		blueHand(4, 5),
		blueHand(4, 9),
	)
	players[0].Hand[1].UpsideDown = true
	s := testState(23, players)

	if _, err := ApplyDualCut(s, "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 0, Value: 4}, testNow()); err != nil {
		t.Fatalf("dual cut: %v", err)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedUpsideDownReveal || s.Pending.ActorID != "p1" {
		t.Fatalf("the owner must flip their upside-down wire, pending=%+v", s.Pending)
	}

	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{TileIndex: 0}, testNow()); err == nil {
		t.Fatalf("flipping a normal wire must be rejected")
	}
	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{TileIndex: 1}, testNow()); err != nil {
		t.Fatalf("flip: %v", err)
	}
	tile := s.Players[0].Hand[1]
	if !tile.Revealed || tile.UpsideDown {
		t.Errorf("the wire must be face up and no longer upside down: %+v", tile)
	}
	if s.CurrentPlayerID() != "p2" {
		t.Errorf("the turn must advance after the flip")
	}
}

func TestCaptainOrderChoosesEachTurn(t *testing.T) {
	s := testState(30, testPlayers(
		blueHand(3, 7),
		blueHand(3, 9),
		blueHand(6, 8),
	))

	if _, err := ApplyDualCut(s, "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 0, Value: 3}, testNow()); err != nil {
		t.Fatalf("dual cut: %v", err)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedCaptainChooseNext || s.Pending.ActorID != "p1" {
		t.Fatalf("the captain must pick the next player, pending=%+v", s.Pending)
	}
	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{ChosenPlayerID: "p3"}, testNow()); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if s.CurrentPlayerID() != "p3" {
		t.Errorf("the captain's pick must act next, current is %s", s.CurrentPlayerID())
	}
	if s.TurnNumber != 2 {
		t.Errorf("one played turn must advance the counter once, got %d", s.TurnNumber)
	}
}

func TestYellowAssignRoundBeforeFirstTurn(t *testing.T) {
	players := testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	)
	players[0].Hand = append(players[0].Hand, NewSpecialTile("y0", Yellow, 4.5))
	players[0].StandSizes = []int{3}
	players[1].Hand = append(players[1].Hand, NewSpecialTile("y1", Yellow, 6.5))
	players[1].StandSizes = []int{3}
	s := testState(38, players)

	installYellowAssign(s, s.Schema())
	if s.Pending == nil || s.Pending.Kind != ForcedYellowAssign || s.Pending.ActorID != "p1" {
		t.Fatalf("the first yellow holder marks first, pending=%+v", s.Pending)
	}

	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{TileIndex: 0}, testNow()); err == nil {
		t.Fatalf("marking a blue wire must be rejected")
	}
	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{TileIndex: 2}, testNow()); err != nil {
		t.Fatalf("mark p1: %v", err)
	}
	if s.Pending == nil || s.Pending.ActorID != "p2" {
		t.Fatalf("the round must move to the next holder, pending=%+v", s.Pending)
	}
	if _, err := ApplyForcedResponse(s, "p2", ForcedResponse{TileIndex: 2}, testNow()); err != nil {
		t.Fatalf("mark p2: %v", err)
	}
	if s.Pending != nil {
		t.Fatalf("the round must end after the last holder")
	}
	if s.CurrentPlayerID() != "p1" {
		t.Errorf("the captain's first turn must still be up, current is %s", s.CurrentPlayerID())
	}
	if s.Players[0].InfoTokens[0].Value != ValueYellow {
		t.Errorf("the mark must record a yellow token: %+v", s.Players[0].InfoTokens)
	}
}

func TestYellowAssignWithLoneHolder(t *testing.T) {
	players := testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	)
	players[0].Hand = append(players[0].Hand, NewSpecialTile("y0", Yellow, 4.5))
	players[0].StandSizes = []int{3}
	s := testState(38, players)
	s.Pending = &PendingForcedAction{Kind: ForcedYellowAssign, ActorID: "p1"}

	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{TileIndex: 2}, testNow()); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if s.Pending != nil {
		t.Errorf("a lone holder ends the round, pending=%+v", s.Pending)
	}
	if s.Players[0].InfoTokens[0].Value != ValueYellow {
		t.Errorf("the mark must record a yellow token: %+v", s.Players[0].InfoTokens)
	}
}

func TestScoutPeekIsPrivate(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Players[0].Character = CharScout

	if _, err := ApplyUseCharacter(s, "p1", UseCharacterRequest{TargetPlayerID: "p2", TileIndex: 0}, testNow()); err != nil {
		t.Fatalf("scout: %v", err)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedPeekAck {
		t.Fatalf("the peek must wait for an acknowledgement, pending=%+v", s.Pending)
	}

	// The peeked value reaches only the scout's view.
	other := FilterState(s, "p2")
	for _, entry := range other.Log {
		if entry.Kind == "peek" {
			t.Errorf("the peek leaked to another player")
		}
	}
	own := FilterState(s, "p1")
	found := false
	for _, entry := range own.Log {
		if entry.Kind == "peek" {
			found = true
		}
	}
	if !found {
		t.Errorf("the scout must receive the peeked value")
	}

	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{Acknowledge: true}, testNow()); err != nil {
		t.Fatalf("ack: %v", err)
	}
	if s.Players[0].CharacterUsed != true {
		t.Errorf("the ability must be spent")
	}
	if s.CurrentPlayerID() != "p2" {
		t.Errorf("using a character ends the turn once resolved")
	}
}

func TestDisconnectAutoResolvesPendingAction(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Pending = &PendingForcedAction{Kind: ForcedPeekAck, ActorID: "p2"}

	HandleDisconnect(s, "p2", testNow())
	if s.Pending != nil {
		t.Fatalf("the pending action must auto-resolve, pending=%+v", s.Pending)
	}
	if s.Players[1].Connected {
		t.Errorf("the player must be marked disconnected")
	}
}

func TestDisconnectAutoResolvesDetectorChoice(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 9),
		blueHand(3, 3, 8),
	))
	s.Board.EquipmentByKind(EquipDoubleDetector).Unlocked = true
	if _, err := ApplyDoubleDetector(s, "p1", DoubleDetectorRequest{
		TargetPlayerID: "p2", IndexA: 0, IndexB: 1, Value: 3,
	}, testNow()); err != nil {
		t.Fatalf("detector: %v", err)
	}

	HandleDisconnect(s, "p2", testNow())
	if s.Pending != nil {
		t.Fatalf("the detector choice must auto-resolve")
	}
	if !s.Players[1].Hand[0].Cut {
		t.Errorf("the default resolution must cut the first detected wire")
	}
}

func TestMedicRefillsAndAllocatesOxygen(t *testing.T) {
	s := testState(15, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Campaign.Oxygen = &OxygenState{Pool: 3}
	s.Players[0].Character = CharMedic

	if _, err := ApplyUseCharacter(s, "p1", UseCharacterRequest{}, testNow()); err != nil {
		t.Fatalf("medic: %v", err)
	}
	if s.Campaign.Oxygen.Pool != 5 {
		t.Errorf("the medic adds two oxygen, pool is %d", s.Campaign.Oxygen.Pool)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedOxygenAllocate {
		t.Fatalf("the medic must allocate the refill, pending=%+v", s.Pending)
	}
	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{Value: 2, ChosenPlayerID: "p2"}, testNow()); err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if s.Campaign.Oxygen.Pool != 3 || s.Campaign.Oxygen.PerPlayer["p2"] != 2 {
		t.Errorf("allocation must move oxygen to the player: pool=%d perPlayer=%v",
			s.Campaign.Oxygen.Pool, s.Campaign.Oxygen.PerPlayer)
	}
}
