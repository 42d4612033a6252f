package game

import (
	"testing"
)

func TestEquipmentUnlocksWhenValueCleared(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(2, 2, 6),
		blueHand(2, 2, 7),
	))

	card := s.Board.EquipmentByKind(EquipDoubleDetector)
	if card == nil || card.Unlocked {
		t.Fatalf("the detector must start locked")
	}

	// Cut three of the four copies of 2: still locked.
	s.cutTile(&s.Players[0], 0)
	s.cutTile(&s.Players[0], 1)
	s.cutTile(&s.Players[1], 0)
	if card.Unlocked {
		t.Fatalf("the detector must stay locked with one copy of 2 uncut")
	}
	s.cutTile(&s.Players[1], 1)
	if !card.Unlocked {
		t.Fatalf("clearing every copy of 2 must unlock the detector")
	}
}

func TestEquipmentAboveBlueRangeStaysLocked(t *testing.T) {
	// Mission 31 plays blue 1-10, so the stabilizer (keyed to 11) can never
	// unlock.
	schema, err := MissionByID(31)
	if err != nil {
		t.Fatalf("mission 31: %v", err)
	}
	cards := equipmentForSetup(schema.SetupFor(2))
	for _, card := range cards {
		if card.Kind == EquipStabilizer && !card.Locked {
			t.Errorf("the stabilizer must be locked out of a 1-10 mission")
		}
		if card.Kind == EquipPostIt && card.Locked {
			t.Errorf("the post-it unlocks at 10 and must stay available")
		}
	}
}

func TestStabilizerPullsDetonatorBack(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Board.DetonatorPos = 2
	s.Board.EquipmentByKind(EquipStabilizer).Unlocked = true

	if _, err := ApplyUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipStabilizer}, testNow()); err != nil {
		t.Fatalf("stabilizer: %v", err)
	}
	if s.Board.DetonatorPos != 1 {
		t.Errorf("expected detonator 1, got %d", s.Board.DetonatorPos)
	}
	if !s.Board.EquipmentByKind(EquipStabilizer).Used {
		t.Errorf("the card must be spent")
	}
	s.CurrentPlayer = 0
	if err := ValidateUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipStabilizer}); err == nil {
		t.Errorf("a spent card must not be usable again")
	}
}

func TestDoubleDetectorSingleMatch(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 9),
		blueHand(3, 8),
	))
	s.Board.EquipmentByKind(EquipDoubleDetector).Unlocked = true

	action, err := ApplyDoubleDetector(s, "p1", DoubleDetectorRequest{
		TargetPlayerID: "p2", IndexA: 0, IndexB: 1, Value: 3,
	}, testNow())
	if err != nil {
		t.Fatalf("detector: %v", err)
	}
	if !action.Success {
		t.Fatalf("one matching wire must count as a success")
	}
	if !s.Players[1].Hand[0].Cut || !s.Players[0].Hand[0].Cut {
		t.Errorf("the matching wire and the actor's copy must both be cut")
	}
	if s.Pending != nil {
		t.Errorf("a single match resolves without a forced action")
	}
	if s.CurrentPlayerID() != "p2" {
		t.Errorf("the turn must advance")
	}
}

func TestDoubleDetectorBothMatch(t *testing.T) {
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
	if s.Pending == nil || s.Pending.Kind != ForcedDetectorChoice || s.Pending.ActorID != "p2" {
		t.Fatalf("two matches must hand the choice to the target, pending=%+v", s.Pending)
	}

	if _, err := ApplyForcedResponse(s, "p2", ForcedResponse{TileIndex: 2}, testNow()); err == nil {
		t.Fatalf("the choice must be limited to the two detected wires")
	}
	if _, err := ApplyForcedResponse(s, "p2", ForcedResponse{TileIndex: 1}, testNow()); err != nil {
		t.Fatalf("choice: %v", err)
	}
	if !s.Players[1].Hand[1].Cut {
		t.Errorf("the chosen wire must be cut")
	}
	if s.Players[1].Hand[0].Cut {
		t.Errorf("the other detected wire must stay uncut")
	}
	if !s.Players[0].Hand[0].Cut {
		t.Errorf("the detector user's copy must be cut")
	}
	if s.CurrentPlayerID() != "p2" {
		t.Errorf("the turn must advance after the choice resolves")
	}
}

func TestDoubleDetectorMiss(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 9),
		blueHand(5, 6, 8),
	))
	s.Board.EquipmentByKind(EquipDoubleDetector).Unlocked = true

	action, err := ApplyDoubleDetector(s, "p1", DoubleDetectorRequest{
		TargetPlayerID: "p2", IndexA: 0, IndexB: 1, Value: 3,
	}, testNow())
	if err != nil {
		t.Fatalf("detector: %v", err)
	}
	if action.Success {
		t.Fatalf("zero matches must count as a miss")
	}
	if s.Board.DetonatorPos != 1 {
		t.Errorf("a miss costs one detonator notch, got %d", s.Board.DetonatorPos)
	}
	if len(s.Players[1].InfoTokens) != 2 {
		t.Errorf("both detected wires must receive truth tokens, got %d", len(s.Players[1].InfoTokens))
	}
}

func TestPostItMustTellTheTruth(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Board.EquipmentByKind(EquipPostIt).Unlocked = true

	if err := ValidateUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipPostIt, Position: 0, Value: 7}); err == nil {
		t.Fatalf("a lying post-it must be rejected")
	}
	if _, err := ApplyUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipPostIt, Position: 0, Value: 3}, testNow()); err != nil {
		t.Fatalf("post-it: %v", err)
	}
	tokens := s.Players[0].InfoTokens
	if len(tokens) != 1 || tokens[0].Value != 3 || !tokens[0].Declared {
		t.Errorf("the post-it must leave a declared truth token: %+v", tokens)
	}
}

func TestLabelPairRecordsEquality(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 5, 9),
	))
	s.Board.EquipmentByKind(EquipLabelPair).Unlocked = true

	if err := ValidateUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipLabelPair, TargetPlayerID: "p2", PosA: 0, PosB: 2}); err == nil {
		t.Fatalf("labels must go between adjacent wires")
	}
	if _, err := ApplyUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipLabelPair, TargetPlayerID: "p2", PosA: 0, PosB: 1}, testNow()); err != nil {
		t.Fatalf("label: %v", err)
	}
	if len(s.Board.Markers) != 1 {
		t.Fatalf("expected one marker, got %d", len(s.Board.Markers))
	}
	m := s.Board.Markers[0]
	if !m.Equal || m.PlayerID != "p2" {
		t.Errorf("the marker must record equal adjacent wires: %+v", m)
	}
}

func TestWalkieTalkiePicksNextPlayer(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
		blueHand(6, 8),
	))
	s.Board.EquipmentByKind(EquipWalkieTalkie).Unlocked = true

	if _, err := ApplyUseEquipment(s, "p1", UseEquipmentRequest{Kind: EquipWalkieTalkie}, testNow()); err != nil {
		t.Fatalf("walkie talkie: %v", err)
	}
	if s.Pending == nil || s.Pending.Kind != ForcedChooseNextPlayer {
		t.Fatalf("the user chooses who acts next, pending=%+v", s.Pending)
	}
	if _, err := ApplyForcedResponse(s, "p1", ForcedResponse{ChosenPlayerID: "p3"}, testNow()); err != nil {
		t.Fatalf("choice: %v", err)
	}
	if s.CurrentPlayerID() != "p3" {
		t.Errorf("the chosen player must act next, current is %s", s.CurrentPlayerID())
	}
}
