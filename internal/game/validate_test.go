package game

import (
	"strings"
	"testing"
)

func TestSoloCutRequiresAllRemainingCopies(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(4, 4, 6),
		blueHand(4, 9),
	))

	// A teammate still holds an uncut 4.
	if err := ValidateSoloCut(s, "p1", SoloCutRequest{Value: 4}); err == nil {
		t.Fatalf("solo cut must be rejected while a teammate holds a copy")
	}

	s.Players[1].Hand[0].Cut = true
	if err := ValidateSoloCut(s, "p1", SoloCutRequest{Value: 4}); err != nil {
		t.Fatalf("solo cut must be legal once the actor holds all remaining copies: %v", err)
	}

	s.Players[0].Hand[0].Cut = true
	s.Players[0].Hand[1].Cut = true
	if err := ValidateSoloCut(s, "p1", SoloCutRequest{Value: 4}); err == nil {
		t.Errorf("solo cut of a fully cut value must be rejected")
	}
}

func TestDualCutRejections(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))

	cases := []struct {
		name string
		who  string
		req  DualCutRequest
	}{
		{"not your turn", "p2", DualCutRequest{TargetPlayerID: "p1", TargetIndex: 0, Value: 5}},
		{"self target", "p1", DualCutRequest{TargetPlayerID: "p1", TargetIndex: 1, Value: 3}},
		{"unknown target", "p1", DualCutRequest{TargetPlayerID: "ghost", TargetIndex: 0, Value: 3}},
		{"value not held", "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 0, Value: 5}},
		{"value out of range", "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 0, Value: 13}},
		{"red never announced", "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 0, Value: int(ValueRed)}},
		{"yellow not held", "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 0, Value: int(ValueYellow)}},
		{"index out of range", "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 5, Value: 3}},
	}
	for _, tc := range cases {
		if err := ValidateDualCut(s, tc.who, tc.req); err == nil {
			t.Errorf("%s: expected rejection", tc.name)
		}
	}
}

func TestPendingForcedActionBlocksTurnActions(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(3, 9),
	))
	s.Pending = &PendingForcedAction{Kind: ForcedPeekAck, ActorID: "p1"}

	err := ValidateDualCut(s, "p1", DualCutRequest{TargetPlayerID: "p2", TargetIndex: 0, Value: 3})
	if err == nil {
		t.Fatalf("the pending actor may not take normal actions")
	}
	if !strings.Contains(err.Error(), "pending") {
		t.Errorf("unexpected rejection reason: %v", err)
	}
	if err := ValidateDualCut(s, "p2", DualCutRequest{TargetPlayerID: "p1", TargetIndex: 0, Value: 3}); err == nil {
		t.Errorf("other players must wait for the pending action")
	}
}

func TestPlaceInfoTokenMustBeTruthful(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Phase = PhaseSetupInfoTokens

	if err := ValidatePlaceInfoToken(s, "p1", PlaceInfoTokenRequest{Position: 0, Value: 7}); err == nil {
		t.Errorf("a lying token must be rejected on a standard mission")
	}
	if err := ValidatePlaceInfoToken(s, "p1", PlaceInfoTokenRequest{Position: 0, Value: 3}); err != nil {
		t.Errorf("a truthful token must be accepted: %v", err)
	}
}

func TestPlaceInfoTokenMustLieOnDisinformation(t *testing.T) {
	// Mission 34 inverts the token rule: the declared value must be false.
	s := testState(34, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Phase = PhaseSetupInfoTokens

	if err := ValidatePlaceInfoToken(s, "p1", PlaceInfoTokenRequest{Position: 0, Value: 3}); err == nil {
		t.Errorf("a truthful token must be rejected on a disinformation mission")
	}
	if err := ValidatePlaceInfoToken(s, "p1", PlaceInfoTokenRequest{Position: 0, Value: 7}); err != nil {
		t.Errorf("a lying token must be accepted: %v", err)
	}
}

func TestPlaceInfoTokenOncePerPlayer(t *testing.T) {
	s := testState(5, testPlayers(
		blueHand(3, 7),
		blueHand(5, 9),
	))
	s.Phase = PhaseSetupInfoTokens

	if _, err := ApplyPlaceInfoToken(s, "p1", PlaceInfoTokenRequest{Position: 0, Value: 3}, testNow()); err != nil {
		t.Fatalf("first token: %v", err)
	}
	if err := ValidatePlaceInfoToken(s, "p1", PlaceInfoTokenRequest{Position: 1, Value: 7}); err == nil {
		t.Errorf("a second token from the same player must be rejected")
	}
}

func TestRevealRedsDisabledOnRedAlert(t *testing.T) {
	hands := testPlayers(
		blueHand(3),
		blueHand(5),
	)
	hands[0].Hand[0].Cut = true
	hands[0].Hand = append(hands[0].Hand, NewSpecialTile("r0", Red, 6.5))
	hands[0].StandSizes = []int{2}
	s := testState(28, hands)

	if err := ValidateRevealReds(s, "p1"); err == nil {
		t.Errorf("red alert missions must disable the reveal ritual")
	}
}

func TestRevealRedsRequiresOnlyRedsLeft(t *testing.T) {
	hands := testPlayers(
		blueHand(3),
		blueHand(5),
	)
	hands[0].Hand = append(hands[0].Hand, NewSpecialTile("r0", Red, 6.5))
	hands[0].StandSizes = []int{2}
	s := testState(5, hands)

	if err := ValidateRevealReds(s, "p1"); err == nil {
		t.Errorf("reveal must be rejected while blue wires remain uncut")
	}
}
