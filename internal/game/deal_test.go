package game

import (
	"errors"
	"testing"
)

func countByColor(players []Player) map[WireColor]int {
	counts := map[WireColor]int{}
	for i := range players {
		for j := range players[i].Hand {
			counts[players[i].Hand[j].Color]++
		}
	}
	return counts
}

// TestDealTileConservation checks that every mission setup deals exactly the
// declared tile population, for every supported table size.
func TestDealTileConservation(t *testing.T) {
	cases := []struct {
		missionID int
		players   int
		blue      int
		red       int
		yellow    int
	}{
		{1, 2, 6 * BlueCopies, 0, 0},
		{1, 5, 6 * BlueCopies, 0, 0},
		{5, 3, 12 * BlueCopies, 2, 2},
		{8, 4, 12 * BlueCopies, 2, 2},
		{36, 2, 12 * BlueCopies, 2, 1},
	}
	for _, tc := range cases {
		schema, err := MissionByID(tc.missionID)
		if err != nil {
			t.Fatalf("mission %d: %v", tc.missionID, err)
		}
		setup := schema.SetupFor(tc.players)
		players := make([]Player, tc.players)
		for i := range players {
			players[i] = Player{ID: string(rune('a' + i))}
		}
		players, err = NewDealer(NewRand(7)).Deal(setup, players)
		if err != nil {
			t.Fatalf("mission %d with %d players: deal failed: %v", tc.missionID, tc.players, err)
		}
		counts := countByColor(players)
		if counts[Blue] != tc.blue || counts[Red] != tc.red || counts[Yellow] != tc.yellow {
			t.Errorf("mission %d with %d players: dealt blue=%d red=%d yellow=%d, want %d/%d/%d",
				tc.missionID, tc.players, counts[Blue], counts[Red], counts[Yellow], tc.blue, tc.red, tc.yellow)
		}
	}
}

// TestOutOfPoolProperties checks the two-stage chip draw across many seeds:
// the kept values always number Keep, are distinct, come from the candidate
// set, and every candidate shows up in some deal.
func TestOutOfPoolProperties(t *testing.T) {
	spec := outOf(2, 4)
	candidates := DefaultCandidates(Red)
	inCandidates := func(v float64) bool {
		for _, c := range candidates {
			if c == v {
				return true
			}
		}
		return false
	}
	seen := map[float64]bool{}
	for seed := int64(0); seed < 200; seed++ {
		pool, err := NewDealer(NewRand(seed)).GeneratePool(spec, Red)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(pool) != 2 {
			t.Fatalf("seed %d: kept %d values, want 2", seed, len(pool))
		}
		if pool[0] == pool[1] {
			t.Errorf("seed %d: duplicate value %v", seed, pool[0])
		}
		for _, v := range pool {
			if !inCandidates(v) {
				t.Errorf("seed %d: value %v outside the candidate set", seed, v)
			}
			seen[v] = true
		}
	}
	for _, c := range candidates {
		if !seen[c] {
			t.Errorf("candidate %v was never kept across the seed range", c)
		}
	}
}

func TestSameValuePoolAllEqual(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		pool, err := NewDealer(NewRand(seed)).GeneratePool(sameValue(3), Yellow)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(pool) != 3 {
			t.Fatalf("seed %d: got %d values, want 3", seed, len(pool))
		}
		if pool[0] != pool[1] || pool[1] != pool[2] {
			t.Errorf("seed %d: values differ: %v", seed, pool)
		}
	}
}

func TestFixedPoolNoRandomness(t *testing.T) {
	pool, err := NewDealer(NewRand(1)).GeneratePool(fixedPool(3.5, 8.5), Red)
	if err != nil {
		t.Fatalf("fixed pool: %v", err)
	}
	if len(pool) != 2 || pool[0] != 3.5 || pool[1] != 8.5 {
		t.Errorf("fixed pool altered its values: %v", pool)
	}
}

func TestPoolExhaustedError(t *testing.T) {
	_, err := NewDealer(NewRand(1)).GeneratePool(exact(3, 1.5, 2.5), Red)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}
}

// TestDealDeterministic replays the same seed and expects byte-identical
// hands; a different seed must produce a different deal.
func TestDealDeterministic(t *testing.T) {
	seats := []Seat{{ID: "p1", Name: "Ada"}, {ID: "p2", Name: "Ben"}, {ID: "p3", Name: "Cat"}}

	a, err := StartGame(5, seats, 42, testNow())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	b, err := StartGame(5, seats, 42, testNow())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := range a.Players {
		if len(a.Players[i].Hand) != len(b.Players[i].Hand) {
			t.Fatalf("seat %d: hand sizes differ", i)
		}
		for j := range a.Players[i].Hand {
			if a.Players[i].Hand[j].ID != b.Players[i].Hand[j].ID {
				t.Fatalf("seat %d slot %d: %s vs %s", i, j, a.Players[i].Hand[j].ID, b.Players[i].Hand[j].ID)
			}
		}
	}

	c, err := StartGame(5, seats, 43, testNow())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	same := true
	for i := range a.Players {
		for j := range a.Players[i].Hand {
			if a.Players[i].Hand[j].ID != c.Players[i].Hand[j].ID {
				same = false
			}
		}
	}
	if same {
		t.Errorf("different seeds produced identical deals")
	}
}

func TestDealStandsAreSorted(t *testing.T) {
	seats := []Seat{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}, {ID: "p4"}}
	s, err := StartGame(5, seats, 99, testNow())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := range s.Players {
		hand := s.Players[i].Hand
		for j := 1; j < len(hand); j++ {
			if hand[j].SortValue < hand[j-1].SortValue {
				t.Errorf("seat %d: stand out of order at slot %d: %v after %v", i, j, hand[j].SortValue, hand[j-1].SortValue)
			}
		}
	}
}

// TestDealStandSplit checks the dual-stand layout: two segments, each
// sorted independently, together holding the full hand.
func TestDealStandSplit(t *testing.T) {
	setup := baseSetup(exact(2), exact(2))
	setup.StandSplit = true
	players := []Player{{ID: "p1"}, {ID: "p2"}}
	players, err := NewDealer(NewRand(11)).Deal(setup, players)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	for i := range players {
		sizes := players[i].StandSizes
		if len(sizes) != 2 {
			t.Fatalf("seat %d: expected two stands, got %v", i, sizes)
		}
		if sizes[0]+sizes[1] != len(players[i].Hand) {
			t.Errorf("seat %d: stand sizes %v do not cover the hand of %d", i, sizes, len(players[i].Hand))
		}
		for _, seg := range [][2]int{{0, sizes[0]}, {sizes[0], sizes[0] + sizes[1]}} {
			for j := seg[0] + 1; j < seg[1]; j++ {
				if players[i].Hand[j].SortValue < players[i].Hand[j-1].SortValue {
					t.Errorf("seat %d: stand segment out of order at slot %d", i, j)
				}
			}
		}
	}
}
