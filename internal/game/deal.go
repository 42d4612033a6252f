package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrPoolExhausted indicates a wire pool spec requested more distinct values
// than its candidate domain provides. This is a schema-authoring defect and
// fails the deal loudly rather than silently truncating.
var ErrPoolExhausted = errors.New("wire pool requests more values than candidates")

// Dealer turns a mission setup into concrete dealt hands.
//
// A single random stream drives the whole deal, consumed in a fixed order:
// red pool generation, then yellow pool generation, then the dealing
// shuffle. One seed therefore fully determines a deal, which the seeded
// regression tests rely on.
type Dealer struct {
	rng *rand.Rand
}

// NewDealer wraps an injected random stream.
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{rng: rng}
}

// GeneratePool expands a WirePoolSpec into the concrete sort values in play
// for the color.
func (d *Dealer) GeneratePool(spec WirePoolSpec, color WireColor) ([]float64, error) {
	candidates := spec.Candidates
	if len(candidates) == 0 {
		candidates = DefaultCandidates(color)
	}
	switch spec.Kind {
	case PoolNone:
		return nil, nil
	case PoolExact:
		if spec.Keep > len(candidates) {
			return nil, fmt.Errorf("%w: %s exact(%d) from %d", ErrPoolExhausted, color, spec.Keep, len(candidates))
		}
		return d.draw(candidates, spec.Keep), nil
	case PoolOutOf:
		if spec.Draw > len(candidates) || spec.Keep > spec.Draw {
			return nil, fmt.Errorf("%w: %s outOf(%d,%d) from %d", ErrPoolExhausted, color, spec.Keep, spec.Draw, len(candidates))
		}
		// Two-stage chip draw: Draw candidates enter the session, Keep of
		// those survive. The discarded remainder is gone for the session.
		pool := d.draw(candidates, spec.Draw)
		return d.draw(pool, spec.Keep), nil
	case PoolFixed:
		return append([]float64(nil), spec.Fixed...), nil
	case PoolExactSameValue:
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: %s exactSameValue(%d) with no candidates", ErrPoolExhausted, color, spec.Keep)
		}
		value := candidates[d.rng.Intn(len(candidates))]
		vals := make([]float64, spec.Keep)
		for i := range vals {
			vals[i] = value
		}
		return vals, nil
	default:
		return nil, fmt.Errorf("unknown pool kind %d", spec.Kind)
	}
}

// draw selects n values uniformly without replacement, leaving the input
// untouched.
func (d *Dealer) draw(candidates []float64, n int) []float64 {
	idx := d.rng.Perm(len(candidates))[:n]
	sort.Ints(idx)
	out := make([]float64, 0, n)
	for _, i := range idx {
		out = append(out, candidates[i])
	}
	return out
}

// Deal generates every tile for the setup and distributes them round-robin
// into the players' stands, sorted by sort value. Players must already be
// seated; their hands are replaced.
func (d *Dealer) Deal(setup MissionSetup, players []Player) ([]Player, error) {
	if len(players) == 0 {
		return nil, errors.New("deal with no players")
	}
	redPool, err := d.GeneratePool(setup.Red, Red)
	if err != nil {
		return nil, err
	}
	yellowPool, err := d.GeneratePool(setup.Yellow, Yellow)
	if err != nil {
		return nil, err
	}

	tiles := make([]WireTile, 0, (setup.BlueMax-setup.BlueMin+1)*BlueCopies+len(redPool)+len(yellowPool))
	for v := setup.BlueMin; v <= setup.BlueMax; v++ {
		for c := 0; c < BlueCopies; c++ {
			tiles = append(tiles, NewBlueTile(fmt.Sprintf("b%d-%d", v, c), v))
		}
	}
	for i, sv := range redPool {
		tiles = append(tiles, NewSpecialTile(fmt.Sprintf("r%d", i), Red, sv))
	}
	for i, sv := range yellowPool {
		tiles = append(tiles, NewSpecialTile(fmt.Sprintf("y%d", i), Yellow, sv))
	}

	d.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	hands := make([][]WireTile, len(players))
	for i, tile := range tiles {
		seat := i % len(players)
		hands[seat] = append(hands[seat], tile)
	}

	for i := range players {
		players[i].Hand = hands[i]
		players[i].InfoTokens = nil
		if setup.StandSplit {
			// Second round-robin pass: alternate tiles between the two
			// stands, then sort each stand segment independently.
			half := (len(hands[i]) + 1) / 2
			stand0 := make([]WireTile, 0, half)
			stand1 := make([]WireTile, 0, len(hands[i])-half)
			for j, tile := range hands[i] {
				if j%2 == 0 {
					stand0 = append(stand0, tile)
				} else {
					stand1 = append(stand1, tile)
				}
			}
			sortStand(stand0)
			sortStand(stand1)
			players[i].Hand = append(stand0, stand1...)
			players[i].StandSizes = []int{len(stand0), len(stand1)}
		} else {
			sortStand(players[i].Hand)
			players[i].StandSizes = []int{len(players[i].Hand)}
		}
	}
	return players, nil
}

func sortStand(tiles []WireTile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		if tiles[i].SortValue != tiles[j].SortValue {
			return tiles[i].SortValue < tiles[j].SortValue
		}
		return tiles[i].Color < tiles[j].Color
	})
}
