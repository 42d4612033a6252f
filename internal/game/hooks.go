package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Schema returns the active mission's rule schema. The mission id on a live
// GameState always refers to a registered mission; anything else is a
// programming error and panics.
func (s *GameState) Schema() *MissionRuleSchema {
	schema, err := MissionByID(s.MissionID)
	if err != nil {
		panic(err)
	}
	return schema
}

// applySetupHooks populates campaign sub-state for every hook rule the
// mission carries. Called once when the deal completes.
func applySetupHooks(s *GameState, schema *MissionRuleSchema, rng *rand.Rand, now time.Time) {
	for _, rule := range schema.HookRules {
		switch rule.Kind {
		case HookTimer:
			seconds := rule.DurationSeconds
			if byCount, ok := rule.DurationByPlayers[len(s.Players)]; ok {
				seconds = byCount
			}
			s.Campaign.Timer = &TimerState{
				Deadline:        now.Add(time.Duration(seconds) * time.Second),
				DurationSeconds: seconds,
			}
			s.Audio = &AudioSync{
				TrackID:   fmt.Sprintf("mission-%d-countdown", s.MissionID),
				StartedAt: now,
			}

		case HookSequence:
			s.Campaign.NumberCards = newNumberCards(rule, s.Board.Validation, rng)

		case HookOxygen:
			perPlayer := rule.Count
			if perPlayer <= 0 {
				perPlayer = 10
			}
			s.Campaign.Oxygen = &OxygenState{Pool: perPlayer * len(s.Players)}

		case HookNano:
			length := rule.Track
			if length <= 0 {
				length = 8
			}
			s.Campaign.Nano = &TrackState{Length: length}

		case HookBunker:
			length := rule.Track
			if length <= 0 {
				length = 6
			}
			s.Campaign.Bunker = &TrackState{Length: length}

		case HookConstraint:
			s.Campaign.Constraints = newConstraints(s.Players, rng)

		case HookUpsideDown:
			for i := range s.Players {
				flipRandomBlue(&s.Players[i], rng)
			}

		case HookXMarkedGate:
			markRandomBlue(s, rng)
		}
	}
	if len(schema.HookRules) > 0 && s.Campaign.SpecialMarkers == nil {
		s.Campaign.SpecialMarkers = map[string]int{}
	}
}

// newNumberCards builds the sequence-priority deck: the blue values in play
// shuffled, three face up, the pointer on the first.
func newNumberCards(rule HookRule, validation map[int]int, rng *rand.Rand) *NumberCardState {
	cutsNeeded := rule.Count
	if cutsNeeded <= 0 {
		cutsNeeded = 1
	}
	if len(rule.Values) > 0 {
		return &NumberCardState{
			Visible:    append([]int(nil), rule.Values...),
			CutsNeeded: cutsNeeded,
		}
	}
	values := make([]int, 0, len(validation))
	for v := range validation {
		values = append(values, v)
	}
	rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	visible := 3
	if visible > len(values) {
		visible = len(values)
	}
	return &NumberCardState{
		Deck:       values[visible:],
		Visible:    values[:visible],
		CutsNeeded: cutsNeeded,
	}
}

// constraintCatalog is the rotating constraint deck. Cards restrict what
// their holder may cut while active.
var constraintCatalog = []ConstraintCard{
	{ID: "no-low", Text: "You may not announce values 1-4", BanValues: []int{1, 2, 3, 4}},
	{ID: "no-mid", Text: "You may not announce values 5-8", BanValues: []int{5, 6, 7, 8}},
	{ID: "no-high", Text: "You may not announce values 9-12", BanValues: []int{9, 10, 11, 12}},
	{ID: "no-odd", Text: "You may not announce odd values", BanValues: []int{1, 3, 5, 7, 9, 11}},
	{ID: "no-even", Text: "You may not announce even values", BanValues: []int{2, 4, 6, 8, 10, 12}},
	{ID: "no-yellow", Text: "You may not target yellow wires", BanColor: Yellow, HasColor: true},
}

func newConstraints(players []Player, rng *rand.Rand) *ConstraintState {
	deck := make([]ConstraintCard, len(constraintCatalog))
	copy(deck, constraintCatalog)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	cs := &ConstraintState{Active: map[string]ConstraintCard{}}
	for i := range players {
		if len(deck) == 0 {
			break
		}
		cs.Active[players[i].ID] = deck[0]
		deck = deck[1:]
	}
	cs.Deck = deck
	return cs
}

// drawConstraint rotates the player's active constraint card into the
// discard pile and deals the next from the deck.
func (s *GameState) drawConstraint(playerID string) {
	cs := s.Campaign.Constraints
	if cs == nil {
		return
	}
	if active, ok := cs.Active[playerID]; ok {
		cs.Discard = append(cs.Discard, active)
	}
	if len(cs.Deck) == 0 {
		cs.Deck = cs.Discard
		cs.Discard = nil
	}
	if len(cs.Deck) > 0 {
		cs.Active[playerID] = cs.Deck[0]
		cs.Deck = cs.Deck[1:]
		s.appendLog(playerID, "constraint_drawn", "a new constraint card is active")
	}
}

func flipRandomBlue(p *Player, rng *rand.Rand) {
	candidates := make([]int, 0, len(p.Hand))
	for i := range p.Hand {
		if p.Hand[i].Color == Blue && !p.Hand[i].Cut {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}
	p.Hand[candidates[rng.Intn(len(candidates))]].UpsideDown = true
}

func markRandomBlue(s *GameState, rng *rand.Rand) {
	seat := rng.Intn(len(s.Players))
	for offset := 0; offset < len(s.Players); offset++ {
		p := &s.Players[(seat+offset)%len(s.Players)]
		candidates := make([]int, 0, len(p.Hand))
		for i := range p.Hand {
			if p.Hand[i].Color == Blue {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) > 0 {
			p.Hand[candidates[rng.Intn(len(candidates))]].XMarked = true
			return
		}
	}
}

// cutRestriction is the hook layer the validator consults on top of core
// legality. It returns a rejection reason or nil. Hooks never mutate the
// validator; they only expose predicates through here.
func cutRestriction(s *GameState, schema *MissionRuleSchema, playerID string, value WireValue, target *WireTile) error {
	if nc := s.Campaign.NumberCards; nc != nil && schema.HasHook(HookSequence) && value.IsNumber() {
		if active := nc.ActiveValue(); active != 0 && int(value) != active {
			return fmt.Errorf("the sequence gate only allows cutting %d right now", active)
		}
	}
	if cs := s.Campaign.Constraints; cs != nil {
		cards := make([]ConstraintCard, 0, 2)
		if card, ok := cs.Active[playerID]; ok {
			cards = append(cards, card)
		}
		if cs.Global != nil {
			cards = append(cards, *cs.Global)
		}
		for _, card := range cards {
			if value.IsNumber() && containsInt(card.BanValues, int(value)) {
				return fmt.Errorf("your constraint card forbids announcing %d", int(value))
			}
			if card.HasColor && target != nil && target.Color == card.BanColor {
				return fmt.Errorf("your constraint card forbids targeting %s wires", card.BanColor)
			}
		}
	}
	// The color ban guards against number guesses landing on the banned
	// color; announcing the color itself is how those wires get cleared.
	if rule := schema.HookRule(HookColorBan); rule != nil && target != nil && target.Color == rule.Color && value.IsNumber() {
		return fmt.Errorf("this mission forbids targeting %s wires", rule.Color)
	}
	if schema.HasHook(HookXMarkedGate) && target != nil && target.XMarked && s.AnyUncutRed() {
		return fmt.Errorf("the X-marked wire stays off limits while red wires remain")
	}
	return nil
}

// postActionHooks runs after an action resolves, before outcome evaluation.
func postActionHooks(s *GameState, schema *MissionRuleSchema, actorID string, success bool, value WireValue, cutCount int) {
	if schema.HasHook(HookFalseToken) && !success && s.Pending == nil {
		// A wrong guess on a disinformation mission forces the guesser to
		// seed another lie before play continues.
		s.Pending = &PendingForcedAction{
			Kind:    ForcedFalseTokenPlace,
			ActorID: actorID,
		}
	}
	if ox := s.Campaign.Oxygen; ox != nil {
		cost := 1
		if !success {
			cost = 2
		}
		ox.Pool -= cost
		if ox.Pool < 0 {
			ox.Pool = 0
		}
	}
	if nano := s.Campaign.Nano; nano != nil && !success {
		nano.Pos++
	}
	if nc := s.Campaign.NumberCards; nc != nil && success && value.IsNumber() && int(value) == nc.ActiveValue() {
		nc.CutsMade += cutCount
		for nc.CutsMade >= nc.CutsNeeded && nc.ActiveValue() != 0 {
			nc.CutsMade -= nc.CutsNeeded
			nc.Discard = append(nc.Discard, nc.Visible[nc.Pointer])
			nc.Pointer++
		}
		if nc.Pointer >= len(nc.Visible) && len(nc.Deck) > 0 && s.Pending == nil {
			if captain := s.Captain(); captain != nil {
				s.Pending = &PendingForcedAction{
					Kind:    ForcedSequenceRefill,
					ActorID: captain.ID,
				}
			}
		}
	}
}

// installYellowAssign kicks off the yellow-marking round on missions that
// ban yellow targets: each player holding yellow wires marks one before the
// first turn, so the table knows what to steer around.
func installYellowAssign(s *GameState, schema *MissionRuleSchema) {
	if !schema.HasHook(HookColorBan) {
		return
	}
	rule := schema.HookRule(HookColorBan)
	if rule.Color != Yellow {
		return
	}
	holders := make([]string, 0, len(s.Players))
	for i := range s.Players {
		for j := range s.Players[i].Hand {
			t := &s.Players[i].Hand[j]
			if t.Color == Yellow && !t.Cut {
				holders = append(holders, s.Players[i].ID)
				break
			}
		}
	}
	if len(holders) == 0 {
		return
	}
	s.Pending = &PendingForcedAction{
		Kind:      ForcedYellowAssign,
		ActorID:   holders[0],
		Reporters: holders,
	}
}

// refillSequenceRow deals a fresh face-up row from the number card deck.
func (s *GameState) refillSequenceRow() {
	nc := s.Campaign.NumberCards
	if nc == nil || len(nc.Deck) == 0 {
		return
	}
	n := 3
	if n > len(nc.Deck) {
		n = len(nc.Deck)
	}
	nc.Visible = append([]int(nil), nc.Deck[:n]...)
	nc.Deck = nc.Deck[n:]
	nc.Pointer = 0
	nc.CutsMade = 0
	s.appendLog("", "sequence_refilled", "a new row of number cards is face up")
}

// endOfTurnHooks runs when the acting player's turn wraps up, before the
// seat index advances.
func endOfTurnHooks(s *GameState, schema *MissionRuleSchema) {
	actor := &s.Players[s.CurrentPlayer]

	if bunker := s.Campaign.Bunker; bunker != nil {
		bunker.Pos++
		if bunker.Pos >= bunker.Length {
			bunker.Pos = 0
			s.Board.DetonatorPos++
			s.appendLog("", "bunker_cycle", "the bunker flow pushed the detonator forward")
			// The flooding cycle forces the actor to hand intel onward.
			if len(actor.InfoTokens) > 0 && s.Pending == nil {
				s.Pending = &PendingForcedAction{
					Kind:    ForcedPassInfoToken,
					ActorID: actor.ID,
				}
			}
		}
	}

	if schema.HasHook(HookUpsideDown) && s.Pending == nil {
		// Once an upside-down wire is one of the owner's last two hidden
		// wires, it must be flipped before play moves on.
		hidden, upsideDown := 0, -1
		for i := range actor.Hand {
			t := &actor.Hand[i]
			if t.Cut || t.Revealed {
				continue
			}
			hidden++
			if t.UpsideDown {
				upsideDown = i
			}
		}
		if upsideDown >= 0 && hidden <= 2 {
			s.Pending = &PendingForcedAction{
				Kind:    ForcedUpsideDownReveal,
				ActorID: actor.ID,
			}
		}
	}
}

// startOfTurnHooks runs when a new turn begins. Missions with captain-driven
// turn order interrupt here instead of using seat order.
func startOfTurnHooks(s *GameState, schema *MissionRuleSchema) {
	if schema.HasHook(HookCaptainOrder) && s.Pending == nil && !s.Finished() {
		if captain := s.Captain(); captain != nil {
			s.Pending = &PendingForcedAction{
				Kind:    ForcedCaptainChooseNext,
				ActorID: captain.ID,
			}
		}
	}
}
