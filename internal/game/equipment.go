package game

// EquipmentKind identifies one of the closed set of equipment cards.
type EquipmentKind string

const (
	EquipDoubleDetector EquipmentKind = "double_detector"
	EquipWalkieTalkie   EquipmentKind = "walkie_talkie"
	EquipLabelPair      EquipmentKind = "label_pair"
	EquipGeneralRadar   EquipmentKind = "general_radar"
	EquipGrapplingHook  EquipmentKind = "grappling_hook"
	EquipPostIt         EquipmentKind = "post_it"
	EquipStabilizer     EquipmentKind = "stabilizer"
)

// EquipmentCard is one card on the shared board. A card unlocks when every
// copy of its unlock value has been confirmed cut on the validation track,
// and most cards are spent on use.
type EquipmentCard struct {
	Kind        EquipmentKind `json:"kind"`
	UnlockValue int           `json:"unlockValue"`
	Unlocked    bool          `json:"unlocked"`
	Locked      bool          `json:"locked"`
	Used        bool          `json:"used"`
}

// standardEquipment is the default board layout: each card keyed to the
// blue value whose full clearance unlocks it.
var standardEquipment = []EquipmentCard{
	{Kind: EquipDoubleDetector, UnlockValue: 2},
	{Kind: EquipWalkieTalkie, UnlockValue: 4},
	{Kind: EquipLabelPair, UnlockValue: 5},
	{Kind: EquipGeneralRadar, UnlockValue: 7},
	{Kind: EquipGrapplingHook, UnlockValue: 8},
	{Kind: EquipPostIt, UnlockValue: 10},
	{Kind: EquipStabilizer, UnlockValue: 11},
}

// equipmentForSetup builds the board's equipment row for a mission setup.
func equipmentForSetup(setup MissionSetup) []EquipmentCard {
	switch setup.Equipment {
	case EquipmentNone:
		return nil
	case EquipmentFixed:
		cards := make([]EquipmentCard, 0, len(setup.EquipmentList))
		for _, kind := range setup.EquipmentList {
			for _, card := range standardEquipment {
				if card.Kind == kind {
					cards = append(cards, card)
				}
			}
		}
		return cards
	default:
		cards := make([]EquipmentCard, len(standardEquipment))
		copy(cards, standardEquipment)
		// Cards keyed above the mission's blue range can never unlock.
		for i := range cards {
			if cards[i].UnlockValue > setup.BlueMax {
				cards[i].Locked = true
			}
		}
		return cards
	}
}

// EquipmentByKind returns the board card of the kind, or nil.
func (b *BoardState) EquipmentByKind(kind EquipmentKind) *EquipmentCard {
	for i := range b.Equipment {
		if b.Equipment[i].Kind == kind {
			return &b.Equipment[i]
		}
	}
	return nil
}

// refreshEquipmentUnlocks flips Unlocked on every card whose unlock value is
// now fully cleared on the validation track.
func (s *GameState) refreshEquipmentUnlocks() {
	for i := range s.Board.Equipment {
		card := &s.Board.Equipment[i]
		if card.Locked || card.Unlocked {
			continue
		}
		if s.Board.Validation[card.UnlockValue] >= s.TotalCopies(WireValue(card.UnlockValue)) && s.TotalCopies(WireValue(card.UnlockValue)) > 0 {
			card.Unlocked = true
			s.appendLog("", "equipment_unlocked", string(card.Kind)+" unlocked")
		}
	}
}
