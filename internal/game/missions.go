package game

// Pool spec constructors keep the catalog readable.

func noWires() WirePoolSpec { return WirePoolSpec{Kind: PoolNone} }

func exact(n int, candidates ...float64) WirePoolSpec {
	return WirePoolSpec{Kind: PoolExact, Keep: n, Candidates: candidates}
}

func outOf(keep, draw int, candidates ...float64) WirePoolSpec {
	return WirePoolSpec{Kind: PoolOutOf, Keep: keep, Draw: draw, Candidates: candidates}
}

func fixedPool(values ...float64) WirePoolSpec {
	return WirePoolSpec{Kind: PoolFixed, Fixed: values}
}

func sameValue(n int) WirePoolSpec {
	return WirePoolSpec{Kind: PoolExactSameValue, Keep: n}
}

func intp(v int) *int                    { return &v }
func poolp(p WirePoolSpec) *WirePoolSpec { return &p }
func boolp(v bool) *bool                 { return &v }

var allCounts = []int{2, 3, 4, 5}
var threePlus = []int{3, 4, 5}
var fourPlus = []int{4, 5}

// baseSetup is the standard mission configuration; catalog entries override
// what differs.
func baseSetup(red, yellow WirePoolSpec) MissionSetup {
	return MissionSetup{
		BlueMin:   BlueValueMin,
		BlueMax:   BlueValueMax,
		Red:       red,
		Yellow:    yellow,
		Equipment: EquipmentStandard,
	}
}

// missionRegistry is the full mission catalog. Pure data; behavior lives in
// the hook interpreter.
var missionRegistry = map[int]MissionRuleSchema{
	1: {
		ID: 1, Name: "First Day on the Job",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 6, Red: noWires(), Yellow: noWires(), Equipment: EquipmentNone},
		AllowedPlayerCounts: allCounts,
	},
	2: {
		ID: 2, Name: "Training Wheels",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 8, Red: noWires(), Yellow: exact(1), Equipment: EquipmentNone},
		AllowedPlayerCounts: allCounts,
	},
	3: {
		ID: 3, Name: "Live Wire",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 10, Red: exact(1), Yellow: exact(1), Equipment: EquipmentNone},
		AllowedPlayerCounts: allCounts,
	},
	4: {
		ID: 4, Name: "Full Kit",
		Setup:               baseSetup(exact(1), exact(2)),
		AllowedPlayerCounts: allCounts,
	},
	5: {
		ID: 5, Name: "Standard Procedure",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
	},
	6: {
		ID: 6, Name: "Crossed Wires",
		Setup: baseSetup(exact(2), exact(3)),
		Overrides: map[int]SetupOverride{
			2: {Yellow: poolp(exact(2))},
		},
		AllowedPlayerCounts: allCounts,
	},
	7: {
		ID: 7, Name: "Against the Clock",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookTimer},
		HookRules: []HookRule{{
			Kind:              HookTimer,
			DurationSeconds:   600,
			DurationByPlayers: map[int]int{2: 480, 5: 720},
		}},
	},
	8: {
		ID: 8, Name: "Chip Draw",
		Setup:               baseSetup(outOf(2, 4), exact(2)),
		AllowedPlayerCounts: allCounts,
	},
	9: {
		ID: 9, Name: "Short Fuse",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(2), Yellow: exact(2), Equipment: EquipmentStandard, DetonatorMax: 5},
		AllowedPlayerCounts: allCounts,
	},
	10: {
		ID: 10, Name: "The Long Haul",
		Setup: baseSetup(exact(3), exact(3)),
		Overrides: map[int]SetupOverride{
			2: {Red: poolp(exact(2)), Yellow: poolp(exact(2))},
		},
		AllowedPlayerCounts: allCounts,
	},
	11: {
		ID: 11, Name: "Yellow Fever",
		Setup:               baseSetup(exact(1), exact(4)),
		AllowedPlayerCounts: allCounts,
	},
	12: {
		ID: 12, Name: "By the Numbers",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookSequence},
		HookRules:           []HookRule{{Kind: HookSequence, Count: 2}},
	},
	13: {
		ID: 13, Name: "Deep Cover",
		Setup:               baseSetup(outOf(2, 5), exact(3)),
		AllowedPlayerCounts: allCounts,
	},
	14: {
		ID: 14, Name: "X Marks the Spot",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookXMarkedGate},
		HookRules:           []HookRule{{Kind: HookXMarkedGate}},
	},
	15: {
		ID: 15, Name: "Thin Air",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookOxygen},
		HookRules:           []HookRule{{Kind: HookOxygen, Count: 12}},
	},
	16: {
		ID: 16, Name: "Double Trouble",
		Setup:               baseSetup(exact(2), sameValue(2)),
		AllowedPlayerCounts: allCounts,
	},
	17: {
		ID: 17, Name: "House Rules",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookConstraint},
		HookRules:           []HookRule{{Kind: HookConstraint}},
	},
	18: {
		ID: 18, Name: "Narrow Margin",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(3), Yellow: exact(2), Equipment: EquipmentStandard, DetonatorMax: 6},
		AllowedPlayerCounts: allCounts,
	},
	19: {
		ID: 19, Name: "Rush Hour",
		Setup:               baseSetup(exact(2), exact(3)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookTimer},
		HookRules: []HookRule{{
			Kind:              HookTimer,
			DurationSeconds:   480,
			DurationByPlayers: map[int]int{5: 600},
		}},
	},
	20: {
		ID: 20, Name: "Buried Leads",
		Setup:               baseSetup(outOf(3, 6), exact(2)),
		AllowedPlayerCounts: allCounts,
	},
	21: {
		ID: 21, Name: "Nanite Swarm",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookNano},
		HookRules:           []HookRule{{Kind: HookNano, Track: 8}},
	},
	22: {
		ID: 22, Name: "Spare Parts",
		Setup: baseSetup(exact(2), exact(2)),
		Overrides: map[int]SetupOverride{
			4: {Red: poolp(exact(3))},
			5: {Red: poolp(exact(3)), Yellow: poolp(exact(3))},
		},
		AllowedPlayerCounts: allCounts,
	},
	23: {
		ID: 23, Name: "Wrong Way Up",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookUpsideDown},
		HookRules:           []HookRule{{Kind: HookUpsideDown}},
	},
	24: {
		ID: 24, Name: "Strict Sequence",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookSequence},
		HookRules:           []HookRule{{Kind: HookSequence, Count: 3}},
	},
	25: {
		ID: 25, Name: "No Safety Net",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(3), Yellow: exact(3), Equipment: EquipmentNone},
		AllowedPlayerCounts: threePlus,
	},
	26: {
		ID: 26, Name: "Bunker Run",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookBunker},
		HookRules:           []HookRule{{Kind: HookBunker, Track: 6}},
	},
	27: {
		ID: 27, Name: "Loaded Dice",
		Setup:               baseSetup(outOf(2, 6), outOf(2, 5)),
		AllowedPlayerCounts: allCounts,
	},
	28: {
		ID: 28, Name: "Red Alert",
		Setup:               baseSetup(exact(3), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookRedAlert},
		HookRules:           []HookRule{{Kind: HookRedAlert}},
	},
	29: {
		ID: 29, Name: "Last Breath",
		Setup:               baseSetup(exact(2), exact(3)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookOxygen},
		HookRules:           []HookRule{{Kind: HookOxygen, Count: 9}},
	},
	30: {
		ID: 30, Name: "Chain of Command",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookCaptainOrder},
		HookRules:           []HookRule{{Kind: HookCaptainOrder}},
	},
	31: {
		ID: 31, Name: "Countdown Duet",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 10, Red: exact(2), Yellow: exact(2), Equipment: EquipmentStandard},
		AllowedPlayerCounts: []int{2, 3},
		Hooks:               []string{HookTimer},
		HookRules:           []HookRule{{Kind: HookTimer, DurationSeconds: 420}},
	},
	32: {
		ID: 32, Name: "Twin Stands",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(2), Yellow: exact(2), Equipment: EquipmentStandard, StandSplit: true},
		AllowedPlayerCounts: allCounts,
	},
	33: {
		ID: 33, Name: "Fine Print",
		Setup:               baseSetup(exact(2), exact(3)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookConstraint},
		HookRules:           []HookRule{{Kind: HookConstraint}},
	},
	34: {
		ID: 34, Name: "Disinformation",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookFalseToken},
		HookRules:           []HookRule{{Kind: HookFalseToken}},
	},
	35: {
		ID: 35, Name: "Grey Goo",
		Setup:               baseSetup(exact(3), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookNano},
		HookRules:           []HookRule{{Kind: HookNano, Track: 6}},
	},
	36: {
		ID: 36, Name: "Known Quantities",
		Setup:               baseSetup(fixedPool(3.5, 8.5), fixedPool(5.5)),
		AllowedPlayerCounts: allCounts,
	},
	37: {
		ID: 37, Name: "Priority Channel",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookSequence},
		HookRules:           []HookRule{{Kind: HookSequence, Values: []int{2, 5, 8}, Count: 2}},
	},
	38: {
		ID: 38, Name: "Hands Off Yellow",
		Setup:               baseSetup(exact(2), exact(3)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookColorBan},
		HookRules:           []HookRule{{Kind: HookColorBan, Color: Yellow}},
	},
	39: {
		ID: 39, Name: "Heavy Load",
		Setup: baseSetup(exact(3), exact(3)),
		Overrides: map[int]SetupOverride{
			2: {DetonatorMax: intp(9)},
		},
		AllowedPlayerCounts: allCounts,
	},
	40: {
		ID: 40, Name: "Sealed Section",
		Setup:               baseSetup(exact(3), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookXMarkedGate},
		HookRules:           []HookRule{{Kind: HookXMarkedGate}},
	},
	41: {
		ID: 41, Name: "Pressure Lock",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookBunker},
		HookRules:           []HookRule{{Kind: HookBunker, Track: 5}},
	},
	42: {
		ID: 42, Name: "Split Duty",
		Setup: MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(2), Yellow: exact(3), Equipment: EquipmentStandard, StandSplit: true},
		Overrides: map[int]SetupOverride{
			2: {StandSplit: boolp(false)},
		},
		AllowedPlayerCounts: allCounts,
	},
	43: {
		ID: 43, Name: "Scattered Intel",
		Setup:               baseSetup(outOf(3, 7), exact(2)),
		AllowedPlayerCounts: allCounts,
	},
	44: {
		ID: 44, Name: "Vacuum Seal",
		Setup:               baseSetup(exact(3), exact(2)),
		AllowedPlayerCounts: fourPlus,
		Hooks:               []string{HookOxygen},
		HookRules:           []HookRule{{Kind: HookOxygen, Count: 8}},
	},
	45: {
		ID: 45, Name: "Zero Hour",
		Setup:               baseSetup(exact(3), exact(3)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookTimer},
		HookRules: []HookRule{{
			Kind:              HookTimer,
			DurationSeconds:   360,
			DurationByPlayers: map[int]int{4: 420, 5: 480},
		}},
	},
	46: {
		ID: 46, Name: "Twins",
		Setup:               baseSetup(sameValue(3), exact(2)),
		AllowedPlayerCounts: allCounts,
	},
	47: {
		ID: 47, Name: "Blind Spots",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookUpsideDown, HookXMarkedGate},
		HookRules:           []HookRule{{Kind: HookUpsideDown}, {Kind: HookXMarkedGate}},
	},
	48: {
		ID: 48, Name: "Red Tape",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookConstraint, HookColorBan},
		HookRules:           []HookRule{{Kind: HookConstraint}, {Kind: HookColorBan, Color: Yellow}},
	},
	49: {
		ID: 49, Name: "Command Decision",
		Setup:               baseSetup(exact(3), exact(2)),
		AllowedPlayerCounts: fourPlus,
		Hooks:               []string{HookCaptainOrder},
		HookRules:           []HookRule{{Kind: HookCaptainOrder}},
	},
	50: {
		ID: 50, Name: "Nanite Nest",
		Setup:               baseSetup(outOf(2, 5), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookNano},
		HookRules:           []HookRule{{Kind: HookNano, Track: 7}},
	},
	51: {
		ID: 51, Name: "Crowded Bench",
		Setup:               baseSetup(exact(4), exact(3)),
		AllowedPlayerCounts: fourPlus,
	},
	52: {
		ID: 52, Name: "Dispatcher's Ledger",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookSequence, HookTimer},
		HookRules: []HookRule{
			{Kind: HookSequence, Count: 2},
			{Kind: HookTimer, DurationSeconds: 540},
		},
	},
	53: {
		ID: 53, Name: "Crimson Protocol",
		Setup:               baseSetup(exact(4), exact(2)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookRedAlert},
		HookRules:           []HookRule{{Kind: HookRedAlert}},
	},
	54: {
		ID: 54, Name: "Tight Squeeze",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(3), Yellow: exact(3), Equipment: EquipmentStandard, DetonatorMax: 4},
		AllowedPlayerCounts: allCounts,
	},
	55: {
		ID: 55, Name: "Marked Man",
		Setup:               baseSetup(exact(3), exact(3)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookXMarkedGate},
		HookRules:           []HookRule{{Kind: HookXMarkedGate}},
	},
	56: {
		ID: 56, Name: "Flood Chamber",
		Setup:               baseSetup(exact(2), exact(3)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookBunker},
		HookRules:           []HookRule{{Kind: HookBunker, Track: 4}},
	},
	57: {
		ID: 57, Name: "The Usual Suspects",
		Setup:               baseSetup(fixedPool(2.5, 6.5, 10.5), fixedPool(4.5, 8.5)),
		AllowedPlayerCounts: allCounts,
	},
	58: {
		ID: 58, Name: "Final Countdown",
		Setup:               baseSetup(exact(3), exact(3)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookTimer, HookCaptainOrder},
		HookRules: []HookRule{
			{Kind: HookTimer, DurationSeconds: 300},
			{Kind: HookCaptainOrder},
		},
	},
	59: {
		ID: 59, Name: "Recycled Air",
		Setup:               baseSetup(exact(2), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookOxygen, HookConstraint},
		HookRules: []HookRule{
			{Kind: HookOxygen, Count: 10},
			{Kind: HookConstraint},
		},
	},
	60: {
		ID: 60, Name: "Equipment Drill",
		Setup: MissionSetup{
			BlueMin: 1, BlueMax: 12,
			Red: exact(2), Yellow: exact(2),
			Equipment:     EquipmentFixed,
			EquipmentList: []EquipmentKind{EquipDoubleDetector, EquipGeneralRadar, EquipStabilizer},
		},
		AllowedPlayerCounts: allCounts,
	},
	61: {
		ID: 61, Name: "Untouchables",
		Setup:               baseSetup(exact(2), exact(4)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookColorBan},
		HookRules:           []HookRule{{Kind: HookColorBan, Color: Yellow}},
	},
	62: {
		ID: 62, Name: "Paper Trail",
		Setup:               baseSetup(outOf(2, 4), exact(2)),
		AllowedPlayerCounts: allCounts,
		Hooks:               []string{HookConstraint},
		HookRules:           []HookRule{{Kind: HookConstraint}},
	},
	63: {
		ID: 63, Name: "Smoke and Mirrors",
		Setup:               baseSetup(exact(3), exact(2)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookFalseToken, HookUpsideDown},
		HookRules:           []HookRule{{Kind: HookFalseToken}, {Kind: HookUpsideDown}},
	},
	64: {
		ID: 64, Name: "Divided Attention",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(3), Yellow: exact(2), Equipment: EquipmentStandard, StandSplit: true},
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookSequence},
		HookRules:           []HookRule{{Kind: HookSequence, Count: 2}},
	},
	65: {
		ID: 65, Name: "All or Nothing",
		Setup:               MissionSetup{BlueMin: 1, BlueMax: 12, Red: exact(4), Yellow: exact(4), Equipment: EquipmentStandard, DetonatorMax: 5},
		AllowedPlayerCounts: fourPlus,
	},
	66: {
		ID: 66, Name: "The Big One",
		Setup:               baseSetup(outOf(3, 6), outOf(2, 4)),
		AllowedPlayerCounts: threePlus,
		Hooks:               []string{HookTimer, HookSequence, HookXMarkedGate},
		HookRules: []HookRule{
			{Kind: HookTimer, DurationSeconds: 900},
			{Kind: HookSequence, Count: 2},
			{Kind: HookXMarkedGate},
		},
	},
}

// MissionInfo is the read-only catalog entry the lobby consumes.
type MissionInfo struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	AllowedPlayerCounts []int    `json:"allowedPlayerCounts"`
	Hooks               []string `json:"hooks,omitempty"`
}

// Catalog lists every mission's display metadata in id order.
func Catalog() []MissionInfo {
	infos := make([]MissionInfo, 0, len(missionRegistry))
	for _, id := range MissionIDs() {
		m := missionRegistry[id]
		infos = append(infos, MissionInfo{
			ID:                  m.ID,
			Name:                m.Name,
			AllowedPlayerCounts: append([]int(nil), m.AllowedPlayerCounts...),
			Hooks:               append([]string(nil), m.Hooks...),
		})
	}
	return infos
}
