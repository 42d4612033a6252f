package game

import (
	"errors"
	"fmt"
	"sort"
)

// PoolKind enumerates the ways a mission describes its red or yellow wire
// pool.
type PoolKind int

const (
	PoolNone PoolKind = iota
	PoolExact
	PoolOutOf
	PoolFixed
	PoolExactSameValue
)

func (k PoolKind) String() string {
	switch k {
	case PoolNone:
		return "none"
	case PoolExact:
		return "exact"
	case PoolOutOf:
		return "outOf"
	case PoolFixed:
		return "fixed"
	case PoolExactSameValue:
		return "exactSameValue"
	default:
		return "unknown"
	}
}

// WirePoolSpec declares how many special wires of which sort values a
// mission puts in play.
//
//   - PoolNone: no wires of the color.
//   - PoolExact: Keep values drawn without replacement from Candidates.
//   - PoolOutOf: Draw candidates selected at random, Keep of those kept; the
//     remainder leave the session entirely.
//   - PoolFixed: exactly the Fixed sort values, no randomness.
//   - PoolExactSameValue: Keep tiles all sharing one randomly chosen value.
//
// An empty Candidates slice means the color's full fractional range.
type WirePoolSpec struct {
	Kind       PoolKind
	Keep       int
	Draw       int
	Candidates []float64
	Fixed      []float64
}

// EquipmentMode selects which equipment cards a mission plays with.
type EquipmentMode int

const (
	EquipmentNone EquipmentMode = iota
	EquipmentStandard
	EquipmentFixed
)

// MissionSetup is the base wire and board configuration for a mission.
type MissionSetup struct {
	BlueMin       int
	BlueMax       int
	Red           WirePoolSpec
	Yellow        WirePoolSpec
	Equipment     EquipmentMode
	EquipmentList []EquipmentKind
	StandSplit    bool
	DetonatorMax  int
}

// SetupOverride patches the base setup for a specific player count. Nil
// fields leave the base value untouched.
type SetupOverride struct {
	BlueMax      *int
	Red          *WirePoolSpec
	Yellow       *WirePoolSpec
	DetonatorMax *int
	StandSplit   *bool
}

// Hook kind tags. These are the dispatch keys for the hook interpreter; the
// schema's Hooks list is purely documentary.
const (
	HookTimer        = "timer"
	HookSequence     = "sequence_priority"
	HookOxygen       = "oxygen_progression"
	HookNano         = "nano_progression"
	HookBunker       = "bunker_flow"
	HookConstraint   = "constraint_enforcement"
	HookUpsideDown   = "upside_down_wire"
	HookRedAlert     = "red_alert"
	HookColorBan     = "color_ban"
	HookXMarkedGate  = "x_marked_gate"
	HookFalseToken   = "false_token"
	HookCaptainOrder = "captain_order"
)

// HookRule carries the typed parameters for one behavior hook. Which fields
// are meaningful depends on Kind.
type HookRule struct {
	Kind              string
	DurationSeconds   int
	DurationByPlayers map[int]int
	Values            []int
	Count             int
	Color             WireColor
	Track             int
}

// MissionRuleSchema is the full declarative rule-set for one mission.
type MissionRuleSchema struct {
	ID                  int
	Name                string
	Setup               MissionSetup
	Overrides           map[int]SetupOverride
	AllowedPlayerCounts []int
	Hooks               []string
	HookRules           []HookRule
}

// ErrUnknownMission indicates a lookup for an unregistered mission id. This
// is a programming error on the caller's side, never user input.
var ErrUnknownMission = errors.New("unknown mission id")

// MissionByID returns the schema for a mission id.
func MissionByID(id int) (*MissionRuleSchema, error) {
	schema, ok := missionRegistry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMission, id)
	}
	return &schema, nil
}

// MissionIDs returns every registered mission id in ascending order.
func MissionIDs() []int {
	ids := make([]int, 0, len(missionRegistry))
	for id := range missionRegistry {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SetupFor resolves the concrete setup for a player count by patching the
// per-count override onto the base setup.
func (m *MissionRuleSchema) SetupFor(playerCount int) MissionSetup {
	setup := m.Setup
	ov, ok := m.Overrides[playerCount]
	if !ok {
		return setup
	}
	if ov.BlueMax != nil {
		setup.BlueMax = *ov.BlueMax
	}
	if ov.Red != nil {
		setup.Red = *ov.Red
	}
	if ov.Yellow != nil {
		setup.Yellow = *ov.Yellow
	}
	if ov.DetonatorMax != nil {
		setup.DetonatorMax = *ov.DetonatorMax
	}
	if ov.StandSplit != nil {
		setup.StandSplit = *ov.StandSplit
	}
	return setup
}

// AllowsPlayerCount reports whether the mission supports the table size.
func (m *MissionRuleSchema) AllowsPlayerCount(n int) bool {
	for _, c := range m.AllowedPlayerCounts {
		if c == n {
			return true
		}
	}
	return false
}

// HookRule returns the rule for a hook kind, or nil when the mission does
// not carry it.
func (m *MissionRuleSchema) HookRule(kind string) *HookRule {
	for i := range m.HookRules {
		if m.HookRules[i].Kind == kind {
			return &m.HookRules[i]
		}
	}
	return nil
}

// HasHook reports whether the mission carries the hook kind.
func (m *MissionRuleSchema) HasHook(kind string) bool {
	return m.HookRule(kind) != nil
}

// Validate checks the schema for authoring defects. Registry contents are
// validated by tests; a failure here is a bug in the catalog, not a runtime
// condition.
func (m *MissionRuleSchema) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("mission %d: non-positive id", m.ID)
	}
	if m.Name == "" {
		return fmt.Errorf("mission %d: missing name", m.ID)
	}
	if len(m.AllowedPlayerCounts) == 0 {
		return fmt.Errorf("mission %d: no allowed player counts", m.ID)
	}
	counts := append([]int{0}, m.AllowedPlayerCounts...)
	for _, n := range counts {
		setup := m.Setup
		if n > 0 {
			setup = m.SetupFor(n)
		}
		if setup.BlueMin < BlueValueMin || setup.BlueMax > BlueValueMax || setup.BlueMin > setup.BlueMax {
			return fmt.Errorf("mission %d: bad blue range %d-%d", m.ID, setup.BlueMin, setup.BlueMax)
		}
		if err := validatePool(setup.Red, Red); err != nil {
			return fmt.Errorf("mission %d: red pool: %w", m.ID, err)
		}
		if err := validatePool(setup.Yellow, Yellow); err != nil {
			return fmt.Errorf("mission %d: yellow pool: %w", m.ID, err)
		}
	}
	for _, rule := range m.HookRules {
		if rule.Kind == "" {
			return fmt.Errorf("mission %d: hook rule missing kind", m.ID)
		}
	}
	return nil
}

func validatePool(spec WirePoolSpec, color WireColor) error {
	candidates := spec.Candidates
	if len(candidates) == 0 {
		candidates = DefaultCandidates(color)
	}
	switch spec.Kind {
	case PoolNone:
		return nil
	case PoolExact:
		if spec.Keep <= 0 || spec.Keep > len(candidates) {
			return fmt.Errorf("exact keep %d exceeds %d candidates", spec.Keep, len(candidates))
		}
	case PoolOutOf:
		if spec.Keep <= 0 || spec.Draw < spec.Keep || spec.Draw > len(candidates) {
			return fmt.Errorf("outOf keep %d draw %d against %d candidates", spec.Keep, spec.Draw, len(candidates))
		}
	case PoolFixed:
		if len(spec.Fixed) == 0 {
			return errors.New("fixed pool with no values")
		}
	case PoolExactSameValue:
		if spec.Keep <= 0 || len(candidates) == 0 {
			return fmt.Errorf("exactSameValue keep %d against %d candidates", spec.Keep, len(candidates))
		}
	default:
		return fmt.Errorf("unknown pool kind %d", spec.Kind)
	}
	return nil
}

// DefaultCandidates is the full fractional sort-value domain for a special
// wire color: the half positions between consecutive blue numbers.
func DefaultCandidates(color WireColor) []float64 {
	vals := make([]float64, 0, BlueValueMax-BlueValueMin)
	for v := BlueValueMin; v < BlueValueMax; v++ {
		vals = append(vals, float64(v)+0.5)
	}
	return vals
}
