package generator

// Phase identifies one mutation class in a mode's ordered schedule.
// Phase values are only meaningful relative to the Generator that
// produced them; the two modes use different schedules (both six
// randomized phases long, with different names and orders).
type Phase int

// lengthOption selects how a randomized phase treats the option's
// length byte after the payload and padding have been written.
type lengthOption int

const (
	lengthValid lengthOption = iota
	lengthZero
	lengthInvalid
)

// phaseSpec parameterizes one randomized mutation phase: whether the
// kind/type byte is drawn uniformly at random (true) or sampled from a
// valid catalog entry (false), and how the length byte is mutated.
type phaseSpec struct {
	name          string
	randomizeKind bool
	length        lengthOption
}

// tcpSchedule is the six randomized TCP phases, in declaration order.
// Phase 0 (the catalog sweep) precedes this schedule; Done follows it.
var tcpSchedule = []phaseSpec{
	{"ValidKind_ValidLength", false, lengthValid},
	{"InvalidKind_ValidLength", true, lengthValid},
	{"ValidKind_InvalidLength", false, lengthInvalid},
	{"InvalidKind_InvalidLength", true, lengthInvalid},
	{"ValidKind_ZeroLength", false, lengthZero},
	{"InvalidKind_ZeroLength", true, lengthZero},
}

// ipSchedule is the six randomized IPv4 phases, in declaration order.
// Note the random-type group's internal order (Valid, Zero, Invalid)
// differs from the catalog-type group's (Valid, Invalid, Zero) — this
// matches the schedule spelled out for IPv4 fuzzing and is load-bearing
// for which phase a given cycle count lands in.
var ipSchedule = []phaseSpec{
	{"Invalid_ValidLength", false, lengthValid},
	{"Invalid_InvalidLength", false, lengthInvalid},
	{"Invalid_ZeroLength", false, lengthZero},
	{"InvalidRandomType_ValidLength", true, lengthValid},
	{"InvalidRandomType_ZeroLength", true, lengthZero},
	{"InvalidRandomType_InvalidLength", true, lengthInvalid},
}

// PhaseValid is the initial catalog-sweep phase, common to both modes.
const PhaseValid Phase = 0

// schedule returns the mode's randomized-phase table.
func (m Mode) schedule() []phaseSpec {
	if m == ModeTCPOptions {
		return tcpSchedule
	}
	return ipSchedule
}

// donePhase returns the Phase value meaning "schedule exhausted" for m.
func (m Mode) donePhase() Phase {
	return Phase(len(m.schedule()) + 1)
}

// PhaseName returns a human-readable name for phase under mode m,
// used for the orchestrator's phase-entry banner.
func (m Mode) PhaseName(phase Phase) string {
	if phase == PhaseValid {
		return "Valid"
	}
	if phase == m.donePhase() {
		return "Done"
	}
	idx := int(phase) - 1
	sched := m.schedule()
	if idx < 0 || idx >= len(sched) {
		return "Unknown"
	}
	return sched[idx].name
}
