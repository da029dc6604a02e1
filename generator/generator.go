// Package generator implements the fuzzer's mutation state machine: a
// fixed schedule of mutation classes that sweeps option encodings from
// exhaustively valid to deeply invalid, deterministically, for both
// TCP and IPv4 options.
package generator

import (
	"github.com/0xca7/snf/catalog"
	"github.com/0xca7/snf/rng"
)

// DefaultInvalidCount is the default per-invalid-phase quota. New takes
// the quota explicitly; fuzzer.NewConfig substitutes this value for a
// zero count.
const DefaultInvalidCount = 10000

// MaxBlobLen is the largest total_length a generated option blob can
// ever reach (40-byte payload + 3 bytes padding + the IPv4
// single-byte-option compensation byte), and therefore the minimum
// buffer capacity Next requires from its caller.
const MaxBlobLen = catalog.IPOLENMax + 3 + 1

// Logger receives CatalogError reports: an unreachable variable-length
// catalog entry was selected. Real callers pass the logger built by
// snflog.New;
// nil is safe and simply drops the report.
type Logger interface {
	Errorf(format string, v ...interface{})
}

// Generator is the mutation state machine described by spec.md's
// GeneratorState: a mode, a current phase, a cycle counter within that
// phase, and the PRNG feeding every mutation decision. It is not safe
// for concurrent use, matching the single-threaded orchestrator loop
// that owns it.
type Generator struct {
	mode         Mode
	phase        Phase
	cycle        uint64
	invalidCount uint64
	prng         *rng.XorShift64
	done         bool
	log          Logger
}

// New constructs a Generator for mode, with invalidCount as the quota
// for every non-Valid phase. It fails with ErrInvalidMode for any tag
// other than ModeIPOptions/ModeTCPOptions. The returned Generator owns
// its own seeded PRNG; seed must be non-zero.
func New(mode Mode, invalidCount uint64, seed uint64, log Logger) (*Generator, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	prng := rng.New()
	if err := prng.Seed(seed); err != nil {
		return nil, err
	}
	return &Generator{
		mode:         mode,
		phase:        PhaseValid,
		cycle:        0,
		invalidCount: invalidCount,
		prng:         prng,
		log:          log,
	}, nil
}

// Mode returns the generator's fuzzing mode.
func (g *Generator) Mode() Mode { return g.mode }

// Phase returns the generator's current phase.
func (g *Generator) Phase() Phase { return g.phase }

// Done reports whether the schedule has been exhausted.
func (g *Generator) Done() bool { return g.done }

// Rand returns the generator's PRNG, so a caller that needs more
// randomness drawn from the same process-global stream (the packet
// assembler's header fields) can share it instead of spinning up a
// second, independently-seeded one.
func (g *Generator) Rand() *rng.XorShift64 { return g.prng }

func (g *Generator) catalog() []catalog.Spec {
	if g.mode == ModeTCPOptions {
		return catalog.TCP
	}
	return catalog.IP
}

func (g *Generator) padByte() byte {
	if g.mode == ModeTCPOptions {
		return 0x01
	}
	return 0x00
}

// phaseQuota returns how many cycles the current phase runs for before
// advancing: the catalog length for PhaseValid, invalidCount otherwise.
func (g *Generator) phaseQuota(phase Phase) uint64 {
	if phase == PhaseValid {
		return uint64(len(g.catalog()))
	}
	return g.invalidCount
}

// Next writes the next option blob into buf (which must have length
// at least MaxBlobLen — the caller's buffer discipline is a
// precondition, not validated here, per spec.md) and returns the
// number of bytes written. done first becomes true on the call on
// which the schedule is exhausted; buf is untouched on that call, and
// every subsequent call also returns done=true.
func (g *Generator) Next(buf []byte) (n int, done bool, err error) {
	if g.done {
		return 0, true, nil
	}

	for g.cycle >= g.phaseQuota(g.phase) {
		g.cycle = 0
		g.phase++
		if g.phase == g.mode.donePhase() {
			g.done = true
			return 0, true, nil
		}
	}

	if g.phase == PhaseValid {
		n = g.nextValid(buf)
	} else {
		sched := g.mode.schedule()
		idx := int(g.phase) - 1
		if idx < 0 || idx >= len(sched) {
			return 0, false, ErrFatalStateCorruption
		}
		n = g.nextRandomized(buf, sched[idx])
	}

	g.cycle++
	return n, false, nil
}

// fillPayload writes length pseudo-random bytes into buf starting at
// offset 2 (after the kind/type and length bytes).
func (g *Generator) fillPayload(buf []byte, length int) {
	for i := 0; i < length; i++ {
		buf[2+i] = g.prng.NextByte()
	}
}

// pad writes padding bytes starting at absolute offset length (so they
// overwrite the tail of a payload that began at buf[2]) until length
// plus padding is a multiple of 4, and returns that padded total.
func pad(length int, padByte byte, buf []byte) int {
	padLen := (4 - (length % 4)) % 4
	for i := 0; i < padLen; i++ {
		buf[length+i] = padByte
	}
	return length + padLen
}
