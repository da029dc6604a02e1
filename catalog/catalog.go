// Package catalog holds the compile-time-constant tables of legitimate
// TCP and IPv4 options: their kind/type byte and their length rules.
// The generator package walks these tables during its Valid phase and
// samples from them during randomized phases.
package catalog

// Spec describes one option's encoding rule: its kind (TCP) or type
// (IPv4) byte, and the minimum/maximum length of its value field.
// MaxLen == 0 means the option has a fixed length (MinLen).
type Spec struct {
	Kind   uint8
	MinLen uint8
	MaxLen uint8
}

// Fixed reports whether this option has a single valid length.
func (s Spec) Fixed() bool {
	return s.MaxLen == 0
}

// IPOLENMax is the RFC-mandated maximum length of an IPv4 option,
// used to size the generator's option buffer (generator.MaxBlobLen).
const IPOLENMax = 40

// TCP is the catalog of legitimate TCP options, in declaration order.
// The Valid generator phase walks this table index by index, so the
// order here is load-bearing: it is the order packets are emitted in.
var TCP = []Spec{
	{Kind: 0, MinLen: 1, MaxLen: 0},   // EOL
	{Kind: 1, MinLen: 1, MaxLen: 0},   // NOP
	{Kind: 2, MinLen: 4, MaxLen: 0},   // MSS
	{Kind: 3, MinLen: 3, MaxLen: 0},   // WScale
	{Kind: 4, MinLen: 2, MaxLen: 0},   // SackPerm
	{Kind: 5, MinLen: 10, MaxLen: 40}, // Sack
	{Kind: 8, MinLen: 10, MaxLen: 0},  // Timestamps
	{Kind: 18, MinLen: 3, MaxLen: 0},  // TrailerChksum
	{Kind: 27, MinLen: 8, MaxLen: 0},  // QuickStart
	{Kind: 28, MinLen: 4, MaxLen: 0},  // UserTimeout
	{Kind: 29, MinLen: 4, MaxLen: 0},  // Auth
	{Kind: 30, MinLen: 4, MaxLen: 0},  // Multipath
	{Kind: 34, MinLen: 4, MaxLen: 16}, // FastOpen
	{Kind: 69, MinLen: 1, MaxLen: 40}, // EncNeg
}

// Kind constants for the TCP catalog entries that the generator's
// mutation rules special-case.
const (
	TCPKindSack     = 5
	TCPKindFastOpen = 34
	TCPKindEncNeg   = 69
)

// IP is the catalog of legitimate IPv4 options, in declaration order.
var IP = []Spec{
	{Kind: 0, MinLen: 1, MaxLen: 0},   // EOOL
	{Kind: 1, MinLen: 1, MaxLen: 0},   // NOP
	{Kind: 130, MinLen: 11, MaxLen: 0}, // SEC
	{Kind: 131, MinLen: 3, MaxLen: 40}, // LSR
	{Kind: 68, MinLen: 4, MaxLen: 40},  // TS
	{Kind: 133, MinLen: 3, MaxLen: 40}, // ESEC
	{Kind: 134, MinLen: 6, MaxLen: 40}, // CIPSO
	{Kind: 7, MinLen: 3, MaxLen: 40},  // RR
	{Kind: 137, MinLen: 3, MaxLen: 40}, // SSR
	{Kind: 11, MinLen: 4, MaxLen: 0},  // MTUP
	{Kind: 12, MinLen: 4, MaxLen: 0},  // MTUR
	{Kind: 148, MinLen: 4, MaxLen: 0},  // RTRALT
	{Kind: 25, MinLen: 8, MaxLen: 0},  // QS
}

// SingleByteOptionLen is the MinLen that identifies the single-byte
// options (EOOL, NOP) whose
// generic "type + length + payload" framing the IPv4 mutation rules
// must compensate for (see spec.md §4.2's "MUST increment total_len by
// one" rule).
const SingleByteOptionLen = 1
