package generator

import "github.com/0xca7/snf/catalog"

// nextRandomized implements the six randomized mutation phases shared
// by both modes: pick a kind/type byte (random or catalog-sampled),
// sample a length, fill the payload, pad, and finally override the
// emitted length byte per the phase's length policy. The override
// happens after total_len has already been computed from the
// pre-override length, so total_len always reflects what was actually
// written and padded, never the overridden value (see spec.md's
// ZeroLength/Invalid-length semantics).
func (g *Generator) nextRandomized(buf []byte, spec phaseSpec) int {
	var catalogEntry *catalog.Spec
	if spec.randomizeKind {
		buf[0] = g.prng.NextByte()
	} else {
		entries := g.catalog()
		idx := g.prng.Intn(len(entries))
		catalogEntry = &entries[idx]
		buf[0] = catalogEntry.Kind
	}

	length := g.prng.Intn(40) + 1
	buf[1] = byte(length)
	g.fillPayload(buf, length)

	effLen := length
	if g.mode == ModeIPOptions && catalogEntry != nil && catalogEntry.MinLen == catalog.SingleByteOptionLen {
		effLen++
	}
	total := pad(effLen, g.padByte(), buf)

	switch spec.length {
	case lengthZero:
		buf[1] = 0
	case lengthInvalid:
		buf[1] = byte(g.prng.Intn(40) + 1)
	case lengthValid:
		// leave buf[1] as sampled
	}

	return total
}
