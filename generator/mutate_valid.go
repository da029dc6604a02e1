package generator

import "github.com/0xca7/snf/catalog"

// nextValid implements the exhaustive catalog sweep: one packet per
// catalog entry, in declaration order. g.cycle is the catalog index.
func (g *Generator) nextValid(buf []byte) int {
	if g.mode == ModeTCPOptions {
		return g.validTCP(buf)
	}
	return g.validIP(buf)
}

func (g *Generator) validTCP(buf []byte) int {
	spec := catalog.TCP[g.cycle]
	buf[0] = spec.Kind

	var length int
	switch {
	case spec.Fixed():
		length = int(spec.MinLen)
	case spec.Kind == catalog.TCPKindSack:
		length = 10 * (g.prng.Intn(4) + 1)
	case spec.Kind == catalog.TCPKindFastOpen, spec.Kind == catalog.TCPKindEncNeg:
		length = g.prng.Intn(int(spec.MaxLen-spec.MinLen)+1) + int(spec.MinLen)
	default:
		length = 0
		if g.log != nil {
			g.log.Errorf("generator: catalog error, no variable-length rule for TCP kind %d", spec.Kind)
		}
	}

	buf[1] = byte(length)
	g.fillPayload(buf, length)
	return pad(length, g.padByte(), buf)
}

func (g *Generator) validIP(buf []byte) int {
	spec := catalog.IP[g.cycle]
	buf[0] = spec.Kind

	var length int
	if spec.Fixed() {
		length = int(spec.MinLen)
	} else {
		length = g.prng.Intn(int(spec.MaxLen-spec.MinLen)+1) + int(spec.MinLen)
	}

	buf[1] = byte(length)
	g.fillPayload(buf, length)

	effLen := length
	if spec.MinLen == catalog.SingleByteOptionLen {
		effLen++
	}
	return pad(effLen, g.padByte(), buf)
}
