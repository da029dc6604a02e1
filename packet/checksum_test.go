package packet

import "testing"

// TestChecksumValidationVector is the exact vector from spec.md's
// checksum algorithm section: an 18-byte IPv4 header fragment whose
// Internet checksum is the well-known 0xb861.
func TestChecksumValidationVector(t *testing.T) {
	in := []byte{
		0x45, 0x00, 0x00, 0x73, 0x00, 0x00, 0x40, 0x00,
		0x40, 0x11, 0xc0, 0xa8, 0x00, 0x01, 0xc0, 0xa8,
		0x00, 0xc7,
	}
	if got := checksumFinal(in); got != 0xb861 {
		t.Errorf("checksumFinal = %#04x, want 0xb861", got)
	}
}

func TestChecksumOddLength(t *testing.T) {
	// A single trailing byte must be added as-is, as the low half of a word.
	in := []byte{0xff}
	got := checksumFinal(in)
	want := ^uint16(0x00ff)
	if got != want {
		t.Errorf("checksumFinal(odd) = %#04x, want %#04x", got, want)
	}
}

func TestChecksumCarryFold(t *testing.T) {
	// Two words that overflow 16 bits must carry back in.
	in := []byte{0xff, 0xff, 0x00, 0x01}
	got := checksumFinal(in)
	// 0xffff + 0x0001 = 0x10000 -> folds to 0x0001 -> complement 0xfffe.
	if got != 0xfffe {
		t.Errorf("checksumFinal(carry) = %#04x, want 0xfffe", got)
	}
}
