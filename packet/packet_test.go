package packet

import "testing"

// fixedRand is a RandSource that always returns the same value, for
// tests that only care about packet framing, not randomized fields.
type fixedRand uint64

func (f fixedRand) Next() uint64 { return uint64(f) }

var (
	loopback = [4]byte{127, 0, 0, 1}
)

// Property #9: a 4-byte TCP options blob makes build_tcp produce 44
// bytes (20 IPv4 + 20 TCP + 4 options).
func TestBuildTCPLength(t *testing.T) {
	out := make([]byte, MaxPacketLen)
	opts := []byte{0x02, 0x04, 0xDE, 0xAD}
	n, err := BuildTCP(out, fixedRand(1), opts, loopback, loopback, 5555)
	if err != nil {
		t.Fatalf("BuildTCP: %v", err)
	}
	if n != 44 {
		t.Fatalf("BuildTCP length = %d, want 44", n)
	}
}

// Property #9: a 4-byte IP options blob makes build_ip produce 44
// bytes (20 IPv4 + 4 IP options + 20 TCP).
func TestBuildIPLength(t *testing.T) {
	out := make([]byte, MaxPacketLen)
	opts := []byte{0x01, 0x01, 0x01, 0x00}
	n, err := BuildIP(out, fixedRand(1), opts, loopback, loopback, 5555)
	if err != nil {
		t.Fatalf("BuildIP: %v", err)
	}
	if n != 44 {
		t.Fatalf("BuildIP length = %d, want 44", n)
	}
}

// E6: loopback src/dst, port 5555, TCP options 02 04 DE AD -> 44
// bytes, IPv4 protocol byte (offset 9) is TCP, and the TCP data
// offset nibble (high nibble of byte 12 of the TCP header) is 6
// (20-byte header + 4 bytes of options = 24 bytes = 6 words).
func TestBuildTCPScenarioE6(t *testing.T) {
	out := make([]byte, MaxPacketLen)
	opts := []byte{0x02, 0x04, 0xDE, 0xAD}
	n, err := BuildTCP(out, fixedRand(1), opts, loopback, loopback, 5555)
	if err != nil {
		t.Fatalf("BuildTCP: %v", err)
	}
	if n != 44 {
		t.Fatalf("length = %d, want 44", n)
	}
	if out[9] != ipv4ProtoTCP {
		t.Errorf("protocol byte = %d, want %d (TCP)", out[9], ipv4ProtoTCP)
	}
	dataOffsetNibble := out[ipv4HeaderLen+12] >> 4
	if dataOffsetNibble != 6 {
		t.Errorf("data offset nibble = %d, want 6", dataOffsetNibble)
	}
}

func TestBuildTCPRejectsUnalignedOptions(t *testing.T) {
	out := make([]byte, MaxPacketLen)
	opts := []byte{0x01, 0x02, 0x03}
	if _, err := BuildTCP(out, fixedRand(1), opts, loopback, loopback, 80); err != ErrOptionsNotAligned {
		t.Errorf("err = %v, want ErrOptionsNotAligned", err)
	}
}

func TestBuildIPRejectsTooSmallBuffer(t *testing.T) {
	out := make([]byte, 10)
	opts := []byte{0x00, 0x00, 0x00, 0x00}
	if _, err := BuildIP(out, fixedRand(1), opts, loopback, loopback, 80); err != ErrBufferTooSmall {
		t.Errorf("err = %v, want ErrBufferTooSmall", err)
	}
}

func TestBuildIPOptionsPlacedInIPHeader(t *testing.T) {
	out := make([]byte, MaxPacketLen)
	opts := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	n, err := BuildIP(out, fixedRand(1), opts, loopback, loopback, 80)
	if err != nil {
		t.Fatalf("BuildIP: %v", err)
	}
	if n != 44 {
		t.Fatalf("length = %d, want 44", n)
	}
	ihl := out[0] & 0x0f
	if ihl != 6 {
		t.Errorf("IHL = %d, want 6 (24 bytes / 4)", ihl)
	}
	got := out[ipv4HeaderLen : ipv4HeaderLen+4]
	for i, want := range opts {
		if got[i] != want {
			t.Errorf("IP options[%d] = %#x, want %#x", i, got[i], want)
		}
	}
	// TCP segment starts right after the IP options and carries no
	// TCP options of its own.
	tcpOff := ipv4HeaderLen + len(opts)
	if tcpOff+tcpHeaderLen != n {
		t.Errorf("tcp segment does not end at total_len: tcpOff=%d n=%d", tcpOff, n)
	}
}
