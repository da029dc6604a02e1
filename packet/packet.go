package packet

import (
	"encoding/binary"
	"errors"
)

// ErrBufferTooSmall is returned when the caller's output buffer is
// smaller than the packet being assembled.
var ErrBufferTooSmall = errors.New("packet: output buffer too small")

// ErrOptionsNotAligned is returned when an option blob's length is
// not a multiple of 4; the generator guarantees this, so seeing this
// error means a caller bypassed it.
var ErrOptionsNotAligned = errors.New("packet: options length not a multiple of 4")

const (
	ipv4HeaderLen = 20
	tcpHeaderLen  = 20

	ipv4ProtoTCP = 6

	tcpFlagSYN  = 0x02
	tcpWindow   = 5840
	ipv4TTL     = 255
	ipv4Version = 4

	// MaxOptionsLen is the largest option blob either assembler can
	// receive: the generator's worst case is a 40-byte payload plus up
	// to 3 bytes of padding plus the IPv4 single-byte-option
	// compensation byte (see generator.MaxBlobLen), already padded to
	// a multiple of 4.
	MaxOptionsLen = 44

	// MaxPacketLen is the largest packet either BuildTCP or BuildIP
	// can produce: a fixed 20-byte IPv4 header, a fixed 20-byte TCP
	// header, and up to MaxOptionsLen bytes of options on one side
	// or the other.
	MaxPacketLen = ipv4HeaderLen + tcpHeaderLen + MaxOptionsLen
)

// RandSource is the single-method randomness contract the assembler
// needs for the header fields spec.md draws from the PRNG (IPv4 id,
// TCP source port, TCP sequence number). *rng.XorShift64 satisfies
// this directly.
type RandSource interface {
	Next() uint64
}

// BuildTCP assembles a byte-exact IPv4 datagram carrying a TCP segment
// whose options are the fuzzed blob opts (length a multiple of 4). It
// writes total_len bytes into out and returns total_len.
func BuildTCP(out []byte, rnd RandSource, opts []byte, src, dst [4]byte, dport uint16) (int, error) {
	if len(opts)%4 != 0 {
		return 0, ErrOptionsNotAligned
	}

	totalLen := ipv4HeaderLen + tcpHeaderLen + len(opts)
	if len(out) < totalLen {
		return 0, ErrBufferTooSmall
	}

	writeIPv4Header(out, src, dst, ipv4HeaderLen, tcpHeaderLen+len(opts), rnd)

	tcpOff := ipv4HeaderLen
	dataOffsetWords := (tcpHeaderLen + len(opts)) / 4
	writeTCPHeader(out[tcpOff:], dport, dataOffsetWords, rnd)
	copy(out[tcpOff+tcpHeaderLen:totalLen], opts)

	writeTCPChecksum(out, src, dst, tcpOff, tcpHeaderLen+len(opts))
	writeIPv4Checksum(out)

	return totalLen, nil
}

// BuildIP assembles a byte-exact IPv4 datagram carrying the fuzzed
// option blob opts inside the IPv4 header's own option area, followed
// by a plain (option-free) TCP header.
func BuildIP(out []byte, rnd RandSource, opts []byte, src, dst [4]byte, dport uint16) (int, error) {
	if len(opts)%4 != 0 {
		return 0, ErrOptionsNotAligned
	}

	ihlLen := ipv4HeaderLen + len(opts)
	totalLen := ihlLen + tcpHeaderLen
	if len(out) < totalLen {
		return 0, ErrBufferTooSmall
	}

	writeIPv4Header(out, src, dst, ihlLen, tcpHeaderLen, rnd)
	copy(out[ipv4HeaderLen:ihlLen], opts)

	tcpOff := ihlLen
	writeTCPHeader(out[tcpOff:], dport, tcpHeaderLen/4, rnd)

	writeTCPChecksum(out, src, dst, tcpOff, tcpHeaderLen)
	writeIPv4Checksum(out)

	return totalLen, nil
}

// writeIPv4Header writes the fixed 20-byte IPv4 header at out[0:20].
// ihlLen is the full IPv4 header length including any IP options
// (which the caller copies into out[20:ihlLen]); tcpSegLen is the length of the TCP
// header+options that follows, used only to compute tot_len. The
// checksum field is left zero; call writeIPv4Checksum afterward.
func writeIPv4Header(out []byte, src, dst [4]byte, ihlLen, tcpSegLen int, rnd RandSource) {
	ihl := ihlLen / 4
	out[0] = byte(ipv4Version<<4) | byte(ihl)
	out[1] = 0 // TOS/DSCP/ECN not populated

	totalLen := ihlLen + tcpSegLen
	binary.BigEndian.PutUint16(out[2:4], uint16(totalLen))

	id := uint16(rnd.Next()&0xffff) + 1
	// id is written in the host-native order the original iphdr
	// struct assignment produces (no htons), not network order.
	binary.LittleEndian.PutUint16(out[4:6], id)

	out[6] = 0 // flags
	out[7] = 0 // fragment offset

	out[8] = ipv4TTL
	out[9] = ipv4ProtoTCP

	out[10] = 0 // checksum, filled by writeIPv4Checksum
	out[11] = 0

	copy(out[12:16], src[:])
	copy(out[16:20], dst[:])
}

// writeIPv4Checksum computes the checksum over only the fixed 20-byte
// IPv4 header (options excluded), per spec.md §9's explicit design
// decision, and writes it into out[10:12].
func writeIPv4Checksum(out []byte) {
	out[10] = 0
	out[11] = 0
	sum := checksumFinal(out[:ipv4HeaderLen])
	binary.BigEndian.PutUint16(out[10:12], sum)
}

// writeTCPHeader writes the 20-byte fixed TCP header at the start of
// seg. dataOffsetWords is the data-offset field value (header+options
// length in 32-bit words). The checksum field is left zero.
func writeTCPHeader(seg []byte, dport uint16, dataOffsetWords int, rnd RandSource) {
	srcPort := uint16(rnd.Next()&0xffff) + 1
	binary.BigEndian.PutUint16(seg[0:2], srcPort)
	binary.BigEndian.PutUint16(seg[2:4], dport)

	seq := uint32(rnd.Next()&0xffff) + 1
	binary.BigEndian.PutUint32(seg[4:8], seq)
	binary.BigEndian.PutUint32(seg[8:12], 0) // ack

	seg[12] = byte(dataOffsetWords << 4)
	seg[13] = tcpFlagSYN
	binary.BigEndian.PutUint16(seg[14:16], tcpWindow)

	seg[16] = 0 // checksum, filled by writeTCPChecksum
	seg[17] = 0
	binary.BigEndian.PutUint16(seg[18:20], 0) // urgent pointer
}

// writeTCPChecksum computes the TCP checksum over the pseudo-header
// (src, dst, zero, IPPROTO_TCP, segment length) followed by the TCP
// segment (header + any TCP options), and writes it into the TCP
// header's checksum field at out[tcpOff+16 : tcpOff+18].
func writeTCPChecksum(out []byte, src, dst [4]byte, tcpOff, segLen int) {
	out[tcpOff+16] = 0
	out[tcpOff+17] = 0

	scratch := make([]byte, 12+segLen)
	copy(scratch[0:4], src[:])
	copy(scratch[4:8], dst[:])
	scratch[8] = 0
	scratch[9] = ipv4ProtoTCP
	binary.BigEndian.PutUint16(scratch[10:12], uint16(segLen))
	copy(scratch[12:], out[tcpOff:tcpOff+segLen])

	sum := checksumFinal(scratch)
	binary.BigEndian.PutUint16(out[tcpOff+16:tcpOff+18], sum)
}
