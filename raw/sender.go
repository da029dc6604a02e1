// Package raw implements the IP_HDRINCL raw-socket sender the
// orchestrator uses to put assembled packets on the wire, with
// inter-send pacing so a tight fuzzing loop cannot flood the local
// stack.
package raw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/time/rate"
)

// pacingInterval is the minimum spacing between two sends, matching
// spec.md §4.4/§4.5's 50µs sleep after each successful send.
const pacingInterval = 50 * time.Microsecond

// ErrInvalidProtocol is returned by NewSender for any protocol value
// outside spec.md §4.4's enum ({TCP, RAW, UDP, ICMP}). The kernel
// would happily open a raw socket for plenty of other protocol
// numbers (IGMP, ICMPv6, ...); this implementation holds the line at
// the four the spec names rather than deferring to whatever the
// kernel accepts.
var ErrInvalidProtocol = errors.New("raw: invalid protocol")

// validProtocols is spec.md §4.4's sender_init enum, expressed in the
// protocol numbers unix.Socket expects.
var validProtocols = map[int]bool{
	unix.IPPROTO_TCP:  true,
	unix.IPPROTO_RAW:  true,
	unix.IPPROTO_UDP:  true,
	unix.IPPROTO_ICMP: true,
}

// Sender owns one AF_INET/SOCK_RAW socket with IP_HDRINCL set, so
// callers hand it byte-exact IPv4 datagrams (header included) rather
// than a payload the kernel would frame itself.
type Sender struct {
	fd      int
	limiter *rate.Limiter
}

// NewSender opens a raw socket for protocol (one of unix.IPPROTO_TCP,
// unix.IPPROTO_RAW, unix.IPPROTO_UDP, unix.IPPROTO_ICMP) and sets
// IP_HDRINCL=1, matching spec.md §4.4's init sequence. Any other
// protocol value is rejected with ErrInvalidProtocol before the
// socket() call is attempted.
func NewSender(protocol int) (*Sender, error) {
	if !validProtocols[protocol] {
		return nil, ErrInvalidProtocol
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_RAW, protocol)
	if err != nil {
		return nil, fmt.Errorf("raw: socket: %w", err)
	}

	if err := unix.SetsockoptInt(fd, unix.IPPROTO_IP, unix.IP_HDRINCL, 1); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("raw: setsockopt IP_HDRINCL: %w", err)
	}

	return &Sender{
		fd:      fd,
		limiter: rate.NewLimiter(rate.Every(pacingInterval), 1),
	}, nil
}

// Send blocks until the pacing limiter admits the send, then writes
// pkt (a complete, byte-exact IPv4 datagram) to dst over the raw
// socket. The destination port is always 0: IP_HDRINCL sockets route
// on the IPv4 header's own addressing, not the sockaddr's port.
func (s *Sender) Send(pkt []byte, dst [4]byte) error {
	if err := s.limiter.Wait(context.Background()); err != nil {
		return fmt.Errorf("raw: pacing: %w", err)
	}

	addr := unix.SockaddrInet4{
		Port: 0,
		Addr: dst,
	}
	if err := unix.Sendto(s.fd, pkt, 0, &addr); err != nil {
		return fmt.Errorf("raw: sendto: %w", err)
	}
	return nil
}

// Close releases the underlying socket.
func (s *Sender) Close() error {
	return unix.Close(s.fd)
}
