// Package iface resolves a network interface name to the IPv4
// address it is configured with, the source address the raw sender
// binds from.
package iface

import (
	"errors"
	"fmt"
	"net"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ErrNoIPv4Address is returned when SIOCGIFADDR succeeds but reports
// the all-zero address 0.0.0.0.
var ErrNoIPv4Address = errors.New("iface: interface has no IPv4 address")

const ifreqSize = unix.IFNAMSIZ + 16

// LookupIPv4 returns the IPv4 address configured on ifname, in
// dotted-quad form. It opens a throwaway UDP socket and issues
// SIOCGIFADDR, mirroring util_get_nic_ip's ioctl-based lookup: a
// nonexistent interface surfaces the kernel's ENODEV/ENXIO as a
// wrapped error, not a bespoke sentinel.
func LookupIPv4(ifname string) (string, error) {
	if len(ifname) >= unix.IFNAMSIZ {
		return "", fmt.Errorf("iface: interface name %q too long", ifname)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return "", fmt.Errorf("iface: socket: %w", err)
	}
	defer unix.Close(fd)

	var ifr [ifreqSize]byte
	copy(ifr[:unix.IFNAMSIZ], ifname)

	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		uintptr(fd),
		uintptr(unix.SIOCGIFADDR),
		uintptr(unsafe.Pointer(&ifr[0])),
	)
	if errno != 0 {
		return "", fmt.Errorf("iface: ioctl SIOCGIFADDR on %q: %w", ifname, errno)
	}

	// ifr_addr is a struct sockaddr starting right after ifr_name:
	// 2 bytes family, 2 bytes port (unused here), 4 bytes IPv4 addr.
	addrOff := unix.IFNAMSIZ + 4
	ip := net.IPv4(ifr[addrOff], ifr[addrOff+1], ifr[addrOff+2], ifr[addrOff+3])
	if ip.Equal(net.IPv4zero) {
		return "", ErrNoIPv4Address
	}
	return ip.String(), nil
}
