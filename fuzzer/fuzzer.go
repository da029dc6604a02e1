// Package fuzzer implements the Orchestrator: the seven-step sequence
// that validates a run, wires the generator to the packet assembler
// and the raw sender, and drives the pump loop until the generator's
// schedule is exhausted or a send fails.
package fuzzer

import (
	"errors"
	"fmt"
	"net"

	"github.com/0xca7/snf/generator"
	"github.com/0xca7/snf/iface"
	"github.com/0xca7/snf/packet"
	"github.com/0xca7/snf/raw"
	"github.com/0xca7/snf/rng"
	"golang.org/x/sys/unix"
)

// Logger is the subset of snflog.Logger the Orchestrator needs: the
// run-start banner, phase transitions, the periodic counter, and
// error-taxonomy log points all go through it.
type Logger interface {
	Error(v ...interface{})
	Errorf(f string, v ...interface{})
	RunStart(mode, target string, port uint16, ifname, srcIP string)
	PhaseEntry(phase string)
	Progress(sent uint64)
	RunComplete(sent uint64)
}

// Run executes the Orchestrator sequence from spec.md §4.5: validate,
// open the raw sender, seed the PRNG, init the generator, then pump
// packets until Done or a build/send error. It returns non-nil only
// for the init-time failures in the error taxonomy (InvalidConfig,
// InvalidProtocol, SocketOpen, FatalStateCorruption); a mid-run send
// failure is logged and ends the run cleanly, matching "abort the
// current run, not the process."
func Run(cfg Config, log Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	srcIP, err := iface.LookupIPv4(cfg.Ifname)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var src [4]byte
	copy(src[:], net.ParseIP(srcIP).To4())
	dst := cfg.targetAddr()

	// IP-options mode still opens an IPPROTO_TCP raw socket: the
	// kernel needs a transport protocol number to accept IP_HDRINCL
	// writes even though the fuzzed bytes land in the IP header.
	sender, err := raw.NewSender(unix.IPPROTO_TCP)
	if err != nil {
		if errors.Is(err, raw.ErrInvalidProtocol) {
			return fmt.Errorf("%w: %v", ErrInvalidProtocol, err)
		}
		return fmt.Errorf("%w: %v", ErrSocketOpen, err)
	}
	defer sender.Close()

	seed := cfg.Seed
	if seed == 0 {
		clock := rng.New()
		if err := clock.SeedFromClock(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		seed = clock.Next()
	}

	gen, err := generator.New(cfg.Mode, cfg.InvalidCount, seed, log)
	if err != nil {
		return err
	}

	log.RunStart(cfg.Mode.String(), cfg.TargetIP, cfg.Port, cfg.Ifname, srcIP)

	pkt := make([]byte, packet.MaxPacketLen)
	opts := make([]byte, generator.MaxBlobLen)

	var sent uint64
	lastPhase := gen.Phase()

	for {
		n, done, err := gen.Next(opts)
		if err != nil {
			if errors.Is(err, generator.ErrFatalStateCorruption) {
				log.Errorf("snf: %v, terminating", err)
			}
			return err
		}
		if done {
			break
		}

		if gen.Phase() != lastPhase {
			lastPhase = gen.Phase()
			log.PhaseEntry(cfg.Mode.PhaseName(lastPhase))
		}

		var written int
		if cfg.Mode == generator.ModeTCPOptions {
			written, err = packet.BuildTCP(pkt, gen.Rand(), opts[:n], src, dst, cfg.Port)
		} else {
			written, err = packet.BuildIP(pkt, gen.Rand(), opts[:n], src, dst, cfg.Port)
		}
		if err != nil {
			log.Errorf("snf: build packet: %v", err)
			break
		}

		if err := sender.Send(pkt[:written], dst); err != nil {
			log.Errorf("snf: send failed: %v", err)
			break
		}

		sent++
		if sent%uint64(cfg.ReportEvery) == 0 {
			log.Progress(sent)
		}
	}

	log.RunComplete(sent)
	return nil
}
