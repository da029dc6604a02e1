package fuzzer

import (
	"fmt"
	"net"

	"github.com/0xca7/snf/generator"
)

// DefaultReportEvery is how often the orchestrator prints the "N
// packets sent" progress line, absent an explicit override.
// original_source/src/modules/fuzzer/fuzzer.c used a fixed 200 or
// 1000 depending on mode; this implementation exposes it as a knob
// instead of hardcoding either.
const DefaultReportEvery = 1000

// Config is the Orchestrator's immutable run configuration, built by
// NewConfig so an invalid one can never reach Run.
type Config struct {
	Mode         generator.Mode
	TargetIP     string
	Port         uint16
	Ifname       string
	InvalidCount uint64
	ReportEvery  int
	Seed         uint64
}

// NewConfig validates its arguments and returns a ready-to-run
// Config, or ErrInvalidConfig wrapping the specific violation.
// InvalidCount and ReportEvery default to generator.DefaultInvalidCount
// and DefaultReportEvery when zero.
func NewConfig(mode generator.Mode, targetIP string, port uint16, ifname string, invalidCount uint64, reportEvery int, seed uint64) (Config, error) {
	cfg := Config{
		Mode:         mode,
		TargetIP:     targetIP,
		Port:         port,
		Ifname:       ifname,
		InvalidCount: invalidCount,
		ReportEvery:  reportEvery,
		Seed:         seed,
	}
	if cfg.InvalidCount == 0 {
		cfg.InvalidCount = generator.DefaultInvalidCount
	}
	if cfg.ReportEvery == 0 {
		cfg.ReportEvery = DefaultReportEvery
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: mode %d is not a known FuzzMode", ErrInvalidConfig, c.Mode)
	}
	if c.Port == 0 {
		return fmt.Errorf("%w: port must be nonzero", ErrInvalidConfig)
	}
	ip := net.ParseIP(c.TargetIP)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("%w: target %q is not a dotted IPv4 address", ErrInvalidConfig, c.TargetIP)
	}
	if c.Ifname == "" {
		return fmt.Errorf("%w: interface name is required", ErrInvalidConfig)
	}
	return nil
}

func (c Config) targetAddr() [4]byte {
	var addr [4]byte
	copy(addr[:], net.ParseIP(c.TargetIP).To4())
	return addr
}
