package fuzzer

import (
	"errors"
	"testing"

	"github.com/0xca7/snf/generator"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(generator.ModeTCPOptions, "127.0.0.1", 5555, "lo", 0, 0, 0)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.InvalidCount != generator.DefaultInvalidCount {
		t.Errorf("InvalidCount = %d, want default %d", cfg.InvalidCount, generator.DefaultInvalidCount)
	}
	if cfg.ReportEvery != DefaultReportEvery {
		t.Errorf("ReportEvery = %d, want default %d", cfg.ReportEvery, DefaultReportEvery)
	}
}

func TestNewConfigRejectsBadMode(t *testing.T) {
	_, err := NewConfig(generator.Mode(9), "127.0.0.1", 80, "lo", 0, 0, 0)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewConfigRejectsZeroPort(t *testing.T) {
	_, err := NewConfig(generator.ModeTCPOptions, "127.0.0.1", 0, "lo", 0, 0, 0)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewConfigRejectsBadIPv4(t *testing.T) {
	_, err := NewConfig(generator.ModeTCPOptions, "not-an-ip", 80, "lo", 0, 0, 0)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewConfigRejectsEmptyIfname(t *testing.T) {
	_, err := NewConfig(generator.ModeTCPOptions, "127.0.0.1", 80, "", 0, 0, 0)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestTargetAddr(t *testing.T) {
	cfg, err := NewConfig(generator.ModeIPOptions, "192.168.0.199", 80, "lo", 0, 0, 0)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	want := [4]byte{192, 168, 0, 199}
	if got := cfg.targetAddr(); got != want {
		t.Errorf("targetAddr = %v, want %v", got, want)
	}
}
