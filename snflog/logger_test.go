package snflog

import (
	"bytes"
	"log"
	"testing"
)

func TestEnabledLevelsWrite(t *testing.T) {
	var buf bytes.Buffer
	l := &runLogger{
		debug: log.New(&buf, "", 0),
		info:  log.New(&buf, "", 0),
		err:   log.New(&buf, "", 0),
	}
	l.Debugf("d%d", 1)
	l.Progress(2)
	l.Errorf("e%d", 3)
	got := buf.String()
	for _, want := range []string{"d1", "sent=2", "e3"} {
		if !bytes.Contains([]byte(got), []byte(want)) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestRunLifecycleMethods(t *testing.T) {
	var buf bytes.Buffer
	l := &runLogger{
		debug: log.New(&buf, "", 0),
		info:  log.New(&buf, "", 0),
		err:   log.New(&buf, "", 0),
	}
	l.RunStart("tcp-options", "10.0.0.1", 80, "eth0", "10.0.0.2")
	l.PhaseEntry("invalid-length")
	l.RunComplete(42)

	got := buf.String()
	for _, want := range []string{
		`mode="tcp-options"`,
		"target=10.0.0.1:80",
		"iface=eth0",
		"src=10.0.0.2",
		`phase="invalid-length"`,
		"run complete sent=42",
	} {
		if !bytes.Contains([]byte(got), []byte(want)) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestNewDiscardsBelowLevel(t *testing.T) {
	l := New(LevelError, "test: ")
	if l.debug.Writer() == l.err.Writer() {
		t.Error("debug writer should be discarded when level is LevelError")
	}
}
