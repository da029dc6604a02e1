// Package snflog provides the run logger used throughout snf. Unlike
// a generic leveled logger, its info-tier surface is not a bag of
// printf methods: it exposes the run's actual lifecycle events (the
// start-of-run banner, phase transitions, the periodic packet
// counter, run completion) as distinct methods, so a call site states
// what happened rather than formatting a string by hand, and a
// different sink (a metrics counter, a structured event recorder) can
// back those events without every call site changing.
package snflog

import (
	"io"
	"log"
	"os"
)

const (
	LevelSilent = iota
	LevelError
	LevelInfo
	LevelDebug
)

// Logger is the contract every snf package depends on instead of a
// concrete type, so tests can substitute a no-op or a recording
// implementation. Debug/Error are generic (diagnostics, the
// catalog-error / send-failure taxonomy); everything else names a
// specific run event.
type Logger interface {
	Debug(v ...interface{})
	Debugf(f string, v ...interface{})
	Error(v ...interface{})
	Errorf(f string, v ...interface{})

	// RunStart announces the orchestrator's startup banner: the active
	// mode, the target, and the resolved source address.
	RunStart(mode, target string, port uint16, ifname, srcIP string)
	// PhaseEntry announces a transition into a new generator phase.
	PhaseEntry(phase string)
	// Progress reports the running packets-sent counter.
	Progress(sent uint64)
	// RunComplete announces the final packets-sent count at teardown.
	RunComplete(sent uint64)
}

var _ Logger = &runLogger{}

type runLogger struct {
	prefix string
	debug  *log.Logger
	info   *log.Logger
	err    *log.Logger
}

// New builds a Logger that writes to stdout, discarding any level
// below the requested one. prefix identifies the run in every line
// (e.g. the binary name).
func New(level int, prefix string) *runLogger {
	output := os.Stdout

	logErr, logInfo, logDebug := func() (io.Writer, io.Writer, io.Writer) {
		switch {
		case level >= LevelDebug:
			return output, output, output
		case level >= LevelInfo:
			return output, output, io.Discard
		case level >= LevelError:
			return output, io.Discard, io.Discard
		default:
			return io.Discard, io.Discard, io.Discard
		}
	}()

	return &runLogger{
		prefix: prefix,
		debug:  log.New(logDebug, "DEBUG: "+prefix, log.Ldate|log.Ltime),
		info:   log.New(logInfo, "INFO: "+prefix, log.Ldate|log.Ltime),
		err:    log.New(logErr, "ERROR: "+prefix, log.Ldate|log.Ltime),
	}
}

func (l *runLogger) Debug(v ...interface{})            { l.debug.Println(v...) }
func (l *runLogger) Debugf(f string, v ...interface{}) { l.debug.Printf(f, v...) }
func (l *runLogger) Error(v ...interface{})            { l.err.Println(v...) }
func (l *runLogger) Errorf(f string, v ...interface{}) { l.err.Printf(f, v...) }

func (l *runLogger) RunStart(mode, target string, port uint16, ifname, srcIP string) {
	l.info.Printf("run start mode=%q target=%s:%d iface=%s src=%s", mode, target, port, ifname, srcIP)
}

func (l *runLogger) PhaseEntry(phase string) {
	l.info.Printf("phase=%q", phase)
}

func (l *runLogger) Progress(sent uint64) {
	l.info.Printf("progress sent=%d", sent)
}

func (l *runLogger) RunComplete(sent uint64) {
	l.info.Printf("run complete sent=%d", sent)
}
