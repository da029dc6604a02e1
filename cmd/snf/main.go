package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/0xca7/snf/fuzzer"
	"github.com/0xca7/snf/generator"
	"github.com/0xca7/snf/snflog"
)

// version is overridden at build time via -ldflags.
var version = "dev"

type options struct {
	mode         int
	target       string
	port         uint16
	ifname       string
	invalidCount uint64
	reportEvery  int
	seed         uint64
	debug        bool
	showVersion  bool
}

func parseOptions() *options {
	opts := &options{}

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -m <mode> -t <target-ip> -p <port> -i <ifname>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	pflag.IntVarP(&opts.mode, "mode", "m", -1, "fuzz mode: 0 = IP options, 1 = TCP options")
	pflag.StringVarP(&opts.target, "target", "t", "", "target IPv4 address, dotted quad")
	pflag.Uint16VarP(&opts.port, "port", "p", 0, "target TCP port")
	pflag.StringVarP(&opts.ifname, "iface", "i", "", "source network interface name")
	pflag.Uint64VarP(&opts.invalidCount, "count", "n", generator.DefaultInvalidCount, "iterations per invalid-phase quota")
	pflag.IntVar(&opts.reportEvery, "report-every", fuzzer.DefaultReportEvery, "print a progress line every N packets")
	pflag.Uint64Var(&opts.seed, "seed", 0, "PRNG seed; 0 derives one from the wall clock")
	pflag.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	pflag.BoolVarP(&opts.showVersion, "version", "v", false, "print the version number and exit")

	pflag.Parse()
	return opts
}

func main() {
	opts := parseOptions()

	if opts.showVersion {
		fmt.Println("snf", version)
		os.Exit(0)
	}

	level := snflog.LevelInfo
	if opts.debug {
		level = snflog.LevelDebug
	}
	log := snflog.New(level, "snf: ")

	cfg, err := fuzzer.NewConfig(
		generator.Mode(opts.mode),
		opts.target,
		opts.port,
		opts.ifname,
		opts.invalidCount,
		opts.reportEvery,
		opts.seed,
	)
	if err != nil {
		log.Errorf("snf: %v", err)
		os.Exit(1)
	}

	if err := fuzzer.Run(cfg, log); err != nil {
		log.Errorf("snf: %v", err)
		os.Exit(1)
	}
}
