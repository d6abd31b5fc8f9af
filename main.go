package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jcorbin/sltf/internal/logio"
	"github.com/jcorbin/sltf/internal/panicerr"
	"github.com/jcorbin/sltf/internal/vm"
)

func main() {
	ctx := context.Background()

	var (
		configPath string
		timeout    time.Duration
		trace      bool
		queueLimit int
		verbosity  int
		initText   string
	)
	flag.StringVar(&configPath, "config", "", "load settings from a TOML file (default ./"+configFile+" if present)")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit for each input")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&queueLimit, "queue-limit", 0, "limit pending instructions, 0 for no limit")
	flag.IntVar(&verbosity, "v", 0, "log verbosity; negative values are quieter, 2 shows debug traces")
	flag.StringVar(&initText, "init", "", "program text to run before any input")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file ...]\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Runs each file in order, or an interactive session when none are given.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.Timeout = timeout
		case "trace":
			cfg.Trace = trace
		case "queue-limit":
			cfg.QueueLimit = queueLimit
		case "v":
			cfg.Verbosity = verbosity
		case "init":
			cfg.Init = initText
		}
	})

	if err := run(ctx, cfg, flag.Args()); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, paths []string) error {
	if cfg.Trace && cfg.Verbosity < 1 {
		cfg.Verbosity = 1
	}
	commonlog.Configure(cfg.Verbosity, nil)
	log := commonlog.GetLogger("sltf")

	opts := []vm.Option{vm.WithOutput(os.Stdout)}
	if cfg.Trace {
		opts = append(opts, traceOptions(log)...)
	}

	sess, err := newSession(ctx, cfg, log, opts...)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := runFiles(ctx, sess, cfg.preludePaths()...); err != nil {
		return err
	}
	if len(paths) > 0 {
		return runFiles(ctx, sess, paths...)
	}
	return repl(ctx, sess, cfg, os.Stdout, os.Stderr)
}

// reportError writes err, along with the stack of any panic it carries, even
// one wrapped with a location.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR: %v\n", err)
	if stack := panicerr.PanicStack(err); stack != "" {
		fmt.Fprintf(w, "Panic stack: %s\n", stack)
	}
}

// traceOptions copies VM output and step traces into log at info level.
// Definition notes already reach log on their own, as do step traces once it
// takes debug messages.
func traceOptions(log commonlog.Logger) []vm.Option {
	opts := []vm.Option{
		vm.WithTee(&logio.Writer{Logf: log.Infof, Prefix: "out: "}),
	}
	if !log.AllowLevel(commonlog.Debug) {
		opts = append(opts, vm.WithLogf(func(mess string, args ...interface{}) {
			if !strings.HasPrefix(mess, "# ") {
				log.Infof(mess, args...)
			}
		}))
	}
	return opts
}
