// Command bptree runs a command file against an in-memory B+ tree and prints
// the result of every search.
//
// Usage:
//
//	bptree [flags] [file]
//
// Commands are read from file, or from stdin when no file is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexhholmes/bptree"
	"github.com/alexhholmes/bptree/internal/driver"
	"github.com/alexhholmes/bptree/internal/input"
	"github.com/alexhholmes/bptree/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bptree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: bptree [flags] [file]")
		fs.PrintDefaults()
	}

	logKind := fs.String("log", "none", "logger: zap, logrus or none")
	logLevel := fs.String("log-level", "info", "log level")
	cacheSize := fs.Int("cache", 128, "search result cache capacity, 0 disables")
	colorize := fs.Bool("color", false, "highlight Null results")
	verbose := fs.Bool("verbose", false, "print the key before each point search result")
	fingerprint := fs.Bool("fingerprint", false, "print the final tree fingerprint to stderr")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	log, sync, err := newLogger(*logKind, *logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer sync()

	src, err := openSource(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer src.Close()

	d, err := driver.New(stdout, driver.Config{
		CacheSize: *cacheSize,
		Color:     *colorize,
		Verbose:   *verbose,
		Logger:    log,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := d.Run(src.Lines); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *fingerprint {
		fmt.Fprintf(stderr, "fingerprint: %016x\n", d.Tree().Fingerprint())
	}
	return 0
}

func openSource(path string, stdin io.Reader) (*input.Source, error) {
	if path == "" || path == "-" {
		return input.Read(stdin)
	}
	return input.Open(path)
}

// newLogger builds the logger selected by kind, writing to w. The returned
// func flushes buffered entries.
func newLogger(kind, level string, w io.Writer) (bptree.Logger, func(), error) {
	switch kind {
	case "none", "":
		return bptree.DiscardLogger{}, func() {}, nil

	case "zap":
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, nil, err
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			lvl,
		)
		z := zap.New(core)
		return logger.NewZap(z), func() { _ = z.Sync() }, nil

	case "logrus":
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, nil, err
		}
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(lvl)
		return logger.NewLogrus(l), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown logger %q", kind)
	}
}
