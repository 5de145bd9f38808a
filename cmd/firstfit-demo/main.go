// Command firstfit-demo drives a first-fit arena from the command line.
//
// Run "firstfit-demo demo" to replay the reference walkthrough, or
// "firstfit-demo run [file]" to execute a script (stdin when no file is given).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pavanmanishd/firstfit"
	"github.com/pavanmanishd/firstfit/internal/script"
)

// demoScript walks a capacity-10 arena through two placements and three ticks.
const demoScript = `show
util
place 2 2
show
util
place 4 3
show
util
tick 2
show
util
tick
show
util
`

type config struct {
	capacity int
	logLevel string
	metrics  bool
}

func main() {
	err := newRootCommand(os.Stdin, os.Stdout).ParseAndRun(context.Background(), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader, stdout io.Writer) *ffcli.Command {
	var cfg config
	fs := flag.NewFlagSet("firstfit-demo", flag.ContinueOnError)
	fs.IntVar(&cfg.capacity, "capacity", 10, "arena capacity")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.metrics, "metrics", false, "print Prometheus metrics on exit")

	return &ffcli.Command{
		ShortUsage: "firstfit-demo [flags] <demo|run> [args]",
		ShortHelp:  "first-fit arena demonstration",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("FIRSTFIT")},
		Exec: func(ctx context.Context, args []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			{
				Name:       "demo",
				ShortUsage: "demo",
				ShortHelp:  "Replay the reference walkthrough",
				Exec: func(ctx context.Context, args []string) error {
					return execScript(ctx, cfg, strings.NewReader(demoScript), stdout)
				},
			},
			{
				Name:       "run",
				ShortUsage: "run [file]",
				ShortHelp:  "Execute a script from file or stdin",
				Exec: func(ctx context.Context, args []string) error {
					switch len(args) {
					case 0:
						return execScript(ctx, cfg, stdin, stdout)
					case 1:
						f, err := os.Open(args[0])
						if err != nil {
							return err
						}
						defer f.Close()
						return execScript(ctx, cfg, f, stdout)
					default:
						return flag.ErrHelp
					}
				},
			},
		},
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level %q: %w", level, err)
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderCfg,
	}.Build()
}

func execScript(ctx context.Context, cfg config, r io.Reader, w io.Writer) error {
	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	a, err := firstfit.NewSafeArena(cfg.capacity, firstfit.WithLogger(logger.Named("arena")))
	if err != nil {
		return err
	}
	logger.Info("arena created", zap.Int("capacity", cfg.capacity))

	if err := script.New(a, w, logger.Named("script")).Run(ctx, r); err != nil {
		return err
	}
	if !cfg.metrics {
		return nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(firstfit.NewCollector("demo", a))
	return writeMetrics(w, reg)
}

// writeMetrics writes every metric gathered from g in text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("could not encode metric %v: %w", mf.GetName(), err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	return nil
}
