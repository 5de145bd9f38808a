// Package script runs line-oriented command scripts against an arena.
//
// Commands, one per line:
//
//	place <length> <duration> [id]   admit a tenant; prints "rejected ..." if it does not fit
//	tick [n]                         advance time n ticks (default 1)
//	show                             print the arena
//	util                             print " - utilisation: <u>"
//	reset                            drop every tenant
//
// Blank lines and lines starting with # are ignored.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	"go.uber.org/zap"

	"github.com/pavanmanishd/firstfit"
)

var (
	ErrUnknownCommand = errors.New("script: unknown command")
	ErrUsage          = errors.New("script: bad usage")
)

// Interpreter executes commands against a single arena.
type Interpreter struct {
	arena *firstfit.SafeArena
	out   io.Writer
	log   *zap.Logger
}

// New returns an Interpreter writing command output to out. log may be nil.
func New(a *firstfit.SafeArena, out io.Writer, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{arena: a, out: out, log: log}
}

// Run executes every line read from r, stopping at the first error or when
// ctx is done. Errors are prefixed with the 1-based line number.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return sc.Err()
}

// Exec executes a single command line.
func (in *Interpreter) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shlex.Split(line, true)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(args) == 0 {
		return nil
	}
	in.log.Debug("exec", zap.Strings("args", args))

	switch cmd, rest := args[0], args[1:]; cmd {
	case "place":
		return in.place(rest)
	case "tick":
		return in.tick(rest)
	case "show":
		if len(rest) != 0 {
			return fmt.Errorf("%w: show takes no arguments", ErrUsage)
		}
		_, err := fmt.Fprintln(in.out, in.arena)
		return err
	case "util":
		if len(rest) != 0 {
			return fmt.Errorf("%w: util takes no arguments", ErrUsage)
		}
		u := strconv.FormatFloat(in.arena.Utilisation(), 'g', -1, 64)
		_, err := fmt.Fprintf(in.out, " - utilisation: %s\n", u)
		return err
	case "reset":
		in.arena.Reset()
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
}

func (in *Interpreter) place(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: place <length> <duration> [id]", ErrUsage)
	}
	length, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: length: %v", ErrUsage, err)
	}
	duration, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: duration: %v", ErrUsage, err)
	}
	var id string
	if len(args) == 3 {
		id = args[2]
	}
	t, err := firstfit.NewTenant(id, length, duration)
	if err != nil {
		return err
	}
	if !in.arena.Place(t) {
		_, err := fmt.Fprintf(in.out, "rejected %s\n", t)
		return err
	}
	return nil
}

func (in *Interpreter) tick(args []string) error {
	n := 1
	switch len(args) {
	case 0:
	case 1:
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("%w: tick count %q", ErrUsage, args[0])
		}
	default:
		return fmt.Errorf("%w: tick [n]", ErrUsage)
	}
	for range n {
		in.arena.Tick()
	}
	return nil
}
