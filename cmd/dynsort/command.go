package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/dynarray/pkg/dynarray"
)

const ErrMalformedNumber errorkit.Error = "ErrMalformedNumber"

// Command reads lines from the standard input and prints them in sorted order.
type Command struct {
	Numeric bool `flag:"numeric,n" env:"DYNSORT_NUMERIC" desc:"compare lines by their numeric value"`
	Reverse bool `flag:"reverse,r" env:"DYNSORT_REVERSE" desc:"print the lines in descending order"`
	Unique  bool `flag:"unique,u" env:"DYNSORT_UNIQUE" desc:"print equal lines only once, keeping the first occurrence"`

	// Logger is injected by the caller. When nil, the package level logger is used.
	Logger *logging.Logger
}

func (cmd Command) Summary() string { return "sort lines of text" }

type line struct {
	Text  string
	Value float64
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	log := cmd.logger()

	lines, err := cmd.read(r.Body)
	if err != nil {
		log.Error(ctx, "failed to read the input", logging.ErrField(err))
		if errors.Is(err, ErrMalformedNumber) {
			w.ExitCode(cli.ExitCodeBadRequest)
			fmt.Fprintln(errOut(w), err.Error())
			return
		}
		cli.HandleError(w, r, err)
		return
	}
	log.Debug(ctx, "input staged", logging.Field("array", lines))

	if err := lines.Sort(cmd.compare()); err != nil {
		log.Error(ctx, "failed to sort the input", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}
	log.Info(ctx, "input sorted", logging.Field("array", lines))

	for l := range lines.Values() {
		if _, err := fmt.Fprintln(w, l.Text); err != nil {
			log.Error(ctx, "failed to write the output", logging.ErrField(err))
			cli.HandleError(w, r, err)
			return
		}
	}
}

func (cmd Command) read(body io.Reader) (*dynarray.Array[line], error) {
	lines := dynarray.New[line]()
	if body == nil {
		return lines, nil
	}
	for text, err := range iterkit.BufioScanner[string](bufio.NewScanner(body), nil) {
		if err != nil {
			return nil, err
		}
		l := line{Text: text}
		if cmd.Numeric {
			v, err := convkit.Parse[float64](text)
			if err != nil {
				return nil, ErrMalformedNumber.F("%q is not a number", text)
			}
			l.Value = v
		}
		if cmd.Unique && cmd.contains(lines, l) {
			continue
		}
		lines.Append(l)
	}
	return lines, nil
}

func (cmd Command) contains(lines *dynarray.Array[line], l line) bool {
	for v := range lines.Values() {
		if cmd.equal(v, l) {
			return true
		}
	}
	return false
}

func (cmd Command) equal(a, b line) bool {
	if cmd.Numeric {
		return a.Value == b.Value
	}
	return a.Text == b.Text
}

func (cmd Command) compare() func(a, b line) int {
	cmp := func(a, b line) int {
		if cmd.Numeric {
			return compare.Numbers(a.Value, b.Value)
		}
		return compare.Strings(a.Text, b.Text)
	}
	if cmd.Reverse {
		return func(a, b line) int { return cmp(b, a) }
	}
	return cmp
}

type logs interface {
	Debug(ctx context.Context, msg string, ds ...logging.Detail)
	Info(ctx context.Context, msg string, ds ...logging.Detail)
	Error(ctx context.Context, msg string, ds ...logging.Detail)
}

func (cmd Command) logger() logs {
	if cmd.Logger != nil {
		return cmd.Logger
	}
	return defaultLogger{}
}

// defaultLogger writes through the package level logger, which cli.Main points at STDERR.
type defaultLogger struct{}

func (defaultLogger) Debug(ctx context.Context, msg string, ds ...logging.Detail) {
	logger.Debug(ctx, msg, ds...)
}

func (defaultLogger) Info(ctx context.Context, msg string, ds ...logging.Detail) {
	logger.Info(ctx, msg, ds...)
}

func (defaultLogger) Error(ctx context.Context, msg string, ds ...logging.Detail) {
	logger.Error(ctx, msg, ds...)
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		return ew.Stderr()
	}
	return w
}
