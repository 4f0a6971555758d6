// bpflint checks BPF C source files against a set of structural lints
// and prints compiler style warnings for everything it flags.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/urfave/cli/v2"

	"bpflint/lint"
	"bpflint/report"
)

func run(ctx *cli.Context) error {
	// glog reads its configuration from the standard flag set.
	_ = flag.Set("logtostderr", "true")
	_ = flag.Set("v", strconv.Itoa(ctx.Int("verbosity")))
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if ctx.Bool("print-lints") {
		for _, l := range lint.Builtins() {
			fmt.Println(l.Name)
		}
		return nil
	}

	if ctx.Args().Len() == 0 {
		return errors.New("no source files given")
	}

	context := ctx.Uint("context")
	if context > 255 {
		return fmt.Errorf("invalid context line count %d (maximum is 255)", context)
	}
	opts := &report.Opts{
		Before: uint8(context),
		After:  uint8(context),
	}
	if ctx.Bool("color") {
		opts.Highlighter = report.ANSI{}
	}

	stdout := bufio.NewWriter(os.Stdout)
	for _, path := range ctx.Args().Slice() {
		code, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read `%s`: %w", path, err)
		}
		matches, err := lint.Check(code)
		if err != nil {
			return fmt.Errorf("failed to lint `%s`: %w", path, err)
		}
		for i := range matches {
			if err := report.TerminalOpts(&matches[i], code, path, opts, stdout); err != nil {
				return err
			}
		}
	}
	return stdout.Flush()
}

func main() {
	app := &cli.App{
		Name:      "bpflint",
		Usage:     "lint BPF C source code",
		ArgsUsage: "[source files]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "print-lints",
				Usage: "print the names of all built-in lints and exit",
			},
			&cli.UintFlag{
				Name:    "context",
				Aliases: []string{"C"},
				Usage:   "lines of source context to include before and after each match",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "syntax highlight echoed source lines",
			},
			&cli.IntFlag{
				Name:    "verbosity",
				Aliases: []string{"v"},
				Usage:   "logging verbosity",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
