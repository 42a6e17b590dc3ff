// Command cssel renders CSS selectors and stylesheets from a YAML
// description.
//
//     cssel render rules.yaml
//     cssel sheet rules.yaml
//
// See SelectorSpec for the input format.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/cssbuild/cssom/douceuradapter"
	"github.com/npillmayer/cssbuild/selector"
	"github.com/npillmayer/cssbuild/selector/selectordbg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	cli "github.com/urfave/cli/v3"
)

// tracerKeys are the tracers of the library packages.
var tracerKeys = []string{"cssbuild.selector", "cssbuild.cssom"}

// tracerSet selects tracers by key. Unknown keys get a no-op tracer.
type tracerSet map[string]tracing.Trace

func (ts tracerSet) Select(key string) tracing.Trace {
	if t, ok := ts[key]; ok {
		return t
	}
	return tracing.NoOpTrace()
}

// debugTracing installs a tracer at debug level for every key in
// tracerKeys, each one created by adapter.
func debugTracing(adapter tracing.Adapter) tracerSet {
	ts := make(tracerSet, len(tracerKeys))
	for _, key := range tracerKeys {
		t := adapter()
		t.SetTraceLevel(tracing.LevelDebug)
		ts[key] = t
	}
	tracing.SetTraceSelector(ts)
	return ts
}

// enableTracing routes tracing to a Go logger on stderr at debug level.
func enableTracing(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		debugTracing(gologadapter.GetAdapter())
	}
	return ctx, nil
}

func inputPath(cmd *cli.Command) string {
	if cmd.NArg() == 0 {
		return "-"
	}
	return cmd.Args().First()
}

func runRender(_ context.Context, cmd *cli.Command) error {
	f, err := loadFile(inputPath(cmd))
	if err != nil {
		return err
	}
	var dbg io.Writer
	if cmd.Bool("debug") {
		dbg = os.Stderr
	}
	return renderSelectors(os.Stdout, dbg, f)
}

func runSheet(_ context.Context, cmd *cli.Command) error {
	f, err := loadFile(inputPath(cmd))
	if err != nil {
		return err
	}
	return writeSheet(os.Stdout, f)
}

// renderSelectors writes one line per rule, selectors of a rule separated
// by commas. If dbg is non-nil, the selector trees are dumped to it.
func renderSelectors(w, dbg io.Writer, f *File) error {
	for i, r := range f.Rules {
		sels, err := r.selectors()
		if err != nil {
			return fmt.Errorf("rule #%d: %w", i+1, err)
		}
		rendered := make([]string, len(sels))
		for j, sel := range sels {
			if dbg != nil {
				if err := selectordbg.Dump(dbg, sel); err != nil {
					return err
				}
			}
			if rendered[j], err = selector.Render(sel).Get(); err != nil {
				return fmt.Errorf("rule #%d: %w", i+1, err)
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(rendered, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// writeSheet writes a stylesheet with one rule per rule description.
func writeSheet(w io.Writer, f *File) error {
	sheet := douceuradapter.NewStyleSheet()
	for i, r := range f.Rules {
		sels, err := r.selectors()
		if err != nil {
			return fmt.Errorf("rule #%d: %w", i+1, err)
		}
		if err := sheet.AddRule(r.declarations(), sels...); err != nil {
			return fmt.Errorf("rule #%d: %w", i+1, err)
		}
	}
	if sheet.Empty() {
		return nil
	}
	_, err := fmt.Fprintln(w, sheet.String())
	return err
}

func main() {
	app := &cli.Command{
		Name:            "cssel",
		Usage:           "renders CSS selectors described in YAML",
		HideHelpCommand: true,
		Before:          enableTracing,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "trace selector construction and dump selector trees to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "Prints the rendered selectors of every rule, one rule per line",
				Action:    runRender,
				ArgsUsage: "[FILE]",
			},
			{
				Name:      "sheet",
				Usage:     "Prints a stylesheet built from the rules",
				Action:    runSheet,
				ArgsUsage: "[FILE]",
			},
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cssel: %v\n", err)
		os.Exit(1)
	}
}
