// Command extract runs the extraction pipeline over a saved model response
// without calling a model. Overlong titles use the local fallback.
//
//	extract [-mode tasks|schedule] [file]
//
// The response is read from file, or from stdin when no file is given.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"ai-planning-service/internal/planning/usecase"
	"ai-planning-service/pkg/extract"
	"ai-planning-service/pkg/log"
)

const (
	modeTasks    = "tasks"
	modeSchedule = "schedule"
)

var errUnknownMode = errors.New("unknown mode")

func main() {
	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, pretty))
}

type result struct {
	Strategy string `json:"strategy"`
	Count    int    `json:"count"`
	Items    any    `json:"items"`
}

// run returns the process exit code: 0 on success, 1 when no valid record
// was found, 2 on usage or input errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, pretty bool) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", modeTasks, "record kind to assemble: tasks or schedule")
	verbose := fs.Bool("v", false, "log skipped records to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	raw, err := readInput(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "extract: %v\n", err)
		return 2
	}

	level := "error"
	if *verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
		Output:   stderr,
	})

	ctx := context.Background()
	assembler := usecase.NewAssembler(logger, usecase.NewTitleSummarizer(logger, nil))
	records, strategy := extract.ExtractWithStrategy(string(raw))

	var (
		items any
		count int
	)
	switch *mode {
	case modeTasks:
		tasks, aerr := assembler.AssembleTasks(ctx, records)
		items, count, err = tasks, len(tasks), aerr
	case modeSchedule:
		scheduled, aerr := assembler.AssembleSchedule(ctx, records)
		items, count, err = scheduled, len(scheduled), aerr
	default:
		fmt.Fprintf(stderr, "extract: %v: %q\n", errUnknownMode, *mode)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "extract: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result{Strategy: strategy, Count: count, Items: items}); err != nil {
		fmt.Fprintf(stderr, "extract: %v\n", err)
		return 2
	}
	return 0
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		return nil, fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
}
