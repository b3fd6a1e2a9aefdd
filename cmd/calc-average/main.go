// calc-average generates bounded pseudo-random integers, prints them and
// prints their arithmetic mean.
//
// Usage:
//
//	calc-average [flags] <minimum> <maximum> <count>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/acolita/calc-average/internal/adapters/realdialog"
	"github.com/acolita/calc-average/internal/adapters/realfs"
	"github.com/acolita/calc-average/internal/adapters/realrand"
	"github.com/acolita/calc-average/internal/args"
	"github.com/acolita/calc-average/internal/config"
	"github.com/acolita/calc-average/internal/logging"
	"github.com/acolita/calc-average/internal/ports"
	"github.com/acolita/calc-average/internal/random"
	"github.com/acolita/calc-average/internal/sample"
)

// Version information - set at build time.
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// errorTrailer follows every diagnostic written to stdout.
const errorTrailer = "There was an error. Exiting."

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// deps are the adapters main wires in; tests substitute fakes.
type deps struct {
	entropy ports.Random
	dialog  ports.DialogProvider
	fsys    ports.FileSystem
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, deps{
		entropy: realrand.New(),
		dialog:  realdialog.New(),
		fsys:    realfs.New(),
	}))
}

// run executes one invocation and returns the process exit code.
func run(argv []string, stdout, stderr io.Writer, d deps) int {
	var (
		configPath  string
		interactive bool
		showVersion bool
		debug       bool
	)

	flags := flag.NewFlagSet("calc-average", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&configPath, "config", "", "Path to a YAML configuration file (logging settings)")
	flags.BoolVar(&interactive, "interactive", false, "Prompt for missing arguments with a form")
	flags.BoolVar(&showVersion, "version", false, "Show version information")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
	flags.Usage = func() {
		fmt.Fprint(stderr, `calc-average - print random integers and their average.

Usage:
  calc-average [options] <minimum> <maximum> <count>

Arguments:
  minimum  smallest value to generate, zero or more
  maximum  largest value to generate, greater than minimum
  count    how many values to generate, zero or more

Options:
`)
		flags.PrintDefaults()
	}

	options, positional := splitFlags(flags, argv)
	if err := flags.Parse(options); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		fmt.Fprintf(stdout, "calc-average version %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return exitOK
	}

	cfg, err := config.Load(configPath, d.fsys)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitError
	}
	cfg.ApplyDebug(debug)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitError
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)
	slog.Debug("starting calc-average",
		slog.String("version", Version),
		slog.Bool("interactive", interactive),
	)

	tokens := slices.Concat(flags.Args(), positional)
	if interactive && len(tokens) < args.Required {
		tokens, err = promptArguments(d.dialog, tokens)
		if err != nil {
			slog.Debug("interactive input failed", slog.String("error", err.Error()))
			reportError(stdout, "No arguments were entered.")
			return exitError
		}
	}

	a, err := args.Parse(tokens)
	if err != nil {
		slog.Debug("argument validation failed", slog.String("error", err.Error()))
		reportError(stdout, err.Error())
		return exitError
	}

	src, err := random.New(random.Range{Min: a.Minimum, Max: a.Maximum}, d.entropy)
	if err != nil {
		slog.Error("random source unavailable", slog.String("error", err.Error()))
		reportError(stdout, "Could not seed the random number generator.")
		return exitError
	}

	samples := sample.Fill(a.Count, src)
	avg, err := sample.Report(stdout, samples)
	if err != nil {
		slog.Error("writing output failed", slog.String("error", err.Error()))
		return exitError
	}

	slog.Debug("run complete",
		slog.Int("count", len(samples)),
		slog.String("average", sample.FormatAverage(avg)),
	)
	return exitOK
}

// reportError prints message followed by the fixed trailer line.
func reportError(w io.Writer, message string) {
	fmt.Fprintln(w, message)
	fmt.Fprintln(w, errorTrailer)
}
