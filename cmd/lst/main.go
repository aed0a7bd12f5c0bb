package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/desertwitch/lst/internal/configuration"
	"github.com/desertwitch/lst/internal/validation"
	"github.com/lmittmann/tint"
)

const (
	exitFailure         = 1
	exitInvalidLocation = 2
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

type cliFlags struct {
	all        *bool
	sort       *string
	reverse    *bool
	format     *string
	validation *string
	ignore     *string
	config     *string
	watch      *bool
	debug      *bool
	version    *bool
}

func newFlagSet(output io.Writer) (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("lst", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := configuration.DefaultOptions()

	flags := &cliFlags{
		all:        fs.Bool("a", defaults.ShowAll, "include entries starting with a dot"),
		sort:       fs.String("sort", defaults.Sort, "sort by: "+strings.Join(configuration.SortModes, ", ")),
		reverse:    fs.Bool("r", defaults.Reverse, "reverse the sort order"),
		format:     fs.String("format", defaults.Format, "output format: "+strings.Join(configuration.FormatModes, ", ")),
		validation: fs.String("validation", defaults.Validation, "location validation: "+strings.Join(configuration.ValidationModes, ", ")),
		ignore:     fs.String("ignore", "", "comma-separated shell patterns of names to leave out"),
		config:     fs.String("config", configuration.DefaultConfigPath(), "configuration file"),
		watch:      fs.Bool("watch", false, "regenerate the listing whenever the location changes"),
		debug:      fs.Bool("debug", false, "enable debug logging"),
		version:    fs.Bool("version", false, "print the version and exit"),
	}

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lst [flags] [location]\n\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// applyFlags overrides the given options with all explicitly set flags.
func applyFlags(fs *flag.FlagSet, flags *cliFlags, opts configuration.Options) configuration.Options {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			opts.ShowAll = *flags.all
		case "sort":
			opts.Sort = strings.ToLower(*flags.sort)
		case "r":
			opts.Reverse = *flags.reverse
		case "format":
			opts.Format = strings.ToLower(*flags.format)
		case "validation":
			opts.Validation = strings.ToLower(*flags.validation)
		case "ignore":
			opts.Ignore = configuration.SplitList(*flags.ignore)
		}
	})

	return opts
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func exitCodeFor(err error) int {
	if errors.Is(err, validation.ErrInvalidLocation) {
		return exitInvalidLocation
	}

	return exitFailure
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	fs, flags := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return exitFailure
	}

	setupLogging(*flags.debug)

	if *flags.version {
		fmt.Fprintf(stdout, "lst %s\n", Version)

		return 0
	}

	if fs.NArg() > 1 {
		fmt.Fprintf(fs.Output(), "lst: expected at most one location, got %d\n", fs.NArg())
		fs.Usage()

		return exitFailure
	}

	location := "."
	if fs.NArg() > 0 {
		location = fs.Arg(0)
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	opts, err := configHandler.Load(*flags.config)
	if err != nil {
		slog.Warn("Failure reading the configuration (using defaults where needed).",
			"config", *flags.config,
			"err", err,
		)
	}
	opts = applyFlags(fs, flags, opts)

	slog.Debug("Generating listing...",
		"location", location,
		"sort", opts.Sort,
		"format", opts.Format,
		"validation", opts.Validation,
	)

	app := NewApp(opts, stdout)

	if *flags.watch {
		err = app.Watch(ctx, location)
	} else {
		err = app.Launch(location)
	}

	if err != nil {
		slog.Error("Failed to generate listing.",
			"location", location,
			"err", err,
		)

		return exitCodeFor(err)
	}

	return 0
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandlers(cancel)

	ExitCode = run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
