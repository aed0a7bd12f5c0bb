package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/desertwitch/lst/internal/configuration"
	"github.com/desertwitch/lst/internal/filesystem"
	"github.com/desertwitch/lst/internal/filters"
	"github.com/desertwitch/lst/internal/formatters"
	"github.com/desertwitch/lst/internal/processors"
	"github.com/desertwitch/lst/internal/schema"
	"github.com/desertwitch/lst/internal/sorters"
	"github.com/desertwitch/lst/internal/validation"
	"github.com/desertwitch/lst/internal/watcher"
)

type App struct {
	opts        configuration.Options
	osHandler   *schema.OS
	unixHandler *schema.Unix
	out         io.Writer
}

func NewApp(opts configuration.Options, out io.Writer) *App {
	return &App{
		opts:        opts,
		osHandler:   &schema.OS{},
		unixHandler: &schema.Unix{},
		out:         out,
	}
}

// NewPipeline builds a filesystem-backed pipeline for the location, with the
// stages selected by the options of the [App].
func (app *App) NewPipeline(location string) (*processors.Pipeline[*filesystem.Entry], error) {
	validator, err := app.newValidator()
	if err != nil {
		return nil, err
	}

	formatter, err := app.newFormatter()
	if err != nil {
		return nil, err
	}

	pipeline, err := processors.NewPipeline[*filesystem.Entry](
		location,
		validator,
		filesystem.NewReader(app.osHandler, app.unixHandler),
		formatter,
	)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	if !app.opts.ShowAll {
		if err := pipeline.AddFilter(filters.NewDotFilesFilter[*filesystem.Entry]()); err != nil {
			return nil, fmt.Errorf("(app) %w", err)
		}
	}

	if len(app.opts.Ignore) > 0 {
		ignore, err := filters.NewIgnoreFilter[*filesystem.Entry](app.opts.Ignore...)
		if err != nil {
			return nil, fmt.Errorf("(app) %w", err)
		}
		if err := pipeline.AddFilter(ignore); err != nil {
			return nil, fmt.Errorf("(app) %w", err)
		}
	}

	sorter, err := app.newSorter()
	if err != nil {
		return nil, err
	}
	if sorter != nil {
		if err := pipeline.SetSorter(sorter); err != nil {
			return nil, fmt.Errorf("(app) %w", err)
		}
	}

	return pipeline, nil
}

func (app *App) newValidator() (schema.Validator, error) {
	switch app.opts.Validation {
	case configuration.ValidationStrict:
		return validation.NewValidator(app.osHandler, validation.StrictnessFileOrDir), nil
	case configuration.ValidationExists:
		return validation.NewValidator(app.osHandler, validation.StrictnessExists), nil
	default:
		return nil, fmt.Errorf("(app) %w: %q", ErrUnknownValidation, app.opts.Validation)
	}
}

func (app *App) newSorter() (schema.Sorter[*filesystem.Entry], error) {
	switch app.opts.Sort {
	case configuration.SortCreated:
		return sorters.NewTimeSorter[*filesystem.Entry](sorters.ByCreated, app.opts.Reverse), nil
	case configuration.SortModified:
		return sorters.NewTimeSorter[*filesystem.Entry](sorters.ByModified, app.opts.Reverse), nil
	case configuration.SortName:
		return sorters.NewNameSorter[*filesystem.Entry](app.opts.Reverse), nil
	case configuration.SortNone:
		return nil, nil //nolint:nilnil
	default:
		return nil, fmt.Errorf("(app) %w: %q", ErrUnknownSort, app.opts.Sort)
	}
}

func (app *App) newFormatter() (schema.Formatter[*filesystem.Entry], error) {
	switch app.opts.Format {
	case configuration.FormatName:
		return formatters.NewNameOnlyFormatter[*filesystem.Entry](), nil
	case configuration.FormatDetailed:
		return formatters.NewDetailedFormatter[*filesystem.Entry](), nil
	case configuration.FormatYAML:
		return formatters.NewYAMLFormatter[*filesystem.Entry](), nil
	case configuration.FormatChecksum:
		return formatters.NewChecksumFormatter[*filesystem.Entry](app.osHandler), nil
	default:
		return nil, fmt.Errorf("(app) %w: %q", ErrUnknownFormat, app.opts.Format)
	}
}

// Launch generates the listing of the location once and writes it out.
func (app *App) Launch(location string) error {
	pipeline, err := app.NewPipeline(location)
	if err != nil {
		return err
	}

	return app.generate(pipeline)
}

// Watch generates the listing of the location and regenerates it on every
// change of the location, until the context is cancelled.
func (app *App) Watch(ctx context.Context, location string) error {
	pipeline, err := app.NewPipeline(location)
	if err != nil {
		return err
	}

	if err := app.generate(pipeline); err != nil {
		return err
	}

	w, err := watcher.New(app.osHandler, location, watcher.DefaultDebounce)
	if err != nil {
		return fmt.Errorf("(app-watch) %w", err)
	}
	defer w.Close()

	slog.Debug("Watching location for changes...",
		"location", location,
	)

	err = w.Watch(ctx, func() {
		if err := app.generate(pipeline); err != nil {
			slog.Error("Failed to regenerate listing (will retry on next change).",
				"location", location,
				"err", err,
			)
		}
	}, func(err error) {
		slog.Warn("Failure while watching location (was skipped).",
			"location", location,
			"err", err,
		)
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("(app-watch) %w", err)
	}

	return nil
}

func (app *App) generate(pipeline *processors.Pipeline[*filesystem.Entry]) error {
	output, err := pipeline.Generate()
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	if _, err := io.WriteString(app.out, output); err != nil {
		return fmt.Errorf("(app) failed to write output: %w", err)
	}

	return nil
}
