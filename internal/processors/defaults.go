package processors

import (
	"fmt"

	"github.com/desertwitch/lst/internal/filesystem"
	"github.com/desertwitch/lst/internal/filters"
	"github.com/desertwitch/lst/internal/formatters"
	"github.com/desertwitch/lst/internal/schema"
	"github.com/desertwitch/lst/internal/sorters"
	"github.com/desertwitch/lst/internal/validation"
)

// NewDefaultPipeline returns a pointer to a new filesystem-backed [Pipeline]
// with the default stages: a strict [validation.Validator], a
// [filesystem.Reader], a [filters.DotFilesFilter], a [sorters.TimeSorter]
// (creation time, newest first) and a [formatters.NameOnlyFormatter].
func NewDefaultPipeline(location string) (*Pipeline[*filesystem.Entry], error) {
	osHandler := &schema.OS{}
	unixHandler := &schema.Unix{}

	pipeline, err := NewPipeline[*filesystem.Entry](
		location,
		validation.NewValidator(osHandler, validation.StrictnessFileOrDir),
		filesystem.NewReader(osHandler, unixHandler),
		formatters.NewNameOnlyFormatter[*filesystem.Entry](),
	)
	if err != nil {
		return nil, fmt.Errorf("(pipeline-default) %w", err)
	}

	if err := pipeline.SetFilter(filters.NewDotFilesFilter[*filesystem.Entry]()); err != nil {
		return nil, fmt.Errorf("(pipeline-default) %w", err)
	}

	if err := pipeline.SetSorter(sorters.NewTimeSorter[*filesystem.Entry](sorters.ByCreated, false)); err != nil {
		return nil, fmt.Errorf("(pipeline-default) %w", err)
	}

	return pipeline, nil
}
