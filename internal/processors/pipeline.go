// Package processors provides the [Pipeline], which sequences the stages of a
// listing: a [schema.Validator], a [schema.Reader], any [schema.Filter] and
// [schema.Sorter] stages and a [schema.Formatter].
package processors

import (
	"fmt"
	"reflect"

	"github.com/desertwitch/lst/internal/schema"
)

// Pipeline is the principal orchestrator of a listing. It owns a location, a
// buffer of [T] and one instance of each stage, which it runs in fixed order
// on every call of [Pipeline.Generate]:
//
//	validate -> read -> filter(s) -> sort(s) -> format
//
// During execution, the pipeline exits on the first failed stage and returns
// its error, without any partial output. Nothing is cached between calls.
//
// A Pipeline is not safe for concurrent use; it is meant to be owned and
// called by a single goroutine.
type Pipeline[T any] struct {
	location string
	buffer   []T

	validator schema.Validator
	reader    schema.Reader[T]
	filters   []schema.Filter[T]
	sorters   []schema.Sorter[T]
	formatter schema.Formatter[T]
}

// NewPipeline returns a pointer to a new [Pipeline] for the given location,
// with no [schema.Filter] or [schema.Sorter] stages configured.
func NewPipeline[T any](location string, validator schema.Validator, reader schema.Reader[T], formatter schema.Formatter[T]) (*Pipeline[T], error) {
	if location == "" {
		return nil, fmt.Errorf("(pipeline) %w", ErrEmptyLocation)
	}

	if isNilStage(validator) || isNilStage(reader) || isNilStage(formatter) {
		return nil, fmt.Errorf("(pipeline) %w", ErrNilStage)
	}

	return &Pipeline[T]{
		location:  location,
		validator: validator,
		reader:    reader,
		formatter: formatter,
	}, nil
}

// Location returns the current location of the [Pipeline].
func (p *Pipeline[T]) Location() string {
	return p.location
}

// SetLocation replaces the location of the [Pipeline]. Any previously read
// elements are discarded, as they belong to the old location.
func (p *Pipeline[T]) SetLocation(location string) error {
	if location == "" {
		return fmt.Errorf("(pipeline) %w", ErrEmptyLocation)
	}

	p.location = location
	p.clearBuffer()

	return nil
}

// SetValidator replaces the [schema.Validator] of the [Pipeline].
func (p *Pipeline[T]) SetValidator(validator schema.Validator) error {
	if isNilStage(validator) {
		return fmt.Errorf("(pipeline) %w", ErrNilStage)
	}
	p.validator = validator

	return nil
}

// SetReader replaces the [schema.Reader] of the [Pipeline].
func (p *Pipeline[T]) SetReader(reader schema.Reader[T]) error {
	if isNilStage(reader) {
		return fmt.Errorf("(pipeline) %w", ErrNilStage)
	}
	p.reader = reader

	return nil
}

// SetFormatter replaces the [schema.Formatter] of the [Pipeline].
func (p *Pipeline[T]) SetFormatter(formatter schema.Formatter[T]) error {
	if isNilStage(formatter) {
		return fmt.Errorf("(pipeline) %w", ErrNilStage)
	}
	p.formatter = formatter

	return nil
}

// SetFilter replaces all [schema.Filter] stages with the given one.
func (p *Pipeline[T]) SetFilter(filter schema.Filter[T]) error {
	if isNilStage(filter) {
		return fmt.Errorf("(pipeline) %w", ErrNilStage)
	}
	p.filters = []schema.Filter[T]{filter}

	return nil
}

// AddFilter appends a [schema.Filter] to the end of the filter chain.
func (p *Pipeline[T]) AddFilter(filter schema.Filter[T]) error {
	if isNilStage(filter) {
		return fmt.Errorf("(pipeline) %w", ErrNilStage)
	}
	p.filters = append(p.filters, filter)

	return nil
}

// ClearFilters removes all [schema.Filter] stages.
func (p *Pipeline[T]) ClearFilters() {
	p.filters = nil
}

// Filters returns a copy of the filter chain, in order of execution.
func (p *Pipeline[T]) Filters() []schema.Filter[T] {
	return append([]schema.Filter[T](nil), p.filters...)
}

// SetSorter replaces all [schema.Sorter] stages with the given one.
func (p *Pipeline[T]) SetSorter(sorter schema.Sorter[T]) error {
	if isNilStage(sorter) {
		return fmt.Errorf("(pipeline) %w", ErrNilStage)
	}
	p.sorters = []schema.Sorter[T]{sorter}

	return nil
}

// AddSorter appends a [schema.Sorter] to the end of the sorter chain.
func (p *Pipeline[T]) AddSorter(sorter schema.Sorter[T]) error {
	if isNilStage(sorter) {
		return fmt.Errorf("(pipeline) %w", ErrNilStage)
	}
	p.sorters = append(p.sorters, sorter)

	return nil
}

// ClearSorters removes all [schema.Sorter] stages.
func (p *Pipeline[T]) ClearSorters() {
	p.sorters = nil
}

// Sorters returns a copy of the sorter chain, in order of execution.
func (p *Pipeline[T]) Sorters() []schema.Sorter[T] {
	return append([]schema.Sorter[T](nil), p.sorters...)
}

// Generate runs all stages in order on the current location and returns the
// formatted output. The first failed stage aborts the run with its error.
func (p *Pipeline[T]) Generate() (string, error) {
	if err := p.validator.Validate(p.location); err != nil {
		return "", fmt.Errorf("(pipeline-validate) %w", err)
	}

	p.clearBuffer()

	buffer, err := p.reader.Read(p.location, p.buffer)
	if err != nil {
		p.clearBuffer()

		return "", fmt.Errorf("(pipeline-read) %w", err)
	}
	p.buffer = buffer

	for _, filter := range p.filters {
		filtered, err := filter.Filter(p.buffer)
		if err != nil {
			p.clearBuffer()

			return "", fmt.Errorf("(pipeline-filter) %w", err)
		}
		p.buffer = filtered
	}

	for _, sorter := range p.sorters {
		if err := sorter.Sort(p.buffer); err != nil {
			p.clearBuffer()

			return "", fmt.Errorf("(pipeline-sort) %w", err)
		}
	}

	output, err := p.formatter.Format(p.buffer)
	if err != nil {
		p.clearBuffer()

		return "", fmt.Errorf("(pipeline-format) %w", err)
	}

	return output, nil
}

// clearBuffer empties the buffer, keeping its capacity but not retaining
// references to any of the previously read elements.
func (p *Pipeline[T]) clearBuffer() {
	clear(p.buffer[:cap(p.buffer)])
	p.buffer = p.buffer[:0]
}

// isNilStage reports whether a stage is nil, including a nil pointer (or other
// nilable value) wrapped in a non-nil interface.
func isNilStage(stage any) bool {
	if stage == nil {
		return true
	}

	v := reflect.ValueOf(stage)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
