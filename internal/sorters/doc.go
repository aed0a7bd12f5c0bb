// Package sorters provides [schema.Sorter] implementations, which reorder a
// pipeline's buffer in place. None of the sorters are stable.
package sorters
