// Package filters provides [schema.Filter] implementations, which remove
// elements from a pipeline's buffer.
//
// Filters run before any sorting, so removal does not preserve the relative
// order of the remaining elements: an element is removed by overwriting it
// with the last element and truncating the buffer.
package filters
