// Package formatters provides [schema.Formatter] implementations, which render
// a pipeline's final buffer into a string. Formatters never modify the buffer.
package formatters
