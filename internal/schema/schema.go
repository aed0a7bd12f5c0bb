// Package schema provides the principal schematics for all other packages. It
// defines the entry contracts flowing through a listing pipeline, the stage
// interfaces of that pipeline and provides implementations for handling
// (Unix-based) operating system syscalls. The package serves as a foundational
// layer for filesystem interactions throughout the codebase.
package schema
