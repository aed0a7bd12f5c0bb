package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

// Reader is the principal implementation of a filesystem-backed
// [schema.Reader], producing [Entry] elements.
//
// A directory location is resolved into one [Entry] per immediate child,
// without recursion. Any other location is resolved into its own [Entry], as
// found in a listing of its parent directory.
type Reader struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewReader returns a pointer to a new [Reader].
func NewReader(osHandler osProvider, unixHandler unixProvider) *Reader {
	return &Reader{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// Read appends the entries found at location to the buffer and returns the
// extended buffer. The order of the appended entries is the order in which
// the directory listing reported them.
//
// Entries which fail to be read during a listing (e.g. having vanished in the
// meantime) are skipped. Failing to list the directory (or the parent
// directory in case of a file location) is returned as [ErrReadDirectory].
func (r *Reader) Read(location string, buffer []*Entry) ([]*Entry, error) {
	info, err := r.osHandler.Stat(location)
	if err != nil {
		return buffer, fmt.Errorf("(fs-read) %w: %w", ErrReadDirectory, err)
	}

	if info.IsDir() {
		return r.readDirectory(location, buffer)
	}

	return r.readSingle(location, buffer)
}

func (r *Reader) readDirectory(location string, buffer []*Entry) ([]*Entry, error) {
	dirEntries, err := r.listDirectory(location)
	if err != nil {
		return buffer, err
	}

	for _, d := range dirEntries {
		if _, err := d.Info(); err != nil {
			continue
		}

		buffer = append(buffer, NewEntry(d.Name(), childOf(location, d.Name()), r.unixHandler))
	}

	return buffer, nil
}

func (r *Reader) readSingle(location string, buffer []*Entry) ([]*Entry, error) {
	name := filepath.Base(location)

	dirEntries, err := r.listDirectory(parentOf(location))
	if err != nil {
		return buffer, err
	}

	for _, d := range dirEntries {
		if d.Name() != name {
			continue
		}

		if _, err := d.Info(); err != nil {
			break
		}

		return append(buffer, NewEntry(name, location, r.unixHandler)), nil
	}

	return buffer, nil
}

// parentOf returns the directory part of location. It is not cleaned, as
// lexically resolving ".." would disregard symbolic links along the path.
func parentOf(location string) string {
	parent := strings.TrimSuffix(location, filepath.Base(location))
	if parent == "" {
		return "."
	}

	if trimmed := strings.TrimRight(parent, string(filepath.Separator)); trimmed != "" {
		return trimmed
	}

	return string(filepath.Separator)
}

// childOf joins a directory location and a name, without cleaning the result
// for the same reason as [parentOf].
func childOf(location string, name string) string {
	if strings.HasSuffix(location, string(filepath.Separator)) {
		return location + name
	}

	return location + string(filepath.Separator) + name
}

// listDirectory lists a directory, tolerating a failure midway through the
// listing as long as some elements were already read.
func (r *Reader) listDirectory(path string) ([]os.DirEntry, error) {
	dirEntries, err := r.osHandler.ReadDir(path)
	if err != nil && len(dirEntries) == 0 {
		return nil, fmt.Errorf("(fs-read) %w: %w", ErrReadDirectory, err)
	}

	return dirEntries, nil
}
