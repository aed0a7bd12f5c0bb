package filesystem

import (
	"fmt"
	"time"

	"github.com/desertwitch/lst/internal/schema"
)

// Entry is the filesystem implementation of a [schema.DetailedEntry]. It only
// records the name and path of a filesystem object; all metadata is queried
// from the filesystem on request and is never cached, so that an [Entry] stays
// immutable after having been produced by the [Reader].
//
// Entries are meant to be passed by reference (pointer).
type Entry struct {
	name        string
	path        string
	unixHandler unixProvider
}

// NewEntry returns a pointer to a new [Entry] for the object at path, which
// is displayed as name.
func NewEntry(name string, path string, unixHandler unixProvider) *Entry {
	return &Entry{
		name:        name,
		path:        path,
		unixHandler: unixHandler,
	}
}

// GetName returns the display name of the [Entry].
func (e *Entry) GetName() string {
	return e.name
}

// GetPath returns the full path of the [Entry].
func (e *Entry) GetPath() string {
	return e.path
}

// Metadata queries the current [schema.Metadata] of the [Entry].
func (e *Entry) Metadata() (*schema.Metadata, error) {
	if e == nil {
		return nil, fmt.Errorf("(fs-entry) %w", ErrNilEntry)
	}

	metadata, err := getMetadata(e.path, e.unixHandler)
	if err != nil {
		return nil, fmt.Errorf("(fs-entry) %s: %w", e.path, err)
	}

	return metadata, nil
}

// Kind returns the [schema.Kind] of the [Entry]. A symbolic link is reported
// as such and is not followed.
func (e *Entry) Kind() (schema.Kind, error) {
	metadata, err := e.Metadata()
	if err != nil {
		return schema.KindOther, err
	}

	return metadata.Kind, nil
}

// Size returns the apparent size of the [Entry] in bytes.
func (e *Entry) Size() (uint64, error) {
	metadata, err := e.Metadata()
	if err != nil {
		return 0, err
	}

	return metadata.Size, nil
}

// CreatedAt returns the creation (birth) time of the [Entry]. It returns
// [ErrNoCreationTime] if the filesystem does not record one.
func (e *Entry) CreatedAt() (time.Time, error) {
	metadata, err := e.Metadata()
	if err != nil {
		return time.Time{}, err
	}

	if !metadata.HasCreatedAt {
		return time.Time{}, fmt.Errorf("(fs-entry) %s: %w", e.path, ErrNoCreationTime)
	}

	return metadata.CreatedAt, nil
}

// ModifiedAt returns the last modification time of the [Entry].
func (e *Entry) ModifiedAt() (time.Time, error) {
	metadata, err := e.Metadata()
	if err != nil {
		return time.Time{}, err
	}

	return metadata.ModifiedAt, nil
}
