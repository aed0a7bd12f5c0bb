package schema

import (
	"io/fs"
	"time"
)

// Kind represents the type of a filesystem object.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode derives the [Kind] from a [fs.FileMode].
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// Metadata is a point-in-time snapshot of the metadata of a filesystem
// object. CreatedAt is only meaningful when HasCreatedAt is set, as not all
// filesystems record a creation (birth) time.
type Metadata struct {
	Kind         Kind
	Perms        uint32
	Size         uint64
	ModifiedAt   time.Time
	CreatedAt    time.Time
	HasCreatedAt bool
}
