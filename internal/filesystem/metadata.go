package filesystem

import (
	"fmt"
	"time"

	"github.com/desertwitch/lst/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	unixBasePerms = 0o777
	statxMask     = unix.STATX_BASIC_STATS | unix.STATX_BTIME
)

type unixProvider interface {
	Statx(dirfd int, path string, flags int, mask int, stat *unix.Statx_t) error
}

// getMetadata queries the metadata of the object at path, without following
// a final symbolic link.
func getMetadata(path string, unixHandler unixProvider) (*schema.Metadata, error) {
	var stat unix.Statx_t

	if err := unixHandler.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, statxMask, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to statx: %w", err)
	}

	metadata := &schema.Metadata{
		Kind:       kindFromStatxMode(uint32(stat.Mode)),
		Perms:      uint32(stat.Mode) & unixBasePerms,
		Size:       stat.Size,
		ModifiedAt: statxTime(stat.Mtime),
	}

	if stat.Mask&unix.STATX_BTIME != 0 {
		metadata.CreatedAt = statxTime(stat.Btime)
		metadata.HasCreatedAt = true
	}

	return metadata, nil
}

func kindFromStatxMode(mode uint32) schema.Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return schema.KindFile
	case unix.S_IFDIR:
		return schema.KindDir
	case unix.S_IFLNK:
		return schema.KindSymlink
	default:
		return schema.KindOther
	}
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
