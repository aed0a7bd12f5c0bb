package formatters

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertwitch/lst/internal/schema"
	"github.com/zeebo/blake3"
)

const noChecksum = "-"

type osProvider interface {
	Open(name string) (*os.File, error)
}

// ChecksumFormatter renders one line per entry, holding the BLAKE3 checksum of
// its content followed by two spaces and its display name. Entries that are
// not regular files have "-" in place of the checksum.
type ChecksumFormatter[T schema.DetailedEntry] struct {
	osHandler osProvider
}

// NewChecksumFormatter returns a pointer to a new [ChecksumFormatter].
func NewChecksumFormatter[T schema.DetailedEntry](osHandler osProvider) *ChecksumFormatter[T] {
	return &ChecksumFormatter[T]{
		osHandler: osHandler,
	}
}

// Format renders the checksum line of each entry. Any failure to establish
// the kind of an entry or to read its content is returned as [ErrFormat].
func (f *ChecksumFormatter[T]) Format(buffer []T) (string, error) {
	var sb strings.Builder

	for _, e := range buffer {
		sum, err := f.checksum(e)
		if err != nil {
			return "", fmt.Errorf("(formatters-checksum) %w: %s: %w", ErrFormat, e.GetName(), err)
		}

		sb.WriteString(sum)
		sb.WriteString("  ")
		sb.WriteString(e.GetName())
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func (f *ChecksumFormatter[T]) checksum(e T) (string, error) {
	kind, err := e.Kind()
	if err != nil {
		return "", err
	}

	if kind != schema.KindFile {
		return noChecksum, nil
	}

	file, err := f.osHandler.Open(e.GetPath())
	if err != nil {
		return "", fmt.Errorf("failed to open: %w", err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
