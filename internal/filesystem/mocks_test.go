package filesystem

import (
	"io/fs"
	"os"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

type mockOsProvider struct {
	mock.Mock
}

func (m *mockOsProvider) ReadDir(name string) ([]os.DirEntry, error) {
	args := m.Called(name)
	if entries := args.Get(0); entries != nil {
		return entries.([]os.DirEntry), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}

func (m *mockOsProvider) Stat(name string) (os.FileInfo, error) {
	args := m.Called(name)
	if fi := args.Get(0); fi != nil {
		return fi.(os.FileInfo), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}

type mockUnixProvider struct {
	mock.Mock
}

func (m *mockUnixProvider) Statx(dirfd int, path string, flags int, mask int, stat *unix.Statx_t) error {
	args := m.Called(dirfd, path, flags, mask, stat)

	return args.Error(0)
}

type fakeFileInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeFileInfo) Sys() any           { return nil }

type fakeDirEntry struct {
	name    string
	mode    fs.FileMode
	infoErr error
}

func (f fakeDirEntry) Name() string      { return f.name }
func (f fakeDirEntry) IsDir() bool       { return f.mode.IsDir() }
func (f fakeDirEntry) Type() fs.FileMode { return f.mode.Type() }

func (f fakeDirEntry) Info() (fs.FileInfo, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}

	return fakeFileInfo{name: f.name, mode: f.mode}, nil
}
