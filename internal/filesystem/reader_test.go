package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/lst/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryNames(entries []*Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.GetName())
	}

	return names
}

func TestRead_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.txt", ".hidden", "b.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), nil, 0o600))

	reader := NewReader(&schema.OS{}, &schema.Unix{})

	entries, err := reader.Read(dir, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.txt", ".hidden", "b.md", "sub"}, entryNames(entries))

	for _, e := range entries {
		assert.Equal(t, filepath.Join(dir, e.GetName()), e.GetPath())
	}
}

func TestRead_EmptyDirectory(t *testing.T) {
	t.Parallel()

	entries, err := NewReader(&schema.OS{}, &schema.Unix{}).Read(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRead_AppendsToBuffer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new"), nil, 0o600))

	existing := NewEntry("old", "/elsewhere/old", &schema.Unix{})

	entries, err := NewReader(&schema.OS{}, &schema.Unix{}).Read(dir, []*Entry{existing})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Same(t, existing, entries[0])
	assert.Equal(t, "new", entries[1].GetName())
}

func TestRead_SingleFile_Absolute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), nil, 0o600))

	entries, err := NewReader(&schema.OS{}, &schema.Unix{}).Read(file, nil)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "notes.txt", entries[0].GetName())
	assert.Equal(t, file, entries[0].GetPath())
}

func TestRead_SingleFile_Relative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	t.Chdir(dir)

	for _, location := range []string{"notes.txt", "./notes.txt"} {
		entries, err := NewReader(&schema.OS{}, &schema.Unix{}).Read(location, nil)
		require.NoError(t, err)

		require.Len(t, entries, 1, location)
		assert.Equal(t, "notes.txt", entries[0].GetName())
		assert.Equal(t, location, entries[0].GetPath())
	}
}

func TestRead_SingleFile_ThroughSymlinkedParent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cwd"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "other", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cwd", "notes.txt"), []byte("cwd"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other", "notes.txt"), []byte("other"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join(dir, "other", "deep"), filepath.Join(dir, "cwd", "link")))

	location := dir + "/cwd/link/../notes.txt"

	entries, err := NewReader(&schema.OS{}, &schema.Unix{}).Read(location, nil)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "notes.txt", entries[0].GetName())
	assert.Equal(t, location, entries[0].GetPath())

	content, err := os.ReadFile(entries[0].GetPath())
	require.NoError(t, err)
	assert.Equal(t, "other", string(content))
}

func TestRead_Directory_ThroughSymlinkedParent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cwd"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "other", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other", "only-in-other"), []byte("other"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join(dir, "other", "deep"), filepath.Join(dir, "cwd", "link")))

	location := dir + "/cwd/link/.."

	entries, err := NewReader(&schema.OS{}, &schema.Unix{}).Read(location, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"deep", "only-in-other"}, entryNames(entries))

	for _, e := range entries {
		assert.Equal(t, location+"/"+e.GetName(), e.GetPath())

		_, err := os.Lstat(e.GetPath())
		require.NoError(t, err, e.GetPath())
	}
}

func TestChildOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/data/a", childOf("/data", "a"))
	assert.Equal(t, "/data/a", childOf("/data/", "a"))
	assert.Equal(t, "/a", childOf("/", "a"))
	assert.Equal(t, "./a", childOf(".", "a"))
	assert.Equal(t, "link/../a", childOf("link/..", "a"))
}

func TestParentOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location string
		want     string
	}{
		{"notes.txt", "."},
		{"./notes.txt", "."},
		{"/notes.txt", "/"},
		{"/data/notes.txt", "/data"},
		{"link/../notes.txt", "link/.."},
		{"a//b.txt", "a"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parentOf(tt.location), tt.location)
	}
}

func TestRead_NotExist(t *testing.T) {
	t.Parallel()

	entries, err := NewReader(&schema.OS{}, &schema.Unix{}).Read("/definitely/does/not/exist", nil)
	require.ErrorIs(t, err, ErrReadDirectory)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, entries)
}

func TestRead_SkipsFailedEntries(t *testing.T) {
	t.Parallel()

	osProv := &mockOsProvider{}
	unixProv := &mockUnixProvider{}

	osProv.On("Stat", "/data").Return(fakeFileInfo{name: "data", mode: fs.ModeDir}, nil).Once()
	osProv.On("ReadDir", "/data").Return([]os.DirEntry{
		fakeDirEntry{name: "kept"},
		fakeDirEntry{name: "vanished", infoErr: fs.ErrNotExist},
		fakeDirEntry{name: "dir", mode: fs.ModeDir},
	}, nil).Once()

	entries, err := NewReader(osProv, unixProv).Read("/data", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"kept", "dir"}, entryNames(entries))
	assert.Equal(t, "/data/dir", entries[1].GetPath())

	osProv.AssertExpectations(t)
	unixProv.AssertExpectations(t)
}

func TestRead_PartialListing(t *testing.T) {
	t.Parallel()

	osProv := &mockOsProvider{}

	osProv.On("Stat", "/data").Return(fakeFileInfo{name: "data", mode: fs.ModeDir}, nil).Once()
	osProv.On("ReadDir", "/data").Return([]os.DirEntry{
		fakeDirEntry{name: "first"},
	}, errors.New("readdirent: input/output error")).Once()

	entries, err := NewReader(osProv, &mockUnixProvider{}).Read("/data", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, entryNames(entries))

	osProv.AssertExpectations(t)
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
		setup    func(osProv *mockOsProvider)
	}{
		{
			name:     "Fail_Stat",
			location: "/data",
			setup: func(osProv *mockOsProvider) {
				osProv.On("Stat", "/data").Return(nil, fs.ErrPermission).Once()
			},
		},
		{
			name:     "Fail_ReadDir",
			location: "/data",
			setup: func(osProv *mockOsProvider) {
				osProv.On("Stat", "/data").Return(fakeFileInfo{name: "data", mode: fs.ModeDir}, nil).Once()
				osProv.On("ReadDir", "/data").Return(nil, fs.ErrPermission).Once()
			},
		},
		{
			name:     "Fail_ReadParent",
			location: "/data/file.txt",
			setup: func(osProv *mockOsProvider) {
				osProv.On("Stat", "/data/file.txt").Return(fakeFileInfo{name: "file.txt"}, nil).Once()
				osProv.On("ReadDir", "/data").Return(nil, fs.ErrPermission).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			osProv := &mockOsProvider{}
			tt.setup(osProv)

			buffer := []*Entry{NewEntry("old", "/old", nil)}

			entries, err := NewReader(osProv, &mockUnixProvider{}).Read(tt.location, buffer)
			require.ErrorIs(t, err, ErrReadDirectory)
			require.ErrorIs(t, err, fs.ErrPermission)
			assert.Equal(t, []string{"old"}, entryNames(entries))

			osProv.AssertExpectations(t)
		})
	}
}

func TestRead_SingleFile_GoneFromParent(t *testing.T) {
	t.Parallel()

	osProv := &mockOsProvider{}

	osProv.On("Stat", "/data/file.txt").Return(fakeFileInfo{name: "file.txt"}, nil).Once()
	osProv.On("ReadDir", "/data").Return([]os.DirEntry{
		fakeDirEntry{name: "other.txt"},
	}, nil).Once()

	entries, err := NewReader(osProv, &mockUnixProvider{}).Read("/data/file.txt", nil)
	require.NoError(t, err)
	assert.Empty(t, entries)

	osProv.AssertExpectations(t)
}
