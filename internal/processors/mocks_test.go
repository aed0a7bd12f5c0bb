package processors

import (
	"github.com/stretchr/testify/mock"
)

type fakeEntry struct {
	name string
	path string
}

func (e *fakeEntry) GetName() string { return e.name }
func (e *fakeEntry) GetPath() string { return e.path }

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) Validate(location string) error {
	args := m.Called(location)

	return args.Error(0)
}

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Read(location string, buffer []*fakeEntry) ([]*fakeEntry, error) {
	args := m.Called(location, buffer)
	if out := args.Get(0); out != nil {
		return out.([]*fakeEntry), args.Error(1) //nolint:forcetypeassert
	}

	return buffer, args.Error(1)
}

type mockFilter struct {
	mock.Mock
}

func (m *mockFilter) Filter(buffer []*fakeEntry) ([]*fakeEntry, error) {
	args := m.Called(buffer)
	if out := args.Get(0); out != nil {
		return out.([]*fakeEntry), args.Error(1) //nolint:forcetypeassert
	}

	return buffer, args.Error(1)
}

type mockSorter struct {
	mock.Mock
}

func (m *mockSorter) Sort(buffer []*fakeEntry) error {
	args := m.Called(buffer)

	return args.Error(0)
}

type mockFormatter struct {
	mock.Mock
}

func (m *mockFormatter) Format(buffer []*fakeEntry) (string, error) {
	args := m.Called(buffer)

	return args.String(0), args.Error(1)
}

// mapReader is a [schema.Reader] backed by an in-memory map of locations to
// the names of their entries.
type mapReader struct {
	dirs  map[string][]string
	reads int
}

func (r *mapReader) Read(location string, buffer []*fakeEntry) ([]*fakeEntry, error) {
	r.reads++

	for _, name := range r.dirs[location] {
		buffer = append(buffer, &fakeEntry{name: name, path: location + "/" + name})
	}

	return buffer, nil
}

type mapValidator struct {
	dirs map[string][]string
}

func (v *mapValidator) Validate(location string) error {
	if _, ok := v.dirs[location]; !ok {
		return errNotInMap
	}

	return nil
}

// pathFormatter renders the full paths of all entries, one per line.
type pathFormatter struct{}

func (pathFormatter) Format(buffer []*fakeEntry) (string, error) {
	out := ""
	for _, e := range buffer {
		out += e.path + "\n"
	}

	return out, nil
}
