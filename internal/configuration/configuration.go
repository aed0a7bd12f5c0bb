// Package configuration provides the reading of listing options from
// configuration files and the environment.
package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	KeyAll        = "LST_ALL"
	KeySort       = "LST_SORT"
	KeyReverse    = "LST_REVERSE"
	KeyFormat     = "LST_FORMAT"
	KeyValidation = "LST_VALIDATION"
	KeyIgnore     = "LST_IGNORE"
)

const (
	SortCreated  = "ctime"
	SortModified = "mtime"
	SortName     = "name"
	SortNone     = "none"
)

const (
	FormatName     = "name"
	FormatDetailed = "detailed"
	FormatYAML     = "yaml"
	FormatChecksum = "checksum"
)

const (
	ValidationStrict = "strict"
	ValidationExists = "exists"
)

//nolint:gochecknoglobals
var (
	SortModes       = []string{SortCreated, SortModified, SortName, SortNone}
	FormatModes     = []string{FormatName, FormatDetailed, FormatYAML, FormatChecksum}
	ValidationModes = []string{ValidationStrict, ValidationExists}
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Options are the user-facing options of a listing.
type Options struct {
	ShowAll    bool
	Sort       string
	Reverse    bool
	Format     string
	Validation string
	Ignore     []string
}

// DefaultOptions returns the [Options] used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ShowAll:    false,
		Sort:       SortCreated,
		Reverse:    false,
		Format:     FormatName,
		Validation: ValidationStrict,
	}
}

// Handler is the principal implementation for reading configuration.
type Handler struct {
	GenericHandler genericConfigProvider
	LookupEnv      func(key string) (string, bool)
}

// NewHandler returns a pointer to a new [Handler], which reads configuration
// through the given provider, overlaid by the process environment.
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
		LookupEnv:      os.LookupEnv,
	}
}

// DefaultConfigPath returns the path of the default configuration file.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lst", "lst.conf")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "lst", "lst.conf")
	}

	return filepath.Join(home, ".config", "lst", "lst.conf")
}

// ReadGeneric reads the given configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// Load reads the [Options] from the given configuration files, with the
// process environment taking precedence over them.
//
// Neither invalid values nor unreadable configuration files fail the loading.
// The [Options] are always usable, with defaults kept where needed, and the
// returned error describes everything that went wrong (invalid values wrap
// [ErrInvalidValue]). Values read before a failing file are kept.
func (c *Handler) Load(filenames ...string) (Options, error) {
	var errs []error

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		errs = append(errs, fmt.Errorf("(config) failed to read: %w", err))
	}

	if envMap == nil {
		envMap = make(map[string]string)
	}

	if c.LookupEnv != nil {
		for _, key := range []string{KeyAll, KeySort, KeyReverse, KeyFormat, KeyValidation, KeyIgnore} {
			if value, ok := c.LookupEnv(key); ok {
				envMap[key] = value
			}
		}
	}

	opts := DefaultOptions()

	if opts.ShowAll, err = c.MapKeyToBool(envMap, KeyAll, opts.ShowAll); err != nil {
		errs = append(errs, err)
	}

	if opts.Reverse, err = c.MapKeyToBool(envMap, KeyReverse, opts.Reverse); err != nil {
		errs = append(errs, err)
	}

	if opts.Sort, err = c.MapKeyToChoice(envMap, KeySort, SortModes, opts.Sort); err != nil {
		errs = append(errs, err)
	}

	if opts.Format, err = c.MapKeyToChoice(envMap, KeyFormat, FormatModes, opts.Format); err != nil {
		errs = append(errs, err)
	}

	if opts.Validation, err = c.MapKeyToChoice(envMap, KeyValidation, ValidationModes, opts.Validation); err != nil {
		errs = append(errs, err)
	}

	opts.Ignore = c.MapKeyToList(envMap, KeyIgnore)

	return opts, errors.Join(errs...)
}

// MapKeyToString returns the value of key, or an empty string if not set.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToBool returns the boolean value of key (yes/no, true/false, 1/0),
// or def if it is not set or invalid.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string, def bool) (bool, error) {
	value := strings.ToLower(c.MapKeyToString(envMap, key))

	switch value {
	case "":
		return def, nil
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return def, fmt.Errorf("(config) %w: %s=%q", ErrInvalidValue, key, value)
	}
}

// MapKeyToChoice returns the value of key if it is one of choices, or def if
// it is not set or invalid.
func (c *Handler) MapKeyToChoice(envMap map[string]string, key string, choices []string, def string) (string, error) {
	value := strings.ToLower(c.MapKeyToString(envMap, key))
	if value == "" {
		return def, nil
	}

	if !slices.Contains(choices, value) {
		return def, fmt.Errorf("(config) %w: %s=%q (want one of %s)", ErrInvalidValue, key, value, strings.Join(choices, ", "))
	}

	return value, nil
}

// MapKeyToList returns the comma-separated value of key as a list, omitting
// empty elements.
func (c *Handler) MapKeyToList(envMap map[string]string, key string) []string {
	return SplitList(c.MapKeyToString(envMap, key))
}

// SplitList splits a comma-separated value into a list, omitting empty
// elements. An empty value results in a nil list.
func SplitList(value string) []string {
	var list []string

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	return list
}
