package ini

import (
	"errors"
	"fmt"
	"sort"
)

// ValidatorFunc validates a fully loaded *File and returns an error when the
// configuration is unacceptable.
type ValidatorFunc func(f *File) error

// Builder provides a fluent interface for assembling a File from defaults, a
// file on disk, environment variables, and command-line arguments, in that
// order of increasing precedence.
type Builder struct {
	file       *File
	path       string
	defaults   map[string]map[string]string
	envPrefix  string
	loadEnv    bool
	args       []string
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new builder with no sources configured.
func NewBuilder() *Builder {
	return &Builder{file: New()}
}

// WithDefaults sets baseline values, keyed by section then key. Defaults are
// applied first, so every other source overrides them.
func (b *Builder) WithDefaults(defaults map[string]map[string]string) *Builder {
	b.defaults = defaults
	return b
}

// WithFile sets the file to load. A file that does not exist is not fatal;
// Build reports it through its error result while still returning the File.
func (b *Builder) WithFile(path string) *Builder {
	b.path = path
	return b
}

// WithEnvPrefix enables environment variable overrides under the given prefix.
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	b.loadEnv = true
	return b
}

// WithArgs sets command-line arguments to apply as the final override layer.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithValidator adds a validation function run at the end of Build. Multiple
// validators execute in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles the File. On success it returns the file and, when the
// configured file was missing, ErrFileNotFound as a non-fatal error result.
func (b *Builder) Build() (*File, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Defaults first. Sorted application keeps section and key order
	// deterministic for a later Save.
	sections := make([]string, 0, len(b.defaults))
	for section := range b.defaults {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	for _, section := range sections {
		keys := make([]string, 0, len(b.defaults[section]))
		for key := range b.defaults[section] {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			b.file.Set(section, key, b.defaults[section][key])
		}
	}

	var loadErr error
	if b.path != "" {
		if err := b.file.Load(b.path); err != nil {
			if !errors.Is(err, ErrFileNotFound) {
				return nil, err
			}
			loadErr = err
		}
	}

	if b.loadEnv {
		if err := b.file.LoadEnv(b.envPrefix); err != nil {
			return nil, err
		}
	}

	if len(b.args) > 0 {
		if err := b.file.LoadArgs(b.args); err != nil {
			return nil, err
		}
	}

	for _, validator := range b.validators {
		if err := validator(b.file); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrFileNotFound or nil
	return b.file, loadErr
}

// MustBuild is like Build but panics on error. A missing configuration file
// is not fatal; the application proceeds with defaults and overrides.
func (b *Builder) MustBuild() *File {
	f, err := b.Build()
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		panic(fmt.Sprintf("ini build failed: %v", err))
	}
	return f
}

// BuildAndScan builds the File and decodes its entire contents into target.
func (b *Builder) BuildAndScan(target any) error {
	f, err := b.Build()
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		return err
	}
	if scanErr := f.ScanAll(target); scanErr != nil {
		return fmt.Errorf("failed to scan final config into target: %w", scanErr)
	}
	// ErrFileNotFound or nil
	return err
}
