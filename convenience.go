package ini

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Quick creates a File from a path, environment prefix, and argument list
// with a single call, using the standard precedence (file, then env, then
// args). A missing file is reported as ErrFileNotFound but still yields a
// usable File.
func Quick(path, envPrefix string, args []string) (*File, error) {
	f := New()

	var loadErr error
	if path != "" {
		if err := f.Load(path); err != nil {
			if !errors.Is(err, ErrFileNotFound) {
				return nil, err
			}
			loadErr = err
		}
	}
	if envPrefix != "" {
		if err := f.LoadEnv(envPrefix); err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		if err := f.LoadArgs(args); err != nil {
			return nil, err
		}
	}
	return f, loadErr
}

// MustQuick is like Quick but panics on error. A missing file is tolerated.
func MustQuick(path, envPrefix string, args []string) *File {
	f, err := Quick(path, envPrefix, args)
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		panic(fmt.Sprintf("ini initialization failed: %v", err))
	}
	return f
}

// Validate checks that every required "section.key" path (just "key" for the
// global section) exists and holds at least one element.
func (f *File) Validate(required ...string) error {
	var missing []string
	for _, path := range required {
		section, key := splitPath(path)
		sec, ok := f.sections[strings.ToLower(section)]
		if !ok {
			missing = append(missing, path)
			continue
		}
		v, ok := sec.values[strings.ToLower(key)]
		if !ok || v.Len() == 0 {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Clone creates a deep copy of the file. No section or value is shared with
// the original.
func (f *File) Clone() *File {
	c := New()
	c.order = append([]string(nil), f.order...)
	for name, sec := range f.sections {
		c.sections[name] = sec.clone()
	}
	return c
}

// DumpTOML renders the document as TOML: the global section's keys at the top
// level, named sections as tables, multi-element values as arrays. Useful for
// debugging and for feeding tools that read TOML.
func (f *File) DumpTOML(w io.Writer) error {
	data := make(map[string]any, len(f.sections))
	for name, sec := range f.sections {
		m := sec.toMap()
		if name == "" {
			for key, value := range m {
				data[key] = value
			}
			continue
		}
		data[name] = m
	}
	return toml.NewEncoder(w).Encode(data)
}

// Dump writes the document to stdout in TOML format.
func (f *File) Dump() error {
	return f.DumpTOML(os.Stdout)
}
