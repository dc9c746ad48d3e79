package ini

import (
	"fmt"
	"strings"
)

// File is the in-memory representation of an INI dataset: a case-insensitive
// mapping from section name to Section. Sections iterate in insertion order.
// The empty string is a valid section name and holds keys that appear before
// any section header.
//
// A File owns its sections exclusively; sections and values are never shared
// between files.
type File struct {
	sections map[string]*Section
	order    []string
}

// New creates an empty File.
func New() *File {
	return &File{sections: make(map[string]*Section)}
}

func (f *File) init() {
	if f.sections == nil {
		f.sections = make(map[string]*Section)
	}
}

// Section returns the named section, creating an empty one if absent.
// This is the mutable access path; use Lookup for access that fails on
// absence instead of healing it.
func (f *File) Section(name string) *Section {
	f.init()
	name = strings.ToLower(name)
	s, ok := f.sections[name]
	if !ok {
		s = NewSection()
		f.sections[name] = s
		f.order = append(f.order, name)
	}
	return s
}

// Lookup returns the named section, or ErrSectionNotFound if absent.
func (f *File) Lookup(name string) (*Section, error) {
	s, ok := f.sections[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
	return s, nil
}

// Get returns the first element stored under section/key, or defaultValue
// when either is absent. It never fails.
func (f *File) Get(section, key, defaultValue string) string {
	s, ok := f.sections[strings.ToLower(section)]
	if !ok {
		return defaultValue
	}
	return s.Get(key, defaultValue)
}

// GetStrings returns a copy of the elements stored under section/key, or
// defaultValue when either is absent.
func (f *File) GetStrings(section, key string, defaultValue []string) []string {
	s, ok := f.sections[strings.ToLower(section)]
	if !ok {
		return defaultValue
	}
	return s.GetStrings(key, defaultValue)
}

// Set stores a single element under section/key, creating the section as
// needed and replacing any previous contents of the key.
func (f *File) Set(section, key, value string) {
	f.Section(section).Set(key, value)
}

// SetStrings stores the given elements under section/key, creating the
// section as needed and replacing any previous contents of the key.
func (f *File) SetStrings(section, key string, values []string) {
	f.Section(section).SetStrings(key, values)
}

// AddSection creates the named section and reports whether it was newly
// created; it returns false when the section already existed.
func (f *File) AddSection(name string) bool {
	f.init()
	name = strings.ToLower(name)
	if _, ok := f.sections[name]; ok {
		return false
	}
	f.sections[name] = NewSection()
	f.order = append(f.order, name)
	return true
}

// RemoveSection deletes the named section and reports whether it was present.
func (f *File) RemoveSection(name string) bool {
	name = strings.ToLower(name)
	if _, ok := f.sections[name]; !ok {
		return false
	}
	delete(f.sections, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true
}

// RemoveKey deletes section/key and reports whether the key was present.
func (f *File) RemoveKey(section, key string) bool {
	s, ok := f.sections[strings.ToLower(section)]
	if !ok {
		return false
	}
	return s.RemoveKey(key)
}

// Clear removes every section.
func (f *File) Clear() {
	f.sections = make(map[string]*Section)
	f.order = nil
}

// ClearSection removes all keys from the named section, creating it empty if
// absent. The section remains present afterwards.
func (f *File) ClearSection(name string) {
	f.Section(name).Clear()
}

// HasSection reports whether the named section is present.
func (f *File) HasSection(name string) bool {
	_, ok := f.sections[strings.ToLower(name)]
	return ok
}

// HasKey reports whether section/key is present.
func (f *File) HasKey(section, key string) bool {
	s, ok := f.sections[strings.ToLower(section)]
	if !ok {
		return false
	}
	return s.HasKey(key)
}

// SectionCount returns the number of sections.
func (f *File) SectionCount() int { return len(f.sections) }

// KeyCount returns the number of keys in the named section, or 0 when the
// section is absent.
func (f *File) KeyCount(section string) int {
	s, ok := f.sections[strings.ToLower(section)]
	if !ok {
		return 0
	}
	return s.KeyCount()
}

// Sections returns the section names in insertion order.
func (f *File) Sections() []string {
	return append([]string(nil), f.order...)
}
