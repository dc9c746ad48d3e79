package ini

import (
	"fmt"
	"strings"
)

// Section is a case-insensitive mapping from key name to Value. Keys are
// normalized to lowercase on every operation; original casing is not
// retained. Keys iterate in insertion order so that saved output is
// deterministic.
type Section struct {
	values map[string]*Value
	order  []string
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{values: make(map[string]*Value)}
}

func (s *Section) init() {
	if s.values == nil {
		s.values = make(map[string]*Value)
	}
}

// Value returns the value cell for key, creating an empty one if absent.
// This is the mutable access path; use Lookup for access that fails on
// absence instead of healing it.
func (s *Section) Value(key string) *Value {
	s.init()
	key = strings.ToLower(key)
	v, ok := s.values[key]
	if !ok {
		v = NewValue()
		s.values[key] = v
		s.order = append(s.order, key)
	}
	return v
}

// Lookup returns the value cell for key, or ErrKeyNotFound if absent.
func (s *Section) Lookup(key string) (*Value, error) {
	v, ok := s.values[strings.ToLower(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Get returns the first element stored under key, or defaultValue when the
// key is absent or holds no elements. It never fails.
func (s *Section) Get(key, defaultValue string) string {
	v, ok := s.values[strings.ToLower(key)]
	if !ok || v.Len() == 0 {
		return defaultValue
	}
	return v.values[0]
}

// GetStrings returns a copy of the elements stored under key, or defaultValue
// when the key is absent. A present key with no elements returns an empty
// slice, not the default.
func (s *Section) GetStrings(key string, defaultValue []string) []string {
	v, ok := s.values[strings.ToLower(key)]
	if !ok {
		return defaultValue
	}
	return v.Strings()
}

// Set stores a single element under key, replacing any previous contents.
func (s *Section) Set(key, value string) {
	s.Value(key).Set(value)
}

// SetStrings stores the given elements under key, replacing any previous
// contents.
func (s *Section) SetStrings(key string, values []string) {
	s.Value(key).Set(values...)
}

// RemoveKey deletes key and reports whether it was present.
func (s *Section) RemoveKey(key string) bool {
	key = strings.ToLower(key)
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all keys. The section itself remains.
func (s *Section) Clear() {
	s.values = make(map[string]*Value)
	s.order = nil
}

// HasKey reports whether key is present.
func (s *Section) HasKey(key string) bool {
	_, ok := s.values[strings.ToLower(key)]
	return ok
}

// KeyCount returns the number of keys.
func (s *Section) KeyCount() int { return len(s.values) }

// Keys returns the key names in insertion order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.order...)
}

// toMap renders the section for struct scanning: single-element values as
// string, multi-element values as []string, empty values as "".
func (s *Section) toMap() map[string]any {
	m := make(map[string]any, len(s.values))
	for key, v := range s.values {
		switch {
		case v.Len() == 0:
			m[key] = ""
		case v.IsMulti():
			m[key] = v.Strings()
		default:
			m[key] = v.values[0]
		}
	}
	return m
}

func (s *Section) clone() *Section {
	c := NewSection()
	c.order = append([]string(nil), s.order...)
	for key, v := range s.values {
		c.values[key] = v.clone()
	}
	return c
}
