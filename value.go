package ini

import (
	"fmt"
	"strings"
	"time"
)

// Value is the ordered sequence of string elements stored for one key. An
// empty sequence is a valid state distinct from the key being absent. The
// zero Value is empty and ready to use.
type Value struct {
	values []string
}

// NewValue returns a Value holding the given elements in order.
func NewValue(values ...string) *Value {
	v := &Value{}
	if len(values) > 0 {
		v.values = append([]string(nil), values...)
	}
	return v
}

// Len returns the number of elements.
func (v *Value) Len() int { return len(v.values) }

// IsMulti reports whether the value holds more than one element.
func (v *Value) IsMulti() bool { return len(v.values) > 1 }

// String renders the value for display: the empty string, the single element,
// or the elements joined by ", ". The persisted form joins with a bare comma;
// see File.Save.
func (v *Value) String() string { return strings.Join(v.values, ", ") }

// Strings returns a copy of the element sequence. Mutating the returned slice
// does not affect the stored state.
func (v *Value) Strings() []string {
	if len(v.values) == 0 {
		return nil
	}
	return append([]string(nil), v.values...)
}

// Append adds one element at the end.
func (v *Value) Append(s string) { v.values = append(v.values, s) }

// Clear empties the sequence. The Value itself remains valid and, if owned by
// a Section, present under its key.
func (v *Value) Clear() { v.values = nil }

// Set replaces the contents with the given elements.
func (v *Value) Set(values ...string) {
	v.values = append([]string(nil), values...)
}

// At returns the element at position i, or ErrIndexOutOfRange.
func (v *Value) At(i int) (string, error) {
	if i < 0 || i >= len(v.values) {
		return "", fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(v.values))
	}
	return v.values[i], nil
}

// GetAs decodes the first element of v as T. An empty value or a failed
// decode reports ErrConversion.
func GetAs[T any](v *Value) (T, error) {
	if v.Len() == 0 {
		var zero T
		return zero, fmt.Errorf("%w: cannot decode empty value", ErrConversion)
	}
	return decodeString[T](v.values[0])
}

// GetSliceAs decodes every element of v as T, in order. The first element that
// fails to decode aborts the whole call with no partial result. The returned
// slice is a fresh allocation owned by the caller.
func GetSliceAs[T any](v *Value) ([]T, error) {
	out := make([]T, 0, v.Len())
	for _, s := range v.values {
		t, err := decodeString[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// SetAs replaces the contents of v with the encoding of val as a single
// element. Byte and rune slices are treated as text and stored as one string
// element; use SetSliceAs to store them element by element.
func SetAs[T any](v *Value, val T) error {
	switch s := any(val).(type) {
	case []byte:
		v.values = []string{string(s)}
		return nil
	case []rune:
		v.values = []string{string(s)}
		return nil
	}
	enc, err := encodeString(val)
	if err != nil {
		return err
	}
	v.values = []string{enc}
	return nil
}

// SetSliceAs replaces the contents of v with the encoding of every element of
// vals. The replacement is all-or-nothing: an encoding failure leaves v
// unchanged.
func SetSliceAs[T any](v *Value, vals []T) error {
	next := make([]string, 0, len(vals))
	for _, val := range vals {
		enc, err := encodeString(val)
		if err != nil {
			return err
		}
		next = append(next, enc)
	}
	v.values = next
	return nil
}

// Bool decodes the first element as a bool.
func (v *Value) Bool() (bool, error) { return GetAs[bool](v) }

// Int decodes the first element as an int.
func (v *Value) Int() (int, error) { return GetAs[int](v) }

// Int64 decodes the first element as an int64.
func (v *Value) Int64() (int64, error) { return GetAs[int64](v) }

// Float64 decodes the first element as a float64.
func (v *Value) Float64() (float64, error) { return GetAs[float64](v) }

// Rune decodes the first element as a single character.
func (v *Value) Rune() (rune, error) { return GetAs[rune](v) }

// Duration decodes the first element as a time.Duration.
func (v *Value) Duration() (time.Duration, error) { return GetAs[time.Duration](v) }

func (v *Value) clone() *Value {
	return NewValue(v.values...)
}
