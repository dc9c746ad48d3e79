package ini

import "errors"

var (
	// ErrFileNotFound is reported by Load when the file does not exist.
	// Other I/O failures are returned as wrapped errors.
	ErrFileNotFound = errors.New("ini file not found")

	// ErrSectionNotFound is reported by read-only section access. Mutable
	// access through File.Section never fails; it creates the section.
	ErrSectionNotFound = errors.New("section not found")

	// ErrKeyNotFound is reported by read-only key access. Mutable access
	// through Section.Value never fails; it creates an empty value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange is reported by positional access past the end of a
	// value's element sequence.
	ErrIndexOutOfRange = errors.New("value index out of range")

	// ErrConversion is reported when a stored string cannot be decoded as the
	// requested type, or a value of an unregistered type is encoded.
	ErrConversion = errors.New("value conversion failed")
)
