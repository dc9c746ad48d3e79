package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const whitespace = " \t\r\n"

// Load reads the INI file at path and merges its contents into f: keys found
// in the file replace matching keys, other in-memory state is kept, so
// repeated loads layer on top of each other. A missing file reports
// ErrFileNotFound and other I/O failures a wrapped error. Malformed content
// never fails; lines that are not a section header or a key=value record are
// silently skipped.
func (f *File) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to read ini file '%s': %w", path, err)
	}
	f.parse(data)
	return nil
}

// UnmarshalText parses INI data, merging it into f with the same semantics
// as Load.
func (f *File) UnmarshalText(data []byte) error {
	f.parse(data)
	return nil
}

func (f *File) parse(data []byte) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	current := ""
	for sc.Scan() {
		line := trim(stripComment(sc.Text()))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.ToLower(trim(line[1 : len(line)-1]))
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			// Not a record. Best-effort parsing drops the line without error.
			continue
		}
		key := strings.ToLower(trim(line[:eq]))
		f.Section(current).SetStrings(key, splitValues(trim(line[eq+1:])))
	}
}

func trim(s string) string { return strings.Trim(s, whitespace) }

// stripComment drops the earliest ';' or '#' and everything after it.
// Markers inside values are not escapable. An absent marker must stay "not
// found"; IndexAny already yields the position of whichever marker comes
// first.
func stripComment(s string) string {
	if i := strings.IndexAny(s, ";#"); i >= 0 {
		return s[:i]
	}
	return s
}

// splitValues splits a raw (already trimmed) value on commas, trimming each
// piece. A raw value ending in a comma contributes no trailing empty element:
// "key=" stores an empty sequence and "a,b," stores two elements, while
// interior empties survive ("a,,b" stores three).
func splitValues(raw string) []string {
	parts := strings.Split(raw, ",")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i := range parts {
		parts[i] = trim(parts[i])
	}
	return parts
}

// MarshalText serializes the file: sections in insertion order as "[name]"
// (the global section prints "[]"), each key as "key=v1,v2" with a bare comma
// join, and a blank line after every section.
func (f *File) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, name := range f.order {
		sec := f.sections[name]
		buf.WriteByte('[')
		buf.WriteString(name)
		buf.WriteString("]\n")
		for _, key := range sec.order {
			buf.WriteString(key)
			buf.WriteByte('=')
			buf.WriteString(strings.Join(sec.values[key].values, ","))
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Save serializes the full in-memory state to path, replacing the file. The
// write is atomic: data goes to a temporary file in the same directory which
// is then renamed over the target.
func (f *File) Save(path string) error {
	data, err := f.MarshalText()
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// atomicWriteFile performs an atomic file write via a temp file and rename.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
