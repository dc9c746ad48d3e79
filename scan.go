package ini

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes one section into target, which must be a non-nil pointer to a
// struct or map. Fields map through the "ini" struct tag. Decoding is weakly
// typed: stored strings convert to the target's field types, including
// time.Duration and comma-separated slices. Multi-element values surface as
// []string and single elements as string. A missing section decodes as empty,
// leaving target's fields at their current values.
func (f *File) Scan(section string, target any) error {
	data := make(map[string]any)
	if sec, ok := f.sections[strings.ToLower(section)]; ok {
		data = sec.toMap()
	}
	return decodeMap(data, target, fmt.Sprintf("section %q", section))
}

// ScanAll decodes the whole document into target as a two-level structure:
// section name to key/value map. The global section appears under "".
func (f *File) ScanAll(target any) error {
	data := make(map[string]any, len(f.sections))
	for name, sec := range f.sections {
		data[name] = sec.toMap()
	}
	return decodeMap(data, target, "document")
}

func decodeMap(data map[string]any, target any, what string) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "ini",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to scan %s into %T: %w", what, target, err)
	}
	return nil
}
