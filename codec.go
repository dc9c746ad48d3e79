package ini

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"
)

// codec holds the conversion pair between the stored string form and one Go
// type. The registry is an open dispatch table: new types are added by
// registering a new pair, never by modifying an existing one.
type codec struct {
	decode func(string) (any, error)
	encode func(any) string
}

var codecs = map[reflect.Type]codec{}

// RegisterCodec adds or replaces the conversion pair for T. The built-in types
// are registered during package initialization; applications can register
// additional types before using the typed accessors with them.
//
// Registration is not synchronized and should happen at startup, before the
// store is used.
func RegisterCodec[T any](decode func(string) (T, error), encode func(T) string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	codecs[t] = codec{
		decode: func(s string) (any, error) { return decode(s) },
		encode: func(v any) string { return encode(v.(T)) },
	}
}

// decodeString converts one stored string into T via the registered codec.
func decodeString[T any](s string) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()
	c, ok := codecs[t]
	if !ok {
		return zero, fmt.Errorf("%w: no codec registered for type %s", ErrConversion, t)
	}
	v, err := c.decode(s)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// encodeString converts a typed value into its stored string form.
func encodeString[T any](v T) (string, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	c, ok := codecs[t]
	if !ok {
		return "", fmt.Errorf("%w: no codec registered for type %s", ErrConversion, t)
	}
	return c.encode(v), nil
}

func decodeBool(s string) (bool, error) {
	// Deliberately stricter than strconv.ParseBool: only the four tokens the
	// format defines are valid.
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: invalid bool value %q", ErrConversion, s)
}

func decodeRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: invalid char value %q", ErrConversion, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// intDecoder builds a decoder for a signed integer type. Base 0 accepts
// decimal and 0x-prefixed hexadecimal; trailing characters and overflow fail.
func intDecoder[T ~int | ~int16 | ~int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid integer value %q", ErrConversion, s)
		}
		return T(n), nil
	}
}

func uintDecoder[T ~uint | ~uint64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid unsigned integer value %q", ErrConversion, s)
		}
		return T(n), nil
	}
}

func floatDecoder[T ~float32 | ~float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid float value %q", ErrConversion, s)
		}
		return T(f), nil
	}
}

func decodeDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid duration value %q", ErrConversion, s)
	}
	return d, nil
}

func init() {
	RegisterCodec(
		func(s string) (string, error) { return s, nil },
		func(s string) string { return s },
	)
	RegisterCodec(decodeBool, strconv.FormatBool)

	// rune is the character type: decode requires exactly one character.
	// Since rune aliases int32, int32 values share these semantics.
	RegisterCodec(decodeRune, func(r rune) string { return string(r) })

	RegisterCodec(intDecoder[int16](16), func(v int16) string { return strconv.FormatInt(int64(v), 10) })
	RegisterCodec(intDecoder[int](strconv.IntSize), strconv.Itoa)
	RegisterCodec(intDecoder[int64](64), func(v int64) string { return strconv.FormatInt(v, 10) })
	RegisterCodec(uintDecoder[uint](strconv.IntSize), func(v uint) string { return strconv.FormatUint(uint64(v), 10) })
	RegisterCodec(uintDecoder[uint64](64), func(v uint64) string { return strconv.FormatUint(v, 10) })

	// Float encoding uses a fixed six fractional digits and is not
	// round-trip exact.
	RegisterCodec(floatDecoder[float32](32), func(v float32) string { return strconv.FormatFloat(float64(v), 'f', 6, 32) })
	RegisterCodec(floatDecoder[float64](64), func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) })

	RegisterCodec(decodeDuration, time.Duration.String)
}
