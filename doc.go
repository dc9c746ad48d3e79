// Package ini provides an in-memory key-value configuration store backed by
// the INI text format, with load-from-file, in-memory mutation, save-to-file,
// and typed accessors layered on top of string-only storage.
//
// Features:
//   - Sections and keys with case-insensitive names (normalized to lowercase)
//   - Comma-separated multi-value keys
//   - Typed get/set for bool, integers, floats, runes, strings, and durations,
//     plus homogeneous slices of each, through an extensible codec registry
//   - Struct scanning via mapstructure with "ini" tags
//   - Environment variable and command-line overrides
//   - Builder with file discovery and validation hooks
//   - Atomic saves using a temporary file and rename
//
// Quick Start:
//
//	f := ini.New()
//	if err := f.Load("app.ini"); err != nil {
//	    log.Fatal(err)
//	}
//
//	host := f.Get("server", "host", "localhost")
//	port, _ := ini.GetAs[int](f.Section("server").Value("port"))
//
//	f.Set("server", "host", "example.com")
//	if err := f.Save("app.ini"); err != nil {
//	    log.Fatal(err)
//	}
//
// Builder precedence (lowest to highest): defaults, file, environment,
// command-line arguments.
//
//	f, err := ini.NewBuilder().
//	    WithDefaults(map[string]map[string]string{
//	        "server": {"host": "localhost", "port": "8080"},
//	    }).
//	    WithFile("app.ini").
//	    WithEnvPrefix("MYAPP_").
//	    WithArgs(os.Args[1:]).
//	    Build()
//
// Format:
//
//	[section]
//	key=value1,value2
//	other=single value   ; comments start at ';' or '#'
//
// Section and key names are lowercased on every operation; original casing is
// not retained across a load/save cycle, and neither are comments. Values have
// no escaping mechanism, so literal commas, semicolons, and hashes cannot
// appear inside a value. Each record is exactly one physical line.
//
// A File is a plain mutable aggregate with no internal locking. It is not safe
// for concurrent use from multiple goroutines; callers needing shared access
// must serialize externally.
package ini
