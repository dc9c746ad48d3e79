package ini

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// EnvTransformFunc converts a section/key pair to an environment variable
// name. Returning the empty string skips the key.
type EnvTransformFunc func(section, key string) string

// defaultEnvTransform maps section/key to PREFIX + SECTION_KEY, uppercased,
// with dots replaced by underscores. Keys in the global section map to
// PREFIX + KEY.
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(section, key string) string {
		name := key
		if section != "" {
			name = section + "_" + key
		}
		name = strings.ReplaceAll(name, ".", "_")
		return prefix + strings.ToUpper(name)
	}
}

// LoadEnv overrides keys already present in f from environment variables.
// For each section/key, the variable named by the default transform is looked
// up; when set, its value replaces the key's elements, split on commas like a
// file value. Variables for keys the file does not hold are ignored.
func (f *File) LoadEnv(prefix string) error {
	return f.LoadEnvFunc(defaultEnvTransform(prefix))
}

// LoadEnvFunc is LoadEnv with a custom name transform.
func (f *File) LoadEnvFunc(transform EnvTransformFunc) error {
	if transform == nil {
		return fmt.Errorf("env transform cannot be nil")
	}
	for _, name := range f.Sections() {
		sec := f.sections[name]
		for _, key := range sec.Keys() {
			envVar := transform(name, key)
			if envVar == "" {
				continue
			}
			if value, ok := os.LookupEnv(envVar); ok {
				sec.SetStrings(key, splitValues(trim(value)))
			}
		}
	}
	return nil
}

// DiscoverEnv returns the environment variables that would override keys of f
// under the given prefix, as a map of "section.key" path to variable name.
func (f *File) DiscoverEnv(prefix string) map[string]string {
	transform := defaultEnvTransform(prefix)
	discovered := make(map[string]string)
	for _, name := range f.Sections() {
		for _, key := range f.sections[name].Keys() {
			envVar := transform(name, key)
			if _, ok := os.LookupEnv(envVar); ok {
				discovered[joinPath(name, key)] = envVar
			}
		}
	}
	return discovered
}

// LoadArgs applies command-line overrides to f. Arguments take the forms
// "--section.key=value", "--section.key value", and bare "--section.key"
// (which stores "true"). A path without a dot addresses the global section;
// the first dot separates section from key, so keys may themselves contain
// dots. Values are split on commas like file values. Arguments that do not
// start with "--" are skipped.
func (f *File) LoadArgs(args []string) error {
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		content := strings.TrimPrefix(arg, "--")
		if content == "" {
			// "--" separator
			i++
			continue
		}

		var path, value string
		if eq := strings.IndexByte(content, '='); eq >= 0 {
			path = content[:eq]
			value = content[eq+1:]
			i++
		} else {
			path = content
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				// Boolean flag with no value.
				value = "true"
				i++
			} else {
				value = args[i+1]
				i += 2
			}
		}

		section, key := splitPath(path)
		if key == "" {
			return fmt.Errorf("invalid argument %q: empty key", arg)
		}
		f.SetStrings(section, key, splitValues(trim(value)))
	}
	return nil
}

// splitPath splits a "section.key" path at the first dot. A path without a
// dot is a key in the global section.
func splitPath(path string) (section, key string) {
	if dot := strings.IndexByte(path, '.'); dot >= 0 {
		return path[:dot], path[dot+1:]
	}
	return "", path
}

func joinPath(section, key string) string {
	if section == "" {
		return key
	}
	return section + "." + key
}

// GenerateFlags creates a flag.FlagSet with one string flag per key of f,
// named "section.key" (or just the key for the global section) and defaulting
// to the key's persisted comma-joined form.
func (f *File) GenerateFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("ini", flag.ContinueOnError)
	for _, name := range f.Sections() {
		sec := f.sections[name]
		for _, key := range sec.Keys() {
			path := joinPath(name, key)
			fs.String(path, strings.Join(sec.values[key].values, ","), fmt.Sprintf("ini: %s", path))
		}
	}
	return fs
}

// BindFlags applies flags that were set on a parsed FlagSet back onto f.
func (f *File) BindFlags(fs *flag.FlagSet) error {
	fs.Visit(func(fl *flag.Flag) {
		section, key := splitPath(fl.Name)
		f.SetStrings(section, key, splitValues(trim(fl.Value.String())))
	})
	return nil
}
