package ini_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ini"
)

func TestQuick(t *testing.T) {
	path := writeConfig(t, "app.ini", "[server]\nhost=from-file\n")

	t.Setenv("APP_SERVER_HOST", "from-env")

	f, err := ini.Quick(path, "APP_", []string{"--server.extra=from-args"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", f.Get("server", "host", ""))
	assert.Equal(t, "from-args", f.Get("server", "extra", ""))
}

func TestQuickMissingFile(t *testing.T) {
	f, err := ini.Quick(filepath.Join(t.TempDir(), "missing.ini"), "", []string{"--k=v"})
	assert.ErrorIs(t, err, ini.ErrFileNotFound)
	require.NotNil(t, f)
	assert.Equal(t, "v", f.Get("", "k", ""))
}

func TestMustQuick(t *testing.T) {
	assert.NotPanics(t, func() {
		f := ini.MustQuick(filepath.Join(t.TempDir(), "missing.ini"), "", nil)
		assert.NotNil(t, f)
	})

	assert.Panics(t, func() {
		ini.MustQuick("", "", []string{"--badsection.=v"})
	})
}

func TestValidate(t *testing.T) {
	f := ini.New()
	f.Set("server", "host", "h")
	f.Set("", "mode", "fast")
	f.Section("server").Value("empty")

	assert.NoError(t, f.Validate("server.host", "mode"))

	err := f.Validate("server.host", "server.port", "server.empty", "missing.key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "server.empty", "a present key with no elements counts as missing")
	assert.Contains(t, err.Error(), "missing.key")
	assert.NotContains(t, err.Error(), "server.host")
}

func TestClone(t *testing.T) {
	f := ini.New()
	f.Set("server", "host", "original")
	f.SetStrings("server", "list", []string{"a", "b"})

	c := f.Clone()

	// Mutations on either side must not leak to the other.
	c.Set("server", "host", "changed")
	c.Section("server").Value("list").Append("c")
	f.Set("server", "added", "1")

	assert.Equal(t, "original", f.Get("server", "host", ""))
	assert.Equal(t, []string{"a", "b"}, f.GetStrings("server", "list", nil))
	assert.Equal(t, "changed", c.Get("server", "host", ""))
	assert.False(t, c.HasKey("server", "added"))
}

func TestDumpTOML(t *testing.T) {
	f := ini.New()
	f.Set("", "debug", "true")
	f.Set("server", "host", "example.com")
	f.SetStrings("server", "ports", []string{"80", "443"})

	var sb strings.Builder
	require.NoError(t, f.DumpTOML(&sb))
	out := sb.String()

	assert.Contains(t, out, `debug = "true"`)
	assert.Contains(t, out, "[server]")
	assert.Contains(t, out, `host = "example.com"`)
	assert.Contains(t, out, `ports = ["80", "443"]`)
}
