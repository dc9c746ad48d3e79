package ini_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ini"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuilderPrecedence(t *testing.T) {
	path := writeConfig(t, "app.ini", "[server]\nhost=from-file\nport=8080\n")

	t.Setenv("APP_SERVER_PORT", "9090")

	f, err := ini.NewBuilder().
		WithDefaults(map[string]map[string]string{
			"server": {"host": "default-host", "port": "1", "workers": "4"},
		}).
		WithFile(path).
		WithEnvPrefix("APP_").
		WithArgs([]string{"--server.workers=16"}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "from-file", f.Get("server", "host", ""), "file overrides defaults")
	assert.Equal(t, "9090", f.Get("server", "port", ""), "env overrides file")
	assert.Equal(t, "16", f.Get("server", "workers", ""), "args override everything")
}

func TestBuilderMissingFileNonFatal(t *testing.T) {
	f, err := ini.NewBuilder().
		WithDefaults(map[string]map[string]string{"s": {"k": "v"}}).
		WithFile(filepath.Join(t.TempDir(), "missing.ini")).
		Build()

	assert.ErrorIs(t, err, ini.ErrFileNotFound)
	require.NotNil(t, f, "defaults still apply when the file is absent")
	assert.Equal(t, "v", f.Get("s", "k", ""))
}

func TestBuilderValidators(t *testing.T) {
	t.Run("PassingValidator", func(t *testing.T) {
		f, err := ini.NewBuilder().
			WithDefaults(map[string]map[string]string{"s": {"k": "v"}}).
			WithValidator(func(f *ini.File) error { return f.Validate("s.k") }).
			Build()
		require.NoError(t, err)
		assert.NotNil(t, f)
	})

	t.Run("FailingValidator", func(t *testing.T) {
		_, err := ini.NewBuilder().
			WithValidator(func(f *ini.File) error {
				return fmt.Errorf("port out of range")
			}).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.Contains(t, err.Error(), "port out of range")
	})

	t.Run("ValidatorsRunInOrder", func(t *testing.T) {
		var order []int
		_, err := ini.NewBuilder().
			WithValidator(func(*ini.File) error { order = append(order, 1); return nil }).
			WithValidator(func(*ini.File) error { order = append(order, 2); return nil }).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, order)
	})
}

func TestMustBuild(t *testing.T) {
	t.Run("ToleratesMissingFile", func(t *testing.T) {
		f := ini.NewBuilder().
			WithFile(filepath.Join(t.TempDir(), "missing.ini")).
			MustBuild()
		assert.NotNil(t, f)
	})

	t.Run("PanicsOnValidationError", func(t *testing.T) {
		assert.Panics(t, func() {
			ini.NewBuilder().
				WithValidator(func(*ini.File) error { return fmt.Errorf("bad") }).
				MustBuild()
		})
	})
}

func TestBuildAndScan(t *testing.T) {
	path := writeConfig(t, "app.ini", "[server]\nhost=example.com\nport=8080\n")

	var cfg struct {
		Server struct {
			Host string `ini:"host"`
			Port int    `ini:"port"`
		} `ini:"server"`
	}
	err := ini.NewBuilder().WithFile(path).BuildAndScan(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "example.com", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestFileDiscovery(t *testing.T) {
	t.Run("CLIFlagWins", func(t *testing.T) {
		explicit := writeConfig(t, "explicit.ini", "[s]\nsource=cli\n")

		t.Setenv("MYAPP_CONFIG", writeConfig(t, "env.ini", "[s]\nsource=env\n"))

		f, err := ini.NewBuilder().
			WithArgs([]string{"--config", explicit}).
			WithFileDiscovery(ini.DefaultDiscoveryOptions("myapp")).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "cli", f.Get("s", "source", ""))
	})

	t.Run("EnvVarSecond", func(t *testing.T) {
		t.Setenv("MYAPP_CONFIG", writeConfig(t, "env.ini", "[s]\nsource=env\n"))

		f, err := ini.NewBuilder().
			WithFileDiscovery(ini.DefaultDiscoveryOptions("myapp")).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "env", f.Get("s", "source", ""))
	})

	t.Run("SearchPaths", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "myapp.conf"), []byte("[s]\nsource=path\n"), 0644))

		opts := ini.FileDiscoveryOptions{
			Name:       "myapp",
			Extensions: []string{".ini", ".conf"},
			Paths:      []string{dir},
		}
		f, err := ini.NewBuilder().WithFileDiscovery(opts).Build()
		require.NoError(t, err)
		assert.Equal(t, "path", f.Get("s", "source", ""))
	})

	t.Run("NothingFoundIsFine", func(t *testing.T) {
		opts := ini.FileDiscoveryOptions{
			Name:       "definitely-not-a-real-app",
			Extensions: []string{".ini"},
			Paths:      []string{t.TempDir()},
		}
		f, err := ini.NewBuilder().WithFileDiscovery(opts).Build()
		require.NoError(t, err)
		assert.Equal(t, 0, f.SectionCount())
	})
}
