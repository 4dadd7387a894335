package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/translit/pkg/filesystem"
	"github.com/arthur-debert/translit/pkg/types"
	"github.com/stretchr/testify/require"
)

// Environment is a real temp directory with the XDG config and state
// homes redirected below it, so neither user config nor log files leak
// into a test
type Environment struct {
	Dir       string
	ConfigDir string
	StateDir  string
	FS        types.FS

	t *testing.T
}

// NewEnvironment creates the directories and sets XDG_CONFIG_HOME and
// XDG_STATE_HOME for the duration of the test
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	dir := t.TempDir()
	env := &Environment{
		Dir:       dir,
		ConfigDir: filepath.Join(dir, "xdg-config"),
		StateDir:  filepath.Join(dir, "xdg-state"),
		FS:        filesystem.NewOS(),
		t:         t,
	}
	require.NoError(t, os.MkdirAll(env.ConfigDir, 0755))
	require.NoError(t, os.MkdirAll(env.StateDir, 0755))

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	return env
}

// Path joins elem below the environment directory
func (e *Environment) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Dir}, elem...)...)
}

// WriteFile writes content at rel below the environment, creating parents
func (e *Environment) WriteFile(rel, content string) string {
	e.t.Helper()
	p := e.Path(filepath.FromSlash(rel))
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
	return p
}

// UserConfig writes the user config file read by config.DefaultSources
func (e *Environment) UserConfig(content string) string {
	e.t.Helper()
	return e.WriteFile(filepath.Join("xdg-config", "translit", "config.toml"), content)
}

// Tree builds entries below rel and returns its absolute path
func (e *Environment) Tree(rel string, entries ...string) string {
	e.t.Helper()
	root := e.Path(filepath.FromSlash(rel))
	BuildTree(e.t, e.FS, root, entries...)
	return root
}
