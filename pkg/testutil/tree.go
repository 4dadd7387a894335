package testutil

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/translit/pkg/filesystem"
	"github.com/arthur-debert/translit/pkg/types"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewMemory()
}

// BuildTree creates entries under root; names ending in "/" are directories.
// Files hold their own path as content.
func BuildTree(t *testing.T, fsys types.FS, root string, entries ...string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	for _, entry := range entries {
		p := filepath.Join(root, filepath.FromSlash(entry))
		if strings.HasSuffix(entry, "/") {
			require.NoError(t, fsys.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, fsys.WriteFile(p, []byte(entry), 0644))
	}
}

// ListTree returns every entry below root as a sorted slash path,
// directories with a trailing "/"
func ListTree(t *testing.T, fsys types.FS, root string) []string {
	t.Helper()
	var out []string
	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		for _, entry := range entries {
			name := path.Join(rel, entry.Name())
			if entry.IsDir() {
				out = append(out, name+"/")
				walk(filepath.Join(dir, entry.Name()), name)
				continue
			}
			out = append(out, name)
		}
	}
	walk(root, "")
	sort.Strings(out)
	return out
}

// Exists reports whether path exists without following a final symlink
func Exists(t *testing.T, fsys types.FS, path string) bool {
	t.Helper()
	_, err := fsys.Lstat(path)
	return err == nil
}
