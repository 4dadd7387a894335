package renamer_test

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/translit/pkg/translit"
	"github.com/arthur-debert/translit/pkg/types"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, mapping map[string]string) *translit.Table {
	t.Helper()
	table, err := translit.NewTable(mapping)
	require.NoError(t, err)
	return table
}

// failingFS wraps an FS and fails every rename
type failingFS struct {
	types.FS
	err error
}

func (f *failingFS) Rename(oldpath, newpath string) error {
	return &fs.PathError{Op: "rename", Path: oldpath, Err: f.err}
}
