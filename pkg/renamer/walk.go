package renamer

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/translit/pkg/errors"
)

// visitFunc receives a directory with the names of its immediate
// subdirectories and files, after every subdirectory was visited.
type visitFunc func(dir string, dirs, files []string) error

// walk lists dir once, walks each subdirectory, then yields dir. Symbolic
// links are never followed and count as files. Subdirectories that can
// only sit below the layer bound are not descended into.
func (e *Engine) walk(ctx context.Context, dir string, depth int, visit visitFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot list %s", dir).
			WithDetail("path", dir)
	}

	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	if e.layer == 0 || depth < e.layer {
		for _, name := range dirs {
			if err := e.walk(ctx, filepath.Join(dir, name), depth+1, visit); err != nil {
				return err
			}
		}
	}

	return visit(dir, dirs, files)
}
