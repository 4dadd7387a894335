package renamer

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/translit/pkg/errors"
)

// LayerOf returns the layer of path below root, where root itself is
// layer 1. path must be root or one of its descendants; the climb is
// bounded by the number of components in path.
func LayerOf(path, root string) (int, error) {
	path, root = filepath.Clean(path), filepath.Clean(root)
	if path == root {
		return 1, nil
	}

	// ".." climbs out of a relative root while Dir still reaches it
	if rel, err := filepath.Rel(root, path); err != nil || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return 0, unreachable(path, root)
	}

	limit := strings.Count(path, string(filepath.Separator)) + 1
	current := path
	for steps := 1; steps <= limit; steps++ {
		parent := filepath.Dir(current)
		if parent == root {
			return 1 + steps, nil
		}
		if parent == current {
			break
		}
		current = parent
	}

	return 0, unreachable(path, root)
}

func unreachable(path, root string) error {
	return errors.Newf(errors.ErrLayerUnreachable, "%s is not below %s", path, root).
		WithDetail("path", path).
		WithDetail("root", root)
}
