package renamer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/translit/pkg/errors"
	"github.com/arthur-debert/translit/pkg/filesystem"
	"github.com/arthur-debert/translit/pkg/logging"
	"github.com/arthur-debert/translit/pkg/translit"
	"github.com/arthur-debert/translit/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures an Engine
type Options struct {
	// Root is the file or directory to process. It must exist.
	Root string

	// Layer bounds the depth: 0 processes every level, N > 0 only the
	// directories whose layer is at most N.
	Layer int

	ExcludeDirs  bool
	ExcludeFiles bool

	// DryRun plans the renames without touching the filesystem
	DryRun bool

	// FS defaults to the OS filesystem
	FS types.FS
}

// Engine renames the entries of one tree. It is immutable once built.
type Engine struct {
	root         string
	layer        int
	excludeDirs  bool
	excludeFiles bool
	dryRun       bool
	table        *translit.Table
	fs           types.FS
	logger       zerolog.Logger
}

// New validates opts and builds an Engine
func New(table *translit.Table, opts Options) (*Engine, error) {
	if table == nil {
		return nil, errors.New(errors.ErrConfigValid, "a transliteration table is required")
	}
	if opts.Layer < 0 {
		return nil, errors.New(errors.ErrConfigValid, "layer cannot be less than 0").
			WithDetail("layer", opts.Layer)
	}
	if opts.Root == "" {
		return nil, errors.New(errors.ErrConfigValid, "a path to rename is required")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	root := filepath.Clean(opts.Root)
	if _, err := fsys.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigValid, "given path %s doesn't exist", opts.Root).
				WithDetail("path", opts.Root)
		}
		return nil, errors.Wrapf(err, errors.ErrFilesystem, "cannot access %s", opts.Root)
	}

	logger := logging.WithFields(map[string]interface{}{
		"component": "renamer",
		"root":      root,
	})

	return &Engine{
		root:         root,
		layer:        opts.Layer,
		excludeDirs:  opts.ExcludeDirs,
		excludeFiles: opts.ExcludeFiles,
		dryRun:       opts.DryRun,
		table:        table,
		fs:           fsys,
		logger:       logger,
	}, nil
}

// Root returns the cleaned root path
func (e *Engine) Root() string {
	return e.root
}

// Run performs the traversal once. The result is never nil; after a
// failure it lists the renames done before it.
func (e *Engine) Run(ctx context.Context) (*types.RenameResult, error) {
	done := logging.LogOperationStart(e.logger, "rename")
	defer done()

	result := &types.RenameResult{Root: e.root, DryRun: e.dryRun}

	if e.excludeDirs && e.excludeFiles {
		e.logger.Info().Msg("Files and directories are both excluded, nothing to do")
		result.Stopped = true
		return result, nil
	}

	info, err := e.fs.Stat(e.root)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFilesystem, "cannot access %s", e.root).
			WithDetail("path", e.root)
	}

	if info.IsDir() {
		err = e.walk(ctx, e.root, 1, func(dir string, dirs, files []string) error {
			return e.visit(dir, dirs, files, result)
		})
	} else {
		err = e.renameRootFile(result)
	}

	e.logger.Info().
		Bool("dryRun", e.dryRun).
		Int("renamed", len(result.Renames)).
		Int("unchanged", result.Unchanged).
		Int("skipped", result.Skipped).
		Msg("Rename run finished")

	return result, err
}

// visit applies the layer bound and the exclusion policy to one directory
func (e *Engine) visit(dir string, dirs, files []string, result *types.RenameResult) error {
	layer := 0
	if e.layer != 0 {
		l, err := LayerOf(dir, e.root)
		if err != nil {
			return err
		}
		if l > e.layer {
			e.logger.Trace().Str("dir", dir).Int("layer", l).Msg("Directory below the layer bound, skipping")
			return nil
		}
		layer = l
	}

	names := newNameSet(dirs, files)
	if !e.excludeFiles {
		if err := e.process(dir, files, types.EntryFile, layer, names, result); err != nil {
			return err
		}
	}
	if !e.excludeDirs {
		if err := e.process(dir, dirs, types.EntryDir, layer, names, result); err != nil {
			return err
		}
	}
	return nil
}

// renameRootFile handles a root that is a single file: it behaves as the
// only file of a layer-1 directory.
func (e *Engine) renameRootFile(result *types.RenameResult) error {
	if e.excludeFiles {
		return nil
	}
	layer := 0
	if e.layer != 0 {
		layer = 1
	}

	dir, name := filepath.Split(e.root)
	dir = filepath.Clean(dir)
	siblings, err := e.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot list %s", dir).WithDetail("path", dir)
	}
	var all []string
	for _, entry := range siblings {
		all = append(all, entry.Name())
	}

	return e.process(dir, []string{name}, types.EntryFile, layer, newNameSet(all), result)
}

// process transforms and renames each entry of one kind within dir
func (e *Engine) process(dir string, entries []string, kind types.EntryKind, layer int, names nameSet, result *types.RenameResult) error {
	for _, name := range entries {
		newName := e.table.Transform(name)
		switch newName {
		case "":
			e.logger.Debug().Str("dir", dir).Str("name", name).Msg("No valid name after sanitizing, leaving as is")
			result.Skipped++
			continue
		case name:
			result.Unchanged++
			continue
		}

		if err := e.rename(dir, name, newName, names); err != nil {
			return err
		}

		e.logger.Info().
			Str("dir", dir).
			Str("from", name).
			Str("to", newName).
			Str("kind", string(kind)).
			Bool("dryRun", e.dryRun).
			Msg("Renamed")

		result.Renames = append(result.Renames, types.Rename{
			Dir:     dir,
			OldName: name,
			NewName: newName,
			Kind:    kind,
			Layer:   layer,
		})
	}
	return nil
}

// rename moves dir/name to dir/newName, refusing to replace another entry
func (e *Engine) rename(dir, name, newName string, names nameSet) error {
	oldPath, newPath := filepath.Join(dir, name), filepath.Join(dir, newName)

	if e.dryRun {
		if names.has(newName) {
			return collision(oldPath, newPath)
		}
		names.move(name, newName)
		return nil
	}

	if target, err := e.fs.Lstat(newPath); err == nil {
		// A case-only rename on a case-insensitive filesystem finds itself
		source, serr := e.fs.Lstat(oldPath)
		if serr != nil || !os.SameFile(source, target) {
			return collision(oldPath, newPath)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot check %s", newPath).
			WithDetail("path", newPath)
	}

	if err := e.fs.Rename(oldPath, newPath); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot rename %s to %s", oldPath, newName).
			WithDetail("from", oldPath).
			WithDetail("to", newPath)
	}
	names.move(name, newName)
	return nil
}

func collision(oldPath, newPath string) error {
	return errors.Newf(errors.ErrNameCollision,
		"cannot rename %s: %s already exists", oldPath, filepath.Base(newPath)).
		WithDetails(map[string]interface{}{"from": oldPath, "to": newPath})
}

// nameSet tracks the entries of one directory as renames happen
type nameSet map[string]struct{}

func newNameSet(lists ...[]string) nameSet {
	s := make(nameSet)
	for _, list := range lists {
		for _, name := range list {
			s[name] = struct{}{}
		}
	}
	return s
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s nameSet) move(from, to string) {
	delete(s, from)
	s[to] = struct{}{}
}
