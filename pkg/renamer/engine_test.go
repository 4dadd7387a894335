// pkg/renamer/engine_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Real FS (t.TempDir), Memory FS (afero)
// PURPOSE: Test traversal order, layer bound, exclusion policy and rename failures

package renamer_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/translit/pkg/errors"
	"github.com/arthur-debert/translit/pkg/filesystem"
	"github.com/arthur-debert/translit/pkg/renamer"
	"github.com/arthur-debert/translit/pkg/testutil"
	"github.com/arthur-debert/translit/pkg/translit"
	"github.com/arthur-debert/translit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mixedTree = []string{
	"Dir One/Sub Dir/Deep File.TXT",
	"Dir One/Mid.TXT",
	"Top!.txt",
}

func TestNew(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.BuildTree(t, fsys, "/tree")

	tests := []struct {
		name  string
		table *translit.Table
		opts  renamer.Options
	}{
		{"nil_table", nil, renamer.Options{Root: "/tree", FS: fsys}},
		{"negative_layer", translit.Empty(), renamer.Options{Root: "/tree", Layer: -1, FS: fsys}},
		{"empty_root", translit.Empty(), renamer.Options{FS: fsys}},
		{"missing_root", translit.Empty(), renamer.Options{Root: "/nope", FS: fsys}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := renamer.New(tt.table, tt.opts)
			require.Error(t, err)
			assert.Nil(t, engine)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}

	t.Run("valid", func(t *testing.T) {
		engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree/", FS: fsys})
		require.NoError(t, err)
		assert.Equal(t, "/tree", engine.Root())
	})

	t.Run("defaults_to_os_filesystem", func(t *testing.T) {
		engine, err := renamer.New(translit.Empty(), renamer.Options{Root: t.TempDir()})
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})
}

func TestRunAccentedFileAtRoot(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()
	testutil.BuildTree(t, fsys, root, "café.TXT")

	engine, err := renamer.New(mustTable(t, map[string]string{"á": "a", "é": "e"}), renamer.Options{Root: root, Layer: 1})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"cafe.txt"}, testutil.ListTree(t, fsys, root))
	require.Len(t, result.Renames, 1)
	assert.Equal(t, types.Rename{
		Dir:     filepath.Clean(root),
		OldName: "café.TXT",
		NewName: "cafe.txt",
		Kind:    types.EntryFile,
		Layer:   1,
	}, result.Renames[0])
}

func TestRunLayerTwoSkipsThirdLevel(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()
	testutil.BuildTree(t, fsys, root, "Top File.txt", "A/Mid File.txt", "A/B/Deep File.txt")

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: root, Layer: 2})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"a/",
		"a/b/",
		"a/b/Deep File.txt",
		"a/mid_file.txt",
		"top_file.txt",
	}, testutil.ListTree(t, fsys, root))

	require.Len(t, result.Renames, 4)
	var layers []string
	for _, r := range result.Renames {
		layers = append(layers, fmt.Sprintf("%s:%d", r.OldName, r.Layer))
	}
	assert.Equal(t, []string{"Mid File.txt:2", "B:2", "Top File.txt:1", "A:1"}, layers)
}

func TestRunUnboundedRenamesPostOrder(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()
	testutil.BuildTree(t, fsys, root, mixedTree...)

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: root})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"dir_one/",
		"dir_one/mid.txt",
		"dir_one/sub_dir/",
		"dir_one/sub_dir/deep_file.txt",
		"top_.txt",
	}, testutil.ListTree(t, fsys, root))

	var order []string
	for _, r := range result.Renames {
		order = append(order, string(r.Kind)+":"+r.OldName)
		assert.Equal(t, 0, r.Layer, "unbounded runs do not compute layers")
	}
	assert.Equal(t, []string{
		"file:Deep File.TXT",
		"file:Mid.TXT",
		"dir:Sub Dir",
		"file:Top!.txt",
		"dir:Dir One",
	}, order)
}

func TestRunExclusionPolicy(t *testing.T) {
	tests := []struct {
		name         string
		excludeDirs  bool
		excludeFiles bool
		layer        int
		want         []string
	}{
		{
			name:        "exclude_dirs_renames_files_at_every_depth",
			excludeDirs: true,
			want: []string{
				"Dir One/",
				"Dir One/Sub Dir/",
				"Dir One/Sub Dir/deep_file.txt",
				"Dir One/mid.txt",
				"top_.txt",
			},
		},
		{
			name:         "exclude_files_renames_directories_only",
			excludeFiles: true,
			want: []string{
				"Top!.txt",
				"dir_one/",
				"dir_one/Mid.TXT",
				"dir_one/sub_dir/",
				"dir_one/sub_dir/Deep File.TXT",
			},
		},
		{
			name:         "exclude_files_with_bound",
			excludeFiles: true,
			layer:        1,
			want: []string{
				"Top!.txt",
				"dir_one/",
				"dir_one/Mid.TXT",
				"dir_one/Sub Dir/",
				"dir_one/Sub Dir/Deep File.TXT",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			fsys := filesystem.NewOS()
			testutil.BuildTree(t, fsys, root, mixedTree...)

			engine, err := renamer.New(translit.Empty(), renamer.Options{
				Root:         root,
				Layer:        tt.layer,
				ExcludeDirs:  tt.excludeDirs,
				ExcludeFiles: tt.excludeFiles,
			})
			require.NoError(t, err)

			_, err = engine.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, testutil.ListTree(t, fsys, root))
		})
	}
}

func TestRunBothExcludedDoesNothing(t *testing.T) {
	for _, layer := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("layer_%d", layer), func(t *testing.T) {
			root := t.TempDir()
			fsys := filesystem.NewOS()
			testutil.BuildTree(t, fsys, root, mixedTree...)
			before := testutil.ListTree(t, fsys, root)

			engine, err := renamer.New(translit.Empty(), renamer.Options{
				Root:         root,
				Layer:        layer,
				ExcludeDirs:  true,
				ExcludeFiles: true,
			})
			require.NoError(t, err)

			result, err := engine.Run(context.Background())
			require.NoError(t, err)
			assert.True(t, result.Stopped)
			assert.Empty(t, result.Renames)
			assert.Equal(t, before, testutil.ListTree(t, fsys, root))
		})
	}
}

func TestRunTwiceIsNoop(t *testing.T) {
	root := t.TempDir()
	fsys := filesystem.NewOS()
	testutil.BuildTree(t, fsys, root, mixedTree...)

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: root})
	require.NoError(t, err)

	_, err = engine.Run(context.Background())
	require.NoError(t, err)
	after := testutil.ListTree(t, fsys, root)

	second, err := engine.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second.Renames)
	assert.Equal(t, 5, second.Unchanged)
	assert.Equal(t, after, testutil.ListTree(t, fsys, root))
}

func TestRunBoundedTraversal(t *testing.T) {
	entries := []string{
		"File 1.txt",
		"l2/File 2.txt",
		"l2/l3/File 3.txt",
		"l2/l3/l4/File 4.txt",
		"l2/l3/l4/l5/File 5.txt",
	}

	for _, bound := range []int{0, 1, 2, 3, 4, 5, 6} {
		t.Run(fmt.Sprintf("layer_%d", bound), func(t *testing.T) {
			fsys := filesystem.NewMemory()
			testutil.BuildTree(t, fsys, "/tree", entries...)

			engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree", Layer: bound, FS: fsys})
			require.NoError(t, err)

			result, err := engine.Run(context.Background())
			require.NoError(t, err)

			want := []string{"l2/", "l2/l3/", "l2/l3/l4/", "l2/l3/l4/l5/"}
			for level := 1; level <= 5; level++ {
				dir := ""
				for d := 2; d <= level; d++ {
					dir += fmt.Sprintf("l%d/", d)
				}
				name := fmt.Sprintf("File %d.txt", level)
				if bound == 0 || level <= bound {
					name = fmt.Sprintf("file_%d.txt", level)
				}
				want = append(want, dir+name)
			}
			assert.ElementsMatch(t, want, testutil.ListTree(t, fsys, "/tree"))

			for _, r := range result.Renames {
				if bound != 0 {
					assert.LessOrEqual(t, r.Layer, bound)
				}
			}
		})
	}
}

func TestRunEmptyTransformLeavesEntry(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.BuildTree(t, fsys, "/tree", "Привет", "Мир", "ok.txt")

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree", FS: fsys})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Renames)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 1, result.Unchanged)
	assert.ElementsMatch(t, []string{"Привет", "Мир", "ok.txt"}, testutil.ListTree(t, fsys, "/tree"))
}

func TestRunCollisionStopsRun(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.BuildTree(t, fsys, "/tree", "A B.txt", "My File.txt", "my_file.txt")

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree", FS: fsys})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNameCollision))
	assert.Equal(t, "/tree/my_file.txt", errors.GetErrorDetails(err)["to"])

	require.Len(t, result.Renames, 1, "renames before the failure are kept")
	assert.Equal(t, "a_b.txt", result.Renames[0].NewName)
	assert.Equal(t, []string{"My File.txt", "a_b.txt", "my_file.txt"}, testutil.ListTree(t, fsys, "/tree"))
}

func TestRunTwoEntriesSameTarget(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		t.Run(fmt.Sprintf("dry_run_%v", dryRun), func(t *testing.T) {
			fsys := filesystem.NewMemory()
			testutil.BuildTree(t, fsys, "/tree", "A-B.txt", "a b.txt")

			engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree", DryRun: dryRun, FS: fsys})
			require.NoError(t, err)

			result, err := engine.Run(context.Background())
			assert.True(t, errors.IsErrorCode(err, errors.ErrNameCollision))
			require.Len(t, result.Renames, 1)
			assert.Equal(t, "A-B.txt", result.Renames[0].OldName)
		})
	}
}

func TestRunDryRunDoesNotTouchTree(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.BuildTree(t, fsys, "/tree", "A-B.txt", "Top File.txt", "clean.txt")
	before := testutil.ListTree(t, fsys, "/tree")

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree", DryRun: true, FS: fsys})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	require.Len(t, result.Renames, 2)
	assert.Equal(t, "a_b.txt", result.Renames[0].NewName)
	assert.Equal(t, "top_file.txt", result.Renames[1].NewName)
	assert.Equal(t, before, testutil.ListTree(t, fsys, "/tree"))
}

func TestRunRootIsFile(t *testing.T) {
	t.Run("renamed_as_layer_one_file", func(t *testing.T) {
		dir := t.TempDir()
		fsys := filesystem.NewOS()
		testutil.BuildTree(t, fsys, dir, "Report FINAL.PDF", "Other File.txt")

		engine, err := renamer.New(translit.Empty(), renamer.Options{Root: filepath.Join(dir, "Report FINAL.PDF"), Layer: 1})
		require.NoError(t, err)

		result, err := engine.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"Other File.txt", "report_final.pdf"}, testutil.ListTree(t, fsys, dir))
		require.Len(t, result.Renames, 1)
		assert.Equal(t, 1, result.Renames[0].Layer)
		assert.Equal(t, filepath.Clean(dir), result.Renames[0].Dir)
	})

	t.Run("excluded_files_leave_it", func(t *testing.T) {
		dir := t.TempDir()
		fsys := filesystem.NewOS()
		testutil.BuildTree(t, fsys, dir, "Report FINAL.PDF")

		engine, err := renamer.New(translit.Empty(), renamer.Options{Root: filepath.Join(dir, "Report FINAL.PDF"), ExcludeFiles: true})
		require.NoError(t, err)

		result, err := engine.Run(context.Background())
		require.NoError(t, err)
		assert.Empty(t, result.Renames)
		assert.Equal(t, []string{"Report FINAL.PDF"}, testutil.ListTree(t, fsys, dir))
	})
}

func TestRunRenameFailureIsFatal(t *testing.T) {
	mem := filesystem.NewMemory()
	testutil.BuildTree(t, mem, "/tree", "A B.txt", "C D.txt")
	fsys := &failingFS{FS: mem, err: fs.ErrPermission}

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree", FS: fsys})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFilesystem))
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.Empty(t, result.Renames)
	assert.Equal(t, []string{"A B.txt", "C D.txt"}, testutil.ListTree(t, mem, "/tree"))
}

func TestRunCancelledContext(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.BuildTree(t, fsys, "/tree", "A B.txt")

	engine, err := renamer.New(translit.Empty(), renamer.Options{Root: "/tree", FS: fsys})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Renames)
	assert.Equal(t, []string{"A B.txt"}, testutil.ListTree(t, fsys, "/tree"))
}
