package cli

import (
	"fmt"

	"github.com/arthur-debert/translit/pkg/renamer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// runRename loads the table, renames the tree below path and prints what
// was done. A failed run still prints the renames that happened before it.
func runRename(cmd *cobra.Command, opts *options, path string) error {
	cfg, workDir, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	table, err := loadTable(cfg, workDir)
	if err != nil {
		return err
	}
	log.Debug().Int("entries", table.Len()).Str("table", cfg.TablePath(workDir)).Msg("Table loaded")

	engine, err := renamer.New(table, renamer.Options{
		Root:         path,
		Layer:        cfg.Rename.Layer,
		ExcludeDirs:  cfg.Rename.ExcludeDirs,
		ExcludeFiles: cfg.Rename.ExcludeFiles,
		DryRun:       cfg.Rename.DryRun,
	})
	if err != nil {
		return err
	}

	result, runErr := engine.Run(cmd.Context())
	if rendered := rendererFor(cmd.OutOrStdout()).RenderResult(result, runErr); rendered != "" {
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}
	return runErr
}
