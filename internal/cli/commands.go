package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/translit/internal/version"
	"github.com/arthur-debert/translit/pkg/cobrax/topics"
	"github.com/arthur-debert/translit/pkg/config"
	"github.com/arthur-debert/translit/pkg/errors"
	"github.com/arthur-debert/translit/pkg/filesystem"
	"github.com/arthur-debert/translit/pkg/logging"
	"github.com/arthur-debert/translit/pkg/style"
	"github.com/arthur-debert/translit/pkg/translit"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// options holds the raw flag values; only flags the user set override
// the configuration
type options struct {
	table        string
	layer        int
	excludeDirs  string
	excludeFiles string
	dryRun       bool
	verbosity    int
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "translit [flags] <path>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, opts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.table, "table", "t", "", MsgFlagTable)

	rootCmd.Flags().IntVarP(&opts.layer, "layer", "l", 1, MsgFlagLayer)
	rootCmd.Flags().StringVar(&opts.excludeDirs, "exclude-dirs", "", MsgFlagExcludeDirs)
	rootCmd.Flags().StringVar(&opts.excludeFiles, "exclude-files", "", MsgFlagExcludeFiles)
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newTableCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	initTopics(rootCmd)

	return rootCmd
}

// initTopics serves the embedded help topics, rendered as markdown on a
// terminal
func initTopics(rootCmd *cobra.Command) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if style.IsTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}

	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{Renderer: renderer})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: MsgTableShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, workDir, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			table, err := loadTable(cfg, workDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendererFor(cmd.OutOrStdout()).RenderTable(table.Entries()))
			return nil
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprintln(cmd.OutOrStdout(), config.GenerateConfigContent())
				return nil
			}
			cfg, _, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			out, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// loadConfig layers the configuration files, the environment and the
// flags the user set. It returns the working directory table paths are
// resolved against.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrFilesystem, MsgErrWorkDir)
	}

	src := config.DefaultSources(workDir)
	src.Overrides = flagOverrides(cmd, opts)

	cfg, err := config.Load(src)
	if err != nil {
		return nil, "", err
	}
	if cfg.Logging.Verbosity > opts.verbosity {
		logging.SetupLogger(cfg.Logging.Verbosity)
	}
	return cfg, workDir, nil
}

// flagOverrides returns the configuration keys of the flags set on cmd
func flagOverrides(cmd *cobra.Command, opts *options) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()

	if flags.Changed("table") {
		overrides["table.path"] = opts.table
	}
	if flags.Changed("layer") {
		overrides["rename.layer"] = opts.layer
	}
	if flags.Changed("exclude-dirs") {
		overrides["rename.exclude_dirs"] = isYes(opts.excludeDirs)
	}
	if flags.Changed("exclude-files") {
		overrides["rename.exclude_files"] = isYes(opts.excludeFiles)
	}
	if flags.Changed("dry-run") {
		overrides["rename.dry_run"] = opts.dryRun
	}
	if flags.Changed("verbose") {
		overrides["logging.verbosity"] = opts.verbosity
	}
	return overrides
}

// isYes accepts "yes" and "y" in any case; every other value is false
func isYes(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y":
		return true
	}
	return false
}

func loadTable(cfg *config.Config, workDir string) (*translit.Table, error) {
	return translit.Load(filesystem.NewOS(), cfg.TablePath(workDir),
		translit.WithExcludeMarker(cfg.Table.ExcludeMarker))
}

// rendererFor picks rich output only when w is a terminal
func rendererFor(w io.Writer) style.Renderer {
	if f, ok := w.(*os.File); ok {
		return style.NewRenderer(f)
	}
	return style.NewPlainRenderer()
}
