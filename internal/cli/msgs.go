package cli

// Command descriptions
const (
	MsgRootShort = "Transliterate and sanitize file and directory names"
	MsgRootLong  = `translit renames the entries below a path to lowercase, ASCII-safe names.

Each character found in the transliteration table is replaced by its value,
every run of characters that is neither alphanumeric, "_", "." nor produced
by the table becomes a single "_". Directories are processed bottom-up and
entries are only ever renamed within their own parent.`
	MsgRootExample = `  translit ~/Downloads
  translit --layer 0 --exclude-dirs yes ./music
  translit --table ru.txt --dry-run "./Мои документы"`

	MsgTableShort   = "Print the loaded transliteration table"
	MsgConfigShort  = "Print the effective configuration as TOML"
	MsgVersionShort = "Print version information"
)

// Flag descriptions
const (
	MsgFlagTable        = "Transliteration definition file (<char>,<replacement> per line, or YAML)"
	MsgFlagLayer        = "Deepest directory layer to process, 0 processes every level"
	MsgFlagExcludeDirs  = "Leave directory names as they are (yes|y)"
	MsgFlagExcludeFiles = "Leave file names as they are (yes|y)"
	MsgFlagDryRun       = "Print the renames without performing them"
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDefaults     = "Print the commented defaults, ready to save as a config file"
)

// Error messages
const (
	MsgErrWorkDir = "cannot determine the working directory"
)
