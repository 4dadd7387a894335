// Package config loads translit settings. The embedded defaults are
// overlaid by the user config file, the project .translit.toml, TRANSLIT_*
// environment variables and finally command-line flags.
package config
