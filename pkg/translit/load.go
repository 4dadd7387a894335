package translit

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/translit/pkg/errors"
	"github.com/arthur-debert/translit/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultExcludeMarker marks a definition line as ignored
const DefaultExcludeMarker = "#exclude"

type parseOptions struct {
	marker string
}

// Option configures Parse and Load
type Option func(*parseOptions)

// WithExcludeMarker replaces the token that marks a line as ignored
func WithExcludeMarker(marker string) Option {
	return func(o *parseOptions) {
		if marker != "" {
			o.marker = marker
		}
	}
}

func buildOptions(opts []Option) parseOptions {
	o := parseOptions{marker: DefaultExcludeMarker}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse reads a line-oriented definition source. Each line is either
// ignored (blank, or containing the exclusion marker) or a "key,value"
// pair split on the first comma. Construction stops at the first bad
// or duplicate line and no table is returned.
func Parse(r io.Reader, opts ...Option) (*Table, error) {
	o := buildOptions(opts)
	b := newBuilder()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.Contains(line, o.marker) || strings.TrimSpace(line) == "" {
			continue
		}

		rawKey, rawValue, found := strings.Cut(line, ",")
		if !found {
			return nil, errors.Newf(errors.ErrTableInvalid,
				"line %d: expected 'key,value' but got %q", lineNo, line).
				WithDetail("line", lineNo)
		}
		key, value := strings.TrimSpace(rawKey), strings.TrimSpace(rawValue)

		k, err := singleRune(key)
		if err != nil {
			return nil, err.WithDetail("line", lineNo)
		}
		if err := b.add(k, value, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFilesystem, "failed to read table definition")
	}

	return b.build(), nil
}

// Load reads a definition file. Files ending in .yaml or .yml are decoded
// as a flat mapping; anything else goes through Parse.
func Load(fsys types.FS, path string, opts ...Option) (*Table, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrSourceNotFound,
				"no such file containing the table: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFilesystem, "cannot access table file %s", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceIsDirectory,
			"given path '%s' isn't a file", path).
			WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFilesystem, "cannot read table file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data, buildOptions(opts))
	default:
		return Parse(bytes.NewReader(data), opts...)
	}
}

// parseYAML walks the document node directly so that duplicate keys are
// reported with both values, the same way Parse reports them.
func parseYAML(data []byte, o parseOptions) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrTableInvalid, "invalid YAML table")
	}

	b := newBuilder()
	if len(doc.Content) == 0 {
		return b.build(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrTableInvalid, "YAML table must be a mapping of character to replacement")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode || valueNode.Kind != yaml.ScalarNode {
			return nil, errors.Newf(errors.ErrTableInvalid,
				"line %d: table entries must be scalar", keyNode.Line).
				WithDetail("line", keyNode.Line)
		}
		if valueNode.Value == o.marker {
			continue
		}

		k, err := singleRune(strings.TrimSpace(keyNode.Value))
		if err != nil {
			return nil, err.WithDetail("line", keyNode.Line)
		}
		if err := b.add(k, strings.TrimSpace(valueNode.Value), keyNode.Line); err != nil {
			return nil, err
		}
	}

	return b.build(), nil
}
