package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a document.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", ignoring case. An empty string
// selects YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return JSON
	}
	return YAML
}

// Document is a parsed layout description.
//
//	stroke: rounded
//	defs:
//	  title: {kind: text, text: Report, style: bold}
//	layout:
//	  kind: frame
//	  child: {ref: title}
type Document struct {
	// Stroke is the default stroke for lines, dividers and frames.
	Stroke string `mapstructure:"stroke" json:"stroke,omitempty" yaml:"stroke,omitempty"`
	// Defs holds named nodes that can be referenced with {ref: name}.
	Defs map[string]any `mapstructure:"defs" json:"defs,omitempty" yaml:"defs,omitempty"`
	// Layout is the root node.
	Layout any `mapstructure:"layout" json:"layout" yaml:"layout"`
}

// Parse decodes a document in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	var raw map[string]any
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: json: %w", ErrParse, err)
		}
	case YAML, "":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var doc Document
	if err := decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Layout == nil {
		return nil, ErrNoLayout
	}
	return &doc, nil
}

// Load reads and parses the document at path, choosing the format from its
// extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// decode copies a generic map into out, rejecting unknown keys.
func decode(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
