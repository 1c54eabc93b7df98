package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for graphs.
type Format string

const (
	TOML Format = "toml"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat resolves a format name such as "toml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unsupported graph format: %q", name)
	}
}

// ContentType is the MIME type used when serving the format.
func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json"
	case YAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Serialize encodes g in the given format.
func Serialize(f Format, g Graph) ([]byte, error) {
	switch f {
	case TOML:
		return toml.Marshal(g)
	case JSON:
		return json.MarshalIndent(g, "", "  ")
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported graph format: %q", f)
	}
}

// Deserialize decodes a graph. On failure it returns an empty graph whose
// messages carry the decoding error, along with the error itself.
func Deserialize(f Format, data []byte) (Graph, error) {
	var g Graph
	var err error
	switch f {
	case TOML:
		err = toml.Unmarshal(data, &g)
	case JSON:
		err = json.Unmarshal(data, &g)
	case YAML:
		err = yaml.Unmarshal(data, &g)
	default:
		err = fmt.Errorf("unsupported graph format: %q", f)
	}
	if err != nil {
		err = fmt.Errorf("decode %s graph: %w", f, err)
		return Empty(err.Error()), err
	}
	if g.Nodes == nil {
		g.Nodes = map[string]Node{}
	}
	return g, nil
}

// Load reads and populates the graph file at path. The format follows the
// file extension and defaults to TOML.
func Load(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read graph: %w", err)
		return Empty(err.Error()), err
	}

	f, ferr := ParseFormat(filepath.Ext(path))
	if ferr != nil {
		f = TOML
	}

	g, err := Deserialize(f, data)
	if err != nil {
		return g, err
	}
	return Populate(g), nil
}
