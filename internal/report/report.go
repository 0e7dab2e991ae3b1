// Package report renders decode results for humans and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("report: unknown format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCBOR Format = "cbor"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML, FormatCBOR:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	case FormatCBOR:
		return "application/cbor"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Result is the outcome of decoding one transmission.
type Result struct {
	Input      string `json:"input" yaml:"input" toml:"input" cbor:"input"`
	VersionSum uint64 `json:"version_sum" yaml:"version_sum" toml:"version_sum" cbor:"version_sum"`
	Value      uint64 `json:"value" yaml:"value" toml:"value" cbor:"value"`
	Tree       *Node  `json:"tree,omitempty" yaml:"tree,omitempty" toml:"tree,omitempty" cbor:"tree,omitempty"`
}

// Node mirrors a packet for serialisation. Value is set on literals only.
type Node struct {
	Kind     string  `json:"kind" yaml:"kind" toml:"kind" cbor:"kind"`
	Version  uint8   `json:"version" yaml:"version" toml:"version" cbor:"version"`
	Op       string  `json:"op,omitempty" yaml:"op,omitempty" toml:"op,omitempty" cbor:"op,omitempty"`
	Mode     string  `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty" cbor:"mode,omitempty"`
	Value    *uint64 `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty" cbor:"value,omitempty"`
	Children []Node  `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty" cbor:"children,omitempty"`
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r Result) error {
	switch f {
	case FormatText, "":
		_, err := fmt.Fprintf(w, "[1/2] Result: %d\n[2/2] Result: %d\n", r.VersionSum, r.Value)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(tomlResultOf(r))
	case FormatCBOR:
		return cbor.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
