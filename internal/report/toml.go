package report

import (
	"math"
	"strconv"
)

// TOML integers are signed 64-bit, so unsigned values above math.MaxInt64
// are written as decimal strings.
type tomlResult struct {
	Input      string    `toml:"input"`
	VersionSum any       `toml:"version_sum"`
	Value      any       `toml:"value"`
	Tree       *tomlNode `toml:"tree,omitempty"`
}

type tomlNode struct {
	Kind     string     `toml:"kind"`
	Version  uint8      `toml:"version"`
	Op       string     `toml:"op,omitempty"`
	Mode     string     `toml:"mode,omitempty"`
	Value    any        `toml:"value,omitempty"`
	Children []tomlNode `toml:"children,omitempty"`
}

func tomlResultOf(r Result) tomlResult {
	out := tomlResult{
		Input:      r.Input,
		VersionSum: tomlUint(r.VersionSum),
		Value:      tomlUint(r.Value),
	}
	if r.Tree != nil {
		n := tomlNodeOf(*r.Tree)
		out.Tree = &n
	}
	return out
}

func tomlNodeOf(n Node) tomlNode {
	out := tomlNode{Kind: n.Kind, Version: n.Version, Op: n.Op, Mode: n.Mode}
	if n.Value != nil {
		out.Value = tomlUint(*n.Value)
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, tomlNodeOf(c))
	}
	return out
}

func tomlUint(v uint64) any {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10)
	}
	return int64(v)
}
