package codec

import (
	"github.com/mitchellh/mapstructure"
)

// Node kinds accepted in a tree definition.
const (
	KindLeaf   = "leaf"
	KindBranch = "branch"
)

// NodeSpec is the serialized form of one tree node. It carries both yaml
// and json tags so definitions can arrive from files or HTTP bodies
// unchanged.
type NodeSpec struct {
	Kind     string     `yaml:"kind" json:"kind"`
	Payload  string     `yaml:"payload,omitempty" json:"payload,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty" json:"children,omitempty"`

	// Meta holds free-form annotations (names, labels) that do not affect
	// rendering. Decode it into a typed struct with DecodeMeta.
	Meta map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// DecodeMeta decodes the node's Meta map into a typed struct using
// mapstructure tags.
func (s *NodeSpec) DecodeMeta(out any) error {
	return mapstructure.Decode(s.Meta, out)
}
