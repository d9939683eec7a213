package parser

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YFile is the top-level topology document.
type YFile struct {
	Regions []YRegion `yaml:"regions" json:"regions" validate:"dive"`
}

// YRegion is one record of the topology tree. A record with child nodes
// becomes a subgraph, anything else a leaf.
type YRegion struct {
	Name        string        `yaml:"name" json:"name" validate:"required"`
	DisplayName *string       `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	EntryPoint  *string       `yaml:"entry_point,omitempty" json:"entry_point,omitempty"`
	Nodes       []YRegion     `yaml:"nodes,omitempty" json:"nodes,omitempty" validate:"dive"`
	Connections []YConnection `yaml:"connections,omitempty" json:"connections,omitempty" validate:"dive"`
}

type YConnection struct {
	Source  string   `yaml:"source" json:"source" validate:"required"`
	Targets []string `yaml:"targets" json:"targets" validate:"dive,required"`
}

func ParseYAML(path string) (*YFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAMLBytes(b)
}

func ParseYAMLBytes(b []byte) (*YFile, error) {
	var f YFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func ParseYAMLString(s string) (*YFile, error) {
	return ParseYAMLBytes([]byte(s))
}
