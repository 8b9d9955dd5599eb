// Package script runs YAML-described sequences of operations against a
// dynamic array of strings.
package script

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	OpAppend   = "append"
	OpAt       = "at"
	OpIndexOf  = "index_of"
	OpContains = "contains"
	OpCountOf  = "count_of"
	OpRemoveAt = "remove_at"
	OpRemove   = "remove"
	OpLen      = "len"
	OpCap      = "cap"
	OpRender   = "render"
)

var (
	ErrUnknownOp = errors.New("unknown op")
)

type (
	Op struct {
		Op     string   `yaml:"op"`
		Value  string   `yaml:"value"`
		Values []string `yaml:"values"`
		Index  int      `yaml:"index"`

		// Fresh makes the op use a new string instance instead of the
		// shared one, which only matters under identity equality.
		Fresh bool `yaml:"fresh"`
	}

	Script struct {
		// Capacity overrides the configured capacity when set.
		Capacity *int `yaml:"capacity"`
		Ops      []Op `yaml:"ops"`
	}
)

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	return &s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return Parse(data)
}

// Demo grows a two slot array to four, then finds and removes by value.
func Demo() *Script {
	capacity := 2
	return &Script{
		Capacity: &capacity,
		Ops: []Op{
			{Op: OpAppend, Values: []string{"a", "b", "c"}},
			{Op: OpCap},
			{Op: OpLen},
			{Op: OpIndexOf, Value: "a"},
			{Op: OpRemove, Value: "b"},
			{Op: OpCap},
			{Op: OpRender},
		},
	}
}
