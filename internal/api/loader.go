package api

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// methodsFile is the YAML schema of the signature table.
type methodsFile struct {
	Methods []methodYAML `yaml:"methods"`
}

type methodYAML struct {
	Name   string      `yaml:"name"`
	Params []paramYAML `yaml:"params"`
}

type paramYAML struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Default is captured as a raw node so that an absent key and an
	// explicit "default: null" stay distinguishable. It must be a value
	// (not a pointer): yaml.v3 only decodes arbitrary content into a
	// yaml.Node value, so absence is signalled by a zero node instead of
	// a nil pointer.
	Default yaml.Node `yaml:"default"`
}

// LoadFile loads and parses a YAML signature table from the given path.
func LoadFile(path string) (*MethodSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signature table %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MethodSet.
func Parse(data []byte) (*MethodSet, error) {
	var mf methodsFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signature table YAML: %w", err)
	}

	methods := make([]Method, 0, len(mf.Methods))

	for _, my := range mf.Methods {
		m, err := convertMethod(my)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", my.Name, err)
		}

		methods = append(methods, m)
	}

	return NewMethodSet(methods), nil
}

// convertMethod converts the YAML form of a method into the model.
func convertMethod(my methodYAML) (Method, error) {
	m := Method{Name: my.Name}

	for _, py := range my.Params {
		kind, err := ParseKind(py.Kind)
		if err != nil {
			return Method{}, fmt.Errorf("param %s: %w", py.Name, err)
		}

		var def *yaml.Node
		if !py.Default.IsZero() {
			node := py.Default
			def = &node
		}

		m.Params = append(m.Params, Param{
			Name:    py.Name,
			Kind:    kind,
			Default: convertDefault(def),
		})
	}

	return m, nil
}

// convertDefault interprets a raw default node. A single-key mapping of the
// form {sentinel: name} selects the curated-alias rendering path; every
// other node is carried as a literal.
func convertDefault(node *yaml.Node) *DefaultValue {
	if node == nil {
		return nil
	}

	if node.Kind == yaml.MappingNode && len(node.Content) == 2 &&
		node.Content[0].Value == "sentinel" {
		return &DefaultValue{Sentinel: node.Content[1].Value}
	}

	return &DefaultValue{Literal: node}
}
