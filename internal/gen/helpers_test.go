package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"boilerplate-generator/internal/api"
)

// literalNode parses a YAML fragment into the node form defaults are
// carried as.
func literalNode(t *testing.T, src string) *yaml.Node {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content)

	return doc.Content[0]
}

func param(name string) api.Param {
	return api.Param{Name: name, Kind: api.KindPositionalOrKeyword}
}

func paramNone(t *testing.T, name string) api.Param {
	t.Helper()

	return api.Param{
		Name:    name,
		Kind:    api.KindPositionalOrKeyword,
		Default: &api.DefaultValue{Literal: literalNode(t, "null")},
	}
}

func paramLiteral(t *testing.T, name, src string) api.Param {
	t.Helper()

	return api.Param{
		Name:    name,
		Kind:    api.KindPositionalOrKeyword,
		Default: &api.DefaultValue{Literal: literalNode(t, src)},
	}
}

// methodSet builds a MethodSet whose methods all carry the implicit
// receiver in first position, the way the shipped table declares them.
func methodSet(methods ...api.Method) *api.MethodSet {
	for i := range methods {
		methods[i].Params = append([]api.Param{{Name: "self"}}, methods[i].Params...)
	}

	return api.NewMethodSet(methods)
}
