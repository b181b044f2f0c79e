package api

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParamKind represents the calling convention of a formal parameter.
type ParamKind int

const (
	// KindPositionalOnly parameters may only be supplied by position.
	// They cannot be forwarded transparently and are rejected by the
	// call builder.
	KindPositionalOnly ParamKind = iota
	// KindPositionalOrKeyword parameters may be supplied either way.
	KindPositionalOrKeyword
	// KindVarPositional is the single *args-style catch-all.
	KindVarPositional
	// KindKeywordOnly parameters may only be supplied by keyword.
	KindKeywordOnly
	// KindVarKeyword is the single **kwargs-style catch-all.
	KindVarKeyword
)

// String returns a human-readable representation of the ParamKind.
func (k ParamKind) String() string {
	switch k {
	case KindPositionalOnly:
		return "positional_only"
	case KindPositionalOrKeyword:
		return "positional_or_keyword"
	case KindVarPositional:
		return "var_positional"
	case KindKeywordOnly:
		return "keyword_only"
	case KindVarKeyword:
		return "var_keyword"
	default:
		return "unknown"
	}
}

// ParseKind parses the YAML spelling of a parameter kind. The empty string
// means positional-or-keyword, which is by far the most common kind.
func ParseKind(s string) (ParamKind, error) {
	switch s {
	case "":
		return KindPositionalOrKeyword, nil
	case "positional_only":
		return KindPositionalOnly, nil
	case "positional_or_keyword":
		return KindPositionalOrKeyword, nil
	case "var_positional":
		return KindVarPositional, nil
	case "keyword_only":
		return KindKeywordOnly, nil
	case "var_keyword":
		return KindVarKeyword, nil
	default:
		return KindPositionalOrKeyword, fmt.Errorf("unknown parameter kind %q", s)
	}
}

// DefaultValue is the declared default of a parameter. Exactly one of the
// two fields is set: Sentinel names a well-known callable default that must
// render as a curated alias, Literal holds the raw YAML value for everything
// else.
type DefaultValue struct {
	Sentinel string
	Literal  *yaml.Node
}

// Param is one formal parameter of an Axes method.
type Param struct {
	Name string
	Kind ParamKind
	// Default is nil when the parameter has no default.
	Default *DefaultValue
}

// HasDefault returns true if the parameter declares a default value.
func (p Param) HasDefault() bool {
	return p.Default != nil
}

// Method describes one Axes method. Params is ordered as declared and
// includes the implicit receiver as its first entry.
type Method struct {
	Name   string
	Params []Param
}

// Formals returns the parameters with the implicit receiver stripped.
func (m *Method) Formals() []Param {
	if len(m.Params) == 0 {
		return nil
	}

	return m.Params[1:]
}

// MethodSet holds the full Axes method table in declaration order with
// by-name lookup.
type MethodSet struct {
	Methods []Method

	index map[string]int
}

// NewMethodSet builds a MethodSet from an ordered method list. Later
// duplicates win the lookup, matching how attribute lookup would behave.
func NewMethodSet(methods []Method) *MethodSet {
	s := &MethodSet{
		Methods: methods,
		index:   make(map[string]int, len(methods)),
	}

	for i := range methods {
		s.index[methods[i].Name] = i
	}

	return s
}

// Lookup returns the method with the given name, or false if absent.
func (s *MethodSet) Lookup(name string) (*Method, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return &s.Methods[i], true
}

// Len returns the number of methods in the set.
func (s *MethodSet) Len() int {
	return len(s.Methods)
}
