package api

import (
	"fmt"
	"regexp"

	"boilerplate-generator/internal/diagnostic"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// kindRank orders parameter kinds as a legal declaration must: positional-only,
// then positional-or-keyword, then *args, then keyword-only, then **kwargs.
var kindRank = map[ParamKind]int{
	KindPositionalOnly:      0,
	KindPositionalOrKeyword: 1,
	KindVarPositional:       2,
	KindKeywordOnly:         3,
	KindVarKeyword:          4,
}

// Validate checks a loaded MethodSet for structural problems. Errors make
// the table unusable for generation; warnings flag suspicious but workable
// declarations.
func Validate(s *MethodSet) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("method_set_is_nil", "method set is nil", "", "")
		return res
	}

	seenMethods := map[string]struct{}{}

	for i := range s.Methods {
		m := &s.Methods[i]

		if !identifierRe.MatchString(m.Name) {
			res.AddError("invalid_method_name",
				fmt.Sprintf("method name %q is not an identifier", m.Name), m.Name, "")
		}

		if _, ok := seenMethods[m.Name]; ok {
			res.AddError("duplicate_method",
				fmt.Sprintf("duplicate method %q", m.Name), m.Name, "")
		}

		seenMethods[m.Name] = struct{}{}

		validateParams(res, m)
	}

	return res
}

// validateParams checks one method's parameter list.
func validateParams(res *diagnostic.Diagnostics, m *Method) {
	seen := map[string]struct{}{}
	lastRank := -1
	varPositionals := 0
	varKeywords := 0
	defaultSeen := false

	for _, p := range m.Params {
		if !identifierRe.MatchString(p.Name) {
			res.AddError("invalid_param_name",
				fmt.Sprintf("parameter name %q is not an identifier", p.Name), m.Name, p.Name)
		}

		if _, ok := seen[p.Name]; ok {
			res.AddError("duplicate_param",
				fmt.Sprintf("duplicate parameter %q", p.Name), m.Name, p.Name)
		}

		seen[p.Name] = struct{}{}

		rank := kindRank[p.Kind]
		if rank < lastRank {
			res.AddError("param_kind_order",
				fmt.Sprintf("%s parameter may not follow %s parameters",
					p.Kind, rankName(lastRank)), m.Name, p.Name)
		}

		lastRank = rank

		switch p.Kind {
		case KindVarPositional:
			varPositionals++

			if p.Name != "args" {
				res.AddWarning("unconventional_var_positional",
					fmt.Sprintf("var-positional parameter is named %q, conventionally *args", p.Name),
					m.Name, p.Name)
			}

		case KindVarKeyword:
			varKeywords++

			if p.Name != "kwargs" {
				res.AddWarning("unconventional_var_keyword",
					fmt.Sprintf("var-keyword parameter is named %q, conventionally **kwargs", p.Name),
					m.Name, p.Name)
			}
		}

		if p.Kind == KindVarPositional || p.Kind == KindVarKeyword {
			if p.HasDefault() {
				res.AddError("var_param_with_default",
					fmt.Sprintf("%s parameter %q may not declare a default", p.Kind, p.Name),
					m.Name, p.Name)
			}

			continue
		}

		// A positional parameter without a default may not follow one with
		// a default. Keyword-only parameters are exempt.
		if p.Kind == KindKeywordOnly {
			continue
		}

		if p.HasDefault() {
			defaultSeen = true
		} else if defaultSeen {
			res.AddError("non_default_after_default",
				fmt.Sprintf("parameter %q without default follows a parameter with one", p.Name),
				m.Name, p.Name)
		}
	}

	if varPositionals > 1 {
		res.AddError("multiple_var_positional",
			"method declares more than one var-positional parameter", m.Name, "")
	}

	if varKeywords > 1 {
		res.AddError("multiple_var_keyword",
			"method declares more than one var-keyword parameter", m.Name, "")
	}
}

func rankName(rank int) string {
	for k, r := range kindRank {
		if r == rank {
			return k.String()
		}
	}

	return "unknown"
}
