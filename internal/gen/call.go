package gen

import (
	"strings"

	"boilerplate-generator/internal/api"
)

// callPrefix is len("    __ret = gca()."), the fixed text a forwarding call
// is emitted after.
const callPrefix = 18

// Call builds the literal argument-forwarding expression a wrapper uses to
// call through to the real method. Positional-or-keyword and keyword-only
// parameters forward as name=name, *args and **kwargs pass through as-is.
// Positional-only parameters have no transparent forwarding syntax and
// abort generation.
func (g *Generator) Call(name string, params []api.Param) (string, error) {
	parts := make([]string, 0, len(params))

	for _, p := range params {
		switch p.Kind {
		case api.KindPositionalOrKeyword, api.KindKeywordOnly:
			parts = append(parts, p.Name+"="+p.Name)

		case api.KindVarPositional:
			parts = append(parts, "*"+p.Name)

		case api.KindVarKeyword:
			parts = append(parts, "**"+p.Name)

		default:
			return "", &UnsupportedParamError{Func: name, Param: p.Name}
		}
	}

	// Bail out in case of a name collision with the emitted module's
	// helpers; the generated wrapper would shadow them silently.
	for _, p := range params {
		for _, reserved := range g.config.Reserved {
			if p.Name == reserved {
				return "", &CollisionError{Func: name, Param: p.Name}
			}
		}
	}

	call := "(" + strings.Join(parts, ", ") + ")"

	if callPrefix+len(name)+len(call) >= maxDeclLine {
		call = "(\n" + fill(call[1:])
	}

	return call, nil
}
