package gen

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"boilerplate-generator/internal/api"
)

// maxDeclLine is the column limit a one-line declaration or forwarding call
// may not reach before wrapping kicks in.
const maxDeclLine = 80

// Signature renders the declaration parameter list for a wrapper named
// name. When the composed "def <name><sig>" line would reach the column
// limit, the opening parenthesis moves onto its own line and the parameter
// list is wrapped.
func (g *Generator) Signature(name string, params []api.Param) string {
	sig := g.renderSignature(params)

	if len("def "+name+sig) >= maxDeclLine {
		// Move opening parenthesis before the newline.
		sig = "(\n" + strings.Replace(fill(sig), "(", "", 1)
	}

	return sig
}

// renderSignature reassembles the one-line parameter list, inserting the
// "/" terminator after positional-only parameters and the bare "*"
// separator before keyword-only parameters when no *args precedes them.
func (g *Generator) renderSignature(params []api.Param) string {
	var parts []string

	starRendered := false

	for i, p := range params {
		switch p.Kind {
		case api.KindVarPositional:
			starRendered = true

			parts = append(parts, "*"+p.Name)

		case api.KindVarKeyword:
			parts = append(parts, "**"+p.Name)

		case api.KindKeywordOnly:
			if !starRendered {
				starRendered = true

				parts = append(parts, "*")
			}

			parts = append(parts, g.renderParam(p))

		case api.KindPositionalOnly:
			parts = append(parts, g.renderParam(p))

			if i+1 >= len(params) || params[i+1].Kind != api.KindPositionalOnly {
				parts = append(parts, "/")
			}

		default:
			parts = append(parts, g.renderParam(p))
		}
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (g *Generator) renderParam(p api.Param) string {
	if !p.HasDefault() {
		return p.Name
	}

	return p.Name + "=" + g.renderDefault(p.Default)
}

// renderDefault returns the printable form of a default value. Sentinel
// defaults render as the curated short dotted alias; everything else
// renders as its literal representation. An unknown sentinel falls through
// to its bare name, which keeps the output readable even if unresolvable.
func (g *Generator) renderDefault(d *api.DefaultValue) string {
	if d.Sentinel != "" {
		if alias, ok := g.config.SentinelAliases[d.Sentinel]; ok {
			return alias
		}

		return d.Sentinel
	}

	return literalRepr(d.Literal)
}

// literalRepr renders a YAML literal the way the target language would
// repr it. Scalars and sequences round-trip; anything else falls back to a
// generic rendering that may not re-parse. That gap is long-standing
// behavior and is deliberately not papered over.
func literalRepr(n *yaml.Node) string {
	if n == nil {
		return "None"
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return scalarRepr(n)

	case yaml.SequenceNode:
		// Render sequences as tuples, matching how the real defaults
		// (e.g. center=(0, 0)) are declared.
		parts := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			parts = append(parts, literalRepr(c))
		}

		if len(parts) == 1 {
			return "(" + parts[0] + ",)"
		}

		return "(" + strings.Join(parts, ", ") + ")"
	}

	var v interface{}
	if err := n.Decode(&v); err != nil {
		return n.Value
	}

	return fmt.Sprintf("%v", v)
}

func scalarRepr(n *yaml.Node) string {
	switch n.Tag {
	case "!!null":
		return "None"

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil && b {
			return "True"
		}

		return "False"

	case "!!int", "!!float":
		return n.Value

	case "!!str":
		return "'" + strings.ReplaceAll(n.Value, "'", `\'`) + "'"
	}

	return n.Value
}
