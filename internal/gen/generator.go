package gen

import (
	"bytes"
	"fmt"

	"boilerplate-generator/internal/api"
)

// bootstrapCall re-populates the documentation index after all generated
// definitions; downstream tooling depends on it being the final statement.
const bootstrapCall = "_setup_pyplot_info_docstrings()"

// Generator renders pyplot boilerplate from a fixed config and the Axes
// signature metadata. It holds no mutable state across runs; identical
// inputs produce byte-identical output.
type Generator struct {
	config  Config
	methods *api.MethodSet
}

// NewGenerator creates a Generator over the given tables and metadata.
func NewGenerator(config Config, methods *api.MethodSet) *Generator {
	return &Generator{config: config, methods: methods}
}

// Blocks renders every output block in its contractual order: one
// forwarding wrapper per command table entry, one setter per colormap,
// then the trailing bootstrap lines.
func (g *Generator) Blocks() ([]string, error) {
	blocks := make([]string, 0, len(g.config.Commands)+len(g.config.Cmaps)+2)

	for _, cmd := range g.config.Commands {
		block, err := g.wrapperBlock(cmd)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
	}

	for _, name := range g.config.Cmaps {
		block, err := g.cmapBlock(name)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
	}

	blocks = append(blocks, "\n", bootstrapCall)

	return blocks, nil
}

// Generate renders the full generated payload as one byte slice.
func (g *Generator) Generate() ([]byte, error) {
	blocks, err := g.Blocks()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, b := range blocks {
		buf.WriteString(b)
	}

	return buf.Bytes(), nil
}

// wrapperBlock renders one forwarding function definition.
func (g *Generator) wrapperBlock(cmd Command) (string, error) {
	real := cmd.Real()

	method, ok := g.methods.Lookup(real)
	if !ok {
		return "", &UnknownMethodError{Func: cmd.Name, RealName: real}
	}

	// Drop the implicit receiver.
	params := method.Formals()

	sig := g.Signature(cmd.Name, params)

	call, err := g.Call(cmd.Name, params)
	if err != nil {
		return "", err
	}

	data := wrapperData{
		Func:     cmd.Name,
		RealName: real,
		Sig:      sig,
		Call:     call,
	}

	tmpl := plainTemplate
	if stmt, ok := g.config.Mappable[cmd.Name]; ok {
		tmpl = mappableTemplate
		data.Mappable = "    " + stmt
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing wrapper template for %s: %w", cmd.Name, err)
	}

	return buf.String(), nil
}

// cmapBlock renders one colormap setter definition.
func (g *Generator) cmapBlock(name string) (string, error) {
	var buf bytes.Buffer
	if err := cmapTemplate.Execute(&buf, cmapData{Name: name}); err != nil {
		return "", fmt.Errorf("executing colormap template for %s: %w", name, err)
	}

	return buf.String(), nil
}
