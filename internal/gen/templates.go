package gen

import "text/template"

// autogenMsg heads every emitted block. Each template below starts with a
// newline (via autogenMsg) and ends with one, so concatenated blocks stay
// one blank line apart.
const autogenMsg = "\n# Autogenerated by boilerplate-gen.  Do not edit as changes will be lost."

// mappableTemplate wraps a method whose result must be registered as the
// current mappable before being returned.
var mappableTemplate = template.Must(template.New("mappable").Parse(autogenMsg + `
@_autogen_docstring(Axes.{{.RealName}})
def {{.Func}}{{.Sig}}:
    __ret = gca().{{.RealName}}{{.Call}}
{{.Mappable}}
    return __ret
`))

// plainTemplate wraps a method whose result passes straight through.
var plainTemplate = template.Must(template.New("plain").Parse(autogenMsg + `
@docstring.copy_dedent(Axes.{{.RealName}})
def {{.Func}}{{.Sig}}:
    return gca().{{.RealName}}{{.Call}}
`))

// cmapTemplate emits one zero-argument colormap setter.
var cmapTemplate = template.Must(template.New("cmap").Parse(autogenMsg + `
def {{.Name}}():
    """
    Set the colormap to "{{.Name}}".

    This changes the default colormap as well as the colormap of the current
    image if there is one. See ` + "``help(colormaps)``" + ` for more information.
    """
    set_cmap("{{.Name}}")
`))

// wrapperData fills the two forwarding templates.
type wrapperData struct {
	Func     string
	RealName string
	Sig      string
	Call     string
	Mappable string
}

// cmapData fills the colormap template.
type cmapData struct {
	Name string
}
