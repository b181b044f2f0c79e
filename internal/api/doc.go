// Package api provides the hand-maintained metadata model of the Axes
// plotting-surface API.
//
// The model mirrors what runtime signature introspection would yield for the
// real Axes type: for each method, an ordered parameter list with name,
// calling-convention kind, and default-value metadata. The table is declared
// in YAML and loaded with gopkg.in/yaml.v3.
//
// Key types:
//   - ParamKind: the calling convention of a formal parameter
//   - Param: name + kind + optional default
//   - Method: named method with its ordered parameters (receiver included)
//   - MethodSet: the full table with name lookup
package api
