// Package gen renders the autogenerated portion of the pyplot module.
//
// Generation walks a fixed command table, reconstructs each Axes method
// signature from the metadata model, builds the forwarding call expression,
// and fills one of three text/template definitions per entry.
//
// Emission patterns:
//   - Plain forwarding wrappers (return gca().method(...))
//   - Mappable-registering wrappers (capture __ret, register it, return it)
//   - Colormap setters (one zero-argument function per colormap name)
//   - Trailing bootstrap lines re-populating the docstring index
//
// Output is deterministic: the same tables and metadata always yield
// byte-identical text.
package gen
