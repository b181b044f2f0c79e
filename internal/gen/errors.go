package gen

import "fmt"

// MissingMarkerError reports that the target file lacks the marker line
// after which generated content is spliced. Nothing is written when this
// is returned.
type MissingMarkerError struct {
	Path   string
	Marker string
}

func (e *MissingMarkerError) Error() string {
	return fmt.Sprintf("%s must contain the exact line: %s", e.Path, e.Marker)
}

// CollisionError reports a forwarded parameter whose name would shadow one
// of the helper names the generated module relies on. Emitting the wrapper
// anyway would silently break it, so generation aborts instead.
type CollisionError struct {
	Func  string
	Param string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("Axes method %s has parameter named %s", e.Func, e.Param)
}

// UnsupportedParamError reports a positional-only parameter. The forwarding
// syntax set has no way to pass one through, so generation fails loudly
// rather than emit an incorrect call.
type UnsupportedParamError struct {
	Func  string
	Param string
}

func (e *UnsupportedParamError) Error() string {
	return fmt.Sprintf("Axes method %s has positional-only parameter %s, which cannot be forwarded",
		e.Func, e.Param)
}

// UnknownMethodError reports a command table entry whose real method is
// absent from the signature metadata.
type UnknownMethodError struct {
	Func     string
	RealName string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("command %s refers to Axes method %s, which is not in the signature table",
		e.Func, e.RealName)
}
