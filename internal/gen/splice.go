package gen

import (
	"bytes"
	"fmt"
	"os"
)

// Marker is the magic line that must exist in the target file; everything
// after it is regenerated and must not be hand-edited.
const Marker = "################# REMAINING CONTENT GENERATED BY " +
	"boilerplate-gen ##############\n"

// filePerm matches the usual permission for generated source files.
const filePerm = 0o644

// Splice truncates the file at path immediately after the marker line and
// appends the generated payload. The target is read and rewritten in one
// scoped operation; there is no partial-write recovery, a failure mid-write
// leaves the file truncated and the run must be repeated.
func Splice(path string, generated []byte) error {
	orig, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading target %s: %w", path, err)
	}

	head, ok := splitAfterMarker(orig)
	if !ok {
		return &MissingMarkerError{Path: path, Marker: Marker}
	}

	var buf bytes.Buffer
	buf.Write(head)
	buf.WriteByte('\n')
	buf.Write(generated)
	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing target %s: %w", path, err)
	}

	return nil
}

// CheckMarker verifies that the target file contains the marker line
// without modifying anything.
func CheckMarker(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading target %s: %w", path, err)
	}

	if _, ok := splitAfterMarker(src); !ok {
		return &MissingMarkerError{Path: path, Marker: Marker}
	}

	return nil
}

// splitAfterMarker returns everything up to and including the marker line.
// The marker must occupy a whole line of its own.
func splitAfterMarker(src []byte) ([]byte, bool) {
	if bytes.HasPrefix(src, []byte(Marker)) {
		return src[:len(Marker)], true
	}

	i := bytes.Index(src, []byte("\n"+Marker))
	if i < 0 {
		return nil, false
	}

	end := i + 1 + len(Marker)

	return src[:end], true
}
