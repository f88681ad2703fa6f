package masume

import "fmt"

// StructuralError is returned when a document is malformed: a required
// field is missing, tile data has the wrong length, a layer or document
// kind is unrecognized, or an object template references another
// template.
type StructuralError struct {
	Path   string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed document: %s", e.Reason)
	}
	return fmt.Sprintf("malformed document %q: %s", e.Path, e.Reason)
}

// UnsupportedError is returned for constructs that are recognized but
// not implemented, so callers can tell "this file uses a feature I
// don't support" apart from "this file is corrupt".
type UnsupportedError struct {
	Feature string
	Reason  string
}

func (e *UnsupportedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unsupported feature: %s", e.Feature)
	}
	return fmt.Sprintf("unsupported feature: %s: %s", e.Feature, e.Reason)
}

// unsupported creates an UnsupportedError with the given feature name.
func unsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{Feature: feature, Reason: reason}
}

// MissingCapabilityError is returned when a document requires an
// optional capability that is not available in this build, for example
// zstd-compressed tile data without the zstd decoder registered.
// Remedy names the change that makes the document parseable.
type MissingCapabilityError struct {
	Capability string
	Remedy     string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("missing optional capability %q: %s", e.Capability, e.Remedy)
}

// ReadError is returned when a referenced file could not be read. It
// wraps the underlying reason reported by the source.FileSystem.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// EncodingError is returned when a tile data payload is present but
// undecodable: malformed base64 text or a corrupt compressed stream.
type EncodingError struct {
	Stage string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("tile data %s failed: %v", e.Stage, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
