package dataformat

import (
	"bytes"
	"errors"
	"fmt"
)

// magic identifies serialized engine blobs. It is stable across all
// format versions; the byte after it selects the schema revision.
const magic = "ADBGODT"

// datMagic is the magic constant as it appears on the wire.
var datMagic = []byte(magic)

// formatVersion is the current schema revision. Bump only when the
// positional record changes in a way trailing-field defaulting cannot
// absorb.
const formatVersion byte = 0

const headerLen = len(magic) + 1

var (
	// ErrUnrecognizedFormat reports input whose framing header does not
	// match the expected magic constant. It is returned before any payload
	// decoding is attempted.
	ErrUnrecognizedFormat = errors.New("unrecognized data format")

	// ErrUnsupportedVersion reports a valid magic constant followed by a
	// version byte this reader does not understand. It matches
	// ErrUnrecognizedFormat under errors.Is.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported version", ErrUnrecognizedFormat)
)

// SerializationError wraps an encoder failure during serialization. The
// data model is constructed to always be representable, so hitting this
// indicates a bug or resource exhaustion rather than bad input.
type SerializationError struct {
	cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed: %v", e.cause)
}

func (e *SerializationError) Unwrap() error { return e.cause }

// DeserializationError reports a payload that could not be decoded:
// truncated input, or a field whose on-wire shape disagrees with the
// schema. Field names the canonical schema field that failed; it is empty
// when the record itself was malformed.
type DeserializationError struct {
	Field string
	cause error
}

func (e *DeserializationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("deserialization failed: %v", e.cause)
	}
	return fmt.Sprintf("deserialization failed at field %q: %v", e.Field, e.cause)
}

func (e *DeserializationError) Unwrap() error { return e.cause }

// validateHeader checks the magic constant and version byte. It never
// touches the payload, so foreign or corrupt input is rejected before any
// decoding work.
func validateHeader(data []byte) error {
	if len(data) < headerLen {
		return fmt.Errorf("%w: input shorter than header (%d bytes)", ErrUnrecognizedFormat, len(data))
	}
	if !bytes.Equal(data[:len(datMagic)], datMagic) {
		return fmt.Errorf("%w: bad magic", ErrUnrecognizedFormat)
	}
	if v := data[len(datMagic)]; v != formatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	return nil
}
