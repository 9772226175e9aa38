package codec

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes codec errors
type ErrorKind int

const (
	KindOutOfRange ErrorKind = iota + 1
	KindNonSquare
	KindShapeMismatch
	KindNoPrefix
	KindTruncatedBits
)

func (k ErrorKind) String() string {
	switch k {
	case KindOutOfRange:
		return "OutOfRange"
	case KindNonSquare:
		return "NonSquare"
	case KindShapeMismatch:
		return "ShapeMismatch"
	case KindNoPrefix:
		return "NoPrefix"
	case KindTruncatedBits:
		return "TruncatedBits"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// CodecError represents an error from entropy coding or decoding
type CodecError struct {
	Kind    ErrorKind
	Message string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// errKind creates a CodecError and returns it
func errKind(kind ErrorKind, format string, args ...interface{}) error {
	return &CodecError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsCodecError checks if an error is a CodecError and returns it
func IsCodecError(err error) (*CodecError, bool) {
	var cerr *CodecError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}
