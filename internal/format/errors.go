package format

import "errors"

var (
	// ErrTruncatedStream indicates the stream ended before an EMR_EOF record,
	// or a record header did not fit in the remaining bytes.
	ErrTruncatedStream = errors.New("format: truncated stream")
	// ErrOversizedRecord indicates a record's nSize runs past the end of the stream.
	ErrOversizedRecord = errors.New("format: record size exceeds stream")
	// ErrUndersizedRecord indicates a record's nSize is smaller than its own header.
	ErrUndersizedRecord = errors.New("format: record size below header size")
	// ErrHeaderMismatch indicates the EMR_HEADER totals disagree with the stream.
	ErrHeaderMismatch = errors.New("format: header totals mismatch")
	// ErrSignatureMismatch indicates the header did not carry the " EMF" signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrWrongType indicates a record was decoded as a type it is not.
	ErrWrongType = errors.New("format: unexpected record type")
	// ErrUnsupported indicates the structure or feature is not yet supported.
	ErrUnsupported = errors.New("format: unsupported feature")
)
