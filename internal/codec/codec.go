package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// Encoding selects a textual representation for a byte buffer.
//
// Encode treats an unknown Encoding as Raw, while Decode rejects it with an
// *EncodingError. Values from ParseEncoding are always known.
type Encoding int

const (
	// Raw is the identity transform.
	Raw Encoding = iota
	// Base58 is the Bitcoin-alphabet base58 transform.
	Base58
	// Base64 is standard padded base64.
	Base64
)

// Default is the encoding used when none is given.
const Default = Base58

var (
	// ErrEncoding is matched by every *EncodingError.
	ErrEncoding = errors.New("malformed encoded text")
	// ErrUnknownEncoding is returned by ParseEncoding for unsupported names.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// EncodingError reports text that is not valid for the requested Encoding.
type EncodingError struct {
	Encoding Encoding
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEncoding.
func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// String returns the lower-case name of the encoding.
func (e Encoding) String() string {
	switch e {
	case Raw:
		return "raw"
	case Base58:
		return "base58"
	case Base64:
		return "base64"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// ParseEncoding maps "raw", "base58" or "base64" (any case) to an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw":
		return Raw, nil
	case "base58":
		return Base58, nil
	case "base64":
		return Base64, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
	}
}

// Encode returns b in the given encoding. Unknown encodings fall back to Raw.
func Encode(b []byte, enc Encoding) string {
	switch enc {
	case Base58:
		return base58.Encode(b)
	case Base64:
		return base64.StdEncoding.EncodeToString(b)
	default:
		return string(b)
	}
}

// Decode reverses Encode. It fails with *EncodingError when s holds
// characters outside the alphabet of enc.
func Decode(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case Raw:
		return []byte(s), nil
	case Base58:
		if s == "" {
			return []byte{}, nil
		}
		b, err := base58.Decode(s)
		if err != nil {
			return nil, &EncodingError{Encoding: enc, Err: err}
		}
		return b, nil
	case Base64:
		// The stdlib decoder skips CR and LF; they are not in the alphabet.
		if strings.ContainsAny(s, "\r\n") {
			return nil, &EncodingError{Encoding: enc, Err: ErrEncoding}
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, &EncodingError{Encoding: enc, Err: err}
		}
		return b, nil
	default:
		return nil, &EncodingError{Encoding: enc, Err: ErrUnknownEncoding}
	}
}
