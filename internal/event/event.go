package event

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ltoaccount/internal/codec"
	"ltoaccount/internal/domain"
	"ltoaccount/internal/protocol/signing"
)

var (
	// ErrNoSignKey is returned when the canonical message is requested before a sign key is set.
	ErrNoSignKey = errors.New("event has no sign key")
	// ErrNoSignature is returned when the hash is requested before the event is signed.
	ErrNoSignature = errors.New("event is not signed")
)

// Event is a ledger event. Body carries the base58-encoded payload.
type Event struct {
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
	Previous  string `json:"previous"`
	SignKey   string `json:"signkey,omitempty"`
	Signature string `json:"signature,omitempty"`
	Hash      string `json:"hash,omitempty"`
}

// New returns an unsigned event carrying payload, chained after previous.
func New(payload []byte, previous string, at time.Time) *Event {
	return &Event{
		Body:      codec.Encode(payload, codec.Base58),
		Timestamp: at.Unix(),
		Previous:  previous,
	}
}

// Payload decodes the event body.
func (e *Event) Payload() ([]byte, error) {
	return codec.Decode(e.Body, codec.Base58)
}

func (e *Event) SetSignKey(key string)   { e.SignKey = key }
func (e *Event) SetSignature(sig string) { e.Signature = sig }
func (e *Event) SetHash(hash string)     { e.Hash = hash }

// CanonicalMessage returns the bytes covered by the signature.
func (e *Event) CanonicalMessage() ([]byte, error) {
	if e.SignKey == "" {
		return nil, ErrNoSignKey
	}
	return []byte(strings.Join([]string{
		e.Body,
		strconv.FormatInt(e.Timestamp, 10),
		e.Previous,
		e.SignKey,
	}, "\n")), nil
}

// ComputeHash returns base58(sha256(message || "\n" || signature)).
func (e *Event) ComputeHash() (string, error) {
	if e.Signature == "" {
		return "", ErrNoSignature
	}
	msg, err := e.CanonicalMessage()
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write(msg)
	h.Write([]byte{'\n'})
	h.Write([]byte(e.Signature))
	return codec.Encode(h.Sum(nil), codec.Base58), nil
}

// Verify checks the signature against the event's own sign key and the hash
// against the signed content.
func (e *Event) Verify() (bool, error) {
	if e.Signature == "" {
		return false, ErrNoSignature
	}
	if _, err := e.Payload(); err != nil {
		return false, fmt.Errorf("event body: %w", err)
	}
	pub, err := codec.Decode(e.SignKey, codec.Base58)
	if err != nil {
		return false, err
	}
	if len(pub) != domain.Ed25519PublicSize {
		return false, nil
	}
	pair, err := domain.NewSigningKeyPair(pub, nil)
	if err != nil {
		return false, err
	}
	sig, err := codec.Decode(e.Signature, codec.Base58)
	if err != nil {
		return false, err
	}
	msg, err := e.CanonicalMessage()
	if err != nil {
		return false, err
	}
	ok, err := signing.Verify(domain.NewKeyMaterial(domain.WithSigning(pair)), sig, msg)
	if err != nil || !ok {
		return false, err
	}
	hash, err := e.ComputeHash()
	if err != nil {
		return false, err
	}
	return hash == e.Hash, nil
}

// Compile-time assertion that Event implements domain.SignableEvent.
var _ domain.SignableEvent = (*Event)(nil)
