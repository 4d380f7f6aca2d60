// Package webhook verifies and parses inbound Rynko webhook payloads.
//
// Rynko signs each delivery with HMAC-SHA256 over "<timestamp>.<payload>"
// using the subscription's signing secret, and sends the signature and
// timestamp in the X-Rynko-Signature and X-Rynko-Timestamp headers.
// Verification is purely local; it performs no network calls.
//
//	v := webhook.NewVerifier(secret)
//	event, err := v.ConstructEvent(body,
//		r.Header.Get(webhook.SignatureHeader),
//		r.Header.Get(webhook.TimestampHeader))
//	if err != nil {
//		w.WriteHeader(http.StatusUnauthorized)
//		return
//	}
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Headers carrying the delivery signature and timestamp.
const (
	SignatureHeader = "X-Rynko-Signature"
	TimestampHeader = "X-Rynko-Timestamp"
)

// DefaultTolerance is the maximum accepted clock skew between the
// delivery timestamp and now, in either direction.
const DefaultTolerance = 5 * time.Minute

// signaturePrefix is the optional version prefix on the signature header.
const signaturePrefix = "v1="

// SignatureError reports why a verification failed. Compare with
// errors.Is against the exported sentinel values.
type SignatureError struct {
	reason string
}

func (e *SignatureError) Error() string {
	return "webhook: " + e.reason
}

var (
	// ErrMissingParams means the payload, signature, timestamp, or
	// secret was absent.
	ErrMissingParams = &SignatureError{reason: "missing required parameters for signature verification"}

	// ErrInvalidTimestamp means the timestamp header was not an integer
	// count of seconds since the epoch.
	ErrInvalidTimestamp = &SignatureError{reason: "invalid timestamp format"}

	// ErrTimestampOutOfTolerance means the timestamp was too far in the
	// past or the future.
	ErrTimestampOutOfTolerance = &SignatureError{reason: "timestamp is outside the tolerance window"}

	// ErrSignatureMismatch means the computed signature did not match
	// the supplied one.
	ErrSignatureMismatch = &SignatureError{reason: "signature verification failed"}
)

// Verifier authenticates inbound webhook payloads. The zero Tolerance and
// Now fields fall back to DefaultTolerance and time.Now, so
// NewVerifier(secret) is ready to use.
type Verifier struct {
	// Secret is the subscription's signing secret.
	Secret string

	// Tolerance bounds accepted clock skew (default: 5 minutes). Both
	// stale and future-dated timestamps beyond it are rejected.
	Tolerance time.Duration

	// Now supplies the current time; overridable in tests.
	Now func() time.Time
}

// NewVerifier returns a Verifier with default tolerance.
func NewVerifier(secret string) *Verifier {
	return &Verifier{Secret: secret}
}

// VerifySignature checks that payload was signed by the configured secret
// at a time within the tolerance window. The signature may carry the
// "v1=" prefix or be bare hex; both are accepted. The comparison is
// constant-time.
func (v *Verifier) VerifySignature(payload []byte, signature, timestamp string) error {
	if len(payload) == 0 || signature == "" || timestamp == "" || v.Secret == "" {
		return ErrMissingParams
	}

	seconds, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}

	tolerance := v.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	now := time.Now()
	if v.Now != nil {
		now = v.Now()
	}
	skew := now.Unix() - seconds
	if skew < 0 {
		skew = -skew
	}
	if time.Duration(skew)*time.Second > tolerance {
		return ErrTimestampOutOfTolerance
	}

	expected := computeSignature(v.Secret, timestamp, payload)
	supplied := strings.TrimPrefix(signature, signaturePrefix)

	if !hmac.Equal([]byte(expected), []byte(supplied)) {
		return ErrSignatureMismatch
	}
	return nil
}

// ConstructEvent verifies the signature and parses the payload into a
// typed event. Verification failure short-circuits before any parsing.
func (v *Verifier) ConstructEvent(payload []byte, signature, timestamp string) (*Event, error) {
	if err := v.VerifySignature(payload, signature, timestamp); err != nil {
		return nil, err
	}
	return ParseEvent(payload)
}

// Sign computes the signature Rynko would send for payload at the given
// timestamp, with the "v1=" prefix. Useful for tests and for signing
// outbound deliveries in local development.
func (v *Verifier) Sign(payload []byte, timestamp string) string {
	return signaturePrefix + computeSignature(v.Secret, timestamp, payload)
}

// computeSignature returns lowercase hex HMAC-SHA256 over
// "<timestamp>.<payload>".
func computeSignature(secret, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
