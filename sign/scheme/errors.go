package scheme

import "fmt"

// Error is the signature packages' shared error taxonomy.
type Error struct {
	Kind Kind
	// BatchLengths is populated only for ErrBatchVerification.
	NumPublicKeys, NumMessages, NumSignatures int
	// Cause is populated for ErrIO: a hash-to-curve, sampling or pairing
	// failure surfaced by hashutil/curve, not produced locally.
	Cause error
}

type Kind int

const (
	ErrBLSVerify Kind = iota
	ErrSchnorrVerify
	ErrAlgebraicVerify
	ErrSignatureNoInverse
	ErrSRSDifferent
	ErrBatchVerification
	ErrIO
)

func (e *Error) Error() string {
	switch e.Kind {
	case ErrBLSVerify:
		return "scheme: failed verifying BLS equation"
	case ErrSchnorrVerify:
		return "scheme: failed verifying Schnorr equation"
	case ErrAlgebraicVerify:
		return "scheme: failed verifying algebraic signature equation"
	case ErrSignatureNoInverse:
		return "scheme: signature does not have an inverse"
	case ErrSRSDifferent:
		return "scheme: SRS is different"
	case ErrBatchVerification:
		return fmt.Sprintf("scheme: different lengths in batch verification: %d public keys, %d messages, %d signatures",
			e.NumPublicKeys, e.NumMessages, e.NumSignatures)
	case ErrIO:
		return fmt.Sprintf("scheme: %v", e.Cause)
	default:
		return "scheme: signature error"
	}
}

// Unwrap exposes Cause so callers can errors.Is/errors.As through to the
// underlying hashutil/curve failure an ErrIO wraps.
func (e *Error) Unwrap() error {
	return e.Cause
}

func NewBatchLengthError(numPK, numMsg, numSig int) error {
	return &Error{Kind: ErrBatchVerification, NumPublicKeys: numPK, NumMessages: numMsg, NumSignatures: numSig}
}

func NewVerifyError(kind Kind) error {
	return &Error{Kind: kind}
}

// NewIOError wraps a failure reported by hashutil or curve (hash-to-curve
// rejection sampling, random scalar sampling, pairing) so callers see a
// scheme.Error with the original cause reachable via errors.Unwrap.
func NewIOError(cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: ErrIO, Cause: cause}
}
