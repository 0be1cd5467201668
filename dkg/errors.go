package dkg

import "fmt"

// ErrorKind is the DKG package's structural/cryptographic error taxonomy.
type ErrorKind int

const (
	ErrRatioIncorrect ErrorKind = iota
	ErrEvaluationsCheck
	ErrEvaluationDomain
	ErrDifferentSRS
	ErrInvalidParticipantID
	ErrTranscriptDifferentConfig
	ErrTranscriptDifferentCommitments
	ErrIO
)

// Error is the DKG package's single error type; Kind selects which fields
// are populated.
type Error struct {
	Kind ErrorKind

	ParticipantID int // ErrInvalidParticipantID

	SelfDegree, OtherDegree                   int // ErrTranscriptDifferentConfig
	SelfNumParticipants, OtherNumParticipants int // ErrTranscriptDifferentConfig

	// Cause is populated for ErrIO: a serialization or sampling failure
	// surfaced by the algebra collaborator (curve), not produced locally.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrRatioIncorrect:
		return "dkg: same-ratio pairing check failed"
	case ErrEvaluationsCheck:
		return "dkg: evaluations do not interpolate the committed polynomial"
	case ErrEvaluationDomain:
		return "dkg: could not construct an evaluation domain of the requested size"
	case ErrDifferentSRS:
		return "dkg: config, dealer and nodes use different SRS"
	case ErrInvalidParticipantID:
		return fmt.Sprintf("dkg: invalid participant id %d", e.ParticipantID)
	case ErrTranscriptDifferentConfig:
		return fmt.Sprintf("dkg: transcripts have different degree or participant count: self.degree=%d other.degree=%d self.num_participants=%d other.num_participants=%d",
			e.SelfDegree, e.OtherDegree, e.SelfNumParticipants, e.OtherNumParticipants)
	case ErrTranscriptDifferentCommitments:
		return "dkg: transcripts have different commitments for the same participant"
	case ErrIO:
		return fmt.Sprintf("dkg: %v", e.Cause)
	default:
		return "dkg: error"
	}
}

// Unwrap exposes Cause so callers can errors.Is/errors.As through to the
// underlying curve-package failure (e.g. a truncated point encoding or an
// exhausted rng) that an ErrIO wraps.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newInvalidParticipantID(id int) error {
	return &Error{Kind: ErrInvalidParticipantID, ParticipantID: id}
}

// newIOError wraps a failure reported by the algebra collaborator (random
// sampling, multi-scalar multiplication, pairing, point decoding) so callers
// see a dkg.Error with the original cause reachable via errors.Unwrap.
func newIOError(cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: ErrIO, Cause: cause}
}

func newTranscriptDifferentConfig(selfDeg, otherDeg, selfN, otherN int) error {
	return &Error{
		Kind:                 ErrTranscriptDifferentConfig,
		SelfDegree:           selfDeg,
		OtherDegree:          otherDeg,
		SelfNumParticipants:  selfN,
		OtherNumParticipants: otherN,
	}
}

var (
	ErrTranscriptCommitmentMismatch = &Error{Kind: ErrTranscriptDifferentCommitments}
	ErrBadRatio                     = &Error{Kind: ErrRatioIncorrect}
	ErrBadEvaluations               = &Error{Kind: ErrEvaluationsCheck}
	ErrBadEvaluationDomain          = &Error{Kind: ErrEvaluationDomain}
)
