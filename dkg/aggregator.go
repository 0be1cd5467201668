package dkg

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/scheme"
)

// PoKScheme is the capability surface the aggregator needs from the
// proof-of-knowledge signature scheme: its public key lives in G1, since a
// PoK's "public key" is itself the commitment c_i being proven.
type PoKScheme[Sig any] interface {
	FromSecret(sk *curve.Scalar) (*curve.Scalar, *curve.G1, error)
	Sign(rng scheme.Reader, sk *curve.Scalar, message []byte) (Sig, error)
	Verify(pk *curve.G1, message []byte, sig Sig) error
	BatchVerify(rng scheme.Reader, pks []*curve.G1, messages [][]byte, sigs []Sig) error
}

// SigScheme is the capability surface the aggregator needs from the
// participant signature scheme: its public key lives in G2.
type SigScheme[Sig any] interface {
	FromSecret(sk *curve.Scalar) (*curve.Scalar, *curve.G2, error)
	Sign(rng scheme.Reader, sk *curve.Scalar, message []byte) (Sig, error)
	Verify(pk *curve.G2, message []byte, sig Sig) error
	BatchVerify(rng scheme.Reader, pks []*curve.G2, messages [][]byte, sigs []Sig) error
}

// Aggregator is the verifying/aggregating role: it consumes shares and bulk
// transcripts, rejects malformed ones, and holds the running aggregate
// transcript.
type Aggregator[SPOKSig, SSIGSig any] struct {
	Config       *Config
	SchemePoK    PoKScheme[SPOKSig]
	SchemeSig    SigScheme[SSIGSig]
	Participants map[int]*Participant

	Transcript *Transcript[SPOKSig, SSIGSig]
}

func NewAggregator[SPOKSig, SSIGSig any](
	config *Config,
	schemePoK PoKScheme[SPOKSig],
	schemeSig SigScheme[SSIGSig],
	participants map[int]*Participant,
) *Aggregator[SPOKSig, SSIGSig] {
	return &Aggregator[SPOKSig, SSIGSig]{
		Config:       config,
		SchemePoK:    schemePoK,
		SchemeSig:    schemeSig,
		Participants: participants,
		Transcript:   EmptyTranscript[SPOKSig, SSIGSig](config.Degree, len(participants)),
	}
}

// ReceiveShare verifies share and, on success, folds it into the running
// transcript as a singleton contribution of weight 1: it is exactly
// Aggregate against a one-element transcript.
func (a *Aggregator[SPOKSig, SSIGSig]) ReceiveShare(rng scheme.Reader, share *DKGShare[SPOKSig, SSIGSig]) error {
	if err := a.ShareVerify(rng, share); err != nil {
		log.Warn("share rejected", "participant_id", share.ParticipantID, "err", err)
		return err
	}
	singleton := &Transcript[SPOKSig, SSIGSig]{
		Degree:          a.Config.Degree,
		NumParticipants: len(a.Participants),
		Contributions: map[int]*TranscriptParticipant[SPOKSig, SSIGSig]{
			share.ParticipantID: {
				CI:            share.CI,
				Weight:        1,
				CIPoK:         share.CIPoK,
				SignatureOnCI: share.SignatureOnCI,
			},
		},
		PVSSShare: share.PVSSShare,
	}
	merged, err := a.Transcript.Aggregate(singleton)
	if err != nil {
		log.Warn("share rejected", "participant_id", share.ParticipantID, "err", err)
		return err
	}
	a.Transcript = merged
	log.Debug("share accepted", "participant_id", share.ParticipantID, "weight", a.Transcript.Contributions[share.ParticipantID].Weight)
	return nil
}

// ShareVerify runs the full intake checks on a share: roster lookup, the
// three PVSS checks, then the participant signature and PoK over c_i.
func (a *Aggregator[SPOKSig, SSIGSig]) ShareVerify(rng scheme.Reader, share *DKGShare[SPOKSig, SSIGSig]) error {
	participant, ok := a.Participants[share.ParticipantID]
	if !ok {
		log.Debug("share verify: unknown participant id", "participant_id", share.ParticipantID)
		return newInvalidParticipantID(share.ParticipantID)
	}
	if err := a.PVSSShareVerify(rng, share.CI, share.PVSSShare); err != nil {
		return err
	}
	message := messageFromCI(share.CI)
	if err := a.SchemeSig.Verify(participant.PublicKeySig, message, share.SignatureOnCI); err != nil {
		return err
	}
	if err := a.SchemePoK.Verify(share.CI, message, share.CIPoK); err != nil {
		return err
	}
	return nil
}

// ReceiveTranscript verifies a transcript in bulk: accumulate the weighted commitment c, batch
// verify every contributor's signature and PoK, then run the PVSS checks
// once against the combined c.
func (a *Aggregator[SPOKSig, SSIGSig]) ReceiveTranscript(rng scheme.Reader, transcript *Transcript[SPOKSig, SSIGSig]) error {
	ids := transcript.OrderedIDs()

	c := curve.NewG1()
	publicKeysSig := make([]*curve.G2, 0, len(ids))
	messagesSig := make([][]byte, 0, len(ids))
	signaturesSig := make([]SSIGSig, 0, len(ids))
	publicKeysPoK := make([]*curve.G1, 0, len(ids))
	messagesPoK := make([][]byte, 0, len(ids))
	signaturesPoK := make([]SPOKSig, 0, len(ids))

	for _, id := range ids {
		contribution := transcript.Contributions[id]
		participant, ok := a.Participants[id]
		if !ok {
			return newInvalidParticipantID(id)
		}
		message := messageFromCI(contribution.CI)

		publicKeysSig = append(publicKeysSig, participant.PublicKeySig)
		messagesSig = append(messagesSig, message)
		signaturesSig = append(signaturesSig, contribution.SignatureOnCI)

		publicKeysPoK = append(publicKeysPoK, contribution.CI)
		messagesPoK = append(messagesPoK, message)
		signaturesPoK = append(signaturesPoK, contribution.CIPoK)

		weight := curve.NewScalar().SetInt64(int64(contribution.Weight))
		c = curve.NewG1().Add(c, curve.NewG1().ScalarMul(weight, contribution.CI))
	}

	if err := a.SchemeSig.BatchVerify(rng, publicKeysSig, messagesSig, signaturesSig); err != nil {
		log.Warn("transcript rejected: signature batch verification failed", "num_contributions", len(ids), "err", err)
		return err
	}
	if err := a.SchemePoK.BatchVerify(rng, publicKeysPoK, messagesPoK, signaturesPoK); err != nil {
		log.Warn("transcript rejected: PoK batch verification failed", "num_contributions", len(ids), "err", err)
		return err
	}
	if err := a.PVSSShareVerify(rng, c, transcript.PVSSShare); err != nil {
		log.Warn("transcript rejected: PVSS share verification failed", "num_contributions", len(ids), "err", err)
		return err
	}
	log.Debug("transcript aggregated", "num_contributions", len(ids), "degree", transcript.Degree, "num_participants", transcript.NumParticipants)
	return nil
}

// PVSSShareVerify runs the three checks against a candidate commitment ci
// and PVSS share: the probabilistic degree check, the deterministic
// same-ratio check, and the batched encryption check. The degree and
// encryption checks each draw their own fresh challenge scalar.
func (a *Aggregator[SPOKSig, SSIGSig]) PVSSShareVerify(rng scheme.Reader, ci *curve.G1, share *PVSSShare) error {
	n := len(a.Participants)
	degree := a.Config.Degree

	domain, err := curve.NewDomain(n)
	if err != nil {
		return ErrBadEvaluationDomain
	}

	// (a) Polynomial-degree check.
	alpha, err := curve.RandomScalar(rng)
	if err != nil {
		return newIOError(err)
	}
	lagrange := domain.LagrangeCoefficients(alpha)

	bases := make([]*curve.G1, 0, n+1+degree)
	bases = append(bases, share.AI...)
	bases = append(bases, ci)
	bases = append(bases, share.FI...)

	// The c_i/f_i side is subtracted from the interpolated evaluations, so
	// every power carries the leading -1.
	powers := make([]*curve.Scalar, degree+1)
	current := curve.NewScalar().Neg(curve.NewScalar().SetOne())
	for k := 0; k <= degree; k++ {
		powers[k] = current
		current = curve.NewScalar().Mul(current, alpha)
	}

	scalars := make([]*curve.Scalar, 0, n+1+degree)
	scalars = append(scalars, lagrange...)
	scalars = append(scalars, powers...)

	product, err := curve.G1MultiExp(bases, scalars)
	if err != nil {
		return newIOError(err)
	}
	if !product.IsIdentity() {
		return ErrBadEvaluations
	}

	// (b) Same-ratio check.
	negG := curve.NewG1().Neg(a.Config.SRS.GG1)
	ok, err := curve.PairingProductIsOne([]*curve.G1{ci, negG}, []*curve.G2{a.Config.U1, share.UI2})
	if err != nil {
		return newIOError(err)
	}
	if !ok {
		return ErrBadRatio
	}

	// (c) Batched encryption check.
	alphaPrime, err := curve.RandomScalar(rng)
	if err != nil {
		return newIOError(err)
	}
	g1s := make([]*curve.G1, 0, 2*n)
	g2s := make([]*curve.G2, 0, 2*n)
	power := curve.NewScalar().SetOne()
	for j := 0; j < n; j++ {
		participant, ok := a.Participants[j]
		if !ok {
			return newInvalidParticipantID(j)
		}
		g1s = append(g1s, curve.NewG1().ScalarMul(power, negG))
		g2s = append(g2s, share.YI[j])
		g1s = append(g1s, curve.NewG1().ScalarMul(power, share.AI[j]))
		g2s = append(g2s, participant.PublicKeySig)
		power = curve.NewScalar().Mul(power, alphaPrime)
	}
	ok, err = curve.PairingProductIsOne(g1s, g2s)
	if err != nil {
		return newIOError(err)
	}
	if !ok {
		return ErrBadRatio
	}
	return nil
}
