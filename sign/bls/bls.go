// Package bls implements BLS signatures over the curve package's G1/G2, in
// both orientations the DKG needs: signature in G1 with the public key in
// G2 (used for participant signatures, since participant public keys live
// in G2), and signature in G2 with the public key in G1 (used for proofs of
// knowledge, since a PoK's "public key" is a commitment c_i in G1).
package bls

import (
	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/hashutil"
	"github.com/kobigurk/aggregatable-dkg/sign/scheme"
)

// SchemeG1Sig signs in G1 and carries public keys in G2. Its verification
// equation is e(H(m), pk) * e(sig, -g_public_key) == 1, i.e. the two-curve
// rewrite of e(sig, g_public_key) == e(H(m), pk).
type SchemeG1Sig struct {
	// GPublicKey is the G2 generator public keys are derived relative to
	// (the SRS's h_g2 when this scheme plays the participant-signature role).
	GPublicKey *curve.G2
}

func NewSchemeG1Sig(gPublicKey *curve.G2) *SchemeG1Sig {
	return &SchemeG1Sig{GPublicKey: gPublicKey}
}

func (s *SchemeG1Sig) GenerateKeypair(rng scheme.Reader) (*curve.Scalar, *curve.G2, error) {
	sk, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, nil, scheme.NewIOError(err)
	}
	return s.FromSecret(sk)
}

func (s *SchemeG1Sig) FromSecret(sk *curve.Scalar) (*curve.Scalar, *curve.G2, error) {
	pk := curve.NewG2().ScalarMul(sk, s.GPublicKey)
	return sk, pk, nil
}

func (s *SchemeG1Sig) Sign(rng scheme.Reader, sk *curve.Scalar, message []byte) (*curve.G1, error) {
	hashed, err := hashutil.ToG1(hashutil.BLSPersonalization, message)
	if err != nil {
		return nil, scheme.NewIOError(err)
	}
	return curve.NewG1().ScalarMul(sk, hashed), nil
}

func (s *SchemeG1Sig) Verify(pk *curve.G2, message []byte, sig *curve.G1) error {
	hashed, err := hashutil.ToG1(hashutil.BLSPersonalization, message)
	if err != nil {
		return scheme.NewIOError(err)
	}
	negPub := curve.NewG2().Neg(s.GPublicKey)
	ok, err := curve.PairingProductIsOne([]*curve.G1{hashed, sig}, []*curve.G2{pk, negPub})
	if err != nil {
		return scheme.NewIOError(err)
	}
	if !ok {
		return scheme.NewVerifyError(scheme.ErrBLSVerify)
	}
	return nil
}

// BatchVerify collapses n independent verification equations into one
// pairing-product check: scale both pairs belonging to message i by a
// common alpha^i, alpha drawn fresh per call, then check the combined
// product is 1.
func (s *SchemeG1Sig) BatchVerify(rng scheme.Reader, pks []*curve.G2, messages [][]byte, sigs []*curve.G1) error {
	if len(pks) != len(messages) || len(pks) != len(sigs) {
		return scheme.NewBatchLengthError(len(pks), len(messages), len(sigs))
	}
	alpha, err := curve.RandomScalar(rng)
	if err != nil {
		return scheme.NewIOError(err)
	}
	negPub := curve.NewG2().Neg(s.GPublicKey)
	current := curve.NewScalar().SetOne()
	g1s := make([]*curve.G1, 0, 2*len(pks))
	g2s := make([]*curve.G2, 0, 2*len(pks))
	for i := range pks {
		hashed, err := hashutil.ToG1(hashutil.BLSPersonalization, messages[i])
		if err != nil {
			return scheme.NewIOError(err)
		}
		g1s = append(g1s, curve.NewG1().ScalarMul(current, hashed))
		g2s = append(g2s, pks[i])
		g1s = append(g1s, curve.NewG1().ScalarMul(current, sigs[i]))
		g2s = append(g2s, negPub)
		current = curve.NewScalar().Mul(current, alpha)
	}
	ok, err := curve.PairingProductIsOne(g1s, g2s)
	if err != nil {
		return scheme.NewIOError(err)
	}
	if !ok {
		return scheme.NewVerifyError(scheme.ErrBLSVerify)
	}
	return nil
}

func (s *SchemeG1Sig) AggregatePublicKeys(pks []*curve.G2) (*curve.G2, error) {
	acc := curve.NewG2()
	for _, pk := range pks {
		acc.Add(acc, pk)
	}
	return acc, nil
}

func (s *SchemeG1Sig) AggregateSignatures(sigs []*curve.G1) (*curve.G1, error) {
	acc := curve.NewG1()
	for _, sig := range sigs {
		acc.Add(acc, sig)
	}
	return acc, nil
}

// SchemeG2Sig signs in G2 and carries public keys in G1. Its verification
// equation is e(pk, H(m)) * e(-g_public_key, sig) == 1.
type SchemeG2Sig struct {
	// GPublicKey is the G1 generator public keys are derived relative to
	// (the SRS's g_g1 when this scheme plays the proof-of-knowledge role).
	GPublicKey *curve.G1
}

func NewSchemeG2Sig(gPublicKey *curve.G1) *SchemeG2Sig {
	return &SchemeG2Sig{GPublicKey: gPublicKey}
}

func (s *SchemeG2Sig) GenerateKeypair(rng scheme.Reader) (*curve.Scalar, *curve.G1, error) {
	sk, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, nil, scheme.NewIOError(err)
	}
	return s.FromSecret(sk)
}

func (s *SchemeG2Sig) FromSecret(sk *curve.Scalar) (*curve.Scalar, *curve.G1, error) {
	pk := curve.NewG1().ScalarMul(sk, s.GPublicKey)
	return sk, pk, nil
}

func (s *SchemeG2Sig) Sign(rng scheme.Reader, sk *curve.Scalar, message []byte) (*curve.G2, error) {
	hashed, err := hashutil.ToG2(hashutil.BLSPersonalization, message)
	if err != nil {
		return nil, scheme.NewIOError(err)
	}
	return curve.NewG2().ScalarMul(sk, hashed), nil
}

func (s *SchemeG2Sig) Verify(pk *curve.G1, message []byte, sig *curve.G2) error {
	hashed, err := hashutil.ToG2(hashutil.BLSPersonalization, message)
	if err != nil {
		return scheme.NewIOError(err)
	}
	negPub := curve.NewG1().Neg(s.GPublicKey)
	ok, err := curve.PairingProductIsOne([]*curve.G1{pk, negPub}, []*curve.G2{hashed, sig})
	if err != nil {
		return scheme.NewIOError(err)
	}
	if !ok {
		return scheme.NewVerifyError(scheme.ErrBLSVerify)
	}
	return nil
}

func (s *SchemeG2Sig) BatchVerify(rng scheme.Reader, pks []*curve.G1, messages [][]byte, sigs []*curve.G2) error {
	if len(pks) != len(messages) || len(pks) != len(sigs) {
		return scheme.NewBatchLengthError(len(pks), len(messages), len(sigs))
	}
	alpha, err := curve.RandomScalar(rng)
	if err != nil {
		return scheme.NewIOError(err)
	}
	negPub := curve.NewG1().Neg(s.GPublicKey)
	current := curve.NewScalar().SetOne()
	g1s := make([]*curve.G1, 0, 2*len(pks))
	g2s := make([]*curve.G2, 0, 2*len(pks))
	for i := range pks {
		hashed, err := hashutil.ToG2(hashutil.BLSPersonalization, messages[i])
		if err != nil {
			return scheme.NewIOError(err)
		}
		g1s = append(g1s, curve.NewG1().ScalarMul(current, pks[i]))
		g2s = append(g2s, hashed)
		g1s = append(g1s, curve.NewG1().ScalarMul(current, negPub))
		g2s = append(g2s, sigs[i])
		current = curve.NewScalar().Mul(current, alpha)
	}
	ok, err := curve.PairingProductIsOne(g1s, g2s)
	if err != nil {
		return scheme.NewIOError(err)
	}
	if !ok {
		return scheme.NewVerifyError(scheme.ErrBLSVerify)
	}
	return nil
}

func (s *SchemeG2Sig) AggregatePublicKeys(pks []*curve.G1) (*curve.G1, error) {
	acc := curve.NewG1()
	for _, pk := range pks {
		acc.Add(acc, pk)
	}
	return acc, nil
}

func (s *SchemeG2Sig) AggregateSignatures(sigs []*curve.G2) (*curve.G2, error) {
	acc := curve.NewG2()
	for _, sig := range sigs {
		acc.Add(acc, sig)
	}
	return acc, nil
}
