package curve

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// PairingProductIsOne reports whether prod_i e(g1s[i], g2s[i]) == 1 in GT.
// Every pairing equation in this module (BLS verification, the PVSS
// same-ratio and encryption checks) reduces to exactly this test.
func PairingProductIsOne(g1s []*G1, g2s []*G2) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, errMismatchedPairingInputs
	}
	p1 := make([]bls12381.G1Affine, len(g1s))
	p2 := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		p1[i] = g1s[i].affine()
		p2[i] = g2s[i].affine()
	}
	return bls12381.PairingCheck(p1, p2)
}

var errMismatchedPairingInputs = &pairingLengthError{}

type pairingLengthError struct{}

func (*pairingLengthError) Error() string { return "curve: mismatched pairing input lengths" }

func g1MultiExpAffine(bases []bls12381.G1Affine, scalars []*Scalar) (*G1, error) {
	frScalars := toFrSlice(scalars)
	var res bls12381.G1Affine
	if _, err := res.MultiExp(bases, frScalars, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	out := &G1{}
	out.inner.FromAffine(&res)
	return out, nil
}

func g2MultiExpAffine(bases []bls12381.G2Affine, scalars []*Scalar) (*G2, error) {
	frScalars := toFrSlice(scalars)
	var res bls12381.G2Affine
	if _, err := res.MultiExp(bases, frScalars, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	out := &G2{}
	out.inner.FromAffine(&res)
	return out, nil
}

func toFrSlice(scalars []*Scalar) []fr.Element {
	out := make([]fr.Element, len(scalars))
	for i, s := range scalars {
		out[i] = s.inner
	}
	return out
}
