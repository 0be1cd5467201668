package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GT is an element of the pairing target group, used by the algebraic
// signature scheme's derive step, which needs the actual product-of-pairings
// value rather than just a yes/no check against the identity.
type GT struct {
	inner bls12381.GT
}

// PairingProduct computes prod_i e(g1s[i], g2s[i]) as a concrete GT element,
// the full-value counterpart of PairingProductIsOne.
func PairingProduct(g1s []*G1, g2s []*G2) (*GT, error) {
	if len(g1s) != len(g2s) {
		return nil, errMismatchedPairingInputs
	}
	p1 := make([]bls12381.G1Affine, len(g1s))
	p2 := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		p1[i] = g1s[i].affine()
		p2[i] = g2s[i].affine()
	}
	gt, err := bls12381.Pair(p1, p2)
	if err != nil {
		return nil, err
	}
	return &GT{inner: gt}, nil
}

func (g *GT) IsOne() bool { return g.inner.IsOne() }

func (g *GT) Equal(o *GT) bool { return g.inner.Equal(&o.inner) }

func (g *GT) Bytes() []byte {
	b := g.inner.Bytes()
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}
