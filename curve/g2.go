package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G2Size is the canonical compressed encoding length of a G2 element.
const G2Size = bls12381.SizeOfG2AffineCompressed

// G2 is a point on the BLS12-381 G2 curve.
type G2 struct {
	inner bls12381.G2Jac
}

var g2GenJac bls12381.G2Jac

func init() {
	_, g2GenJac, _, _ = bls12381.Generators()
}

func NewG2() *G2 { return &G2{} }

func G2Base() *G2 { return &G2{inner: g2GenJac} }

func (p *G2) Set(a *G2) *G2 {
	p.inner = a.inner
	return p
}

func (p *G2) Add(a, b *G2) *G2 {
	p.inner = a.inner
	p.inner.AddAssign(&b.inner)
	return p
}

func (p *G2) Neg(a *G2) *G2 {
	p.inner.Neg(&a.inner)
	return p
}

func (p *G2) ScalarMul(s *Scalar, a *G2) *G2 {
	if a == nil {
		a = G2Base()
	}
	p.inner.ScalarMultiplication(&a.inner, s.BigInt())
	return p
}

func (p *G2) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

func (p *G2) Equal(o *G2) bool {
	var a, b bls12381.G2Affine
	a.FromJacobian(&p.inner)
	b.FromJacobian(&o.inner)
	return a == b
}

func (p *G2) Clone() *G2 {
	c := *p
	return &c
}

func (p *G2) Bytes() []byte {
	var a bls12381.G2Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}

func (p *G2) SetBytes(b []byte) (*G2, error) {
	var a bls12381.G2Affine
	if _, err := a.SetBytes(b); err != nil {
		return nil, err
	}
	p.inner.FromAffine(&a)
	return p, nil
}

func (p *G2) affine() bls12381.G2Affine {
	var a bls12381.G2Affine
	a.FromJacobian(&p.inner)
	return a
}

func G2MultiExp(bases []*G2, scalars []*Scalar) (*G2, error) {
	affBases := make([]bls12381.G2Affine, len(bases))
	for i, b := range bases {
		affBases[i] = b.affine()
	}
	return g2MultiExpAffine(affBases, scalars)
}
