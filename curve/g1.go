package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1Size is the canonical compressed encoding length of a G1 element.
const G1Size = bls12381.SizeOfG1AffineCompressed

// G1 is a point on the BLS12-381 G1 curve, held in Jacobian form to keep
// additions and scalar multiplications cheap; it is only converted to affine
// at the encoding/pairing boundary.
type G1 struct {
	inner bls12381.G1Jac
}

var g1GenJac bls12381.G1Jac

func init() {
	g1GenJac, _, _, _ = bls12381.Generators()
}

func NewG1() *G1 { return &G1{} }

// G1Base returns the SRS-independent group generator. The DKG's own SRS.GG1
// is itself derived from this at setup time.
func G1Base() *G1 { return &G1{inner: g1GenJac} }

func (p *G1) Set(a *G1) *G1 {
	p.inner = a.inner
	return p
}

func (p *G1) Add(a, b *G1) *G1 {
	p.inner = a.inner
	p.inner.AddAssign(&b.inner)
	return p
}

func (p *G1) Neg(a *G1) *G1 {
	p.inner.Neg(&a.inner)
	return p
}

// ScalarMul sets p = s*a. If a is nil, the group generator is used.
func (p *G1) ScalarMul(s *Scalar, a *G1) *G1 {
	if a == nil {
		a = G1Base()
	}
	p.inner.ScalarMultiplication(&a.inner, s.BigInt())
	return p
}

func (p *G1) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

func (p *G1) Equal(o *G1) bool {
	var a, b bls12381.G1Affine
	a.FromJacobian(&p.inner)
	b.FromJacobian(&o.inner)
	return a == b
}

func (p *G1) Clone() *G1 {
	c := *p
	return &c
}

func (p *G1) Bytes() []byte {
	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	out := make([]byte, len(b))
	copy(out, b[:])
	return out
}

func (p *G1) SetBytes(b []byte) (*G1, error) {
	var a bls12381.G1Affine
	if _, err := a.SetBytes(b); err != nil {
		return nil, err
	}
	p.inner.FromAffine(&a)
	return p, nil
}

func (p *G1) affine() bls12381.G1Affine {
	var a bls12381.G1Affine
	a.FromJacobian(&p.inner)
	return a
}

// G1MultiExp computes the multi-scalar multiplication sum(scalars[i]*bases[i]),
// the Go equivalent of VariableBaseMSM::multi_scalar_mul used by the PVSS
// degree check.
func G1MultiExp(bases []*G1, scalars []*Scalar) (*G1, error) {
	affBases := make([]bls12381.G1Affine, len(bases))
	for i, b := range bases {
		affBases[i] = b.affine()
	}
	return g1MultiExpAffine(affBases, scalars)
}
