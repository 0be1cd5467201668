// Package algebraic implements a re-randomizable, pairing-based signature
// scheme whose key and signature are each accompanied by a linear proof
// tying them to a shared structured reference string, and whose
// verification additionally derives a GT session value from the message and
// key. Unlike BLS and Schnorr, a signature here
// carries no single secret-dependent scalar: a keypair's alpha/beta
// randomizers are shared between its key proof and its signatures, so
// refreshing them (RefreshRandomness) invalidates old signatures against the
// new key proof while leaving the identity (Private/Public) unchanged.
package algebraic

import (
	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/hashutil"
	"github.com/kobigurk/aggregatable-dkg/sign/scheme"
)

// Personalization is the domain-separation tag for this scheme's
// hash-to-group step.
var Personalization = []byte("ALGEBSIG")

// SRS is the structured reference string holding the scheme's five
// generators: two fixed (the group generators) and three uniformly random,
// set up once and shared by every keypair.
type SRS struct {
	G1G2 *curve.G2
	HG1  *curve.G1
	G2G2 *curve.G2
	G3G2 *curve.G2
	G4G2 *curve.G2
}

func SetupSRS(rng scheme.Reader) (*SRS, error) {
	g2g2, err := randomG2(rng)
	if err != nil {
		return nil, err
	}
	g3g2, err := randomG2(rng)
	if err != nil {
		return nil, err
	}
	g4g2, err := randomG2(rng)
	if err != nil {
		return nil, err
	}
	return &SRS{
		G1G2: curve.G2Base(),
		HG1:  curve.G1Base(),
		G2G2: g2g2,
		G3G2: g3g2,
		G4G2: g4g2,
	}, nil
}

func randomG2(rng scheme.Reader) (*curve.G2, error) {
	s, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	return curve.NewG2().ScalarMul(s, curve.G2Base()), nil
}

func (s *SRS) Equal(o *SRS) bool {
	return s.G1G2.Equal(o.G1G2) && s.HG1.Equal(o.HG1) &&
		s.G2G2.Equal(o.G2G2) && s.G3G2.Equal(o.G3G2) && s.G4G2.Equal(o.G4G2)
}

// PrivateKey is a*g_1_g2 for the keypair's secret scalar a; a itself is
// discarded once the key and public key are derived.
type PrivateKey struct {
	SK *curve.G2
}

type PublicKey struct {
	SRS *SRS
	PK  *curve.G1
}

// KeyProof links a public key to its private key through the keypair's
// current alpha/beta randomizers, without revealing either.
type KeyProof struct {
	PI1G2 *curve.G2
	PI2G2 *curve.G2
	PI1G1 *curve.G1
	PI3G1 *curve.G1
}

type ProvenPublicKey struct {
	PublicKey PublicKey
	KeyProof  KeyProof
}

type SignatureProof struct {
	PI2G1 *curve.G1
	PI4G1 *curve.G1
}

type Signature struct {
	SignatureProof SignatureProof
}

// Keypair bundles the SRS, the current proof randomizers alpha/beta, and the
// private/public identity. alpha/beta are re-drawable via RefreshRandomness
// without touching the identity they sit on top of.
type Keypair struct {
	SRS     *SRS
	Alpha   *curve.Scalar
	Beta    *curve.Scalar
	Private PrivateKey
	Public  PublicKey
}

func GenerateKeypair(rng scheme.Reader, srs *SRS) (*Keypair, error) {
	a, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	alpha, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	beta, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	return &Keypair{
		SRS:   srs,
		Alpha: alpha,
		Beta:  beta,
		Private: PrivateKey{
			SK: curve.NewG2().ScalarMul(a, srs.G1G2),
		},
		Public: PublicKey{
			SRS: srs,
			PK:  curve.NewG1().ScalarMul(a, srs.HG1),
		},
	}, nil
}

// RefreshRandomness draws new alpha/beta, keeping the same identity. Proofs
// and signatures made under the old alpha/beta no longer verify against a
// freshly proven public key, by construction (see the package doc).
func (k *Keypair) RefreshRandomness(rng scheme.Reader) (*Keypair, error) {
	alpha, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	beta, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	return &Keypair{SRS: k.SRS, Alpha: alpha, Beta: beta, Private: k.Private, Public: k.Public}, nil
}

func (k *Keypair) Sign(message []byte) (*Signature, error) {
	hashed, err := hashutil.ToG1(Personalization, message)
	if err != nil {
		return nil, err
	}
	return &Signature{SignatureProof: SignatureProof{
		PI2G1: curve.NewG1().ScalarMul(k.Alpha, hashed),
		PI4G1: curve.NewG1().ScalarMul(k.Beta, hashed),
	}}, nil
}

func (k *Keypair) ProveKey() (*ProvenPublicKey, error) {
	negAlpha := curve.NewScalar().Neg(k.Alpha)
	negBeta := curve.NewScalar().Neg(k.Beta)

	pi1g2 := curve.NewG2().Add(
		curve.NewG2().ScalarMul(negAlpha, k.SRS.G1G2),
		curve.NewG2().ScalarMul(negBeta, k.SRS.G2G2),
	)
	pi2g2 := curve.NewG2().Add(
		curve.NewG2().Add(
			curve.NewG2().ScalarMul(negAlpha, k.SRS.G3G2),
			curve.NewG2().ScalarMul(negBeta, k.SRS.G4G2),
		),
		k.Private.SK,
	)
	pi1g1 := curve.NewG1().ScalarMul(k.Alpha, k.SRS.HG1)
	pi3g1 := curve.NewG1().ScalarMul(k.Beta, k.SRS.HG1)

	return &ProvenPublicKey{
		PublicKey: k.Public,
		KeyProof: KeyProof{
			PI1G2: pi1g2,
			PI2G2: pi2g2,
			PI1G1: pi1g1,
			PI3G1: pi3g1,
		},
	}, nil
}

// AggregateProvenPublicKeys folds a slice of proven public keys issued
// against the same SRS into one by summing each field pointwise.
func AggregateProvenPublicKeys(pubkeys []ProvenPublicKey, srs *SRS) (*ProvenPublicKey, error) {
	acc := ProvenPublicKey{
		PublicKey: PublicKey{SRS: srs, PK: curve.NewG1()},
		KeyProof: KeyProof{
			PI1G2: curve.NewG2(),
			PI2G2: curve.NewG2(),
			PI1G1: curve.NewG1(),
			PI3G1: curve.NewG1(),
		},
	}
	for _, pk := range pubkeys {
		if !acc.PublicKey.SRS.Equal(pk.PublicKey.SRS) {
			return nil, ErrSRSDifferent
		}
		acc.PublicKey.PK = curve.NewG1().Add(acc.PublicKey.PK, pk.PublicKey.PK)
		acc.KeyProof.PI1G2 = curve.NewG2().Add(acc.KeyProof.PI1G2, pk.KeyProof.PI1G2)
		acc.KeyProof.PI2G2 = curve.NewG2().Add(acc.KeyProof.PI2G2, pk.KeyProof.PI2G2)
		acc.KeyProof.PI1G1 = curve.NewG1().Add(acc.KeyProof.PI1G1, pk.KeyProof.PI1G1)
		acc.KeyProof.PI3G1 = curve.NewG1().Add(acc.KeyProof.PI3G1, pk.KeyProof.PI3G1)
	}
	return &acc, nil
}

// Verify checks the key proof's two pairing equations:
//
//	e(h_g1, pi_1_g2) * e(pi_1_g1, g_1_g2) * e(pi_3_g1, g_2_g2) == 1
//	e(h_g1, pi_2_g2) * e(pi_1_g1, g_3_g2) * e(pi_3_g1, g_4_g2) * e(pk, -g_1_g2) == 1
func (pk *ProvenPublicKey) Verify() error {
	srs := pk.PublicKey.SRS
	ok, err := curve.PairingProductIsOne(
		[]*curve.G1{srs.HG1, pk.KeyProof.PI1G1, pk.KeyProof.PI3G1},
		[]*curve.G2{pk.KeyProof.PI1G2, srs.G1G2, srs.G2G2},
	)
	if err != nil {
		return err
	}
	if !ok {
		return &VerifyError{Equation: Eq1}
	}

	negG1G2 := curve.NewG2().Neg(srs.G1G2)
	ok, err = curve.PairingProductIsOne(
		[]*curve.G1{srs.HG1, pk.KeyProof.PI1G1, pk.KeyProof.PI3G1, pk.PublicKey.PK},
		[]*curve.G2{pk.KeyProof.PI2G2, srs.G3G2, srs.G4G2, negG1G2},
	)
	if err != nil {
		return err
	}
	if !ok {
		return &VerifyError{Equation: Eq3}
	}
	return nil
}

// VerifyProbabilistically folds Verify's two equations into one randomized
// check via a fresh scalar r, trading a second pairing-product evaluation
// for one extra random scalar and three extra scalar multiplications.
func (pk *ProvenPublicKey) VerifyProbabilistically(rng scheme.Reader) error {
	srs := pk.PublicKey.SRS
	r, err := curve.RandomScalar(rng)
	if err != nil {
		return err
	}
	negPK := curve.NewG1().Neg(pk.PublicKey.PK)
	term2 := curve.NewG1().Add(negPK, curve.NewG1().ScalarMul(r, pk.KeyProof.PI1G1))

	ok, err := curve.PairingProductIsOne(
		[]*curve.G1{
			curve.NewG1().ScalarMul(r, srs.HG1),
			term2,
			curve.NewG1().ScalarMul(r, pk.KeyProof.PI3G1),
			srs.HG1,
			pk.KeyProof.PI1G1,
			pk.KeyProof.PI3G1,
		},
		[]*curve.G2{
			pk.KeyProof.PI1G2,
			srs.G1G2,
			srs.G2G2,
			pk.KeyProof.PI2G2,
			srs.G3G2,
			srs.G4G2,
		},
	)
	if err != nil {
		return err
	}
	if !ok {
		return &VerifyError{Equation: EqProbabilistic}
	}
	return nil
}

// VerifyProof checks the signature proof's pairing equation against the
// already-hashed message:
//
//	e(H(m), pi_1_g2) * e(pi_2_g1, g_1_g2) * e(pi_4_g1, g_2_g2) == 1
func (s *Signature) VerifyProof(pk ProvenPublicKey, hashedMessage *curve.G1) error {
	srs := pk.PublicKey.SRS
	ok, err := curve.PairingProductIsOne(
		[]*curve.G1{hashedMessage, s.SignatureProof.PI2G1, s.SignatureProof.PI4G1},
		[]*curve.G2{pk.KeyProof.PI1G2, srs.G1G2, srs.G2G2},
	)
	if err != nil {
		return err
	}
	if !ok {
		return &VerifyError{Equation: Eq2}
	}
	return nil
}

func (s *Signature) Verify(pk ProvenPublicKey, message []byte) error {
	hashed, err := hashutil.ToG1(Personalization, message)
	if err != nil {
		return err
	}
	return s.VerifyProof(pk, hashed)
}

// Derive computes the GT session value
//
//	e(H(m), pi_2_g2) * e(pi_2_g1, g_3_g2) * e(pi_4_g1, g_4_g2)
//
// the value two parties who each hold one half of this proof system
// converge on once the signature verifies.
func (s *Signature) Derive(pk ProvenPublicKey, message []byte) (*curve.GT, error) {
	hashed, err := hashutil.ToG1(Personalization, message)
	if err != nil {
		return nil, err
	}
	srs := pk.PublicKey.SRS
	return curve.PairingProduct(
		[]*curve.G1{hashed, s.SignatureProof.PI2G1, s.SignatureProof.PI4G1},
		[]*curve.G2{pk.KeyProof.PI2G2, srs.G3G2, srs.G4G2},
	)
}

func (s *Signature) VerifyAndDerive(pk ProvenPublicKey, message []byte) (*curve.GT, error) {
	hashed, err := hashutil.ToG1(Personalization, message)
	if err != nil {
		return nil, err
	}
	if err := s.VerifyProof(pk, hashed); err != nil {
		return nil, err
	}
	srs := pk.PublicKey.SRS
	return curve.PairingProduct(
		[]*curve.G1{hashed, s.SignatureProof.PI2G1, s.SignatureProof.PI4G1},
		[]*curve.G2{pk.KeyProof.PI2G2, srs.G3G2, srs.G4G2},
	)
}

// VerifyAllProbabilistically folds both the key proof's and the signature
// proof's pairing equations into one randomized check via two fresh scalars
// r, r2.
func (s *Signature) VerifyAllProbabilistically(rng scheme.Reader, pk ProvenPublicKey, message []byte) error {
	hashed, err := hashutil.ToG1(Personalization, message)
	if err != nil {
		return err
	}
	srs := pk.PublicKey.SRS
	r, err := curve.RandomScalar(rng)
	if err != nil {
		return err
	}
	r2, err := curve.RandomScalar(rng)
	if err != nil {
		return err
	}

	term1 := curve.NewG1().Add(
		curve.NewG1().ScalarMul(r2, hashed),
		curve.NewG1().ScalarMul(r, srs.HG1),
	)
	term2 := curve.NewG1().Add(
		curve.NewG1().Add(
			curve.NewG1().Neg(pk.PublicKey.PK),
			curve.NewG1().ScalarMul(r2, s.SignatureProof.PI2G1),
		),
		curve.NewG1().ScalarMul(r, pk.KeyProof.PI1G1),
	)
	term3 := curve.NewG1().Add(
		curve.NewG1().ScalarMul(r2, s.SignatureProof.PI4G1),
		curve.NewG1().ScalarMul(r, pk.KeyProof.PI3G1),
	)

	ok, err := curve.PairingProductIsOne(
		[]*curve.G1{term1, term2, term3, srs.HG1, pk.KeyProof.PI1G1, pk.KeyProof.PI3G1},
		[]*curve.G2{pk.KeyProof.PI1G2, srs.G1G2, srs.G2G2, pk.KeyProof.PI2G2, srs.G3G2, srs.G4G2},
	)
	if err != nil {
		return err
	}
	if !ok {
		return &VerifyError{Equation: EqAllProbabilistic}
	}
	return nil
}

// AggregateSignatures sums a slice of signature proofs into one pointwise,
// the counterpart of AggregateProvenPublicKeys.
func AggregateSignatures(sigs []Signature) (*Signature, error) {
	acc := Signature{SignatureProof: SignatureProof{PI2G1: curve.NewG1(), PI4G1: curve.NewG1()}}
	for _, sig := range sigs {
		acc.SignatureProof.PI2G1 = curve.NewG1().Add(acc.SignatureProof.PI2G1, sig.SignatureProof.PI2G1)
		acc.SignatureProof.PI4G1 = curve.NewG1().Add(acc.SignatureProof.PI4G1, sig.SignatureProof.PI4G1)
	}
	return &acc, nil
}
