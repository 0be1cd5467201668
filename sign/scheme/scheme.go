// Package scheme defines the narrow signature-scheme capability the DKG is
// parameterised over: key generation, signing, verification, and batch
// verification. BLS (sign/bls) and Schnorr (sign/schnorr) both implement it;
// the DKG's PoK and participant-signature roles are each just a value of
// this interface, injected at construction time rather than baked in.
package scheme

// Scheme is implemented once per concrete signature construction and used
// both as the DKG's proof-of-knowledge scheme (public key in G1) and as its
// participant signature scheme (public key in G2); the type of PublicKey
// and Signature differ per instantiation but the capability surface does
// not.
type Scheme[Secret, PublicKey, Signature any] interface {
	// GenerateKeypair draws a fresh secret uniformly and derives its public
	// key.
	GenerateKeypair(rng Reader) (Secret, PublicKey, error)

	// FromSecret derives the public key for an existing secret, used when
	// the "secret" is actually the dealer's PVSS coefficient f_0 rather
	// than a freshly generated key.
	FromSecret(sk Secret) (Secret, PublicKey, error)

	// Sign produces a signature over message under sk. rng is unused by
	// BLS and required by Schnorr.
	Sign(rng Reader, sk Secret, message []byte) (Signature, error)

	Verify(pk PublicKey, message []byte, sig Signature) error
}

// BatchVerifiable is the optional capability both DKG scheme roles require:
// verifying many (public key, message, signature) triples with a single,
// cheaper check.
type BatchVerifiable[PublicKey, Signature any] interface {
	BatchVerify(rng Reader, publicKeys []PublicKey, messages [][]byte, signatures []Signature) error
}

// Aggregatable is an optional capability: combining public keys and
// signatures that sign the same message into one of each.
type Aggregatable[PublicKey, Signature any] interface {
	AggregatePublicKeys(pks []PublicKey) (PublicKey, error)
	AggregateSignatures(sigs []Signature) (Signature, error)
}

// Reader is satisfied by *rand.Rand, crypto/rand.Reader and the hashutil
// deterministic stream reader alike; every randomized scheme operation
// takes one of these explicitly rather than reaching for a package-global
// source.
type Reader interface {
	Read(p []byte) (n int, err error)
}
