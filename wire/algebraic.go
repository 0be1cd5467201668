package wire

import "github.com/kobigurk/aggregatable-dkg/sign/algebraic"

func EncodeAlgebraicSRS(w *Writer, srs *algebraic.SRS) {
	WriteG2(w, srs.G1G2)
	WriteG1(w, srs.HG1)
	WriteG2(w, srs.G2G2)
	WriteG2(w, srs.G3G2)
	WriteG2(w, srs.G4G2)
}

func DecodeAlgebraicSRS(r *Reader) (*algebraic.SRS, error) {
	g1g2, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	hg1, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	g2g2, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	g3g2, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	g4g2, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	return &algebraic.SRS{G1G2: g1g2, HG1: hg1, G2G2: g2g2, G3G2: g3g2, G4G2: g4g2}, nil
}

func EncodeKeyProof(w *Writer, p *algebraic.KeyProof) {
	WriteG2(w, p.PI1G2)
	WriteG2(w, p.PI2G2)
	WriteG1(w, p.PI1G1)
	WriteG1(w, p.PI3G1)
}

func DecodeKeyProof(r *Reader) (*algebraic.KeyProof, error) {
	pi1g2, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	pi2g2, err := ReadG2(r)
	if err != nil {
		return nil, err
	}
	pi1g1, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	pi3g1, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	return &algebraic.KeyProof{PI1G2: pi1g2, PI2G2: pi2g2, PI1G1: pi1g1, PI3G1: pi3g1}, nil
}

func EncodeProvenPublicKey(w *Writer, pk *algebraic.ProvenPublicKey) {
	EncodeAlgebraicSRS(w, pk.PublicKey.SRS)
	WriteG1(w, pk.PublicKey.PK)
	EncodeKeyProof(w, &pk.KeyProof)
}

func DecodeProvenPublicKey(r *Reader) (*algebraic.ProvenPublicKey, error) {
	srs, err := DecodeAlgebraicSRS(r)
	if err != nil {
		return nil, err
	}
	pk, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	proof, err := DecodeKeyProof(r)
	if err != nil {
		return nil, err
	}
	return &algebraic.ProvenPublicKey{
		PublicKey: algebraic.PublicKey{SRS: srs, PK: pk},
		KeyProof:  *proof,
	}, nil
}

func EncodeAlgebraicSignature(w *Writer, sig *algebraic.Signature) {
	WriteG1(w, sig.SignatureProof.PI2G1)
	WriteG1(w, sig.SignatureProof.PI4G1)
}

func DecodeAlgebraicSignature(r *Reader) (*algebraic.Signature, error) {
	pi2g1, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	pi4g1, err := ReadG1(r)
	if err != nil {
		return nil, err
	}
	return &algebraic.Signature{SignatureProof: algebraic.SignatureProof{PI2G1: pi2g1, PI4G1: pi4g1}}, nil
}
