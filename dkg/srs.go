package dkg

import (
	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/sign/scheme"
)

// SRS is the common reference string (g in G1, h in G2) shared by every
// participant.
type SRS struct {
	GG1 *curve.G1
	HG2 *curve.G2
}

func SetupSRS(rng scheme.Reader) (*SRS, error) {
	gScalar, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	hScalar, err := curve.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	return &SRS{
		GG1: curve.NewG1().ScalarMul(gScalar, curve.G1Base()),
		HG2: curve.NewG2().ScalarMul(hScalar, curve.G2Base()),
	}, nil
}

func (s *SRS) Equal(o *SRS) bool {
	return s.GG1.Equal(o.GG1) && s.HG2.Equal(o.HG2)
}
