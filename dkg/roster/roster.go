// Package roster loads a DKG's public Config and participant roster from a
// YAML document, the way long-running DKG and beacon services read a group
// file from disk rather than constructing it from literals.
package roster

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/dkg"
)

// Document is the YAML shape a roster file takes on disk:
//
//	degree: 2
//	srs:
//	  g_g1: "<hex scalar the SRS's g is derived from>"
//	  h_g2: "<hex scalar>"
//	u1: "<hex scalar>"
//	participants:
//	  - id: 0
//	    public_key_sig: "<hex-encoded compressed G2 point>"
//
// Scalars for SRS/u1 are accepted as hex-encoded big-endian integers and
// used to scale the group generators deterministically, so a roster file
// is reproducible without embedding raw point encodings by hand. All three
// scalars are required: an omitted or empty value is rejected. The
// participant public keys, which are not roster-internal secrets, are
// given directly as their canonical compressed hex encoding.
type Document struct {
	Degree       int                   `yaml:"degree"`
	SRS          srsDocument           `yaml:"srs"`
	U1           string                `yaml:"u1"`
	Participants []participantDocument `yaml:"participants"`
}

type srsDocument struct {
	GG1 string `yaml:"g_g1"`
	HG2 string `yaml:"h_g2"`
}

type participantDocument struct {
	ID           int    `yaml:"id"`
	PublicKeySig string `yaml:"public_key_sig"`
}

// Load parses a roster document, returning the Config and roster in the
// map-by-id shape dkg.Aggregator expects.
func Load(r io.Reader) (*dkg.Config, map[int]*dkg.Participant, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("roster: decode: %w", err)
	}

	gScalar, err := scalarFromHex(doc.SRS.GG1)
	if err != nil {
		return nil, nil, fmt.Errorf("roster: srs.g_g1: %w", err)
	}
	hScalar, err := scalarFromHex(doc.SRS.HG2)
	if err != nil {
		return nil, nil, fmt.Errorf("roster: srs.h_g2: %w", err)
	}
	u1Scalar, err := scalarFromHex(doc.U1)
	if err != nil {
		return nil, nil, fmt.Errorf("roster: u1: %w", err)
	}

	srs := &dkg.SRS{
		GG1: curve.NewG1().ScalarMul(gScalar, curve.G1Base()),
		HG2: curve.NewG2().ScalarMul(hScalar, curve.G2Base()),
	}
	config := &dkg.Config{
		SRS:    srs,
		U1:     curve.NewG2().ScalarMul(u1Scalar, curve.G2Base()),
		Degree: doc.Degree,
	}

	participants := make(map[int]*dkg.Participant, len(doc.Participants))
	for _, p := range doc.Participants {
		pk, err := pointFromHexG2(p.PublicKeySig)
		if err != nil {
			return nil, nil, fmt.Errorf("roster: participant %d public_key_sig: %w", p.ID, err)
		}
		participants[p.ID] = &dkg.Participant{
			ID:           p.ID,
			PublicKeySig: pk,
			State:        dkg.StateInitial,
		}
	}

	return config, participants, nil
}

func scalarFromHex(s string) (*curve.Scalar, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex scalar %q", s)
	}
	return curve.NewScalar().SetBigInt(v), nil
}

func pointFromHexG2(s string) (*curve.G2, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return curve.NewG2().SetBytes(b)
}
