// Command dkgsizes reports the wire-encoded size of a DKG share and its
// single-contributor transcript at a handful of representative roster
// sizes, across both the BLS and Schnorr instantiations of the
// PoK/participant-signature roles. Exit status is 0 on success.
package main

import (
	"crypto/rand"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jonboulle/clockwork"

	"github.com/kobigurk/aggregatable-dkg/curve"
	"github.com/kobigurk/aggregatable-dkg/dkg"
	"github.com/kobigurk/aggregatable-dkg/sign/bls"
	"github.com/kobigurk/aggregatable-dkg/sign/schnorr"
	"github.com/kobigurk/aggregatable-dkg/wire"
)

var sizes = []int{64, 128, 256, 8192}

func main() {
	handler := log.NewTerminalHandler(os.Stderr, false)
	log.SetDefault(log.NewLogger(handler))

	clock := clockwork.NewRealClock()

	for _, n := range sizes {
		if err := reportBLS(clock, n); err != nil {
			log.Error("bls size report failed", "n", n, "err", err)
			os.Exit(1)
		}
		if err := reportSchnorr(clock, n); err != nil {
			log.Error("schnorr size report failed", "n", n, "err", err)
			os.Exit(1)
		}
	}
}

// buildRoster deals a fresh degree-(n/2) DKG config and an n-participant
// roster with freshly generated participant-signature keypairs relative to
// the SRS's h_g2, the generator both the BLS and the Schnorr
// participant-signature schemes are built on here.
func buildRoster(n int) (*dkg.Config, map[int]*dkg.Participant, []*curve.Scalar, error) {
	srs, err := dkg.SetupSRS(rand.Reader)
	if err != nil {
		return nil, nil, nil, err
	}
	u1, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		return nil, nil, nil, err
	}
	config := &dkg.Config{
		SRS:    srs,
		U1:     curve.NewG2().ScalarMul(u1, curve.G2Base()),
		Degree: n / 2,
	}

	sigScheme := bls.NewSchemeG1Sig(srs.HG2)
	participants := make(map[int]*dkg.Participant, n)
	secrets := make([]*curve.Scalar, n)
	for i := 0; i < n; i++ {
		sk, pk, err := sigScheme.GenerateKeypair(rand.Reader)
		if err != nil {
			return nil, nil, nil, err
		}
		secrets[i] = sk
		participants[i] = &dkg.Participant{ID: i, PublicKeySig: pk, State: dkg.StateDealer}
	}
	return config, participants, secrets, nil
}

func reportBLS(clock clockwork.Clock, n int) error {
	start := clock.Now()

	config, participants, secrets, err := buildRoster(n)
	if err != nil {
		return err
	}

	pokScheme := bls.NewSchemeG2Sig(config.SRS.GG1)
	sigScheme := bls.NewSchemeG1Sig(config.SRS.HG2)

	aggregator := dkg.NewAggregator[*curve.G2, *curve.G1](config, pokScheme, sigScheme, participants)
	dealer := dkg.NewDealer(secrets[0], participants[0])
	node := dkg.NewNode(aggregator, dealer)

	share, err := node.Share(rand.Reader)
	if err != nil {
		return err
	}

	w := wire.NewWriter()
	wire.EncodeDKGShare(w, share, wire.BLSG2SigCodec, wire.BLSG1SigCodec)
	shareBytes := len(w.Bytes())

	tw := wire.NewWriter()
	wire.EncodeTranscript(tw, singletonTranscript(aggregator, share), wire.BLSG2SigCodec, wire.BLSG1SigCodec)
	transcriptBytes := len(tw.Bytes())

	elapsed := clock.Since(start)
	log.Info("wire sizes (BLS)", "n", n, "degree", config.Degree, "share_bytes", shareBytes, "transcript_bytes", transcriptBytes, "elapsed", elapsed)
	return nil
}

// singletonTranscript folds share into a fresh weight-1 transcript without
// running verification, which is enough for size reporting.
func singletonTranscript[SPOKSig, SSIGSig any](
	aggregator *dkg.Aggregator[SPOKSig, SSIGSig],
	share *dkg.DKGShare[SPOKSig, SSIGSig],
) *dkg.Transcript[SPOKSig, SSIGSig] {
	return &dkg.Transcript[SPOKSig, SSIGSig]{
		Degree:          aggregator.Config.Degree,
		NumParticipants: len(aggregator.Participants),
		Contributions: map[int]*dkg.TranscriptParticipant[SPOKSig, SSIGSig]{
			share.ParticipantID: {
				CI:            share.CI,
				Weight:        1,
				CIPoK:         share.CIPoK,
				SignatureOnCI: share.SignatureOnCI,
			},
		},
		PVSSShare: share.PVSSShare,
	}
}

func reportSchnorr(clock clockwork.Clock, n int) error {
	start := clock.Now()

	config, participants, secrets, err := buildRoster(n)
	if err != nil {
		return err
	}

	pokScheme := schnorr.NewScheme[*curve.G1](config.SRS.GG1, curve.NewG1)
	sigScheme := schnorr.NewScheme[*curve.G2](config.SRS.HG2, curve.NewG2)

	aggregator := dkg.NewAggregator[*schnorr.Signature[*curve.G1], *schnorr.Signature[*curve.G2]](
		config, pokScheme, sigScheme, participants,
	)
	dealer := dkg.NewDealer(secrets[0], participants[0])
	node := dkg.NewNode(aggregator, dealer)

	share, err := node.Share(rand.Reader)
	if err != nil {
		return err
	}

	w := wire.NewWriter()
	wire.EncodeDKGShare(w, share, wire.SchnorrG1Codec, wire.SchnorrG2Codec)
	shareBytes := len(w.Bytes())

	tw := wire.NewWriter()
	wire.EncodeTranscript(tw, singletonTranscript(aggregator, share), wire.SchnorrG1Codec, wire.SchnorrG2Codec)
	transcriptBytes := len(tw.Bytes())

	elapsed := clock.Since(start)
	log.Info("wire sizes (Schnorr)", "n", n, "degree", config.Degree, "share_bytes", shareBytes, "transcript_bytes", transcriptBytes, "elapsed", elapsed)
	return nil
}
