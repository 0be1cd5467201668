package dkg

import "github.com/kobigurk/aggregatable-dkg/curve"

// Config is the immutable public parameter tuple every role is constructed
// against: the SRS, the independent same-ratio generator u1, and the
// polynomial degree.
type Config struct {
	SRS    *SRS
	U1     *curve.G2
	Degree int
}
