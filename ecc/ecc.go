// Package ecc enumerates the curves supported by the pairing library.
package ecc

// ID of an elliptic curve. Each supported curve has a unique ID, used to
// tag values so that binaries built against different curves cannot be
// mixed up.
type ID uint16

const (
	UNKNOWN ID = iota
	BLS381
)

func (id ID) String() string {
	switch id {
	case BLS381:
		return "bls381"
	default:
		return "unknown"
	}
}
