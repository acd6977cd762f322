// Package bls381 implements the optimal ate pairing over the BLS12-381
// curve. Base-field arithmetic is delegated to gnark-crypto; the package
// builds the extension tower Fp2, Fp6 and Fp12 on top of it, together with
// the Miller loop and the final exponentiation.
package bls381

import (
	"errors"
	"math/big"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/pairing/debug"
	"github.com/consensys/pairing/ecc"
	"github.com/consensys/pairing/logger"
)

// E: y**2 = x**3 + 4
// Etwist: y**2 = x**3 + 4*(u+1)

// ID bls381 ID
const ID = ecc.BLS381

// blsX is the absolute value of the curve seed; the seed itself is -blsX
const blsX uint64 = 0xd201000000010000

// ErrInversionUndefined is returned when an operation needs the inverse of
// the additive identity of a field, which does not exist
var ErrInversionUndefined = errors.New("bls381: inverse of the additive identity is undefined")

// PairingResult target group of the pairing
type PairingResult = e12

var bls381 Curve
var initOnce sync.Once

// the Frobenius coefficients and the seed bitsets back methods reachable
// through the exported PairingResult alias, so they must be ready before
// any call into the package, not only after the first BLS381()
func init() {
	initOnce.Do(initBLS381)
}

// BLS381 returns the bls381 curve singleton
func BLS381() *Curve {
	initOnce.Do(initBLS381)
	return &bls381
}

// Curve represents the BLS381 curve and pre-computed constants
type Curve struct {
	B fp.Element // B coefficient of the curve y**2 = x**3 + B

	g1Gen G1Affine // generator of the r-torsion group on the curve
	g2Gen G2Affine // generator of the r-torsion group on the twist

	g1Infinity G1Affine
	g2Infinity G2Affine

	// bits of |x|/2 driving the Miller loop
	loopCounter *bitset.BitSet
	// bits of |x| driving the cyclotomic exponentiation
	xBits *bitset.BitSet
}

// Generators returns the affine generators of the r-torsion groups on the
// curve and on the twist
func (curve *Curve) Generators() (G1Affine, G2Affine) {
	return curve.g1Gen, curve.g2Gen
}

// G1Infinity returns the identity of the curve group
func (curve *Curve) G1Infinity() G1Affine {
	return curve.g1Infinity
}

// G2Infinity returns the identity of the twist group
func (curve *Curve) G2Infinity() G2Affine {
	return curve.g2Infinity
}

// Frobenius coefficients of the tower, derived from the seed at
// initialization: frobCoeff12 = (1+u)**((p-1)/6), w**6 being 1+u, and
// frobCoeff6C1, frobCoeff6C2 its square and fourth power
var (
	frobCoeff12  e2
	frobCoeff6C1 e2
	frobCoeff6C2 e2
)

func initBLS381() {

	// B coeff of the curve in Mont form
	bls381.B.SetUint64(4)

	// Setting g1Gen
	bls381.g1Gen.X = mustNewElement("3685416753713387016781088315183077757961620795782546409894578378688607592378376318836054947676345821548104185464507")
	bls381.g1Gen.Y = mustNewElement("1339506544944476473020471379941921221584933875938349620426543736416511423956333506472724655353366534992391756441569")

	// Setting g2Gen
	bls381.g2Gen.X.SetString(
		"352701069587466618187139116011060144890029952792775240219908644239793785735715026873347600343865175952761926303160",
		"3059144344244213709971259814753781636986470325476647558659373206291635324768958432433509563104347017837885763365758")
	bls381.g2Gen.Y.SetString(
		"1985150602287291935568054521177171638300868978215655730859378665066344726373823718423869104263333984641494340347905",
		"927553665492332455747201965776037880757740193453592970025027978793976877002675564980949289727957565575433344219582")

	// identity points, the Infinity flag is authoritative and the (1,1)
	// coordinates are don't-care values
	bls381.g1Infinity.X.SetOne()
	bls381.g1Infinity.Y.SetOne()
	bls381.g1Infinity.Infinity = true
	bls381.g2Infinity.X.SetOne()
	bls381.g2Infinity.Y.SetOne()
	bls381.g2Infinity.Infinity = true

	// loop counters from the seed
	bls381.loopCounter = bitset.From([]uint64{blsX >> 1})
	bls381.xBits = bitset.From([]uint64{blsX})

	// Frobenius coefficients: w**(p-1) = (1+u)**((p-1)/6)
	var nonRes e2
	nonRes.A0.SetOne()
	nonRes.A1.SetOne()
	exp := new(big.Int).Sub(fp.Modulus(), big.NewInt(1))
	exp.Div(exp, big.NewInt(6))
	frobCoeff12.Exp(&nonRes, exp)
	frobCoeff6C1.Square(&frobCoeff12)
	frobCoeff6C2.Square(&frobCoeff6C1)

	if debug.Debug {
		log := logger.Logger()
		log.Debug().Str("curve", ID.String()).Msg("curve parameters initialized")
	}
}

// mustNewElement parses a base-field literal, panics if it is malformed
func mustNewElement(s string) (z fp.Element) {
	if _, err := z.SetString(s); err != nil {
		panic("bls381: invalid field element literal: " + s)
	}
	return
}
