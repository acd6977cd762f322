package bls381

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// G1Affine is a point in affine coordinates (x,y) on the curve
// y**2 = x**3 + 4. The Infinity flag, not the coordinates, identifies the
// group identity.
type G1Affine struct {
	X, Y     fp.Element
	Infinity bool
}

// Set sets p to q and returns p
func (p *G1Affine) Set(q *G1Affine) *G1Affine {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	p.Infinity = q.Infinity
	return p
}

// Equal returns true if p equals q, false otherwise
func (p *G1Affine) Equal(q *G1Affine) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// IsInfinity returns true if p is the group identity
func (p *G1Affine) IsInfinity() bool {
	return p.Infinity
}

// Neg sets p to -q and returns p. Negating the identity yields the
// identity; its coordinates are don't-care values and are set to one.
func (p *G1Affine) Neg(q *G1Affine) *G1Affine {
	if q.Infinity {
		p.X.SetOne()
		p.Y.SetOne()
		p.Infinity = true
		return p
	}
	p.X.Set(&q.X)
	p.Y.Neg(&q.Y)
	p.Infinity = false
	return p
}
