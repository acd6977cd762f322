package bls381

// G2Affine is a point in affine coordinates (x,y) on the twist
// y**2 = x**3 + 4*(1+u). The Infinity flag, not the coordinates, identifies
// the group identity.
type G2Affine struct {
	X, Y     e2
	Infinity bool
}

// Set sets p to q and returns p
func (p *G2Affine) Set(q *G2Affine) *G2Affine {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	p.Infinity = q.Infinity
	return p
}

// Equal returns true if p equals q, false otherwise
func (p *G2Affine) Equal(q *G2Affine) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// IsInfinity returns true if p is the group identity
func (p *G2Affine) IsInfinity() bool {
	return p.Infinity
}

// Neg sets p to -q and returns p. Negating the identity yields the
// identity; its coordinates are don't-care values and are set to one.
func (p *G2Affine) Neg(q *G2Affine) *G2Affine {
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

// g2Jac is a point on the twist in Jacobian coordinates (x:y:z), the
// working representation of the Miller loop accumulator
type g2Jac struct {
	x, y, z e2
}

// FromAffine lifts q to Jacobian coordinates, z = 0 iff q is the identity
func (p *g2Jac) FromAffine(q *G2Affine) *g2Jac {
	p.x.Set(&q.X)
	p.y.Set(&q.Y)
	if q.Infinity {
		p.z.SetZero()
	} else {
		p.z.SetOne()
	}
	return p
}

// ToAffine normalizes p into res, with x = X/Z**2 and y = Y/Z**3. The
// identity (z = 0) maps to the affine identity flag.
func (p *g2Jac) ToAffine(res *G2Affine) (*G2Affine, error) {
	if p.z.IsZero() {
		res.X.SetOne()
		res.Y.SetOne()
		res.Infinity = true
		return res, nil
	}
	var zInv, zInvSq e2
	if _, err := zInv.Inverse(&p.z); err != nil {
		return nil, err
	}
	zInvSq.Square(&zInv)
	res.X.Mul(&p.x, &zInvSq)
	res.Y.Mul(&p.y, &zInvSq).MulAssign(&zInv)
	res.Infinity = false
	return res, nil
}
