package bls381

import (
	"math/big"
)

// e12 is a degree-2 finite field extension of e6, with w**2 = v
type e12 struct {
	C0, C1 e6
}

// Set sets an e12 from x
func (z *e12) Set(x *e12) *e12 {
	z.C0.Set(&x.C0)
	z.C1.Set(&x.C1)
	return z
}

// SetZero sets an e12 elmt to zero
func (z *e12) SetZero() *e12 {
	z.C0.SetZero()
	z.C1.SetZero()
	return z
}

// SetOne sets z to 1 in Montgomery form and returns z
func (z *e12) SetOne() *e12 {
	z.C0.SetOne()
	z.C1.SetZero()
	return z
}

// SetRandom sets the two coordinates to random values
func (z *e12) SetRandom() (*e12, error) {
	if _, err := z.C0.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.C1.SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}

// Equal returns true if z equals x, false otherwise
func (z *e12) Equal(x *e12) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// IsZero returns true if z is zero, false otherwise
func (z *e12) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero()
}

// IsOne returns true if z is one, false otherwise
func (z *e12) IsOne() bool {
	return z.C0.IsOne() && z.C1.IsZero()
}

func (z *e12) String() string {
	return "(" + z.C0.String() + ")+(" + z.C1.String() + ")*w"
}

// Add adds two elements of e12
func (z *e12) Add(x, y *e12) *e12 {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	return z
}

// Sub two elements of e12
func (z *e12) Sub(x, y *e12) *e12 {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	return z
}

// Mul sets z to the e12-product of x,y, returns z
func (z *e12) Mul(x, y *e12) *e12 {
	// Algorithm 20 from https://eprint.iacr.org/2010/354.pdf
	var t0, t1, xSum, ySum e6
	t0.Mul(&x.C0, &y.C0) // step 1
	t1.Mul(&x.C1, &y.C1) // step 2

	// step 3
	xSum.Add(&x.C0, &x.C1)
	ySum.Add(&y.C0, &y.C1)
	z.C1.Mul(&xSum, &ySum).SubAssign(&t0).SubAssign(&t1)

	// step 4
	z.C0.MulByNonResidue(&t1).AddAssign(&t0)
	return z
}

// MulAssign sets z to the e12-product of z,x, returns z
func (z *e12) MulAssign(x *e12) *e12 {
	return z.Mul(z, x)
}

// Square sets z to the e12-product of x,x, returns z
func (z *e12) Square(x *e12) *e12 {
	// complex squaring, Section 3.2 of https://eprint.iacr.org/2006/471.pdf
	var ab, apb, c0, t e6
	ab.Mul(&x.C0, &x.C1)
	apb.Add(&x.C0, &x.C1)
	c0.MulByNonResidue(&x.C1).
		AddAssign(&x.C0).
		MulAssign(&apb).
		SubAssign(&ab)
	t.MulByNonResidue(&ab)
	c0.SubAssign(&t)
	z.C1.Double(&ab)
	z.C0.Set(&c0)
	return z
}

// Inverse sets z to the e12-inverse of x and returns z. Inverting the
// additive identity is undefined and reported as ErrInversionUndefined.
func (z *e12) Inverse(x *e12) (*e12, error) {
	// Algorithm 23 from https://eprint.iacr.org/2010/354.pdf
	var t0, t1, buf e6
	t0.Square(&x.C0) // step 1
	t1.Square(&x.C1) // step 2
	// step 3
	buf.MulByNonResidue(&t1)
	t0.SubAssign(&buf)
	if _, err := t1.Inverse(&t0); err != nil { // step 4
		return nil, err
	}
	z.C0.Mul(&x.C0, &t1)            // step 5
	z.C1.Mul(&x.C1, &t1).Neg(&z.C1) // step 6
	return z, nil
}

// Conjugate sets z to (x.C0, -x.C1) and returns z. On the cyclotomic
// subgroup the conjugate is the inverse.
func (z *e12) Conjugate(x *e12) *e12 {
	z.C0.Set(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Frobenius raises an e12 element to the modulus power
func (z *e12) Frobenius(x *e12) *e12 {
	// x**p conjugates the e6 coordinates and twists C1 by (1+u)**((p-1)/6)
	z.C0.Frobenius(&x.C0)
	z.C1.Frobenius(&x.C1).MulByE2(&z.C1, &frobCoeff12)
	return z
}

// MulBy014 multiplies z by a sparse element of the form
//
//	c0 + c1*v + c4*v*w
func (z *e12) MulBy014(c0, c1, c4 *e2) *e12 {
	var a, b e6
	var d e2

	a.Set(&z.C0)
	a.MulBy01(c0, c1)

	b.Set(&z.C1)
	b.MulBy1(c4)
	d.Add(c1, c4)

	z.C1.AddAssign(&z.C0)
	z.C1.MulBy01(c0, &d)
	z.C1.SubAssign(&a)
	z.C1.SubAssign(&b)
	z.C0.MulByNonResidue(&b)
	z.C0.AddAssign(&a)
	return z
}

// Exp sets z to x**k and returns z
func (z *e12) Exp(x *e12, k *big.Int) *e12 {
	var res e12
	res.SetOne()
	b := k.Bytes()
	for i := 0; i < len(b); i++ {
		w := b[i]
		mask := byte(0x80)
		for j := 0; j < 8; j++ {
			res.Square(&res)
			if (w & mask) != 0 {
				res.MulAssign(x)
			}
			mask = mask >> 1
		}
	}
	z.Set(&res)
	return z
}

// fp4Square squares an element a0 + a1*w' of the degree-4 extension built on
// e2 with w'**2 = v, writing the coordinates of the square to c0, c1
func fp4Square(c0, c1, a0, a1 *e2) {
	var t0, t1, t2 e2
	t0.Square(a0)
	t1.Square(a1)
	t2.Add(a0, a1).Square(&t2).SubAssign(&t0).SubAssign(&t1)
	c1.Set(&t2)
	t2.MulByNonResidue(&t1).AddAssign(&t0)
	c0.Set(&t2)
}

// CyclotomicSquare squares x, assumed to be in the cyclotomic subgroup
func (z *e12) CyclotomicSquare(x *e12) *e12 {
	// Granger-Scott, Section 3.2 of https://eprint.iacr.org/2009/565.pdf
	// x is decomposed into three fp4 pairs
	// (C0.B0, C1.B1), (C1.B0, C0.B2), (C0.B1, C1.B2)
	var t [7]e2
	var res e12

	fp4Square(&t[0], &t[1], &x.C0.B0, &x.C1.B1)
	res.C0.B0.Sub(&t[0], &x.C0.B0).Double(&res.C0.B0).AddAssign(&t[0])
	res.C1.B1.Add(&t[1], &x.C1.B1).Double(&res.C1.B1).AddAssign(&t[1])

	fp4Square(&t[2], &t[3], &x.C1.B0, &x.C0.B2)
	fp4Square(&t[4], &t[5], &x.C0.B1, &x.C1.B2)

	res.C0.B1.Sub(&t[2], &x.C0.B1).Double(&res.C0.B1).AddAssign(&t[2])
	res.C1.B2.Add(&t[3], &x.C1.B2).Double(&res.C1.B2).AddAssign(&t[3])

	t[6].MulByNonResidue(&t[5])
	res.C1.B0.Add(&t[6], &x.C1.B0).Double(&res.C1.B0).AddAssign(&t[6])
	res.C0.B2.Sub(&t[4], &x.C0.B2).Double(&res.C0.B2).AddAssign(&t[4])

	z.Set(&res)
	return z
}

// Expt raises x, assumed to be in the cyclotomic subgroup, to the curve seed
// -blsX
func (z *e12) Expt(x *e12) *e12 {
	var res e12
	res.SetOne()
	started := false
	for i := 63; i >= 0; i-- {
		if started {
			res.CyclotomicSquare(&res)
		} else {
			started = bls381.xBits.Test(uint(i))
		}
		if bls381.xBits.Test(uint(i)) {
			res.MulAssign(x)
		}
	}
	// the seed is negative
	z.Conjugate(&res)
	return z
}
