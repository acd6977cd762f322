package bls381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// e2 is a degree-2 finite field extension of fp.Element, with u**2 = -1
type e2 struct {
	A0, A1 fp.Element
}

// SetString sets an e2 element from strings, panics if the literals do not
// parse as base-field elements
func (z *e2) SetString(s0, s1 string) *e2 {
	z.A0 = mustNewElement(s0)
	z.A1 = mustNewElement(s1)
	return z
}

// Set sets an e2 from x
func (z *e2) Set(x *e2) *e2 {
	z.A0.Set(&x.A0)
	z.A1.Set(&x.A1)
	return z
}

// SetZero sets an e2 elmt to zero
func (z *e2) SetZero() *e2 {
	z.A0.SetZero()
	z.A1.SetZero()
	return z
}

// SetOne sets z to 1 in Montgomery form and returns z
func (z *e2) SetOne() *e2 {
	z.A0.SetOne()
	z.A1.SetZero()
	return z
}

// SetRandom sets a0 and a1 to random values
func (z *e2) SetRandom() (*e2, error) {
	if _, err := z.A0.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.A1.SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}

// Equal returns true if z equals x, false otherwise
func (z *e2) Equal(x *e2) bool {
	return z.A0.Equal(&x.A0) && z.A1.Equal(&x.A1)
}

// IsZero returns true if the two elements are equal, false otherwise
func (z *e2) IsZero() bool {
	return z.A0.IsZero() && z.A1.IsZero()
}

// IsOne returns true if z is one, false otherwise
func (z *e2) IsOne() bool {
	return z.A0.IsOne() && z.A1.IsZero()
}

func (z *e2) String() string {
	return z.A0.String() + "+" + z.A1.String() + "*u"
}

// Add adds two elements of e2
func (z *e2) Add(x, y *e2) *e2 {
	z.A0.Add(&x.A0, &y.A0)
	z.A1.Add(&x.A1, &y.A1)
	return z
}

// AddAssign adds x to z
func (z *e2) AddAssign(x *e2) *e2 {
	z.A0.Add(&z.A0, &x.A0)
	z.A1.Add(&z.A1, &x.A1)
	return z
}

// Sub two elements of e2
func (z *e2) Sub(x, y *e2) *e2 {
	z.A0.Sub(&x.A0, &y.A0)
	z.A1.Sub(&x.A1, &y.A1)
	return z
}

// SubAssign subs x from z
func (z *e2) SubAssign(x *e2) *e2 {
	z.A0.Sub(&z.A0, &x.A0)
	z.A1.Sub(&z.A1, &x.A1)
	return z
}

// Double doubles an e2 element
func (z *e2) Double(x *e2) *e2 {
	z.A0.Double(&x.A0)
	z.A1.Double(&x.A1)
	return z
}

// Neg negates an e2 element
func (z *e2) Neg(x *e2) *e2 {
	z.A0.Neg(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Mul sets z to the e2-product of x,y, returns z
func (z *e2) Mul(x, y *e2) *e2 {
	// Karatsuba over the quadratic extension u**2 = -1
	var a, b, c fp.Element
	a.Add(&x.A0, &x.A1)
	b.Add(&y.A0, &y.A1)
	a.Mul(&a, &b)
	b.Mul(&x.A0, &y.A0)
	c.Mul(&x.A1, &y.A1)
	z.A1.Sub(&a, &b).Sub(&z.A1, &c)
	z.A0.Sub(&b, &c)
	return z
}

// MulAssign sets z to the e2-product of z,x, returns z
func (z *e2) MulAssign(x *e2) *e2 {
	return z.Mul(z, x)
}

// Square sets z to the e2-product of x,x, returns z
func (z *e2) Square(x *e2) *e2 {
	// (a0+a1*u)**2 = (a0+a1)*(a0-a1) + 2*a0*a1*u
	var a, b fp.Element
	a.Add(&x.A0, &x.A1)
	b.Sub(&x.A0, &x.A1)
	a.Mul(&a, &b)
	b.Mul(&x.A0, &x.A1).Double(&b)
	z.A0.Set(&a)
	z.A1.Set(&b)
	return z
}

// MulByElement multiplies an element in e2 by an element in fp
func (z *e2) MulByElement(x *e2, y *fp.Element) *e2 {
	var yCopy fp.Element
	yCopy.Set(y)
	z.A0.Mul(&x.A0, &yCopy)
	z.A1.Mul(&x.A1, &yCopy)
	return z
}

// MulByNonResidue multiplies an e2 elmt by the quadratic non-residue 1+u
func (z *e2) MulByNonResidue(x *e2) *e2 {
	var a fp.Element
	a.Sub(&x.A0, &x.A1)
	z.A1.Add(&x.A0, &x.A1)
	z.A0.Set(&a)
	return z
}

// Conjugate conjugates an element in e2
func (z *e2) Conjugate(x *e2) *e2 {
	z.A0.Set(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Frobenius raises x to the modulus power, which is the conjugation map
// since the modulus is 3 mod 4
func (z *e2) Frobenius(x *e2) *e2 {
	return z.Conjugate(x)
}

// Inverse sets z to the e2-inverse of x and returns z. Inverting the
// additive identity is undefined and reported as ErrInversionUndefined.
func (z *e2) Inverse(x *e2) (*e2, error) {
	// Algorithm 8 from https://eprint.iacr.org/2010/354.pdf
	// the norm a0**2 + a1**2 vanishes on zero only
	var t0, t1 fp.Element
	t0.Square(&x.A0)
	t1.Square(&x.A1)
	t0.Add(&t0, &t1)
	if t0.IsZero() {
		return nil, ErrInversionUndefined
	}
	t1.Inverse(&t0)
	z.A0.Mul(&x.A0, &t1)
	z.A1.Mul(&x.A1, &t1).Neg(&z.A1)
	return z, nil
}

// Exp sets z to x**k and returns z
func (z *e2) Exp(x *e2, k *big.Int) *e2 {
	var res e2
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
