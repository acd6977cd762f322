package bls381

// e6 is a degree-3 finite field extension of e2, with v**3 = 1+u
type e6 struct {
	B0, B1, B2 e2
}

// Set sets an e6 from x
func (z *e6) Set(x *e6) *e6 {
	z.B0.Set(&x.B0)
	z.B1.Set(&x.B1)
	z.B2.Set(&x.B2)
	return z
}

// SetZero sets an e6 elmt to zero
func (z *e6) SetZero() *e6 {
	z.B0.SetZero()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// SetOne sets z to 1 in Montgomery form and returns z
func (z *e6) SetOne() *e6 {
	z.B0.SetOne()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// SetRandom sets the three coordinates to random values
func (z *e6) SetRandom() (*e6, error) {
	if _, err := z.B0.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.B1.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := z.B2.SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}

// Equal returns true if z equals x, false otherwise
func (z *e6) Equal(x *e6) bool {
	return z.B0.Equal(&x.B0) && z.B1.Equal(&x.B1) && z.B2.Equal(&x.B2)
}

// IsZero returns true if z is zero, false otherwise
func (z *e6) IsZero() bool {
	return z.B0.IsZero() && z.B1.IsZero() && z.B2.IsZero()
}

// IsOne returns true if z is one, false otherwise
func (z *e6) IsOne() bool {
	return z.B0.IsOne() && z.B1.IsZero() && z.B2.IsZero()
}

func (z *e6) String() string {
	return "(" + z.B0.String() + ")+(" + z.B1.String() + ")*v+(" + z.B2.String() + ")*v**2"
}

// Add adds two elements of e6
func (z *e6) Add(x, y *e6) *e6 {
	z.B0.Add(&x.B0, &y.B0)
	z.B1.Add(&x.B1, &y.B1)
	z.B2.Add(&x.B2, &y.B2)
	return z
}

// AddAssign adds x to z
func (z *e6) AddAssign(x *e6) *e6 {
	z.B0.AddAssign(&x.B0)
	z.B1.AddAssign(&x.B1)
	z.B2.AddAssign(&x.B2)
	return z
}

// Sub two elements of e6
func (z *e6) Sub(x, y *e6) *e6 {
	z.B0.Sub(&x.B0, &y.B0)
	z.B1.Sub(&x.B1, &y.B1)
	z.B2.Sub(&x.B2, &y.B2)
	return z
}

// SubAssign subs x from z
func (z *e6) SubAssign(x *e6) *e6 {
	z.B0.SubAssign(&x.B0)
	z.B1.SubAssign(&x.B1)
	z.B2.SubAssign(&x.B2)
	return z
}

// Double doubles an element in e6
func (z *e6) Double(x *e6) *e6 {
	z.B0.Double(&x.B0)
	z.B1.Double(&x.B1)
	z.B2.Double(&x.B2)
	return z
}

// Neg negates an e6 element
func (z *e6) Neg(x *e6) *e6 {
	z.B0.Neg(&x.B0)
	z.B1.Neg(&x.B1)
	z.B2.Neg(&x.B2)
	return z
}

// Mul sets z to the e6-product of x,y, returns z
func (z *e6) Mul(x, y *e6) *e6 {
	// Algorithm 13 from https://eprint.iacr.org/2010/354.pdf
	var rb0, b0, b1, b2, b3, b4 e2
	b0.Mul(&x.B0, &y.B0) // step 1
	b1.Mul(&x.B1, &y.B1) // step 2
	b2.Mul(&x.B2, &y.B2) // step 3

	// step 4
	b3.Add(&x.B1, &x.B2)
	b4.Add(&y.B1, &y.B2)
	rb0.Mul(&b3, &b4).SubAssign(&b1).SubAssign(&b2)
	rb0.MulByNonResidue(&rb0).AddAssign(&b0)

	// step 5
	b3.Add(&x.B0, &x.B1)
	b4.Add(&y.B0, &y.B1)
	z.B1.Mul(&b3, &b4).SubAssign(&b0).SubAssign(&b1)
	b3.MulByNonResidue(&b2)
	z.B1.AddAssign(&b3)

	// step 6
	b3.Add(&x.B0, &x.B2)
	b4.Add(&y.B0, &y.B2)
	z.B2.Mul(&b3, &b4).SubAssign(&b0).SubAssign(&b2).AddAssign(&b1)
	z.B0.Set(&rb0)
	return z
}

// MulAssign sets z to the e6-product of z,x, returns z
func (z *e6) MulAssign(x *e6) *e6 {
	return z.Mul(z, x)
}

// Square sets z to the e6-product of x,x, returns z
func (z *e6) Square(x *e6) *e6 {
	// CH-SQR2 from https://eprint.iacr.org/2006/471.pdf
	var s0, s1, s2, s3, s4 e2
	s0.Square(&x.B0)
	s1.Mul(&x.B0, &x.B1).Double(&s1)
	s2.Sub(&x.B0, &x.B1).AddAssign(&x.B2).Square(&s2)
	s3.Mul(&x.B1, &x.B2).Double(&s3)
	s4.Square(&x.B2)
	z.B2.Add(&s1, &s2).AddAssign(&s3).SubAssign(&s0).SubAssign(&s4)
	z.B0.MulByNonResidue(&s3).AddAssign(&s0)
	z.B1.MulByNonResidue(&s4).AddAssign(&s1)
	return z
}

// Inverse sets z to the e6-inverse of x and returns z. Inverting the
// additive identity is undefined and reported as ErrInversionUndefined.
func (z *e6) Inverse(x *e6) (*e6, error) {
	// Algorithm 17 from https://eprint.iacr.org/2010/354.pdf
	// step 9 is wrong in the paper: t1 and t4 must be swapped
	var t [7]e2
	var c [3]e2
	var buf e2
	t[0].Square(&x.B0)     // step 1
	t[1].Square(&x.B1)     // step 2
	t[2].Square(&x.B2)     // step 3
	t[3].Mul(&x.B0, &x.B1) // step 4
	t[4].Mul(&x.B0, &x.B2) // step 5
	t[5].Mul(&x.B1, &x.B2) // step 6
	c[0].MulByNonResidue(&t[5]).
		Neg(&c[0]).
		AddAssign(&t[0]) // step 7
	c[1].MulByNonResidue(&t[2]).
		SubAssign(&t[3]) // step 8
	c[2].Sub(&t[1], &t[4]) // step 9
	t[6].Mul(&x.B2, &c[1]) // step 10
	buf.Mul(&x.B1, &c[2])
	t[6].AddAssign(&buf)
	t[6].MulByNonResidue(&t[6])
	buf.Mul(&x.B0, &c[0])
	t[6].AddAssign(&buf)
	if _, err := t[6].Inverse(&t[6]); err != nil { // step 11
		return nil, err
	}
	z.B0.Mul(&c[0], &t[6]) // step 12
	z.B1.Mul(&c[1], &t[6]) // step 13
	z.B2.Mul(&c[2], &t[6]) // step 14
	return z, nil
}

// MulByE2 multiplies x by an element in e2
func (z *e6) MulByE2(x *e6, y *e2) *e6 {
	var yCopy e2
	yCopy.Set(y)
	z.B0.Mul(&x.B0, &yCopy)
	z.B1.Mul(&x.B1, &yCopy)
	z.B2.Mul(&x.B2, &yCopy)
	return z
}

// MulByNonResidue multiplies an e6 elmt by the cubic non-residue v
func (z *e6) MulByNonResidue(x *e6) *e6 {
	var b2 e2
	b2.Set(&x.B2)
	z.B2.Set(&x.B1)
	z.B1.Set(&x.B0)
	z.B0.MulByNonResidue(&b2)
	return z
}

// MulBy01 multiplies z by a sparse element of the form b0 + b1*v
func (z *e6) MulBy01(c0, c1 *e2) *e6 {
	var a, b, tmp, t0, t1, t2 e2

	a.Mul(&z.B0, c0)
	b.Mul(&z.B1, c1)

	tmp.Add(&z.B1, &z.B2)
	t0.Mul(c1, &tmp).SubAssign(&b).MulByNonResidue(&t0).AddAssign(&a)

	tmp.Add(&z.B0, &z.B2)
	t2.Mul(c0, &tmp).SubAssign(&a).AddAssign(&b)

	t1.Add(c0, c1)
	tmp.Add(&z.B0, &z.B1)
	t1.MulAssign(&tmp).SubAssign(&a).SubAssign(&b)

	z.B0.Set(&t0)
	z.B1.Set(&t1)
	z.B2.Set(&t2)
	return z
}

// MulBy1 multiplies z by a sparse element of the form b1*v
func (z *e6) MulBy1(c1 *e2) *e6 {
	var b, tmp, t0, t1 e2
	b.Mul(&z.B1, c1)

	tmp.Add(&z.B1, &z.B2)
	t0.Mul(c1, &tmp).SubAssign(&b).MulByNonResidue(&t0)

	tmp.Add(&z.B0, &z.B1)
	t1.Mul(c1, &tmp).SubAssign(&b)

	z.B0.Set(&t0)
	z.B1.Set(&t1)
	z.B2.Set(&b)
	return z
}

// Frobenius raises an e6 element to the modulus power
func (z *e6) Frobenius(x *e6) *e6 {
	z.B0.Conjugate(&x.B0)
	z.B1.Conjugate(&x.B1).MulAssign(&frobCoeff6C1)
	z.B2.Conjugate(&x.B2).MulAssign(&frobCoeff6C2)
	return z
}
