package bls381

import (
	"fmt"
)

// lineEvaluation holds the three non-zero e2 coefficients of a sparse e12
// line function evaluated during a Miller loop step
type lineEvaluation struct {
	r0, r1, r2 e2
}

// Pair computes the optimal ate pairing e(p, q). Pairing with the group
// identity on either side yields one without running the Miller loop.
func (curve *Curve) Pair(p *G1Affine, q *G2Affine) (PairingResult, error) {
	var one PairingResult
	one.SetOne()
	if p.Infinity || q.Infinity {
		return one, nil
	}
	var ml PairingResult
	curve.MillerLoop(p, q, &ml)
	return curve.FinalExponentiation(&ml)
}

// PairingCheck reports whether e(p, q) is the identity of GT
func (curve *Curve) PairingCheck(p *G1Affine, q *G2Affine) (bool, error) {
	res, err := curve.Pair(p, q)
	if err != nil {
		return false, err
	}
	return res.IsOne(), nil
}

// MillerLoop computes f_{|x|,q}(p), conjugated to account for the sign of
// the seed. The output is only defined up to final exponentiation.
func (curve *Curve) MillerLoop(p *G1Affine, q *G2Affine, result *PairingResult) *PairingResult {
	result.SetOne()
	if p.Infinity || q.Infinity {
		return result
	}

	var acc g2Jac
	acc.FromAffine(q)

	var l lineEvaluation

	// the loop counter holds the bits of |x|/2, most significant (and set) first;
	// the dropped low bit of the even seed is paid back with one extra doubling
	// after the loop
	started := false
	for i := 63; i >= 0; i-- {
		bit := curve.loopCounter.Test(uint(i))
		if !started {
			started = bit
			continue
		}
		acc.doubleStep(&l)
		ell(result, &l, p)
		if bit {
			acc.addMixedStep(&l, q)
			ell(result, &l, p)
		}
		result.Square(result)
	}
	acc.doubleStep(&l)
	ell(result, &l, p)

	// the seed is negative
	result.Conjugate(result)
	return result
}

// FinalExponentiation raises z to (p**12 - 1) / r, mapping Miller loop
// outputs to the r-torsion subgroup GT. The easy part inverts z, so the
// additive identity is rejected with ErrInversionUndefined.
func (curve *Curve) FinalExponentiation(z *PairingResult) (PairingResult, error) {
	var result e12
	result.Set(z)

	// easy part: z**((p**6 - 1) * (p**2 + 1))
	var t [7]e12
	t[0].Frobenius(&result).
		Frobenius(&t[0]).
		Frobenius(&t[0]).
		Frobenius(&t[0]).
		Frobenius(&t[0]).
		Frobenius(&t[0])
	if _, err := t[1].Inverse(&result); err != nil {
		return PairingResult{}, fmt.Errorf("final exponentiation: %w", err)
	}
	t[2].Mul(&t[0], &t[1])
	t[1].Set(&t[2])
	t[2].Frobenius(&t[2]).Frobenius(&t[2])
	t[2].MulAssign(&t[1])

	// hard part, addition chain in terms of the seed,
	// https://eprint.iacr.org/2016/130.pdf
	t[1].CyclotomicSquare(&t[2]).Conjugate(&t[1])
	t[3].Expt(&t[2])
	t[4].CyclotomicSquare(&t[3])
	t[5].Mul(&t[1], &t[3])
	t[1].Expt(&t[5])
	t[0].Expt(&t[1])
	t[6].Expt(&t[0])
	t[6].MulAssign(&t[4])
	t[4].Expt(&t[6])
	t[5].Conjugate(&t[5])
	t[4].MulAssign(&t[5]).MulAssign(&t[2])
	t[5].Conjugate(&t[2])
	t[1].MulAssign(&t[2])
	t[1].Frobenius(&t[1]).Frobenius(&t[1]).Frobenius(&t[1])
	t[6].MulAssign(&t[5])
	t[6].Frobenius(&t[6])
	t[3].MulAssign(&t[0])
	t[3].Frobenius(&t[3]).Frobenius(&t[3])
	t[3].MulAssign(&t[1])
	t[3].MulAssign(&t[6])
	result.Mul(&t[3], &t[4])

	return result, nil
}

// doubleStep doubles p in place and records the tangent line at p evaluated
// in twist coordinates. Formulas from https://eprint.iacr.org/2010/354.pdf
func (p *g2Jac) doubleStep(l *lineEvaluation) {
	var t0, t1, t2, t3, t4, t5, t6, zsquared e2
	t0.Square(&p.x)
	t1.Square(&p.y)
	t2.Square(&t1)
	t3.Add(&t1, &p.x).
		Square(&t3).
		SubAssign(&t0).
		SubAssign(&t2).
		Double(&t3)
	t4.Double(&t0).AddAssign(&t0)
	t6.Add(&p.x, &t4)
	t5.Square(&t4)
	zsquared.Square(&p.z)

	p.x.Sub(&t5, &t3).SubAssign(&t3)
	p.z.AddAssign(&p.y).
		Square(&p.z).
		SubAssign(&t1).
		SubAssign(&zsquared)
	p.y.Sub(&t3, &p.x).MulAssign(&t4)
	t2.Double(&t2).Double(&t2).Double(&t2)
	p.y.SubAssign(&t2)

	t3.Mul(&t4, &zsquared).Double(&t3).Neg(&t3)
	t6.Square(&t6).SubAssign(&t0).SubAssign(&t5)
	t1.Double(&t1).Double(&t1)
	t6.SubAssign(&t1)
	t0.Mul(&p.z, &zsquared).Double(&t0)

	l.r0.Set(&t0)
	l.r1.Set(&t3)
	l.r2.Set(&t6)
}

// addMixedStep adds the affine point a to p in place and records the line
// through them evaluated in twist coordinates. Formulas from
// https://eprint.iacr.org/2010/354.pdf
func (p *g2Jac) addMixedStep(l *lineEvaluation, a *G2Affine) {
	var zsquared, ysquared e2
	var t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10 e2
	zsquared.Square(&p.z)
	ysquared.Square(&a.Y)

	t0.Mul(&zsquared, &a.X)
	t1.Add(&a.Y, &p.z).
		Square(&t1).
		SubAssign(&ysquared).
		SubAssign(&zsquared).
		MulAssign(&zsquared)
	t2.Sub(&t0, &p.x)
	t3.Square(&t2)
	t4.Double(&t3).Double(&t4)
	t5.Mul(&t4, &t2)
	t6.Sub(&t1, &p.y).SubAssign(&p.y)
	t9.Mul(&t6, &a.X)
	t7.Mul(&t4, &p.x)

	p.x.Square(&t6).
		SubAssign(&t5).
		SubAssign(&t7).
		SubAssign(&t7)
	p.z.AddAssign(&t2).
		Square(&p.z).
		SubAssign(&zsquared).
		SubAssign(&t3)

	t10.Add(&a.Y, &p.z)
	t8.Sub(&t7, &p.x).MulAssign(&t6)
	t0.Mul(&p.y, &t5).Double(&t0)
	p.y.Sub(&t8, &t0)

	t10.Square(&t10).SubAssign(&ysquared)
	zsquared.Square(&p.z)
	t10.SubAssign(&zsquared)
	t9.Double(&t9).SubAssign(&t10)
	t10.Double(&p.z)
	t6.Neg(&t6)
	t1.Double(&t6)

	l.r0.Set(&t10)
	l.r1.Set(&t1)
	l.r2.Set(&t9)
}

// ell folds a line evaluation into the Miller loop accumulator f. The line
// coefficients are scaled by the G1 argument before the sparse product.
func ell(f *e12, l *lineEvaluation, p *G1Affine) {
	var c0, c1 e2
	c0.MulByElement(&l.r0, &p.Y)
	c1.MulByElement(&l.r1, &p.X)
	f.MulBy014(&l.r2, &c1, &c0)
}
