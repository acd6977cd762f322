package bls381

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/stretchr/testify/require"
)

func isOnCurve(p *G1Affine) bool {
	if p.Infinity {
		return true
	}
	var left, right fp.Element
	left.Square(&p.Y)
	right.Square(&p.X).Mul(&right, &p.X).Add(&right, &BLS381().B)
	return left.Equal(&right)
}

func isOnTwist(p *G2Affine) bool {
	if p.Infinity {
		return true
	}
	var left, right, b e2
	left.Square(&p.Y)
	right.Square(&p.X).MulAssign(&p.X)
	b.SetString("4", "4")
	right.AddAssign(&b)
	return left.Equal(&right)
}

func TestGeneratorsOnCurve(t *testing.T) {
	curve := BLS381()
	g1, g2 := curve.Generators()
	require.True(t, isOnCurve(&g1), "g1 generator is not on the curve")
	require.True(t, isOnTwist(&g2), "g2 generator is not on the twist")
}

func TestFrobeniusCoefficient(t *testing.T) {
	// (1+u)**((p-1)/6) in Montgomery form
	expected := e2{
		A0: fp.Element{
			0x07089552b319d465,
			0xc6695f92b50a8313,
			0x97e83cccd117228f,
			0xa35baecab2dc29ee,
			0x1ce393ea5daace4d,
			0x08f2220fb0fb66eb,
		},
		A1: fp.Element{
			0xb2f66aad4ce5d646,
			0x5842a06bfc497cec,
			0xcf4895d42599d394,
			0xc11b9cba40a8e8d0,
			0x2e3813cbe5a0de89,
			0x110eefda88847faf,
		},
	}
	require.True(t, frobCoeff12.Equal(&expected), "derived Frobenius coefficient does not match the reference value")

	var sq, fourth e2
	sq.Square(&frobCoeff12)
	fourth.Square(&sq)
	require.True(t, frobCoeff6C1.Equal(&sq))
	require.True(t, frobCoeff6C2.Equal(&fourth))
}

func TestNegOfInfinity(t *testing.T) {
	curve := BLS381()

	var p1 G1Affine
	p1.Neg(&curve.g1Infinity)
	require.True(t, p1.IsInfinity())
	require.True(t, p1.Y.IsOne(), "identity coordinates follow the (1,1) convention")

	var p2 G2Affine
	p2.Neg(&curve.g2Infinity)
	require.True(t, p2.IsInfinity())
	require.True(t, p2.Y.IsOne(), "identity coordinates follow the (1,1) convention")
}
