package bls381

import (
	"encoding/hex"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// e(g1, g2) serialized the way kilic/bls12-381 does, most significant
// coefficient first: C1 before C0, B2 down to B0, A1 before A0
var pairingGeneratorsFixture = [12]string{
	"0f41e58663bf08cf068672cbd01a7ec73baca4d72ca93544deff686bfd6df543d48eaa24afe47e1efde449383b676631",
	"04c581234d086a9902249b64728ffd21a189e87935a954051c7cdba7b3872629a4fafc05066245cb9108f0242d0fe3ef",
	"03350f55a7aefcd3c31b4fcb6ce5771cc6a0e9786ab5973320c806ad360829107ba810c5a09ffdd9be2291a0c25a99a2",
	"11b8b424cd48bf38fcef68083b0b0ec5c81a93b330ee1a677d0d15ff7b984e8978ef48881e32fac91b93b47333e2ba57",
	"06fba23eb7c5af0d9f80940ca771b6ffd5857baaf222eb95a7d2809d61bfe02e1bfd1b68ff02f0b8102ae1c2d5d5ab1a",
	"19f26337d205fb469cd6bd15c3d5a04dc88784fbb3d0b2dbdea54d43b2b73f2cbb12d58386a8703e0f948226e47ee89d",
	"018107154f25a764bd3c79937a45b84546da634b8f6be14a8061e55cceba478b23f7dacaa35c8ca78beae9624045b4b6",
	"01b2f522473d171391125ba84dc4007cfbf2f8da752f7c74185203fcca589ac719c34dffbbaad8431dad1c1fb597aaa5",
	"193502b86edb8857c273fa075a50512937e0794e1e65a7617c90d8bd66065b1fffe51d7a579973b1315021ec3c19934f",
	"1368bb445c7c2d209703f239689ce34c0378a68e72a6b3b216da0e22a5031b54ddff57309396b38c881c4c849ec23e87",
	"089a1c5b46e5110b86750ec6a532348868a84045483c92b7af5af689452eafabf1a8943e50439f1d59882a98eaa0170f",
	"1250ebd871fc0a92a7b2d83168d0d727272d441befa15c503dd8e90ce98db3e7b6d194f60839c508a84305aaca1789b6",
}

func fpComparer(a, b fp.Element) bool {
	return a.Equal(&b)
}

func TestPairingGenerators(t *testing.T) {
	curve := BLS381()
	g1, g2 := curve.Generators()

	got, err := curve.Pair(&g1, &g2)
	require.NoError(t, err)

	var expected e12
	coords := [12]*fp.Element{
		&expected.C1.B2.A1, &expected.C1.B2.A0,
		&expected.C1.B1.A1, &expected.C1.B1.A0,
		&expected.C1.B0.A1, &expected.C1.B0.A0,
		&expected.C0.B2.A1, &expected.C0.B2.A0,
		&expected.C0.B1.A1, &expected.C0.B1.A0,
		&expected.C0.B0.A1, &expected.C0.B0.A0,
	}
	for i, s := range pairingGeneratorsFixture {
		b, err := hex.DecodeString(s)
		require.NoError(t, err)
		coords[i].SetBytes(b)
	}

	if diff := cmp.Diff(expected, got, cmp.Comparer(fpComparer)); diff != "" {
		t.Fatalf("pairing of the generators mismatch (-want +got):\n%s", diff)
	}
}

func TestPairingNonDegenerate(t *testing.T) {
	curve := BLS381()
	g1, g2 := curve.Generators()

	res, err := curve.Pair(&g1, &g2)
	require.NoError(t, err)
	require.False(t, res.IsOne(), "pairing of the generators must not be the identity")

	ok, err := curve.PairingCheck(&g1, &g2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPairingIdentityShortCircuit(t *testing.T) {
	curve := BLS381()
	g1, g2 := curve.Generators()
	inf1 := curve.G1Infinity()
	inf2 := curve.G2Infinity()

	res, err := curve.Pair(&inf1, &g2)
	require.NoError(t, err)
	require.True(t, res.IsOne())

	res, err = curve.Pair(&g1, &inf2)
	require.NoError(t, err)
	require.True(t, res.IsOne())

	res, err = curve.Pair(&inf1, &inf2)
	require.NoError(t, err)
	require.True(t, res.IsOne())

	var ml PairingResult
	curve.MillerLoop(&inf1, &g2, &ml)
	require.True(t, ml.IsOne())
	curve.MillerLoop(&g1, &inf2, &ml)
	require.True(t, ml.IsOne())

	ok, err := curve.PairingCheck(&inf1, &g2)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPairingNegation(t *testing.T) {
	curve := BLS381()
	g1, g2 := curve.Generators()

	base, err := curve.Pair(&g1, &g2)
	require.NoError(t, err)

	var negG1 G1Affine
	negG1.Neg(&g1)
	left, err := curve.Pair(&negG1, &g2)
	require.NoError(t, err)

	var negG2 G2Affine
	negG2.Neg(&g2)
	right, err := curve.Pair(&g1, &negG2)
	require.NoError(t, err)

	// e(-p, q) == e(p, -q) == e(p, q)**-1, and on GT the inverse is the
	// conjugate
	require.True(t, left.Equal(&right))

	var inv e12
	_, err = inv.Inverse(&base)
	require.NoError(t, err)
	require.True(t, left.Equal(&inv))

	var conj e12
	conj.Conjugate(&base)
	require.True(t, left.Equal(&conj))

	var prod e12
	prod.Mul(&base, &left)
	require.True(t, prod.IsOne())
}

func TestFinalExponentiationOfZero(t *testing.T) {
	curve := BLS381()
	var zero PairingResult
	_, err := curve.FinalExponentiation(&zero)
	require.ErrorIs(t, err, ErrInversionUndefined)
}
