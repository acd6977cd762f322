package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/pairing/ecc"
)

func TestCurves(t *testing.T) {
	assert := require.New(t)

	curves := Curves()
	assert.Contains(curves, ecc.BLS381)
	for _, id := range curves {
		assert.NotEqual("unknown", id.String())
	}
}

func TestVersion(t *testing.T) {
	require.NotEmpty(t, Version.String())
}
